package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/cardsmith/internal/card"
)

// Preset is the per-species styling of a deck
type Preset struct {
	Color string `toml:"color"`
	Suit  string `toml:"suit"`
	Jack  string `toml:"J"`
	Queen string `toml:"Q"`
	King  string `toml:"K"`
}

// FaceArt returns the artwork file for a face rank
func (p Preset) FaceArt(r card.Rank) (string, bool) {
	if r.Kind() != card.Face {
		return "", false
	}
	var file string
	switch r.Label() {
	case "J":
		file = p.Jack
	case "Q":
		file = p.Queen
	case "K":
		file = p.King
	}
	return file, file != ""
}

// Presets maps each species to its preset. It is read once and never mutated.
type Presets map[card.Species]Preset

// FallbackPreset styles a single card when no preset file is available
var FallbackPreset = Preset{Color: "Violet", Suit: string(card.Heart)}

// DefaultPresets returns the presets written by `deck init`
func DefaultPresets() Presets {
	return Presets{
		card.Zombie:   {Color: "YellowGreen", Suit: "club", Jack: "zombie_j.png", Queen: "zombie_q.png", King: "zombie_k.png"},
		card.Cyber:    {Color: "Violet", Suit: "heart", Jack: "cyber_j.png", Queen: "cyber_q.png", King: "cyber_k.png"},
		card.Original: {Color: "Gold", Suit: "diamond", Jack: "original_j.png", Queen: "original_q.png", King: "original_k.png"},
		card.Hoodie:   {Color: "DeepSkyBlue", Suit: "spade", Jack: "hoodie_j.png", Queen: "hoodie_q.png", King: "hoodie_k.png"},
	}
}

// LoadPresets decodes a presets TOML file with one table per species
func LoadPresets(path string) (Presets, error) {
	var raw map[string]Preset
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("error parsing presets file: %v", err)
	}

	presets := make(Presets, len(raw))
	for name, p := range raw {
		sp, err := card.ParseSpecies(name)
		if err != nil {
			return nil, fmt.Errorf("error in presets file %s: %v", path, err)
		}
		if p.Color == "" || p.Suit == "" {
			return nil, fmt.Errorf("preset %s: color and suit are required", name)
		}
		presets[sp] = p
	}
	return presets, nil
}

// WritePresets encodes presets to path, creating parent directories
func WritePresets(path string, presets Presets) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating presets directory: %v", err)
	}

	raw := make(map[string]Preset, len(presets))
	for sp, p := range presets {
		raw[string(sp)] = p
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating presets file: %v", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(raw); err != nil {
		return fmt.Errorf("error encoding presets: %v", err)
	}
	return nil
}

// Get returns the preset for a species
func (p Presets) Get(sp card.Species) (Preset, error) {
	preset, ok := p[sp]
	if !ok {
		return Preset{}, fmt.Errorf("no preset for species %s", sp)
	}
	return preset, nil
}

// Species lists the species with a preset in batch order
func (p Presets) Species() []card.Species {
	var out []card.Species
	for _, sp := range card.AllSpecies() {
		if _, ok := p[sp]; ok {
			out = append(out, sp)
		}
	}
	return out
}
