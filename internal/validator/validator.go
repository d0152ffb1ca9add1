package validator

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arcanaland/cardsmith/internal/card"
	"github.com/arcanaland/cardsmith/internal/config"
	"github.com/arcanaland/cardsmith/internal/deck"
	"github.com/arcanaland/cardsmith/internal/icon"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were found
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	CardsDir  string
	AssetsDir string
	Presets   config.Presets
	Results   ValidationResults
}

func NewValidator(cardsDir, assetsDir string, presets config.Presets) *Validator {
	return &Validator{
		CardsDir:  cardsDir,
		AssetsDir: assetsDir,
		Presets:   presets,
		Results:   ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if _, err := os.Stat(v.CardsDir); os.IsNotExist(err) {
		return v.Results, fmt.Errorf("cards directory not found: %s", v.CardsDir)
	}

	decks, err := deck.List(v.CardsDir)
	if err != nil {
		return v.Results, err
	}

	v.validatePresets()
	v.validateDecks(decks)
	v.validateCardSizes(decks)
	v.validateStrays()

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

// validatePresets checks every preset resolves to a suit icon, a color and
// face artwork
func (v *Validator) validatePresets() {
	for _, sp := range v.Presets.Species() {
		p := v.Presets[sp]

		if _, err := icon.ParseColor(p.Color); err != nil {
			v.errorf("preset %s: %v", sp, err)
		}

		suit, err := card.ParseSuit(p.Suit)
		if err != nil {
			v.errorf("preset %s: %v", sp, err)
		} else if _, err := icon.AssetPath(v.AssetsDir, suit); err != nil {
			v.errorf("preset %s: %v", sp, err)
		}

		for _, r := range []card.Rank{card.Jack, card.Queen, card.King} {
			file, ok := p.FaceArt(r)
			if !ok {
				v.warnf("preset %s: no artwork configured for %s", sp, r)
				continue
			}
			if _, err := os.Stat(filepath.Join(v.AssetsDir, file)); os.IsNotExist(err) {
				v.errorf("preset %s: face artwork not found: %s", sp, file)
			}
		}
	}
}

// validateDecks checks each species with a preset has the full set of cards
func (v *Validator) validateDecks(decks map[card.Species]*deck.Deck) {
	for _, sp := range v.Presets.Species() {
		d, ok := decks[sp]
		if !ok {
			v.warnf("no cards generated for %s", sp)
			continue
		}
		for _, label := range d.Missing() {
			v.errorf("missing card: %s", card.Card{Species: sp, Rank: card.ParseRank(label)}.Filename())
		}
	}

	for sp := range decks {
		if _, ok := v.Presets[sp]; !ok {
			v.warnf("cards found for %s, which has no preset", sp)
		}
	}
}

// validateCardSizes checks every card shares the size of the first one found
func (v *Validator) validateCardSizes(decks map[card.Species]*deck.Deck) {
	var files []string
	for _, d := range decks {
		files = append(files, d.Files()...)
	}
	sort.Strings(files)

	var want image.Point
	var first string
	for _, path := range files {
		size, err := imageSize(path)
		if err != nil {
			v.errorf("unreadable card %s: %v", filepath.Base(path), err)
			continue
		}
		if first == "" {
			want, first = size, filepath.Base(path)
			continue
		}
		if size != want {
			v.errorf("card %s is %dx%d, %s is %dx%d",
				filepath.Base(path), size.X, size.Y, first, want.X, want.Y)
		}
	}
}

// validateStrays warns about PNG files that are neither cards nor sheets
func (v *Validator) validateStrays() {
	entries, err := os.ReadDir(v.CardsDir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".png") || strings.HasPrefix(name, card.SheetPrefix) {
			continue
		}
		if _, ok := card.ParseFilename(name); !ok {
			v.warnf("unrecognized file in cards directory: %s (it will still be drawn)", name)
		}
	}
}

func imageSize(path string) (image.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Point{}, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return image.Point{}, err
	}
	return image.Pt(cfg.Width, cfg.Height), nil
}
