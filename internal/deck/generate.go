package deck

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/arcanaland/cardsmith/internal/card"
	"github.com/arcanaland/cardsmith/internal/config"
	"github.com/arcanaland/cardsmith/internal/render"
	"github.com/dustin/go-humanize"
)

// Composer renders and persists one card
type Composer interface {
	Compose(rank card.Rank, suit card.Suit, species card.Species, colorName string) (string, error)
}

// Generator drives the compositor over ranks and species
type Generator struct {
	composer Composer
	presets  config.Presets
	logger   *slog.Logger
}

var _ Composer = (*render.Compositor)(nil)

func NewGenerator(composer Composer, presets config.Presets, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		composer: composer,
		presets:  presets,
		logger:   logger,
	}
}

// GenerateAll renders every rank of every species, 13 cards per species.
// The first failure stops the run.
func (g *Generator) GenerateAll() ([]string, error) {
	var paths []string
	for _, sp := range card.AllSpecies() {
		preset, err := g.presets.Get(sp)
		if err != nil {
			return paths, err
		}
		suit, err := card.ParseSuit(preset.Suit)
		if err != nil {
			return paths, fmt.Errorf("preset %s: %v", sp, err)
		}

		l := g.logger.With("species", sp, "suit", suit, "color", preset.Color)
		for _, rank := range card.AllRanks() {
			path, err := g.compose(l, rank, suit, sp, preset.Color)
			if err != nil {
				return paths, err
			}
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// Generate renders a single card. Empty suit or color fall back to the
// species preset, then to the built-in defaults.
func (g *Generator) Generate(rank card.Rank, species card.Species, suit card.Suit, colorName string) (string, error) {
	preset, err := g.presets.Get(species)
	if err != nil {
		preset = config.FallbackPreset
	}
	if suit == "" {
		if suit, err = card.ParseSuit(preset.Suit); err != nil {
			return "", fmt.Errorf("preset %s: %v", species, err)
		}
	}
	if colorName == "" {
		colorName = preset.Color
	}

	l := g.logger.With("species", species, "suit", suit, "color", colorName)
	return g.compose(l, rank, suit, species, colorName)
}

func (g *Generator) compose(l *slog.Logger, rank card.Rank, suit card.Suit, species card.Species, colorName string) (string, error) {
	path, err := g.composer.Compose(rank, suit, species, colorName)
	if err != nil {
		return "", fmt.Errorf("error generating %s %s: %w", species, rank, err)
	}

	if info, err := os.Stat(path); err == nil {
		l.Info("wrote card", "rank", rank.Label(), "path", path, "size", humanize.Bytes(uint64(info.Size())))
	} else {
		l.Info("wrote card", "rank", rank.Label(), "path", path)
	}
	return path, nil
}
