// Package render assembles finished card images.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/arcanaland/cardsmith/internal/card"
	"github.com/arcanaland/cardsmith/internal/config"
	"github.com/arcanaland/cardsmith/internal/icon"
	"github.com/arcanaland/cardsmith/internal/layout"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
)

const (
	// CardWidth and CardHeight are the full card size in pixels
	CardWidth  = 1280
	CardHeight = 1800

	// faceFooter is cut from the bottom of face artwork before scaling
	faceFooter = 60
)

// ErrMissingFaceArt is returned for a face card whose species has no artwork
var ErrMissingFaceArt = errors.New("missing face card artwork")

// Compositor renders cards onto a fixed size black canvas
type Compositor struct {
	Width     int
	Height    int
	AssetsDir string
	OutputDir string
	Presets   config.Presets

	icons *icon.Recolorer
	face  font.Face
}

// NewCompositor creates a compositor for full size cards. fontFile may be
// empty to use the bundled font.
func NewCompositor(assetsDir, outputDir, fontFile string, presets config.Presets) (*Compositor, error) {
	return NewCompositorSize(CardWidth, CardHeight, assetsDir, outputDir, fontFile, presets)
}

// NewCompositorSize creates a compositor with a custom canvas size
func NewCompositorSize(width, height int, assetsDir, outputDir, fontFile string, presets config.Presets) (*Compositor, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}

	face, err := LoadFace(fontFile, float64(height/10))
	if err != nil {
		return nil, err
	}

	icons, err := icon.NewRecolorer(assetsDir)
	if err != nil {
		return nil, err
	}

	return &Compositor{
		Width:     width,
		Height:    height,
		AssetsDir: assetsDir,
		OutputDir: outputDir,
		Presets:   presets,
		icons:     icons,
		face:      face,
	}, nil
}

// Close releases the icon cache
func (c *Compositor) Close() {
	c.icons.Close()
}

// CardPath is where a card is written
func (c *Compositor) CardPath(rank card.Rank, species card.Species) string {
	return filepath.Join(c.OutputDir, card.Card{Species: species, Rank: rank}.Filename())
}

// Compose renders a card and writes it to {OutputDir}/{species}_{label}.png,
// replacing any previous file. It returns the written path.
func (c *Compositor) Compose(rank card.Rank, suit card.Suit, species card.Species, colorName string) (string, error) {
	img, err := c.Render(rank, suit, species, colorName)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(c.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %v", err)
	}

	path := c.CardPath(rank, species)
	if filepath.Dir(path) != filepath.Clean(c.OutputDir) {
		return "", fmt.Errorf("card label %q escapes the output directory", rank.Label())
	}
	if err := imaging.Save(img, path); err != nil {
		return "", fmt.Errorf("error saving card %s: %v", path, err)
	}
	return path, nil
}

// Render builds the card image without writing it
func (c *Compositor) Render(rank card.Rank, suit card.Suit, species card.Species, colorName string) (*image.NRGBA, error) {
	tint, err := icon.ParseColor(colorName)
	if err != nil {
		return nil, err
	}

	canvas := imaging.New(c.Width, c.Height, color.NRGBA{A: 0xff})

	switch rank.Kind() {
	case card.Numeric:
		canvas, err = c.placeIcons(canvas, rank, suit, tint)
	case card.Face:
		canvas, err = c.placeFaceArt(canvas, rank, species)
	default:
		canvas = drawText(canvas, c.face, "?", float64(c.Width)/2, float64(c.Height)/2, 0.5, 0.5, tint)
	}
	if err != nil {
		return nil, err
	}

	return c.stampLabels(canvas, rank.Label(), tint), nil
}

func (c *Compositor) placeIcons(canvas *image.NRGBA, rank card.Rank, suit card.Suit, tint color.Color) (*image.NRGBA, error) {
	iconW, iconH := c.Width/6, c.Height/7
	suitIcon, err := c.icons.Icon(suit, iconW, iconH, tint)
	if err != nil {
		return nil, err
	}

	points, ok := layout.SymmetricPoints(rank.Count(), c.Width, c.Height)
	if !ok {
		return nil, fmt.Errorf("no layout for rank %s", rank)
	}

	for _, p := range points[:rank.Count()] {
		pos := image.Pt(
			int(math.Ceil(p.X-float64(iconW)/2)),
			int(math.Ceil(p.Y-float64(iconH)/2)),
		)
		canvas = imaging.Overlay(canvas, suitIcon, pos, 1.0)
	}
	return canvas, nil
}

// placeFaceArt pastes the species artwork once upright and once upside down
func (c *Compositor) placeFaceArt(canvas *image.NRGBA, rank card.Rank, species card.Species) (*image.NRGBA, error) {
	preset, err := c.Presets.Get(species)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingFaceArt, err)
	}
	file, ok := preset.FaceArt(rank)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no %s artwork", ErrMissingFaceArt, species, rank)
	}

	art, err := imaging.Open(filepath.Join(c.AssetsDir, file))
	if err != nil {
		return nil, fmt.Errorf("failed to open face artwork: %v", err)
	}

	b := art.Bounds()
	if b.Dy() <= faceFooter {
		return nil, fmt.Errorf("face artwork %s is too short to crop", file)
	}
	art = imaging.Crop(art, image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y-faceFooter))

	side := int(math.Ceil(float64(c.Height) / 3))
	art = imaging.Resize(art, side, side, imaging.Lanczos)

	pos := image.Pt(c.Width/4, c.Height/6)
	canvas = imaging.Overlay(canvas, art, pos, 1.0)
	canvas = imaging.Rotate180(canvas)
	return imaging.Overlay(canvas, art, pos, 1.0), nil
}

// stampLabels writes the rank label in the top left corner, then again with
// the card turned around so it shows in the bottom right corner too.
func (c *Compositor) stampLabels(canvas *image.NRGBA, label string, tint color.Color) *image.NRGBA {
	x, y := float64(c.Width/60), float64(c.Height/60)

	canvas = drawText(canvas, c.face, label, x, y, 0, 1, tint)
	canvas = imaging.Rotate180(canvas)
	canvas = drawText(canvas, c.face, label, x, y, 0, 1, tint)
	return imaging.Rotate180(canvas)
}
