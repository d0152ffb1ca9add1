// Package sheet lays out card images on a single canvas.
package sheet

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sort"

	"github.com/arcanaland/cardsmith/internal/card"
	"github.com/arcanaland/cardsmith/internal/deck"
	"github.com/disintegration/imaging"
)

const (
	// DrawGutter separates cards on a draw sheet and pads its edges
	DrawGutter = 100

	contactRows = 2
)

var (
	ContactBackground = color.NRGBA{R: 200, G: 200, B: 200, A: 0xff}
	DrawBackground    = color.NRGBA{R: 255, G: 215, B: 0, A: 0xff}
)

var (
	ErrNoCards      = errors.New("no card images")
	ErrSizeMismatch = errors.New("card images differ in size")
)

// openAll decodes every card and checks they share one size
func openAll(paths []string) ([]image.Image, image.Point, error) {
	if len(paths) == 0 {
		return nil, image.Point{}, ErrNoCards
	}

	images := make([]image.Image, len(paths))
	var size image.Point
	for i, path := range paths {
		img, err := imaging.Open(path)
		if err != nil {
			return nil, image.Point{}, fmt.Errorf("failed to open card %s: %v", path, err)
		}
		if i == 0 {
			size = img.Bounds().Size()
		} else if img.Bounds().Size() != size {
			return nil, image.Point{}, fmt.Errorf("%w: %s is %v, expected %v", ErrSizeMismatch, path, img.Bounds().Size(), size)
		}
		images[i] = img
	}
	return images, size, nil
}

// ContactSheet arranges the cards, sorted by path, in two rows filled column
// by column on a gray background.
func ContactSheet(paths []string) (*image.NRGBA, error) {
	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)

	images, size, err := openAll(sorted)
	if err != nil {
		return nil, err
	}

	columns := (len(images) + contactRows - 1) / contactRows
	canvas := imaging.New(columns*size.X, contactRows*size.Y, ContactBackground)
	for i, img := range images {
		pos := image.Pt((i/contactRows)*size.X, (i%contactRows)*size.Y)
		canvas = imaging.Paste(canvas, img, pos)
	}
	return canvas, nil
}

// DrawSheet lays the cards out in one row on a gold background, with a
// gutter around and between them. Order is kept.
func DrawSheet(paths []string) (*image.NRGBA, error) {
	images, size, err := openAll(paths)
	if err != nil {
		return nil, err
	}

	n := len(images)
	canvas := imaging.New(n*size.X+(n+1)*DrawGutter, size.Y+2*DrawGutter, DrawBackground)
	for i, img := range images {
		pos := image.Pt(i*size.X+(i+1)*DrawGutter, DrawGutter)
		canvas = imaging.Paste(canvas, img, pos)
	}
	return canvas, nil
}

// Save writes a sheet as PNG, creating the parent directory
func Save(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating sheet directory: %v", err)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("error saving sheet %s: %v", path, err)
	}
	return nil
}

// ContactSheets writes asheet_{species}.png into cardsDir for every species
// named, or every species found when none are named. It returns the written
// paths.
func ContactSheets(cardsDir string, species ...card.Species) ([]string, error) {
	decks, err := deck.List(cardsDir)
	if err != nil {
		return nil, err
	}
	if len(species) == 0 {
		for _, sp := range card.AllSpecies() {
			if _, ok := decks[sp]; ok {
				species = append(species, sp)
			}
		}
		if len(species) == 0 {
			return nil, fmt.Errorf("%w in %s", ErrNoCards, cardsDir)
		}
	}

	var written []string
	for _, sp := range species {
		d, ok := decks[sp]
		if !ok {
			return written, fmt.Errorf("%w for species %s in %s", ErrNoCards, sp, cardsDir)
		}

		img, err := ContactSheet(d.Files())
		if err != nil {
			return written, fmt.Errorf("contact sheet %s: %w", sp, err)
		}

		path := filepath.Join(cardsDir, card.SheetFilename(sp))
		if err := Save(img, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
