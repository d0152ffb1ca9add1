package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/arcanaland/cardsmith/internal/card"
)

// Deck is the set of generated card files of one species
type Deck struct {
	Species card.Species
	Path    string

	// Card files keyed by rank label
	Cards map[string]string
}

// List groups the card files found in cardsDir by species.
// Contact sheets and unrelated files are ignored.
func List(cardsDir string) (map[card.Species]*Deck, error) {
	entries, err := os.ReadDir(cardsDir)
	if err != nil {
		return nil, fmt.Errorf("error reading cards directory: %v", err)
	}

	decks := make(map[card.Species]*Deck)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		c, ok := card.ParseFilename(entry.Name())
		if !ok {
			continue
		}

		d, ok := decks[c.Species]
		if !ok {
			d = &Deck{Species: c.Species, Path: cardsDir, Cards: make(map[string]string)}
			decks[c.Species] = d
		}
		d.Cards[c.Rank.Label()] = filepath.Join(cardsDir, entry.Name())
	}

	return decks, nil
}

// Files returns the card paths sorted by file name
func (d *Deck) Files() []string {
	files := make([]string, 0, len(d.Cards))
	for _, path := range d.Cards {
		files = append(files, path)
	}
	sort.Strings(files)
	return files
}

// Missing returns the labels of full deck ranks that have no file
func (d *Deck) Missing() []string {
	var missing []string
	for _, r := range card.AllRanks() {
		if _, ok := d.Cards[r.Label()]; !ok {
			missing = append(missing, r.Label())
		}
	}
	return missing
}

// Complete reports whether all 13 ranks are present
func (d *Deck) Complete() bool {
	return len(d.Missing()) == 0
}
