// Package draw samples random cards and assembles them into a sheet.
package draw

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/arcanaland/cardsmith/internal/card"
	"github.com/arcanaland/cardsmith/internal/sheet"
)

// Service draws cards from a generated cards directory. It is safe for
// concurrent use.
type Service struct {
	cardsDir string
	outDir   string

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService creates a draw service. Sheets are written to outDir. rng may
// be nil for a randomly seeded source.
func NewService(cardsDir, outDir string, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Service{cardsDir: cardsDir, outDir: outDir, rng: rng}
}

// NewSeeded returns a deterministic source for reproducible draws
func NewSeeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Cards lists every card image in the cards directory, contact sheets excluded
func (s *Service) Cards() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.cardsDir, "*.png"))
	if err != nil {
		return nil, err
	}

	cards := matches[:0]
	for _, m := range matches {
		if strings.HasPrefix(filepath.Base(m), card.SheetPrefix) {
			continue
		}
		cards = append(cards, m)
	}
	sort.Strings(cards)
	return cards, nil
}

// Sample picks k entries uniformly at random with replacement
func Sample(rng *rand.Rand, pool []string, k int) []string {
	if len(pool) == 0 || k <= 0 {
		return nil
	}
	out := make([]string, k)
	for i := range out {
		out[i] = pool[rng.IntN(len(pool))]
	}
	return out
}

// Draw samples k cards, writes them as a draw sheet and returns the sheet
// path. The caller owns the file.
func (s *Service) Draw(k int) (string, []string, error) {
	if k < 1 {
		return "", nil, fmt.Errorf("invalid draw count: %d", k)
	}

	pool, err := s.Cards()
	if err != nil {
		return "", nil, err
	}
	if len(pool) == 0 {
		return "", nil, fmt.Errorf("%w in %s", sheet.ErrNoCards, s.cardsDir)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	drawn := Sample(s.rng, pool, k)
	img, err := sheet.DrawSheet(drawn)
	if err != nil {
		return "", nil, err
	}

	path, err := s.sheetPath()
	if err != nil {
		return "", nil, err
	}
	if err := sheet.Save(img, path); err != nil {
		return "", nil, err
	}
	return path, drawn, nil
}

// maxSheetNames bounds the random sheet names tried before giving up
const maxSheetNames = 100

// sheetPath picks {outDir}/{0..10000}.png that no sheet still occupies.
// Callers hold s.mu.
func (s *Service) sheetPath() (string, error) {
	for i := 0; i < maxSheetNames; i++ {
		path := filepath.Join(s.outDir, strconv.Itoa(s.rng.IntN(10001))+".png")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
	}
	return "", fmt.Errorf("no free sheet name in %s", s.outDir)
}

// Remove deletes a sheet produced by Draw
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing sheet: %v", err)
	}
	return nil
}
