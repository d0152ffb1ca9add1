package sheet

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/arcanaland/cardsmith/internal/card"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

func writeCard(t *testing.T, dir, name string, w, h int, c color.NRGBA) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, imaging.Save(imaging.New(w, h, c), path))
	return path
}

func TestContactSheetLayout(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeCard(t, dir, "cyber_3.png", 10, 20, blue),
		writeCard(t, dir, "cyber_1.png", 10, 20, red),
		writeCard(t, dir, "cyber_2.png", 10, 20, green),
	}

	img, err := ContactSheet(paths)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 40, img.Bounds().Dy())

	// sorted by name, filled down each column first
	assert.Equal(t, red, img.NRGBAAt(5, 10))
	assert.Equal(t, green, img.NRGBAAt(5, 30))
	assert.Equal(t, blue, img.NRGBAAt(15, 10))
	assert.Equal(t, ContactBackground, img.NRGBAAt(15, 30))
}

func TestDrawSheetLayout(t *testing.T) {
	dir := t.TempDir()
	a := writeCard(t, dir, "a.png", 10, 20, red)
	b := writeCard(t, dir, "b.png", 10, 20, blue)

	img, err := DrawSheet([]string{b, a, b})
	require.NoError(t, err)
	assert.Equal(t, 3*10+4*DrawGutter, img.Bounds().Dx())
	assert.Equal(t, 20+2*DrawGutter, img.Bounds().Dy())

	assert.Equal(t, DrawBackground, img.NRGBAAt(50, 50))
	assert.Equal(t, blue, img.NRGBAAt(100, 100))
	assert.Equal(t, red, img.NRGBAAt(210, 110))
	assert.Equal(t, blue, img.NRGBAAt(320, 119))
	assert.Equal(t, DrawBackground, img.NRGBAAt(330, 110))
}

func TestSheetsRejectBadInput(t *testing.T) {
	_, err := DrawSheet(nil)
	assert.ErrorIs(t, err, ErrNoCards)

	_, err = ContactSheet(nil)
	assert.ErrorIs(t, err, ErrNoCards)

	dir := t.TempDir()
	a := writeCard(t, dir, "a.png", 10, 20, red)
	b := writeCard(t, dir, "b.png", 12, 20, red)

	_, err = DrawSheet([]string{a, b})
	assert.ErrorIs(t, err, ErrSizeMismatch)

	_, err = ContactSheet([]string{a, filepath.Join(dir, "missing.png")})
	assert.Error(t, err)
}

func TestContactSheetsWritesPerSpecies(t *testing.T) {
	dir := t.TempDir()
	for _, r := range card.AllRanks() {
		writeCard(t, dir, card.Card{Species: card.Zombie, Rank: r}.Filename(), 6, 8, green)
	}

	written, err := ContactSheets(dir, card.Zombie)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "asheet_zombie.png")}, written)

	img, err := imaging.Open(written[0])
	require.NoError(t, err)
	assert.Equal(t, 7*6, img.Bounds().Dx())
	assert.Equal(t, 2*8, img.Bounds().Dy())

	// a second run must not pick up the sheet it wrote
	written, err = ContactSheets(dir, card.Zombie)
	require.NoError(t, err)
	img, err = imaging.Open(written[0])
	require.NoError(t, err)
	assert.Equal(t, 7*6, img.Bounds().Dx())

	_, err = ContactSheets(dir, card.Cyber)
	assert.ErrorIs(t, err, ErrNoCards)
}

func TestContactSheetsDefaultsToPresentSpecies(t *testing.T) {
	dir := t.TempDir()
	for _, r := range card.AllRanks()[:4] {
		writeCard(t, dir, card.Card{Species: card.Hoodie, Rank: r}.Filename(), 6, 8, blue)
	}

	written, err := ContactSheets(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "asheet_hoodie.png")}, written)

	_, err = ContactSheets(t.TempDir())
	assert.ErrorIs(t, err, ErrNoCards)
}
