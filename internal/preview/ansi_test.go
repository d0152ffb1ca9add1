package preview

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnsiSolidImage(t *testing.T) {
	img := imaging.New(8, 8, color.NRGBA{R: 255, A: 255})

	art := Ansi(img, 4, 4)
	lines := strings.Split(strings.TrimSuffix(art, "\n"), "\n")
	require.Len(t, lines, 4)

	for _, line := range lines {
		assert.Equal(t, 4, VisibleWidth(line))
		assert.Equal(t, strings.Repeat("▀", 4), StripAnsi(line))
		assert.Contains(t, line, "\x1b[38;2;255;0;0m\x1b[48;2;255;0;0m")
	}
}

func TestAnsiSplitsTopAndBottom(t *testing.T) {
	img := imaging.New(2, 2, color.NRGBA{A: 255})
	img.SetNRGBA(0, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})

	art := Ansi(img, 1, 1)
	assert.Contains(t, art, "\x1b[38;2;0;255;0m")
	assert.Contains(t, art, "\x1b[48;2;0;0;0m")
}

func TestSize(t *testing.T) {
	w, h := Size(image.Rect(0, 0, 1280, 1800), 32)
	assert.Equal(t, 32, h)
	assert.Equal(t, 45, w)

	w, h = Size(image.Rect(0, 0, 1280, 1800), 0)
	assert.Equal(t, 4, h)
	assert.Equal(t, 5, w)
}

func TestStripAnsi(t *testing.T) {
	assert.Equal(t, "ab", StripAnsi("\x1b[31ma\x1b[0mb"))
	assert.Equal(t, "plain", StripAnsi("plain"))
	assert.Equal(t, 3, VisibleWidth(Swatch(color.White, 3)))
}

func TestCachedReusesUntilCardChanges(t *testing.T) {
	dir := t.TempDir()
	cacheDir := filepath.Join(dir, "cache")
	path := filepath.Join(dir, "cyber_A.png")
	require.NoError(t, imaging.Save(imaging.New(10, 14, color.NRGBA{B: 255, A: 255}), path))

	first, err := Cached(cacheDir, path, 6)
	require.NoError(t, err)
	entries, err := os.ReadDir(cacheDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	second, err := Cached(cacheDir, path, 6)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	require.NoError(t, imaging.Save(imaging.New(10, 14, color.NRGBA{R: 255, A: 255}), path))
	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, later, later))

	third, err := Cached(cacheDir, path, 6)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)

	_, err = Cached(cacheDir, filepath.Join(dir, "missing.png"), 6)
	assert.Error(t, err)
}
