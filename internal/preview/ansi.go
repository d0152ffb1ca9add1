// Package preview renders card images as 24-bit ANSI half-block art.
package preview

import (
	"crypto/md5"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

const halfBlock = '▀'

// Ansi converts img to width x height character cells. Every cell is an
// upper half block: the upper pixel pair sets the foreground and the lower
// pair the background.
func Ansi(img image.Image, width, height int) string {
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var b strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			fg := average(pixel(resized, x, y), pixel(resized, x+1, y))
			bg := average(pixel(resized, x, y+1), pixel(resized, x+1, y+1))
			b.WriteString(cell(halfBlock, fg, bg))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Size picks the cell dimensions for an image so that it fits in maxHeight
// terminal rows. A cell is about twice as tall as it is wide.
func Size(bounds image.Rectangle, maxHeight int) (int, int) {
	if maxHeight < 4 {
		maxHeight = 4
	}
	h := maxHeight
	w := int(2 * float64(h) * float64(bounds.Dx()) / float64(bounds.Dy()))
	if w < 1 {
		w = 1
	}
	return w, h
}

// pixel returns black outside the image
func pixel(img image.Image, x, y int) colorful.Color {
	if !image.Pt(x, y).In(img.Bounds()) {
		return colorful.Color{}
	}
	c, _ := colorful.MakeColor(img.At(x, y))
	return c
}

func average(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	n := float64(len(colors))
	return colorful.Color{R: r / n, G: g / n, B: b / n}
}

func cell(char rune, fg, bg colorful.Color) string {
	r1, g1, b1 := fg.Clamped().RGB255()
	r2, g2, b2 := bg.Clamped().RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		r1, g1, b1, r2, g2, b2, char)
}

// StripAnsi removes SGR escape sequences
func StripAnsi(s string) string {
	var b strings.Builder
	inEscape := false
	for _, c := range s {
		switch {
		case inEscape:
			if c == 'm' {
				inEscape = false
			}
		case c == '\033':
			inEscape = true
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// VisibleWidth counts the runes a line occupies on screen
func VisibleWidth(s string) int {
	return len([]rune(StripAnsi(s)))
}

// Cached returns the ANSI art for the card at path, reusing a copy in
// cacheDir while the card file is unchanged.
func Cached(cacheDir, path string, maxHeight int) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("card not found: %v", err)
	}

	key := fmt.Sprintf("%s|%d|%d", path, info.ModTime().UnixNano(), maxHeight)
	cachePath := filepath.Join(cacheDir, fmt.Sprintf("%x.ansi", md5.Sum([]byte(key))))
	if data, err := os.ReadFile(cachePath); err == nil {
		return string(data), nil
	}

	img, err := imaging.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open card: %v", err)
	}
	w, h := Size(img.Bounds(), maxHeight)
	art := Ansi(img, w, h)

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create ANSI cache directory: %v", err)
	}
	if err := os.WriteFile(cachePath, []byte(art), 0644); err != nil {
		return "", fmt.Errorf("failed to write ANSI art to cache: %v", err)
	}
	return art, nil
}

// Swatch renders n blank cells filled with c
func Swatch(c color.Color, n int) string {
	cc, _ := colorful.MakeColor(c)
	return strings.Repeat(cell(' ', cc, cc), n)
}
