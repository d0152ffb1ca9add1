package render

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// LoadFace loads the TrueType font at path sized to points. When path is
// empty or missing the bundled Go Regular font is used.
func LoadFace(path string, points float64) (font.Face, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			face, err := gg.LoadFontFace(path, points)
			if err != nil {
				return nil, fmt.Errorf("error loading font %s: %v", path, err)
			}
			return face, nil
		}
	}

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("error parsing fallback font: %v", err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: points}), nil
}

// drawText writes s onto a copy of img. (x, y) is the anchor point and
// (ax, ay) its relative position inside the text box, as in gg.
func drawText(img image.Image, face font.Face, s string, x, y, ax, ay float64, c color.Color) *image.NRGBA {
	dc := gg.NewContextForImage(img)
	dc.SetFontFace(face)
	dc.SetColor(c)
	dc.DrawStringAnchored(s, x, y, ax, ay)
	return imaging.Clone(dc.Image())
}
