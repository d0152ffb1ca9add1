// Package icon loads suit icons and tints them for a species.
package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"

	"github.com/arcanaland/cardsmith/internal/card"
	"github.com/dgraph-io/ristretto/v2"
	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// blackThreshold bounds each channel of a pixel that counts as outline
const blackThreshold = 10

// Recolor returns a copy of img where every pixel that is not near-black takes
// the RGB of c. Near-black pixels and all alpha values are kept as they are.
func Recolor(img image.Image, c color.Color) *image.NRGBA {
	out := imaging.Clone(img)
	tint := color.NRGBAModel.Convert(c).(color.NRGBA)

	for i := 0; i < len(out.Pix); i += 4 {
		px := out.Pix[i : i+4 : i+4]
		if px[0] < blackThreshold && px[1] < blackThreshold && px[2] < blackThreshold {
			continue
		}
		px[0], px[1], px[2] = tint.R, tint.G, tint.B
	}
	return out
}

// Recolorer produces sized, tinted suit icons from the assets directory.
// Results are cached per suit, size and color.
type Recolorer struct {
	dir   string
	cache *ristretto.Cache[string, image.Image]
}

// NewRecolorer creates a recolorer reading assets from dir
func NewRecolorer(dir string) (*Recolorer, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, image.Image]{
		NumCounters: 1 << 10,
		MaxCost:     1 << 28,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating icon cache: %v", err)
	}
	return &Recolorer{dir: dir, cache: cache}, nil
}

// Icon returns the suit icon tinted with c and resized to exactly width x height
func (r *Recolorer) Icon(suit card.Suit, width, height int, c color.Color) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid icon size %dx%d", width, height)
	}

	tint := color.NRGBAModel.Convert(c).(color.NRGBA)
	key := fmt.Sprintf("%s|%dx%d|%02x%02x%02x", suit, width, height, tint.R, tint.G, tint.B)
	if img, ok := r.cache.Get(key); ok {
		return img, nil
	}

	src, err := r.load(suit, width, height)
	if err != nil {
		return nil, err
	}

	img := resize.Resize(uint(width), uint(height), Recolor(src, tint), resize.Lanczos3)
	r.cache.Set(key, img, int64(width*height*4))
	return img, nil
}

// Close releases the icon cache
func (r *Recolorer) Close() {
	r.cache.Close()
}

// AssetPath returns the file backing a suit icon, preferring PNG over SVG
func AssetPath(dir string, suit card.Suit) (string, error) {
	for _, ext := range []string{".png", ".svg"} {
		path := filepath.Join(dir, string(suit)+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no icon asset for suit %s in %s", suit, dir)
}

// load reads the suit asset. SVG assets are rasterized straight at the
// target size.
func (r *Recolorer) load(suit card.Suit, width, height int) (image.Image, error) {
	path, err := AssetPath(r.dir, suit)
	if err != nil {
		return nil, err
	}

	if filepath.Ext(path) == ".svg" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read icon: %v", err)
		}
		return rasterizeSVG(data, width, height)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open icon: %v", err)
	}
	return img, nil
}

func rasterizeSVG(data []byte, w, h int) (image.Image, error) {
	svg, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error parsing SVG: %v", err)
	}

	svg.SetTarget(0, 0, float64(w), float64(h))
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), &image.Uniform{color.Transparent}, image.Point{}, draw.Src)
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	svg.Draw(raster, 1.0)

	return rgba, nil
}
