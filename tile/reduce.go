package tile

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"
)

// Reduce quantizes m down to at most n colors using median cut. It is meant
// for sheets that were not drawn with a fixed palette; hand drawn pixel art
// should be converted as-is. The result's upper left corner is at (0, 0).
func Reduce(m image.Image, n int) *image.Paletted {
	b := m.Bounds()
	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), q.Quantize(make(color.Palette, 0, n), m))
	draw.Draw(pm, pm.Rect, m, b.Min, draw.Src)
	return pm
}
