/*
Package tile converts an RGBA sprite sheet into the 2 bitplane tiles and 4
color palettes used by the PPU.

The sheet is split into 8 by 8 tiles, laid out left to right then top to
bottom. Each tile may use at most four distinct colors. Tiles whose color
sets are subsets of one another share a palette bucket, each bucket is then
sorted into a canonical order with the transparent color first and every
pixel is replaced by its 2-bit index into that order.

The transparent color is marked in the source art by the RGB value EEEEEE,
the alpha channel is ignored when testing for it.
*/
package tile

import (
	"errors"
	"image"
	"image/color"
)

const (
	tileWidth        = 8
	tileHeight       = tileWidth
	tileX            = 8
	colorsPerPalette = 4
	paletteX         = 4
	paletteY         = 8
	transparent      = 0xee

	// DefaultCount is the number of tiles in the stock sprite sheet
	DefaultCount = 46
)

var (
	// ErrInvalidDimensions is returned when an image does not have the
	// expected size
	ErrInvalidDimensions = errors.New("tile: invalid dimensions")
	// ErrPaletteOverflow is returned when a tile or bucket needs more than
	// four colors
	ErrPaletteOverflow = errors.New("tile: more than four colors")
	// ErrColorNotInPalette is returned when a pixel has no index in its
	// assigned bucket
	ErrColorNotInPalette = errors.New("tile: color not in palette")
)

// Tile is an 8 by 8 block of colors, indexed [y][x].
type Tile [tileHeight][tileWidth]color.NRGBA

// IsTransparent reports whether c is the transparent marker color.
func IsTransparent(c color.NRGBA) bool {
	return c.R == transparent && c.G == transparent && c.B == transparent
}

// Compare orders two colors by R, G, B then A. It returns -1, 0 or +1.
func Compare(a, b color.NRGBA) int {
	x := [4]uint8{a.R, a.G, a.B, a.A}
	y := [4]uint8{b.R, b.G, b.B, b.A}
	for i := range x {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// Pixels flattens m into a row-major slice of colors with the upper left
// corner first.
func Pixels(m image.Image) []color.NRGBA {
	b := m.Bounds()
	pix := make([]color.NRGBA, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			pix = append(pix, color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA))
		}
	}
	return pix
}
