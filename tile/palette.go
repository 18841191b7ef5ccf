package tile

import (
	"image"
	"image/color"

	"github.com/bodgit/gemstar/ppu"
)

// LoadPalettes copies a 4 by 8 palette sheet into the PPU palette table, one
// palette per row. The sheet is expected to be sorted already; the only
// change made is that a transparent marker in the first column is stored as
// transparent black.
func LoadPalettes(p *ppu.PPU, pix []color.NRGBA, width, height int) error {
	if width != paletteX || height != paletteY || len(pix) < width*height {
		return ErrInvalidDimensions
	}

	for i, c := range pix[:width*height] {
		if i%paletteX == 0 && IsTransparent(c) {
			c = color.NRGBA{}
		}
		p.Palettes[i/paletteX][i%paletteX] = c
	}

	return nil
}

// LoadPalettesImage is like LoadPalettes but takes the colors from m.
func LoadPalettesImage(p *ppu.PPU, m image.Image) error {
	b := m.Bounds()
	return LoadPalettes(p, Pixels(m), b.Dx(), b.Dy())
}
