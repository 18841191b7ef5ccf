/*
Package ppu holds the state consumed by a fixed-function, NES-like picture
processing unit.

The PPU draws a 256 by 240 pixel screen from a table of 256 8 by 8 tiles and a
table of eight 4 color palettes. Each tile is stored as two bitplanes, one
byte per row, where the most significant bit is the leftmost pixel; the low
bit of a pixel's palette index comes from bit0 and the high bit from bit1.
Color 0 of a palette is conventionally transparent.
*/
package ppu

import "image/color"

const (
	ScreenWidth      = 256
	ScreenHeight     = 240
	BackgroundWidth  = 64
	BackgroundHeight = 60
	NumTiles         = 256
	NumPalettes      = 8
	NumSprites       = 64
	ColorsPerPalette = 4
	TileSize         = 8
)

// Sprite attribute bits
const (
	AttrPalette = 0x07
	AttrBehind  = 0x80
)

// Palette is a set of four colors, index 0 is normally transparent.
type Palette [ColorsPerPalette]color.NRGBA

// Tile is a single 8 by 8 tile stored as two bitplanes.
type Tile struct {
	Bit0 [TileSize]uint8
	Bit1 [TileSize]uint8
}

// ColorIndexAt returns the 2-bit palette index of the pixel at (x, y).
func (t Tile) ColorIndexAt(x, y int) uint8 {
	shift := uint(TileSize - 1 - x)
	return (t.Bit0[y]>>shift)&1 | ((t.Bit1[y]>>shift)&1)<<1
}

// SetColorIndex sets the 2-bit palette index of the pixel at (x, y).
func (t *Tile) SetColorIndex(x, y int, index uint8) {
	mask := uint8(1) << uint(TileSize-1-x)
	t.Bit0[y] &^= mask
	t.Bit1[y] &^= mask
	if index&1 != 0 {
		t.Bit0[y] |= mask
	}
	if index>>1&1 != 0 {
		t.Bit1[y] |= mask
	}
}

// Sprite describes one hardware sprite.
type Sprite struct {
	X          uint8
	Y          uint8
	Index      uint8
	Attributes uint8
}

// PPU is the tile, palette, sprite and background state. The asset pipeline
// writes the tile and palette tables once at startup; after that they are
// only read.
type PPU struct {
	Palettes   [NumPalettes]Palette
	Tiles      [NumTiles]Tile
	Background [BackgroundWidth * BackgroundHeight]uint16
	Sprites    [NumSprites]Sprite
}

// New returns an empty PPU
func New() *PPU {
	return &PPU{}
}

// BackgroundEntry packs a tile and palette index into a background value.
func BackgroundEntry(tile, palette uint8) uint16 {
	return uint16(palette&AttrPalette)<<8 | uint16(tile)
}

// FillBackground sets every background entry to the given tile and palette.
func (p *PPU) FillBackground(tile, palette uint8) {
	p.FillBackgroundRows(0, tile, palette)
}

// FillBackgroundRows sets every background entry from row onwards to the
// given tile and palette.
func (p *PPU) FillBackgroundRows(row int, tile, palette uint8) {
	if row < 0 {
		row = 0
	}
	v := BackgroundEntry(tile, palette)
	for i := row * BackgroundWidth; i < len(p.Background); i++ {
		p.Background[i] = v
	}
}

// PlayerSprites returns the four player sprites; head, body, gemstar and
// reticle.
func PlayerSprites() [4]Sprite {
	return [4]Sprite{
		{Attributes: 0x00},
		{Attributes: 0x00},
		{Attributes: 0x01},
		{Attributes: 0x02},
	}
}
