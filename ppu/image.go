package ppu

import (
	"image"
	"image/color"
)

func (pal Palette) colorPalette() color.Palette {
	cp := make(color.Palette, ColorsPerPalette)
	for i, c := range pal {
		cp[i] = c
	}
	return cp
}

// TileImage renders a single tile using the given palette from the palette
// table.
func (p *PPU) TileImage(tile, palette uint8) *image.Paletted {
	m := image.NewPaletted(image.Rect(0, 0, TileSize, TileSize), p.Palettes[palette&AttrPalette].colorPalette())
	drawTile(m, 0, 0, p.Tiles[tile])
	return m
}

// TableImage renders the first n tiles of the tile table, tilesWide tiles
// per row, all using the same palette.
func (p *PPU) TableImage(n, tilesWide int, palette uint8) *image.Paletted {
	if n > NumTiles {
		n = NumTiles
	}
	if tilesWide < 1 {
		tilesWide = 1
	}
	rows := (n + tilesWide - 1) / tilesWide
	m := image.NewPaletted(image.Rect(0, 0, tilesWide*TileSize, rows*TileSize), p.Palettes[palette&AttrPalette].colorPalette())
	for i := 0; i < n; i++ {
		drawTile(m, i%tilesWide*TileSize, i/tilesWide*TileSize, p.Tiles[i])
	}
	return m
}

func drawTile(m *image.Paletted, dx, dy int, t Tile) {
	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			m.SetColorIndex(dx+x, dy+y, t.ColorIndexAt(x, y))
		}
	}
}
