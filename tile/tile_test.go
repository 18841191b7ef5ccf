package tile

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	sentinel = color.NRGBA{0xee, 0xee, 0xee, 0xff}
	red      = color.NRGBA{0xff, 0x00, 0x00, 0xff}
	green    = color.NRGBA{0x00, 0xff, 0x00, 0xff}
	blue     = color.NRGBA{0x00, 0x00, 0xff, 0xff}
	black    = color.NRGBA{0x00, 0x00, 0x00, 0xff}
	white    = color.NRGBA{0xff, 0xff, 0xff, 0xff}
)

// fill returns a tile where pixel i (row-major) is colors[i%len(colors)]
func fill(colors ...color.NRGBA) Tile {
	var t Tile
	for y := range t {
		for x := range t[y] {
			t[y][x] = colors[(y*tileWidth+x)%len(colors)]
		}
	}
	return t
}

// sheet lays tiles out eight to a row into a row-major pixel buffer
func sheet(rows int, tiles ...Tile) []color.NRGBA {
	width := tileX * tileWidth
	pix := make([]color.NRGBA, width*rows*tileHeight)
	for i := range pix {
		pix[i] = sentinel
	}
	for i, t := range tiles {
		for y := range t {
			for x := range t[y] {
				pix[(i/tileX*tileHeight+y)*width+i%tileX*tileWidth+x] = t[y][x]
			}
		}
	}
	return pix
}

func TestIsTransparent(t *testing.T) {
	assert.True(t, IsTransparent(sentinel))
	assert.True(t, IsTransparent(color.NRGBA{0xee, 0xee, 0xee, 0x00}))
	assert.False(t, IsTransparent(color.NRGBA{0xee, 0xee, 0xef, 0xff}))
	assert.False(t, IsTransparent(white))
}

func TestCompare(t *testing.T) {
	tables := []struct {
		a, b color.NRGBA
		want int
	}{
		{red, red, 0},
		{blue, red, -1},
		{red, blue, 1},
		{green, blue, 1},
		{color.NRGBA{1, 2, 3, 4}, color.NRGBA{1, 2, 3, 5}, -1},
		{color.NRGBA{1, 2, 4, 0}, color.NRGBA{1, 2, 3, 5}, 1},
	}

	for _, table := range tables {
		assert.Equal(t, table.want, Compare(table.a, table.b))
	}
}

func TestTileColors(t *testing.T) {
	tile := fill(sentinel, red, sentinel, blue)
	assert.Equal(t, Bucket{sentinel, red, blue}, tile.Colors())

	tile = fill(black)
	assert.Equal(t, Bucket{black}, tile.Colors())
}
