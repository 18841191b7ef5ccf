package tile

import (
	"image"
	"image/color"

	"github.com/bodgit/gemstar/ppu"
)

// EncodeTile converts each pixel of t into its index within the resolved
// bucket b and packs the indices into two bitplanes.
func EncodeTile(t Tile, b Bucket) (ppu.Tile, error) {
	var e ppu.Tile
	for y := 0; y < tileHeight; y++ {
		var bit0, bit1 uint8
		for x := 0; x < tileWidth; x++ {
			i, ok := b.Index(t[y][x])
			if !ok {
				return ppu.Tile{}, ErrColorNotInPalette
			}
			bit0 |= (i & 1) << uint(7-x)
			bit1 |= (i >> 1 & 1) << uint(7-x)
		}
		e.Bit0[y] = bit0
		e.Bit1[y] = bit1
	}
	return e, nil
}

// DecodeTile is the inverse of EncodeTile.
func DecodeTile(e ppu.Tile, b Bucket) (Tile, error) {
	var t Tile
	for y := 0; y < tileHeight; y++ {
		for x := 0; x < tileWidth; x++ {
			i := int(e.ColorIndexAt(x, y))
			if i >= len(b) {
				return Tile{}, ErrColorNotInPalette
			}
			t[y][x] = b[i]
		}
	}
	return t, nil
}

// Sheet is the result of converting a sprite sheet.
type Sheet struct {
	// Tiles holds the encoded tiles in sheet order
	Tiles []ppu.Tile
	// Buckets holds each palette bucket in canonical index order
	Buckets []Bucket
	// Assignment maps each tile to its bucket
	Assignment []int
}

// Convert runs the whole pipeline over a row-major pixel buffer; tiles are
// extracted, bucketed, each bucket is resolved and finally each tile is
// encoded against its bucket.
func Convert(pix []color.NRGBA, width, height, count int) (*Sheet, error) {
	tiles, err := Extract(pix, width, height, count)
	if err != nil {
		return nil, err
	}

	buckets, assignment, err := Assign(tiles)
	if err != nil {
		return nil, err
	}

	for i := range buckets {
		buckets[i] = Resolve(buckets[i])
	}

	s := &Sheet{
		Tiles:      make([]ppu.Tile, len(tiles)),
		Buckets:    buckets,
		Assignment: assignment,
	}

	for i, t := range tiles {
		if s.Tiles[i], err = EncodeTile(t, buckets[assignment[i]]); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// ConvertImage is like Convert but takes the pixels from m.
func ConvertImage(m image.Image, count int) (*Sheet, error) {
	b := m.Bounds()
	return Convert(Pixels(m), b.Dx(), b.Dy(), count)
}

// Apply writes the encoded tiles into the start of the PPU tile table.
func (s *Sheet) Apply(p *ppu.PPU) error {
	if len(s.Tiles) > len(p.Tiles) {
		return ErrInvalidDimensions
	}
	copy(p.Tiles[:], s.Tiles)
	return nil
}

// Image renders the sheet back into colors using each tile's bucket, tiles
// are laid out eight to a row.
func (s *Sheet) Image() (*image.NRGBA, error) {
	rows := (len(s.Tiles) + tileX - 1) / tileX
	m := image.NewNRGBA(image.Rect(0, 0, tileX*tileWidth, rows*tileHeight))
	for i, e := range s.Tiles {
		t, err := DecodeTile(e, s.Buckets[s.Assignment[i]])
		if err != nil {
			return nil, err
		}
		dx, dy := i%tileX*tileWidth, i/tileX*tileHeight
		for y := range t {
			for x, c := range t[y] {
				m.SetNRGBA(dx+x, dy+y, c)
			}
		}
	}
	return m, nil
}
