package ppu

import (
	"bytes"
	"errors"
)

const (
	tileBytes    = TileSize << 1
	colorBytes   = 4
	paletteBytes = ColorsPerPalette * colorBytes

	// SnapshotSize is the size in bytes of a marshalled tile and palette
	// table
	SnapshotSize = NumTiles*tileBytes + NumPalettes*paletteBytes
)

var (
	errNotEnough = errors.New("ppu: not enough snapshot data")
	errTooMuch   = errors.New("ppu: too much snapshot data")
)

// MarshalBinary encodes the tile and palette tables. Each tile is written as
// eight bytes of bit0 followed by eight bytes of bit1, then each palette
// color is written as R, G, B, A.
func (p *PPU) MarshalBinary() ([]byte, error) {
	b := new(bytes.Buffer)
	b.Grow(SnapshotSize)

	for _, t := range p.Tiles {
		b.Write(t.Bit0[:])
		b.Write(t.Bit1[:])
	}

	for _, pal := range p.Palettes {
		for _, c := range pal {
			b.Write([]byte{c.R, c.G, c.B, c.A})
		}
	}

	return b.Bytes(), nil
}

// UnmarshalBinary decodes the tile and palette tables, sprites and
// background are left untouched.
func (p *PPU) UnmarshalBinary(b []byte) error {
	switch {
	case len(b) < SnapshotSize:
		return errNotEnough
	case len(b) > SnapshotSize:
		return errTooMuch
	}

	for i := range p.Tiles {
		o := i * tileBytes
		copy(p.Tiles[i].Bit0[:], b[o:o+TileSize])
		copy(p.Tiles[i].Bit1[:], b[o+TileSize:o+tileBytes])
	}

	b = b[NumTiles*tileBytes:]
	for i := range p.Palettes {
		for j := range p.Palettes[i] {
			o := i*paletteBytes + j*colorBytes
			c := &p.Palettes[i][j]
			c.R, c.G, c.B, c.A = b[o], b[o+1], b[o+2], b[o+3]
		}
	}

	return nil
}
