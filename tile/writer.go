package tile

import (
	"image"
	"io"
)

type encoder struct {
	w io.Writer
}

func (e *encoder) encode(s *Sheet) error {
	for _, t := range s.Tiles {
		if _, err := e.w.Write(t.Bit0[:]); err != nil {
			return err
		}
		if _, err := e.w.Write(t.Bit1[:]); err != nil {
			return err
		}
	}
	return nil
}

// Encode writes the first count tiles of the sprite sheet m to w in CHR
// format; for each tile eight bytes of the low bitplane followed by eight
// bytes of the high bitplane. The palettes are not written.
func Encode(w io.Writer, m image.Image, count int) error {
	s, err := ConvertImage(m, count)
	if err != nil {
		return err
	}

	e := encoder{w: w}

	return e.encode(s)
}
