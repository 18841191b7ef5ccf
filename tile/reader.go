package tile

import (
	"errors"
	"image"
	"image/color"
	"io"
	"io/ioutil"

	"github.com/bodgit/gemstar/ppu"
)

const chrTileBytes = tileHeight << 1

var errNotEnough = errors.New("tile: not enough CHR data")

// Grayscale is the palette used when decoding CHR data, which carries no
// color information of its own.
var Grayscale = color.Palette{
	color.NRGBA{0x00, 0x00, 0x00, 0x00},
	color.NRGBA{0x55, 0x55, 0x55, 0xff},
	color.NRGBA{0xaa, 0xaa, 0xaa, 0xff},
	color.NRGBA{0xff, 0xff, 0xff, 0xff},
}

type decoder struct {
	r io.Reader

	tiles []ppu.Tile
	image *image.Paletted
}

func (d *decoder) readTiles() error {
	b, err := ioutil.ReadAll(d.r)
	if err != nil {
		return err
	}

	if len(b)%chrTileBytes != 0 {
		return errNotEnough
	}

	d.tiles = make([]ppu.Tile, len(b)/chrTileBytes)
	for i := range d.tiles {
		o := i * chrTileBytes
		copy(d.tiles[i].Bit0[:], b[o:o+tileHeight])
		copy(d.tiles[i].Bit1[:], b[o+tileHeight:o+chrTileBytes])
	}

	return nil
}

func (d *decoder) bounds() image.Rectangle {
	rows := (len(d.tiles) + tileX - 1) / tileX
	return image.Rect(0, 0, tileX*tileWidth, rows*tileHeight)
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.r = r

	if err := d.readTiles(); err != nil {
		return err
	}

	if configOnly {
		return nil
	}

	d.image = image.NewPaletted(d.bounds(), Grayscale)

	for i, t := range d.tiles {
		tx, ty := i%tileX, i/tileX
		for y := 0; y < tileHeight; y++ {
			for x := 0; x < tileWidth; x++ {
				d.image.SetColorIndex(tx*tileWidth+x, ty*tileHeight+y, t.ColorIndexAt(x, y))
			}
		}
	}

	return nil
}

// Decode reads CHR data from r and returns it as an image.Image, eight tiles
// to a row.
func Decode(r io.Reader) (image.Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of CHR data without
// building the image.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	b := d.bounds()
	return image.Config{
		ColorModel: Grayscale,
		Width:      b.Dx(),
		Height:     b.Dy(),
	}, nil
}
