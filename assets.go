package gemstar

import (
	"bytes"
	"encoding/binary"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io/ioutil"
	"os"

	"github.com/bodgit/gemstar/ppu"
	"github.com/bodgit/gemstar/tile"
	"github.com/cespare/xxhash"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

func decodeImage(file string, b []byte) (image.Image, error) {
	m, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", file)
	}
	return m, nil
}

// assetHash identifies a pair of asset files and the options used to
// convert them
func (g *Gemstar) assetHash(sheet, palettes []byte) uint64 {
	h := xxhash.New()
	var tmp [8]byte
	binary.LittleEndian.PutUint32(tmp[:4], uint32(g.count))
	binary.LittleEndian.PutUint32(tmp[4:], uint32(g.reduce))
	h.Write(tmp[:])
	binary.LittleEndian.PutUint64(tmp[:], uint64(len(sheet)))
	h.Write(tmp[:])
	h.Write(sheet)
	h.Write(palettes)
	return h.Sum64()
}

func (g *Gemstar) convert(p *ppu.PPU, sheetFile string, sheet []byte, palettesFile string, palettes []byte) error {
	m, err := decodeImage(sheetFile, sheet)
	if err != nil {
		return err
	}
	if g.reduce > 0 {
		m = tile.Reduce(m, g.reduce)
	}

	s, err := tile.ConvertImage(m, g.count)
	if err != nil {
		return errors.Wrapf(err, "convert %s", sheetFile)
	}
	g.logger.Printf("\"%s\": %d tiles in %d palette buckets\n", sheetFile, len(s.Tiles), len(s.Buckets))

	if err := s.Apply(p); err != nil {
		return errors.Wrapf(err, "convert %s", sheetFile)
	}

	pm, err := decodeImage(palettesFile, palettes)
	if err != nil {
		return err
	}

	if err := tile.LoadPalettesImage(p, pm); err != nil {
		return errors.Wrapf(err, "load %s", palettesFile)
	}

	return nil
}

// Load builds a new PPU from the sprite sheet and palette sheet files. If a
// cache database is in use, previously converted assets are taken from it
// and newly converted ones are added to it.
func (g *Gemstar) Load(sheetFile, palettesFile string) (*ppu.PPU, error) {
	sheet, err := ioutil.ReadFile(sheetFile)
	if err != nil {
		return nil, err
	}

	palettes, err := ioutil.ReadFile(palettesFile)
	if err != nil {
		return nil, err
	}

	p := ppu.New()
	hash := g.assetHash(sheet, palettes)

	var cached []byte
	if g.db != nil {
		if cached, err = g.db.FindSnapshot(hash); err != nil {
			return nil, err
		}
	}

	if cached != nil {
		g.logger.Printf("Using cached tables for \"%s\", with hash \"%016X\"\n", sheetFile, hash)
		if err := p.UnmarshalBinary(cached); err != nil {
			return nil, err
		}
	} else {
		if err := g.convert(p, sheetFile, sheet, palettesFile, palettes); err != nil {
			return nil, err
		}
		if g.db != nil {
			if err := g.db.AddSnapshot(hash, p); err != nil {
				return nil, err
			}
		}
	}

	initScene(p)

	return p, nil
}

// Convert loads the sprite sheet and palette sheet and writes the resulting
// tile and palette tables to out.
func (g *Gemstar) Convert(sheetFile, palettesFile, out string) error {
	p, err := g.Load(sheetFile, palettesFile)
	if err != nil {
		return err
	}

	b, err := p.MarshalBinary()
	if err != nil {
		return err
	}

	return ioutil.WriteFile(out, b, 0666)
}

// WriteCHR writes the tiles of the sprite sheet to out as raw CHR data.
func (g *Gemstar) WriteCHR(sheetFile, out string) error {
	b, err := ioutil.ReadFile(sheetFile)
	if err != nil {
		return err
	}

	m, err := decodeImage(sheetFile, b)
	if err != nil {
		return err
	}
	if g.reduce > 0 {
		m = tile.Reduce(m, g.reduce)
	}

	buf := new(bytes.Buffer)
	if err := tile.Encode(buf, m, g.count); err != nil {
		return errors.Wrapf(err, "convert %s", sheetFile)
	}

	return ioutil.WriteFile(out, buf.Bytes(), 0666)
}

// Preview renders the tile table from a snapshot file to a PNG, eight tiles
// to a row, coloured with the given palette and scaled up by scale.
func (g *Gemstar) Preview(snapshot, out string, palette uint8, scale int) error {
	b, err := ioutil.ReadFile(snapshot)
	if err != nil {
		return err
	}

	p := ppu.New()
	if err := p.UnmarshalBinary(b); err != nil {
		return errors.Wrapf(err, "read %s", snapshot)
	}

	if int(palette) >= ppu.NumPalettes {
		return errors.Errorf("palette %d out of range", palette)
	}
	if scale < 1 {
		scale = 1
	}

	src := p.TableImage(g.count, 8, palette)
	r := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx()*scale, r.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Rect, src, r, draw.Src, nil)

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, dst); err != nil {
		return err
	}

	return f.Close()
}
