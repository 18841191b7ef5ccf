package gemstar

import (
	"image"
	"image/color"
	"image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/gemstar/ppu"
	"github.com/bodgit/gemstar/tile"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sentinel = color.NRGBA{0xee, 0xee, 0xee, 0xff}
	red      = color.NRGBA{0xff, 0x00, 0x00, 0xff}
	blue     = color.NRGBA{0x00, 0x00, 0xff, 0xff}
	white    = color.NRGBA{0xff, 0xff, 0xff, 0xff}
)

func writePNG(t *testing.T, file string, m image.Image) {
	f, err := os.Create(file)
	require.Nil(t, err)
	defer f.Close()
	require.Nil(t, png.Encode(f, m))
}

// writeAssets writes a 64x48 sprite sheet and 4x8 palette sheet to dir. Even
// tiles are sentinel with a red diagonal, odd tiles add a blue border.
func writeAssets(t *testing.T, dir string) {
	sheet := image.NewNRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			tx, ty := x%8, y%8
			i := y/8*8 + x/8
			c := sentinel
			switch {
			case tx == ty:
				c = red
			case i%2 == 1 && (tx == 0 || ty == 0):
				c = blue
			}
			sheet.SetNRGBA(x, y, c)
		}
	}
	writePNG(t, filepath.Join(dir, SpritesheetFilename), sheet)

	palettes := image.NewNRGBA(image.Rect(0, 0, 4, 8))
	for y := 0; y < 8; y++ {
		palettes.SetNRGBA(0, y, sentinel)
		palettes.SetNRGBA(1, y, blue)
		palettes.SetNRGBA(2, y, red)
		palettes.SetNRGBA(3, y, white)
	}
	writePNG(t, filepath.Join(dir, PalettesFilename), palettes)
}

func tempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "gemstar")
	require.Nil(t, err)
	return dir
}

func testLogger() *log.Logger {
	return log.New(ioutil.Discard, "", 0)
}

func TestLoad(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)
	writeAssets(t, dir)

	g := New(nil, testLogger())
	p, err := g.Load(filepath.Join(dir, SpritesheetFilename), filepath.Join(dir, PalettesFilename))
	require.Nil(t, err)

	// One bucket of sentinel, blue, red so both tile kinds index the same
	// way; diagonal is red (2), border is blue (1)
	even, odd := p.Tiles[0], p.Tiles[1]
	assert.Equal(t, uint8(2), even.ColorIndexAt(0, 0))
	assert.Equal(t, uint8(0), even.ColorIndexAt(1, 0))
	assert.Equal(t, uint8(2), odd.ColorIndexAt(3, 3))
	assert.Equal(t, uint8(1), odd.ColorIndexAt(1, 0))
	assert.Equal(t, uint8(0), odd.ColorIndexAt(2, 1))
	assert.Equal(t, even, p.Tiles[44])
	assert.Equal(t, ppu.Tile{}, p.Tiles[tile.DefaultCount])

	for _, pal := range p.Palettes {
		assert.Equal(t, ppu.Palette{{}, blue, red, white}, pal)
	}

	assert.Equal(t, ppu.BackgroundEntry(skyTile, scenePal), p.Background[0])
	assert.Equal(t, ppu.BackgroundEntry(groundTile, scenePal), p.Background[len(p.Background)-1])
	assert.Equal(t, uint8(0x02), p.Sprites[3].Attributes)
}

func TestLoadIdempotent(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)
	writeAssets(t, dir)

	g := New(nil, testLogger())
	p1, err := g.Load(filepath.Join(dir, SpritesheetFilename), filepath.Join(dir, PalettesFilename))
	require.Nil(t, err)
	p2, err := g.Load(filepath.Join(dir, SpritesheetFilename), filepath.Join(dir, PalettesFilename))
	require.Nil(t, err)

	assert.Equal(t, p1, p2)
}

func TestLoadBadPalettes(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)
	writeAssets(t, dir)
	writePNG(t, filepath.Join(dir, PalettesFilename), image.NewNRGBA(image.Rect(0, 0, 8, 4)))

	g := New(nil, testLogger())
	_, err := g.Load(filepath.Join(dir, SpritesheetFilename), filepath.Join(dir, PalettesFilename))
	require.NotNil(t, err)
	assert.Equal(t, tile.ErrInvalidDimensions, errors.Cause(err))
}

func TestLoadOverflow(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)
	writeAssets(t, dir)

	sheet := image.NewNRGBA(image.Rect(0, 0, 64, 48))
	for x := 0; x < 5; x++ {
		sheet.SetNRGBA(x, 0, color.NRGBA{uint8(x), 0, 0, 0xff})
	}
	writePNG(t, filepath.Join(dir, SpritesheetFilename), sheet)

	g := New(nil, testLogger())
	_, err := g.Load(filepath.Join(dir, SpritesheetFilename), filepath.Join(dir, PalettesFilename))
	assert.Equal(t, tile.ErrPaletteOverflow, errors.Cause(err))
}

func TestConvertAndPreview(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)
	writeAssets(t, dir)

	g := New(nil, testLogger())
	out := filepath.Join(dir, SnapshotFilename)
	require.Nil(t, g.Convert(filepath.Join(dir, SpritesheetFilename), filepath.Join(dir, PalettesFilename), out))

	b, err := ioutil.ReadFile(out)
	require.Nil(t, err)
	assert.Len(t, b, ppu.SnapshotSize)

	preview := filepath.Join(dir, "preview.png")
	require.Nil(t, g.Preview(out, preview, 0, 2))

	f, err := os.Open(preview)
	require.Nil(t, err)
	defer f.Close()
	m, err := png.Decode(f)
	require.Nil(t, err)
	assert.Equal(t, image.Rect(0, 0, 128, 96), m.Bounds())

	r, g2, b2, _ := m.At(0, 0).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0, 0}, [3]uint32{r, g2, b2})

	assert.NotNil(t, g.Preview(out, preview, ppu.NumPalettes, 2))
}

func TestWriteCHR(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)
	writeAssets(t, dir)

	g := New(nil, testLogger(), Count(8))
	out := filepath.Join(dir, "tiles.chr")
	require.Nil(t, g.WriteCHR(filepath.Join(dir, SpritesheetFilename), out))

	b, err := ioutil.ReadFile(out)
	require.Nil(t, err)
	require.Len(t, b, 8*16)
	// Even tile, row 0 has red at x = 0 only
	assert.Equal(t, byte(0x00), b[0])
	assert.Equal(t, byte(0x80), b[8])
}
