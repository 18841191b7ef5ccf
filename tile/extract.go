package tile

import "image/color"

// Extract slices a row-major pixel buffer of the given width and height into
// count tiles. Each run of eight pixels along a row is copied into the tile
// it belongs to; runs belonging to a tile beyond count are dropped.
func Extract(pix []color.NRGBA, width, height, count int) ([]Tile, error) {
	if width <= 0 || height <= 0 || count < 0 || width%tileWidth != 0 || len(pix) < width*height {
		return nil, ErrInvalidDimensions
	}

	tiles := make([]Tile, count)
	cols := width / tileWidth

	for r := 0; r < width*height/tileWidth; r++ {
		y := r / cols
		i := y/tileHeight*cols + r%cols
		if i >= count {
			continue
		}
		copy(tiles[i][y%tileHeight][:], pix[r*tileWidth:(r+1)*tileWidth])
	}

	return tiles, nil
}
