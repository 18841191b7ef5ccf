package tile

import (
	"image/color"
	"sort"
)

// Bucket is a set of at most four colors shared by one or more tiles.
type Bucket []color.NRGBA

// Index returns the position of c in the bucket.
func (b Bucket) Index(c color.NRGBA) (uint8, bool) {
	for i, bc := range b {
		if bc == c {
			return uint8(i), true
		}
	}
	return 0, false
}

// Palette returns the bucket as a fixed size palette, unused entries are
// left as the zero color.
func (b Bucket) Palette() [colorsPerPalette]color.NRGBA {
	var p [colorsPerPalette]color.NRGBA
	copy(p[:], b)
	return p
}

// Colors returns the distinct colors of the tile in the order they are first
// seen.
func (t *Tile) Colors() Bucket {
	seen := make(map[color.NRGBA]struct{})
	var b Bucket
	for y := range t {
		for _, c := range t[y] {
			if _, ok := seen[c]; !ok {
				seen[c] = struct{}{}
				b = append(b, c)
			}
		}
	}
	return b
}

// Colors in b but not in a
func difference(a, b Bucket) (d Bucket) {
	m := make(map[color.NRGBA]struct{}, len(a))
	for _, c := range a {
		m[c] = struct{}{}
	}
	for _, c := range b {
		if _, ok := m[c]; !ok {
			d = append(d, c)
		}
	}
	return
}

// Either set contains the other
func match(colors, bucket Bucket) bool {
	if len(colors) > len(bucket) {
		return len(difference(colors, bucket)) == 0
	}
	return len(difference(bucket, colors)) == 0
}

// Assign places each tile into a palette bucket. A tile goes into the first
// bucket, in creation order, whose colors are a subset or superset of the
// tile's colors, with the bucket growing to the tile's colors if the tile
// has more. Otherwise a new bucket is started. A tile that only partially
// overlaps a bucket does not match it.
//
// The returned slice maps each tile index to its bucket index.
func Assign(tiles []Tile) ([]Bucket, []int, error) {
	var buckets []Bucket
	assignment := make([]int, len(tiles))

	for t := range tiles {
		colors := tiles[t].Colors()
		if len(colors) > colorsPerPalette {
			return nil, nil, ErrPaletteOverflow
		}

		assignment[t] = -1
		for i, b := range buckets {
			if !match(colors, b) {
				continue
			}
			if len(colors) > len(b) {
				if len(colors) > colorsPerPalette {
					return nil, nil, ErrPaletteOverflow
				}
				buckets[i] = colors
			}
			assignment[t] = i
			break
		}

		if assignment[t] < 0 {
			buckets = append(buckets, colors)
			assignment[t] = len(buckets) - 1
		}
	}

	return buckets, assignment, nil
}

type byColor Bucket

func (b byColor) Len() int {
	return len(b)
}

func (b byColor) Swap(i, j int) {
	b[i], b[j] = b[j], b[i]
}

func (b byColor) Less(i, j int) bool {
	ti, tj := IsTransparent(b[i]), IsTransparent(b[j])
	if ti != tj {
		return ti
	}
	return Compare(b[i], b[j]) < 0
}

// Resolve returns a copy of the bucket sorted into its canonical index order;
// the transparent color first if present, then ascending by R, G, B and A.
func Resolve(b Bucket) Bucket {
	r := append(Bucket(nil), b...)
	sort.Stable(byColor(r))
	return r
}
