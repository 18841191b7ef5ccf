/*
Package gemstar is a library for building the tile and palette tables of the
gemstar PPU from PNG sprite and palette sheets.

Loading runs once, synchronously, before the game loop starts. The sprite
sheet is split into tiles, each tile is given a palette bucket of at most four
colors and encoded as two bitplanes, then the palette sheet is copied into the
palette table. Any error aborts loading; there is no fallback to default
tiles.
*/
package gemstar

import (
	"log"

	"github.com/bodgit/gemstar/ppu"
	"github.com/bodgit/gemstar/tile"
)

const (
	// SpritesheetFilename is the sprite sheet expected in each asset
	// directory
	SpritesheetFilename = "spritesheet.png"
	// PalettesFilename is the palette sheet expected in each asset directory
	PalettesFilename = "palettes.png"
	// SnapshotFilename is written to each asset directory by Scan
	SnapshotFilename = "assets.bin"

	skyTile    = 28
	groundTile = 29
	groundRows = 4
	scenePal   = 1
)

// Gemstar carries everything needed to load assets into a PPU.
type Gemstar struct {
	db     *AssetDB
	logger *log.Logger
	count  int
	reduce int
}

// Option configures a Gemstar.
type Option func(*Gemstar)

// Count sets the number of tiles taken from the sprite sheet.
func Count(n int) Option {
	return func(g *Gemstar) {
		g.count = n
	}
}

// Reduce quantizes the sprite sheet to at most n colors before it is
// converted, zero disables it.
func Reduce(n int) Option {
	return func(g *Gemstar) {
		g.reduce = n
	}
}

// New returns a Gemstar using the optional cache db, which may be nil.
func New(db *AssetDB, logger *log.Logger, options ...Option) *Gemstar {
	g := &Gemstar{
		db:     db,
		logger: logger,
		count:  tile.DefaultCount,
	}
	for _, o := range options {
		o(g)
	}
	return g
}

// initScene sets up the background and player sprites for the first frame.
func initScene(p *ppu.PPU) {
	p.FillBackground(skyTile, scenePal)
	p.FillBackgroundRows(ppu.BackgroundHeight-groundRows, groundTile, scenePal)

	for i, s := range ppu.PlayerSprites() {
		p.Sprites[i] = s
	}
}
