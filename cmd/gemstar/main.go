package main

import (
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/bodgit/gemstar"
	"github.com/bodgit/gemstar/tile"
	"github.com/urfave/cli/v2"
)

const defaultDB = "gemstar.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version, V",
		Usage: "print the version",
	}
}

func newGemstar(c *cli.Context) (*gemstar.Gemstar, func(), error) {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	options := []gemstar.Option{
		gemstar.Count(c.Int("tiles")),
		gemstar.Reduce(c.Int("reduce")),
	}

	if c.Bool("no-cache") {
		return gemstar.New(nil, logger, options...), func() {}, nil
	}

	db, err := gemstar.NewAssetDB(c.String("db"))
	if err != nil {
		return nil, nil, err
	}

	return gemstar.New(db, logger, options...), func() { db.Close() }, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "gemstar"
	app.Usage = "gemstar sprite and palette sheet converter"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"GEMSTAR_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to asset cache database",
		},
		&cli.BoolFlag{
			Name:  "no-cache",
			Usage: "do not use the asset cache",
		},
		&cli.IntFlag{
			Name:    "tiles",
			EnvVars: []string{"GEMSTAR_TILES"},
			Value:   tile.DefaultCount,
			Usage:   "number of tiles in the sprite sheet",
		},
		&cli.IntFlag{
			Name:  "reduce",
			Usage: "quantize the sprite sheet to at most `N` colors first",
		},
		&cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert a sprite sheet and palette sheet",
			Description: "Writes the PPU tile and palette tables to OUTPUT",
			ArgsUsage:   "SPRITESHEET PALETTES OUTPUT",
			Action: func(c *cli.Context) error {
				if c.NArg() < 3 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				g, done, err := newGemstar(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer done()

				if err := g.Convert(c.Args().Get(0), c.Args().Get(1), c.Args().Get(2)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "chr",
			Usage:       "Convert a sprite sheet to CHR data",
			Description: "",
			ArgsUsage:   "SPRITESHEET OUTPUT",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				g, done, err := newGemstar(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer done()

				if err := g.WriteCHR(c.Args().Get(0), c.Args().Get(1)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Scan filesystem and convert every asset directory",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				g, done, err := newGemstar(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer done()

				if err := g.Scan(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "preview",
			Usage:       "Render converted tables to a PNG",
			Description: "",
			ArgsUsage:   "TABLES OUTPUT",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "palette",
					Usage: "palette table entry to color tiles with",
				},
				&cli.IntFlag{
					Name:  "scale",
					Value: 4,
					Usage: "scale factor",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				g, done, err := newGemstar(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer done()

				if err := g.Preview(c.Args().Get(0), c.Args().Get(1), uint8(c.Int("palette")), c.Int("scale")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
