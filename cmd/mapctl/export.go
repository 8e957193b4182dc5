package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"strconv"

	"github.com/eak1mov/go-tilemap/mb"
	"github.com/eak1mov/go-tilemap/render"
	"github.com/eak1mov/go-tilemap/render/palette"
	"github.com/eak1mov/go-tilemap/tile"
	"github.com/eak1mov/go-tilemap/tilemap"
	"github.com/eak1mov/go-tilemap/xyz"
	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"
)

type exportCmd struct {
	inputFormat  string
	inputPath    string
	outputFormat string
	outputPath   string
	configPath   string
	showTiles    bool
	showObjects  bool
	forceEmpty   bool
}

func (c *exportCmd) Name() string     { return "export" }
func (c *exportCmd) Synopsis() string { return "export rendered cells as an image tileset" }
func (c *exportCmd) Usage() string {
	return "mapctl export -i <path> -o <path> [-if <format> -of <format> -config <path>]\n"
}
func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input map path")
	f.StringVar(&c.inputFormat, "if", "", "Input format (map, cmap)")
	f.StringVar(&c.outputPath, "o", "", "Output path (*.mbtiles or a pattern with {x} and {y})")
	f.StringVar(&c.outputFormat, "of", "", "Output format (mbtiles, xyz)")
	f.StringVar(&c.configPath, "config", "", "Palette config (YAML)")
	f.BoolVar(&c.showTiles, "tiles", true, "Draw the tile layer")
	f.BoolVar(&c.showObjects, "objects", true, "Draw the object layer")
	f.BoolVar(&c.forceEmpty, "force", false, "Export placeholder images for empty cells")
}

func (c *exportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	config, err := palette.LoadConfig(c.configPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	m, err := loadMap(c.inputPath, c.inputFormat,
		tilemap.WithRenderer(palette.New(config)),
		tilemap.WithLogger(slog.Default()),
	)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	defer m.Close()

	var writer tile.Writer
	switch deduceExportFormat(c.outputFormat, c.outputPath) {
	case "mbtiles":
		metadata := map[string]string{
			"name":      m.Name(),
			"cell_size": strconv.Itoa(config.CellSize),
		}
		writer, err = mb.NewWriter(c.outputPath, m.Width(), m.Height(),
			mb.WithMetadata(metadata),
			mb.WithLogger(slog.Default()),
		)
	case "xyz":
		writer, err = xyz.NewWriter(c.outputPath, xyz.WithLogger(slog.Default()))
	default:
		log.Printf("invalid output format: %q", c.outputFormat)
		return subcommands.ExitFailure
	}
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	if closer, ok := writer.(io.Closer); ok {
		defer closer.Close()
	}

	opts := render.Options{
		Key: render.Key{
			CellPixelSize: config.CellSize,
			ShowTiles:     c.showTiles,
			ShowObjects:   c.showObjects,
		},
		ForceRenderEmpty: c.forceEmpty,
	}

	bar := progressbar.New(m.Width() * m.Height())
	err = m.ExportImages(writer, opts, func() { bar.Add(1) })
	bar.Finish()
	fmt.Println()

	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
