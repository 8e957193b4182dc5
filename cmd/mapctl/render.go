package main

import (
	"context"
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/eak1mov/go-tilemap/render/palette"
	"github.com/eak1mov/go-tilemap/tilemap"
	"github.com/google/subcommands"
	"golang.org/x/image/draw"
)

type renderCmd struct {
	inputFormat string
	inputPath   string
	outputPath  string
	configPath  string
	showTiles   bool
	showObjects bool
	scale       int
}

func (c *renderCmd) Name() string     { return "render" }
func (c *renderCmd) Synopsis() string { return "render the whole map into a PNG image" }
func (c *renderCmd) Usage() string {
	return "mapctl render -i <path> -o <path> [-if <format> -config <path> -tiles -objects -scale <n>]\n"
}
func (c *renderCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input map path")
	f.StringVar(&c.inputFormat, "if", "", "Input format (map, cmap)")
	f.StringVar(&c.outputPath, "o", "", "Output PNG path")
	f.StringVar(&c.configPath, "config", "", "Palette config (YAML)")
	f.BoolVar(&c.showTiles, "tiles", true, "Draw the tile layer")
	f.BoolVar(&c.showObjects, "objects", true, "Draw the object layer")
	f.IntVar(&c.scale, "scale", 1, "Integer upscaling factor")
}

func (c *renderCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
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

	var img image.Image = m.RenderedMap(c.showTiles, c.showObjects)
	if c.scale > 1 {
		bounds := img.Bounds()
		scaled := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*c.scale, bounds.Dy()*c.scale))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, bounds, draw.Src, nil)
		img = scaled
	}

	file, err := os.Create(c.outputPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	if err := file.Close(); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
