package main

import (
	"context"
	"flag"
	"log"
	"log/slog"

	"github.com/eak1mov/go-tilemap/tilemap"
	"github.com/google/subcommands"
)

type convertCmd struct {
	inputFormat  string
	inputPath    string
	outputFormat string
	outputPath   string
}

func (c *convertCmd) Name() string     { return "convert" }
func (c *convertCmd) Synopsis() string { return "convert between raw and compressed map files" }
func (c *convertCmd) Usage() string {
	return "mapctl convert -i <path> -o <path> [-if <format> | -of <format>]\n"
}
func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input path")
	f.StringVar(&c.inputFormat, "if", "", "Input format (map, cmap)")
	f.StringVar(&c.outputPath, "o", "", "Output path")
	f.StringVar(&c.outputFormat, "of", "", "Output format (map, cmap)")
}

func (c *convertCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	m, err := loadMap(c.inputPath, c.inputFormat, tilemap.WithLogger(slog.Default()))
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	defer m.Close()

	if err := saveMap(m, c.outputPath, c.outputFormat); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

type resizeCmd struct {
	inputPath  string
	outputPath string
	width      int
	height     int
}

func (c *resizeCmd) Name() string     { return "resize" }
func (c *resizeCmd) Synopsis() string { return "change map dimensions keeping the top-left overlap" }
func (c *resizeCmd) Usage() string {
	return "mapctl resize -i <path> -w <width> -h <height> [-o <path>]\n"
}
func (c *resizeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input path")
	f.StringVar(&c.outputPath, "o", "", "Output path (defaults to input path)")
	f.IntVar(&c.width, "w", 0, "New width")
	f.IntVar(&c.height, "h", 0, "New height")
}

func (c *resizeCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	m, err := tilemap.Load(c.inputPath, tilemap.WithLogger(slog.Default()))
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	defer m.Close()

	outputPath := c.outputPath
	if outputPath == "" {
		outputPath = c.inputPath
	}

	m.Resize(c.width, c.height)
	if err := m.Save(outputPath); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
