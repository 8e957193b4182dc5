package main

import (
	"bufio"
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/eak1mov/go-tilemap/index"
	"github.com/eak1mov/go-tilemap/mapfile"
	"github.com/google/subcommands"
)

type exportIndexCmd struct {
	inputFormat string
	inputPath   string
	outputPath  string
}

func (c *exportIndexCmd) Name() string     { return "export_index" }
func (c *exportIndexCmd) Synopsis() string { return "dump map cells into a flat index file" }
func (c *exportIndexCmd) Usage() string {
	return "mapctl export_index -i <path> -o <path> [-if <format>]\n"
}
func (c *exportIndexCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input map path")
	f.StringVar(&c.inputFormat, "if", "", "Input format (map, cmap)")
	f.StringVar(&c.outputPath, "o", "", "Output index file path")
}

func (c *exportIndexCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	format, err := mapfile.ParseFormat(c.inputFormat, c.inputPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	grid, err := mapfile.ReadFile(c.inputPath, format)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	indexFile, err := os.Create(c.outputPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	defer indexFile.Close()
	indexWriter := bufio.NewWriter(indexFile)

	items := index.FromGrid(grid)
	if err := index.WriteAll(items, indexWriter); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	if err := indexWriter.Flush(); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	slog.Debug("mapctl: exported index", "items", len(items), "width", grid.Width(), "height", grid.Height())
	return subcommands.ExitSuccess
}

type importIndexCmd struct {
	inputPath    string
	outputFormat string
	outputPath   string
	width        int
	height       int
}

func (c *importIndexCmd) Name() string     { return "import_index" }
func (c *importIndexCmd) Synopsis() string { return "create a map from an index file" }
func (c *importIndexCmd) Usage() string {
	return "mapctl import_index -i <path> -o <path> -w <width> -h <height> [-of <format>]\n"
}
func (c *importIndexCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input index file path")
	f.StringVar(&c.outputPath, "o", "", "Output map path")
	f.StringVar(&c.outputFormat, "of", "", "Output format (map, cmap)")
	f.IntVar(&c.width, "w", 0, "Map width")
	f.IntVar(&c.height, "h", 0, "Map height")
}

func (c *importIndexCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	indexData, err := os.ReadFile(c.inputPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	items, err := index.ReadAll(indexData)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	format, err := mapfile.ParseFormat(c.outputFormat, c.outputPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	grid := index.ToGrid(items, c.width, c.height)
	if err := mapfile.WriteFile(c.outputPath, grid, format, mapfile.WithLogger(slog.Default())); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
