package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"maps"
	"slices"

	"github.com/eak1mov/go-tilemap/mapfile"
	"github.com/eak1mov/go-tilemap/tilemap"
	"github.com/google/subcommands"
)

type infoCmd struct {
	inputFormat string
	inputPath   string
}

func (c *infoCmd) Name() string     { return "info" }
func (c *infoCmd) Synopsis() string { return "print map dimensions and cell statistics" }
func (c *infoCmd) Usage() string {
	return "mapctl info -i <path> [-if <format>]\n"
}
func (c *infoCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input map path")
	f.StringVar(&c.inputFormat, "if", "", "Input format (map, cmap)")
}

func (c *infoCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	m, err := loadMap(c.inputPath, c.inputFormat, tilemap.WithLogger(slog.Default()))
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	defer m.Close()

	grid := m.Grid()
	tileNumbers := make(map[uint16]int)
	objectNumbers := make(map[uint16]int)
	impassable := 0
	for _, t := range grid.Tiles() {
		tileNumbers[t.TileNumber]++
		if t.HasObject() {
			objectNumbers[t.ObjectNumber]++
		}
		if !t.Passable {
			impassable++
		}
	}

	format, _ := mapfile.ParseFormat(c.inputFormat, c.inputPath)
	fmt.Printf("name:       %s\n", m.Name())
	fmt.Printf("format:     %v\n", format)
	fmt.Printf("size:       %dx%d\n", m.Width(), m.Height())
	fmt.Printf("cells:      %d\n", grid.Count())
	fmt.Printf("impassable: %d\n", impassable)
	fmt.Printf("tiles:      %v\n", slices.Sorted(maps.Keys(tileNumbers)))
	fmt.Printf("objects:    %v\n", slices.Sorted(maps.Keys(objectNumbers)))

	return subcommands.ExitSuccess
}
