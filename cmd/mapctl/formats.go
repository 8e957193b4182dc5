package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/eak1mov/go-tilemap/mapfile"
	"github.com/eak1mov/go-tilemap/tilemap"
)

// deduceExportFormat returns the image export format for the given flag
// value, looking at the output path when the flag is empty.
func deduceExportFormat(format, filePath string) string {
	if format == "" && strings.HasSuffix(filePath, ".mbtiles") {
		return "mbtiles"
	}
	if format == "" && strings.Contains(filePath, "{x}") {
		return "xyz"
	}
	return format
}

func loadMap(filePath, formatName string, opts ...tilemap.Option) (*tilemap.Map, error) {
	format, err := mapfile.ParseFormat(formatName, filePath)
	if err != nil {
		return nil, err
	}
	return tilemap.Load(filePath, append(opts, tilemap.WithFormat(format))...)
}

func saveMap(m *tilemap.Map, filePath, formatName string) error {
	format, err := mapfile.ParseFormat(formatName, filePath)
	if err != nil {
		return err
	}
	if err := mapfile.WriteFile(filePath, m.Grid(), format, mapfile.WithLogger(slog.Default())); err != nil {
		return fmt.Errorf("save %s: %w", filePath, err)
	}
	return nil
}
