package xyz

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/eak1mov/go-tilemap/tile"
)

// Writer implements tile.Writer for cell images in files.
type Writer struct {
	layout layout
	count  int
	logger *slog.Logger
}

type writerConfig struct {
	Logger *slog.Logger
}

type WriterOption func(*writerConfig)

func WithLogger(logger *slog.Logger) WriterOption {
	return func(c *writerConfig) { c.Logger = logger }
}

// NewWriter creates a new Writer for the given file pattern (e.g. "/maps/town/{y}/{x}.png").
// Missing directories are created on demand.
func NewWriter(filePattern string, opts ...WriterOption) (*Writer, error) {
	config := writerConfig{
		Logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&config)
	}

	l, err := newLayout(filePattern)
	if err != nil {
		return nil, err
	}
	return &Writer{layout: l, logger: config.Logger}, nil
}

func (w *Writer) WriteImage(p tile.Point, data []byte) error {
	filePath := w.layout.path(p)
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return err
	}
	w.count++
	return nil
}

func (w *Writer) Finalize() error {
	w.logger.Debug("tilemap: xyz export done", "root", w.layout.rootDir(), "images", w.count)
	return nil
}
