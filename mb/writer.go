package mb

import (
	"database/sql"
	"errors"
	"log/slog"
	"strconv"

	"github.com/eak1mov/go-tilemap/tile"
)

// Writer implements tile.Writer for MBTiles databases.
type Writer struct {
	db     *sql.DB
	stmt   *sql.Stmt
	height int
	logger *slog.Logger
}

type writerConfig struct {
	Metadata map[string]string
	Logger   *slog.Logger
}

type WriterOption func(*writerConfig)

func WithMetadata(metadata map[string]string) WriterOption {
	return func(c *writerConfig) { c.Metadata = metadata }
}

func WithLogger(logger *slog.Logger) WriterOption {
	return func(c *writerConfig) { c.Logger = logger }
}

// NewWriter creates a new database at filePath for a map of the given
// dimensions. It applies given options and initializes tables for writing.
func NewWriter(filePath string, width, height int, opts ...WriterOption) (*Writer, error) {
	config := writerConfig{
		Logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&config)
	}

	var err error
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			db.Close()
		}
	}()

	_, err = db.Exec(`
		CREATE TABLE metadata (name TEXT, value TEXT);
		CREATE TABLE tiles (
			zoom_level INTEGER,
			tile_column INTEGER,
			tile_row INTEGER,
			tile_data BLOB
		);
	`)
	if err != nil {
		return nil, err
	}

	metadata := map[string]string{
		"format":  "png",
		"minzoom": "0",
		"maxzoom": "0",
	}
	for k, v := range config.Metadata {
		metadata[k] = v
	}
	metadata["width"] = strconv.Itoa(width)
	metadata["height"] = strconv.Itoa(height)

	for k, v := range metadata {
		_, err = db.Exec("INSERT INTO metadata (name, value) VALUES (?, ?)", k, v)
		if err != nil {
			return nil, err
		}
	}

	stmt, err := db.Prepare("INSERT INTO tiles (zoom_level, tile_column, tile_row, tile_data) VALUES (0, ?, ?, ?)")
	if err != nil {
		return nil, err
	}

	return &Writer{db, stmt, height, config.Logger}, nil
}

func (w *Writer) Close() error {
	return errors.Join(w.stmt.Close(), w.db.Close())
}

func (w *Writer) WriteImage(p tile.Point, data []byte) error {
	row := w.height - 1 - p.Y // XY -> TMS

	_, err := w.stmt.Exec(p.X, row, data)
	return err
}

func (w *Writer) Finalize() error {
	w.logger.Debug("tilemap: creating index")
	_, err := w.db.Exec("CREATE UNIQUE INDEX tile_index ON tiles (zoom_level, tile_column, tile_row)")

	w.logger.Debug("tilemap: done!")
	return err
}
