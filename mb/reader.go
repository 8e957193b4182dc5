// Package mb stores rendered map cells in an MBTiles-style SQLite database.
//
// Cells are stored at zoom level 0 with tile_column = x and tile_row counted
// from the bottom of the map, as in the TMS scheme.
//
// Note: User must properly initialize the sqlite3 library generic driver
// (e.g. import _ "github.com/mattn/go-sqlite3") before using this package.
package mb

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/eak1mov/go-tilemap/tile"
)

// Reader implements tile.Reader and tile.Visitor for MBTiles databases.
type Reader struct {
	db     *sql.DB
	stmt   *sql.Stmt
	height int
}

// NewReader opens the database at filePath read-only.
//
// The returned Reader must be closed after use to release database resources.
func NewReader(filePath string) (*Reader, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", filePath))
	if err != nil {
		return nil, err
	}

	r := &Reader{db: db}
	metadata, err := r.ReadMetadata()
	if err != nil {
		db.Close()
		return nil, err
	}
	r.height, err = strconv.Atoi(metadata["height"])
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("invalid height metadata: %w", err)
	}

	r.stmt, err = db.Prepare("SELECT tile_data FROM tiles WHERE zoom_level = 0 AND tile_column = ? AND tile_row = ?")
	if err != nil {
		db.Close()
		return nil, err
	}

	return r, nil
}

func (r *Reader) Close() error {
	return errors.Join(r.stmt.Close(), r.db.Close())
}

func (r *Reader) ReadMetadata() (map[string]string, error) {
	metadata := make(map[string]string)

	rows, err := r.db.Query("SELECT name, value FROM metadata")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		metadata[name] = value
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return metadata, nil
}

func (r *Reader) ReadImage(p tile.Point) ([]byte, error) {
	row := r.height - 1 - p.Y // XY -> TMS

	var data []byte
	if err := r.stmt.QueryRow(p.X, row).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return make([]byte, 0), nil
		}
		return nil, err
	}

	return data, nil
}

func (r *Reader) VisitImages(visitor func(tile.Point, []byte) error) error {
	rows, err := r.db.Query("SELECT tile_column, tile_row, tile_data FROM tiles WHERE zoom_level = 0")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var x, row int
		var data []byte

		if err := rows.Scan(&x, &row, &data); err != nil {
			return err
		}

		if err := visitor(tile.Point{X: x, Y: r.height - 1 - row}, data); err != nil {
			return err
		}
	}

	return rows.Err()
}
