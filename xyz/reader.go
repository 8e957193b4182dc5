package xyz

import (
	"cmp"
	"os"
	"path/filepath"
	"slices"

	"github.com/eak1mov/go-tilemap/tile"
)

// Reader implements tile.Reader and tile.Visitor for cell images in files.
type Reader struct {
	layout layout
}

// NewReader creates a new Reader for the given file pattern (e.g. "/maps/town/{y}/{x}.png").
func NewReader(filePattern string) (*Reader, error) {
	l, err := newLayout(filePattern)
	if err != nil {
		return nil, err
	}
	return &Reader{l}, nil
}

// ReadImage returns the image of p, or empty data if the file does not exist.
func (r *Reader) ReadImage(p tile.Point) ([]byte, error) {
	data, err := os.ReadFile(r.layout.path(p))
	if os.IsNotExist(err) {
		return make([]byte, 0), nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

type cellFile struct {
	point tile.Point
	path  string
}

// VisitImages calls visitor for every file matching the pattern in row-major
// cell order. Files that do not match are ignored.
func (r *Reader) VisitImages(visitor func(tile.Point, []byte) error) error {
	var files []cellFile
	err := filepath.WalkDir(r.layout.rootDir(), func(filePath string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if p, ok := r.layout.point(filePath); ok {
			files = append(files, cellFile{p, filePath})
		}
		return nil
	})
	if err != nil {
		return err
	}

	slices.SortFunc(files, func(a, b cellFile) int {
		return cmp.Or(cmp.Compare(a.point.Y, b.point.Y), cmp.Compare(a.point.X, b.point.X))
	})

	for _, f := range files {
		data, err := os.ReadFile(f.path)
		if err != nil {
			return err
		}
		if err := visitor(f.point, data); err != nil {
			return err
		}
	}
	return nil
}
