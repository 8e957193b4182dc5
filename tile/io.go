package tile

import (
	"errors"
	"iter"
)

// Writer defines an interface for storing encoded cell images.
type Writer interface {
	// WriteImage writes the encoded image of a single cell.
	WriteImage(p Point, data []byte) error

	// Finalize completes the writing process: flushes buffers, writes indices.
	// It must be called before closing the Writer.
	Finalize() error
}

type Reader interface {
	// ReadImage reads the encoded image of a single cell.
	// If the cell has no image, it returns an empty slice with no error.
	ReadImage(p Point) ([]byte, error)
}

type Visitor interface {
	// VisitImages calls visitor for every stored cell image.
	// Order of cells is implementation-defined.
	VisitImages(visitor func(Point, []byte) error) error
}

var errVisitCancelled = errors.New("visit cancelled")

// IterImages returns an iterator over all images of a Visitor.
// Iteration panics on unrecoverable errors.
func IterImages(v Visitor) iter.Seq2[Point, []byte] {
	return func(yield func(Point, []byte) bool) {
		err := v.VisitImages(func(p Point, data []byte) error {
			if !yield(p, data) {
				return errVisitCancelled
			}
			return nil
		})
		if err != nil && err != errVisitCancelled {
			panic(err)
		}
	}
}
