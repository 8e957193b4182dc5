package mapfile

import (
	"errors"
	"fmt"
)

// ErrFormat reports a structurally invalid map file: a missing or wrong magic
// tag, a truncated record or a stream that ends before all cells are read.
var ErrFormat = errors.New("mapfile: invalid format")

// ErrIO reports a failure to open, create, write or replace a map file.
var ErrIO = errors.New("mapfile: i/o failure")

var ErrUnknownFormat = fmt.Errorf("%w: unknown format", ErrFormat)

func formatError(err error) error {
	if errors.Is(err, ErrFormat) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrFormat, err)
}

func ioError(err error) error {
	return fmt.Errorf("%w: %w", ErrIO, err)
}
