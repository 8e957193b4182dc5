package mapfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/eak1mov/go-tilemap/mapfile/spec"
	"github.com/eak1mov/go-tilemap/tile"
	"github.com/klauspost/compress/flate"
)

// initialRecords bounds the records allocated before the stream proves that
// it holds them. The header alone can claim 65535x65535 cells.
const initialRecords = 64 * 1024

// Decode reads a whole map from r. Every cell of the result is present.
// Decoding is all-or-nothing: on error no grid is returned and the error
// matches ErrFormat, or ErrIO when reading from r itself failed.
func Decode(r io.Reader, format Format) (*tile.Grid, error) {
	switch format {
	case FormatRaw, FormatCompressed:
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}

	order := format.byteOrder()
	reader := bufio.NewReader(r)

	if format == FormatCompressed {
		if err := spec.ReadMagic(reader); err != nil {
			return nil, readError(err)
		}
	}

	header, err := spec.ReadHeader(reader, order)
	if err != nil {
		return nil, readError(err)
	}

	var body io.Reader = reader
	if format == FormatCompressed {
		deflateReader := spec.NewDeflateReader(reader)
		defer deflateReader.Close()
		body = bufio.NewReader(deflateReader)
	}

	width, height := int(header.Width), int(header.Height)
	records := make([]spec.Record, 0, min(header.Cells(), initialRecords))
	for i := range header.Cells() {
		record, err := spec.ReadRecord(body, order)
		if err != nil {
			return nil, readError(fmt.Errorf("cell (%d, %d): %w", i%width, i/width, err))
		}
		records = append(records, record)
	}

	grid := tile.NewGrid(width, height)
	for i, record := range records {
		grid.Set(i%width, i/width, record.Tile())
	}
	return grid, nil
}

// readError classifies a decoding failure: short or corrupt data is a format
// error, anything else came from the reader.
func readError(err error) error {
	var corrupt flate.CorruptInputError
	if errors.Is(err, spec.ErrTruncated) || errors.Is(err, spec.ErrInvalidMagic) || errors.As(err, &corrupt) {
		return formatError(err)
	}
	return ioError(err)
}

func DecodeBytes(data []byte, format Format) (*tile.Grid, error) {
	return Decode(bytes.NewReader(data), format)
}
