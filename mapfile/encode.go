package mapfile

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/eak1mov/go-tilemap/mapfile/spec"
	"github.com/eak1mov/go-tilemap/tile"
)

// Encode writes g to w in the given format. Absent cells are written as
// tile.Default.
func Encode(w io.Writer, g *tile.Grid, format Format) error {
	switch format {
	case FormatRaw, FormatCompressed:
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	if g.Width() > MaxDimension || g.Height() > MaxDimension {
		return fmt.Errorf("%w: dimensions %dx%d exceed %d", ErrFormat, g.Width(), g.Height(), MaxDimension)
	}

	order := format.byteOrder()
	writer := bufio.NewWriter(w)

	if format == FormatCompressed {
		if err := spec.WriteMagic(writer); err != nil {
			return err
		}
	}

	header := spec.Header{Width: uint16(g.Width()), Height: uint16(g.Height())}
	if err := spec.WriteHeader(writer, order, header); err != nil {
		return err
	}

	if format == FormatRaw {
		if err := writeRecords(writer, g, order); err != nil {
			return err
		}
		return writer.Flush()
	}

	// The header stays outside of the deflate stream.
	if err := writer.Flush(); err != nil {
		return err
	}
	deflateWriter, err := spec.NewDeflateWriter(writer)
	if err != nil {
		return err
	}
	if err := writeRecords(deflateWriter, g, order); err != nil {
		return err
	}
	if err := deflateWriter.Close(); err != nil {
		return err
	}
	return writer.Flush()
}

func writeRecords(w io.Writer, g *tile.Grid, order binary.ByteOrder) error {
	for _, cell := range g.Cells() {
		t := tile.Default
		if cell != nil {
			t = *cell
		}
		if err := spec.WriteRecord(w, order, spec.RecordFromTile(t)); err != nil {
			return err
		}
	}
	return nil
}

func EncodeBytes(g *tile.Grid, format Format) ([]byte, error) {
	var buffer bytes.Buffer
	if err := Encode(&buffer, g, format); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
