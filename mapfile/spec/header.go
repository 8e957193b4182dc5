// Package spec implements the byte-level layout shared by the map file formats.
package spec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	// Magic opens every compressed map file, before the compressed body starts.
	Magic       = "CMAP"
	MagicLength = len(Magic)

	HeaderLength = 4
	RecordLength = 6
)

var ErrInvalidMagic = errors.New("invalid magic tag")
var ErrTruncated = errors.New("unexpected end of data")

// Header holds the map dimensions stored in front of the records.
type Header struct {
	Width  uint16
	Height uint16
}

func (h Header) Cells() int {
	return int(h.Width) * int(h.Height)
}

// ReadUint16 reads one 16-bit field in the given byte order.
func ReadUint16(r io.Reader, order binary.ByteOrder) (uint16, error) {
	var buffer [2]byte
	if _, err := io.ReadFull(r, buffer[:]); err != nil {
		return 0, truncated(err)
	}
	return order.Uint16(buffer[:]), nil
}

// WriteUint16 writes one 16-bit field in the given byte order.
func WriteUint16(w io.Writer, order binary.ByteOrder, value uint16) error {
	var buffer [2]byte
	order.PutUint16(buffer[:], value)
	_, err := w.Write(buffer[:])
	return err
}

func ReadHeader(r io.Reader, order binary.ByteOrder) (Header, error) {
	width, err := ReadUint16(r, order)
	if err != nil {
		return Header{}, err
	}
	height, err := ReadUint16(r, order)
	if err != nil {
		return Header{}, err
	}
	return Header{Width: width, Height: height}, nil
}

func WriteHeader(w io.Writer, order binary.ByteOrder, header Header) error {
	if err := WriteUint16(w, order, header.Width); err != nil {
		return err
	}
	return WriteUint16(w, order, header.Height)
}

func ReadMagic(r io.Reader) error {
	var buffer [MagicLength]byte
	if _, err := io.ReadFull(r, buffer[:]); err != nil {
		if err = truncated(err); errors.Is(err, ErrTruncated) {
			return fmt.Errorf("%w: %w", ErrInvalidMagic, err)
		}
		return err
	}
	if string(buffer[:]) != Magic {
		return fmt.Errorf("%w: %q", ErrInvalidMagic, buffer[:])
	}
	return nil
}

func WriteMagic(w io.Writer) error {
	_, err := io.WriteString(w, Magic)
	return err
}

// truncated reports every kind of short read as ErrTruncated while keeping
// the underlying cause matchable.
func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", ErrTruncated, io.ErrUnexpectedEOF)
	}
	return err
}
