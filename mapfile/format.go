// Package mapfile reads and writes tile maps in the raw (big-endian) and
// compressed (deflate, little-endian) map file formats.
package mapfile

import (
	"encoding/binary"
	"fmt"
	"math"
	"path/filepath"
	"strings"
)

type Format uint8

const (
	FormatUnknown Format = iota
	FormatRaw
	FormatCompressed
)

// MaxDimension is the largest width or height a map file can describe.
const MaxDimension = math.MaxUint16

const (
	RawExtension        = ".map"
	CompressedExtension = ".cmap"
)

func (f Format) String() string {
	switch f {
	case FormatRaw:
		return "raw"
	case FormatCompressed:
		return "compressed"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(f))
	}
}

// Extension returns the file name extension conventionally used for f.
func (f Format) Extension() string {
	switch f {
	case FormatRaw:
		return RawExtension
	case FormatCompressed:
		return CompressedExtension
	default:
		return ""
	}
}

func (f Format) byteOrder() binary.ByteOrder {
	if f == FormatCompressed {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// DeduceFormat selects the format from the file name extension.
func DeduceFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case CompressedExtension:
		return FormatCompressed
	case RawExtension:
		return FormatRaw
	default:
		return FormatUnknown
	}
}

// ParseFormat parses a format name as given on the command line.
// An empty name falls back to DeduceFormat(filePath).
func ParseFormat(name, filePath string) (Format, error) {
	switch strings.ToLower(name) {
	case "":
		if format := DeduceFormat(filePath); format != FormatUnknown {
			return format, nil
		}
		return FormatUnknown, fmt.Errorf("%w: cannot deduce format of %q", ErrUnknownFormat, filePath)
	case "raw", "map":
		return FormatRaw, nil
	case "compressed", "cmap":
		return FormatCompressed, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Name returns the map name derived from a file path: the base name without
// its extension.
func Name(filePath string) string {
	base := filepath.Base(filePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
