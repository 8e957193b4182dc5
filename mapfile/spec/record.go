package spec

import (
	"encoding/binary"
	"io"

	"github.com/eak1mov/go-tilemap/tile"
)

// Record is the on-disk form of one cell.
type Record struct {
	TileNumber   uint16
	Passable     uint16 // nonzero means passable
	ObjectNumber uint16
}

func RecordFromTile(t tile.Tile) Record {
	r := Record{TileNumber: t.TileNumber, ObjectNumber: t.ObjectNumber}
	if t.Passable {
		r.Passable = 1
	}
	return r
}

func (r Record) Tile() tile.Tile {
	return tile.Tile{
		TileNumber:   r.TileNumber,
		Passable:     r.Passable != 0,
		ObjectNumber: r.ObjectNumber,
	}
}

// ReadRecord reads one record. A record cut short by the end of the stream
// is reported as ErrTruncated.
func ReadRecord(r io.Reader, order binary.ByteOrder) (Record, error) {
	var buffer [RecordLength]byte
	if _, err := io.ReadFull(r, buffer[:]); err != nil {
		return Record{}, truncated(err)
	}
	return Record{
		TileNumber:   order.Uint16(buffer[0:2]),
		Passable:     order.Uint16(buffer[2:4]),
		ObjectNumber: order.Uint16(buffer[4:6]),
	}, nil
}

func WriteRecord(w io.Writer, order binary.ByteOrder, record Record) error {
	for _, value := range []uint16{record.TileNumber, record.Passable, record.ObjectNumber} {
		if err := WriteUint16(w, order, value); err != nil {
			return err
		}
	}
	return nil
}
