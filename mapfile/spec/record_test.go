package spec_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/eak1mov/go-tilemap/mapfile/spec"
	"github.com/eak1mov/go-tilemap/tile"
	"github.com/google/go-cmp/cmp"
)

func TestRecordLayout(t *testing.T) {
	record := spec.Record{TileNumber: 0x0102, Passable: 1, ObjectNumber: 0x0304}
	for _, tc := range []struct {
		Name  string
		Order binary.ByteOrder
		Want  []byte
	}{
		{Name: "Big", Order: binary.BigEndian, Want: []byte{0x01, 0x02, 0x00, 0x01, 0x03, 0x04}},
		{Name: "Little", Order: binary.LittleEndian, Want: []byte{0x02, 0x01, 0x01, 0x00, 0x04, 0x03}},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			var buffer bytes.Buffer
			if err := spec.WriteRecord(&buffer, tc.Order, record); err != nil {
				t.Fatalf("WriteRecord failed: %v", err)
			}
			if diff := cmp.Diff(tc.Want, buffer.Bytes()); diff != "" {
				t.Errorf("WriteRecord bytes mismatch (-want+got):\n%v", diff)
			}
			got, err := spec.ReadRecord(&buffer, tc.Order)
			if err != nil {
				t.Fatalf("ReadRecord failed: %v", err)
			}
			if diff := cmp.Diff(record, got); diff != "" {
				t.Errorf("ReadRecord mismatch (-want+got):\n%v", diff)
			}
		})
	}
}

func TestRecordTile(t *testing.T) {
	for _, tt := range []tile.Tile{
		tile.Default,
		{TileNumber: 65535, Passable: false, ObjectNumber: 12},
	} {
		if diff := cmp.Diff(tt, spec.RecordFromTile(tt).Tile()); diff != "" {
			t.Errorf("RecordFromTile(%v).Tile() mismatch (-want+got):\n%v", tt, diff)
		}
	}
	if got := (spec.Record{Passable: 0x0100}).Tile(); !got.Passable {
		t.Errorf("nonzero passable field decoded as impassable")
	}
}

func TestRecordTruncated(t *testing.T) {
	_, err := spec.ReadRecord(bytes.NewReader([]byte{1, 2, 3, 4}), binary.BigEndian)
	if !errors.Is(err, spec.ErrTruncated) {
		t.Errorf("ReadRecord(short) error = %v, want ErrTruncated", err)
	}
}
