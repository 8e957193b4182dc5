package xyz_test

import (
	"errors"
	"maps"
	"path/filepath"
	"testing"

	"github.com/eak1mov/go-tilemap/tile"
	"github.com/eak1mov/go-tilemap/xyz"
	"github.com/google/go-cmp/cmp"
)

func TestWriterReader(t *testing.T) {
	rootDir := t.TempDir()
	pattern := filepath.Join(rootDir, "{y}", "{x}.png")

	images := map[tile.Point][]byte{
		{X: 0, Y: 0}:   []byte("cell00"),
		{X: 1, Y: 1}:   []byte("cell11"),
		{X: 12, Y: 0}:  []byte("cell120"),
		{X: 6, Y: 600}: []byte("cell6600"),
	}

	writer, err := xyz.NewWriter(pattern)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	for p, data := range images {
		if err := writer.WriteImage(p, data); err != nil {
			t.Errorf("WriteImage(%v) failed: %v", p, err)
		}
	}

	if err := writer.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	reader, err := xyz.NewReader(pattern)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}

	if got, want := maps.Collect(tile.IterImages(reader)), images; !cmp.Equal(got, want) {
		t.Errorf("VisitImages data mismatch")
	}

	for p, want := range images {
		data, err := reader.ReadImage(p)
		if err != nil {
			t.Errorf("ReadImage(%v) failed: %v", p, err)
			continue
		}
		if !cmp.Equal(data, want) {
			t.Errorf("ReadImage data mismatch for %v", p)
		}
	}

	data, err := reader.ReadImage(tile.Point{X: 9, Y: 9})
	if err != nil {
		t.Errorf("ReadImage(missing cell) failed: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("ReadImage(missing cell) expected empty data, got: %v bytes", len(data))
	}
}

func TestInvalidPattern(t *testing.T) {
	if _, err := xyz.NewWriter("/tmp/{x}.png"); !errors.Is(err, xyz.ErrInvalidPattern) {
		t.Errorf("NewWriter error = %v, want ErrInvalidPattern", err)
	}
	if _, err := xyz.NewReader("/tmp/{y}.png"); !errors.Is(err, xyz.ErrInvalidPattern) {
		t.Errorf("NewReader error = %v, want ErrInvalidPattern", err)
	}
}

func TestVisitOrder(t *testing.T) {
	pattern := filepath.Join(t.TempDir(), "cell_{y}_{x}.png")
	writer, err := xyz.NewWriter(pattern)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	points := []tile.Point{{X: 10, Y: 1}, {X: 2, Y: 1}, {X: 0, Y: 10}, {X: 3, Y: 0}}
	for _, p := range points {
		if err := writer.WriteImage(p, []byte("x")); err != nil {
			t.Fatalf("WriteImage(%v) failed: %v", p, err)
		}
	}

	reader, err := xyz.NewReader(pattern)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	var got []tile.Point
	for p := range tile.IterImages(reader) {
		got = append(got, p)
	}
	want := []tile.Point{{X: 3, Y: 0}, {X: 2, Y: 1}, {X: 10, Y: 1}, {X: 0, Y: 10}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("VisitImages order mismatch (-want+got):\n%v", diff)
	}
}
