package mb_test

import (
	"maps"
	"path/filepath"
	"testing"

	"github.com/eak1mov/go-tilemap/mb"
	"github.com/eak1mov/go-tilemap/tile"
	"github.com/google/go-cmp/cmp"
	_ "github.com/mattn/go-sqlite3"
)

func TestWriterReader(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "town.mbtiles")

	images := map[tile.Point][]byte{
		{X: 0, Y: 0}: []byte("cell00"),
		{X: 3, Y: 0}: []byte("cell30"),
		{X: 1, Y: 4}: []byte("cell14"),
	}

	writer, err := mb.NewWriter(filePath, 4, 5, mb.WithMetadata(map[string]string{"name": "town", "width": "ignored"}))
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	defer writer.Close()

	for p, data := range images {
		if err := writer.WriteImage(p, data); err != nil {
			t.Fatalf("WriteImage(%v) failed: %v", p, err)
		}
	}
	if err := writer.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reader, err := mb.NewReader(filePath)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	metadata, err := reader.ReadMetadata()
	if err != nil {
		t.Fatalf("ReadMetadata failed: %v", err)
	}
	wantMetadata := map[string]string{
		"name":    "town",
		"format":  "png",
		"minzoom": "0",
		"maxzoom": "0",
		"width":   "4",
		"height":  "5",
	}
	if diff := cmp.Diff(wantMetadata, metadata); diff != "" {
		t.Errorf("ReadMetadata mismatch (-want+got):\n%v", diff)
	}

	if got := maps.Collect(tile.IterImages(reader)); !cmp.Equal(got, images) {
		t.Errorf("VisitImages data mismatch: %v", got)
	}

	for p, want := range images {
		got, err := reader.ReadImage(p)
		if err != nil {
			t.Fatalf("ReadImage(%v) failed: %v", p, err)
		}
		if !cmp.Equal(got, want) {
			t.Errorf("ReadImage(%v) = %q, want = %q", p, got, want)
		}
	}

	missing, err := reader.ReadImage(tile.Point{X: 2, Y: 2})
	if err != nil {
		t.Errorf("ReadImage(missing) failed: %v", err)
	}
	if len(missing) != 0 {
		t.Errorf("ReadImage(missing) = %v bytes, want empty", len(missing))
	}
}
