package index_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/eak1mov/go-tilemap/index"
	"github.com/eak1mov/go-tilemap/internal"
	"github.com/eak1mov/go-tilemap/tile"
	"github.com/google/go-cmp/cmp"
)

func TestItemLength(t *testing.T) {
	if got, want := binary.Size(index.Item{}), 10; got != want {
		t.Errorf("binary.Size(Item{}) = %d, want = %d", got, want)
	}
}

func TestWriteReadAll(t *testing.T) {
	for tc := range internal.GridCases() {
		t.Run(tc.Name, func(t *testing.T) {
			g := tc.Grid.Clone()
			if g.Width() > 0 && g.Height() > 0 {
				g.Clear(0, 0)
			}

			items := index.FromGrid(g)
			if got, want := len(items), g.Count(); got != want {
				t.Fatalf("len(FromGrid) = %d, want = %d", got, want)
			}

			var buffer bytes.Buffer
			if err := index.WriteAll(items, &buffer); err != nil {
				t.Fatalf("WriteAll failed: %v", err)
			}
			read, err := index.ReadAll(buffer.Bytes())
			if err != nil {
				t.Fatalf("ReadAll failed: %v", err)
			}
			if diff := cmp.Diff(items, read); diff != "" {
				t.Fatalf("ReadAll(WriteAll(items)) mismatch (-want+got):\n%v", diff)
			}

			if !index.ToGrid(read, g.Width(), g.Height()).Equal(g) {
				t.Errorf("ToGrid(FromGrid(g)) != g")
			}
		})
	}
}

func TestHilbertOrder(t *testing.T) {
	g := tile.NewGrid(2, 2)
	for y := range 2 {
		for x := range 2 {
			g.Set(x, y, tile.Tile{TileNumber: uint16(y*2 + x)})
		}
	}

	var got []tile.Point
	for _, item := range index.FromGrid(g) {
		got = append(got, item.Point())
	}
	want := []tile.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromGrid order mismatch (-want+got):\n%v", diff)
	}
}

func TestToGridSkipsOutside(t *testing.T) {
	items := []index.Item{
		{X: 5, Y: 5, Flags: index.FlagPresent},
		{X: 0, Y: 0, TileNumber: 3, Flags: index.FlagPresent | index.FlagPassable},
		{X: 1, Y: 0, TileNumber: 4},
	}
	g := index.ToGrid(items, 2, 2)
	if got, want := g.Count(), 1; got != want {
		t.Fatalf("Count() = %d, want = %d", got, want)
	}
	if got, _ := g.At(0, 0); got != (tile.Tile{TileNumber: 3, Passable: true}) {
		t.Errorf("At(0, 0) = %v", got)
	}
}
