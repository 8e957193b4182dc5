package tile_test

import (
	"maps"
	"testing"

	"github.com/eak1mov/go-tilemap/tile"
	"github.com/google/go-cmp/cmp"
)

func fullGrid(width, height int) *tile.Grid {
	g := tile.NewGrid(width, height)
	for y := range height {
		for x := range width {
			g.Set(x, y, tile.Tile{TileNumber: uint16(y*width + x), Passable: x%2 == 0, ObjectNumber: uint16(x)})
		}
	}
	return g
}

func TestGridSetClear(t *testing.T) {
	g := tile.NewGrid(3, 2)
	if _, ok := g.At(1, 1); ok {
		t.Fatalf("At(1, 1) present on a new grid")
	}

	want := tile.Tile{TileNumber: 0, Passable: false, ObjectNumber: 0}
	g.Set(1, 1, want)
	got, ok := g.At(1, 1)
	if !ok {
		t.Fatalf("At(1, 1) absent after Set")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("At(1, 1) mismatch (-want+got):\n%v", diff)
	}

	g.Clear(1, 1)
	if _, ok := g.At(1, 1); ok {
		t.Errorf("At(1, 1) present after Clear")
	}
	if _, ok := g.At(5, 5); ok {
		t.Errorf("At(5, 5) present outside the grid")
	}
}

func TestGridResized(t *testing.T) {
	src := fullGrid(3, 3)
	dst := src.Resized(2, 5)

	if got, want := [2]int{dst.Width(), dst.Height()}, [2]int{2, 5}; got != want {
		t.Fatalf("Resized size = %v, want = %v", got, want)
	}
	for y := range 5 {
		for x := range 2 {
			got, gotOk := dst.At(x, y)
			want, wantOk := src.At(x, y)
			if y >= 3 {
				if gotOk {
					t.Errorf("At(%d, %d) = %v, want absent", x, y, got)
				}
				continue
			}
			if gotOk != wantOk || got != want {
				t.Errorf("At(%d, %d) = %v, want = %v", x, y, got, want)
			}
		}
	}
	if src.Width() != 3 || src.Height() != 3 {
		t.Errorf("Resized modified the source grid")
	}
}

func TestGridColumn(t *testing.T) {
	g := tile.NewGrid(2, 20)
	g.Set(0, 3, tile.Tile{TileNumber: 7, ObjectNumber: 2})

	column := g.Column(0, 2, 12)
	if got, want := len(column), 12; got != want {
		t.Fatalf("len(Column) = %d, want = %d", got, want)
	}
	if column[0] != nil {
		t.Errorf("column[0] = %v, want nil", column[0])
	}
	if column[1] == nil || column[1].TileNumber != 7 {
		t.Errorf("column[1] = %v, want tile 7", column[1])
	}

	column[1].TileNumber = 99
	if got, _ := g.At(0, 3); got.TileNumber != 7 {
		t.Errorf("Column returned a reference into the grid")
	}

	if got, want := len(g.Column(0, 15, 12)), 5; got != want {
		t.Errorf("len(Column) near the bottom = %d, want = %d", got, want)
	}
	if got := g.Column(0, 20, 12); got != nil {
		t.Errorf("Column outside the grid = %v, want nil", got)
	}
}

func TestGridCells(t *testing.T) {
	g := tile.NewGrid(2, 2)
	g.Set(1, 0, tile.Tile{TileNumber: 1})
	g.Set(0, 1, tile.Tile{TileNumber: 2})

	var order []tile.Point
	for p := range g.Cells() {
		order = append(order, p)
	}
	want := []tile.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("Cells order mismatch (-want+got):\n%v", diff)
	}

	tiles := maps.Collect(g.Tiles())
	wantTiles := map[tile.Point]tile.Tile{
		{X: 1, Y: 0}: {TileNumber: 1},
		{X: 0, Y: 1}: {TileNumber: 2},
	}
	if diff := cmp.Diff(wantTiles, tiles); diff != "" {
		t.Errorf("Tiles mismatch (-want+got):\n%v", diff)
	}
	if got, want := g.Count(), 2; got != want {
		t.Errorf("Count() = %d, want = %d", got, want)
	}
}

func TestGridEqual(t *testing.T) {
	a := fullGrid(4, 3)
	b := a.Clone()
	if !a.Equal(b) {
		t.Fatalf("Clone is not equal to the source")
	}
	b.Clear(0, 0)
	if a.Equal(b) {
		t.Errorf("Equal ignores absent cells")
	}
	if a.Equal(fullGrid(3, 4)) {
		t.Errorf("Equal ignores dimensions")
	}
}
