package tile

import "iter"

// Cells returns an iterator over all cells in row-major order (y outer, x inner).
// Absent cells are yielded with a nil tile.
func (g *Grid) Cells() iter.Seq2[Point, *Tile] {
	return func(yield func(Point, *Tile) bool) {
		for y := range g.height {
			for x := range g.width {
				var cell *Tile
				if t, ok := g.At(x, y); ok {
					cell = &t
				}
				if !yield(Point{X: x, Y: y}, cell) {
					return
				}
			}
		}
	}
}

// Tiles returns an iterator over present cells only.
func (g *Grid) Tiles() iter.Seq2[Point, Tile] {
	return func(yield func(Point, Tile) bool) {
		for p, t := range g.Cells() {
			if t == nil {
				continue
			}
			if !yield(p, *t) {
				return
			}
		}
	}
}
