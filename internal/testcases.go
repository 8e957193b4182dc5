// Package internal holds fixtures shared by the package tests.
package internal

import (
	"iter"
	"math/rand/v2"

	"github.com/eak1mov/go-tilemap/tile"
)

// GridCase is a named grid used by table tests.
type GridCase struct {
	Name string
	Grid *tile.Grid
}

// RandomGrid returns a fully populated grid filled from a fixed seed.
func RandomGrid(width, height int, seed uint64) *tile.Grid {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	g := tile.NewGrid(width, height)
	for y := range height {
		for x := range width {
			g.Set(x, y, tile.Tile{
				TileNumber:   uint16(rng.UintN(1 << 16)),
				Passable:     rng.UintN(2) == 0,
				ObjectNumber: uint16(rng.UintN(1 << 16)),
			})
		}
	}
	return g
}

// GridCases yields the grids every codec test runs against.
func GridCases() iter.Seq[GridCase] {
	return func(yield func(GridCase) bool) {
		for _, tc := range []GridCase{
			{Name: "empty", Grid: tile.NewGrid(0, 0)},
			{Name: "zero_height", Grid: tile.NewGrid(7, 0)},
			{Name: "single", Grid: RandomGrid(1, 1, 1)},
			{Name: "wide", Grid: RandomGrid(300, 2, 2)},
			{Name: "tall", Grid: RandomGrid(2, 300, 3)},
			{Name: "medium", Grid: RandomGrid(64, 48, 4)},
			{Name: "large", Grid: RandomGrid(512, 512, 5)},
		} {
			if !yield(tc) {
				return
			}
		}
	}
}
