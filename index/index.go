// Package index provides a flat dump format for map cells.
//
// The dump is a sequence of little-endian fixed-size records ordered along a
// Hilbert curve, so cells that are close on the map are close in the file.
// It is designed to be easily portable to other languages and utilities.
package index

import (
	"bytes"
	"cmp"
	"encoding/binary"
	"io"
	"math/bits"
	"slices"

	"github.com/eak1mov/go-tilemap/tile"
	"github.com/google/hilbert"
)

const (
	FlagPassable uint16 = 1 << iota
	FlagPresent
)

// Item represents a single cell of a map.
type Item struct {
	X            uint16
	Y            uint16
	TileNumber   uint16
	Flags        uint16
	ObjectNumber uint16
}

func (i Item) Point() tile.Point {
	return tile.Point{X: int(i.X), Y: int(i.Y)}
}

func (i Item) Present() bool {
	return i.Flags&FlagPresent != 0
}

func (i Item) Tile() tile.Tile {
	return tile.Tile{
		TileNumber:   i.TileNumber,
		Passable:     i.Flags&FlagPassable != 0,
		ObjectNumber: i.ObjectNumber,
	}
}

// FromGrid returns one item per present cell of g in Hilbert order.
func FromGrid(g *tile.Grid) []Item {
	items := make([]Item, 0, g.Count())
	for p, t := range g.Tiles() {
		item := Item{
			X:            uint16(p.X),
			Y:            uint16(p.Y),
			TileNumber:   t.TileNumber,
			Flags:        FlagPresent,
			ObjectNumber: t.ObjectNumber,
		}
		if t.Passable {
			item.Flags |= FlagPassable
		}
		items = append(items, item)
	}
	SortHilbert(items, g.Width(), g.Height())
	return items
}

// ToGrid places items on a new grid of the given size. Items outside the
// grid or without FlagPresent are skipped.
func ToGrid(items []Item, width, height int) *tile.Grid {
	g := tile.NewGrid(width, height)
	for _, item := range items {
		p := item.Point()
		if !item.Present() || !g.Contains(p.X, p.Y) {
			continue
		}
		g.Set(p.X, p.Y, item.Tile())
	}
	return g
}

// SortHilbert orders items along the Hilbert curve covering a width x height map.
func SortHilbert(items []Item, width, height int) {
	side := 1 << bits.Len(uint(max(width, height, 1)-1))
	h, _ := hilbert.NewHilbert(side)
	code := func(item Item) int {
		t, err := h.MapInverse(int(item.X), int(item.Y))
		if err != nil {
			return side * side // out of range, sort last
		}
		return t
	}
	slices.SortStableFunc(items, func(a, b Item) int {
		return cmp.Compare(code(a), code(b))
	})
}

func WriteAll(items []Item, writer io.Writer) error {
	return binary.Write(writer, binary.LittleEndian, items)
}

func ReadAll(indexData []byte) ([]Item, error) {
	count := len(indexData) / binary.Size(Item{})
	items := make([]Item, count)

	err := binary.Read(bytes.NewReader(indexData), binary.LittleEndian, items)
	if err != nil {
		return nil, err
	}

	return items, nil
}
