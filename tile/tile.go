// Package tile provides the map cell value type and the grid that stores it.
package tile

// Tile describes a single map cell: the ground graphic, whether it can be
// walked on and an optional object standing on it.
type Tile struct {
	TileNumber   uint16
	Passable     bool
	ObjectNumber uint16 // 0 means no object
}

// Default is the tile written for cells that were never set.
var Default = Tile{TileNumber: 0, Passable: true, ObjectNumber: 0}

func (t Tile) HasObject() bool {
	return t.ObjectNumber != 0
}

// Point is a cell position, X is the column and Y is the row.
type Point struct {
	X int
	Y int
}
