package tile

// Grid is a rectangular store of optional tiles in row-major order.
// A cell that was never set (or was cleared) is absent, which is different
// from a cell holding a tile without an object.
type Grid struct {
	width   int
	height  int
	tiles   []Tile
	present []bool
}

// NewGrid allocates a grid with all cells absent.
func NewGrid(width, height int) *Grid {
	width, height = max(width, 0), max(height, 0)
	return &Grid{
		width:   width,
		height:  height,
		tiles:   make([]Tile, width*height),
		present: make([]bool, width*height),
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// At returns the tile at (x, y) and whether the cell holds one.
// Positions outside the grid are reported as absent.
func (g *Grid) At(x, y int) (Tile, bool) {
	if !g.Contains(x, y) {
		return Tile{}, false
	}
	i := y*g.width + x
	return g.tiles[i], g.present[i]
}

// Set stores t at (x, y). The position must be inside the grid.
func (g *Grid) Set(x, y int, t Tile) {
	i := y*g.width + x
	g.tiles[i] = t
	g.present[i] = true
}

// Clear makes the cell at (x, y) absent. The position must be inside the grid.
func (g *Grid) Clear(x, y int) {
	i := y*g.width + x
	g.tiles[i] = Tile{}
	g.present[i] = false
}

// Resized returns a new grid of the given size holding the top-left overlap
// of g. Cells outside the overlap are absent.
func (g *Grid) Resized(width, height int) *Grid {
	result := NewGrid(width, height)
	copyWidth := min(g.width, result.width)
	copyHeight := min(g.height, result.height)
	for y := range copyHeight {
		src := y * g.width
		dst := y * result.width
		copy(result.tiles[dst:dst+copyWidth], g.tiles[src:src+copyWidth])
		copy(result.present[dst:dst+copyWidth], g.present[src:src+copyWidth])
	}
	return result
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	return g.Resized(g.width, g.height)
}

// Column returns up to n cells starting at (x, y) and going down, clipped at
// the bottom edge. Absent cells are nil. The returned tiles are copies.
func (g *Grid) Column(x, y, n int) []*Tile {
	if !g.Contains(x, y) || n <= 0 {
		return nil
	}
	count := min(n, g.height-y)
	column := make([]*Tile, count)
	for i := range count {
		if t, ok := g.At(x, y+i); ok {
			column[i] = &t
		}
	}
	return column
}

// Count returns the number of present cells.
func (g *Grid) Count() int {
	count := 0
	for _, p := range g.present {
		if p {
			count++
		}
	}
	return count
}

func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.tiles {
		if g.present[i] != other.present[i] {
			return false
		}
		if g.present[i] && g.tiles[i] != other.tiles[i] {
			return false
		}
	}
	return true
}
