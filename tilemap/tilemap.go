// Package tilemap provides an editable tile map with file persistence and a
// per-cell render cache.
//
// A Map is not safe for concurrent use.
package tilemap

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/eak1mov/go-tilemap/mapfile"
	"github.com/eak1mov/go-tilemap/render"
	"github.com/eak1mov/go-tilemap/tile"
)

// MaxDimension is the largest width or height of a map.
const MaxDimension = mapfile.MaxDimension

// ErrOutOfBounds reports access to a cell outside the map.
var ErrOutOfBounds = errors.New("tilemap: cell out of bounds")

type Map struct {
	name     string
	grid     *tile.Grid
	cache    *render.Cache
	editable bool
	modified bool
	lastKey  render.Key

	renderer   render.Renderer
	compositor *render.Compositor
	logger     *slog.Logger
}

func newMap(name string, grid *tile.Grid, editable bool, c config) *Map {
	return &Map{
		name:       name,
		grid:       grid,
		cache:      render.NewCache(grid.Width(), grid.Height(), render.WithMetrics(c.Metrics)),
		editable:   editable,
		renderer:   c.Renderer,
		compositor: render.NewCompositor(c.Renderer),
		logger:     c.Logger,
	}
}

// New creates an empty editable map. Dimensions are clamped into
// [0, MaxDimension].
func New(width, height int, opts ...Option) *Map {
	c := newConfig(opts)
	width, height = clampDimension(width), clampDimension(height)
	return newMap("", tile.NewGrid(width, height), true, c)
}

// Load reads a map file. The format is deduced from the file name unless
// WithFormat is given. Loaded maps are read-only until SetEditable(true).
func Load(filePath string, opts ...Option) (*Map, error) {
	c := newConfig(opts)
	format := c.Format
	if format == mapfile.FormatUnknown {
		format = mapfile.DeduceFormat(filePath)
	}

	c.Logger.Debug("tilemap: load", "path", filePath, "format", format)
	grid, err := mapfile.ReadFile(filePath, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filePath, err)
	}

	c.Logger.Debug("tilemap: loaded", "width", grid.Width(), "height", grid.Height())
	return newMap(mapfile.Name(filePath), grid, false, c), nil
}

// Save writes the map to filePath in the format matching its extension,
// replacing any existing file. Name and Modified are updated only on success.
func (m *Map) Save(filePath string) error {
	format := mapfile.DeduceFormat(filePath)
	if format == mapfile.FormatUnknown {
		return fmt.Errorf("save %s: %w", filePath, mapfile.ErrUnknownFormat)
	}

	m.logger.Debug("tilemap: save", "path", filePath, "format", format)
	if err := mapfile.WriteFile(filePath, m.grid, format, mapfile.WithLogger(m.logger)); err != nil {
		return fmt.Errorf("save %s: %w", filePath, err)
	}

	m.name = mapfile.Name(filePath)
	m.modified = false
	return nil
}

// Close releases all cached images. The map must not be rendered afterwards.
func (m *Map) Close() error {
	m.cache.Release()
	return nil
}

func (m *Map) Name() string   { return m.name }
func (m *Map) Width() int     { return m.grid.Width() }
func (m *Map) Height() int    { return m.grid.Height() }
func (m *Map) Modified() bool { return m.modified }
func (m *Map) Editable() bool { return m.editable }

func (m *Map) SetEditable(editable bool) {
	m.editable = editable
}

// Grid returns a copy of the map cells.
func (m *Map) Grid() *tile.Grid {
	return m.grid.Clone()
}

// LastRenderKey returns the presentation used by the most recent cell render.
func (m *Map) LastRenderKey() render.Key {
	return m.lastKey
}

func (m *Map) checkBounds(x, y int) error {
	if !m.grid.Contains(x, y) {
		return fmt.Errorf("%w: (%d, %d) not in %dx%d", ErrOutOfBounds, x, y, m.grid.Width(), m.grid.Height())
	}
	return nil
}

// Cell returns the tile at (x, y) and whether the cell holds one.
func (m *Map) Cell(x, y int) (tile.Tile, bool) {
	return m.grid.At(x, y)
}

// SetCell replaces the tile at (x, y). Writes to a read-only map are ignored.
func (m *Map) SetCell(x, y int, t tile.Tile) error {
	if err := m.checkBounds(x, y); err != nil {
		return err
	}
	if !m.editable {
		return nil
	}
	m.grid.Set(x, y, t)
	m.invalidate(x, y)
	m.modified = true
	return nil
}

// ClearCell makes (x, y) absent. Writes to a read-only map are ignored.
func (m *Map) ClearCell(x, y int) error {
	if err := m.checkBounds(x, y); err != nil {
		return err
	}
	if !m.editable {
		return nil
	}
	m.grid.Clear(x, y)
	m.invalidate(x, y)
	m.modified = true
	return nil
}

// invalidate drops the cached image of (x, y) and of the cells above it that
// a tall object standing on (x, y) can reach into.
func (m *Map) invalidate(x, y int) {
	for dy := range render.NeighborhoodHeight {
		if y-dy < 0 {
			break
		}
		m.cache.Invalidate(x, y-dy)
	}
}

// Resize changes the map dimensions, keeping the cells and cached images of
// the top-left overlap. Dimensions are clamped into [0, MaxDimension].
func (m *Map) Resize(width, height int) {
	width, height = clampDimension(width), clampDimension(height)
	m.logger.Debug("tilemap: resize", "from_width", m.grid.Width(), "from_height", m.grid.Height(), "width", width, "height", height)
	m.grid = m.grid.Resized(width, height)
	m.cache.Resize(width, height)
	m.modified = true
}

func clampDimension(value int) int {
	return min(max(value, 0), MaxDimension)
}
