// Package render defines the seam to the external tile renderer and implements
// the per-cell image cache and the compositing policy built on top of it.
package render

import (
	"image"
	"image/color"

	"github.com/eak1mov/go-tilemap/tile"
)

// NeighborhoodHeight is the number of cells scanned downwards from a cell to
// find objects tall enough to reach into it. It matches the tallest object
// graphic of the asset set.
const NeighborhoodHeight = 12

// Image is a drawing surface produced by a Renderer. Whoever holds an Image
// must call Dispose exactly once when done with it. Implementations must be
// comparable (typically pointers).
type Image interface {
	image.Image
	Dispose()
}

// Renderer draws individual tiles and objects. Any method returning nil means
// there is nothing to draw.
type Renderer interface {
	// CellPixelSize is the width and height of a rendered cell.
	CellPixelSize() int
	// Background is the colour of cells without any image.
	Background() color.Color

	RenderTile(t tile.Tile) Image
	// RenderObjects renders the objects reaching into the first cell of
	// column. column holds up to NeighborhoodHeight cells going down; nil
	// entries are absent cells.
	RenderObjects(column []*tile.Tile) Image

	// CombineLayers returns a new image with foreground drawn over background.
	CombineLayers(background, foreground Image) Image
	// FillObjectOnBackground returns a new cell image with object placed at
	// (x, y) over the background colour.
	FillObjectOnBackground(object Image, x, y int) Image

	// Blank returns a new fully transparent cell image.
	Blank() Image
	// Solid returns a new cell image filled with the background colour.
	Solid() Image
}

// Key identifies the presentation a cached image was produced for.
type Key struct {
	CellPixelSize int
	ShowTiles     bool
	ShowObjects   bool
}

// Visible reports whether any layer is shown.
func (k Key) Visible() bool {
	return k.ShowTiles || k.ShowObjects
}

// Options controls a single cell render.
type Options struct {
	Key
	// ForceRenderEmpty makes empty cells render as a background image instead
	// of nothing. Used by the single-tile editing view.
	ForceRenderEmpty bool
}

// Dispose releases img if it is not nil.
func Dispose(img Image) {
	if img != nil {
		img.Dispose()
	}
}
