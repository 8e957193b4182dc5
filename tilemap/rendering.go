package tilemap

import (
	"image"

	"github.com/eak1mov/go-tilemap/render"
	"golang.org/x/image/draw"
)

// RenderedTile returns the image for cell (x, y), reusing the cached one when
// it was rendered for the same presentation. The image stays owned by the map
// and is valid until the cell is rendered again, changed or the map closed.
// A nil image means there is nothing to draw.
func (m *Map) RenderedTile(x, y int, opts render.Options) (render.Image, error) {
	if err := m.checkBounds(x, y); err != nil {
		return nil, err
	}
	if img, ok := m.cache.Get(x, y, opts.Key); ok {
		return img, nil
	}

	var tileImage render.Image
	if opts.ShowTiles {
		if t, ok := m.grid.At(x, y); ok {
			tileImage = m.renderer.RenderTile(t)
		}
	}
	// Objects are rendered even when hidden: ForceRenderEmpty depends on
	// whether the cell has any.
	objectImage := m.renderer.RenderObjects(m.grid.Column(x, y, render.NeighborhoodHeight))

	img := m.compositor.Compose(tileImage, objectImage, opts)
	m.cache.Put(x, y, opts.Key, img)
	m.lastKey = opts.Key
	return img, nil
}

// RenderedMap draws the whole map at the renderer's cell size. Cells without
// an image are filled with the background colour. The returned image is owned
// by the caller.
func (m *Map) RenderedMap(showTiles, showObjects bool) *image.RGBA {
	cellSize := m.renderer.CellPixelSize()
	canvas := image.NewRGBA(image.Rect(0, 0, m.Width()*cellSize, m.Height()*cellSize))
	background := image.NewUniform(m.renderer.Background())
	draw.Draw(canvas, canvas.Bounds(), background, image.Point{}, draw.Src)

	key := render.Key{CellPixelSize: cellSize, ShowTiles: showTiles, ShowObjects: showObjects}
	if !key.Visible() {
		return canvas
	}

	m.logger.Debug("tilemap: render map", "width", m.Width(), "height", m.Height(), "key", key)
	for y := range m.Height() {
		for x := range m.Width() {
			img, _ := m.RenderedTile(x, y, render.Options{Key: key})
			if img == nil {
				continue
			}
			cell := image.Rect(x*cellSize, y*cellSize, (x+1)*cellSize, (y+1)*cellSize)
			draw.Draw(canvas, cell, img, img.Bounds().Min, draw.Over)
		}
	}
	return canvas
}
