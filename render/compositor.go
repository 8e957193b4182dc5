package render

// Compositor decides which single image represents a cell, given its tile
// layer image and its object layer image.
type Compositor struct {
	renderer Renderer
}

func NewCompositor(renderer Renderer) *Compositor {
	return &Compositor{renderer: renderer}
}

// Compose takes ownership of tileImage and objectImage and returns the image
// for the cell, or nil when nothing should be drawn. Every input or
// intermediate image that is not returned is disposed.
func (c *Compositor) Compose(tileImage, objectImage Image, opts Options) Image {
	if opts.ForceRenderEmpty {
		switch {
		case tileImage == nil && objectImage == nil:
			tileImage = c.renderer.Solid()
		case tileImage == nil:
			tileImage = c.renderer.Blank()
		case objectImage == nil:
			objectImage = c.renderer.Blank()
		}
	}

	var result Image
	switch {
	case opts.ShowTiles && tileImage != nil && (!opts.ShowObjects || objectImage == nil):
		result = tileImage
	case opts.ShowObjects && objectImage != nil && (!opts.ShowTiles || tileImage == nil):
		result = c.renderer.FillObjectOnBackground(objectImage, 0, 0)
	case opts.ShowTiles && opts.ShowObjects && tileImage != nil && objectImage != nil:
		result = c.renderer.CombineLayers(tileImage, objectImage)
	}

	if tileImage != nil && tileImage != result {
		tileImage.Dispose()
	}
	if objectImage != nil && objectImage != result {
		objectImage.Dispose()
	}
	return result
}
