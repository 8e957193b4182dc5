package palette

import (
	"image"
	"sync/atomic"
)

// Image is a cell image backed by an in-memory RGBA buffer.
type Image struct {
	*image.RGBA
	owner    *Renderer
	disposed bool
}

func (r *Renderer) newImage(width, height int) *Image {
	r.allocated.Add(1)
	return &Image{RGBA: image.NewRGBA(image.Rect(0, 0, width, height)), owner: r}
}

func (img *Image) Dispose() {
	if img.disposed {
		panic("palette: image disposed twice")
	}
	img.disposed = true
	img.RGBA = nil
	img.owner.disposed.Add(1)
}

func (img *Image) Disposed() bool {
	return img.disposed
}

// Stats counts the images a Renderer handed out and how many came back.
type Stats struct {
	Allocated int64
	Disposed  int64
}

func (s Stats) Live() int64 {
	return s.Allocated - s.Disposed
}

type counters struct {
	allocated atomic.Int64
	disposed  atomic.Int64
}
