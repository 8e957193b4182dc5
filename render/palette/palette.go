// Package palette implements a render.Renderer that draws tiles as solid
// colour squares and objects as coloured pillars spanning one or more cells.
package palette

import (
	"hash/fnv"
	"image"
	"image/color"

	"github.com/eak1mov/go-tilemap/render"
	"github.com/eak1mov/go-tilemap/tile"
	"golang.org/x/image/draw"
)

type Renderer struct {
	counters

	cellSize   int
	background color.NRGBA
	blank      color.NRGBA
	impassable color.NRGBA
	tiles      map[uint16]color.NRGBA
	objects    map[uint16]objectStyle
}

type objectStyle struct {
	color  color.NRGBA
	height int
}

var _ render.Renderer = (*Renderer)(nil)

// New creates a renderer from config. Colours that fail to parse fall back to
// generated ones; use LoadConfig to validate a config up front.
func New(config Config) *Renderer {
	r := &Renderer{
		cellSize: config.CellSize,
		tiles:    make(map[uint16]color.NRGBA),
		objects:  make(map[uint16]objectStyle),
	}
	if r.cellSize <= 0 {
		r.cellSize = DefaultConfig().CellSize
	}
	r.background = parseOr(config.Background, color.NRGBA{A: 0xff})
	r.blank = parseOr(config.Blank, color.NRGBA{})
	r.impassable = parseOr(config.ImpassableTint, color.NRGBA{R: 0xff, A: 0xff})
	for number, value := range config.Tiles {
		r.tiles[number] = parseOr(value, generatedColor(number, 0))
	}
	for number, style := range config.Objects {
		r.objects[number] = objectStyle{
			color:  parseOr(style.Color, generatedColor(number, 1)),
			height: style.Height,
		}
	}
	return r
}

func Default() *Renderer {
	return New(DefaultConfig())
}

func parseOr(value string, fallback color.NRGBA) color.NRGBA {
	c, err := ParseColor(value)
	if err != nil {
		return fallback
	}
	return c
}

func generatedColor(number uint16, layer byte) color.NRGBA {
	h := fnv.New32a()
	h.Write([]byte{layer, byte(number >> 8), byte(number)})
	v := h.Sum32()
	return color.NRGBA{R: uint8(v), G: uint8(v >> 8), B: uint8(v >> 16), A: 0xff}
}

func (r *Renderer) Stats() Stats {
	return Stats{Allocated: r.allocated.Load(), Disposed: r.disposed.Load()}
}

func (r *Renderer) CellPixelSize() int      { return r.cellSize }
func (r *Renderer) Background() color.Color { return r.background }

func (r *Renderer) tileColor(number uint16) color.NRGBA {
	if c, ok := r.tiles[number]; ok {
		return c
	}
	return generatedColor(number, 0)
}

func (r *Renderer) objectStyle(number uint16) objectStyle {
	style, ok := r.objects[number]
	if !ok {
		style = objectStyle{color: generatedColor(number, 1), height: 1}
	}
	style.height = min(max(style.height, 1), render.NeighborhoodHeight)
	return style
}

func (r *Renderer) fill(c color.Color) *Image {
	img := r.newImage(r.cellSize, r.cellSize)
	draw.Draw(img.RGBA, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func (r *Renderer) RenderTile(t tile.Tile) render.Image {
	img := r.fill(r.tileColor(t.TileNumber))
	if !t.Passable {
		border := max(r.cellSize/16, 1)
		tint := image.NewUniform(r.impassable)
		bounds := img.Bounds()
		inner := bounds.Inset(border)
		for _, rect := range []image.Rectangle{
			{Min: bounds.Min, Max: image.Pt(bounds.Max.X, inner.Min.Y)},
			{Min: image.Pt(bounds.Min.X, inner.Max.Y), Max: bounds.Max},
			{Min: image.Pt(bounds.Min.X, inner.Min.Y), Max: image.Pt(inner.Min.X, inner.Max.Y)},
			{Min: image.Pt(inner.Max.X, inner.Min.Y), Max: image.Pt(bounds.Max.X, inner.Max.Y)},
		} {
			draw.Draw(img.RGBA, rect, tint, image.Point{}, draw.Over)
		}
	}
	return img
}

// RenderObjects draws the part of every object in column that reaches up into
// the first cell. An object at column[i] with height h covers cells i-h+1..i.
func (r *Renderer) RenderObjects(column []*tile.Tile) render.Image {
	var img *Image
	inset := r.cellSize / 8
	for i, cell := range column {
		if cell == nil || !cell.HasObject() {
			continue
		}
		style := r.objectStyle(cell.ObjectNumber)
		if style.height <= i {
			continue
		}
		top := (i-style.height+1)*r.cellSize + inset
		bottom := (i + 1) * r.cellSize
		rect := image.Rect(inset, top, r.cellSize-inset, bottom).Intersect(image.Rect(0, 0, r.cellSize, r.cellSize))
		if rect.Empty() {
			continue
		}
		if img == nil {
			img = r.newImage(r.cellSize, r.cellSize)
		}
		draw.Draw(img.RGBA, rect, image.NewUniform(style.color), image.Point{}, draw.Over)
	}
	if img == nil {
		return nil
	}
	return img
}

func (r *Renderer) CombineLayers(background, foreground render.Image) render.Image {
	img := r.newImage(r.cellSize, r.cellSize)
	draw.Draw(img.RGBA, img.Bounds(), background, background.Bounds().Min, draw.Src)
	draw.Draw(img.RGBA, img.Bounds(), foreground, foreground.Bounds().Min, draw.Over)
	return img
}

func (r *Renderer) FillObjectOnBackground(object render.Image, x, y int) render.Image {
	img := r.fill(r.background)
	bounds := object.Bounds()
	draw.Draw(img.RGBA, bounds.Sub(bounds.Min).Add(image.Pt(x, y)), object, bounds.Min, draw.Over)
	return img
}

func (r *Renderer) Blank() render.Image {
	return r.fill(r.blank)
}

func (r *Renderer) Solid() render.Image {
	return r.fill(r.background)
}
