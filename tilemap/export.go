package tilemap

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/eak1mov/go-tilemap/render"
	"github.com/eak1mov/go-tilemap/tile"
)

// ExportImages renders every cell with opts and writes it to w as PNG.
// Cells without an image are skipped. progress, if not nil, is called once
// per cell. The writer is finalized on success.
func (m *Map) ExportImages(w tile.Writer, opts render.Options, progress func()) error {
	m.logger.Debug("tilemap: export", "width", m.Width(), "height", m.Height(), "key", opts.Key)

	var buf bytes.Buffer
	for y := range m.Height() {
		for x := range m.Width() {
			img, err := m.RenderedTile(x, y, opts)
			if err != nil {
				return err
			}
			if progress != nil {
				progress()
			}
			if img == nil {
				continue
			}
			buf.Reset()
			if err := png.Encode(&buf, img); err != nil {
				return fmt.Errorf("encode cell (%d, %d): %w", x, y, err)
			}
			if err := w.WriteImage(tile.Point{X: x, Y: y}, bytes.Clone(buf.Bytes())); err != nil {
				return fmt.Errorf("write cell (%d, %d): %w", x, y, err)
			}
		}
	}

	m.logger.Debug("tilemap: finalize export")
	return w.Finalize()
}
