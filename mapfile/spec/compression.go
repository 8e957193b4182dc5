package spec

import (
	"io"

	"github.com/klauspost/compress/flate"
)

// NewDeflateWriter starts a raw deflate stream on top of w.
// Close must be called to flush the final block; it does not close w.
func NewDeflateWriter(w io.Writer) (*flate.Writer, error) {
	return flate.NewWriter(w, flate.BestCompression)
}

// NewDeflateReader reads a raw deflate stream from r.
func NewDeflateReader(r io.Reader) io.ReadCloser {
	return flate.NewReader(r)
}
