package tilemap

import (
	"log/slog"

	"github.com/eak1mov/go-tilemap/mapfile"
	"github.com/eak1mov/go-tilemap/render"
	"github.com/eak1mov/go-tilemap/render/palette"
)

type config struct {
	Renderer render.Renderer
	Logger   *slog.Logger
	Metrics  *render.Metrics
	Format   mapfile.Format
}

type Option func(*config)

// WithRenderer sets the renderer used by RenderedTile and RenderedMap.
// The default is a palette renderer with palette.DefaultConfig.
func WithRenderer(renderer render.Renderer) Option {
	return func(c *config) { c.Renderer = renderer }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.Logger = logger }
}

// WithMetrics reports render cache activity to m.
func WithMetrics(m *render.Metrics) Option {
	return func(c *config) { c.Metrics = m }
}

// WithFormat overrides the format deduced from the file name in Load.
func WithFormat(format mapfile.Format) Option {
	return func(c *config) { c.Format = format }
}

func newConfig(opts []Option) config {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.Renderer == nil {
		c.Renderer = palette.Default()
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	return c
}
