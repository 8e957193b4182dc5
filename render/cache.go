package render

type entry struct {
	image Image
	key   Key
}

// Cache holds one rendered image per cell together with the Key it was
// rendered for. The cache owns its images: they are disposed when replaced,
// invalidated, dropped by Resize or released.
//
// Validity is decided per entry, so rendering other cells with a different
// Key does not invalidate an entry; Map.LastRenderKey is informational only.
type Cache struct {
	width   int
	height  int
	entries []entry
	metrics *Metrics
}

type CacheOption func(*Cache)

// WithMetrics reports cache activity to m.
func WithMetrics(m *Metrics) CacheOption {
	return func(c *Cache) { c.metrics = m }
}

func NewCache(width, height int, opts ...CacheOption) *Cache {
	width, height = max(width, 0), max(height, 0)
	c := &Cache{
		width:   width,
		height:  height,
		entries: make([]entry, width*height),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cache) Width() int  { return c.width }
func (c *Cache) Height() int { return c.height }

// Get returns the image cached at (x, y) if it was rendered for key and its
// width matches key.CellPixelSize.
func (c *Cache) Get(x, y int, key Key) (Image, bool) {
	e := c.entries[y*c.width+x]
	if e.image == nil || e.key != key || e.image.Bounds().Dx() != key.CellPixelSize {
		c.metrics.miss()
		return nil, false
	}
	c.metrics.hit()
	return e.image, true
}

// Put stores img (possibly nil) for (x, y), disposing the previous image.
func (c *Cache) Put(x, y int, key Key, img Image) {
	e := &c.entries[y*c.width+x]
	if e.image != nil && e.image != img {
		c.dispose(e.image)
	}
	e.image = img
	e.key = key
}

// Invalidate drops the image cached at (x, y).
func (c *Cache) Invalidate(x, y int) {
	c.Put(x, y, Key{}, nil)
}

// Resize keeps the entries in the top-left overlap with the new size and
// disposes all others.
func (c *Cache) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	entries := make([]entry, width*height)
	for y := range c.height {
		for x := range c.width {
			e := c.entries[y*c.width+x]
			if x < width && y < height {
				entries[y*width+x] = e
			} else if e.image != nil {
				c.dispose(e.image)
			}
		}
	}
	c.width, c.height, c.entries = width, height, entries
}

// Release disposes every cached image.
func (c *Cache) Release() {
	for i := range c.entries {
		if c.entries[i].image != nil {
			c.dispose(c.entries[i].image)
		}
		c.entries[i] = entry{}
	}
}

// Len returns the number of cells holding an image.
func (c *Cache) Len() int {
	count := 0
	for _, e := range c.entries {
		if e.image != nil {
			count++
		}
	}
	return count
}

func (c *Cache) dispose(img Image) {
	img.Dispose()
	c.metrics.disposed()
}
