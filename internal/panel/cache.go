package panel

import (
	"image"
	"log/slog"
	"sync"
)

// Resolver resolves a panel name to a decoded image.
type Resolver interface {
	Resolve(name string) *image.NRGBA
}

// Cache is a concurrency-safe panel cache. Images are decoded once and
// scaled to the panel size on first use.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	index *Index
	w, h  int
}

// img is nil when the load failed, so a bad file is only tried once.
type cacheEntry struct {
	img *image.NRGBA
}

// NewCache creates a cache backed by index that fits every image to w×h.
func NewCache(index *Index, w, h int) *Cache {
	return &Cache{
		items: make(map[string]*cacheEntry),
		index: index,
		w:     w,
		h:     h,
	}
}

// Resolve loads and caches a panel by name. Returns nil if not found or
// not decodable.
func (c *Cache) Resolve(name string) *image.NRGBA {
	path, ok := c.index.ResolvePath(name)
	if !ok {
		return nil
	}

	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.img
	}
	c.mu.RUnlock()

	img, err := Load(path)
	if err != nil {
		slog.Warn("panel skipped", "path", path, "err", err)
	} else {
		img = Fit(img, c.w, c.h)
	}

	c.mu.Lock()
	if entry, exists := c.items[path]; exists {
		c.mu.Unlock()
		return entry.img
	}
	c.items[path] = &cacheEntry{img: img}
	c.mu.Unlock()

	return img
}
