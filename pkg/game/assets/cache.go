// Package assets holds the decoded sprite images the renderers draw from.
package assets

import (
	"image"
	"sync"
)

// Cache maps image keys such as "fx/splode/splode_3" to decoded images.
// It is safe for concurrent use: the loader fills it from worker goroutines
// while frames read from it.
type Cache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewCache creates an empty cache
func NewCache() *Cache {
	return &Cache{images: make(map[string]image.Image)}
}

// Put stores an image under key, replacing any previous one
func (c *Cache) Put(key string, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.images[key] = img
}

// Image returns the image stored under key
func (c *Cache) Image(key string) (image.Image, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	img, ok := c.images[key]
	return img, ok
}

// IsLoaded reports whether key holds an image with a non-empty size
func (c *Cache) IsLoaded(key string) bool {
	img, ok := c.Image(key)
	if !ok || img == nil {
		return false
	}
	b := img.Bounds()
	return b.Dx() > 0 && b.Dy() > 0
}

// Len returns the number of stored images
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}
