package renderer

import (
	"image"
	"math"
)

// Fog tuning
const (
	fogKey = "fx/fog"
	// fogScale is how many cells one repeat of the fog texture spans
	fogScale  = 4
	fogDriftX = 0.35 // pixels per frame
	fogDriftY = 0.12
)

// FogRenderer scrolls a tiled fog texture across the canvas. The scaled
// pattern is prepared once and reused across zones; only the drift resets
// when the zone changes.
type FogRenderer struct {
	tex      Textures
	tileSize float64

	zoneKey    string
	offX, offY float64

	source      image.Image
	pattern     image.Image
	patternSize int
}

// NewFogRenderer creates a fog renderer
func NewFogRenderer(tex Textures, tileSize float64) *FogRenderer {
	return &FogRenderer{tex: tex, tileSize: tileSize}
}

// SetTileSize changes the cell edge; the pattern is rebuilt on next use
func (f *FogRenderer) SetTileSize(ts float64) {
	f.tileSize = ts
}

// Offset returns the current drift
func (f *FogRenderer) Offset() (x, y float64) {
	return f.offX, f.offY
}

// Render draws the fog for the zone. Entering a different zone restarts
// the drift from zero. Until the texture loads a flat translucent wash is
// drawn instead.
func (f *FogRenderer) Render(c Canvas, zoneKey string) {
	if zoneKey != f.zoneKey {
		f.zoneKey = zoneKey
		f.offX, f.offY = 0, 0
	}

	w, h := c.Size()
	src, ok := f.tex.Image(fogKey)
	if !ok || !f.tex.IsLoaded(fogKey) {
		c.FillRect(0, 0, float64(w), float64(h), fade(colorFog, fogFallback))
		return
	}

	size := int(f.tileSize * fogScale)
	if size <= 0 {
		return
	}
	if f.pattern == nil || src != f.source || size != f.patternSize {
		f.pattern = c.Prepare(src, size, size)
		f.source = src
		f.patternSize = size
	}

	f.offX = math.Mod(f.offX+fogDriftX, float64(size))
	f.offY = math.Mod(f.offY+fogDriftY, float64(size))
	c.FillPattern(f.pattern, f.offX, f.offY, fogAlpha)
}
