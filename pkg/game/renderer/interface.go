// Package renderer draws a Chress frame onto an abstract canvas. Every
// renderer here is a pure reader of game and animation state; backends
// supply the Canvas and the texture store.
package renderer

import (
	"image"
	"image/color"

	"chress/pkg/game/animation"
	"chress/pkg/game/state"
)

// DrawOp places an image on the canvas. The destination rectangle is in
// pixels; Rotation is in radians around its centre.
type DrawOp struct {
	X, Y, W, H float64
	Rotation   float64
	FlipX      bool
	Alpha      float64
	Filter     animation.Filter
}

// Canvas is the 2D drawing surface a frame is drawn onto. Implementations
// must scale images with nearest-neighbour filtering.
type Canvas interface {
	Size() (w, h int)
	Clear(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeCircle(cx, cy, r, width float64, c color.Color)
	// DrawImage draws the src region of img into op's rectangle
	DrawImage(img image.Image, src image.Rectangle, op DrawOp)
	// DrawText draws s centred on (cx, cy)
	DrawText(s string, cx, cy, size float64, c color.Color)
	// Prepare returns img scaled to w×h, ready to be used as a fill pattern
	Prepare(img image.Image, w, h int) image.Image
	// FillPattern tiles pattern over the whole canvas shifted by the offsets
	FillPattern(pattern image.Image, offX, offY, alpha float64)
}

// Textures is the read-only image store the renderers draw from
type Textures interface {
	Image(key string) (image.Image, bool)
	IsLoaded(key string) bool
}

// Backend runs a game on some output device until the player quits
type Backend interface {
	Run(g *state.Game) error
}

// opaque returns an untransformed, fully opaque draw into the rectangle
func opaque(x, y, w, h float64) DrawOp {
	return DrawOp{X: x, Y: y, W: w, H: h, Alpha: 1}
}

// drawKey draws the whole image stored under key. It reports false, drawing
// nothing, when the image is not loaded yet.
func drawKey(c Canvas, tex Textures, key string, op DrawOp) bool {
	if !tex.IsLoaded(key) {
		return false
	}
	img, ok := tex.Image(key)
	if !ok {
		return false
	}
	c.DrawImage(img, img.Bounds(), op)
	return true
}

// fade returns c with its alpha multiplied by a
func fade(c color.RGBA, a float64) color.NRGBA {
	a = min(max(a, 0), 1)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A)*a + 0.5)}
}
