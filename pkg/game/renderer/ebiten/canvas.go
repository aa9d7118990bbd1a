package ebiten

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/zyedidia/generic/cache"

	"chress/pkg/game/animation"
	"chress/pkg/game/renderer"
)

// Canvas draws onto an ebiten image. Decoded textures are uploaded once and
// kept in an LRU so the GPU copies of unused sprites can be dropped.
type Canvas struct {
	target *ebiten.Image
	fonts  *fontCache
	images *cache.Cache[image.Image, *ebiten.Image]
}

var _ renderer.Canvas = (*Canvas)(nil)

// NewCanvas creates a canvas using source for text
func NewCanvas(source *text.GoTextFaceSource) *Canvas {
	return &Canvas{
		fonts:  newFontCache(source),
		images: cache.New[image.Image, *ebiten.Image](imageCacheSize),
	}
}

// SetTarget points the canvas at the image to draw on this frame
func (c *Canvas) SetTarget(img *ebiten.Image) {
	c.target = img
}

// Size returns the target size in pixels
func (c *Canvas) Size() (int, int) {
	b := c.target.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the target with a solid color
func (c *Canvas) Clear(col color.Color) {
	c.target.Fill(col)
}

// FillRect fills a rectangle
func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	vector.DrawFilledRect(c.target, float32(x), float32(y), float32(w), float32(h), col, false)
}

// FillCircle fills a circle
func (c *Canvas) FillCircle(cx, cy, r float64, col color.Color) {
	vector.DrawFilledCircle(c.target, float32(cx), float32(cy), float32(r), col, true)
}

// StrokeCircle outlines a circle
func (c *Canvas) StrokeCircle(cx, cy, r, width float64, col color.Color) {
	vector.StrokeCircle(c.target, float32(cx), float32(cy), float32(r), float32(width), col, true)
}

// upload returns the GPU copy of img
func (c *Canvas) upload(img image.Image) *ebiten.Image {
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	if e, ok := c.images.Get(img); ok {
		return e
	}
	e := ebiten.NewImageFromImage(img)
	c.images.Put(img, e)
	return e
}

// DrawImage draws the src region of img scaled into op's rectangle with
// nearest-neighbour sampling
func (c *Canvas) DrawImage(img image.Image, src image.Rectangle, op renderer.DrawOp) {
	sw, sh := src.Dx(), src.Dy()
	if sw <= 0 || sh <= 0 || op.W <= 0 || op.H <= 0 {
		return
	}
	e := c.upload(img)
	if src != e.Bounds() {
		e = e.SubImage(src).(*ebiten.Image)
	}

	var geo ebiten.GeoM
	geo.Scale(op.W/float64(sw), op.H/float64(sh))
	if op.FlipX {
		geo.Scale(-1, 1)
		geo.Translate(op.W, 0)
	}
	if op.Rotation != 0 {
		geo.Translate(-op.W/2, -op.H/2)
		geo.Rotate(op.Rotation)
		geo.Translate(op.W/2, op.H/2)
	}
	geo.Translate(op.X, op.Y)

	if op.Filter == animation.FilterNone {
		opts := &ebiten.DrawImageOptions{GeoM: geo, Filter: ebiten.FilterNearest}
		opts.ColorScale.ScaleAlpha(float32(op.Alpha))
		c.target.DrawImage(e, opts)
		return
	}

	var cm colorm.ColorM
	switch op.Filter {
	case animation.FilterGrayscale:
		cm.ChangeHSV(0, 0, 1)
	case animation.FilterFlash:
		// keep the silhouette, paint it white
		cm.Scale(0, 0, 0, 1)
		cm.Translate(1, 1, 1, 0)
	}
	cm.Scale(1, 1, 1, op.Alpha)
	colorm.DrawImage(c.target, e, cm, &colorm.DrawImageOptions{GeoM: geo, Filter: ebiten.FilterNearest})
}

// DrawText draws s centred on (cx, cy)
func (c *Canvas) DrawText(s string, cx, cy, size float64, col color.Color) {
	if s == "" || size <= 0 {
		return
	}
	face := c.fonts.face(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(col)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(c.target, s, face, op)
}

// Prepare returns img scaled to w×h on an offscreen image
func (c *Canvas) Prepare(img image.Image, w, h int) image.Image {
	src := c.upload(img)
	b := src.Bounds()
	out := ebiten.NewImage(w, h)
	opts := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	opts.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	out.DrawImage(src, opts)
	return out
}

// FillPattern repeats pattern over the target, shifted by the offsets
func (c *Canvas) FillPattern(pattern image.Image, offX, offY, alpha float64) {
	p := c.upload(pattern)
	pw, ph := float64(p.Bounds().Dx()), float64(p.Bounds().Dy())
	if pw <= 0 || ph <= 0 {
		return
	}
	w, h := c.Size()
	startX := math.Mod(offX, pw) - pw
	startY := math.Mod(offY, ph) - ph
	for y := startY; y < float64(h); y += ph {
		for x := startX; x < float64(w); x += pw {
			opts := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
			opts.GeoM.Translate(x, y)
			opts.ColorScale.ScaleAlpha(float32(alpha))
			c.target.DrawImage(p, opts)
		}
	}
}
