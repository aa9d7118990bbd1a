// Package canvastest provides a recording canvas and an in-memory texture
// store for testing renderers without a GPU.
package canvastest

import (
	"image"
	"image/color"

	"chress/pkg/game/renderer"
)

// Sprite is a blank image that remembers its name, so recorded draws can
// be matched back to texture keys
type Sprite struct {
	Name string
	W, H int
}

// ColorModel implements image.Image
func (s Sprite) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image
func (s Sprite) Bounds() image.Rectangle { return image.Rect(0, 0, s.W, s.H) }

// At implements image.Image
func (s Sprite) At(int, int) color.Color { return color.NRGBA{} }

// Textures is a map-backed texture store
type Textures struct {
	images map[string]image.Image
}

// NewTextures creates a store holding a 64×64 sprite for every key
func NewTextures(keys ...string) *Textures {
	t := &Textures{images: make(map[string]image.Image)}
	for _, k := range keys {
		t.PutSize(k, 64, 64)
	}
	return t
}

// Put stores an image
func (t *Textures) Put(key string, img image.Image) {
	t.images[key] = img
}

// PutSize stores a named sprite of the given size
func (t *Textures) PutSize(key string, w, h int) {
	t.images[key] = Sprite{Name: key, W: w, H: h}
}

// Image implements renderer.Textures
func (t *Textures) Image(key string) (image.Image, bool) {
	img, ok := t.images[key]
	return img, ok
}

// IsLoaded implements renderer.Textures
func (t *Textures) IsLoaded(key string) bool {
	img, ok := t.images[key]
	return ok && img.Bounds().Dx() > 0 && img.Bounds().Dy() > 0
}

// Kind names a recorded canvas call
type Kind string

// Recorded call kinds
const (
	Clear        Kind = "clear"
	FillRect     Kind = "fillrect"
	FillCircle   Kind = "fillcircle"
	StrokeCircle Kind = "strokecircle"
	Image        Kind = "image"
	Text         Kind = "text"
	Pattern      Kind = "pattern"
)

// Op is one recorded canvas call
type Op struct {
	Kind       Kind
	X, Y, W, H float64
	R          float64
	Color      color.NRGBA

	// Image draws
	Image string
	Src   image.Rectangle
	Draw  renderer.DrawOp

	Text  string
	Alpha float64
}

// Recorder is a Canvas that records every call
type Recorder struct {
	W, H int
	Ops  []Op
}

// NewRecorder creates a recorder of the given pixel size
func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

func nrgba(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func name(img image.Image) string {
	if s, ok := img.(Sprite); ok {
		return s.Name
	}
	return "?"
}

// Size implements renderer.Canvas
func (r *Recorder) Size() (int, int) { return r.W, r.H }

// Clear implements renderer.Canvas
func (r *Recorder) Clear(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: Clear, Color: nrgba(c)})
}

// FillRect implements renderer.Canvas
func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: FillRect, X: x, Y: y, W: w, H: h, Color: nrgba(c)})
}

// FillCircle implements renderer.Canvas
func (r *Recorder) FillCircle(cx, cy, rad float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: FillCircle, X: cx, Y: cy, R: rad, Color: nrgba(c)})
}

// StrokeCircle implements renderer.Canvas
func (r *Recorder) StrokeCircle(cx, cy, rad, width float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: StrokeCircle, X: cx, Y: cy, R: rad, W: width, Color: nrgba(c)})
}

// DrawImage implements renderer.Canvas
func (r *Recorder) DrawImage(img image.Image, src image.Rectangle, op renderer.DrawOp) {
	r.Ops = append(r.Ops, Op{
		Kind: Image, X: op.X, Y: op.Y, W: op.W, H: op.H,
		Image: name(img), Src: src, Draw: op, Alpha: op.Alpha,
	})
}

// DrawText implements renderer.Canvas
func (r *Recorder) DrawText(s string, cx, cy, size float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: Text, X: cx, Y: cy, H: size, Text: s, Color: nrgba(c)})
}

// Prepare implements renderer.Canvas
func (r *Recorder) Prepare(img image.Image, w, h int) image.Image {
	return Sprite{Name: "prepared:" + name(img), W: w, H: h}
}

// FillPattern implements renderer.Canvas
func (r *Recorder) FillPattern(pattern image.Image, offX, offY, alpha float64) {
	r.Ops = append(r.Ops, Op{Kind: Pattern, X: offX, Y: offY, Image: name(pattern), Alpha: alpha})
}

// Reset forgets every recorded call
func (r *Recorder) Reset() {
	r.Ops = nil
}

// Filter returns the recorded calls of one kind
func (r *Recorder) Filter(k Kind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == k {
			out = append(out, op)
		}
	}
	return out
}

// Images returns the names of the drawn images in order
func (r *Recorder) Images() []string {
	var out []string
	for _, op := range r.Filter(Image) {
		out = append(out, op.Image)
	}
	return out
}

// IndexOf returns the position of the first call matching pred, or -1
func (r *Recorder) IndexOf(pred func(Op) bool) int {
	for i, op := range r.Ops {
		if pred(op) {
			return i
		}
	}
	return -1
}

// DrewImage reports whether an image with the given name was drawn
func (r *Recorder) DrewImage(name string) bool {
	return r.IndexOf(func(op Op) bool { return op.Kind == Image && op.Image == name }) >= 0
}

// DrewText reports whether the text was drawn
func (r *Recorder) DrewText(s string) bool {
	return r.IndexOf(func(op Op) bool { return op.Kind == Text && op.Text == s }) >= 0
}

var (
	_ renderer.Canvas   = (*Recorder)(nil)
	_ renderer.Textures = (*Textures)(nil)
)
