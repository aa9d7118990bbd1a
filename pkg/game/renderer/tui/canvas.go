package tui

import (
	"image"
	"image/color"
	"strings"

	gcolor "github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"chress/pkg/game/renderer"
)

// CellWidth is how many terminal columns one grid cell spans. Two columns
// make a cell roughly square and fit wide emoji-style glyphs.
const CellWidth = 2

// cell is one character cell of the terminal frame
type cell struct {
	bg    color.NRGBA
	fg    color.NRGBA
	glyph string
	size  float64
}

// Canvas rasterises draw calls onto a grid of character cells, one per
// tile. Fills and images become background colours; text becomes glyphs.
type Canvas struct {
	cols, rows int
	tileSize   float64
	cells      []cell
}

var _ renderer.Canvas = (*Canvas)(nil)

// NewCanvas creates a canvas of cols×rows cells, each standing for a
// tileSize square of canvas pixels
func NewCanvas(cols, rows int, tileSize float64) *Canvas {
	return &Canvas{cols: cols, rows: rows, tileSize: tileSize, cells: make([]cell, cols*rows)}
}

func (c *Canvas) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return nil
	}
	return &c.cells[row*c.cols+col]
}

// cellOf returns the cell containing the canvas point
func (c *Canvas) cellOf(x, y float64) (int, int) {
	return int(x / c.tileSize), int(y / c.tileSize)
}

func toNRGBA(col color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(col).(color.NRGBA)
}

// blend composites src over dst, scaling src's alpha by a
func blend(dst, src color.NRGBA, a float64) color.NRGBA {
	a *= float64(src.A) / 255
	a = min(max(a, 0), 1)
	mix := func(d, s uint8) uint8 {
		return uint8(float64(d)*(1-a) + float64(s)*a + 0.5)
	}
	return color.NRGBA{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 255}
}

// Size returns the canvas size in pixels
func (c *Canvas) Size() (int, int) {
	return int(float64(c.cols) * c.tileSize), int(float64(c.rows) * c.tileSize)
}

// Clear resets every cell to a blank of the given colour
func (c *Canvas) Clear(col color.Color) {
	bg := toNRGBA(col)
	bg.A = 255
	for i := range c.cells {
		c.cells[i] = cell{bg: bg}
	}
}

// FillRect tints every cell whose centre lies inside the rectangle
func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	src := toNRGBA(col)
	for row := 0; row < c.rows; row++ {
		cy := (float64(row) + 0.5) * c.tileSize
		if cy < y || cy >= y+h {
			continue
		}
		for colIdx := 0; colIdx < c.cols; colIdx++ {
			cx := (float64(colIdx) + 0.5) * c.tileSize
			if cx < x || cx >= x+w {
				continue
			}
			cl := c.at(colIdx, row)
			cl.bg = blend(cl.bg, src, 1)
		}
	}
}

// FillCircle tints the cell under the circle's centre
func (c *Canvas) FillCircle(cx, cy, r float64, col color.Color) {
	if cl := c.at(c.cellOf(cx, cy)); cl != nil {
		cl.bg = blend(cl.bg, toNRGBA(col), 1)
	}
}

// StrokeCircle lightly tints the cell under the ring's centre
func (c *Canvas) StrokeCircle(cx, cy, r, width float64, col color.Color) {
	if cl := c.at(c.cellOf(cx, cy)); cl != nil {
		cl.bg = blend(cl.bg, toNRGBA(col), 0.5)
	}
}

// average samples up to 4×4 points of the region and returns their mean
func average(img image.Image, src image.Rectangle) color.NRGBA {
	const samples = 4
	var r, g, b, a, n float64
	for sy := 0; sy < samples; sy++ {
		for sx := 0; sx < samples; sx++ {
			x := src.Min.X + (2*sx+1)*src.Dx()/(2*samples)
			y := src.Min.Y + (2*sy+1)*src.Dy()/(2*samples)
			p := toNRGBA(img.At(x, y))
			w := float64(p.A) / 255
			r += float64(p.R) * w
			g += float64(p.G) * w
			b += float64(p.B) * w
			a += w
			n++
		}
	}
	if a == 0 {
		return color.NRGBA{}
	}
	return color.NRGBA{R: uint8(r / a), G: uint8(g / a), B: uint8(b / a), A: uint8(255 * a / n)}
}

// DrawImage tints the cell under the image's centre with the image's
// average colour
func (c *Canvas) DrawImage(img image.Image, src image.Rectangle, op renderer.DrawOp) {
	if src.Empty() {
		return
	}
	if cl := c.at(c.cellOf(op.X+op.W/2, op.Y+op.H/2)); cl != nil {
		cl.bg = blend(cl.bg, average(img, src), op.Alpha)
	}
}

// DrawText puts s, cut to the cell width, on the cell under (cx, cy).
// Much smaller text, like a turn badge, does not displace a glyph already
// on the cell.
func (c *Canvas) DrawText(s string, cx, cy, size float64, col color.Color) {
	cl := c.at(c.cellOf(cx, cy))
	fg := toNRGBA(col)
	if cl == nil || s == "" || fg.A == 0 {
		return
	}
	if cl.glyph != "" && size < cl.size*0.6 {
		return
	}
	cl.glyph = runewidth.Truncate(s, CellWidth, "")
	cl.fg = blend(cl.bg, fg, 1)
	cl.size = size
}

// Prepare returns img unchanged; cells have no pixels to scale into
func (c *Canvas) Prepare(img image.Image, w, h int) image.Image {
	return img
}

// FillPattern washes every cell with the pattern's average colour
func (c *Canvas) FillPattern(pattern image.Image, offX, offY, alpha float64) {
	avg := average(pattern, pattern.Bounds())
	for i := range c.cells {
		c.cells[i].bg = blend(c.cells[i].bg, avg, alpha)
	}
}

// Glyphs returns the frame as plain text, one line per row
func (c *Canvas) Glyphs() []string {
	lines := make([]string, c.rows)
	for row := range lines {
		var sb strings.Builder
		for col := 0; col < c.cols; col++ {
			sb.WriteString(runewidth.FillRight(c.at(col, row).glyph, CellWidth))
		}
		lines[row] = sb.String()
	}
	return lines
}

// String returns the frame with 24-bit colour escapes
func (c *Canvas) String() string {
	var sb strings.Builder
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			cl := c.at(col, row)
			style := gcolor.NewRGBStyle(
				gcolor.RGB(cl.fg.R, cl.fg.G, cl.fg.B),
				gcolor.RGB(cl.bg.R, cl.bg.G, cl.bg.B),
			)
			sb.WriteString(style.Sprint(runewidth.FillRight(cl.glyph, CellWidth)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
