package renderer

import (
	"fmt"
	"math"

	"chress/pkg/game/animation"
)

// splodeSpan is how many cells across an explosion sprite covers
const splodeSpan = 3

// chargeTrailDots is how many dust puffs mark a horse charge
const chargeTrailDots = 6

func (m *Manager) renderExplosions(c Canvas, all []*animation.Effects) {
	ts := m.tileSize
	for _, fx := range all {
		for _, s := range fx.Splodes {
			if !s.Active() {
				continue
			}
			cx, cy := m.cellCentre(float64(s.X), float64(s.Y))
			size := ts * splodeSpan
			if drawKey(c, m.tex, s.Key(), opaque(cx-size/2, cy-size/2, size, size)) {
				continue
			}
			p := s.Progress()
			c.FillCircle(cx, cy, size/2*(0.4+0.6*p), fade(colorSplode, 1-p))
		}
	}
}

// renderCharges leaves a fading line of dust between the charge's ends
func (m *Manager) renderCharges(c Canvas, all []*animation.Effects) {
	ts := m.tileSize
	for _, fx := range all {
		for _, h := range fx.Charges {
			if !h.Active() {
				continue
			}
			left := float64(h.Remaining) / float64(h.Total)
			for i := 0; i < chargeTrailDots; i++ {
				t := float64(i) / float64(chargeTrailDots-1)
				x := float64(h.FromX) + float64(h.ToX-h.FromX)*t
				y := float64(h.FromY) + float64(h.ToY-h.FromY)*t
				cx, cy := m.cellCentre(x, y)
				// dust nearer the start has settled longer
				c.FillCircle(cx, cy, ts*(0.08+0.1*t), fade(colorCharge, left*(0.3+0.7*t)))
			}
		}
	}
}

func (m *Manager) renderArrows(c Canvas, all []*animation.Effects) {
	ts := m.tileSize
	for _, fx := range all {
		for _, a := range fx.Arrows {
			if !a.Active() {
				continue
			}
			x, y := a.Position()
			cx, cy := m.cellCentre(x, y)
			size := ts * 0.6
			op := opaque(cx-size/2, cy-size/2, size, size)
			// the sprite points up
			op.Rotation = math.Atan2(float64(a.ToY-a.FromY), float64(a.ToX-a.FromX)) + math.Pi/2
			if !drawKey(c, m.tex, "fx/arrow", op) {
				c.FillCircle(cx, cy, ts*0.08, colorArrow)
			}
		}
	}
}

// renderPointPopups floats each score up out of the cell it was won on
func (m *Manager) renderPointPopups(c Canvas, all []*animation.Effects) {
	ts := m.tileSize
	for _, fx := range all {
		for _, p := range fx.Points {
			if !p.Active() {
				continue
			}
			t := p.Progress()
			cx, cy := m.cellCentre(float64(p.X), float64(p.Y))
			c.DrawText(fmt.Sprintf("+%d", p.Amount), cx, cy-ts*0.2-t*ts*0.6, ts*0.35, fade(colorPoints, 1-t))
		}
	}
}

// renderMultiplierPopups swells each combo multiplier before it fades
func (m *Manager) renderMultiplierPopups(c Canvas, all []*animation.Effects) {
	ts := m.tileSize
	for _, fx := range all {
		for _, p := range fx.Multipliers {
			if !p.Active() {
				continue
			}
			t := p.Progress()
			cx, cy := m.cellCentre(float64(p.X), float64(p.Y))
			size := ts * 0.45 * (1 + 0.4*math.Sin(math.Pi*t))
			c.DrawText(fmt.Sprintf("x%d", p.Multiplier), cx, cy-ts*0.5-t*ts*0.3, size, fade(colorMultiplier, 1-t*t))
		}
	}
}
