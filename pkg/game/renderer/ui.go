package renderer

import (
	"github.com/leonelquinteros/gotext"

	"chress/pkg/game/state"
	gameworld "chress/pkg/game/world"
)

// renderBombIndicator flashes every cell a bomb may be placed on
func (m *Manager) renderBombIndicator(c Canvas, g *state.Game) {
	if !g.Transient.IsBombPlacementMode() {
		return
	}
	ts := m.tileSize
	p := m.pulse(600)
	for _, pt := range g.Transient.BombPlacementPositions() {
		px, py := float64(pt.X)*ts, float64(pt.Y)*ts
		c.FillRect(px, py, ts, ts, fade(colorBombCell, bombCellAlpha*(0.4+0.6*p)))
		op := DrawOp{X: px + ts*0.2, Y: py + ts*0.2, W: ts * 0.6, H: ts * 0.6, Alpha: 0.5}
		if !drawKey(c, m.tex, "items/bomb", op) {
			c.DrawText(tileGlyphs[gameworld.Bomb], px+ts/2, py+ts/2, ts*0.4, fade(colorGlyph, 0.5))
		}
	}
}

// renderChargeConfirm marks the destination of a charge waiting for a
// second tap
func (m *Manager) renderChargeConfirm(c Canvas, g *state.Game) {
	charge, ok := g.Transient.PendingCharge()
	if !ok {
		return
	}
	ts := m.tileSize
	p := m.pulse(700)
	cx, cy := m.cellCentre(float64(charge.To.X), float64(charge.To.Y))

	c.StrokeCircle(cx, cy, ts*(0.4+0.05*p), ts*0.06, fade(colorCharge, 0.6+0.4*p))
	op := DrawOp{X: cx - ts*0.3, Y: cy - ts*0.3, W: ts * 0.6, H: ts * 0.6, Alpha: 0.6}
	if !drawKey(c, m.tex, "items/horse", op) {
		c.DrawText(tileGlyphs[gameworld.Horse], cx, cy, ts*0.5, fade(colorGlyph, 0.6))
	}
	c.DrawText(gotext.Get("CHARGE_HINT"), cx, cy-ts*0.65, ts*0.22, colorCharge)
}
