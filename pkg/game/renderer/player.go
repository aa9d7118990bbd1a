package renderer

import (
	"math"

	"chress/pkg/engine/world"
	"chress/pkg/game/animation"
	"chress/pkg/game/entities"
	"chress/pkg/game/state"
	gameworld "chress/pkg/game/world"
	"chress/pkg/game/zone"
)

// renderPlayer draws the player and everything attached to them: the bow
// while a shot is in flight, the item just picked up, the way-out arrow on
// a gate and the player's own smoke
func (m *Manager) renderPlayer(c Canvas, g *state.Game) {
	p := g.Player
	ts := m.tileSize
	v := animation.Describe(p.Motion, animation.Subject{TileSize: ts, FacingLeft: p.FacingLeft})
	px, py := float64(p.X)*ts, float64(p.Y)*ts
	op := m.visualOp(px, py, v)

	drawn := p.HasHorse && drawKey(c, m.tex, "player_horse", op)
	if !drawn && !drawKey(c, m.tex, "player", op) {
		cx, cy := px+ts/2+v.OffsetX, py+ts/2+v.OffsetY
		c.FillCircle(cx, cy, ts*0.38*v.Scale, fade(colorPlayer, v.Alpha))
		c.DrawText("@", cx, cy, ts*0.5*v.Scale, colorGlyph)
	}

	if p.BowShot.Active() {
		m.renderBow(c, px+v.OffsetX, py+v.OffsetY, p.Aim)
	}
	if p.Pickup.Active() {
		m.renderPickup(c, px, py, p.Pickup)
	}
	m.renderExitIndicator(c, g)
	m.renderSmokes(c, p.Effects.Smokes)
}

// renderBow holds the bow out on the side the player is aiming
func (m *Manager) renderBow(c Canvas, px, py float64, aim world.Direction) {
	ts := m.tileSize
	dx, dy := aim.Delta()
	size := ts * 0.6
	x := px + (ts-size)/2 + float64(dx)*ts*0.4
	y := py + (ts-size)/2 + float64(dy)*ts*0.4

	op := opaque(x, y, size, size)
	op.Rotation = float64(aim) * math.Pi / 4
	if !drawKey(c, m.tex, "items/bow", op) {
		c.DrawText(")", x+size/2, y+size/2, size, colorGlyph)
	}
}

// renderPickup floats the collected item up and out above the player
func (m *Manager) renderPickup(c Canvas, px, py float64, h entities.PickupHover) {
	ts := m.tileSize
	p := h.Progress()
	size := ts * 0.5
	x := px + (ts-size)/2
	y := py - size*0.6 - p*ts*0.4

	op := DrawOp{X: x, Y: y, W: size, H: size, Alpha: 1 - p}
	for _, key := range itemKeys(gameworld.T(h.Item)) {
		if drawKey(c, m.tex, key, op) {
			return
		}
	}
	c.DrawText(tileGlyphs[h.Item], x+size/2, y+size/2, size, fade(colorGlyph, 1-p))
}

// renderExitIndicator points off the grid when the player stands on a
// surface gate
func (m *Manager) renderExitIndicator(c Canvas, g *state.Game) {
	if g.Zone.Dimension != zone.Surface {
		return
	}
	p := g.Player
	if t, ok := gameworld.TypeAt(g.Grid, p.X, p.Y); !ok || t != gameworld.Exit {
		return
	}
	dir, ok := exitDirection(p.X, p.Y, g.Grid)
	if !ok {
		return
	}

	ts := m.tileSize
	dx, dy := dir.Delta()
	cx, cy := m.cellCentre(float64(p.X)+float64(dx)*0.35, float64(p.Y)+float64(dy)*0.35)
	alpha := 0.5 + 0.5*m.pulse(800)
	size := ts * 0.4

	op := DrawOp{X: cx - size/2, Y: cy - size/2, W: size, H: size, Alpha: alpha}
	op.Rotation = float64(dir) * math.Pi / 4
	if !drawKey(c, m.tex, "ui/exit_arrow", op) {
		c.DrawText(exitGlyphs[dir], cx, cy, size, fade(colorGlyph, alpha))
	}
}

var exitGlyphs = map[world.Direction]string{
	world.North: "▲",
	world.East:  "▶",
	world.South: "▼",
	world.West:  "◀",
}

// exitDirection returns which edge a perimeter cell leaves through
func exitDirection(x, y int, grid *gameworld.Grid) (world.Direction, bool) {
	switch {
	case y == 0:
		return world.North, true
	case y == grid.Rows()-1:
		return world.South, true
	case x == 0:
		return world.West, true
	case x == grid.Cols()-1:
		return world.East, true
	}
	return 0, false
}
