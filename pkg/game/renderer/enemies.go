package renderer

import (
	"math"
	"strconv"

	"chress/pkg/game/animation"
	"chress/pkg/game/entities"
	"chress/pkg/game/state"
)

// renderEnemies draws every living enemy with its turn number, then the
// smoke of every enemy, including ones that just died
func (m *Manager) renderEnemies(c Canvas, g *state.Game) {
	order := TurnOrder(g)
	for _, e := range g.Enemies.All() {
		if e.IsAlive() {
			m.renderEnemy(c, e)
			if n, ok := order[e]; ok {
				m.renderTurnNumber(c, e, n)
			}
		}
		m.renderSmokes(c, e.Effects.Smokes)
	}
}

// TurnOrder numbers the living enemies. While the enemies act the number
// is the enemy's place in the live queue; during the player's turn it is
// the order they will be queued in, which follows the enemy list.
func TurnOrder(g *state.Game) map[*entities.Enemy]int {
	out := make(map[*entities.Enemy]int)
	if g.Turn.Phase == state.EnemyTurn {
		for _, e := range g.Enemies.Living() {
			if n, ok := g.Turn.QueuePosition(e); ok {
				out[e] = n
			}
		}
		return out
	}
	for i, e := range g.Enemies.Living() {
		out[e] = i + 1
	}
	return out
}

func (m *Manager) renderEnemy(c Canvas, e *entities.Enemy) {
	ts := m.tileSize
	v := animation.Describe(e.Motion, animation.Subject{
		TileSize:     ts,
		PixelPerfect: e.Kind.PixelPerfect(),
		FacingLeft:   e.FacingLeft,
	})
	px, py := float64(e.X)*ts, float64(e.Y)*ts
	key := e.Kind.SpriteKey()

	if v.FastPath {
		if m.blit(c, key, px, py, v.FlipX) {
			return
		}
	} else if drawKey(c, m.tex, key, m.visualOp(px, py, v)) {
		return
	}

	cx, cy := px+ts/2+v.OffsetX, py+ts/2+v.OffsetY
	c.FillCircle(cx, cy, ts*0.38*v.Scale, fade(enemyColors[e.Kind], v.Alpha))
	c.DrawText(e.Kind.Info().Glyph, cx, cy, ts*0.45*v.Scale, colorGlyph)
}

// blit draws a sprite at its native size on whole pixels, centred in the
// cell, so small sprites are never resampled
func (m *Manager) blit(c Canvas, key string, px, py float64, flip bool) bool {
	if !m.tex.IsLoaded(key) {
		return false
	}
	img, _ := m.tex.Image(key)
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if w > m.tileSize || h > m.tileSize {
		w, h = m.tileSize, m.tileSize
	}
	op := opaque(math.Floor(px+(m.tileSize-w)/2), math.Floor(py+(m.tileSize-h)/2), w, h)
	op.FlipX = flip
	c.DrawImage(img, b, op)
	return true
}

func (m *Manager) renderTurnNumber(c Canvas, e *entities.Enemy, n int) {
	ts := m.tileSize
	cx, cy := float64(e.X)*ts+ts*0.82, float64(e.Y)*ts+ts*0.18
	c.FillCircle(cx, cy, ts*0.15, fade(colorBlack, 0.6))
	c.DrawText(strconv.Itoa(n), cx, cy, ts*0.24, colorTurnOrder)
}

// renderSmokes draws smoke puffs, fading the fallback as they thin out
func (m *Manager) renderSmokes(c Canvas, smokes []animation.Smoke) {
	ts := m.tileSize
	for _, s := range smokes {
		if !s.Active() {
			continue
		}
		px, py := float64(s.X)*ts, float64(s.Y)*ts
		if drawKey(c, m.tex, s.Key(), opaque(px, py, ts, ts)) {
			continue
		}
		p := s.Progress()
		c.FillCircle(px+ts/2, py+ts/2, ts*(0.2+0.3*p), fade(colorSmoke, 1-p))
	}
}
