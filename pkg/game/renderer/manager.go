package renderer

import (
	"math"

	"chress/pkg/game/animation"
	"chress/pkg/game/state"
)

// Manager draws whole frames. It owns the tap/hold marker and the fog;
// everything else it reads from the game.
type Manager struct {
	tex      Textures
	tileSize float64
	now      Clock

	Tiles    *TileRenderer
	Fog      *FogRenderer
	Feedback *FeedbackTracker
}

// NewManager creates a frame renderer. now may be nil for wall-clock time.
func NewManager(tex Textures, tileSize float64, now Clock) *Manager {
	fb := NewFeedbackTracker(now)
	return &Manager{
		tex:      tex,
		tileSize: tileSize,
		now:      fb.now,
		Tiles:    NewTileRenderer(tex, tileSize),
		Fog:      NewFogRenderer(tex, tileSize),
		Feedback: fb,
	}
}

// TileSize returns the cell edge in pixels
func (m *Manager) TileSize() float64 {
	return m.tileSize
}

// SetTileSize changes the cell edge for every sub-renderer
func (m *Manager) SetTileSize(ts float64) {
	m.tileSize = ts
	m.Tiles.SetTileSize(ts)
	m.Fog.SetTileSize(ts)
}

// CanvasSize returns the pixel size a grid of cols×rows needs
func (m *Manager) CanvasSize(cols, rows int) (w, h int) {
	return int(float64(cols) * m.tileSize), int(float64(rows) * m.tileSize)
}

// Render draws one frame. Later layers cover earlier ones, and the
// underground darkness and fog go last so they shade everything.
func (m *Manager) Render(c Canvas, g *state.Game) {
	level := g.Zone.Level()

	c.Clear(colorBackground)
	m.Tiles.RenderGrid(c, g.Grid, level)
	m.renderFeedback(c, g.Grid, g.Enemies)
	m.renderEnemies(c, g)
	m.renderPlayer(c, g)
	m.renderBombIndicator(c, g)

	effects := allEffects(g)
	m.renderExplosions(c, effects)
	m.renderCharges(c, effects)
	m.renderArrows(c, effects)
	m.renderPointPopups(c, effects)
	m.renderMultiplierPopups(c, effects)
	m.renderChargeConfirm(c, g)

	if g.Zone.IsUnderground() {
		w, h := c.Size()
		c.FillRect(0, 0, float64(w), float64(h), fade(colorDarkness, darknessAlpha))
		m.Fog.Render(c, g.Zone.Key())
	}
}

// allEffects gathers the effect sets of the player and every enemy
func allEffects(g *state.Game) []*animation.Effects {
	out := []*animation.Effects{&g.Player.Effects}
	for _, e := range g.Enemies.All() {
		out = append(out, &e.Effects)
	}
	return out
}

// visualOp turns a motion description into a draw centred on the cell at
// (px, py)
func (m *Manager) visualOp(px, py float64, v animation.Visual) DrawOp {
	ts := m.tileSize
	size := ts * v.Scale
	return DrawOp{
		X:        px + (ts-size)/2 + v.OffsetX,
		Y:        py + (ts-size)/2 + v.OffsetY,
		W:        size,
		H:        size,
		Rotation: v.Rotation,
		FlipX:    v.FlipX,
		Alpha:    v.Alpha,
		Filter:   v.Filter,
	}
}

// cellCentre returns the pixel centre of a cell given in fractional tiles
func (m *Manager) cellCentre(x, y float64) (float64, float64) {
	return (x + 0.5) * m.tileSize, (y + 0.5) * m.tileSize
}

// pulse oscillates between 0 and 1 once per period of wall-clock time
func (m *Manager) pulse(periodMillis int64) float64 {
	ms := m.now().UnixMilli() % periodMillis
	return (1 - math.Cos(2*math.Pi*float64(ms)/float64(periodMillis))) / 2
}
