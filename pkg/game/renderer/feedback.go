package renderer

import (
	"time"

	"chress/pkg/engine/world"
	"chress/pkg/game/entities"
	gameworld "chress/pkg/game/world"
)

// TapDuration is how long a tap ring stays on screen
const TapDuration = 200 * time.Millisecond

// Clock returns the current wall-clock time
type Clock func() time.Time

// Feedback is the selection marker shown where the player tapped or is
// holding. A hold marker lasts until cleared.
type Feedback struct {
	X, Y     int
	Start    time.Time
	Duration time.Duration
	Hold     bool
}

// FeedbackTracker owns the single active marker
type FeedbackTracker struct {
	now     Clock
	current *Feedback
}

// NewFeedbackTracker creates a tracker reading time from now; nil means
// time.Now
func NewFeedbackTracker(now Clock) *FeedbackTracker {
	if now == nil {
		now = time.Now
	}
	return &FeedbackTracker{now: now}
}

// ShowTap shows a ring at (x, y) that expires after d
func (f *FeedbackTracker) ShowTap(x, y int, d time.Duration) {
	f.current = &Feedback{X: x, Y: y, Start: f.now(), Duration: d}
}

// StartHold shows a ring at (x, y) until Clear is called
func (f *FeedbackTracker) StartHold(x, y int) {
	f.current = &Feedback{X: x, Y: y, Start: f.now(), Hold: true}
}

// Clear removes the marker
func (f *FeedbackTracker) Clear() {
	f.current = nil
}

// Active returns the live marker. An expired tap clears itself.
func (f *FeedbackTracker) Active() (Feedback, bool) {
	if f.current == nil {
		return Feedback{}, false
	}
	fb := *f.current
	if !fb.Hold && f.now().Sub(fb.Start) > fb.Duration {
		f.current = nil
		return Feedback{}, false
	}
	return fb, true
}

// Elapsed returns how long the marker has been up
func (f *FeedbackTracker) Elapsed(fb Feedback) time.Duration {
	return f.now().Sub(fb.Start)
}

// renderFeedback draws the marker ring and, while holding on an enemy, the
// cells that enemy threatens
func (m *Manager) renderFeedback(c Canvas, grid *gameworld.Grid, enemies *entities.EnemyCollection) {
	fb, ok := m.Feedback.Active()
	if !ok {
		return
	}
	ts := m.tileSize

	if fb.Hold {
		if e, ok := enemies.FindAt(fb.X, fb.Y); ok {
			m.renderAttackRange(c, e, grid)
		}
	}

	cx, cy := (float64(fb.X)+0.5)*ts, (float64(fb.Y)+0.5)*ts
	if fb.Hold {
		c.StrokeCircle(cx, cy, ts*0.45, ts*0.06, colorHold)
		return
	}
	// taps shrink and fade over their lifetime
	left := 1 - float64(m.Feedback.Elapsed(fb))/float64(fb.Duration)
	left = min(max(left, 0), 1)
	c.StrokeCircle(cx, cy, ts*(0.3+0.15*left), ts*0.05, fade(colorTap, left))
}

// renderAttackRange shades every cell the enemy could strike next turn
func (m *Manager) renderAttackRange(c Canvas, e *entities.Enemy, grid *gameworld.Grid) {
	ts := m.tileSize
	cells := entities.AttackRange(e, grid)
	// draw in row-major order so frames are stable
	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			if cells.Has(world.Point{X: x, Y: y}) {
				c.FillRect(float64(x)*ts, float64(y)*ts, ts, ts, fade(colorRange, rangeAlpha))
			}
		}
	}
}
