// Package animation holds the frame-countdown effect records owned by the
// player and enemies, and the pure mapping from an entity's motion state to
// the transform and filter it is drawn with.
package animation

import "fmt"

// Countdown is a remaining-frame counter. It only ever decreases and the
// effect it drives is inactive once Remaining reaches zero.
type Countdown struct {
	Remaining int
	Total     int
}

// NewCountdown starts a countdown of total frames
func NewCountdown(total int) Countdown {
	if total < 0 {
		total = 0
	}
	return Countdown{Remaining: total, Total: total}
}

// Active reports whether the effect should still be drawn
func (c Countdown) Active() bool {
	return c.Remaining > 0
}

// Tick consumes one frame and reports whether the countdown is still active
func (c *Countdown) Tick() bool {
	if c.Remaining > 0 {
		c.Remaining--
	}
	return c.Remaining > 0
}

// Elapsed returns the number of frames already played
func (c Countdown) Elapsed() int {
	return c.Total - c.Remaining
}

// Progress returns the elapsed fraction in [0, 1]
func (c Countdown) Progress() float64 {
	if c.Total <= 0 {
		return 1
	}
	return float64(c.Total-c.Remaining) / float64(c.Total)
}

// FrameIndex maps a countdown onto a 1-based sprite frame:
// floor((total - remaining) / divisor) + 1.
func FrameIndex(total, remaining, divisor int) int {
	if divisor <= 0 {
		divisor = 1
	}
	return (total-remaining)/divisor + 1
}

// Sequence is a numbered sprite strip played over a longer countdown
type Sequence struct {
	Prefix  string
	Frames  int
	Total   int
	Divisor int
}

// Effect sprite sequences
var (
	SplodeSequence = Sequence{Prefix: "fx/splode/splode", Frames: 8, Total: 36, Divisor: 4}
	SmokeSequence  = Sequence{Prefix: "fx/smoke/smoke", Frames: 6, Total: 18, Divisor: 3}
)

// Frame returns the sprite frame for the remaining count, clamped to the
// frames the strip actually has. The last countdown frames of a strip whose
// total does not divide evenly hold the final sprite.
func (s Sequence) Frame(remaining int) int {
	f := FrameIndex(s.Total, remaining, s.Divisor)
	if f < 1 {
		return 1
	}
	if f > s.Frames {
		return s.Frames
	}
	return f
}

// Key returns the image key for the remaining count
func (s Sequence) Key(remaining int) string {
	return fmt.Sprintf("%s_%d", s.Prefix, s.Frame(remaining))
}
