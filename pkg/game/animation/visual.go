package animation

import "math"

// Filter is a colour treatment applied to a sprite
type Filter int

// Sprite filters
const (
	FilterNone Filter = iota
	FilterGrayscale
	FilterFlash
)

// Scales and factors used by Describe
const (
	WindUpScale = 1.3
	PeakScale   = 1.6
	FrozenAlpha = 0.6

	shakeFactor = 0.04
	liftHeight  = 0.25
	bumpReach   = 0.2
)

// Visual is how an entity is drawn this frame. Offsets are in pixels,
// Scale is relative to one tile, Rotation is in radians.
type Visual struct {
	Scale    float64
	OffsetX  float64
	OffsetY  float64
	Rotation float64
	FlipX    bool
	Filter   Filter
	Alpha    float64
	FastPath bool
}

// Subject carries the per-entity facts Describe needs besides its motion
type Subject struct {
	TileSize     float64
	PixelPerfect bool
	FacingLeft   bool
}

// Describe maps a motion state onto a draw description. The pixel-perfect
// fast path is only chosen when nothing would transform the sprite.
func Describe(m Motion, s Subject) Visual {
	v := Visual{Scale: 1, Alpha: 1, FlipX: s.FacingLeft}
	ts := s.TileSize

	switch m.Phase {
	case WindUp:
		v.Scale = WindUpScale
		v.OffsetX += shake(m.Remaining) * ts * shakeFactor
	case Peak:
		v.Scale = PeakScale
		v.Filter = FilterFlash
	}

	if m.Lift.Active() {
		frac := float64(m.Lift.Remaining) / float64(m.Lift.Total)
		v.OffsetX += float64(m.Lift.FromX-m.Lift.ToX) * frac * ts
		v.OffsetY += float64(m.Lift.FromY-m.Lift.ToY) * frac * ts
		v.OffsetY -= math.Sin(math.Pi*frac) * ts * liftHeight
	}

	if m.Bump.Active() {
		amt := math.Sin(math.Pi*m.Bump.Progress()) * ts * bumpReach
		v.OffsetX += float64(m.Bump.DX) * amt
		v.OffsetY += float64(m.Bump.DY) * amt
	}

	if m.Backflip.Active() {
		turn := -2 * math.Pi * m.Backflip.Progress()
		if s.FacingLeft {
			turn = -turn
		}
		v.Rotation = turn
	}

	if m.Flash.Active() && v.Filter == FilterNone && (m.Flash.Remaining/2)%2 == 0 {
		v.Filter = FilterFlash
	}

	if m.Frozen {
		v.Filter = FilterGrayscale
		v.Alpha = FrozenAlpha
	}

	v.FastPath = s.PixelPerfect && !m.Frozen && !m.Animating()
	return v
}

// shake alternates left and right every frame
func shake(remaining int) float64 {
	if remaining%2 == 0 {
		return 1
	}
	return -1
}
