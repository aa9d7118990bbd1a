package animation

// Frame budgets for each effect family
const (
	ArrowFrames           = 12
	HorseChargeFrames     = 20
	PointPopupFrames      = 30
	MultiplierPopupFrames = 45
	LiftFrames            = 8
	BumpFrames            = 6
	BackflipFrames        = 20
	DamageFlashFrames     = 12
)

// Splode is an explosion centred on a tile
type Splode struct {
	X, Y int
	Countdown
}

// NewSplode starts an explosion at (x, y)
func NewSplode(x, y int) Splode {
	return Splode{X: x, Y: y, Countdown: NewCountdown(SplodeSequence.Total)}
}

// Key returns the current explosion sprite
func (s Splode) Key() string {
	return SplodeSequence.Key(s.Remaining)
}

// Smoke is a puff left behind by a defeated enemy or a spent bomb
type Smoke struct {
	X, Y int
	Countdown
}

// NewSmoke starts a smoke puff at (x, y)
func NewSmoke(x, y int) Smoke {
	return Smoke{X: x, Y: y, Countdown: NewCountdown(SmokeSequence.Total)}
}

// Key returns the current smoke sprite
func (s Smoke) Key() string {
	return SmokeSequence.Key(s.Remaining)
}

// Arrow is a projectile flying between two tiles
type Arrow struct {
	FromX, FromY int
	ToX, ToY     int
	Countdown
}

// NewArrow starts an arrow flight
func NewArrow(fromX, fromY, toX, toY int) Arrow {
	return Arrow{FromX: fromX, FromY: fromY, ToX: toX, ToY: toY, Countdown: NewCountdown(ArrowFrames)}
}

// Position returns the arrow's current position in fractional tiles
func (a Arrow) Position() (x, y float64) {
	return lerp(a.FromX, a.ToX, a.Progress()), lerp(a.FromY, a.ToY, a.Progress())
}

// HorseCharge is the trail left by a charging player
type HorseCharge struct {
	FromX, FromY int
	ToX, ToY     int
	Countdown
}

// NewHorseCharge starts a charge trail
func NewHorseCharge(fromX, fromY, toX, toY int) HorseCharge {
	return HorseCharge{FromX: fromX, FromY: fromY, ToX: toX, ToY: toY, Countdown: NewCountdown(HorseChargeFrames)}
}

// PointPopup is a floating score number
type PointPopup struct {
	X, Y   int
	Amount int
	Countdown
}

// NewPointPopup starts a score popup over (x, y)
func NewPointPopup(x, y, amount int) PointPopup {
	return PointPopup{X: x, Y: y, Amount: amount, Countdown: NewCountdown(PointPopupFrames)}
}

// MultiplierPopup is a floating combo multiplier
type MultiplierPopup struct {
	X, Y       int
	Multiplier int
	Countdown
}

// NewMultiplierPopup starts a multiplier popup over (x, y)
func NewMultiplierPopup(x, y, multiplier int) MultiplierPopup {
	return MultiplierPopup{X: x, Y: y, Multiplier: multiplier, Countdown: NewCountdown(MultiplierPopupFrames)}
}

// Lift slides an entity from its previous cell to its current one
type Lift struct {
	FromX, FromY int
	ToX, ToY     int
	Countdown
}

// Bump nudges an entity towards a cell it could not enter
type Bump struct {
	DX, DY int
	Countdown
}

// Backflip spins an entity once
type Backflip struct {
	Countdown
}

// DamageFlash blinks an entity after it is hurt
type DamageFlash struct {
	Countdown
}

// Effects is the set of transient effects an entity owns
type Effects struct {
	Splodes     []Splode
	Smokes      []Smoke
	Arrows      []Arrow
	Charges     []HorseCharge
	Points      []PointPopup
	Multipliers []MultiplierPopup
}

// Tick decays every effect by one frame and drops the finished ones
func (e *Effects) Tick() {
	e.Splodes = tickAll(e.Splodes, func(s *Splode) *Countdown { return &s.Countdown })
	e.Smokes = tickAll(e.Smokes, func(s *Smoke) *Countdown { return &s.Countdown })
	e.Arrows = tickAll(e.Arrows, func(a *Arrow) *Countdown { return &a.Countdown })
	e.Charges = tickAll(e.Charges, func(c *HorseCharge) *Countdown { return &c.Countdown })
	e.Points = tickAll(e.Points, func(p *PointPopup) *Countdown { return &p.Countdown })
	e.Multipliers = tickAll(e.Multipliers, func(m *MultiplierPopup) *Countdown { return &m.Countdown })
}

// Active reports whether any effect is still playing
func (e *Effects) Active() bool {
	return len(e.Splodes)+len(e.Smokes)+len(e.Arrows)+len(e.Charges)+len(e.Points)+len(e.Multipliers) > 0
}

func tickAll[T any](items []T, countdown func(*T) *Countdown) []T {
	kept := items[:0]
	for i := range items {
		if countdown(&items[i]).Tick() {
			kept = append(kept, items[i])
		}
	}
	return kept
}

func lerp(from, to int, t float64) float64 {
	return float64(from) + float64(to-from)*t
}
