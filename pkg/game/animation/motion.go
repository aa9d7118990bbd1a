package animation

// Phase is the attack stage of an entity
type Phase int

// Attack phases. An attack always runs Idle → WindUp → Peak → Idle.
const (
	Idle Phase = iota
	WindUp
	Peak
)

// Attack phase budgets in frames
const (
	WindUpFrames = 10
	PeakFrames   = 8
)

func (p Phase) String() string {
	switch p {
	case WindUp:
		return "windup"
	case Peak:
		return "peak"
	default:
		return "idle"
	}
}

// Motion is the per-entity animation state. The attack phase is an explicit
// state with a single remaining counter; sliding, bumping, spinning and
// flashing are independent overlays, and Frozen is a status flag.
type Motion struct {
	Phase     Phase
	Remaining int

	Lift     Lift
	Bump     Bump
	Backflip Backflip
	Flash    DamageFlash

	Frozen bool
}

// StartAttack begins the wind-up of an attack
func (m *Motion) StartAttack() {
	m.Phase = WindUp
	m.Remaining = WindUpFrames
}

// StartLift slides the entity from (fromX, fromY) to (toX, toY)
func (m *Motion) StartLift(fromX, fromY, toX, toY int) {
	m.Lift = Lift{FromX: fromX, FromY: fromY, ToX: toX, ToY: toY, Countdown: NewCountdown(LiftFrames)}
}

// StartBump nudges the entity towards (dx, dy)
func (m *Motion) StartBump(dx, dy int) {
	m.Bump = Bump{DX: dx, DY: dy, Countdown: NewCountdown(BumpFrames)}
}

// StartBackflip spins the entity once
func (m *Motion) StartBackflip() {
	m.Backflip = Backflip{Countdown: NewCountdown(BackflipFrames)}
}

// StartDamageFlash blinks the entity
func (m *Motion) StartDamageFlash() {
	m.Flash = DamageFlash{Countdown: NewCountdown(DamageFlashFrames)}
}

// Sliding reports whether the entity is between cells
func (m Motion) Sliding() bool {
	return m.Lift.Active()
}

// Animating reports whether any attack phase or overlay is playing
func (m Motion) Animating() bool {
	return m.Phase != Idle || m.Lift.Active() || m.Bump.Active() || m.Backflip.Active() || m.Flash.Active()
}

// Tick advances the attack phase and decays every overlay by one frame
func (m *Motion) Tick() {
	switch m.Phase {
	case WindUp:
		m.Remaining--
		if m.Remaining <= 0 {
			m.Phase = Peak
			m.Remaining = PeakFrames
		}
	case Peak:
		m.Remaining--
		if m.Remaining <= 0 {
			m.Phase = Idle
			m.Remaining = 0
		}
	}

	m.Lift.Tick()
	m.Bump.Tick()
	m.Backflip.Tick()
	m.Flash.Tick()
}
