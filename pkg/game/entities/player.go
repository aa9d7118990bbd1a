package entities

import (
	"chress/pkg/engine/world"
	"chress/pkg/game/animation"
	gameworld "chress/pkg/game/world"
)

// Player defaults
const (
	DefaultHealth   = 3
	BowShotFrames   = 10
	PickupHoverTime = 24
)

// PickupHover floats a just-collected item above the player
type PickupHover struct {
	Item gameworld.TileType
	animation.Countdown
}

// Player is the protagonist
type Player struct {
	X, Y      int
	Health    int
	MaxHealth int
	Points    int
	Bombs     int
	Arrows    int
	HasHorse  bool

	FacingLeft bool
	// Aim is the direction of the last step attempt; the bow fires along it
	Aim world.Direction

	Motion  animation.Motion
	Effects animation.Effects
	BowShot animation.Countdown
	Pickup  PickupHover
}

// NewPlayer creates a player at (x, y)
func NewPlayer(x, y int) *Player {
	return &Player{X: x, Y: y, Health: DefaultHealth, MaxHealth: DefaultHealth}
}

// Position returns the player's cell
func (p *Player) Position() world.Point {
	return world.Point{X: p.X, Y: p.Y}
}

// IsDead reports whether the player has run out of health
func (p *Player) IsDead() bool {
	return p.Health <= 0
}

// MoveTo moves the player and starts a slide from the old cell
func (p *Player) MoveTo(x, y int) {
	if x != p.X {
		p.FacingLeft = x < p.X
	}
	p.Motion.StartLift(p.X, p.Y, x, y)
	p.X, p.Y = x, y
}

// Place moves the player without animating, used on zone entry
func (p *Player) Place(x, y int) {
	p.X, p.Y = x, y
	p.Motion.Lift = animation.Lift{}
}

// TakeDamage removes health and flashes the player
func (p *Player) TakeDamage(amount int) {
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	p.Motion.StartDamageFlash()
}

// Heal restores health up to the maximum
func (p *Player) Heal(amount int) {
	p.Health = min(p.Health+amount, p.MaxHealth)
}

// ShowPickup floats a collected item above the player
func (p *Player) ShowPickup(t gameworld.TileType) {
	p.Pickup = PickupHover{Item: t, Countdown: animation.NewCountdown(PickupHoverTime)}
}

// Tick advances the player's animations by one frame
func (p *Player) Tick() {
	p.Motion.Tick()
	p.Effects.Tick()
	p.BowShot.Tick()
	p.Pickup.Tick()
}
