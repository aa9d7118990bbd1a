package entities

import (
	"chress/pkg/engine/world"
	"chress/pkg/game/animation"
)

// Enemy is a hostile piece in the current zone
type Enemy struct {
	ID     int
	Kind   Kind
	X, Y   int
	Health int

	FacingLeft bool
	// FrozenTurns counts the enemy turns it still skips
	FrozenTurns int

	Motion  animation.Motion
	Effects animation.Effects
}

// NewEnemy creates an enemy of the given kind at (x, y)
func NewEnemy(kind Kind, x, y int) *Enemy {
	return &Enemy{Kind: kind, X: x, Y: y, Health: kind.Info().Health}
}

// Position returns the enemy's cell
func (e *Enemy) Position() world.Point {
	return world.Point{X: e.X, Y: e.Y}
}

// IsAlive reports whether the enemy still has health
func (e *Enemy) IsAlive() bool {
	return e.Health > 0
}

// IsFrozen reports whether the enemy skips its turns
func (e *Enemy) IsFrozen() bool {
	return e.FrozenTurns > 0
}

// Freeze makes the enemy skip the given number of turns
func (e *Enemy) Freeze(turns int) {
	e.FrozenTurns = turns
	e.Motion.Frozen = turns > 0
}

// Thaw consumes one frozen turn
func (e *Enemy) Thaw() {
	if e.FrozenTurns > 0 {
		e.FrozenTurns--
	}
	e.Motion.Frozen = e.FrozenTurns > 0
}

// MoveTo moves the enemy and starts its slide from the old cell
func (e *Enemy) MoveTo(x, y int) {
	if x != e.X {
		e.FacingLeft = x < e.X
	}
	e.Motion.StartLift(e.X, e.Y, x, y)
	e.X, e.Y = x, y
}

// TakeDamage removes health and flashes the enemy
func (e *Enemy) TakeDamage(amount int) {
	e.Health -= amount
	e.Motion.StartDamageFlash()
}

// Tick advances the enemy's animations by one frame
func (e *Enemy) Tick() {
	e.Motion.Tick()
	e.Effects.Tick()
}
