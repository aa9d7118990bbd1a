package state

import "chress/pkg/engine/world"

// Charge is a horse charge waiting for confirmation
type Charge struct {
	From   world.Point
	To     world.Point
	Target int // id of the enemy at the destination, 0 if none
}

// TransientState is short-lived interaction state that is never persisted
type TransientState struct {
	bombMode      bool
	bombPositions []world.Point
	pendingCharge *Charge
}

// IsBombPlacementMode reports whether the player is choosing a bomb cell
func (t *TransientState) IsBombPlacementMode() bool {
	return t.bombMode
}

// BombPlacementPositions returns the cells a bomb may be placed on
func (t *TransientState) BombPlacementPositions() []world.Point {
	return t.bombPositions
}

// EnterBombPlacement starts bomb placement over the given cells
func (t *TransientState) EnterBombPlacement(positions []world.Point) {
	t.bombMode = true
	t.bombPositions = positions
}

// ExitBombPlacement leaves bomb placement mode
func (t *TransientState) ExitBombPlacement() {
	t.bombMode = false
	t.bombPositions = nil
}

// CanPlaceBombAt reports whether (x, y) is an offered bomb cell
func (t *TransientState) CanPlaceBombAt(x, y int) bool {
	if !t.bombMode {
		return false
	}
	for _, p := range t.bombPositions {
		if p.X == x && p.Y == y {
			return true
		}
	}
	return false
}

// PendingCharge returns the charge awaiting confirmation
func (t *TransientState) PendingCharge() (Charge, bool) {
	if t.pendingCharge == nil {
		return Charge{}, false
	}
	return *t.pendingCharge, true
}

// SetPendingCharge records a charge awaiting confirmation
func (t *TransientState) SetPendingCharge(c Charge) {
	t.pendingCharge = &c
}

// ClearPendingCharge drops the pending charge
func (t *TransientState) ClearPendingCharge() {
	t.pendingCharge = nil
}

// Reset drops all transient state
func (t *TransientState) Reset() {
	t.ExitBombPlacement()
	t.ClearPendingCharge()
}
