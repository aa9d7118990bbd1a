package gameplay

import (
	"errors"
	"fmt"

	"github.com/leonelquinteros/gotext"

	engineinput "chress/pkg/engine/input"
	"chress/pkg/engine/world"
	"chress/pkg/game/devtools"
	"chress/pkg/game/state"
)

// ErrQuit is returned by ProcessIntent when the player asks to quit
var ErrQuit = errors.New("quit")

// ProcessIntent handles a high-level input intent from the tiered input system.
func ProcessIntent(g *state.Game, intent engineinput.Intent) error {
	if dir, ok := intent.Action.Direction(); ok {
		MovePlayer(g, dir)
		return nil
	}

	switch intent.Action {
	case engineinput.ActionQuit:
		return ErrQuit
	case engineinput.ActionWait:
		Wait(g)
	case engineinput.ActionBomb:
		ToggleBombPlacement(g)
	case engineinput.ActionShoot:
		Shoot(g)
	case engineinput.ActionConfirm:
		ConfirmCharge(g)
	case engineinput.ActionCancel:
		CancelCharge(g)
		g.Transient.ExitBombPlacement()
	case engineinput.ActionSelect:
		Select(g, intent.Target)
	case engineinput.ActionDebugZoneDump:
		path, err := devtools.DumpZoneToFile(g)
		if err != nil {
			logMessage(g, fmt.Sprintf("Zone dump failed: %v", err))
		} else {
			logMessage(g, fmt.Sprintf("Zone dumped to %s", path))
		}
	}
	return nil
}

// Select handles a tap on a tile: a bomb cell places a bomb, the pending
// charge's destination confirms it, a knight-move cell requests a charge
// and an adjacent cell steps towards it.
func Select(g *state.Game, at world.Point) bool {
	if g.Transient.IsBombPlacementMode() {
		if PlaceBomb(g, at.X, at.Y) {
			return true
		}
		g.Transient.ExitBombPlacement()
		return false
	}

	if c, ok := g.Transient.PendingCharge(); ok {
		if c.To == at {
			return ConfirmCharge(g)
		}
		CancelCharge(g)
	}

	if RequestCharge(g, at) {
		logMessage(g, gotext.Get("CHARGE_CONFIRM"))
		return true
	}

	p := g.Player.Position()
	for _, d := range world.Orthogonal() {
		if p.Step(d) == at {
			return MovePlayer(g, d)
		}
	}
	return false
}
