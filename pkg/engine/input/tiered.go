package input

import (
	"sort"
	"time"

	"chress/pkg/engine/world"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DevicePointer
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Turn actions
	ActionWait
	ActionBomb    // Toggle bomb placement
	ActionShoot   // Fire the bow along the aim direction
	ActionConfirm // Confirm a pending charge
	ActionCancel  // Cancel placement or a pending charge
	ActionSelect  // Tap on a tile; Intent.Target holds the cell

	// Meta / UI
	ActionQuit
	ActionZoomIn
	ActionZoomOut
	ActionZoomReset

	// Developer
	ActionDebugZoneDump
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
	Target world.Point
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "arrow_up", "b", "enter").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Ebiten's just-pressed edge and terminal raw mode already debounce, so this
// stays a distinct type mainly to keep the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, WASD, Vim)
	"arrow_up":    ActionMoveNorth,
	"w":           ActionMoveNorth,
	"k":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"s":           ActionMoveSouth,
	"j":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"a":           ActionMoveWest,
	"h":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"d":           ActionMoveEast,
	"l":           ActionMoveEast,

	// Turn actions
	"space":  ActionWait,
	".":      ActionWait,
	"b":      ActionBomb,
	"f":      ActionShoot,
	"enter":  ActionConfirm,
	"y":      ActionConfirm,
	"escape": ActionCancel,
	"n":      ActionCancel,

	// Quit
	"q": ActionQuit,

	// Zoom (fixed bindings)
	"=":               ActionZoomIn,
	"+":               ActionZoomIn,
	"numpad_add":      ActionZoomIn,
	"-":               ActionZoomOut,
	"numpad_subtract": ActionZoomOut,
	"0":               ActionZoomReset,

	// Developer
	"m": ActionDebugZoneDump,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// SelectIntent builds the intent for a tap on a tile.
func SelectIntent(x, y int) Intent {
	return Intent{Action: ActionSelect, Target: world.Point{X: x, Y: y}}
}

// Direction returns the movement direction of a move action.
func (a Action) Direction() (world.Direction, bool) {
	switch a {
	case ActionMoveNorth:
		return world.North, true
	case ActionMoveSouth:
		return world.South, true
	case ActionMoveWest:
		return world.West, true
	case ActionMoveEast:
		return world.East, true
	default:
		return world.North, false
	}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionWait:
		return "Wait"
	case ActionBomb:
		return "Bomb"
	case ActionShoot:
		return "Shoot"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionSelect:
		return "Select"
	case ActionQuit:
		return "Quit"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	case ActionZoomReset:
		return "Zoom Reset"
	case ActionDebugZoneDump:
		return "Dump Zone"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
