package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	"chress/pkg/game/renderer"
	"chress/pkg/game/state"
)

// messageEntry is a log line with the time it first appeared
type messageEntry struct {
	Text      string
	Timestamp int64 // Unix milliseconds
}

// keyRepeatInfo tracks the repeat state for a held key
type keyRepeatInfo struct {
	firstPressed int64 // Unix milliseconds
	lastRepeat   int64
}

// pressState tracks a pointer press until it is released
type pressState struct {
	active  bool
	start   int64 // Unix milliseconds
	cellX   int
	cellY   int
	holding bool
}

// EbitenRenderer runs a game in a window. Ebiten calls Update and Draw on
// one goroutine, so the game needs no locking.
type EbitenRenderer struct {
	manager *renderer.Manager
	canvas  *Canvas

	// Logical screen size in pixels, recomputed on zoom
	screenWidth  int
	screenHeight int
	windowScale  float64

	tileSize int


	game *state.Game

	windowOpenedLogged bool

	// seenMessages is how many of the game's messages have been tracked
	seenMessages    []string
	trackedMessages []messageEntry

	keyRepeatState map[ebiten.Key]keyRepeatInfo
	press          pressState

	quit bool
}
