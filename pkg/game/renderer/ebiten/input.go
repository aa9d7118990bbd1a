package ebiten

import (
	"errors"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "chress/pkg/engine/input"
	"chress/pkg/game/config"
	"chress/pkg/game/gameplay"
	"chress/pkg/game/renderer"
)

// keyBinding maps an ebiten key to the raw code the input layers bind.
// Movement keys repeat while held; everything else fires once per press.
type keyBinding struct {
	key    ebiten.Key
	code   string
	repeat bool
}

var keyBindings = []keyBinding{
	{ebiten.KeyArrowUp, "arrow_up", true},
	{ebiten.KeyArrowDown, "arrow_down", true},
	{ebiten.KeyArrowLeft, "arrow_left", true},
	{ebiten.KeyArrowRight, "arrow_right", true},
	{ebiten.KeyW, "w", true},
	{ebiten.KeyS, "s", true},
	{ebiten.KeyA, "a", true},
	{ebiten.KeyD, "d", true},
	{ebiten.KeyK, "k", true},
	{ebiten.KeyJ, "j", true},
	{ebiten.KeyH, "h", true},
	{ebiten.KeyL, "l", true},
	{ebiten.KeySpace, "space", false},
	{ebiten.KeyPeriod, ".", false},
	{ebiten.KeyB, "b", false},
	{ebiten.KeyF, "f", false},
	{ebiten.KeyEnter, "enter", false},
	{ebiten.KeyNumpadEnter, "enter", false},
	{ebiten.KeyY, "y", false},
	{ebiten.KeyEscape, "escape", false},
	{ebiten.KeyN, "n", false},
	{ebiten.KeyQ, "q", false},
	{ebiten.KeyEqual, "=", false},
	{ebiten.KeyNumpadAdd, "numpad_add", false},
	{ebiten.KeyMinus, "-", false},
	{ebiten.KeyNumpadSubtract, "numpad_subtract", false},
	{ebiten.Key0, "0", false},
	{ebiten.KeyM, "m", false},
}

// Update handles input and advances the game by one frame (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}
	if e.quit {
		return ebiten.Termination
	}

	now := time.Now().UnixMilli()
	if intent := e.checkPointer(now); intent.Action != engineinput.ActionNone {
		e.apply(intent)
	}
	if intent := e.checkInput(now); intent.Action != engineinput.ActionNone {
		e.apply(intent)
	}

	gameplay.Update(e.game)
	if e.quit {
		return ebiten.Termination
	}
	return nil
}

// apply routes an intent to zoom handling or to the game
func (e *EbitenRenderer) apply(intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionZoomIn:
		e.setTileSize(e.tileSize + tileSizeStep)
	case engineinput.ActionZoomOut:
		e.setTileSize(e.tileSize - tileSizeStep)
	case engineinput.ActionZoomReset:
		e.setTileSize(config.DefaultTileSize)
	default:
		if err := gameplay.ProcessIntent(e.game, intent); errors.Is(err, gameplay.ErrQuit) {
			e.quit = true
		}
	}
}

// setTileSize zooms to size, clamped to the supported range, and saves it
func (e *EbitenRenderer) setTileSize(size int) {
	size = min(max(size, minTileSize), maxTileSize)
	if size == e.tileSize {
		return
	}
	e.tileSize = size
	e.resize()
	e.saveZoomPreference()
}

// saveZoomPreference saves the current tile size to preferences
func (e *EbitenRenderer) saveZoomPreference() {
	if err := config.Current().SetTileSize(e.tileSize); err != nil {
		log.Printf("Warning: could not save preferences: %v", err)
	}
}

// shouldRepeatKey reports whether a held key fires this frame: on the
// initial press, then at the repeat interval once the initial delay passed
func (e *EbitenRenderer) shouldRepeatKey(key ebiten.Key, now int64) bool {
	state, exists := e.keyRepeatState[key]
	if !ebiten.IsKeyPressed(key) {
		if exists {
			delete(e.keyRepeatState, key)
		}
		return false
	}
	if !exists {
		e.keyRepeatState[key] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}
	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[key] = state
		return true
	}
	return false
}

// checkInput checks for keyboard input and returns the corresponding Intent
func (e *EbitenRenderer) checkInput(now int64) engineinput.Intent {
	for _, b := range keyBindings {
		var fired bool
		if b.repeat {
			fired = e.shouldRepeatKey(b.key, now)
		} else {
			fired = inpututil.IsKeyJustPressed(b.key)
		}
		if fired {
			return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
				Device:    engineinput.DeviceKeyboard,
				Code:      b.code,
				Timestamp: time.UnixMilli(now),
			}))
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// pointer returns the first touch, or the mouse when nothing touches
func pointer() (x, y int, down bool) {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y = ebiten.TouchPosition(ids[0])
		return x, y, true
	}
	x, y = ebiten.CursorPosition()
	return x, y, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// checkPointer turns presses into taps and holds. A press released before
// holdThreshold is a tap on the cell it started on; a longer press shows
// the hold marker until release.
func (e *EbitenRenderer) checkPointer(now int64) engineinput.Intent {
	x, y, down := pointer()
	p := &e.press

	switch {
	case down && !p.active:
		cx, cy := x/e.tileSize, y/e.tileSize
		*p = pressState{active: true, start: now, cellX: cx, cellY: cy}
	case down && !p.holding && now-p.start >= holdThreshold:
		p.holding = true
		if e.game.Grid.InBounds(p.cellX, p.cellY) {
			e.manager.Feedback.StartHold(p.cellX, p.cellY)
		}
	case !down && p.active:
		held := p.holding
		cx, cy := p.cellX, p.cellY
		*p = pressState{}
		if held {
			e.manager.Feedback.Clear()
			return engineinput.Intent{Action: engineinput.ActionNone}
		}
		if e.game.Grid.InBounds(cx, cy) {
			e.manager.Feedback.ShowTap(cx, cy, renderer.TapDuration)
			return engineinput.SelectIntent(cx, cy)
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}
