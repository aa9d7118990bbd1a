// Package ebiten runs Chress in a window using Ebiten
// (https://ebitengine.org/). It supplies the renderer with a GPU canvas and
// turns keyboard and pointer input into game intents.
package ebiten

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"

	"chress/pkg/game/config"
	"chress/pkg/game/renderer"
	"chress/pkg/game/state"
)

// New creates the windowed backend drawing textures from tex
func New(tex renderer.Textures, prefs *config.Preferences) (*EbitenRenderer, error) {
	font, err := loadMonoFont()
	if err != nil {
		return nil, err
	}
	ts := prefs.TileSize
	if ts < minTileSize || ts > maxTileSize {
		ts = config.DefaultTileSize
	}
	return &EbitenRenderer{
		manager:        renderer.NewManager(tex, float64(ts), nil),
		canvas:         NewCanvas(font),
		tileSize:       ts,
		windowScale:    prefs.WindowScale,
		keyRepeatState: make(map[ebiten.Key]keyRepeatInfo),
	}, nil
}

// Manager returns the frame renderer
func (e *EbitenRenderer) Manager() *renderer.Manager {
	return e.manager
}

// Run opens the window and blocks until it is closed or the player quits
func (e *EbitenRenderer) Run(g *state.Game) error {
	e.game = g
	e.resize()

	ebiten.SetWindowTitle(gotext.Get("WINDOW_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetScreenClearedEveryFrame(false)

	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running window: %w", err)
	}
	log.Printf("Main window closed")
	return nil
}

// resize recomputes the logical screen from the grid and tile size and
// scales the window to match
func (e *EbitenRenderer) resize() {
	e.manager.SetTileSize(float64(e.tileSize))
	e.screenWidth, e.screenHeight = e.manager.CanvasSize(e.game.Grid.Cols(), e.game.Grid.Rows())
	ebiten.SetWindowSize(int(float64(e.screenWidth)*e.windowScale), int(float64(e.screenHeight)*e.windowScale))
}

// Layout returns the logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.screenWidth, e.screenHeight
}
