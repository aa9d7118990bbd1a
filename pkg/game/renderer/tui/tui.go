// Package tui plays Chress in a terminal. Frames go through the same
// renderer as the window, onto a canvas of coloured character cells, so
// the terminal shows exactly what the fallback rendering would.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	gcolor "github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	engineinput "chress/pkg/engine/input"
	"chress/pkg/engine/terminal"
	"chress/pkg/game/gameplay"
	"chress/pkg/game/renderer"
	"chress/pkg/game/state"
)

// ErrNotTerminal is returned by Run when stdin or stdout is not a terminal
var ErrNotTerminal = errors.New("not a terminal")

// maxSettleFrames caps how long Run plays animations between keypresses
const maxSettleFrames = 600

const clearScreen = "\033[H\033[2J"

// TUIRenderer is the terminal backend
type TUIRenderer struct {
	manager *renderer.Manager
	canvas  *Canvas
	out     io.Writer

	colorTitle  gcolor.Style
	colorSubtle gcolor.Style
	colorAlert  gcolor.Style
}

// New creates a terminal backend writing frames to out
func New(tex renderer.Textures, out io.Writer) *TUIRenderer {
	return &TUIRenderer{
		manager:     renderer.NewManager(tex, renderer.DefaultTileSize, nil),
		out:         out,
		colorTitle:  gcolor.Style{gcolor.FgYellow, gcolor.OpBold},
		colorSubtle: gcolor.Style{gcolor.FgGray, gcolor.OpBold},
		colorAlert:  gcolor.Style{gcolor.FgRed, gcolor.OpBold},
	}
}

// Manager returns the frame renderer
func (t *TUIRenderer) Manager() *renderer.Manager {
	return t.manager
}

// Canvas renders g and returns the canvas it was drawn onto
func (t *TUIRenderer) Canvas(g *state.Game) *Canvas {
	cols, rows := g.Grid.Cols(), g.Grid.Rows()
	if t.canvas == nil || t.canvas.cols != cols || t.canvas.rows != rows {
		t.canvas = NewCanvas(cols, rows, t.manager.TileSize())
	}
	t.manager.Render(t.canvas, g)
	return t.canvas
}

// Frame renders g as a complete screen: status bar, map, messages and
// the controls footer
func (t *TUIRenderer) Frame(g *state.Game) string {
	var sb strings.Builder
	sb.WriteString(t.statusBar(g))
	sb.WriteString("\n\n")
	sb.WriteString(t.Canvas(g).String())
	sb.WriteString(t.messagesPane(g))
	sb.WriteString(t.controls())
	return sb.String()
}

// Dump writes one frame of g and returns
func (t *TUIRenderer) Dump(g *state.Game) error {
	if _, err := io.WriteString(t.out, t.Frame(g)); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// Run redraws after every keypress until the player quits
func (t *TUIRenderer) Run(g *state.Game) error {
	if !terminal.IsInteractive() {
		return ErrNotTerminal
	}

	for {
		settle(g)
		if _, err := io.WriteString(t.out, clearScreen+t.Frame(g)); err != nil {
			return fmt.Errorf("writing frame: %w", err)
		}

		raw, err := engineinput.ReadKey()
		if errors.Is(err, engineinput.ErrInterrupted) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading key: %w", err)
		}

		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(raw))
		if err := gameplay.ProcessIntent(g, intent); err != nil {
			if errors.Is(err, gameplay.ErrQuit) {
				return nil
			}
			return err
		}
	}
}

// settle plays frames until the enemies have moved and nothing is
// animating. A terminal only shows the resting state between keypresses.
func settle(g *state.Game) {
	for i := 0; i < maxSettleFrames; i++ {
		if g.Turn.Phase == state.PlayerTurn && !g.Animating() {
			return
		}
		gameplay.Update(g)
	}
}

// statusBar renders the zone and the player's resources on two lines
func (t *TUIRenderer) statusBar(g *state.Game) string {
	p := g.Player
	zoneLine := fmt.Sprintf(gotext.Get("STATUS_ZONE"), g.Zone.Key(), g.Zone.Level())

	health := fmt.Sprintf("♥ %d/%d", p.Health, p.MaxHealth)
	if p.Health*4 <= p.MaxHealth {
		health = t.colorAlert.Sprint(health)
	}
	stats := fmt.Sprintf(gotext.Get("STATUS_STATS"), health, p.Points, p.Bombs, p.Arrows)

	phase := gotext.Get("PHASE_PLAYER")
	if g.Turn.Phase == state.EnemyTurn {
		phase = gotext.Get("PHASE_ENEMY")
	}
	if g.Multiplier > 1 {
		stats += fmt.Sprintf("  x%d", g.Multiplier)
	}
	return t.colorTitle.Sprint(zoneLine) + "\n" + stats + "  " + t.colorSubtle.Sprint(phase)
}

// messagesPane renders the message log between two rules spanning the
// terminal width
func (t *TUIRenderer) messagesPane(g *state.Game) string {
	width := terminal.GetWidth()

	label := " " + gotext.Get("MESSAGES") + " "
	labelLen := len([]rune(label))
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := max(width-sideLen-labelLen, 1)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(t.colorSubtle.Sprint(strings.Repeat("─", sideLen) + label + strings.Repeat("─", rightLen)))
	sb.WriteString("\n")
	if len(g.Messages) == 0 {
		sb.WriteString(t.colorSubtle.Sprint("  " + gotext.Get("NO_MESSAGES")))
		sb.WriteString("\n")
	} else {
		for _, msg := range g.Messages {
			sb.WriteString("  " + msg + "\n")
		}
	}
	sb.WriteString(t.colorSubtle.Sprint(strings.Repeat("─", width)))
	sb.WriteString("\n")
	return sb.String()
}
