package tui

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	engineinput "chress/pkg/engine/input"
	"chress/pkg/game/renderer/canvastest"
	"chress/pkg/game/state"
	gameworld "chress/pkg/game/world"
	"chress/pkg/game/zone"
)

func newGame(t *testing.T) *state.Game {
	t.Helper()
	return state.NewGame(zone.Zone{}, gameworld.NewGrid(10))
}

func TestCanvas_FillRectBlendsCoveredCells(t *testing.T) {
	c := NewCanvas(3, 3, 64)
	c.Clear(color.Black)
	c.FillRect(0, 0, 64, 64, color.NRGBA{R: 255, A: 128})

	if got := c.at(0, 0).bg.R; got != 128 {
		t.Errorf("covered cell R = %d, want 128", got)
	}
	if got := c.at(1, 0).bg.R; got != 0 {
		t.Errorf("neighbouring cell R = %d, want 0", got)
	}
}

func TestCanvas_SmallTextKeepsGlyph(t *testing.T) {
	c := NewCanvas(1, 1, 64)
	c.Clear(color.Black)
	c.DrawText("z", 32, 32, 28.8, color.White)
	c.DrawText("1", 32, 32, 15.36, color.White)

	if got := c.at(0, 0).glyph; got != "z" {
		t.Fatalf("glyph after badge = %q, want z", got)
	}

	c.DrawText("@", 32, 32, 32, color.White)
	if got := c.at(0, 0).glyph; got != "@" {
		t.Errorf("glyph after full-size text = %q, want @", got)
	}
}

func TestCanvas_TextIsCutToCellWidth(t *testing.T) {
	c := NewCanvas(1, 1, 64)
	c.Clear(color.Black)
	c.DrawText("abc", 32, 32, 32, color.White)

	if got := c.at(0, 0).glyph; got != "ab" {
		t.Errorf("glyph = %q, want ab", got)
	}
}

func TestCanvas_TransparentTextIsSkipped(t *testing.T) {
	c := NewCanvas(1, 1, 64)
	c.Clear(color.Black)
	c.DrawText("x", 32, 32, 32, color.NRGBA{R: 255})

	if got := c.at(0, 0).glyph; got != "" {
		t.Errorf("glyph = %q, want empty", got)
	}
}

func TestCanvas_GlyphsPadsEveryCell(t *testing.T) {
	c := NewCanvas(4, 2, 64)
	c.Clear(color.Black)
	for _, line := range c.Glyphs() {
		if len(line) != 4*CellWidth {
			t.Errorf("line %q has width %d, want %d", line, len(line), 4*CellWidth)
		}
	}
}

func TestFrame_ShowsPlayerWithoutTextures(t *testing.T) {
	r := New(canvastest.NewTextures(), &bytes.Buffer{})
	g := newGame(t)

	lines := r.Canvas(g).Glyphs()
	if len(lines) != 10 {
		t.Fatalf("rows = %d, want 10", len(lines))
	}
	if !strings.Contains(lines[g.Player.Y], "@") {
		t.Errorf("row %d = %q, want the player glyph", g.Player.Y, lines[g.Player.Y])
	}
}

func TestDump_WritesFrameWithMessages(t *testing.T) {
	var out bytes.Buffer
	r := New(canvastest.NewTextures(), &out)
	g := newGame(t)
	g.AddMessage("a lizardy appears")

	if err := r.Dump(g); err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "@") {
		t.Error("dump is missing the player glyph")
	}
	if !strings.Contains(got, "a lizardy appears") {
		t.Error("dump is missing the message log")
	}
}

func TestSettle_ReturnsControlToPlayer(t *testing.T) {
	g := newGame(t)
	g.Turn.BeginEnemyTurn(nil)
	settle(g)

	if g.Turn.Phase != state.PlayerTurn {
		t.Errorf("phase after settle = %v, want PlayerTurn", g.Turn.Phase)
	}
}

func TestBindingLabel_SkipsNumpadCodes(t *testing.T) {
	byAction := map[engineinput.Action][]string{
		engineinput.ActionZoomIn: {"+", "=", "numpad_add"},
	}
	if got, want := bindingLabel(engineinput.ActionZoomIn, byAction), "Zoom In: +/="; got != want {
		t.Errorf("bindingLabel() = %q, want %q", got, want)
	}
	if got, want := bindingLabel(engineinput.ActionWait, byAction), "Wait: (unbound)"; got != want {
		t.Errorf("bindingLabel() = %q, want %q", got, want)
	}
}
