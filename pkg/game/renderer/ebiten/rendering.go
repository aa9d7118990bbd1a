package ebiten

import (
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw renders the frame and the message panel (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	if e.game == nil {
		return
	}
	e.canvas.SetTarget(screen)
	e.manager.Render(e.canvas, e.game)
	e.drawMessages(screen)
}

// syncMessages records the time each new game message first appeared. The
// game keeps a short rolling log, so the new lines are whatever follows the
// longest overlap with what was seen last frame.
func (e *EbitenRenderer) syncMessages(now int64) {
	cur := e.game.Messages
	if slices.Equal(cur, e.seenMessages) {
		return
	}
	fresh := cur
	for k := 0; k < len(e.seenMessages); k++ {
		old := e.seenMessages[k:]
		if len(old) <= len(cur) && slices.Equal(old, cur[:len(old)]) {
			fresh = cur[len(old):]
			break
		}
	}
	for _, m := range fresh {
		e.trackedMessages = append(e.trackedMessages, messageEntry{Text: m, Timestamp: now})
	}
	e.trackedMessages = slices.DeleteFunc(e.trackedMessages, func(m messageEntry) bool {
		return now-m.Timestamp >= messageLifetime
	})
	e.seenMessages = slices.Clone(cur)
}

// messageAlpha fades a message out over the last part of its lifetime
func messageAlpha(age int64) float64 {
	if age <= messageFadeStart {
		return 1
	}
	a := 1 - float64(age-messageFadeStart)/float64(messageLifetime-messageFadeStart)
	return min(max(a, 0), 1)
}

// drawMessages draws the most recent messages as a bottom-aligned panel.
// Nothing is drawn once every message has faded.
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image) {
	now := time.Now().UnixMilli()
	e.syncMessages(now)

	var visible []messageEntry
	for _, m := range e.trackedMessages {
		if now-m.Timestamp < messageLifetime {
			visible = append(visible, m)
		}
	}
	if len(visible) > maxVisibleLines {
		visible = visible[len(visible)-maxVisibleLines:]
	}
	if len(visible) == 0 {
		return
	}

	size := max(float64(e.tileSize)*0.25, 10)
	face := e.canvas.fonts.face(size)
	lineHeight := size + 4

	widest := 0.0
	for _, m := range visible {
		w, _ := text.Measure(m.Text, face, 0)
		widest = max(widest, w)
	}

	panelW := min(widest+20, float64(e.screenWidth-20))
	panelH := float64(len(visible))*lineHeight + 12
	x := (float64(e.screenWidth) - panelW) / 2
	y := float64(e.screenHeight) - panelH - 10

	vector.DrawFilledRect(screen, float32(x-1), float32(y-1), float32(panelW+2), float32(panelH+2), colorPanelBorder, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(panelW), float32(panelH), colorPanelBackground, false)

	for i, m := range visible {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x+10, y+6+float64(i)*lineHeight)
		col := colorText
		if i < len(visible)-1 {
			col = colorSubtle
		}
		op.ColorScale.ScaleWithColor(col)
		op.ColorScale.ScaleAlpha(float32(messageAlpha(now - m.Timestamp)))
		text.Draw(screen, m.Text, face, op)
	}
}
