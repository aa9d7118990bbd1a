package ebiten

import (
	"testing"

	"chress/pkg/game/state"
	gameworld "chress/pkg/game/world"
	"chress/pkg/game/zone"
)

func TestSyncMessages_TracksOnlyNewLines(t *testing.T) {
	g := state.NewGame(zone.Zone{}, gameworld.NewGrid(10))
	e := &EbitenRenderer{game: g}

	g.AddMessage("one")
	e.syncMessages(1000)
	g.AddMessage("two")
	e.syncMessages(2000)
	e.syncMessages(2500)

	if len(e.trackedMessages) != 2 {
		t.Fatalf("tracked %d messages, want 2", len(e.trackedMessages))
	}
	if m := e.trackedMessages[1]; m.Text != "two" || m.Timestamp != 2000 {
		t.Errorf("second message = %+v, want two at 2000", m)
	}
}

func TestSyncMessages_RollingLogAndClear(t *testing.T) {
	g := state.NewGame(zone.Zone{}, gameworld.NewGrid(10))
	e := &EbitenRenderer{game: g}

	for _, m := range []string{"a", "b", "c", "d", "e"} {
		g.AddMessage(m)
	}
	e.syncMessages(0)
	g.AddMessage("f") // drops "a"
	e.syncMessages(10)
	if n := len(e.trackedMessages); n != 6 {
		t.Fatalf("tracked %d messages after roll, want 6", n)
	}

	g.ClearMessages()
	g.AddMessage("welcome")
	e.syncMessages(20)
	if last := e.trackedMessages[len(e.trackedMessages)-1]; last.Text != "welcome" {
		t.Errorf("last message = %q, want welcome", last.Text)
	}
}

func TestSyncMessages_ExpiresOldLines(t *testing.T) {
	g := state.NewGame(zone.Zone{}, gameworld.NewGrid(10))
	e := &EbitenRenderer{game: g}

	g.AddMessage("old")
	e.syncMessages(0)
	g.AddMessage("new")
	e.syncMessages(messageLifetime + 1)
	if len(e.trackedMessages) != 1 || e.trackedMessages[0].Text != "new" {
		t.Errorf("tracked = %+v, want only new", e.trackedMessages)
	}
}

func TestMessageAlpha_Fades(t *testing.T) {
	if a := messageAlpha(0); a != 1 {
		t.Errorf("messageAlpha(0) = %v, want 1", a)
	}
	if a := messageAlpha(messageFadeStart); a != 1 {
		t.Errorf("alpha at fade start = %v, want 1", a)
	}
	if a := messageAlpha(messageLifetime); a != 0 {
		t.Errorf("alpha at end of life = %v, want 0", a)
	}
	mid := messageAlpha((messageFadeStart + messageLifetime) / 2)
	if mid <= 0 || mid >= 1 {
		t.Errorf("alpha mid-fade = %v, want between 0 and 1", mid)
	}
}
