package input

import (
	"testing"

	"chress/pkg/engine/world"
)

func TestMapToIntent_Bindings(t *testing.T) {
	cases := map[string]Action{
		"arrow_up": ActionMoveNorth,
		"h":        ActionMoveWest,
		"b":        ActionBomb,
		"enter":    ActionConfirm,
		"escape":   ActionCancel,
		"=":        ActionZoomIn,
		"m":        ActionDebugZoneDump,
		"unknown":  ActionNone,
	}
	for code, want := range cases {
		got := MapToIntent(NewDebouncedInput(RawInput{Device: DeviceKeyboard, Code: code}))
		if got.Action != want {
			t.Errorf("MapToIntent(%q) = %s, want %s", code, ActionName(got.Action), ActionName(want))
		}
	}
}

func TestAction_Direction(t *testing.T) {
	if d, ok := ActionMoveWest.Direction(); !ok || d != world.West {
		t.Errorf("ActionMoveWest.Direction() = %v, %v", d, ok)
	}
	if _, ok := ActionBomb.Direction(); ok {
		t.Error("ActionBomb has a direction")
	}
}

func TestGetBindingsByAction_Sorted(t *testing.T) {
	codes := GetBindingsByAction()[ActionMoveNorth]
	for i := 1; i < len(codes); i++ {
		if codes[i-1] > codes[i] {
			t.Fatalf("codes not sorted: %v", codes)
		}
	}
	if len(codes) != 3 {
		t.Errorf("ActionMoveNorth codes = %v, want 3", codes)
	}
}

func TestSelectIntent(t *testing.T) {
	in := SelectIntent(3, 4)
	if in.Action != ActionSelect || in.Target != (world.Point{X: 3, Y: 4}) {
		t.Errorf("SelectIntent = %+v", in)
	}
}
