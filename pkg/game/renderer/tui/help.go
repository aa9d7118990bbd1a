package tui

import (
	"fmt"
	"strings"

	engineinput "chress/pkg/engine/input"
)

// helpActions are the actions listed in the controls footer, in order
var helpActions = []engineinput.Action{
	engineinput.ActionMoveNorth,
	engineinput.ActionMoveSouth,
	engineinput.ActionMoveWest,
	engineinput.ActionMoveEast,
	engineinput.ActionWait,
	engineinput.ActionBomb,
	engineinput.ActionShoot,
	engineinput.ActionConfirm,
	engineinput.ActionCancel,
	engineinput.ActionQuit,
}

// bindingLabel returns "Name: code/code" for an action's terminal keys.
// Codes the terminal cannot send are left out.
func bindingLabel(act engineinput.Action, byAction map[engineinput.Action][]string) string {
	var codes []string
	for _, code := range byAction[act] {
		if strings.HasPrefix(code, "numpad_") {
			continue
		}
		codes = append(codes, code)
	}
	codeText := strings.Join(codes, "/")
	if codeText == "" {
		codeText = "(unbound)"
	}
	return fmt.Sprintf("%s: %s", engineinput.ActionName(act), codeText)
}

// controls renders the key bindings footer
func (t *TUIRenderer) controls() string {
	byAction := engineinput.GetBindingsByAction()
	labels := make([]string, len(helpActions))
	for i, act := range helpActions {
		labels[i] = bindingLabel(act, byAction)
	}
	return t.colorSubtle.Sprint(strings.Join(labels, "  ")) + "\n"
}
