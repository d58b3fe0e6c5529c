// Package menu lists the key bindings for help output.
package menu

import (
	"fmt"
	"io"
	"strings"

	engineinput "darkmaze/pkg/engine/input"
)

// BindingItem is one line of the bindings list.
type BindingItem struct {
	Action engineinput.Action
}

// GetLabel returns the display label for this binding item.
func (b BindingItem) GetLabel() string {
	name := engineinput.ActionName(b.Action)
	byAction := engineinput.GetBindingsByAction()
	codes := byAction[b.Action]
	codeText := strings.Join(codes, ", ")
	if codeText == "" {
		codeText = "(unbound)"
	}
	return fmt.Sprintf("%s: %s", name, codeText)
}

// bindingActions is the order actions are listed in
var bindingActions = []engineinput.Action{
	engineinput.ActionMoveUp,
	engineinput.ActionMoveDown,
	engineinput.ActionMoveLeft,
	engineinput.ActionMoveRight,
	engineinput.ActionRestart,
	engineinput.ActionReplay,
	engineinput.ActionQuit,
	engineinput.ActionZoomIn,
	engineinput.ActionZoomOut,
	engineinput.ActionDumpMap,
}

// GetBindingItems returns the items of the bindings list.
func GetBindingItems() []BindingItem {
	items := make([]BindingItem, len(bindingActions))
	for i, action := range bindingActions {
		items[i] = BindingItem{Action: action}
	}
	return items
}

// PrintBindings writes the bindings list to w
func PrintBindings(w io.Writer) {
	fmt.Fprintln(w, "Keys:")
	for _, item := range GetBindingItems() {
		fmt.Fprintf(w, "  %s\n", item.GetLabel())
	}
}
