package menu

import (
	"bytes"
	"strings"
	"testing"

	engineinput "darkmaze/pkg/engine/input"
)

func TestBindingItem_GetLabel(t *testing.T) {
	tests := []struct {
		action engineinput.Action
		want   string
	}{
		{engineinput.ActionMoveUp, "Move Up: arrow_up, k, w"},
		{engineinput.ActionReplay, "Replay Maze: f5, replay"},
		{engineinput.ActionNone, "None: (unbound)"},
	}
	for _, tt := range tests {
		if got := (BindingItem{Action: tt.action}).GetLabel(); got != tt.want {
			t.Errorf("GetLabel(%v) = %q, want %q", tt.action, got, tt.want)
		}
	}
}

func TestPrintBindings(t *testing.T) {
	var buf bytes.Buffer
	PrintBindings(&buf)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "Keys:" {
		t.Errorf("first line = %q, want Keys:", lines[0])
	}
	if len(lines) != len(GetBindingItems())+1 {
		t.Errorf("got %d lines, want %d", len(lines), len(GetBindingItems())+1)
	}
	if !strings.Contains(buf.String(), "Quit: escape, q, quit") {
		t.Errorf("bindings missing quit line:\n%s", buf.String())
	}
}
