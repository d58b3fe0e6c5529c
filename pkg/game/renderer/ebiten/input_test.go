package ebiten

import (
	"testing"
	"time"

	engineinput "darkmaze/pkg/engine/input"
	"darkmaze/pkg/game/config"
	"darkmaze/pkg/game/gameplay"
	"darkmaze/pkg/game/generator"
)

func TestRepeatKeys_AreMoves(t *testing.T) {
	for _, k := range repeatKeys {
		intent := engineinput.IntentFor(engineinput.DeviceKeyboard, k.code)
		if _, ok := intent.Action.Direction(); !ok {
			t.Errorf("repeat key %q maps to %v, want a move", k.code, intent.Action)
		}
	}
}

func TestPressKeys_AreBound(t *testing.T) {
	seen := map[string]bool{}
	for _, k := range pressKeys {
		if seen[k.code] {
			t.Errorf("code %q listed twice", k.code)
		}
		seen[k.code] = true

		intent := engineinput.IntentFor(engineinput.DeviceKeyboard, k.code)
		if intent.Action == engineinput.ActionNone {
			t.Errorf("press key %q is not bound to an action", k.code)
		}
		if _, ok := intent.Action.Direction(); ok {
			t.Errorf("press key %q maps to a move; moves belong in repeatKeys", k.code)
		}
	}
}

func TestClampCellSize(t *testing.T) {
	tests := []struct {
		size, want int
	}{
		{0, config.MinCellSize},
		{config.MinCellSize - 1, config.MinCellSize},
		{config.MinCellSize, config.MinCellSize},
		{30, 30},
		{config.MaxCellSize, config.MaxCellSize},
		{config.MaxCellSize + config.CellSizeStep, config.MaxCellSize},
	}
	for _, tt := range tests {
		if got := clampCellSize(tt.size); got != tt.want {
			t.Errorf("clampCellSize(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestWindowSize(t *testing.T) {
	e := New(20)
	if w, h := e.windowSize(); w != defaultWindowWidth || h != defaultWindowHeight {
		t.Errorf("windowSize without a session = %dx%d, want %dx%d", w, h, defaultWindowWidth, defaultWindowHeight)
	}

	params := generator.Params{Width: 15, Height: 11, MinRegionSize: 3, MaxSplitDepth: generator.DefaultMaxSplitDepth}
	s, err := gameplay.NewSession(params, time.Minute, 42)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	e.RenderFrame(s)

	w, h := e.windowSize()
	if want := 15*20 + frameMargin*2; w != want {
		t.Errorf("width = %d, want %d", w, want)
	}
	if want := headerHeight + 11*20 + frameMargin*2 + e.messagesHeight(); h != want {
		t.Errorf("height = %d, want %d", h, want)
	}

	e.cellSize = 40
	if w2, h2 := e.windowSize(); w2 <= w || h2 <= h {
		t.Errorf("zooming in did not grow the window: %dx%d -> %dx%d", w, h, w2, h2)
	}
}
