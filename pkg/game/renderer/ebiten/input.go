package ebiten

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "darkmaze/pkg/engine/input"
	"darkmaze/pkg/game/config"
)

// keyCode pairs an Ebiten key with the raw code the bindings know
type keyCode struct {
	key  ebiten.Key
	code string
}

// Movement keys repeat while held
var repeatKeys = []keyCode{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyK, "k"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyL, "l"},
}

// Everything else fires once per press
var pressKeys = []keyCode{
	{ebiten.KeyR, "r"},
	{ebiten.KeyN, "n"},
	{ebiten.KeyF5, "f5"},
	{ebiten.KeyF8, "f8"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "escape"},
	{ebiten.KeyEqual, "="},
	{ebiten.KeyNumpadAdd, "numpad_add"},
	{ebiten.KeyMinus, "-"},
	{ebiten.KeyNumpadSubtract, "numpad_subtract"},
}

// Update handles input and advances the countdown (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	s := e.session
	if s == nil {
		return nil
	}

	switch intent := e.checkInput(); intent.Action {
	case engineinput.ActionZoomIn:
		e.setCellSize(e.cellSize + config.CellSizeStep)
	case engineinput.ActionZoomOut:
		e.setCellSize(e.cellSize - config.CellSizeStep)
	default:
		s.ProcessIntent(intent)
	}

	if s.Quit {
		return ebiten.Termination
	}

	s.Tick(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

// setCellSize changes the zoom and resizes the window to fit
func (e *EbitenRenderer) setCellSize(size int) {
	size = clampCellSize(size)
	if size == e.cellSize {
		return
	}
	e.cellSize = size
	e.resizeWindow()
}

// checkInput checks for keyboard input and returns the corresponding Intent.
// Every repeat key is polled each frame so releases are seen.
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	now := time.Now()
	intent := engineinput.Intent{Action: engineinput.ActionNone}

	for _, k := range repeatKeys {
		if e.repeater.Trigger(k.code, ebiten.IsKeyPressed(k.key), now) && intent.Action == engineinput.ActionNone {
			intent = engineinput.IntentFor(engineinput.DeviceKeyboard, k.code)
		}
	}
	if intent.Action != engineinput.ActionNone {
		return intent
	}

	for _, k := range pressKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			return engineinput.IntentFor(engineinput.DeviceKeyboard, k.code)
		}
	}

	return intent
}
