package ebiten

import (
	"bytes"
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"

	engineinput "darkmaze/pkg/engine/input"
	"darkmaze/pkg/game/config"
	"darkmaze/pkg/game/gameplay"
	"darkmaze/pkg/game/renderer"
)

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Cell size in pixels (adjustable with +/-)
	cellSize int

	// Font sources for text rendering
	sansFontSource *text.GoTextFaceSource // UI text
	monoFontSource *text.GoTextFaceSource // Countdown

	// Cached font faces (recreated when cell size changes)
	cachedUIFontSize float64
	cachedSansFace   *text.GoTextFace
	cachedMonoFace   *text.GoTextFace

	session  *gameplay.Session
	repeater *engineinput.KeyRepeater

	windowOpenedLogged bool
}

// New creates a new Ebiten renderer drawing cells of cellSize pixels
func New(cellSize int) *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
		cellSize:     clampCellSize(cellSize),
		repeater:     engineinput.NewKeyRepeater(),
	}
}

// Init loads the fonts
func (e *EbitenRenderer) Init() {
	var err error
	if e.sansFontSource, err = loadFontSource(goregular.TTF); err != nil {
		log.Printf("Failed to load UI font: %v", err)
	}
	if e.monoFontSource, err = loadFontSource(gomonobold.TTF); err != nil {
		log.Printf("Failed to load mono font: %v", err)
	}
}

func loadFontSource(ttf []byte) (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return src, nil
}

// Clear is a no-op; every Draw starts from a filled background
func (e *EbitenRenderer) Clear() {}

// StyleText returns text unchanged; colors are chosen when drawing
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// FormatText formats a message and drops the markup
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	return renderer.StripMarkup(msg, args...)
}

// RenderFrame sets the session drawn by the next Draw
func (e *EbitenRenderer) RenderFrame(s *gameplay.Session) {
	e.session = s
}

// Run opens the window and runs the game loop until the player quits
func (e *EbitenRenderer) Run(s *gameplay.Session) error {
	e.RenderFrame(s)
	e.resizeWindow()

	ebiten.SetWindowTitle(gotext.Get("WINDOW_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth = outsideWidth
	e.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}

// windowSize returns the window size that fits the maze at the current cell size
func (e *EbitenRenderer) windowSize() (int, int) {
	if e.session == nil || e.session.Game.Grid == nil {
		return defaultWindowWidth, defaultWindowHeight
	}
	grid := e.session.Game.Grid
	width := grid.Width()*e.cellSize + frameMargin*2
	height := headerHeight + grid.Height()*e.cellSize + frameMargin*2 + e.messagesHeight()
	return width, height
}

func (e *EbitenRenderer) resizeWindow() {
	w, h := e.windowSize()
	ebiten.SetWindowSize(w, h)
}

// clampCellSize keeps a cell size inside the configured bounds
func clampCellSize(size int) int {
	return min(max(size, config.MinCellSize), config.MaxCellSize)
}
