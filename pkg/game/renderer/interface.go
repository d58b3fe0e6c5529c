package renderer

import (
	"darkmaze/pkg/game/gameplay"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleFloor
	StyleExit
	StylePlayer
	StyleAction
	StyleActionShort
	StyleDenied
	StyleSubtle
)

// Renderer defines the interface for game rendering backends.
// Implementations are the terminal (tui) and window (ebiten) renderers.
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame: the maze, the status bar and messages
	RenderFrame(s *gameplay.Session)

	// StyleText applies a style to text and returns the styled string
	// For TUI this applies ANSI colors, the window renderer returns plain text
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// Run drives the session until the player quits
	Run(s *gameplay.Session) error
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Run hands the session to the current renderer
func Run(s *gameplay.Session) error {
	if Current == nil {
		return ErrNoRenderer
	}
	return Current.Run(s)
}
