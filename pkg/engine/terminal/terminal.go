// Package terminal wraps the few terminal controls the text renderer needs.
package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// ANSI control sequences
const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Clear clears the screen and moves the cursor to the top left
func Clear(w io.Writer) {
	fmt.Fprint(w, clearScreen+cursorHome)
}

// Home moves the cursor to the top left without clearing, for flicker-free redraws
func Home(w io.Writer) {
	fmt.Fprint(w, cursorHome)
}

// HideCursor hides the cursor until ShowCursor is called
func HideCursor(w io.Writer) {
	fmt.Fprint(w, hideCursor)
}

// ShowCursor makes the cursor visible again
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, showCursor)
}
