package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"darkmaze/pkg/engine/input"
	"darkmaze/pkg/engine/terminal"
	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/gameplay"
	"darkmaze/pkg/game/renderer"
	"darkmaze/pkg/game/state"
)

// Icon constants
const (
	PlayerIcon = "@"
	IconWall   = "▒"
	IconFloor  = " "
	IconExit   = "⌂"
)

// eol ends every line; raw mode does not translate \n to \r\n
const eol = "\r\n"

// ErrNotTerminal is returned by Run when keys cannot be read in raw mode
var ErrNotTerminal = errors.New("standard input is not a terminal")

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	in  *os.File
	out io.Writer

	colorWall        color.Style
	colorFloor       color.Style
	colorExit        color.Style
	colorPlayer      color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorSubtle      color.Style
}

// New creates a new TUI renderer writing to out
func New(out io.Writer) *TUIRenderer {
	return &TUIRenderer{in: os.Stdin, out: out}
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorFloor = color.Style{color.FgDefault}
	t.colorExit = color.Style{color.FgGreen, color.OpBold}
	t.colorPlayer = color.Style{color.FgRed, color.BgBlack, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	terminal.Clear(t.out)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleFloor:
		return t.colorFloor.Sprint(text)
	case renderer.StyleExit:
		return t.colorExit.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	return renderer.ApplyMarkup(msg, t.styleMarkup, args...)
}

func (t *TUIRenderer) styleMarkup(function, operand string) string {
	switch function {
	case "ACTION":
		key, rest := renderer.ActionKey(operand)
		return t.colorActionShort.Sprint(key) + t.colorAction.Sprint(rest)
	case "EXIT":
		return t.colorExit.Sprint(operand)
	case "DENIED":
		return t.colorDenied.Sprint(operand)
	default:
		return operand
	}
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(s *gameplay.Session) {
	terminal.Home(t.out)

	g := s.Game
	t.printLine(t.colorAction.Sprint(gotext.Get("WINDOW_TITLE")) + t.colorSubtle.Sprintf(" %s", g.MazeID.String()[:8]))
	t.printLine("")

	t.printMap(g)
	t.printStatusBar(s)
	t.printPossibleActions()
	t.printMessagesPane(g)
}

// printLine writes s and clears what an earlier, longer frame left on the line
func (t *TUIRenderer) printLine(s string) {
	fmt.Fprint(t.out, s+"\x1b[K"+eol)
}

// renderCell returns the string representation of a cell
func (t *TUIRenderer) renderCell(g *state.Game, c world.Coord) string {
	if c == g.Player {
		return t.colorPlayer.Sprint(PlayerIcon)
	}

	switch g.Grid.At(c) {
	case world.Exit:
		return t.colorExit.Sprint(IconExit)
	case world.Floor:
		return t.colorFloor.Sprint(IconFloor)
	default:
		return t.colorWall.Sprint(IconWall)
	}
}

// printMap renders the whole maze, centered in the terminal
func (t *TUIRenderer) printMap(g *state.Game) {
	if g.Grid == nil {
		return
	}

	termWidth, _ := terminal.GetSize()
	indent := strings.Repeat(" ", max(0, (termWidth-g.Grid.Width())/2))

	for y := 0; y < g.Grid.Height(); y++ {
		var row strings.Builder
		row.WriteString(indent)
		for x := 0; x < g.Grid.Width(); x++ {
			row.WriteString(t.renderCell(g, world.Coord{X: x, Y: y}))
		}
		t.printLine(row.String())
	}
	t.printLine("")
}

// printStatusBar renders the countdown and move counter
func (t *TUIRenderer) printStatusBar(s *gameplay.Session) {
	clock := s.TimeLeft()
	if s.Countdown.Remaining() <= 10*time.Second {
		clock = t.colorDenied.Sprint(clock)
	} else {
		clock = t.colorAction.Sprint(clock)
	}

	status := fmt.Sprintf("%s: %s   %s: %d",
		t.colorSubtle.Sprint(gotext.Get("TIME_LEFT")), clock,
		t.colorSubtle.Sprint(gotext.Get("MOVES")), s.Game.Moves)

	switch s.Game.Outcome {
	case state.OutcomeEscaped:
		status += "   " + t.colorExit.Sprint(gotext.Get("ESCAPED"))
	case state.OutcomeTimedOut:
		status += "   " + t.colorDenied.Sprint(gotext.Get("TIMED_OUT"))
	}

	t.printLine(status)
	t.printLine("")
}

// printPossibleActions prints the key help line
func (t *TUIRenderer) printPossibleActions() {
	t.printLine(t.FormatText("ACTION{%s} %s  ACTION{R} %s  ACTION{F5} %s  ACTION{Q} %s",
		"WASD", gotext.Get("HELP_MOVE"),
		gotext.Get("HELP_RESTART"),
		gotext.Get("HELP_REPLAY"),
		gotext.Get("HELP_QUIT")))
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *state.Game) {
	width, _ := terminal.GetSize()

	label := " " + gotext.Get("MESSAGES") + " "
	labelLen := len([]rune(label))
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", max(1, width-sideLen-labelLen))

	t.printLine("")
	t.printLine(t.colorSubtle.Sprint(leftDashes + label + rightDashes))

	if len(g.Messages) == 0 {
		t.printLine(t.colorSubtle.Sprint("  " + gotext.Get("NO_MESSAGES")))
	}
	for _, msg := range g.Messages {
		t.printLine("  " + t.FormatText(msg))
	}
	// Blank out lines left over from a longer log
	for i := len(g.Messages); i < state.MaxMessages; i++ {
		t.printLine("")
	}

	t.printLine(t.colorSubtle.Sprint(strings.Repeat("─", width)))
}

// Run reads keys in raw mode and redraws on every key and every second
// until the player quits.
func (t *TUIRenderer) Run(s *gameplay.Session) error {
	if !terminal.IsTerminal(t.in) {
		return ErrNotTerminal
	}
	keys, err := input.NewKeyReader(t.in)
	if err != nil {
		return err
	}
	defer keys.Restore()

	terminal.HideCursor(t.out)
	defer terminal.ShowCursor(t.out)

	codes := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			code, err := keys.ReadKey()
			if err != nil {
				readErr <- err
				return
			}
			select {
			case codes <- code:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	last := time.Now()

	t.Clear()
	t.RenderFrame(s)

	for !s.Quit {
		select {
		case code := <-codes:
			last = handleKey(s, code, last, time.Now())
		case now := <-ticker.C:
			s.Tick(now.Sub(last))
			last = now
		case err := <-readErr:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		t.RenderFrame(s)
	}

	t.Clear()
	return nil
}

// handleKey applies one key to the session and returns the time the next
// tick counts from. A key that loads a maze restarts the clock there, so
// the new countdown is not charged for time spent on the previous one.
func handleKey(s *gameplay.Session, code string, last, now time.Time) time.Time {
	maze := s.Game.MazeID
	s.ProcessIntent(input.IntentFor(input.DeviceTerminal, code))
	if s.Game.MazeID != maze {
		return now
	}
	return last
}
