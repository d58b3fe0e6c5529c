// Package gameplay provides the game session: maze lifecycle, intent
// handling and the countdown.
package gameplay

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/leonelquinteros/gotext"

	"darkmaze/pkg/game/generator"
	"darkmaze/pkg/game/setup"
	"darkmaze/pkg/game/state"
)

// Session ties a game to its generator and countdown
type Session struct {
	Game      *state.Game
	Generator generator.GridGenerator
	Countdown *Countdown

	// Quit is set once the player asks to leave
	Quit bool
}

// NewSession validates params, seeds the master source and generates the first maze
func NewSession(params generator.Params, timeLimit time.Duration, masterSeed int64) (*Session, error) {
	gen, err := generator.NewBSPGenerator(params)
	if err != nil {
		return nil, err
	}

	g := state.NewGame(params, rand.New(rand.NewSource(masterSeed)))
	s := &Session{
		Game:      g,
		Generator: gen,
	}
	s.Countdown = NewCountdown(timeLimit, func() { g.OnTimeout() })
	g.OnFinished(s.onFinished)

	log.Printf("Starting session with master seed %d", masterSeed)

	if err := s.Regenerate(); err != nil {
		return nil, err
	}

	logMessage(g, gotext.Get("MAZE_OBJECTIVE"))
	return s, nil
}

// Regenerate discards the current maze and generates a new one with the same parameters
func (s *Session) Regenerate() error {
	return s.load(s.Game.Rand.Int63())
}

// Replay regenerates the current maze from its stored seed
func (s *Session) Replay() error {
	return s.load(s.Game.MazeSeed)
}

func (s *Session) load(seed int64) error {
	maze, err := s.Generator.Generate(rand.New(rand.NewSource(seed)))
	if err != nil {
		return fmt.Errorf("generating maze: %w", err)
	}

	if err := setup.SetupMaze(s.Game, maze, seed); err != nil {
		return fmt.Errorf("maze from seed %d: %w", seed, err)
	}
	s.Countdown.Reset()

	s.Game.ClearMessages()
	logMessage(s.Game, gotext.Get("NEW_MAZE"))

	log.Printf("Generated maze %s: %s %dx%d, %d regions, seed %d, start %v, exit %v",
		s.Game.MazeID, s.Generator.Name(), maze.Grid.Width(), maze.Grid.Height(),
		maze.Leaves, seed, maze.Start, maze.Exit)
	return nil
}

// Tick advances the countdown; front ends call it from their clock
func (s *Session) Tick(elapsed time.Duration) {
	s.Countdown.Tick(elapsed)
}

// TimeLeft returns the remaining time as mm:ss
func (s *Session) TimeLeft() string {
	return FormatClock(s.Countdown.Remaining())
}

// onFinished stops the clock and reports the outcome of the cycle
func (s *Session) onFinished(outcome state.Outcome) {
	s.Countdown.Stop()
	secs := int(s.Countdown.Elapsed() / time.Second)

	switch outcome {
	case state.OutcomeEscaped:
		logMessage(s.Game, escapedMessage(secs))
	case state.OutcomeTimedOut:
		logMessage(s.Game, gotext.Get("TIME_UP"))
	}
	logMessage(s.Game, gotext.Get("PRESS_RESTART"))

	log.Printf("Maze %s finished: %s after %ds and %d moves", s.Game.MazeID, outcome, secs, s.Game.Moves)
}

// escapedMessage formats the escape message; without a loaded locale the
// key comes back with no verb to fill
func escapedMessage(secs int) string {
	msg := gotext.Get("YOU_ESCAPED")
	if !strings.Contains(msg, "%d") {
		return msg
	}
	return fmt.Sprintf(msg, secs)
}

// logMessage adds a message to the game's message log
func logMessage(g *state.Game, msg string) {
	g.AddMessage(msg)
}
