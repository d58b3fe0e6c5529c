// Package state holds the mutable state of a maze run: the grid, the player
// and exit coordinates, and the Playing/Finished state machine.
package state

import (
	"math/rand"

	"github.com/google/uuid"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/generator"
)

// Phase is the state of the current maze cycle
type Phase int

const (
	Playing Phase = iota
	Finished
)

// String returns the phase name
func (p Phase) String() string {
	if p == Finished {
		return "Finished"
	}
	return "Playing"
}

// Outcome records why a cycle finished
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeEscaped
	OutcomeTimedOut
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeEscaped:
		return "Escaped"
	case OutcomeTimedOut:
		return "TimedOut"
	default:
		return "None"
	}
}

// MoveResult reports the effect of a single AttemptMove call
type MoveResult struct {
	Moved       bool
	ReachedExit bool
}

// Game represents the game state for one maze session
type Game struct {
	Grid   *world.Grid
	Player world.Coord
	Exit   world.Coord

	Phase   Phase
	Outcome Outcome
	Moves   int // Successful moves this cycle

	MazeID   uuid.UUID // Identifies the current maze in logs and the status line
	MazeSeed int64     // Seed the current maze was generated from

	Params generator.Params
	Rand   *rand.Rand // Master source; one seed is drawn per maze

	Messages []string

	observers []func(Outcome)
}

// NewGame creates a new game instance. No maze is loaded until Reset is called.
func NewGame(params generator.Params, rng *rand.Rand) *Game {
	return &Game{
		Params:   params,
		Rand:     rng,
		Messages: make([]string, 0),
		Phase:    Finished,
	}
}

// Reset loads a freshly generated maze and starts a new Playing cycle
func (g *Game) Reset(maze *generator.Maze, seed int64) {
	g.Grid = maze.Grid
	g.Player = maze.Start
	g.Exit = maze.Exit
	g.MazeSeed = seed
	g.MazeID = uuid.New()
	g.Phase = Playing
	g.Outcome = OutcomeNone
	g.Moves = 0
}

// OnFinished registers fn to be called once each time a cycle finishes
func (g *Game) OnFinished(fn func(Outcome)) {
	g.observers = append(g.observers, fn)
}

// AttemptMove moves the player one cell in dir if the target is inside the
// grid and not a wall. Moves while Finished are rejected.
func (g *Game) AttemptMove(dir world.Direction) MoveResult {
	if g.Phase != Playing || g.Grid == nil || !dir.IsValid() {
		return MoveResult{}
	}

	candidate := g.Player.Step(dir)
	if !g.Grid.InBounds(candidate) || g.Grid.At(candidate) == world.Wall {
		return MoveResult{}
	}

	g.Player = candidate
	g.Moves++

	if candidate != g.Exit {
		return MoveResult{Moved: true}
	}

	g.finish(OutcomeEscaped)
	return MoveResult{Moved: true, ReachedExit: true}
}

// OnTimeout finishes the current cycle without moving the player.
// Returns false if the cycle had already finished.
func (g *Game) OnTimeout() bool {
	if g.Phase != Playing {
		return false
	}
	g.finish(OutcomeTimedOut)
	return true
}

// IsFinished returns true once the cycle has ended
func (g *Game) IsFinished() bool {
	return g.Phase == Finished
}

func (g *Game) finish(outcome Outcome) {
	g.Phase = Finished
	g.Outcome = outcome
	for _, fn := range g.observers {
		fn(outcome)
	}
}

// MaxMessages is the length of the message log
const MaxMessages = 5

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last MaxMessages
	if len(g.Messages) > MaxMessages {
		g.Messages = g.Messages[len(g.Messages)-MaxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}
