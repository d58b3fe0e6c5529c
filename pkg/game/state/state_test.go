package state

import (
	"math/rand"
	"testing"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/generator"
)

// makeCorridorGame builds a 5x3 grid with a single floor corridor
// (1,1)..(3,1), the exit at (3,1) and the player at (1,1).
func makeCorridorGame(t *testing.T) *Game {
	t.Helper()
	grid := world.NewGrid(5, 3)
	for x := 1; x <= 3; x++ {
		grid.Set(world.Coord{X: x, Y: 1}, world.Floor)
	}
	exit := world.Coord{X: 3, Y: 1}
	grid.Set(exit, world.Exit)

	g := NewGame(generator.Params{}, rand.New(rand.NewSource(1)))
	g.Reset(&generator.Maze{Grid: grid, Start: world.Coord{X: 1, Y: 1}, Exit: exit}, 1)
	return g
}

func TestNewGame_StartsWithoutMaze(t *testing.T) {
	g := NewGame(generator.Params{}, rand.New(rand.NewSource(1)))
	if !g.IsFinished() {
		t.Error("NewGame without Reset should not be Playing")
	}
	if res := g.AttemptMove(world.Right); res.Moved {
		t.Error("AttemptMove without a grid moved the player")
	}
}

func TestReset_StartsPlaying(t *testing.T) {
	g := makeCorridorGame(t)
	if g.Phase != Playing || g.Outcome != OutcomeNone {
		t.Errorf("after Reset: phase %v outcome %v, want Playing/None", g.Phase, g.Outcome)
	}
	if g.MazeSeed != 1 {
		t.Errorf("MazeSeed = %d, want 1", g.MazeSeed)
	}
	first := g.MazeID
	g.Reset(&generator.Maze{Grid: g.Grid, Start: world.Coord{X: 1, Y: 1}, Exit: g.Exit}, 2)
	if g.MazeID == first {
		t.Error("Reset did not assign a new MazeID")
	}
}

func TestAttemptMove_WallAndFloor(t *testing.T) {
	g := makeCorridorGame(t)

	tests := []struct {
		dir   world.Direction
		moved bool
		want  world.Coord
	}{
		{world.Up, false, world.Coord{X: 1, Y: 1}},
		{world.Left, false, world.Coord{X: 1, Y: 1}},
		{world.Down, false, world.Coord{X: 1, Y: 1}},
		{world.Right, true, world.Coord{X: 2, Y: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			res := g.AttemptMove(tt.dir)
			if res.Moved != tt.moved {
				t.Errorf("AttemptMove(%v).Moved = %v, want %v", tt.dir, res.Moved, tt.moved)
			}
			if res.ReachedExit {
				t.Errorf("AttemptMove(%v).ReachedExit = true before the exit", tt.dir)
			}
			if g.Player != tt.want {
				t.Errorf("player = %v, want %v", g.Player, tt.want)
			}
		})
	}
	if g.Moves != 1 {
		t.Errorf("Moves = %d, want 1", g.Moves)
	}
}

func TestAttemptMove_ReachExitOncePerCycle(t *testing.T) {
	g := makeCorridorGame(t)
	var outcomes []Outcome
	g.OnFinished(func(o Outcome) { outcomes = append(outcomes, o) })

	g.AttemptMove(world.Right)
	res := g.AttemptMove(world.Right)
	if !res.Moved || !res.ReachedExit {
		t.Fatalf("move onto exit = %+v, want Moved and ReachedExit", res)
	}
	if g.Phase != Finished || g.Outcome != OutcomeEscaped {
		t.Errorf("after exit: phase %v outcome %v, want Finished/Escaped", g.Phase, g.Outcome)
	}

	// Finished is terminal: stepping off and back on reports nothing.
	if res := g.AttemptMove(world.Left); res.Moved {
		t.Error("move accepted after Finished")
	}
	if g.OnTimeout() {
		t.Error("OnTimeout after Finished returned true")
	}
	if len(outcomes) != 1 || outcomes[0] != OutcomeEscaped {
		t.Errorf("observer outcomes = %v, want [Escaped]", outcomes)
	}
}

func TestOnTimeout_FinishesWithoutMoving(t *testing.T) {
	g := makeCorridorGame(t)
	var got Outcome
	g.OnFinished(func(o Outcome) { got = o })

	before := g.Player
	if !g.OnTimeout() {
		t.Fatal("OnTimeout while Playing returned false")
	}
	if g.Player != before {
		t.Errorf("timeout moved the player to %v", g.Player)
	}
	if got != OutcomeTimedOut || g.Outcome != OutcomeTimedOut {
		t.Errorf("outcome = %v (observer %v), want TimedOut", g.Outcome, got)
	}
}

func TestAttemptMove_BoundaryRegardlessOfContent(t *testing.T) {
	// All-floor grid: only the bounds stop the player.
	grid := world.NewGrid(3, 3)
	grid.ForEachCell(func(c world.Coord, _ world.Tag) { grid.Set(c, world.Floor) })
	grid.Set(world.Coord{X: 2, Y: 2}, world.Exit)

	g := NewGame(generator.Params{}, rand.New(rand.NewSource(1)))
	g.Reset(&generator.Maze{Grid: grid, Start: world.Coord{X: 0, Y: 0}, Exit: world.Coord{X: 2, Y: 2}}, 1)

	if res := g.AttemptMove(world.Up); res.Moved {
		t.Error("Up from row 0 moved")
	}
	if res := g.AttemptMove(world.Left); res.Moved {
		t.Error("Left from column 0 moved")
	}
	if g.Player != (world.Coord{X: 0, Y: 0}) {
		t.Errorf("player = %v, want (0,0)", g.Player)
	}
}

func TestAttemptMove_LegalityOnGeneratedMaze(t *testing.T) {
	params := generator.Params{Width: 21, Height: 15, MinRegionSize: 3, MaxSplitDepth: generator.DefaultMaxSplitDepth}
	maze, err := generator.Generate(params, rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatal(err)
	}
	g := NewGame(params, rand.New(rand.NewSource(9)))
	snapshot := maze.Grid.String()

	// Place the player on every walkable cell and try every direction.
	maze.Grid.ForEachCell(func(c world.Coord, tag world.Tag) {
		if !tag.Walkable() || c == maze.Exit {
			return
		}
		for _, dir := range world.AllDirections() {
			g.Reset(maze, 9)
			g.Player = c
			res := g.AttemptMove(dir)

			target := c.Step(dir)
			legal := maze.Grid.InBounds(target) && maze.Grid.At(target) != world.Wall
			if res.Moved != legal {
				t.Fatalf("from %v %v: Moved = %v, want %v", c, dir, res.Moved, legal)
			}
			want := c
			if legal {
				want = target
			}
			if g.Player != want {
				t.Fatalf("from %v %v: player = %v, want %v", c, dir, g.Player, want)
			}
			if res.ReachedExit != (legal && target == maze.Exit) {
				t.Fatalf("from %v %v: ReachedExit = %v", c, dir, res.ReachedExit)
			}
		}
	})

	if maze.Grid.String() != snapshot {
		t.Error("moves mutated the grid")
	}
}

func TestAddMessage_KeepsLastFive(t *testing.T) {
	g := NewGame(generator.Params{}, nil)
	for _, m := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		g.AddMessage(m)
	}
	if len(g.Messages) != 5 || g.Messages[0] != "c" || g.Messages[4] != "g" {
		t.Errorf("Messages = %v, want [c d e f g]", g.Messages)
	}
	g.ClearMessages()
	if len(g.Messages) != 0 {
		t.Errorf("after ClearMessages: %v", g.Messages)
	}
}
