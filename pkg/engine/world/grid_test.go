package world

import (
	"testing"
)

// gridFromRows builds a grid from '#', '.' and 'E' rows.
func gridFromRows(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range row {
			switch ch {
			case '.':
				g.Set(Coord{X: x, Y: y}, Floor)
			case 'E':
				g.Set(Coord{X: x, Y: y}, Exit)
			}
		}
	}
	return g
}

func TestNewGrid_AllWall(t *testing.T) {
	g := NewGrid(4, 3)
	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("NewGrid(4, 3) = %dx%d, want 4x3", g.Width(), g.Height())
	}
	if n := g.Count(func(tag Tag) bool { return tag != Wall }); n != 0 {
		t.Errorf("fresh grid has %d non-wall cells, want 0", n)
	}
}

func TestGrid_AtOutOfBoundsIsWall(t *testing.T) {
	g := gridFromRows(t, "..", "..")
	for _, c := range []Coord{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if got := g.At(c); got != Wall {
			t.Errorf("At(%v) = %v, want Wall", c, got)
		}
		if g.Set(c, Floor) {
			t.Errorf("Set(%v) = true, want false for out of bounds", c)
		}
	}
}

func TestGrid_CarveKeepsExit(t *testing.T) {
	g := NewGrid(3, 3)
	c := Coord{X: 1, Y: 1}
	g.Set(c, Exit)
	g.Carve(c)
	if got := g.At(c); got != Exit {
		t.Errorf("Carve over Exit: At = %v, want Exit", got)
	}
}

func TestGrid_IsOnPerimeter(t *testing.T) {
	g := NewGrid(5, 4)
	tests := []struct {
		c    Coord
		want bool
	}{
		{Coord{0, 0}, true},
		{Coord{4, 2}, true},
		{Coord{2, 3}, true},
		{Coord{2, 2}, false},
		{Coord{5, 0}, false},
	}
	for _, tt := range tests {
		if got := g.IsOnPerimeter(tt.c); got != tt.want {
			t.Errorf("IsOnPerimeter(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestGrid_RowsIsACopy(t *testing.T) {
	g := gridFromRows(t, "#.#")
	rows := g.Rows()
	rows[0][1] = Wall
	if g.At(Coord{X: 1, Y: 0}) != Floor {
		t.Error("mutating Rows() result changed the grid")
	}
}

func TestGrid_EqualAndString(t *testing.T) {
	a := gridFromRows(t, "###", "#E#", "###")
	b := gridFromRows(t, "###", "#E#", "###")
	if !a.Equal(b) {
		t.Error("identical grids are not Equal")
	}
	b.Set(Coord{X: 1, Y: 1}, Floor)
	if a.Equal(b) {
		t.Error("different grids are Equal")
	}
	if got, want := a.String(), "###\n#E#\n###\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestGrid_Reachable(t *testing.T) {
	g := gridFromRows(t,
		"#####",
		"#..##",
		"##.##",
		"####.",
		"##E..",
	)
	got := g.Reachable(Coord{X: 1, Y: 1})
	if got.Size() != 3 {
		t.Errorf("Reachable from (1,1) size = %d, want 3", got.Size())
	}
	if got.Has(Coord{X: 2, Y: 4}) {
		t.Error("isolated exit reported reachable")
	}
	if g.IsConnected(Coord{X: 1, Y: 1}) {
		t.Error("IsConnected = true for a split grid")
	}
	if n := g.Reachable(Coord{X: 0, Y: 0}).Size(); n != 0 {
		t.Errorf("Reachable from wall size = %d, want 0", n)
	}
}

func TestDirection_DeltaAndOpposite(t *testing.T) {
	for _, d := range AllDirections() {
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%v and its opposite do not cancel: (%d,%d) + (%d,%d)", d, dx, dy, ox, oy)
		}
		if abs(dx)+abs(dy) != 1 {
			t.Errorf("%v delta (%d,%d) is not a unit step", d, dx, dy)
		}
	}
	if Direction(42).IsValid() {
		t.Error("Direction(42).IsValid() = true")
	}
	if dx, dy := Direction(42).Delta(); dx != 0 || dy != 0 {
		t.Errorf("invalid direction delta = (%d,%d), want (0,0)", dx, dy)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
