package structure

import (
	"testing"

	"chress/pkg/game/world"
)

// shackGrid is a 10×10 floor grid with a 3×3 shack at cols 2-4, rows 2-4 and
// its door at (3, 4).
func shackGrid(t *testing.T) *world.Grid {
	t.Helper()
	g := world.NewGrid(10)
	g.Fill(2, 2, 3, 3, world.T(world.Shack))
	g.Set(3, 4, world.T(world.Port))
	return g
}

func TestFindShackPosition_BodyAndDoor(t *testing.T) {
	g := shackGrid(t)
	want := Anchor{StartX: 2, StartY: 2}

	for _, pos := range [][2]int{{3, 3}, {3, 4}, {2, 4}, {4, 4}, {2, 2}} {
		got, ok := FindShackPosition(pos[0], pos[1], g, false)
		if !ok || got != want {
			t.Errorf("FindShackPosition(%d,%d) = %+v, %v, want %+v", pos[0], pos[1], got, ok, want)
		}
	}
}

func TestFindShackPosition_DoorMustBeMiddle(t *testing.T) {
	g := shackGrid(t)
	g.Set(3, 4, world.T(world.Shack))
	g.Set(2, 4, world.T(world.Port))

	if a, ok := FindShackPosition(3, 3, g, false); ok {
		t.Errorf("FindShackPosition with misplaced door = %+v, want none", a)
	}
}

func TestFindShackPosition_StrictRejectsDoorCell(t *testing.T) {
	g := shackGrid(t)
	if _, ok := FindShackPosition(3, 4, g, true); ok {
		t.Error("strict lookup on the door cell should fail")
	}
	if _, ok := FindShackPosition(3, 3, g, true); !ok {
		t.Error("strict lookup on a body cell should succeed")
	}
}

func TestFindHousePosition_AllHouseOrPort(t *testing.T) {
	g := world.NewGrid(10)
	g.Fill(5, 6, 4, 3, world.T(world.House))
	g.Set(6, 8, world.T(world.Port))

	for y := 6; y < 9; y++ {
		for x := 5; x < 9; x++ {
			a, ok := FindHousePosition(x, y, g, false)
			if !ok || a != (Anchor{StartX: 5, StartY: 6}) {
				t.Errorf("FindHousePosition(%d,%d) = %+v, %v", x, y, a, ok)
			}
			if !a.Contains(House, x, y) {
				t.Errorf("anchor %+v does not contain (%d,%d)", a, x, y)
			}
		}
	}
}

func TestFindHousePosition_WallInsideBlockFails(t *testing.T) {
	g := world.NewGrid(10)
	g.Fill(1, 1, 4, 3, world.T(world.House))
	g.Set(3, 2, world.T(world.Wall))

	if a, ok := FindHousePosition(1, 1, g, false); ok {
		t.Errorf("FindHousePosition = %+v, want none", a)
	}
}

func TestFindHousePosition_ClippedAtGridEdge(t *testing.T) {
	g := world.NewGrid(10)
	// Only three columns fit before the right edge.
	g.Fill(7, 0, 3, 3, world.T(world.House))

	if _, ok := FindHousePosition(8, 1, g, false); ok {
		t.Error("a house cut off by the grid edge should not resolve")
	}
}

func TestFindCisternPosition(t *testing.T) {
	g := world.NewGrid(10)
	g.Set(4, 4, world.T(world.Cistern))
	g.Set(4, 5, world.T(world.Port))

	a, ok := FindCisternPosition(4, 5, g, false)
	if !ok || a != (Anchor{StartX: 4, StartY: 4}) {
		t.Errorf("FindCisternPosition(door) = %+v, %v", a, ok)
	}
	col, row := a.Part(4, 5)
	if col != 0 || row != 1 {
		t.Errorf("Part = (%d,%d), want (0,1)", col, row)
	}
	if _, ok := FindCisternPosition(4, 5, g, true); ok {
		t.Error("strict lookup on the cistern door should fail")
	}
}

func TestFindWellAndDeadTree(t *testing.T) {
	g := world.NewGrid(10)
	Paint(Well, Anchor{StartX: 0, StartY: 0}, g)
	Paint(DeadTree, Anchor{StartX: 8, StartY: 8}, g)

	if a, ok := FindWellPosition(1, 1, g, true); !ok || a != (Anchor{}) {
		t.Errorf("FindWellPosition = %+v, %v", a, ok)
	}
	if a, ok := FindDeadTreePosition(8, 9, g, false); !ok || a != (Anchor{StartX: 8, StartY: 8}) {
		t.Errorf("FindDeadTreePosition = %+v, %v", a, ok)
	}
	if _, ok := FindWellPosition(2, 2, g, false); ok {
		t.Error("floor cell resolved as a well")
	}
}

func TestResolvePort_Order(t *testing.T) {
	g := shackGrid(t)
	Paint(Cistern, Anchor{StartX: 7, StartY: 0}, g)

	k, a, ok := ResolvePort(3, 4, g)
	if !ok || k != Shack || a != (Anchor{StartX: 2, StartY: 2}) {
		t.Errorf("ResolvePort(shack door) = %v %+v %v", k, a, ok)
	}
	k, _, ok = ResolvePort(7, 1, g)
	if !ok || k != Cistern {
		t.Errorf("ResolvePort(cistern door) = %v %v", k, ok)
	}

	g.Set(0, 9, world.T(world.Port))
	if _, _, ok := ResolvePort(0, 9, g); ok {
		t.Error("freestanding port resolved to a structure")
	}
}

func TestPaint_OutOfBounds(t *testing.T) {
	g := world.NewGrid(10)
	if Paint(House, Anchor{StartX: 8, StartY: 0}, g) {
		t.Error("Paint past the edge returned true")
	}
	if !Paint(Shack, Anchor{StartX: 0, StartY: 0}, g) {
		t.Fatal("Paint shack failed")
	}
	if tt, _ := world.TypeAt(g, 1, 2); tt != world.Port {
		t.Errorf("painted shack door = %v, want port", tt)
	}
}

func TestPaint_HouseDoorResolves(t *testing.T) {
	g := world.NewGrid(10)
	Paint(House, Anchor{StartX: 3, StartY: 3}, g)

	if tt, _ := world.TypeAt(g, 4, 5); tt != world.Port {
		t.Fatalf("house door = %v, want port", tt)
	}
	k, a, ok := ResolvePort(4, 5, g)
	if !ok || k != House || a != (Anchor{StartX: 3, StartY: 3}) {
		t.Errorf("ResolvePort(house door) = %v %+v %v", k, a, ok)
	}
}

func TestKindOf(t *testing.T) {
	if k, ok := KindOf(world.Cistern); !ok || k != Cistern {
		t.Errorf("KindOf(cistern) = %v, %v", k, ok)
	}
	if _, ok := KindOf(world.Port); ok {
		t.Error("KindOf(port) found a structure")
	}
}
