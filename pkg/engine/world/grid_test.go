package world

import "testing"

func TestGrid_AtOutOfBounds(t *testing.T) {
	g := NewGrid(3, 2, 7)
	if _, ok := g.At(-1, 0); ok {
		t.Error("At(-1, 0) ok = true, want false")
	}
	if _, ok := g.At(3, 0); ok {
		t.Error("At(3, 0) ok = true, want false")
	}
	if _, ok := g.At(0, 2); ok {
		t.Error("At(0, 2) ok = true, want false")
	}
	if v, ok := g.At(2, 1); !ok || v != 7 {
		t.Errorf("At(2, 1) = %v, %v, want 7, true", v, ok)
	}
}

func TestGrid_SetAndNeighbor(t *testing.T) {
	g := NewGrid(3, 3, 0)
	g.Set(2, 0, 5)

	if v, ok := g.Neighbor(1, 1, NorthEast); !ok || v != 5 {
		t.Errorf("Neighbor(1,1,NorthEast) = %v, %v, want 5, true", v, ok)
	}
	if _, ok := g.Neighbor(0, 0, NorthWest); ok {
		t.Error("Neighbor off the corner should not be ok")
	}
	if g.Set(3, 3, 1) {
		t.Error("Set out of bounds returned true")
	}
}

func TestGrid_FromRowsIsRowMajor(t *testing.T) {
	g := FromRows([][]int{
		{1, 2, 3},
		{4, 5, 6},
	})
	if g.Cols() != 3 || g.Rows() != 2 {
		t.Fatalf("dims = %dx%d, want 3x2", g.Cols(), g.Rows())
	}
	if v, _ := g.At(2, 1); v != 6 {
		t.Errorf("At(2,1) = %d, want 6", v)
	}
}

func TestGrid_FillClipsToBounds(t *testing.T) {
	g := NewGrid(4, 4, 0)
	g.Fill(2, 2, 5, 5, 9)

	count := 0
	g.ForEach(func(x, y, v int) {
		if v == 9 {
			count++
		}
	})
	if count != 4 {
		t.Errorf("filled cells = %d, want 4", count)
	}
}

func TestDirection_OppositeAndDelta(t *testing.T) {
	for _, d := range AllDirections() {
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx != -ox || dy != -oy {
			t.Errorf("%v opposite delta = (%d,%d), want (%d,%d)", d, ox, oy, -dx, -dy)
		}
	}
	if !NorthEast.IsDiagonal() || North.IsDiagonal() {
		t.Error("IsDiagonal mismatch")
	}
}
