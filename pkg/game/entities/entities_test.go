package entities

import (
	"testing"

	"chress/pkg/engine/world"
	gameworld "chress/pkg/game/world"
)

func openGrid(t *testing.T) *gameworld.Grid {
	t.Helper()
	return gameworld.NewGrid(10)
}

func TestPattern_RookStopsAtObstacle(t *testing.T) {
	g := openGrid(t)
	g.Set(5, 2, gameworld.T(gameworld.Wall))

	targets := Rook.Targets(world.Point{X: 5, Y: 5}, g, nil)
	for _, pt := range targets {
		if pt.X == 5 && pt.Y <= 2 {
			t.Errorf("rook reached %v through the wall at (5,2)", pt)
		}
	}
	if !Rook.Reaches(world.Point{X: 5, Y: 5}, world.Point{X: 5, Y: 3}, g, nil) {
		t.Error("rook should reach (5,3)")
	}
	if !Rook.Reaches(world.Point{X: 5, Y: 5}, world.Point{X: 0, Y: 5}, g, nil) {
		t.Error("rook should slide to the west edge")
	}
}

func TestPattern_BlockedStopsOnPiece(t *testing.T) {
	g := openGrid(t)
	piece := world.Point{X: 3, Y: 3}
	blocked := func(pt world.Point) bool { return pt == piece }

	if !Bishop.Reaches(world.Point{X: 1, Y: 1}, piece, g, blocked) {
		t.Error("bishop should reach the blocking piece itself")
	}
	if Bishop.Reaches(world.Point{X: 1, Y: 1}, world.Point{X: 4, Y: 4}, g, blocked) {
		t.Error("bishop slid through a piece")
	}
}

func TestPattern_KnightLeapsOverWalls(t *testing.T) {
	g := openGrid(t)
	g.Fill(4, 4, 3, 3, gameworld.T(gameworld.Wall))
	g.Set(5, 5, gameworld.T(gameworld.Floor))

	if !Knight.Reaches(world.Point{X: 5, Y: 5}, world.Point{X: 6, Y: 7}, g, nil) {
		t.Error("knight should leap out of an enclosure")
	}
	if got := len(Knight.Targets(world.Point{X: 0, Y: 0}, g, nil)); got != 2 {
		t.Errorf("corner knight targets = %d, want 2", got)
	}
}

func TestAttackRange_LizardyIsOrthogonalStep(t *testing.T) {
	g := openGrid(t)
	e := NewEnemy(Lizardy, 4, 4)

	cells := AttackRange(e, g)
	if cells.Size() != 4 {
		t.Fatalf("AttackRange size = %d, want 4", cells.Size())
	}
	for _, pt := range []world.Point{{X: 4, Y: 3}, {X: 5, Y: 4}, {X: 4, Y: 5}, {X: 3, Y: 4}} {
		if !cells.Has(pt) {
			t.Errorf("AttackRange missing %v", pt)
		}
	}
	if cells.Has(world.Point{X: 5, Y: 5}) {
		t.Error("lizardy threatens a diagonal")
	}
}

func TestEnemyCollection_FindAtAndRemove(t *testing.T) {
	c := NewEnemyCollection()
	a := NewEnemy(Zard, 1, 1)
	b := NewEnemy(Lizord, 2, 2)
	c.Add(a)
	c.Add(b)

	if a.ID == b.ID {
		t.Errorf("ids not unique: %d, %d", a.ID, b.ID)
	}
	if got, ok := c.FindAt(2, 2); !ok || got != b {
		t.Errorf("FindAt(2,2) = %v, %v", got, ok)
	}

	b.Health = 0
	if _, ok := c.FindAt(2, 2); ok {
		t.Error("FindAt returned a dead enemy")
	}
	if got := len(c.Living()); got != 1 {
		t.Errorf("Living() = %d, want 1", got)
	}

	c.Remove(a)
	if c.Len() != 1 || c.All()[0] != b {
		t.Errorf("after Remove: %v", c.All())
	}
}

func TestEnemy_FreezeSetsMotion(t *testing.T) {
	e := NewEnemy(Lizardo, 0, 0)
	e.Freeze(1)
	if !e.IsFrozen() || !e.Motion.Frozen {
		t.Fatal("Freeze did not mark the enemy frozen")
	}
	e.Thaw()
	if e.IsFrozen() || e.Motion.Frozen {
		t.Error("Thaw left the enemy frozen")
	}
}

func TestEnemy_MoveToStartsLift(t *testing.T) {
	e := NewEnemy(Lizardeaux, 5, 5)
	e.MoveTo(2, 5)
	if !e.Motion.Sliding() || !e.FacingLeft {
		t.Errorf("MoveTo: sliding=%v facingLeft=%v", e.Motion.Sliding(), e.FacingLeft)
	}
	if e.Motion.Lift.FromX != 5 || e.Motion.Lift.ToX != 2 {
		t.Errorf("lift = %+v", e.Motion.Lift)
	}
}

func TestKind_UnknownFallsBack(t *testing.T) {
	if got := Kind("gecko").Info().Name; got != "Lizardy" {
		t.Errorf("unknown kind info = %q, want Lizardy", got)
	}
	if !Zard.PixelPerfect() || Lazerd.PixelPerfect() {
		t.Error("unexpected pixel-perfect flags")
	}
}

func TestPlayer_HealCapsAtMax(t *testing.T) {
	p := NewPlayer(0, 0)
	p.TakeDamage(2)
	p.Heal(5)
	if p.Health != p.MaxHealth {
		t.Errorf("Health = %d, want %d", p.Health, p.MaxHealth)
	}
	p.TakeDamage(10)
	if !p.IsDead() || p.Health != 0 {
		t.Errorf("Health = %d, want 0 and dead", p.Health)
	}
}
