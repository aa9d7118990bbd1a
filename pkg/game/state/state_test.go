package state

import (
	"testing"

	"chress/pkg/engine/world"
	"chress/pkg/game/animation"
	"chress/pkg/game/entities"
	gameworld "chress/pkg/game/world"
	"chress/pkg/game/zone"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return NewGame(zone.Zone{}, gameworld.NewGrid(10))
}

func TestNewGame_VisitsHome(t *testing.T) {
	g := newTestGame(t)
	if !g.HasVisited("0,0:0") {
		t.Error("home zone not marked visited")
	}
	if g.Player.X != 5 || g.Player.Y != 5 {
		t.Errorf("player at (%d,%d), want (5,5)", g.Player.X, g.Player.Y)
	}
}

func TestEnterZone_RestoresStoredGrid(t *testing.T) {
	g := newTestGame(t)
	home := g.Grid
	calls := 0
	fresh := func(zone.Zone) *gameworld.Grid {
		calls++
		return gameworld.NewGrid(10)
	}

	g.EnterZone(zone.Zone{X: 1}, fresh)
	if g.Grid == home || calls != 1 {
		t.Fatalf("EnterZone did not generate a new grid (calls=%d)", calls)
	}
	g.EnterZone(zone.Zone{}, fresh)
	if g.Grid != home || calls != 1 {
		t.Errorf("returning home regenerated the grid (calls=%d)", calls)
	}
	if g.Visited.Size() != 2 {
		t.Errorf("Visited size = %d, want 2", g.Visited.Size())
	}
}

func TestTurnManager_QueueOrder(t *testing.T) {
	a := entities.NewEnemy(entities.Zard, 0, 0)
	b := entities.NewEnemy(entities.Lizord, 1, 0)
	dead := entities.NewEnemy(entities.Lizardy, 2, 0)
	dead.Health = 0

	var tm TurnManager
	tm.BeginEnemyTurn([]*entities.Enemy{a, dead, b})
	if pos, ok := tm.QueuePosition(b); !ok || pos != 2 {
		t.Errorf("QueuePosition(b) = %d, %v, want 2", pos, ok)
	}

	first, _ := tm.Next()
	if first != a {
		t.Errorf("first = %v, want a", first)
	}
	if pos, _ := tm.QueuePosition(b); pos != 1 {
		t.Errorf("after pop QueuePosition(b) = %d, want 1", pos)
	}
	tm.Next()
	if _, ok := tm.Next(); ok || tm.Phase != PlayerTurn {
		t.Errorf("empty queue: ok=%v phase=%v, want player turn", ok, tm.Phase)
	}
}

func TestTransientState_BombAndCharge(t *testing.T) {
	var ts TransientState
	ts.EnterBombPlacement([]world.Point{{X: 1, Y: 2}})
	if !ts.IsBombPlacementMode() || !ts.CanPlaceBombAt(1, 2) || ts.CanPlaceBombAt(2, 2) {
		t.Error("bomb placement positions not honoured")
	}

	ts.SetPendingCharge(Charge{To: world.Point{X: 3, Y: 3}})
	if c, ok := ts.PendingCharge(); !ok || c.To.X != 3 {
		t.Errorf("PendingCharge = %+v, %v", c, ok)
	}

	ts.Reset()
	if ts.IsBombPlacementMode() {
		t.Error("Reset left bomb mode on")
	}
	if _, ok := ts.PendingCharge(); ok {
		t.Error("Reset left a pending charge")
	}
}

func TestGame_IsBlocked(t *testing.T) {
	g := newTestGame(t)
	g.Grid.Set(0, 0, gameworld.T(gameworld.Rock))
	g.Enemies.Add(entities.NewEnemy(entities.Zard, 1, 1))

	if !g.IsBlocked(0, 0) || !g.IsBlocked(1, 1) || !g.IsBlocked(5, 5) || !g.IsBlocked(-1, 0) {
		t.Error("expected rock, enemy, player and off-grid cells to block")
	}
	if g.IsBlocked(2, 2) {
		t.Error("open floor blocked")
	}
}

func TestTick_PrunesFinishedDeadEnemies(t *testing.T) {
	g := newTestGame(t)
	e := entities.NewEnemy(entities.Lizardy, 1, 1)
	g.Enemies.Add(e)
	e.Health = 0
	e.Effects.Smokes = append(e.Effects.Smokes, animation.NewSmoke(1, 1))

	g.Tick()
	if g.Enemies.Len() != 1 {
		t.Fatal("dead enemy removed while its smoke is playing")
	}
	for i := 0; i < animation.SmokeSequence.Total; i++ {
		g.Tick()
	}
	if g.Enemies.Len() != 0 {
		t.Errorf("Len() = %d after smoke finished, want 0", g.Enemies.Len())
	}
}
