// Package gameplay provides core game logic for player movement and interactions.
package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"chress/pkg/engine/world"
	"chress/pkg/game/generator"
	"chress/pkg/game/state"
	gameworld "chress/pkg/game/world"
	"chress/pkg/game/zone"
)

// BuildGame creates a new game instance starting in zone start
func BuildGame(start zone.Zone) *state.Game {
	g := state.NewGame(start, generator.Default.Generate(start))
	spawnEnemies(g)

	g.ClearMessages()
	logMessage(g, gotext.Get("WELCOME"))
	return g
}

// Update advances one frame: animations decay, then the next queued enemy
// acts once nothing is still moving
func Update(g *state.Game) {
	g.Tick()
	if g.Turn.Phase == state.EnemyTurn && !g.Animating() {
		AdvanceEnemyTurn(g)
	}
}

// changeZone moves the player into another zone and places them on at, or
// the nearest open cell to it
func changeZone(g *state.Game, z zone.Zone, at world.Point) {
	g.EnterZone(z, generator.Default.Generate)
	placeNear(g, at)
	spawnEnemies(g)
}

// spawnEnemies fills the current zone with its enemies
func spawnEnemies(g *state.Game) {
	for _, e := range generator.Default.Spawn(g.Zone, g.Grid, g.Player.Position()) {
		g.Enemies.Add(e)
	}
}

// placeNear puts the player on pt if it is open, else on the first open
// neighbour
func placeNear(g *state.Game, pt world.Point) {
	candidates := []world.Point{pt}
	for _, d := range world.AllDirections() {
		candidates = append(candidates, pt.Step(d))
	}
	for _, c := range candidates {
		if t, ok := g.Grid.At(c.X, c.Y); ok && !t.Effective().IsObstacle() {
			g.Player.Place(c.X, c.Y)
			return
		}
	}
	g.Player.Place(pt.X, pt.Y)
}

// findPort returns the first port of the given kind in the grid
func findPort(grid *gameworld.Grid, kind gameworld.PortKind) (world.Point, bool) {
	found, ok := world.Point{}, false
	grid.ForEach(func(x, y int, t gameworld.Tile) {
		if !ok && t.Is(gameworld.Port) && t.PortKind == kind {
			found, ok = world.Point{X: x, Y: y}, true
		}
	})
	return found, ok
}

// logMessage adds a message to the game log
func logMessage(g *state.Game, msg string) {
	g.AddMessage(msg)
}
