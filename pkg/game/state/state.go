package state

import (
	"github.com/zyedidia/generic/mapset"

	"chress/pkg/engine/world"
	"chress/pkg/game/entities"
	gameworld "chress/pkg/game/world"
	"chress/pkg/game/zone"
)

// Game represents the game state for Chress
type Game struct {
	Zone zone.Zone

	Grid *gameworld.Grid

	Player *entities.Player

	Enemies *entities.EnemyCollection

	Turn TurnManager

	Transient TransientState

	// Visited holds the keys of every zone the player has entered
	Visited mapset.Set[string]

	// zones keeps each visited zone's grid so returning restores it
	zones map[string]*gameworld.Grid

	// Entrances stacks the cells the player left through into interiors
	// and caves, so climbing back out lands on the right doorway
	Entrances []world.Point

	Messages []string

	// Multiplier grows with consecutive kills and resets on a turn without one
	Multiplier int
	TurnKills  int

	Bombs []PlacedBomb
}

// PlacedBomb is a lit bomb waiting to go off
type PlacedBomb struct {
	Pos  world.Point
	Fuse int // player turns left
}

// NewGame creates a new game instance starting in zone z
func NewGame(z zone.Zone, grid *gameworld.Grid) *Game {
	g := &Game{
		Zone:       z,
		Grid:       grid,
		Player:     entities.NewPlayer(grid.Cols()/2, grid.Rows()/2),
		Enemies:    entities.NewEnemyCollection(),
		Visited:    mapset.New[string](),
		zones:      make(map[string]*gameworld.Grid),
		Messages:   make([]string, 0),
		Multiplier: 1,
	}
	g.Visited.Put(g.Zone.Key())
	g.zones[g.Zone.Key()] = grid
	return g
}

// CurrentZone returns the zone the player is in
func (g *Game) CurrentZone() zone.Zone {
	return g.Zone
}

// EnterZone switches to another zone. A zone seen before gets its stored
// grid back; otherwise fresh is used and remembered.
func (g *Game) EnterZone(z zone.Zone, fresh func(zone.Zone) *gameworld.Grid) {
	// bombs left burning in the old zone fizzle out
	for _, b := range g.Bombs {
		g.Grid.Set(b.Pos.X, b.Pos.Y, gameworld.T(gameworld.Floor))
	}

	key := z.Key()
	grid, ok := g.zones[key]
	if !ok {
		grid = fresh(z)
		g.zones[key] = grid
	}
	g.Zone = z
	g.Grid = grid
	g.Visited.Put(key)
	g.Enemies.Clear()
	g.Bombs = nil
	g.Turn.Reset()
	g.Transient.Reset()
}

// HasVisited reports whether the zone key has been entered before
func (g *Game) HasVisited(key string) bool {
	return g.Visited.Has(key)
}

// IsBlocked reports whether a piece cannot stand on (x, y)
func (g *Game) IsBlocked(x, y int) bool {
	t, ok := gameworld.TypeAt(g.Grid, x, y)
	if !ok || t.IsObstacle() {
		return true
	}
	if _, ok := g.Enemies.FindAt(x, y); ok {
		return true
	}
	return g.Player.X == x && g.Player.Y == y
}

// Occupied reports whether a piece stands on the point
func (g *Game) Occupied(p world.Point) bool {
	if _, ok := g.Enemies.FindAt(p.X, p.Y); ok {
		return true
	}
	return g.Player.X == p.X && g.Player.Y == p.Y
}

// Tick decays every animation by one frame. Dead enemies linger until
// their own effects have finished playing.
func (g *Game) Tick() {
	g.Player.Tick()
	var finished []*entities.Enemy
	for _, e := range g.Enemies.All() {
		e.Tick()
		if !e.IsAlive() && !e.Effects.Active() && !e.Motion.Animating() {
			finished = append(finished, e)
		}
	}
	for _, e := range finished {
		g.Enemies.Remove(e)
	}
}

// Animating reports whether any animation that gates input is playing
func (g *Game) Animating() bool {
	if g.Player.Motion.Animating() {
		return true
	}
	for _, e := range g.Enemies.All() {
		if e.Motion.Animating() {
			return true
		}
	}
	return false
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}
