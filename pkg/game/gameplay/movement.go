package gameplay

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"chress/pkg/engine/world"
	"chress/pkg/game/generator"
	"chress/pkg/game/state"
	"chress/pkg/game/structure"
	gameworld "chress/pkg/game/world"
	"chress/pkg/game/zone"
)

// CanAct reports whether the player may take a turn now
func CanAct(g *state.Game) bool {
	return g.Turn.Phase == state.PlayerTurn && !g.Player.IsDead()
}

// MovePlayer attempts one orthogonal step. Stepping into an enemy attacks
// it, stepping into an obstacle bumps, and stepping off a gate changes zone.
// Returns true if the turn was used.
func MovePlayer(g *state.Game, dir world.Direction) bool {
	if !CanAct(g) {
		return false
	}
	p := g.Player
	p.Aim = dir
	to := p.Position().Step(dir)
	dx, dy := dir.Delta()

	if g.Transient.IsBombPlacementMode() {
		if g.Transient.CanPlaceBombAt(to.X, to.Y) {
			return PlaceBomb(g, to.X, to.Y)
		}
		g.Transient.ExitBombPlacement()
		return false
	}
	g.Transient.ClearPendingCharge()

	if !g.Grid.InBounds(to.X, to.Y) {
		return leaveZone(g, dir)
	}

	if e, ok := g.Enemies.FindAt(to.X, to.Y); ok {
		p.Motion.StartBump(dx, dy)
		hitEnemy(g, e, 1)
		endPlayerTurn(g)
		return true
	}

	tile, _ := g.Grid.At(to.X, to.Y)
	if tile.Effective().IsObstacle() || tile.JustPlaced {
		p.Motion.StartBump(dx, dy)
		return false
	}

	p.MoveTo(to.X, to.Y)
	pickUp(g, to)
	if tile.Is(gameworld.Port) && enterPort(g, to, tile) {
		return true
	}
	endPlayerTurn(g)
	return true
}

// leaveZone walks off a surface gate into the neighbouring zone
func leaveZone(g *state.Game, dir world.Direction) bool {
	p := g.Player
	here, _ := g.Grid.At(p.X, p.Y)
	if g.Zone.Dimension != zone.Surface || !here.Is(gameworld.Exit) {
		dx, dy := dir.Delta()
		p.Motion.StartBump(dx, dy)
		return false
	}

	dx, dy := dir.Delta()
	next := zone.Zone{X: g.Zone.X + dx, Y: g.Zone.Y + dy}
	at := p.Position()
	switch {
	case dx > 0:
		at.X = 0
	case dx < 0:
		at.X = g.Grid.Cols() - 1
	case dy > 0:
		at.Y = 0
	case dy < 0:
		at.Y = g.Grid.Rows() - 1
	}
	changeZone(g, next, at)
	logMessage(g, fmt.Sprintf(gotext.Get("ENTERED_ZONE"), next.Level()))
	return true
}

// enterPort follows a doorway, hole or stair. Returns false for ports that
// lead nowhere (grates).
func enterPort(g *state.Game, at world.Point, tile gameworld.Tile) bool {
	z := g.Zone
	size := g.Grid.Cols()
	centre := world.Point{X: size / 2, Y: size / 2}

	switch z.Dimension {
	case zone.Interior:
		climbOut(g, z)
		return true

	case zone.Underground:
		switch tile.PortKind {
		case gameworld.PortStairUp:
			if z.EffectiveDepth() <= 1 {
				climbOut(g, z)
				return true
			}
			up := zone.Zone{X: z.X, Y: z.Y, Dimension: zone.Underground, Depth: z.EffectiveDepth() - 1}
			g.EnterZone(up, generator.Default.Generate)
			if down, ok := findPort(g.Grid, gameworld.PortStairDown); ok {
				placeNear(g, down.Step(world.North))
			} else {
				placeNear(g, centre)
			}
			spawnEnemies(g)
			return true
		case gameworld.PortStairDown:
			down := zone.Zone{X: z.X, Y: z.Y, Dimension: zone.Underground, Depth: z.EffectiveDepth() + 1}
			changeZone(g, down, centre)
			return true
		}
		return false

	default:
		g.Entrances = append(g.Entrances, at)
		if k, _, ok := structure.ResolvePort(at.X, at.Y, g.Grid); ok && k != structure.Cistern {
			changeZone(g, zone.Zone{X: z.X, Y: z.Y, Dimension: zone.Interior}, world.Point{X: size / 2, Y: size - 2})
			logMessage(g, fmt.Sprintf(gotext.Get("ENTERED_BUILDING"), k))
			return true
		}
		changeZone(g, zone.Zone{X: z.X, Y: z.Y, Dimension: zone.Underground, Depth: zone.DefaultDepth}, centre)
		logMessage(g, gotext.Get("WENT_UNDERGROUND"))
		return true
	}
}

// climbOut returns to the surface cell the player went in through
func climbOut(g *state.Game, from zone.Zone) {
	surface := zone.Zone{X: from.X, Y: from.Y}
	at := world.Point{X: g.Grid.Cols() / 2, Y: g.Grid.Rows() / 2}
	if n := len(g.Entrances); n > 0 {
		at = g.Entrances[n-1].Step(world.South)
		g.Entrances = g.Entrances[:n-1]
	}
	changeZone(g, surface, at)
}

// pickUp collects the item on the player's cell
func pickUp(g *state.Game, at world.Point) {
	tile, _ := g.Grid.At(at.X, at.Y)
	t := tile.Effective()
	if !t.IsItem() || t.IsObstacle() || tile.JustPlaced {
		return
	}

	p := g.Player
	switch t {
	case gameworld.Food, gameworld.Water:
		p.Heal(1)
	case gameworld.Heart:
		p.MaxHealth++
		p.Heal(p.MaxHealth)
	case gameworld.Bomb:
		p.Bombs++
	case gameworld.Bow:
		p.Arrows += 3
	case gameworld.Horse:
		p.HasHorse = true
		logMessage(g, gotext.Get("HORSE_FOUND"))
	case gameworld.Note:
		logMessage(g, gotext.Get("NOTE_FOUND"))
	default:
		p.Points++
	}
	p.ShowPickup(t)
	g.Grid.Set(at.X, at.Y, gameworld.T(gameworld.Floor))
}
