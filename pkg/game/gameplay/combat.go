package gameplay

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"chress/pkg/engine/world"
	"chress/pkg/game/animation"
	"chress/pkg/game/entities"
	"chress/pkg/game/state"
	gameworld "chress/pkg/game/world"
)

// Combat tuning
const (
	BombFuse       = 2 // player turns before a placed bomb goes off
	BombRadius     = 1
	ArrowDamage    = 1
	EnemyDamage    = 1
	ChargeBonus    = 1 // extra multiplier for a horse-charge kill
	FreezeOnCharge = 2 // turns neighbours of a charge kill stay frozen
)

// hitEnemy damages an enemy and resolves its death
func hitEnemy(g *state.Game, e *entities.Enemy, damage int) {
	e.TakeDamage(damage)
	if !e.IsAlive() {
		killEnemy(g, e, 0)
	}
}

// killEnemy scores a kill at the current multiplier plus bonus and leaves
// smoke behind
func killEnemy(g *state.Game, e *entities.Enemy, bonus int) {
	e.Health = 0
	e.Effects.Smokes = append(e.Effects.Smokes, animation.NewSmoke(e.X, e.Y))

	mult := g.Multiplier + bonus
	points := e.Kind.Info().Points * mult
	p := g.Player
	p.Points += points
	p.Effects.Points = append(p.Effects.Points, animation.NewPointPopup(e.X, e.Y, points))
	if mult > 1 {
		p.Effects.Multipliers = append(p.Effects.Multipliers, animation.NewMultiplierPopup(e.X, e.Y, mult))
	}
	g.Multiplier = mult + 1
	g.TurnKills++
}

// endPlayerTurn burns bomb fuses, settles the kill streak and hands the
// turn to the enemies
func endPlayerTurn(g *state.Game) {
	burnFuses(g)
	if g.TurnKills == 0 {
		g.Multiplier = 1
	}
	g.TurnKills = 0
	g.Turn.BeginEnemyTurn(g.Enemies.Living())
}

// burnFuses shortens every bomb fuse and detonates the spent ones
func burnFuses(g *state.Game) {
	var lit []state.PlacedBomb
	for _, b := range g.Bombs {
		b.Fuse--
		if b.Fuse > 0 {
			lit = append(lit, b)
			continue
		}
		detonate(g, b.Pos)
	}
	g.Bombs = lit
}

// detonate blows up a bomb: everything within the radius takes a hit and
// rocks and shrubs are cleared
func detonate(g *state.Game, at world.Point) {
	p := g.Player
	p.Effects.Splodes = append(p.Effects.Splodes, animation.NewSplode(at.X, at.Y))
	g.Grid.Set(at.X, at.Y, gameworld.T(gameworld.Floor))

	for y := at.Y - BombRadius; y <= at.Y+BombRadius; y++ {
		for x := at.X - BombRadius; x <= at.X+BombRadius; x++ {
			if t, ok := gameworld.TypeAt(g.Grid, x, y); ok && (t == gameworld.Rock || t == gameworld.Shrubbery) {
				g.Grid.Set(x, y, gameworld.T(gameworld.Floor))
			}
			if e, ok := g.Enemies.FindAt(x, y); ok {
				hitEnemy(g, e, e.Health)
			}
			if p.X == x && p.Y == y {
				p.TakeDamage(1)
			}
		}
	}
}

// ToggleBombPlacement enters or leaves bomb placement. The offered cells
// are the open orthogonal neighbours of the player.
func ToggleBombPlacement(g *state.Game) bool {
	if !CanAct(g) {
		return false
	}
	if g.Transient.IsBombPlacementMode() {
		g.Transient.ExitBombPlacement()
		return true
	}
	if g.Player.Bombs == 0 {
		logMessage(g, gotext.Get("NO_BOMBS"))
		return false
	}

	var cells []world.Point
	for _, d := range world.Orthogonal() {
		pt := g.Player.Position().Step(d)
		if t, ok := g.Grid.At(pt.X, pt.Y); ok && !t.Effective().IsObstacle() && !t.Is(gameworld.Port) && !g.Occupied(pt) {
			cells = append(cells, pt)
		}
	}
	if len(cells) == 0 {
		logMessage(g, gotext.Get("NO_BOMB_ROOM"))
		return false
	}
	g.Transient.EnterBombPlacement(cells)
	return true
}

// PlaceBomb lights a bomb on an offered cell and ends the turn
func PlaceBomb(g *state.Game, x, y int) bool {
	if !g.Transient.CanPlaceBombAt(x, y) {
		return false
	}
	g.Transient.ExitBombPlacement()
	g.Player.Bombs--
	g.Grid.Set(x, y, gameworld.Tile{Type: gameworld.Bomb, JustPlaced: true})
	g.Bombs = append(g.Bombs, state.PlacedBomb{Pos: world.Point{X: x, Y: y}, Fuse: BombFuse})
	endPlayerTurn(g)
	return true
}

// Shoot fires an arrow along the player's aim. It flies until it leaves the
// grid, meets an obstacle or hits an enemy.
func Shoot(g *state.Game) bool {
	if !CanAct(g) {
		return false
	}
	p := g.Player
	if p.Arrows == 0 {
		logMessage(g, gotext.Get("NO_ARROWS"))
		return false
	}
	p.Arrows--
	p.BowShot = animation.NewCountdown(entities.BowShotFrames)

	end := p.Position()
	var target *entities.Enemy
	for {
		next := end.Step(p.Aim)
		t, ok := gameworld.TypeAt(g.Grid, next.X, next.Y)
		if !ok || t.IsObstacle() {
			break
		}
		end = next
		if e, ok := g.Enemies.FindAt(next.X, next.Y); ok {
			target = e
			break
		}
	}

	p.Effects.Arrows = append(p.Effects.Arrows, animation.NewArrow(p.X, p.Y, end.X, end.Y))
	if target != nil {
		hitEnemy(g, target, ArrowDamage)
	}
	endPlayerTurn(g)
	return true
}

// isKnightMove reports whether to is an L-shaped jump from from
func isKnightMove(from, to world.Point) bool {
	dx, dy := to.X-from.X, to.Y-from.Y
	return dx*dx+dy*dy == 5
}

// RequestCharge asks to gallop to a knight-move cell. The charge waits for
// confirmation.
func RequestCharge(g *state.Game, to world.Point) bool {
	p := g.Player
	if !CanAct(g) || !p.HasHorse || !isKnightMove(p.Position(), to) {
		return false
	}
	t, ok := g.Grid.At(to.X, to.Y)
	if !ok || t.Effective().IsObstacle() {
		return false
	}
	c := state.Charge{From: p.Position(), To: to}
	if e, ok := g.Enemies.FindAt(to.X, to.Y); ok {
		c.Target = e.ID
	}
	g.Transient.SetPendingCharge(c)
	return true
}

// ConfirmCharge performs the pending charge. An enemy on the destination
// is trampled for a multiplier bonus and its neighbours are stunned.
func ConfirmCharge(g *state.Game) bool {
	c, ok := g.Transient.PendingCharge()
	if !ok || !CanAct(g) {
		return false
	}
	g.Transient.ClearPendingCharge()
	p := g.Player

	if e, ok := g.Enemies.FindAt(c.To.X, c.To.Y); ok {
		killEnemy(g, e, ChargeBonus)
		for _, other := range g.Enemies.Living() {
			if other.Position().ChebyshevDistance(c.To) == 1 {
				other.Freeze(FreezeOnCharge)
			}
		}
		p.Motion.StartBackflip()
	}
	p.MoveTo(c.To.X, c.To.Y)
	p.Effects.Charges = append(p.Effects.Charges, animation.NewHorseCharge(c.From.X, c.From.Y, c.To.X, c.To.Y))
	pickUp(g, c.To)
	endPlayerTurn(g)
	return true
}

// CancelCharge drops the pending charge
func CancelCharge(g *state.Game) {
	g.Transient.ClearPendingCharge()
}

// Wait passes the turn
func Wait(g *state.Game) bool {
	if !CanAct(g) {
		return false
	}
	endPlayerTurn(g)
	return true
}

// AdvanceEnemyTurn lets the next queued enemy act. An enemy that reaches
// the player attacks in place; otherwise it takes the move that brings it
// closest. Returns false when the queue is empty.
func AdvanceEnemyTurn(g *state.Game) bool {
	e, ok := g.Turn.Next()
	if !ok {
		return false
	}
	if e.IsFrozen() {
		e.Thaw()
		return true
	}

	pattern := e.Kind.Info().Pattern
	player := g.Player.Position()
	blocked := g.Occupied

	if pattern.Reaches(e.Position(), player, g.Grid, blocked) {
		e.Motion.StartAttack()
		if player.X != e.X {
			e.FacingLeft = player.X < e.X
		}
		g.Player.TakeDamage(EnemyDamage)
		if g.Player.IsDead() {
			logMessage(g, fmt.Sprintf(gotext.Get("GAME_OVER"), g.Player.Points))
		}
		return true
	}

	best, bestDist := e.Position(), e.Position().ChebyshevDistance(player)
	for _, pt := range pattern.Targets(e.Position(), g.Grid, blocked) {
		if g.IsBlocked(pt.X, pt.Y) {
			continue
		}
		if tile, _ := g.Grid.At(pt.X, pt.Y); tile.Is(gameworld.Port, gameworld.Exit) || tile.JustPlaced {
			continue
		}
		if d := pt.ChebyshevDistance(player); d < bestDist {
			best, bestDist = pt, d
		}
	}
	if best != e.Position() {
		e.MoveTo(best.X, best.Y)
	}
	return true
}
