package entities

import (
	"github.com/zyedidia/generic/mapset"

	"chress/pkg/engine/world"
	gameworld "chress/pkg/game/world"
)

// Pattern describes how a piece moves. Sliding pieces travel along their
// directions until blocked; Reach caps the distance (0 means unlimited).
// Leaping pieces jump straight to fixed offsets.
type Pattern struct {
	Directions []world.Direction
	Reach      int
	Leaps      bool
}

// Movement patterns
var (
	StepOrthogonal = Pattern{Directions: world.Orthogonal(), Reach: 1}
	King           = Pattern{Directions: world.AllDirections(), Reach: 1}
	Bishop         = Pattern{Directions: world.Diagonal()}
	Rook           = Pattern{Directions: world.Orthogonal()}
	Knight         = Pattern{Leaps: true}
	Queen          = Pattern{Directions: world.AllDirections()}
)

var knightOffsets = []world.Point{
	{X: 1, Y: -2}, {X: 2, Y: -1}, {X: 2, Y: 1}, {X: 1, Y: 2},
	{X: -1, Y: 2}, {X: -2, Y: 1}, {X: -2, Y: -1}, {X: -1, Y: -2},
}

// Targets returns every cell the pattern reaches from a position. A slide
// stops before the first obstacle; blocked reports whether an extra cell
// (another piece, say) stops a slide on that cell.
func (p Pattern) Targets(from world.Point, g *gameworld.Grid, blocked func(world.Point) bool) []world.Point {
	var out []world.Point
	open := func(pt world.Point) bool {
		t, ok := gameworld.TypeAt(g, pt.X, pt.Y)
		return ok && !t.IsObstacle()
	}

	if p.Leaps {
		for _, off := range knightOffsets {
			pt := world.Point{X: from.X + off.X, Y: from.Y + off.Y}
			if open(pt) {
				out = append(out, pt)
			}
		}
		return out
	}

	for _, d := range p.Directions {
		pt := from
		for steps := 1; p.Reach == 0 || steps <= p.Reach; steps++ {
			pt = pt.Step(d)
			if !open(pt) {
				break
			}
			out = append(out, pt)
			if blocked != nil && blocked(pt) {
				break
			}
		}
	}
	return out
}

// Reaches reports whether the pattern reaches target from a position
func (p Pattern) Reaches(from, target world.Point, g *gameworld.Grid, blocked func(world.Point) bool) bool {
	for _, pt := range p.Targets(from, g, blocked) {
		if pt == target {
			return true
		}
	}
	return false
}

// AttackRange returns the cells an enemy threatens, for the hold-to-preview
// overlay. It follows the enemy's movement pattern over terrain only and
// ignores other pieces, so it can show cells the real turn would not allow.
func AttackRange(e *Enemy, g *gameworld.Grid) mapset.Set[world.Point] {
	cells := mapset.New[world.Point]()
	if e == nil || g == nil {
		return cells
	}
	for _, pt := range e.Kind.Info().Pattern.Targets(e.Position(), g, nil) {
		cells.Put(pt)
	}
	return cells
}
