// Package autotile picks the directional dirt texture for a floor cell from
// its eight neighbours. Everything here is a pure function of the grid.
package autotile

import (
	engineworld "chress/pkg/engine/world"
	"chress/pkg/game/world"
)

// Variant is a directional floor texture
type Variant int

// Variants, grouped by the texture they share
const (
	Plain Variant = iota
	TunnelHorizontal
	TunnelVertical
	Corner2NorthWest
	Corner2NorthEast
	Corner2SouthEast
	Corner2SouthWest
	EdgeNorth
	EdgeEast
	EdgeSouth
	EdgeWest
	CornerNorthWest
	CornerNorthEast
	CornerSouthEast
	CornerSouthWest
)

// neighborhood records which of the eight neighbours are open ground.
// Cells outside the grid count as walls.
type neighborhood [8]bool

func look(x, y int, g *world.Grid) neighborhood {
	var n neighborhood
	for _, dir := range engineworld.AllDirections() {
		if tile, ok := g.Neighbor(x, y, dir); ok {
			n[dir] = tile.Effective().IsFloorLike()
		}
	}
	return n
}

func (n neighborhood) open(d engineworld.Direction) bool { return n[d] }
func (n neighborhood) wall(d engineworld.Direction) bool { return !n[d] }

func (n neighborhood) allOrthogonalOpen() bool {
	return n.open(engineworld.North) && n.open(engineworld.East) &&
		n.open(engineworld.South) && n.open(engineworld.West)
}

// ShouldUseTunnelHorizontal: open east and west, walled north and south
func ShouldUseTunnelHorizontal(x, y int, g *world.Grid) bool {
	return look(x, y, g).tunnelHorizontal()
}

func (n neighborhood) tunnelHorizontal() bool {
	return n.open(engineworld.West) && n.open(engineworld.East) &&
		n.wall(engineworld.North) && n.wall(engineworld.South)
}

// ShouldUseTunnelVertical: open north and south, walled east and west
func ShouldUseTunnelVertical(x, y int, g *world.Grid) bool {
	return look(x, y, g).tunnelVertical()
}

func (n neighborhood) tunnelVertical() bool {
	return n.open(engineworld.North) && n.open(engineworld.South) &&
		n.wall(engineworld.West) && n.wall(engineworld.East)
}

// corner2 matches two adjacent walled sides (a and b) with the two opposite
// sides open.
func (n neighborhood) corner2(a, b engineworld.Direction) bool {
	return n.wall(a) && n.wall(b) && n.open(a.Opposite()) && n.open(b.Opposite())
}

// ShouldUseCorner2NorthWest: walled north and west, open south and east
func ShouldUseCorner2NorthWest(x, y int, g *world.Grid) bool {
	return look(x, y, g).corner2(engineworld.North, engineworld.West)
}

// ShouldUseCorner2NorthEast: walled north and east, open south and west
func ShouldUseCorner2NorthEast(x, y int, g *world.Grid) bool {
	return look(x, y, g).corner2(engineworld.North, engineworld.East)
}

// ShouldUseCorner2SouthEast: walled south and east, open north and west
func ShouldUseCorner2SouthEast(x, y int, g *world.Grid) bool {
	return look(x, y, g).corner2(engineworld.South, engineworld.East)
}

// ShouldUseCorner2SouthWest: walled south and west, open north and east
func ShouldUseCorner2SouthWest(x, y int, g *world.Grid) bool {
	return look(x, y, g).corner2(engineworld.South, engineworld.West)
}

// edge matches exactly one walled cardinal side
func (n neighborhood) edge(side engineworld.Direction) bool {
	if n.open(side) {
		return false
	}
	for _, d := range engineworld.Orthogonal() {
		if d != side && n.wall(d) {
			return false
		}
	}
	return true
}

// ShouldUseEdgeNorth: only the north side is walled
func ShouldUseEdgeNorth(x, y int, g *world.Grid) bool {
	return look(x, y, g).edge(engineworld.North)
}

// ShouldUseEdgeEast: only the east side is walled
func ShouldUseEdgeEast(x, y int, g *world.Grid) bool {
	return look(x, y, g).edge(engineworld.East)
}

// ShouldUseEdgeSouth: only the south side is walled
func ShouldUseEdgeSouth(x, y int, g *world.Grid) bool {
	return look(x, y, g).edge(engineworld.South)
}

// ShouldUseEdgeWest: only the west side is walled
func ShouldUseEdgeWest(x, y int, g *world.Grid) bool {
	return look(x, y, g).edge(engineworld.West)
}

// corner matches all cardinal sides open with the given diagonal walled
func (n neighborhood) corner(diag engineworld.Direction) bool {
	return n.allOrthogonalOpen() && n.wall(diag)
}

// ShouldUseCornerNorthWest: all sides open, north-west diagonal walled
func ShouldUseCornerNorthWest(x, y int, g *world.Grid) bool {
	return look(x, y, g).corner(engineworld.NorthWest)
}

// ShouldUseCornerNorthEast: all sides open, north-east diagonal walled
func ShouldUseCornerNorthEast(x, y int, g *world.Grid) bool {
	return look(x, y, g).corner(engineworld.NorthEast)
}

// ShouldUseCornerSouthEast: all sides open, south-east diagonal walled
func ShouldUseCornerSouthEast(x, y int, g *world.Grid) bool {
	return look(x, y, g).corner(engineworld.SouthEast)
}

// ShouldUseCornerSouthWest: all sides open, south-west diagonal walled
func ShouldUseCornerSouthWest(x, y int, g *world.Grid) bool {
	return look(x, y, g).corner(engineworld.SouthWest)
}

type rule struct {
	variant Variant
	match   func(neighborhood) bool
}

// priority is the fixed test order: tunnels and two-sided corners first,
// then single edges, then diagonal corners. First match wins.
var priority = []rule{
	{TunnelHorizontal, neighborhood.tunnelHorizontal},
	{TunnelVertical, neighborhood.tunnelVertical},
	{Corner2NorthWest, func(n neighborhood) bool { return n.corner2(engineworld.North, engineworld.West) }},
	{Corner2NorthEast, func(n neighborhood) bool { return n.corner2(engineworld.North, engineworld.East) }},
	{Corner2SouthEast, func(n neighborhood) bool { return n.corner2(engineworld.South, engineworld.East) }},
	{Corner2SouthWest, func(n neighborhood) bool { return n.corner2(engineworld.South, engineworld.West) }},
	{EdgeNorth, func(n neighborhood) bool { return n.edge(engineworld.North) }},
	{EdgeEast, func(n neighborhood) bool { return n.edge(engineworld.East) }},
	{EdgeSouth, func(n neighborhood) bool { return n.edge(engineworld.South) }},
	{EdgeWest, func(n neighborhood) bool { return n.edge(engineworld.West) }},
	{CornerNorthWest, func(n neighborhood) bool { return n.corner(engineworld.NorthWest) }},
	{CornerNorthEast, func(n neighborhood) bool { return n.corner(engineworld.NorthEast) }},
	{CornerSouthEast, func(n neighborhood) bool { return n.corner(engineworld.SouthEast) }},
	{CornerSouthWest, func(n neighborhood) bool { return n.corner(engineworld.SouthWest) }},
}

// Detect returns the directional variant for the floor cell at (x, y)
func Detect(x, y int, g *world.Grid) Variant {
	if !g.InBounds(x, y) {
		return Plain
	}
	n := look(x, y, g)
	for _, r := range priority {
		if r.match(n) {
			return r.variant
		}
	}
	return Plain
}
