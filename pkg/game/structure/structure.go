// Package structure resolves which multi-tile structure a grid cell belongs
// to. Structures are never stored: every query re-derives the anchor by a
// bounded local search and validates the whole footprint.
package structure

import "chress/pkg/game/world"

// Kind is a multi-tile structure type
type Kind int

// Structure kinds
const (
	House Kind = iota
	Shack
	Well
	DeadTree
	Cistern
)

// Anchor is the top-left cell of a structure's bounding box
type Anchor struct {
	StartX int
	StartY int
}

// footprint describes a structure's fixed size and which tile types each
// cell may hold
type footprint struct {
	name   string
	width  int
	height int
	body   world.TileType

	// door is the offset Paint puts the doorway on
	door    [2]int
	hasDoor bool

	// allows reports whether the cell at offset (dx, dy) may hold t
	allows func(dx, dy int, t world.TileType) bool
}

var footprints = map[Kind]footprint{
	House: {
		name: "house", width: 4, height: 3, body: world.House,
		door: [2]int{1, 2}, hasDoor: true,
		allows: func(_, _ int, t world.TileType) bool {
			return t == world.House || t == world.Port
		},
	},
	Shack: {
		name: "shack", width: 3, height: 3, body: world.Shack,
		door: [2]int{1, 2}, hasDoor: true,
		allows: func(dx, dy int, t world.TileType) bool {
			if dx == 1 && dy == 2 {
				return t == world.Port
			}
			return t == world.Shack
		},
	},
	Well: {
		name: "well", width: 2, height: 2, body: world.Well,
		allows: func(_, _ int, t world.TileType) bool { return t == world.Well },
	},
	DeadTree: {
		name: "deadtree", width: 2, height: 2, body: world.DeadTree,
		allows: func(_, _ int, t world.TileType) bool { return t == world.DeadTree },
	},
	Cistern: {
		name: "cistern", width: 1, height: 2, body: world.Cistern,
		door: [2]int{0, 1}, hasDoor: true,
		allows: func(_, dy int, t world.TileType) bool {
			if dy == 1 {
				return t == world.Port
			}
			return t == world.Cistern
		},
	},
}

// Size returns the footprint width and height in cells
func (k Kind) Size() (width, height int) {
	fp, ok := footprints[k]
	if !ok {
		return 0, 0
	}
	return fp.width, fp.height
}

// Body returns the tile type that fills the structure's body cells
func (k Kind) Body() world.TileType {
	return footprints[k].body
}

// KindOf returns the structure whose body is made of t
func KindOf(t world.TileType) (Kind, bool) {
	for _, k := range []Kind{House, Shack, Well, DeadTree, Cistern} {
		if footprints[k].body == t {
			return k, true
		}
	}
	return 0, false
}

// String returns the structure name
func (k Kind) String() string {
	fp, ok := footprints[k]
	if !ok {
		return "unknown"
	}
	return fp.name
}

// Find searches every anchor whose footprint would cover (targetX, targetY)
// and returns the first one whose whole footprint is valid. Candidates are
// visited top-to-bottom, left-to-right. With strict set, the target cell
// itself must hold the structure's body type, which tells a cistern or
// shack door apart from a bare port.
func Find(k Kind, targetX, targetY int, g *world.Grid, strict bool) (Anchor, bool) {
	fp, ok := footprints[k]
	if !ok || !g.InBounds(targetX, targetY) {
		return Anchor{}, false
	}

	if strict {
		if t, _ := world.TypeAt(g, targetX, targetY); t != fp.body {
			return Anchor{}, false
		}
	}

	for sy := targetY - fp.height + 1; sy <= targetY; sy++ {
		for sx := targetX - fp.width + 1; sx <= targetX; sx++ {
			if fp.fits(sx, sy, g) {
				return Anchor{StartX: sx, StartY: sy}, true
			}
		}
	}
	return Anchor{}, false
}

// fits reports whether a footprint anchored at (sx, sy) lies inside the grid
// and every cell holds an allowed type
func (fp footprint) fits(sx, sy int, g *world.Grid) bool {
	if sx < 0 || sy < 0 || sx+fp.width > g.Cols() || sy+fp.height > g.Rows() {
		return false
	}
	for dy := 0; dy < fp.height; dy++ {
		for dx := 0; dx < fp.width; dx++ {
			t, _ := world.TypeAt(g, sx+dx, sy+dy)
			if !fp.allows(dx, dy, t) {
				return false
			}
		}
	}
	return true
}

// FindHousePosition resolves the 4×3 house containing the target cell
func FindHousePosition(targetX, targetY int, g *world.Grid, strict bool) (Anchor, bool) {
	return Find(House, targetX, targetY, g, strict)
}

// FindShackPosition resolves the 3×3 shack containing the target cell
func FindShackPosition(targetX, targetY int, g *world.Grid, strict bool) (Anchor, bool) {
	return Find(Shack, targetX, targetY, g, strict)
}

// FindWellPosition resolves the 2×2 well containing the target cell
func FindWellPosition(targetX, targetY int, g *world.Grid, strict bool) (Anchor, bool) {
	return Find(Well, targetX, targetY, g, strict)
}

// FindDeadTreePosition resolves the 2×2 dead tree containing the target cell
func FindDeadTreePosition(targetX, targetY int, g *world.Grid, strict bool) (Anchor, bool) {
	return Find(DeadTree, targetX, targetY, g, strict)
}

// FindCisternPosition resolves the 1×2 cistern containing the target cell
func FindCisternPosition(targetX, targetY int, g *world.Grid, strict bool) (Anchor, bool) {
	return Find(Cistern, targetX, targetY, g, strict)
}

// Part returns the target cell's column and row within the structure
func (a Anchor) Part(targetX, targetY int) (col, row int) {
	return targetX - a.StartX, targetY - a.StartY
}

// Contains reports whether (x, y) falls inside a footprint of kind k
// anchored at a
func (a Anchor) Contains(k Kind, x, y int) bool {
	w, h := k.Size()
	return x >= a.StartX && x < a.StartX+w && y >= a.StartY && y < a.StartY+h
}

// PortOwners is the order a port cell is matched against structures
var PortOwners = []Kind{Cistern, Shack, House}

// ResolvePort returns the structure whose doorway occupies the port cell at
// (x, y), checking cistern, then shack, then house
func ResolvePort(x, y int, g *world.Grid) (Kind, Anchor, bool) {
	for _, k := range PortOwners {
		if a, ok := Find(k, x, y, g, false); ok {
			return k, a, true
		}
	}
	return 0, Anchor{}, false
}

// Paint writes a correctly formed structure into the grid at the anchor.
// Returns false when the footprint would leave the grid.
func Paint(k Kind, a Anchor, g *world.Grid) bool {
	fp, ok := footprints[k]
	if !ok || a.StartX < 0 || a.StartY < 0 || a.StartX+fp.width > g.Cols() || a.StartY+fp.height > g.Rows() {
		return false
	}
	for dy := 0; dy < fp.height; dy++ {
		for dx := 0; dx < fp.width; dx++ {
			t := fp.body
			if fp.hasDoor && fp.door == [2]int{dx, dy} {
				t = world.Port
			}
			g.Set(a.StartX+dx, a.StartY+dy, world.T(t))
		}
	}
	return true
}
