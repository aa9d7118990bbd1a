// Package world provides the game-specific tile model for Chress.
// It extends the generic engine/world grid with tile type codes and the
// tagged tile values stored in each zone.
package world

import (
	"encoding/json"
	"fmt"

	"chress/pkg/engine/world"
)

// TileType is the abstract tile-type code stored in a grid cell
type TileType int

// Tile type codes. The numeric values are part of persisted zone state.
const (
	Floor TileType = iota
	Wall
	Grass
	Exit
	Rock
	House
	Water
	Food
	Axe
	Hammer
	Spear
	Note
	Horse
	Bomb
	Heart
	Sign
	Port
	Shrubbery
	Well
	DeadTree
	Table
	Shack
	Cistern
	Bow
	Pitfall
	Statue

	tileTypeCount
)

// PortKind distinguishes the freestanding variants of a Port tile
type PortKind string

// Port kinds carried by tagged Port tiles
const (
	PortHole      PortKind = ""
	PortStairDown PortKind = "stairdown"
	PortStairUp   PortKind = "stairup"
	PortGrate     PortKind = "grate"
)

// Tile is a single grid cell. A bare tile carries only a Type; tagged tiles
// carry extra per-instance fields. Compare tiles through Effective, never by
// the raw struct.
type Tile struct {
	Type       TileType `json:"type"`
	PortKind   PortKind `json:"portKind,omitempty"`
	FoodType   string   `json:"foodType,omitempty"`
	JustPlaced bool     `json:"justPlaced,omitempty"`
}

// Grid is a zone's tile matrix
type Grid = world.Grid[Tile]

// NewGrid creates a size×size grid of floor tiles
func NewGrid(size int) *Grid {
	return world.NewGrid(size, size, Tile{Type: Floor})
}

// T returns the bare tile for a type code
func T(t TileType) Tile {
	return Tile{Type: t}
}

// Effective returns the tile's effective type. Every consumer branches on
// this projection so bare and tagged forms compare equal.
func (t Tile) Effective() TileType {
	return t.Type
}

// Is reports whether the tile's effective type is one of types
func (t Tile) Is(types ...TileType) bool {
	eff := t.Effective()
	for _, tt := range types {
		if eff == tt {
			return true
		}
	}
	return false
}

// IsTagged reports whether the tile carries any per-instance fields
func (t Tile) IsTagged() bool {
	return t.PortKind != PortHole || t.FoodType != "" || t.JustPlaced
}

// UnmarshalJSON accepts either a bare type code (5) or a tagged object
// ({"type": 16, "portKind": "stairdown"}).
func (t *Tile) UnmarshalJSON(data []byte) error {
	var code int
	if err := json.Unmarshal(data, &code); err == nil {
		*t = Tile{Type: TileType(code)}
		return nil
	}

	type tagged Tile
	var obj tagged
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("tile: expected code or object: %w", err)
	}
	*t = Tile(obj)
	return nil
}

// MarshalJSON writes untagged tiles as bare codes so round trips keep the
// compact form.
func (t Tile) MarshalJSON() ([]byte, error) {
	if !t.IsTagged() {
		return json.Marshal(int(t.Type))
	}
	type tagged Tile
	return json.Marshal(tagged(t))
}

// TypeAt returns the effective type at (x, y); ok is false outside the grid
func TypeAt(g *Grid, x, y int) (TileType, bool) {
	tile, ok := g.At(x, y)
	if !ok {
		return Floor, false
	}
	return tile.Effective(), true
}
