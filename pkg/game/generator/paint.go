package generator

import (
	"math/rand/v2"

	"chress/pkg/engine/world"
	"chress/pkg/game/structure"
	gameworld "chress/pkg/game/world"
	"chress/pkg/game/zone"
)

// surfaceItems are scattered on surface floors, weighted by repetition
var surfaceItems = []gameworld.TileType{
	gameworld.Food, gameworld.Food, gameworld.Food,
	gameworld.Bomb, gameworld.Heart, gameworld.Note,
	gameworld.Axe, gameworld.Hammer, gameworld.Spear, gameworld.Bow, gameworld.Horse,
}

var foodTypes = []string{"beaf", "aguamelin", "meat", "water", "nut"}

// ExitCells returns the edge cells that lead to the neighbouring zones
func ExitCells(size int) []world.Point {
	a, b := size/2-1, size/2
	return []world.Point{
		{X: a, Y: 0}, {X: b, Y: 0},
		{X: a, Y: size - 1}, {X: b, Y: size - 1},
		{X: 0, Y: a}, {X: 0, Y: b},
		{X: size - 1, Y: a}, {X: size - 1, Y: b},
	}
}

// paintSurface paints an outdoor zone: a ragged hedge with four gates,
// structures on BSP plots, then terrain and item scatter
func paintSurface(size int, z zone.Zone, rng *rand.Rand) *gameworld.Grid {
	grid := gameworld.NewGrid(size)
	plots := newPlotMap(size)
	level := z.Level()

	for _, p := range ExitCells(size) {
		grid.Set(p.X, p.Y, gameworld.T(gameworld.Exit))
		plots.reserve(p.X, p.Y)
		// the cell inside each gate stays open
		plots.reserve(clamp(p.X, 1, size-2), clamp(p.Y, 1, size-2))
	}
	c := size / 2
	for y := c - 1; y <= c; y++ {
		for x := c - 1; x <= c; x++ {
			plots.reserve(x, y)
		}
	}

	hedge := gameworld.Shrubbery
	if level >= zone.LevelFrontier {
		hedge = gameworld.Rock
	}
	grid.ForEach(func(x, y int, t gameworld.Tile) {
		if !grid.IsOnPerimeter(x, y) || t.Is(gameworld.Exit) {
			return
		}
		plots.reserve(x, y)
		if rng.IntN(3) > 0 {
			grid.Set(x, y, gameworld.T(hedge))
		}
	})

	root := &bspNode{x: 1, y: 1, width: size - 2, height: size - 2}
	splitBSP(root, minPlotSize, rng)
	raiseStructures(grid, plots, root, surfaceStructures(level), rng)

	scatter(grid, plots, rng, func(t *gameworld.Tile) {
		switch roll := rng.IntN(100); {
		case roll < 8:
			*t = gameworld.T(gameworld.Rock)
		case roll < 14:
			*t = gameworld.T(gameworld.Grass)
		case roll < 17:
			*t = gameworld.T(gameworld.Shrubbery)
		case roll < 19:
			*t = gameworld.T(gameworld.Water)
		case roll < 21:
			*t = gameworld.T(gameworld.Pitfall)
		case roll < 22:
			*t = gameworld.T(gameworld.Port)
		case roll < 23:
			*t = gameworld.T(gameworld.Statue)
		case roll < 24:
			*t = gameworld.T(gameworld.Sign)
		case roll < 30:
			*t = item(rng)
		}
	})
	return grid
}

// surfaceStructures returns the structure mix for a zone level
func surfaceStructures(level zone.Level) []structure.Kind {
	switch level {
	case zone.LevelHome, zone.LevelWoods:
		return []structure.Kind{structure.House, structure.Shack, structure.Well, structure.Cistern}
	case zone.LevelWilds:
		return []structure.Kind{structure.Shack, structure.Well, structure.DeadTree, structure.Cistern}
	default:
		return []structure.Kind{structure.DeadTree, structure.DeadTree, structure.Cistern}
	}
}

// paintInterior paints the inside of a house: walls, furniture and the
// door back out at the bottom middle
func paintInterior(size int, rng *rand.Rand) *gameworld.Grid {
	grid := gameworld.NewGrid(size)
	plots := newPlotMap(size)

	grid.ForEach(func(x, y int, _ gameworld.Tile) {
		if grid.IsOnPerimeter(x, y) {
			grid.Set(x, y, gameworld.T(gameworld.Wall))
			plots.reserve(x, y)
		}
	})
	door := world.Point{X: size / 2, Y: size - 1}
	grid.Set(door.X, door.Y, gameworld.T(gameworld.Port))
	plots.reserve(door.X, door.Y-1)
	c := size / 2
	plots.reserve(c-1, c)
	plots.reserve(c, c)

	scatter(grid, plots, rng, func(t *gameworld.Tile) {
		switch roll := rng.IntN(100); {
		case roll < 10:
			*t = gameworld.T(gameworld.Table)
		case roll < 14:
			*t = item(rng)
		}
	})
	return grid
}

// paintUnderground paints a cave level with stairs up and, below the first
// level, grates and a stair further down
func paintUnderground(size, depth int, rng *rand.Rand) *gameworld.Grid {
	grid := gameworld.NewGrid(size)
	plots := newPlotMap(size)

	grid.ForEach(func(x, y int, _ gameworld.Tile) {
		if grid.IsOnPerimeter(x, y) {
			grid.Set(x, y, gameworld.T(gameworld.Rock))
			plots.reserve(x, y)
		}
	})

	c := size / 2
	grid.Set(c, c-1, gameworld.Tile{Type: gameworld.Port, PortKind: gameworld.PortStairUp})
	plots.reserve(c, c-1)
	plots.reserve(c, c)
	plots.reserve(c-1, c)

	down := world.Point{X: 1 + rng.IntN(size-2), Y: size - 2}
	grid.Set(down.X, down.Y, gameworld.Tile{Type: gameworld.Port, PortKind: gameworld.PortStairDown})
	plots.reserve(down.X, down.Y)

	scatter(grid, plots, rng, func(t *gameworld.Tile) {
		switch roll := rng.IntN(100); {
		case roll < 18:
			*t = gameworld.T(gameworld.Rock)
		case roll < 20 && depth > 1:
			*t = gameworld.Tile{Type: gameworld.Port, PortKind: gameworld.PortGrate}
		case roll < 24:
			*t = item(rng)
		}
	})
	return grid
}

// scatter offers every free floor cell to the decorator
func scatter(grid *gameworld.Grid, plots *plotMap, rng *rand.Rand, decorate func(*gameworld.Tile)) {
	grid.ForEach(func(x, y int, t gameworld.Tile) {
		if !plots.isFree(x, y) || !t.Is(gameworld.Floor) {
			return
		}
		decorate(&t)
		grid.Set(x, y, t)
	})
}

func item(rng *rand.Rand) gameworld.Tile {
	t := gameworld.T(surfaceItems[rng.IntN(len(surfaceItems))])
	if t.Type == gameworld.Food {
		t.FoodType = foodTypes[rng.IntN(len(foodTypes))]
	}
	return t
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
