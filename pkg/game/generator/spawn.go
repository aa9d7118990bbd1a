package generator

import (
	"chress/pkg/engine/world"
	"chress/pkg/game/entities"
	gameworld "chress/pkg/game/world"
	"chress/pkg/game/zone"
)

// spawnSalt separates the enemy roll from the terrain roll of the same zone
const spawnSalt = 0x5eed

// Spawn places the enemies for a freshly generated zone. Enemies never start
// next to the player and never in the home zone.
func (g *BSPGenerator) Spawn(z zone.Zone, grid *gameworld.Grid, player world.Point) []*entities.Enemy {
	if z == (zone.Zone{}) {
		return nil
	}
	rng := rngFor(g.opts.Seed^spawnSalt, z)
	level := z.Level()

	count := int(level)
	if level >= zone.LevelInterior {
		count = 2
	}
	kinds := entities.AllKinds()
	strongest := min(int(level)+1, len(kinds))
	if level == zone.LevelInterior {
		strongest = 2
	}

	var free []world.Point
	grid.ForEach(func(x, y int, t gameworld.Tile) {
		p := world.Point{X: x, Y: y}
		if t.Effective().IsFloorLike() && !t.Is(gameworld.Exit, gameworld.Port, gameworld.Pitfall) && p.ChebyshevDistance(player) > 2 {
			free = append(free, p)
		}
	})
	rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })

	var out []*entities.Enemy
	for i := 0; i < count && i < len(free); i++ {
		out = append(out, entities.NewEnemy(kinds[rng.IntN(strongest)], free[i].X, free[i].Y))
	}
	return out
}
