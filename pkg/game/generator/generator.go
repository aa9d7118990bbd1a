package generator

import (
	"hash/fnv"
	"math/rand/v2"

	"chress/pkg/engine/world"
	"chress/pkg/game/entities"
	gameworld "chress/pkg/game/world"
	"chress/pkg/game/zone"
)

// ZoneGenerator is an interface for zone painting algorithms
type ZoneGenerator interface {
	Generate(z zone.Zone) *gameworld.Grid
	Spawn(z zone.Zone, grid *gameworld.Grid, player world.Point) []*entities.Enemy
	Name() string
}

// Options configures a generator
type Options struct {
	Seed uint64
	Size int
}

// DefaultSize is the width and height of a zone in tiles
const DefaultSize = 10

// Default is the generator used for new zones
var Default = New(Options{})

// Configure replaces the default generator
func Configure(opts Options) {
	Default = New(opts)
}

// New returns the default generator
func New(opts Options) ZoneGenerator {
	if opts.Size <= 0 {
		opts.Size = DefaultSize
	}
	return &BSPGenerator{opts: opts}
}

// rngFor returns the random source for a zone. The same seed and zone key
// always produce the same sequence, so a zone repaints identically.
func rngFor(seed uint64, z zone.Zone) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(z.Key()))
	return rand.New(rand.NewPCG(seed, h.Sum64()))
}
