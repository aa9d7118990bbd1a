package generator

import (
	"math/rand/v2"

	"chress/pkg/engine/world"
	"chress/pkg/game/structure"
	gameworld "chress/pkg/game/world"
	"chress/pkg/game/zone"
)

// BSPGenerator paints zones by splitting the open interior into plots with
// binary space partitioning and raising one structure per plot
type BSPGenerator struct {
	opts Options
}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Plots"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
}

// Constants for BSP generation
const (
	minPlotSize = 3 // Minimum size of a plot
)

// Generate paints the grid for a zone
func (g *BSPGenerator) Generate(z zone.Zone) *gameworld.Grid {
	rng := rngFor(g.opts.Seed, z)

	switch z.Dimension {
	case zone.Interior:
		return paintInterior(g.opts.Size, rng)
	case zone.Underground:
		return paintUnderground(g.opts.Size, z.EffectiveDepth(), rng)
	default:
		return paintSurface(g.opts.Size, z, rng)
	}
}

// splitBSP recursively splits a BSP node
func splitBSP(node *bspNode, minSize int, rng *rand.Rand) {
	if node.width < minSize*2 && node.height < minSize*2 {
		return // Too small to split
	}

	// Decide split direction
	var splitHorizontal bool
	switch {
	case node.width > node.height && node.width >= minSize*2:
		splitHorizontal = false
	case node.height > node.width && node.height >= minSize*2:
		splitHorizontal = true
	case node.width >= minSize*2 && node.height >= minSize*2:
		splitHorizontal = rng.IntN(2) == 0
	case node.width >= minSize*2:
		splitHorizontal = false
	default:
		splitHorizontal = true
	}

	if splitHorizontal {
		splitPoint := minSize + rng.IntN(node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		splitPoint := minSize + rng.IntN(node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	splitBSP(node.left, minSize, rng)
	splitBSP(node.right, minSize, rng)
}

// collectLeaves returns the leaf plots of the tree
func collectLeaves(node *bspNode) []*bspNode {
	if node == nil {
		return nil
	}
	if node.left == nil && node.right == nil {
		return []*bspNode{node}
	}
	return append(collectLeaves(node.left), collectLeaves(node.right)...)
}

// plotMap tracks which cells are spoken for
type plotMap struct {
	reserved *world.Grid[bool]
}

func newPlotMap(size int) *plotMap {
	return &plotMap{reserved: world.NewGrid(size, size, false)}
}

func (p *plotMap) reserve(x, y int) {
	p.reserved.Set(x, y, true)
}

func (p *plotMap) isFree(x, y int) bool {
	taken, ok := p.reserved.At(x, y)
	return ok && !taken
}

// claim reserves a footprint plus a one-cell margin so neighbouring
// structures never touch and every footprint resolves to a single anchor
func (p *plotMap) claim(x, y, w, h int) bool {
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			if !p.isFree(cx, cy) {
				return false
			}
		}
	}
	for cy := y - 1; cy <= y+h; cy++ {
		for cx := x - 1; cx <= x+w; cx++ {
			p.reserve(cx, cy)
		}
	}
	return true
}

// raiseStructures places at most one structure per leaf plot, trying the
// kinds in the given order of preference
func raiseStructures(grid *gameworld.Grid, plots *plotMap, root *bspNode, kinds []structure.Kind, rng *rand.Rand) int {
	raised := 0
	for _, leaf := range collectLeaves(root) {
		order := append([]structure.Kind(nil), kinds...)
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		for _, k := range order {
			w, h := k.Size()
			if w > leaf.width || h > leaf.height {
				continue
			}
			x := leaf.x + rng.IntN(leaf.width-w+1)
			y := leaf.y + rng.IntN(leaf.height-h+1)
			if !plots.claim(x, y, w, h) {
				continue
			}
			structure.Paint(k, structure.Anchor{StartX: x, StartY: y}, grid)
			raised++
			break
		}
	}
	return raised
}
