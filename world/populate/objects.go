package populate

import (
	"math/rand/v2"

	"github.com/df-mc/hexworld/world"
)

// Tree scatters trees. Trees skip cells that are already occupied and only
// reserve the cell they are placed on if Reserve is set.
type Tree struct {
	// Density is the probability of a tree being placed on an eligible cell.
	Density float64
	// MinHeightNorm and MaxHeightNorm limit trees to cells with a normalised
	// height within the range. A zero value disables the limit.
	MinHeightNorm, MaxHeightNorm float64
	// Scale is the uniform scale of the tree. ScaleJitter is the maximum
	// random deviation from Scale.
	Scale, ScaleJitter float64
	// Reserve marks cells with a tree as occupied, so that sheep are not placed
	// on them.
	Reserve bool
}

// Kind ...
func (Tree) Kind() world.ObjectKind {
	return world.ObjectTree
}

// Populate ...
func (t Tree) Populate(cells []*world.Cell, b world.Biome, r *rand.Rand, p Placement) ([]world.Instance, int) {
	return scatter(cells, b, r, p, rule{
		kind:         world.ObjectTree,
		density:      t.Density,
		minNorm:      t.MinHeightNorm,
		maxNorm:      t.MaxHeightNorm,
		skipOccupied: true,
		reserve:      t.Reserve,
		randomYaw:    true,
		scale:        t.Scale,
		scaleJitter:  t.ScaleJitter,
	})
}

// Wheat scatters wheat stalks. Wheat is placed regardless of occupation and
// always reserves its cell. Stalks are not rotated.
type Wheat struct {
	Density float64
	Scale   float64
}

// Kind ...
func (Wheat) Kind() world.ObjectKind {
	return world.ObjectWheat
}

// Populate ...
func (w Wheat) Populate(cells []*world.Cell, b world.Biome, r *rand.Rand, p Placement) ([]world.Instance, int) {
	return scatter(cells, b, r, p, rule{
		kind:    world.ObjectWheat,
		density: w.Density,
		reserve: true,
		scale:   w.Scale,
	})
}

// Sheep scatters sheep facing random directions on unoccupied cells.
type Sheep struct {
	Density            float64
	Scale, ScaleJitter float64
}

// Kind ...
func (Sheep) Kind() world.ObjectKind {
	return world.ObjectSheep
}

// Populate ...
func (s Sheep) Populate(cells []*world.Cell, b world.Biome, r *rand.Rand, p Placement) ([]world.Instance, int) {
	return scatter(cells, b, r, p, rule{
		kind:         world.ObjectSheep,
		density:      s.Density,
		skipOccupied: true,
		reserve:      true,
		randomYaw:    true,
		scale:        s.Scale,
		scaleJitter:  s.ScaleJitter,
	})
}
