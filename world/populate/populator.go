// Package populate scatters objects such as trees, wheat and sheep over the
// generated cells of a tile.
package populate

import (
	"math"
	"math/rand/v2"

	"github.com/df-mc/hexworld/internal/mathutil"
	"github.com/df-mc/hexworld/world"
	"github.com/go-gl/mathgl/mgl64"
)

// Populator places objects of a single kind on the cells of a biome.
type Populator interface {
	// Kind returns the kind of object placed.
	Kind() world.ObjectKind
	// Populate places objects on the cells of b and returns their instances
	// together with the number of cells skipped because their position could
	// not be computed.
	Populate(cells []*world.Cell, b world.Biome, r *rand.Rand, p Placement) (placed []world.Instance, skipped int)
}

// Source is implemented by biomes that have objects placed on them.
type Source interface {
	Populators() []Populator
}

// Placement holds the parameters shared by all populators of a tile.
type Placement struct {
	// HeightStep is the height in world units of a single height step of a
	// cell. Objects are placed on top of the column at Height*HeightStep.
	HeightStep float64
}

// rule describes the eligibility and appearance of a scattered object.
type rule struct {
	kind                  world.ObjectKind
	density               float64
	minNorm, maxNorm      float64
	skipOccupied, reserve bool
	randomYaw             bool
	scale, scaleJitter    float64
}

// scatter performs a Bernoulli trial with probability r.density for every
// eligible cell of b and returns an instance for each accepted cell.
func scatter(cells []*world.Cell, b world.Biome, rng *rand.Rand, p Placement, r rule) ([]world.Instance, int) {
	var (
		placed  []world.Instance
		skipped int
	)
	step := p.HeightStep
	if step <= 0 {
		step = 1
	}
	for _, c := range cells {
		if !sameBiome(c.Biome, b) || c.Water {
			continue
		}
		if r.skipOccupied && c.Occupied {
			continue
		}
		if r.minNorm > 0 && c.HeightNorm < r.minNorm {
			continue
		}
		if r.maxNorm > 0 && c.HeightNorm > r.maxNorm {
			continue
		}
		if !chance(rng, r.density) {
			continue
		}
		y := c.Height * step
		if !mathutil.Finite(c.X, y, c.Z) {
			skipped++
			continue
		}
		if y <= 0 {
			continue
		}
		var yaw float64
		if r.randomYaw {
			yaw = rng.Float64() * 2 * math.Pi
		}
		scale := r.scale
		if scale <= 0 {
			scale = 1
		}
		if r.scaleJitter > 0 {
			scale += (rng.Float64()*2 - 1) * r.scaleJitter
		}
		placed = append(placed, world.NewInstance(r.kind, mgl64.Vec3{c.X, y, c.Z}, yaw, scale))
		if r.reserve {
			c.Occupied = true
		}
	}
	return placed, skipped
}

// chance returns true with the probability passed.
func chance(r *rand.Rand, probability float64) bool {
	if probability >= 1.0 {
		return true
	}
	if probability <= 0 {
		return false
	}
	return r.Float64() < probability
}

// sameBiome checks if a and b are the same registered biome. Biomes are
// compared by name because biome values may hold fields that are not
// comparable.
func sameBiome(a, b world.Biome) bool {
	return a != nil && b != nil && a.Name() == b.Name()
}
