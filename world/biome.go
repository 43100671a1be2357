package world

import (
	"github.com/df-mc/hexworld/world/noise"
	"github.com/lucasb-eyer/go-colorful"
)

// Biome is a named set of rules that governs the height, colour and objects of
// the cells of a tile. Implementations must be immutable: a single Biome value
// is shared by every tile generated with it.
//
// Besides the methods below, a Biome may implement any of HeightSampler,
// NoiseScaler and WaterBody to change the defaults of the generator. These are
// resolved once when a biome is bound to a tile.
type Biome interface {
	// Name returns the name the biome is registered under.
	Name() string
	// Elevation returns the lowest and highest height of cells in the biome.
	Elevation() (min, max int)
	// Colour returns the colour of a cell with the height passed. Colour may
	// mark the cell as a candidate for water by setting Cell.CandidateWater.
	Colour(height float64, c *Cell, ctx Context) colorful.Color
}

// Context holds the generation parameters that are passed to biome rules.
type Context struct {
	// GridRadius is the radius of the tile in cells.
	GridRadius int
	// Water is a noise channel, independent of the height noise, that biomes
	// with flat terrain use to shape water candidates.
	Water noise.Noise
}

// HeightSampler is implemented by biomes that compute heights themselves
// instead of using the default noise mapping.
type HeightSampler interface {
	// Height returns the height of the cell at (q, r) and its height normalised
	// to [0, 1]. A negative norm signals that the generator should derive the
	// normalised height from the elevation range.
	Height(q, r int, n noise.Noise, ctx Context) (height, norm float64)
}

// NoiseScaler is implemented by biomes that sample the default height noise at
// a scale different from the generator default.
type NoiseScaler interface {
	NoiseScale() float64
}

// WaterBody is implemented by biomes in which clusters of candidate water cells
// turn into water.
type WaterBody interface {
	Water() WaterConfig
}

// WaterConfig describes how candidate water cells of a biome are confirmed and
// what they look like afterwards.
type WaterConfig struct {
	// MinClusterSize is the lowest number of connected candidate cells that form
	// a body of water. Smaller clusters revert to terrain.
	MinClusterSize int
	// Colour is the colour given to confirmed water cells.
	Colour colorful.Color
	// Height, if non-nil, is the flat surface height of confirmed water cells.
	Height *float64
}

// HeightRange returns min and max of b as floats and the span between them.
// A biome with max <= min is treated as having a span of 1.
func HeightRange(b Biome) (lo, hi, span float64) {
	mn, mx := b.Elevation()
	lo, hi = float64(mn), float64(mx)
	if span = hi - lo; span <= 0 {
		span = 1
	}
	return lo, hi, span
}
