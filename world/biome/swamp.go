package biome

import (
	"github.com/df-mc/hexworld/world"
	"github.com/df-mc/hexworld/world/populate"
	"github.com/lucasb-eyer/go-colorful"
)

// Swamp is a wet, low biome in which a large share of the cells turn into
// water.
type Swamp struct{}

const swampWaterFraction = 0.45

var swampPalette = Palette{
	Base:                 mustHex("#556b2f"),
	Variance:             0.1,
	VariationProbability: 0.4,
}

func (Swamp) Name() string {
	return "swamp"
}

func (Swamp) Elevation() (min, max int) {
	return 1, 3
}

func (s Swamp) Colour(height float64, c *world.Cell, _ world.Context) colorful.Color {
	lo, _, span := world.HeightRange(s)
	c.CandidateWater = height < lo+swampWaterFraction*span
	return swampPalette.Vary(s.Name(), c, heightShade(swampPalette.Base, c.HeightNorm))
}

func (Swamp) Water() world.WaterConfig {
	return world.WaterConfig{MinClusterSize: 4, Colour: mustHex("#4a6b5a")}
}

func (Swamp) Populators() []populate.Populator {
	return []populate.Populator{
		populate.Tree{Density: 0.12, Scale: 0.85, ScaleJitter: 0.2, Reserve: true},
	}
}
