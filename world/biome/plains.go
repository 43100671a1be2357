package biome

import (
	"github.com/df-mc/hexworld/world"
	"github.com/df-mc/hexworld/world/populate"
	"github.com/lucasb-eyer/go-colorful"
)

// Plains is a low, grassy biome with scattered trees and sheep. The lowest
// cells of plains may form ponds.
type Plains struct{}

// plainsWaterFraction is the fraction of the height range below which cells
// become water candidates.
const plainsWaterFraction = 0.25

var plainsPalette = Palette{
	Base:                 mustHex("#7cb342"),
	Variance:             0.08,
	VariationProbability: 0.35,
}

func (Plains) Name() string {
	return "plains"
}

func (Plains) Elevation() (min, max int) {
	return 1, 4
}

func (p Plains) Colour(height float64, c *world.Cell, _ world.Context) colorful.Color {
	lo, _, span := world.HeightRange(p)
	c.CandidateWater = height < lo+plainsWaterFraction*span
	return plainsPalette.Vary(p.Name(), c, heightShade(plainsPalette.Base, c.HeightNorm))
}

func (Plains) Water() world.WaterConfig {
	return world.WaterConfig{MinClusterSize: 4, Colour: mustHex("#3d8fd6")}
}

func (Plains) Populators() []populate.Populator {
	return []populate.Populator{
		populate.Tree{Density: 0.06, Scale: 0.9, ScaleJitter: 0.15, Reserve: true},
		populate.Sheep{Density: 0.05, Scale: 0.6, ScaleJitter: 0.05},
	}
}
