package biome

import (
	"github.com/df-mc/hexworld/world"
	"github.com/df-mc/hexworld/world/populate"
	"github.com/lucasb-eyer/go-colorful"
)

// ClayFlats is a flat biome of clay. Because the terrain is flat, its ponds
// are shaped by the water noise channel instead of by height.
type ClayFlats struct{}

const (
	clayWaterScale     = 0.18
	clayWaterThreshold = 0.3
)

var clayPalette = Palette{
	Base:                 mustHex("#b5651d"),
	Variance:             0.08,
	VariationProbability: 0.45,
}

func (ClayFlats) Name() string {
	return "clay"
}

func (ClayFlats) Elevation() (min, max int) {
	return 1, 2
}

func (ClayFlats) NoiseScale() float64 {
	return 0.04
}

func (cf ClayFlats) Colour(_ float64, c *world.Cell, ctx world.Context) colorful.Color {
	if ctx.Water != nil {
		c.CandidateWater = ctx.Water.Eval2(float64(c.Q)*clayWaterScale, float64(c.R)*clayWaterScale) > clayWaterThreshold
	}
	return clayPalette.Vary(cf.Name(), c, clayPalette.Base)
}

func (ClayFlats) Water() world.WaterConfig {
	return world.WaterConfig{MinClusterSize: 6, Colour: mustHex("#4f9bd9"), Height: ptr(0.8)}
}

func (ClayFlats) Populators() []populate.Populator {
	return []populate.Populator{
		populate.Sheep{Density: 0.03, Scale: 0.6, ScaleJitter: 0.05},
	}
}
