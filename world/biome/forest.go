package biome

import (
	"github.com/df-mc/hexworld/world"
	"github.com/df-mc/hexworld/world/populate"
	"github.com/lucasb-eyer/go-colorful"
)

// Forest is a densely wooded biome.
type Forest struct{}

var forestPalette = Palette{
	Base:                 mustHex("#2e7d32"),
	Variance:             0.1,
	VariationProbability: 0.5,
}

func (Forest) Name() string {
	return "forest"
}

func (Forest) Elevation() (min, max int) {
	return 1, 5
}

func (f Forest) Colour(_ float64, c *world.Cell, _ world.Context) colorful.Color {
	return forestPalette.Vary(f.Name(), c, heightShade(forestPalette.Base, c.HeightNorm))
}

func (Forest) Populators() []populate.Populator {
	return []populate.Populator{
		populate.Tree{Density: 0.35, Scale: 1, ScaleJitter: 0.25, Reserve: true},
		populate.Sheep{Density: 0.02, Scale: 0.6, ScaleJitter: 0.05},
	}
}
