package biome

import (
	"github.com/df-mc/hexworld/world"
	"github.com/df-mc/hexworld/world/populate"
	"github.com/lucasb-eyer/go-colorful"
)

// Snow is a cold, hilly biome with sparse conifers.
type Snow struct{}

var (
	snowRamp    = mustGradient("#c9d6e3", "#e6edf3", "#ffffff")
	snowPalette = Palette{Variance: 0.03, VariationProbability: 0.25}
)

func (Snow) Name() string {
	return "snow"
}

func (Snow) Elevation() (min, max int) {
	return 1, 6
}

func (s Snow) Colour(_ float64, c *world.Cell, _ world.Context) colorful.Color {
	return snowPalette.Vary(s.Name(), c, snowRamp.At(c.HeightNorm))
}

func (Snow) Populators() []populate.Populator {
	return []populate.Populator{
		populate.Tree{Density: 0.1, Scale: 0.85, ScaleJitter: 0.1, Reserve: true},
	}
}
