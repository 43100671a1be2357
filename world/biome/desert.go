package biome

import (
	"github.com/df-mc/hexworld/world"
	"github.com/lucasb-eyer/go-colorful"
)

// Desert is a barren biome of sand dunes.
type Desert struct{}

var desertPalette = Palette{
	Base:                 mustHex("#e0c27a"),
	Variance:             0.12,
	VariationProbability: 0.6,
}

func (Desert) Name() string {
	return "desert"
}

func (Desert) Elevation() (min, max int) {
	return 1, 3
}

func (Desert) NoiseScale() float64 {
	return 0.07
}

func (d Desert) Colour(_ float64, c *world.Cell, _ world.Context) colorful.Color {
	return desertPalette.Vary(d.Name(), c, heightShade(desertPalette.Base, c.HeightNorm))
}
