package biome

import (
	"github.com/df-mc/hexworld/world"
	"github.com/df-mc/hexworld/world/populate"
	"github.com/lucasb-eyer/go-colorful"
)

// WheatField is flat, treeless farmland covered in wheat.
type WheatField struct{}

var wheatPalette = Palette{
	Base:                 mustHex("#d4b24c"),
	Variance:             0.06,
	VariationProbability: 0.3,
}

func (WheatField) Name() string {
	return "wheat"
}

func (WheatField) Elevation() (min, max int) {
	return 1, 2
}

func (WheatField) NoiseScale() float64 {
	return 0.05
}

func (w WheatField) Colour(_ float64, c *world.Cell, _ world.Context) colorful.Color {
	return wheatPalette.Vary(w.Name(), c, wheatPalette.Base)
}

func (WheatField) Populators() []populate.Populator {
	return []populate.Populator{
		populate.Wheat{Density: 0.7, Scale: 1},
	}
}
