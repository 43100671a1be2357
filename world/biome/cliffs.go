package biome

import (
	"math"

	"github.com/df-mc/hexworld/world"
	"github.com/df-mc/hexworld/world/noise"
	"github.com/df-mc/hexworld/world/populate"
	"github.com/lucasb-eyer/go-colorful"
)

// Cliffs is a biome of flat terraces separated by steep drops. Trees only grow
// on the upper terraces.
type Cliffs struct{}

const (
	cliffNoiseScale = 0.15
	cliffTerraces   = 3
)

var (
	cliffRamp    = mustGradient("#7a4b2a", "#a0673d", "#c98f5b")
	cliffPalette = Palette{Variance: 0.07, VariationProbability: 0.4}
)

func (Cliffs) Name() string {
	return "cliffs"
}

func (Cliffs) Elevation() (min, max int) {
	return 3, 9
}

// Height snaps the noise to a few terraces. The normalised height is left to
// the generator.
func (c Cliffs) Height(q, r int, n noise.Noise, _ world.Context) (float64, float64) {
	lo, _, span := world.HeightRange(c)
	t := (n.Eval2(float64(q)*cliffNoiseScale, float64(r)*cliffNoiseScale) + 1) / 2
	t = math.Round(t*cliffTerraces) / cliffTerraces
	return math.Round(lo + t*span), -1
}

func (c Cliffs) Colour(_ float64, cell *world.Cell, _ world.Context) colorful.Color {
	return cliffPalette.Vary(c.Name(), cell, cliffRamp.At(cell.HeightNorm))
}

func (Cliffs) Populators() []populate.Populator {
	return []populate.Populator{
		populate.Tree{Density: 0.3, MinHeightNorm: 0.55, Scale: 0.9, ScaleJitter: 0.2, Reserve: true},
	}
}
