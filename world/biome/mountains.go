package biome

import (
	"math"

	"github.com/df-mc/hexworld/internal/mathutil"
	"github.com/df-mc/hexworld/world"
	"github.com/df-mc/hexworld/world/hex"
	"github.com/df-mc/hexworld/world/noise"
	"github.com/df-mc/hexworld/world/populate"
	"github.com/lucasb-eyer/go-colorful"
)

// Mountains is a rocky biome that peaks towards the centre of a tile. Trees
// only grow on its lower slopes.
type Mountains struct{}

const mountainNoiseScale = 0.12

var (
	mountainRamp    = mustGradient("#6d6558", "#8c8c8c", "#b5b5b5", "#f5f7fa")
	mountainPalette = Palette{Variance: 0.05, VariationProbability: 0.3}
)

func (Mountains) Name() string {
	return "mountains"
}

func (Mountains) Elevation() (min, max int) {
	return 2, 12
}

// Height shapes ridges out of the noise and lowers them towards the edge of
// the tile.
func (m Mountains) Height(q, r int, n noise.Noise, ctx world.Context) (float64, float64) {
	lo, _, span := world.HeightRange(m)
	ridge := 1 - math.Abs(n.Eval2(float64(q)*mountainNoiseScale, float64(r)*mountainNoiseScale))
	falloff := 1.0
	if ctx.GridRadius > 0 {
		d := float64(hex.Distance(hex.Coord{}, hex.Coord{Q: q, R: r}))
		falloff = 1 - d/float64(ctx.GridRadius+1)
	}
	t := mathutil.Clamp(ridge*ridge*(0.35+0.65*falloff), 0, 1)
	h := math.Round(lo + t*span)
	return h, (h - lo) / span
}

func (m Mountains) Colour(_ float64, c *world.Cell, _ world.Context) colorful.Color {
	return mountainPalette.Vary(m.Name(), c, mountainRamp.At(c.HeightNorm))
}

func (Mountains) Populators() []populate.Populator {
	return []populate.Populator{
		populate.Tree{Density: 0.25, MaxHeightNorm: 0.45, Scale: 0.8, ScaleJitter: 0.15, Reserve: true},
	}
}
