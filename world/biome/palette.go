package biome

import (
	"fmt"

	"github.com/df-mc/hexworld/internal/mathutil"
	"github.com/df-mc/hexworld/world"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/colorgrad"
	"github.com/segmentio/fasthash/fnv1a"
)

// Palette holds the colour parameters of a biome.
type Palette struct {
	// Base is the colour of a cell before shading and variation.
	Base colorful.Color
	// Variance is the maximum relative brightness deviation of a varied cell.
	Variance float64
	// VariationProbability is the chance of a cell having its colour varied.
	VariationProbability float64
}

// Vary applies the colour variation of the palette to col. Whether a cell is
// varied, and by how much, is derived from a hash of the biome name and the
// coordinates of the cell, so the same cell always gets the same colour.
func (p Palette) Vary(name string, c *world.Cell, col colorful.Color) colorful.Color {
	if p.Variance <= 0 || p.VariationProbability <= 0 {
		return col
	}
	h := fnv1a.HashString64(name)
	h = fnv1a.AddUint64(h, uint64(int64(c.Q)))
	h = fnv1a.AddUint64(h, uint64(int64(c.R)))
	if unit(h) >= p.VariationProbability {
		return col
	}
	f := 1 + (unit(fnv1a.AddUint64(h, 0x9e3779b97f4a7c15))*2-1)*p.Variance
	return shade(col, f)
}

// unit maps a hash to [0, 1).
func unit(h uint64) float64 {
	return float64(h>>11) / (1 << 53)
}

// shade multiplies the components of col by f, clamping the result to valid
// colour values.
func shade(col colorful.Color, f float64) colorful.Color {
	return colorful.Color{R: col.R * f, G: col.G * f, B: col.B * f}.Clamped()
}

// heightShade darkens col for low cells, so that steps in the terrain remain
// visible from above.
func heightShade(col colorful.Color, norm float64) colorful.Color {
	return shade(col, mathutil.Lerp(0.82, 1.0, mathutil.Clamp(norm, 0, 1)))
}

// mustHex parses a hex colour and panics if it is invalid.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("biome: invalid colour %q: %v", s, err))
	}
	return c
}

// mustGradient builds a colour ramp through the hex colours passed.
func mustGradient(colours ...string) colorgrad.Gradient {
	g, err := colorgrad.NewGradient().HtmlColors(colours...).Build()
	if err != nil {
		panic(fmt.Sprintf("biome: build gradient %v: %v", colours, err))
	}
	return g
}

// ptr returns a pointer to v.
func ptr[T any](v T) *T {
	return &v
}
