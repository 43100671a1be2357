// Package hexgen generates hexagonal tiles of terrain: columns of cells with a
// height and colour decided by a biome, bodies of water formed by clusters of
// low cells and objects scattered on top.
package hexgen

import (
	"errors"
	"log/slog"
	"math"

	"github.com/df-mc/hexworld/internal/mathutil"
	"github.com/df-mc/hexworld/world"
	"github.com/df-mc/hexworld/world/hex"
	"github.com/df-mc/hexworld/world/noise"
	"github.com/df-mc/hexworld/world/populate"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// DefaultNoiseScale is the scale at which height noise is sampled for
	// biomes that do not implement world.NoiseScaler.
	DefaultNoiseScale = 0.1
	// waterChannelShift is the domain shift of the default water noise channel
	// relative to the height noise.
	waterChannelShift = 1013.37
)

var (
	// ErrNilNoise is returned by New if no noise was configured.
	ErrNilNoise = errors.New("hexgen: noise must not be nil")
	// ErrNilBiome is returned when a tile is created without a biome.
	ErrNilBiome = errors.New("hexgen: biome must not be nil")
)

// fallbackColour is given to cells whose biome produced a malformed colour.
var fallbackColour = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Config holds the parameters of a Generator.
type Config struct {
	// Log is the Logger used to report malformed colours and skipped
	// placements. If nil, Log is set to slog.Default().
	Log *slog.Logger
	// Seed seeds the random placement of objects on tiles.
	Seed int64
	// GridRadius is the radius of a tile in cells. A radius of 0 produces
	// tiles of a single cell.
	GridRadius int
	// Layout projects the axial coordinates of cells to world space. If
	// Layout.Radius is 0, a radius of 1 is used.
	Layout hex.Layout
	// HeightStep is the height in world units of a single height step. If 0,
	// a step of 1 is used.
	HeightStep float64
	// Noise is the source of height. It must not be nil.
	Noise noise.Noise
	// Water is the noise channel passed to biomes for shaping water on flat
	// terrain. If nil, a shifted copy of Noise is used.
	Water noise.Noise
}

// Generator produces the cells of tiles. A Generator holds no mutable state
// and may be shared by any number of tiles.
type Generator struct {
	conf Config
}

// New creates a Generator using the Config passed. An error is returned if
// no noise was set.
func New(conf Config) (*Generator, error) {
	if conf.Noise == nil {
		return nil, ErrNilNoise
	}
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	if conf.GridRadius < 0 {
		conf.GridRadius = 0
	}
	if conf.Layout.Radius <= 0 {
		conf.Layout.Radius = 1
	}
	if conf.HeightStep <= 0 {
		conf.HeightStep = 1
	}
	if conf.Water == nil {
		conf.Water = noise.Offset{Noise: conf.Noise, DX: waterChannelShift, DY: -waterChannelShift}
	}
	return &Generator{conf: conf}, nil
}

// GridRadius returns the radius of the tiles produced in cells.
func (g *Generator) GridRadius() int {
	return g.conf.GridRadius
}

// Layout returns the layout used to position cells.
func (g *Generator) Layout() hex.Layout {
	return g.conf.Layout
}

// Cells generates the cells of a tile of biome b centred on the world
// origin. The number of cells whose colour was malformed is returned too.
func (g *Generator) Cells(b world.Biome) (cells []*world.Cell, malformed int) {
	return g.cells(bind(b))
}

// binding is a biome with its optional capabilities resolved.
type binding struct {
	biome      world.Biome
	sampler    world.HeightSampler
	scale      float64
	water      *world.WaterConfig
	populators []populate.Populator
}

// bind resolves the optional capabilities of b.
func bind(b world.Biome) binding {
	bb := binding{biome: b, scale: DefaultNoiseScale}
	if s, ok := b.(world.HeightSampler); ok {
		bb.sampler = s
	}
	if s, ok := b.(world.NoiseScaler); ok && s.NoiseScale() > 0 {
		bb.scale = s.NoiseScale()
	}
	if w, ok := b.(world.WaterBody); ok {
		conf := w.Water()
		bb.water = &conf
	}
	if s, ok := b.(populate.Source); ok {
		bb.populators = s.Populators()
	}
	return bb
}

func (g *Generator) cells(b binding) ([]*world.Cell, int) {
	var (
		coords    = hex.Enumerate(g.conf.GridRadius)
		cells     = make([]*world.Cell, 0, len(coords))
		ctx       = world.Context{GridRadius: g.conf.GridRadius, Water: g.conf.Water}
		malformed int
	)
	lo, _, span := world.HeightRange(b.biome)
	for _, pos := range coords {
		var height, norm float64
		if b.sampler != nil {
			height, norm = b.sampler.Height(pos.Q, pos.R, g.conf.Noise, ctx)
		} else {
			n := g.conf.Noise.Eval2(float64(pos.Q)*b.scale, float64(pos.R)*b.scale)
			height, norm = math.Round(lo+(n+1)/2*span), -1
		}
		if norm < 0 {
			norm = (height - lo) / span
		}
		if !mathutil.Finite(norm) {
			norm = 0
		}

		x, z := g.conf.Layout.Centre(pos)
		c := &world.Cell{
			Q: pos.Q, R: pos.R,
			X: x, Z: z,
			Height:     height,
			HeightNorm: mathutil.Clamp(norm, 0, 1),
			Biome:      b.biome,
		}
		col := b.biome.Colour(height, c, ctx)
		if !col.IsValid() {
			g.conf.Log.Warn("biome produced malformed colour", "biome", b.biome.Name(), "q", pos.Q, "r", pos.R, "colour", col)
			col = fallbackColour
			malformed++
		}
		c.Colour = col
		if b.water == nil {
			c.CandidateWater = false
		}
		cells = append(cells, c)
	}
	return cells, malformed
}
