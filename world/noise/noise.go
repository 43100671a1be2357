// Package noise provides the coherent 2D noise sources used for terrain
// height and water placement. Every source produces values in [-1, 1].
package noise

import (
	"errors"
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/df-mc/hexworld/internal/mathutil"
	"github.com/ojrac/opensimplex-go"
)

// Noise is a deterministic 2D coherent noise function. Eval2 must return a
// value in the range [-1, 1] and must always return the same value for the
// same input.
type Noise interface {
	Eval2(x, y float64) float64
}

// Func is a function that implements Noise.
type Func func(x, y float64) float64

// Eval2 ...
func (f Func) Eval2(x, y float64) float64 {
	return f(x, y)
}

// OpenSimplex is Noise backed by an OpenSimplex generator.
type OpenSimplex struct {
	os opensimplex.Noise
}

// NewOpenSimplex returns OpenSimplex noise seeded with seed.
func NewOpenSimplex(seed int64) OpenSimplex {
	return OpenSimplex{os: opensimplex.New(seed)}
}

// Eval2 ...
func (n OpenSimplex) Eval2(x, y float64) float64 {
	return mathutil.Clamp(n.os.Eval2(x, y), -1, 1)
}

// Perlin is Noise backed by classic Perlin noise. The raw output of the
// underlying generator is clamped to [-1, 1].
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin returns Perlin noise. alpha is the weight of each successive
// octave, beta the frequency multiplier and n the number of octaves.
func NewPerlin(alpha, beta float64, n int32, seed int64) (Perlin, error) {
	if n <= 0 {
		return Perlin{}, fmt.Errorf("perlin: octave count must be positive, got %d", n)
	}
	if alpha <= 0 || beta <= 0 || !mathutil.Finite(alpha, beta) {
		return Perlin{}, fmt.Errorf("perlin: alpha and beta must be positive, got %v and %v", alpha, beta)
	}
	return Perlin{p: perlin.NewPerlin(alpha, beta, n, seed)}, nil
}

// Eval2 ...
func (n Perlin) Eval2(x, y float64) float64 {
	return mathutil.Clamp(n.p.Noise2D(x, y), -1, 1)
}

// Octave layers several octaves of a Noise, each at double the frequency of
// the previous one and scaled by Persistence. The sum is normalised so that the
// result stays within [-1, 1].
type Octave struct {
	Noise       Noise
	Octaves     int
	Persistence float64
}

// Eval2 ...
func (o Octave) Eval2(x, y float64) float64 {
	if o.Octaves <= 1 {
		return o.Noise.Eval2(x, y)
	}
	var sum, amplitudes float64
	amplitude, frequency := 1.0, 1.0
	for i := 0; i < o.Octaves; i++ {
		sum += amplitude * o.Noise.Eval2(x*frequency, y*frequency)
		amplitudes += amplitude
		amplitude *= o.Persistence
		frequency *= 2
	}
	return mathutil.Clamp(sum/amplitudes, -1, 1)
}

// Offset shifts the domain of a Noise by DX and DY. It is used to derive a
// second, uncorrelated channel from the same underlying source.
type Offset struct {
	Noise  Noise
	DX, DY float64
}

// Eval2 ...
func (o Offset) Eval2(x, y float64) float64 {
	return o.Noise.Eval2(x+o.DX, y+o.DY)
}

// Kind is the name of a noise algorithm.
type Kind string

const (
	KindOpenSimplex Kind = "opensimplex"
	KindPerlin      Kind = "perlin"
)

// ErrUnknownKind is returned by New when the kind of noise is not known.
var ErrUnknownKind = errors.New("unknown noise kind")

// Config describes a noise source that may be constructed using New.
type Config struct {
	// Kind is the algorithm used. It defaults to KindOpenSimplex.
	Kind Kind
	// Seed seeds the algorithm.
	Seed int64
	// Octaves is the number of octaves layered. Values of 1 or lower result in
	// a single octave.
	Octaves int
	// Persistence is the amplitude multiplier between successive octaves. It
	// must be within (0, 1] if Octaves is larger than 1.
	Persistence float64
}

// New creates the Noise described by conf. An error is returned if the noise
// could not be created. Callers must treat such an error as fatal: there is
// no fallback source of height.
func New(conf Config) (Noise, error) {
	var n Noise
	switch conf.Kind {
	case KindOpenSimplex, "":
		n = NewOpenSimplex(conf.Seed)
	case KindPerlin:
		p, err := NewPerlin(2, 2, 3, conf.Seed)
		if err != nil {
			return nil, fmt.Errorf("create noise: %w", err)
		}
		n = p
	default:
		return nil, fmt.Errorf("create noise %q: %w", conf.Kind, ErrUnknownKind)
	}
	if conf.Octaves > 1 {
		if conf.Persistence <= 0 || conf.Persistence > 1 || math.IsNaN(conf.Persistence) {
			return nil, fmt.Errorf("create noise: persistence must be within (0, 1], got %v", conf.Persistence)
		}
		n = Octave{Noise: n, Octaves: conf.Octaves, Persistence: conf.Persistence}
	}
	return n, nil
}
