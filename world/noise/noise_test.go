package noise

import (
	"errors"
	"math"
	"testing"
)

func TestOpenSimplexDeterministic(t *testing.T) {
	n1, n2 := NewOpenSimplex(12345), NewOpenSimplex(12345)
	for i := 0; i < 100; i++ {
		x, y := float64(i)*0.1, float64(i)*0.2
		if n1.Eval2(x, y) != n2.Eval2(x, y) {
			t.Fatalf("Eval2 not deterministic at (%f, %f)", x, y)
		}
	}
}

func TestRange(t *testing.T) {
	p, err := NewPerlin(2, 2, 3, 42)
	if err != nil {
		t.Fatalf("create perlin: %v", err)
	}
	sources := map[string]Noise{
		"opensimplex": NewOpenSimplex(42),
		"perlin":      p,
		"octave":      Octave{Noise: NewOpenSimplex(42), Octaves: 5, Persistence: 0.5},
		"offset":      Offset{Noise: NewOpenSimplex(42), DX: 1000, DY: -1000},
	}
	for name, n := range sources {
		for i := 0; i < 10000; i++ {
			x := float64(i)*0.37 - 500
			y := float64(i)*0.53 - 500
			if v := n.Eval2(x, y); v < -1 || v > 1 || math.IsNaN(v) {
				t.Fatalf("%s: Eval2(%f, %f) = %f, out of [-1,1]", name, x, y, v)
			}
		}
	}
}

func TestDifferentSeedsDifferentNoise(t *testing.T) {
	n1, n2 := NewOpenSimplex(1), NewOpenSimplex(2)
	for i := 0; i < 100; i++ {
		x, y := float64(i)*0.1+0.05, float64(i)*0.2+0.05
		if n1.Eval2(x, y) != n2.Eval2(x, y) {
			return
		}
	}
	t.Error("different seeds should produce different noise")
}

func TestOffsetShiftsDomain(t *testing.T) {
	base := NewOpenSimplex(7)
	o := Offset{Noise: base, DX: 3.5, DY: -1.25}
	for i := 0; i < 50; i++ {
		x, y := float64(i)*0.3, float64(i)*0.7
		if o.Eval2(x, y) != base.Eval2(x+3.5, y-1.25) {
			t.Fatalf("offset noise does not match shifted base at (%f, %f)", x, y)
		}
	}
}

func TestOctaveSmoothness(t *testing.T) {
	n := Octave{Noise: NewOpenSimplex(456), Octaves: 4, Persistence: 0.5}
	prev := n.Eval2(0, 0)
	for i := 1; i < 1000; i++ {
		cur := n.Eval2(float64(i)*0.01, 0)
		if diff := math.Abs(cur - prev); diff > 0.1 {
			t.Fatalf("noise changed too rapidly at step %d: diff=%f", i, diff)
		}
		prev = cur
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		conf    Config
		wantErr error
		fails   bool
	}{
		{name: "default", conf: Config{Seed: 1}},
		{name: "perlin", conf: Config{Kind: KindPerlin, Seed: 1}},
		{name: "octaves", conf: Config{Seed: 1, Octaves: 4, Persistence: 0.5}},
		{name: "unknown", conf: Config{Kind: "value"}, wantErr: ErrUnknownKind, fails: true},
		{name: "bad persistence", conf: Config{Octaves: 3, Persistence: 0}, fails: true},
	}
	for _, tt := range tests {
		n, err := New(tt.conf)
		if tt.fails {
			if err == nil {
				t.Errorf("%s: expected error", tt.name)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("%s: got error %v, want %v", tt.name, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if v := n.Eval2(0.3, 0.7); v < -1 || v > 1 {
			t.Errorf("%s: value %f out of range", tt.name, v)
		}
	}
}

func TestNewPerlinRejectsInvalidParameters(t *testing.T) {
	if _, err := NewPerlin(2, 2, 0, 1); err == nil {
		t.Error("expected error for zero octaves")
	}
	if _, err := NewPerlin(-1, 2, 3, 1); err == nil {
		t.Error("expected error for negative alpha")
	}
}
