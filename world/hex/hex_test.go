package hex

import (
	"math"
	"testing"
)

func TestEnumerateWithinRadius(t *testing.T) {
	for radius := 0; radius <= 8; radius++ {
		coords := Enumerate(radius)
		if len(coords) != Count(radius) {
			t.Fatalf("radius %d: got %d coords, want %d", radius, len(coords), Count(radius))
		}
		seen := make(map[Coord]struct{}, len(coords))
		for _, c := range coords {
			if d := Distance(Coord{}, c); d > radius {
				t.Errorf("radius %d: %v has distance %d", radius, c, d)
			}
			if _, ok := seen[c]; ok {
				t.Errorf("radius %d: duplicate coordinate %v", radius, c)
			}
			seen[c] = struct{}{}
		}
	}
}

func TestEnumerateOrder(t *testing.T) {
	coords := Enumerate(3)
	for i := 1; i < len(coords); i++ {
		prev, cur := coords[i-1], coords[i]
		if cur.Q < prev.Q || (cur.Q == prev.Q && cur.R <= prev.R) {
			t.Fatalf("coords not ordered by q then r at %d: %v after %v", i, cur, prev)
		}
	}
}

func TestEnumerateNegativeRadius(t *testing.T) {
	if coords := Enumerate(-1); coords != nil {
		t.Fatalf("expected nil for negative radius, got %v", coords)
	}
}

func TestRing(t *testing.T) {
	if ring := Ring(0); len(ring) != 1 || ring[0] != (Coord{}) {
		t.Fatalf("Ring(0) = %v, want only the origin", ring)
	}
	for radius := 1; radius <= 5; radius++ {
		ring := Ring(radius)
		if len(ring) != 6*radius {
			t.Fatalf("Ring(%d) has %d coordinates, want %d", radius, len(ring), 6*radius)
		}
		seen := make(map[Coord]bool, len(ring))
		for i, c := range ring {
			if d := Distance(Coord{}, c); d != radius {
				t.Fatalf("Ring(%d): %v at distance %d", radius, c, d)
			}
			if seen[c] {
				t.Fatalf("Ring(%d): duplicate %v", radius, c)
			}
			seen[c] = true
			if next := ring[(i+1)%len(ring)]; Distance(c, next) != 1 {
				t.Fatalf("Ring(%d): %v and %v are not adjacent", radius, c, next)
			}
		}
	}
	if Ring(-1) != nil {
		t.Fatal("expected nil for negative radius")
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b Coord
		want int
	}{
		{Coord{0, 0}, Coord{0, 0}, 0},
		{Coord{0, 0}, Coord{1, 0}, 1},
		{Coord{0, 0}, Coord{1, -1}, 1},
		{Coord{0, 0}, Coord{2, -1}, 2},
		{Coord{-2, 3}, Coord{2, -1}, 4},
		{Coord{3, 0}, Coord{-3, 0}, 6},
	}
	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNeighboursAreAdjacent(t *testing.T) {
	c := Coord{Q: 2, R: -5}
	for _, n := range c.Neighbours() {
		if d := Distance(c, n); d != 1 {
			t.Errorf("neighbour %v of %v has distance %d", n, c, d)
		}
	}
}

func TestLayoutNeighbourSpacing(t *testing.T) {
	for _, o := range []Orientation{Pointy, Flat} {
		l := Layout{Radius: 2, Orientation: o}
		cx, cz := l.Centre(Coord{})
		for _, n := range (Coord{}).Neighbours() {
			x, z := l.Centre(n)
			if d := math.Hypot(x-cx, z-cz); math.Abs(d-l.Spacing()) > 1e-9 {
				t.Errorf("%v: neighbour %v at distance %f, want %f", o, n, d, l.Spacing())
			}
		}
	}
}

func TestParseOrientation(t *testing.T) {
	for _, o := range []Orientation{Pointy, Flat} {
		got, ok := ParseOrientation(o.String())
		if !ok || got != o {
			t.Errorf("ParseOrientation(%q) = %v, %v", o.String(), got, ok)
		}
	}
	if _, ok := ParseOrientation("diagonal"); ok {
		t.Error("expected unknown orientation to fail")
	}
}
