// Package hex implements axial hexagonal grid coordinates: distances,
// adjacency, radius enumeration and projection into world space.
package hex

import (
	"math"

	"github.com/df-mc/hexworld/internal/mathutil"
)

// Coord is a position on a hex grid in axial coordinates. The implicit third
// cube coordinate is -Q-R.
type Coord struct {
	Q, R int
}

// directions holds the six axial neighbour offsets, counter-clockwise starting
// east.
var directions = [6]Coord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Add returns the coordinate c offset by o.
func (c Coord) Add(o Coord) Coord {
	return Coord{Q: c.Q + o.Q, R: c.R + o.R}
}

// Neighbours returns the six coordinates adjacent to c.
func (c Coord) Neighbours() [6]Coord {
	var n [6]Coord
	for i, d := range directions {
		n[i] = c.Add(d)
	}
	return n
}

// Distance returns the number of steps between a and b under 6-neighbour
// adjacency.
func Distance(a, b Coord) int {
	dq, dr := a.Q-b.Q, a.R-b.R
	return (mathutil.Abs(dq) + mathutil.Abs(dr) + mathutil.Abs(dq+dr)) / 2
}

// Count returns the number of coordinates within radius of the origin.
func Count(radius int) int {
	if radius < 0 {
		return 0
	}
	return 3*radius*(radius+1) + 1
}

// Enumerate returns every coordinate within radius of the origin, ordered by q
// and then by r, both ascending. A negative radius yields nil.
func Enumerate(radius int) []Coord {
	if radius < 0 {
		return nil
	}
	coords := make([]Coord, 0, Count(radius))
	for q := -radius; q <= radius; q++ {
		for r := max(-radius, -q-radius); r <= min(radius, -q+radius); r++ {
			coords = append(coords, Coord{Q: q, R: r})
		}
	}
	return coords
}

// Ring returns the coordinates at exactly radius steps from the origin,
// walking counter-clockwise around it. Ring(0) holds only the origin and a
// negative radius yields nil.
func Ring(radius int) []Coord {
	if radius < 0 {
		return nil
	}
	if radius == 0 {
		return []Coord{{}}
	}
	coords := make([]Coord, 0, 6*radius)
	c := Coord{Q: directions[4].Q * radius, R: directions[4].R * radius}
	for _, d := range directions {
		for range radius {
			coords = append(coords, c)
			c = c.Add(d)
		}
	}
	return coords
}

// Orientation is the way hexagons are laid out in world space.
type Orientation uint8

const (
	// Pointy lays hexagons out with a corner pointing along +z.
	Pointy Orientation = iota
	// Flat lays hexagons out with an edge facing +z.
	Flat
)

// String ...
func (o Orientation) String() string {
	switch o {
	case Pointy:
		return "pointy"
	case Flat:
		return "flat"
	}
	return "unknown"
}

// ParseOrientation parses the name of an orientation as returned by
// Orientation.String.
func ParseOrientation(s string) (Orientation, bool) {
	switch s {
	case "pointy", "":
		return Pointy, true
	case "flat":
		return Flat, true
	}
	return 0, false
}

// Layout projects axial coordinates onto the world x/z plane. Radius is the
// circumradius of a single hexagon in world units.
type Layout struct {
	Radius      float64
	Orientation Orientation
}

var sqrt3 = math.Sqrt(3)

// Centre returns the world-space x and z of the centre of the hexagon at c.
func (l Layout) Centre(c Coord) (x, z float64) {
	q, r := float64(c.Q), float64(c.R)
	switch l.Orientation {
	case Flat:
		return l.Radius * 1.5 * q, l.Radius * sqrt3 * (r + q/2)
	default:
		return l.Radius * sqrt3 * (q + r/2), l.Radius * 1.5 * r
	}
}

// Spacing returns the distance between the centres of two adjacent hexagons.
func (l Layout) Spacing() float64 {
	return l.Radius * sqrt3
}
