// Package world holds the data model shared by the hex world generator: cells,
// biomes and the object instances placed on top of them.
package world

import (
	"github.com/df-mc/hexworld/world/hex"
	"github.com/lucasb-eyer/go-colorful"
)

// Cell is a single hexagonal column of a tile. Cells are created by the cell
// generator, reclassified by water detection and finally marked occupied by
// object placement. A Cell is owned by exactly one tile.
type Cell struct {
	// Q and R are the axial coordinates of the cell. They are unique within a
	// tile.
	Q, R int
	// X and Z are the world-space coordinates of the centre of the cell,
	// including the offset of the tile it belongs to once that tile has been
	// generated.
	X, Z float64
	// Height is the height of the column in steps.
	Height float64
	// HeightNorm is Height rescaled to [0, 1] within the height range of the
	// biome.
	HeightNorm float64
	// Biome is the biome the cell was generated with.
	Biome Biome
	// CandidateWater is set by the biome when the cell could become water. It is
	// cleared by water detection for cells that end up not being water.
	CandidateWater bool
	// Water is true if the cell is part of a confirmed body of water.
	Water bool
	// WaterHeight overrides Height for rendering the surface of water cells. It
	// is nil if the water follows the terrain.
	WaterHeight *float64
	// Colour is the colour of the top of the column. Each component is within
	// [0, 1].
	Colour colorful.Color
	// Occupied is true once an object that reserves the cell was placed on it.
	Occupied bool
}

// Coord returns the axial coordinate of the cell.
func (c *Cell) Coord() hex.Coord {
	return hex.Coord{Q: c.Q, R: c.R}
}

// SurfaceHeight returns the height of the visible surface of the cell: the
// water height for water cells that have one, the column height otherwise.
func (c *Cell) SurfaceHeight() float64 {
	if c.Water && c.WaterHeight != nil {
		return *c.WaterHeight
	}
	return c.Height
}
