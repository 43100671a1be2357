package hexgen

import (
	"github.com/brentp/intintmap"
	"github.com/df-mc/hexworld/world"
	"github.com/df-mc/hexworld/world/hex"
)

// WaterStats holds the outcome of water detection on a tile.
type WaterStats struct {
	// Clusters is the number of bodies of water formed.
	Clusters int
	// WaterCells is the number of cells that became water.
	WaterCells int
	// Discarded is the number of candidate cells that were part of a cluster
	// too small to form water.
	Discarded int
}

// DetectWater groups the candidate water cells passed into clusters of cells
// that are adjacent on the hex grid. Clusters of at least conf.MinClusterSize
// cells become water, taking the colour and height of conf. Cells of smaller
// clusters are no longer candidates afterwards. The result depends only on the
// clusters found and not on the order of cells.
func DetectWater(cells []*world.Cell, conf world.WaterConfig) WaterStats {
	var stats WaterStats
	minSize := max(conf.MinClusterSize, 1)

	index := intintmap.New(len(cells)+1, 0.6)
	for i, c := range cells {
		if c.CandidateWater {
			index.Put(packCoord(c.Coord()), int64(i))
		}
	}

	visited := make([]bool, len(cells))
	var stack, cluster []int
	for i, c := range cells {
		if !c.CandidateWater || visited[i] {
			continue
		}
		visited[i] = true
		stack, cluster = append(stack[:0], i), cluster[:0]
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			cluster = append(cluster, cur)

			for _, n := range cells[cur].Coord().Neighbours() {
				j, ok := index.Get(packCoord(n))
				if !ok || visited[j] {
					continue
				}
				visited[j] = true
				stack = append(stack, int(j))
			}
		}

		if len(cluster) < minSize {
			for _, j := range cluster {
				cells[j].CandidateWater, cells[j].Water = false, false
			}
			stats.Discarded += len(cluster)
			continue
		}
		for _, j := range cluster {
			w := cells[j]
			w.Water = true
			w.Colour = conf.Colour
			if conf.Height != nil {
				h := *conf.Height
				w.WaterHeight = &h
			}
		}
		stats.Clusters++
		stats.WaterCells += len(cluster)
	}
	return stats
}

// packCoord packs an axial coordinate into a single map key.
func packCoord(c hex.Coord) int64 {
	return int64(c.Q)<<32 | int64(uint32(c.R))
}
