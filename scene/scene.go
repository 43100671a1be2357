// Package scene composes a set of generated hex tiles, each of a single biome,
// placed at offsets in a shared world.
package scene

import (
	"fmt"

	"github.com/df-mc/hexworld/world"
	"github.com/df-mc/hexworld/world/generator/hexgen"
	"github.com/df-mc/hexworld/world/tilestore"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Scene is a set of generated tiles.
type Scene struct {
	conf  Config
	tiles []*hexgen.Tile
}

// Tiles returns the tiles of the scene in the order they were configured.
func (s *Scene) Tiles() []*hexgen.Tile {
	return append([]*hexgen.Tile(nil), s.tiles...)
}

// Tile looks up a tile of the scene by its ID.
func (s *Scene) Tile(id uuid.UUID) (*hexgen.Tile, bool) {
	for _, t := range s.tiles {
		if t.ID() == id {
			return t, true
		}
	}
	return nil, false
}

// TileSummary holds the counts of a generated tile.
type TileSummary struct {
	ID     uuid.UUID
	Biome  string
	Offset mgl64.Vec2
	Cells  int
	// Objects holds the number of objects placed per kind.
	Objects map[world.ObjectKind]int
	Report  hexgen.Report
}

// Summary returns a summary of every tile of the scene.
func (s *Scene) Summary() []TileSummary {
	summaries := make([]TileSummary, 0, len(s.tiles))
	for _, t := range s.tiles {
		cells, _ := t.Cells()
		report, _ := t.Report()
		sum := TileSummary{
			ID:      t.ID(),
			Biome:   t.Biome().Name(),
			Offset:  t.Offset(),
			Cells:   len(cells),
			Objects: make(map[world.ObjectKind]int, len(world.ObjectKinds())),
			Report:  report,
		}
		for _, kind := range world.ObjectKinds() {
			instances, _ := t.Instances(kind)
			sum.Objects[kind] = len(instances)
		}
		summaries = append(summaries, sum)
	}
	return summaries
}

// Close closes the tile provider of the scene.
func (s *Scene) Close() error {
	if err := s.conf.Provider.Close(); err != nil {
		return fmt.Errorf("close tile provider: %w", err)
	}
	return nil
}

// save stores a snapshot of t in the tile provider of the scene.
func (s *Scene) save(t *hexgen.Tile) error {
	if _, ok := s.conf.Provider.(tilestore.NopProvider); ok {
		return nil
	}
	snap, err := tilestore.SnapshotOf(t)
	if err != nil {
		return err
	}
	if err := s.conf.Provider.SaveTile(snap); err != nil {
		return fmt.Errorf("save tile: %w", err)
	}
	return nil
}

// Load loads the stored snapshot of a tile of the scene.
// tilestore.ErrNotFound is returned if the tile was never saved.
func (s *Scene) Load(id uuid.UUID) (tilestore.Snapshot, error) {
	if _, ok := s.Tile(id); !ok {
		return tilestore.Snapshot{}, fmt.Errorf("load tile %v: not part of the scene: %w", id, tilestore.ErrNotFound)
	}
	return s.conf.Provider.LoadTile(id)
}
