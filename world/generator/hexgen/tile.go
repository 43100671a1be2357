package hexgen

import (
	"encoding/binary"
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/df-mc/hexworld/world"
	"github.com/df-mc/hexworld/world/populate"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// ErrNotGenerated is returned when the contents of a Tile are queried before
// Tile.Generate was called.
var ErrNotGenerated = errors.New("hexgen: tile not generated")

// tileNamespace is the namespace of the name-based UUIDs of tiles.
var tileNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("hexworld:tile"))

// Report holds counters of the anomalies handled while generating a tile.
type Report struct {
	// MalformedColours is the number of cells whose biome produced a colour
	// that was not valid. These cells were coloured grey instead.
	MalformedColours int
	// SkippedPlacements is the number of objects that were not placed because
	// the position of their cell was not finite.
	SkippedPlacements int
	// Water holds the outcome of water detection. It is zero for biomes
	// without water.
	Water WaterStats
}

// Tile is a self-contained hexagonal island of cells of a single biome, placed
// at an offset in the world. A Tile is empty until Generate is called.
type Tile struct {
	g      *Generator
	b      binding
	offset mgl64.Vec2
	id     uuid.UUID
	seed   uint64

	mu        sync.Mutex
	generated bool
	cells     []*world.Cell
	instances map[world.ObjectKind][]world.Instance
	report    Report
}

// NewTile creates an ungenerated tile of biome b with its centre at offset on
// the world x/z plane. Tiles created with the same generator seed, biome and
// offset generate identically and share the same ID.
func (g *Generator) NewTile(b world.Biome, offset mgl64.Vec2) (*Tile, error) {
	if b == nil {
		return nil, ErrNilBiome
	}
	key := tileKey(g.conf.Seed, b, offset)
	return &Tile{
		g:      g,
		b:      bind(b),
		offset: offset,
		id:     uuid.NewSHA1(tileNamespace, key),
		seed:   xxhash.Sum64(key),
	}, nil
}

// tileKey returns the bytes that identify a tile.
func tileKey(seed int64, b world.Biome, offset mgl64.Vec2) []byte {
	key := make([]byte, 0, 24+len(b.Name()))
	key = binary.LittleEndian.AppendUint64(key, uint64(seed))
	key = binary.LittleEndian.AppendUint64(key, math.Float64bits(offset[0]))
	key = binary.LittleEndian.AppendUint64(key, math.Float64bits(offset[1]))
	return append(key, b.Name()...)
}

// ID returns the deterministic ID of the tile.
func (t *Tile) ID() uuid.UUID {
	return t.id
}

// Biome returns the biome of the tile.
func (t *Tile) Biome() world.Biome {
	return t.b.biome
}

// Offset returns the world x/z position of the centre of the tile.
func (t *Tile) Offset() mgl64.Vec2 {
	return t.offset
}

// Generated checks if Generate was called on the tile.
func (t *Tile) Generated() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.generated
}

// Generate generates the cells of the tile, moves them to the offset of the
// tile, detects water and finally places objects on the resulting cells.
// Generate is safe to call multiple times: calls after the first are no-ops.
func (t *Tile) Generate() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.generated {
		t.g.conf.Log.Debug("tile already generated", "id", t.id, "biome", t.b.biome.Name())
		return
	}

	cells, malformed := t.g.cells(t.b)
	for _, c := range cells {
		c.X += t.offset[0]
		c.Z += t.offset[1]
	}
	t.report.MalformedColours = malformed
	if t.b.water != nil {
		t.report.Water = DetectWater(cells, *t.b.water)
	}

	t.instances = make(map[world.ObjectKind][]world.Instance, len(world.ObjectKinds()))
	r := rand.New(rand.NewPCG(t.seed, t.seed^0x9e3779b97f4a7c15))
	placement := populate.Placement{HeightStep: t.g.conf.HeightStep}
	for _, kind := range world.ObjectKinds() {
		for _, p := range t.b.populators {
			if p.Kind() != kind {
				continue
			}
			placed, skipped := p.Populate(cells, t.b.biome, r, placement)
			t.instances[kind] = append(t.instances[kind], placed...)
			t.report.SkippedPlacements += skipped
		}
	}
	if t.report.SkippedPlacements > 0 {
		t.g.conf.Log.Warn("skipped object placements on cells with invalid position", "id", t.id, "biome", t.b.biome.Name(), "count", t.report.SkippedPlacements)
	}
	t.cells = cells
	t.generated = true
}

// Cells returns copies of the cells of the tile. Changing them does not
// affect the tile. ErrNotGenerated is returned if Generate was not yet called.
func (t *Tile) Cells() ([]*world.Cell, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.generated {
		return nil, ErrNotGenerated
	}
	cells := make([]*world.Cell, len(t.cells))
	for i, c := range t.cells {
		cp := *c
		if c.WaterHeight != nil {
			h := *c.WaterHeight
			cp.WaterHeight = &h
		}
		cells[i] = &cp
	}
	return cells, nil
}

// Instances returns the objects of a kind placed on the tile. ErrNotGenerated
// is returned if Generate was not yet called.
func (t *Tile) Instances(kind world.ObjectKind) ([]world.Instance, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.generated {
		return nil, ErrNotGenerated
	}
	return slices.Clone(t.instances[kind]), nil
}

// Report returns the anomalies handled while generating the tile.
// ErrNotGenerated is returned if Generate was not yet called.
func (t *Tile) Report() (Report, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.generated {
		return Report{}, ErrNotGenerated
	}
	return t.report, nil
}
