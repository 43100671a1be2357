package tilestore

import (
	"fmt"

	"github.com/df-mc/hexworld/world"
	"github.com/df-mc/hexworld/world/generator/hexgen"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

// Snapshot is the stored form of a generated tile: everything a renderer
// needs to draw it without generating it again.
type Snapshot struct {
	ID                string           `nbt:"ID"`
	Biome             string           `nbt:"Biome"`
	OffsetX           float64          `nbt:"OffsetX"`
	OffsetZ           float64          `nbt:"OffsetZ"`
	Cells             []CellRecord     `nbt:"Cells"`
	Instances         []InstanceRecord `nbt:"Instances"`
	MalformedColours  int32            `nbt:"MalformedColours"`
	SkippedPlacements int32            `nbt:"SkippedPlacements"`
}

// CellRecord is the stored form of a world.Cell.
type CellRecord struct {
	Q      int32   `nbt:"Q"`
	R      int32   `nbt:"R"`
	X      float64 `nbt:"X"`
	Z      float64 `nbt:"Z"`
	Height float64 `nbt:"Height"`
	// Colour is the colour of the cell as a hex string, such as #7cb342.
	Colour string `nbt:"Colour"`
	Water  uint8  `nbt:"Water"`
	// Surface is the height of the visible surface of the cell.
	Surface float64 `nbt:"Surface"`
}

// InstanceRecord is the stored form of a world.Instance. Transform holds the
// sixteen elements of the transform matrix in column-major order.
type InstanceRecord struct {
	Kind      uint8     `nbt:"Kind"`
	Transform []float64 `nbt:"Transform"`
}

// SnapshotOf creates a Snapshot of a generated tile.
func SnapshotOf(t *hexgen.Tile) (Snapshot, error) {
	cells, err := t.Cells()
	if err != nil {
		return Snapshot{}, fmt.Errorf("snapshot tile %v: %w", t.ID(), err)
	}
	report, _ := t.Report()
	s := Snapshot{
		ID:                t.ID().String(),
		Biome:             t.Biome().Name(),
		OffsetX:           t.Offset()[0],
		OffsetZ:           t.Offset()[1],
		Cells:             make([]CellRecord, 0, len(cells)),
		MalformedColours:  int32(report.MalformedColours),
		SkippedPlacements: int32(report.SkippedPlacements),
	}
	for _, c := range cells {
		rec := CellRecord{
			Q: int32(c.Q), R: int32(c.R),
			X: c.X, Z: c.Z,
			Height:  c.Height,
			Colour:  c.Colour.Hex(),
			Surface: c.SurfaceHeight(),
		}
		if c.Water {
			rec.Water = 1
		}
		s.Cells = append(s.Cells, rec)
	}
	for _, kind := range world.ObjectKinds() {
		instances, _ := t.Instances(kind)
		for _, inst := range instances {
			s.Instances = append(s.Instances, InstanceRecord{Kind: uint8(inst.Kind), Transform: inst.Transform[:]})
		}
	}
	return s, nil
}

// TileID parses the ID of the tile the snapshot was made of.
func (s Snapshot) TileID() (uuid.UUID, error) {
	return uuid.Parse(s.ID)
}

// WorldInstances converts the instance records of the snapshot back to
// instances.
func (s Snapshot) WorldInstances() ([]world.Instance, error) {
	instances := make([]world.Instance, 0, len(s.Instances))
	for i, rec := range s.Instances {
		if len(rec.Transform) != 16 {
			return nil, fmt.Errorf("instance %d: transform has %d elements, expected 16", i, len(rec.Transform))
		}
		var m mgl64.Mat4
		copy(m[:], rec.Transform)
		instances = append(instances, world.Instance{Kind: world.ObjectKind(rec.Kind), Transform: m})
	}
	return instances, nil
}

// CellColour parses the colour of a cell record.
func (c CellRecord) CellColour() (colorful.Color, error) {
	return colorful.Hex(c.Colour)
}

func encodeSnapshot(s Snapshot) ([]byte, error) {
	b, err := nbt.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return b, nil
}

func decodeSnapshot(b []byte) (Snapshot, error) {
	var s Snapshot
	if err := nbt.Unmarshal(b, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, nil
}
