package scene

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/df-mc/hexworld/world"
	"github.com/df-mc/hexworld/world/biome"
	"github.com/df-mc/hexworld/world/generator/hexgen"
	"github.com/df-mc/hexworld/world/hex"
	"github.com/df-mc/hexworld/world/noise"
	"github.com/df-mc/hexworld/world/tilestore"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrUnknownBiome is returned by UserConfig.Config if a tile refers to a biome
// that is not registered.
var ErrUnknownBiome = errors.New("unknown biome")

// Config contains options for composing a Scene.
type Config struct {
	// Log is the Logger to use for logging information. If nil, Log is set to
	// slog.Default().
	Log *slog.Logger
	// Seed seeds the placement of objects on all tiles of the scene.
	Seed int64
	// GridRadius is the radius of every tile in cells.
	GridRadius int
	// Layout projects the cells of tiles to world space.
	Layout hex.Layout
	// HeightStep is the height in world units of a single height step.
	HeightStep float64
	// Noise is the source of height for all tiles. It must not be nil.
	Noise noise.Noise
	// Tiles holds the tiles to compose the scene of.
	Tiles []TileSpec
	// Provider is the tilestore.Provider generated tiles are saved to. If
	// nil, tiles are not saved.
	Provider tilestore.Provider
}

// TileSpec describes a single tile of a Scene.
type TileSpec struct {
	Biome  world.Biome
	Offset mgl64.Vec2
}

// New creates a Scene using the fields of conf and generates all of its tiles.
// An error is returned if the generator could not be created or if saving a
// tile failed. The Provider is closed if an error is returned.
func (conf Config) New() (s *Scene, err error) {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	if conf.Provider == nil {
		conf.Provider = tilestore.NopProvider{}
	}
	defer func() {
		if err != nil {
			if cerr := conf.Provider.Close(); cerr != nil {
				conf.Log.Error("close tile provider: " + cerr.Error())
			}
		}
	}()
	g, err := hexgen.New(hexgen.Config{
		Log:        conf.Log,
		Seed:       conf.Seed,
		GridRadius: conf.GridRadius,
		Layout:     conf.Layout,
		HeightStep: conf.HeightStep,
		Noise:      conf.Noise,
	})
	if err != nil {
		return nil, fmt.Errorf("create generator: %w", err)
	}
	s = &Scene{conf: conf, tiles: make([]*hexgen.Tile, 0, len(conf.Tiles))}
	for i, spec := range conf.Tiles {
		t, err := g.NewTile(spec.Biome, spec.Offset)
		if err != nil {
			return nil, fmt.Errorf("create tile %d: %w", i, err)
		}
		t.Generate()
		if err := s.save(t); err != nil {
			return nil, err
		}
		s.tiles = append(s.tiles, t)
	}
	return s, nil
}

// UserConfig is the user configuration of a Scene. It may be serialised and
// can be converted to a Config by calling UserConfig.Config().
type UserConfig struct {
	World struct {
		// Seed seeds the generation of the scene.
		Seed int64
		// GridRadius is the radius of each tile in cells.
		GridRadius int
		// HexRadius is the circumradius of a single cell in world units.
		HexRadius float64
		// Orientation is the orientation of cells: "pointy" or "flat".
		Orientation string
		// HeightStep is the height in world units of a single height step.
		HeightStep float64
	}
	Noise struct {
		// Kind is the noise algorithm used for height: "opensimplex" or
		// "perlin".
		Kind string
		// Octaves is the number of octaves of noise layered.
		Octaves int
		// Persistence is the amplitude multiplier between octaves.
		Persistence float64
	}
	Tiles struct {
		// Biomes holds the biome of each tile. The first tile is placed at the
		// origin, the others in rings around it.
		Biomes []string
		// Spacing is the distance between the centres of adjacent tiles. If 0,
		// a spacing that leaves a gap of one cell between tiles is used.
		Spacing float64
	}
	Storage struct {
		// SaveData controls whether generated tiles are saved to a LevelDB
		// database.
		SaveData bool
		// Folder is the folder the database resides in.
		Folder string
	}
}

// Config converts a UserConfig to a Config, so that it may be used for creating
// a Scene. An error is returned if a biome or noise kind is unknown or if the
// tile database could not be opened.
func (uc UserConfig) Config(log *slog.Logger) (Config, error) {
	if log == nil {
		log = slog.Default()
	}
	orientation, ok := hex.ParseOrientation(strings.ToLower(strings.TrimSpace(uc.World.Orientation)))
	if !ok {
		log.Warn("Unknown hex orientation, using pointy.", "value", uc.World.Orientation)
	}
	conf := Config{
		Log:        log,
		Seed:       uc.World.Seed,
		GridRadius: uc.World.GridRadius,
		Layout:     hex.Layout{Radius: uc.World.HexRadius, Orientation: orientation},
		HeightStep: uc.World.HeightStep,
	}
	if conf.Layout.Radius <= 0 {
		conf.Layout.Radius = 1
	}

	var err error
	conf.Noise, err = noise.New(noise.Config{
		Kind:        noise.Kind(strings.ToLower(strings.TrimSpace(uc.Noise.Kind))),
		Seed:        uc.World.Seed,
		Octaves:     uc.Noise.Octaves,
		Persistence: uc.Noise.Persistence,
	})
	if err != nil {
		return conf, fmt.Errorf("create noise: %w", err)
	}

	spacing := uc.Tiles.Spacing
	if spacing <= 0 {
		spacing = DefaultSpacing(conf.GridRadius, conf.Layout)
	}
	offsets := RingOffsets(len(uc.Tiles.Biomes), spacing)
	for i, name := range uc.Tiles.Biomes {
		b, ok := biome.ByName(name)
		if !ok {
			return conf, fmt.Errorf("tile %d: %w %q", i, ErrUnknownBiome, name)
		}
		conf.Tiles = append(conf.Tiles, TileSpec{Biome: b, Offset: offsets[i]})
	}

	if uc.Storage.SaveData {
		conf.Provider, err = tilestore.Open(uc.Storage.Folder, log)
		if err != nil {
			return conf, fmt.Errorf("create tile provider: %w", err)
		}
	}
	return conf, nil
}

// DefaultConfig returns a configuration with the default values filled out.
func DefaultConfig() UserConfig {
	c := UserConfig{}
	c.World.Seed = 0
	c.World.GridRadius = 12
	c.World.HexRadius = 1
	c.World.Orientation = "pointy"
	c.World.HeightStep = 0.5
	c.Noise.Kind = string(noise.KindOpenSimplex)
	c.Noise.Octaves = 3
	c.Noise.Persistence = 0.5
	c.Tiles.Biomes = []string{"plains", "forest", "mountains", "cliffs", "wheat", "clay", "desert"}
	c.Storage.SaveData = false
	c.Storage.Folder = "tiles"
	return c
}

// DefaultSpacing returns the distance between tile centres that leaves a gap
// of about one cell between adjacent tiles of radius gridRadius.
func DefaultSpacing(gridRadius int, l hex.Layout) float64 {
	return float64(2*max(gridRadius, 0)+2) * l.Spacing()
}

// RingOffsets returns count tile offsets: the origin followed by rings of
// tiles around it, with spacing world units between adjacent tiles.
func RingOffsets(count int, spacing float64) []mgl64.Vec2 {
	if count <= 0 {
		return nil
	}
	layout := hex.Layout{Radius: spacing / math.Sqrt(3)}
	offsets := make([]mgl64.Vec2, 0, count)
	for radius := 0; len(offsets) < count; radius++ {
		for _, c := range hex.Ring(radius) {
			if len(offsets) == count {
				break
			}
			x, z := layout.Centre(c)
			offsets = append(offsets, mgl64.Vec2{x, z})
		}
	}
	return offsets
}
