// Package biome implements the biomes that hex world tiles may be generated
// with and a registry to look them up by name.
package biome

import (
	"fmt"
	"slices"
	"strings"

	"github.com/df-mc/hexworld/world"
)

var biomes = map[string]world.Biome{}

// Register registers a biome so that it may be looked up using ByName.
// Register panics if a biome with the same name was already registered.
func Register(b world.Biome) {
	name := strings.ToLower(b.Name())
	if _, ok := biomes[name]; ok {
		panic(fmt.Sprintf("cannot register the same biome (%v) twice", b.Name()))
	}
	biomes[name] = b
}

// ByName looks up a registered biome by its name. The lookup is case
// insensitive.
func ByName(name string) (world.Biome, bool) {
	b, ok := biomes[strings.ToLower(strings.TrimSpace(name))]
	return b, ok
}

// All returns all registered biomes ordered by name.
func All() []world.Biome {
	all := make([]world.Biome, 0, len(biomes))
	for _, b := range biomes {
		all = append(all, b)
	}
	slices.SortFunc(all, func(a, b world.Biome) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return all
}

func init() {
	for _, b := range []world.Biome{
		Plains{},
		Forest{},
		Mountains{},
		Cliffs{},
		WheatField{},
		ClayFlats{},
		Desert{},
		Snow{},
		Swamp{},
	} {
		Register(b)
	}
}
