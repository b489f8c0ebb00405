// Package generator builds starting layouts for a simulation, either from
// hand-drawn ASCII scenarios or procedurally.
package generator

import (
	"math/rand"
	"sort"

	"lifesupport/pkg/game/sim"
)

// Generator is an interface for layout building algorithms
type Generator interface {
	// Generate paints the layout onto an empty simulator
	Generate(s *sim.Simulator, rng *rand.Rand) error
	Name() string
}

// Available generators
var (
	Habitat  = habitatLayout
	Transfer = transferLayout
	BSP      = &BSPGenerator{}
)

// DefaultGenerator is the default layout generator
var DefaultGenerator Generator = Habitat

var registry = map[string]Generator{
	"habitat":  Habitat,
	"transfer": Transfer,
	"bsp":      BSP,
}

// Register adds or replaces a generator under the given key
func Register(name string, g Generator) {
	registry[name] = g
}

// ByName returns the registered generator with the given key
func ByName(name string) (Generator, bool) {
	g, ok := registry[name]
	return g, ok
}

// Names returns the registered generator keys in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
