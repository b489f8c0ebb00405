// Package gas models the three-species gas mix (O2, CO2, N2) held by tiles,
// rooms and pipe networks.
package gas

import (
	"fmt"
	"math"
	"strings"
)

// Species identifies one of the simulated gases
type Species int

const (
	O2 Species = iota
	CO2
	N2
)

// AllSpecies returns every simulated species in a fixed order
func AllSpecies() []Species {
	return []Species{O2, CO2, N2}
}

// ParseSpecies returns the species whose formula matches name, ignoring case
func ParseSpecies(name string) (Species, bool) {
	for _, s := range AllSpecies() {
		if strings.EqualFold(s.String(), name) {
			return s, true
		}
	}
	return 0, false
}

// String returns the chemical formula of the species
func (s Species) String() string {
	switch s {
	case O2:
		return "O2"
	case CO2:
		return "CO2"
	case N2:
		return "N2"
	default:
		return "Unknown"
	}
}

// PressureScale converts a total gas quantity into pressure units
const PressureScale = 100.0

// Cell is a container of non-negative gas quantities.
// Add, Consume and MixWith are the only mutators used by the simulation.
type Cell struct {
	O2  float64
	CO2 float64
	N2  float64
}

// Total returns the summed quantity of every species
func (c Cell) Total() float64 {
	return c.O2 + c.CO2 + c.N2
}

// Pressure returns the total quantity normalized by PressureScale
func (c Cell) Pressure() float64 {
	return c.Total() / PressureScale
}

// Get returns the quantity of one species
func (c Cell) Get(s Species) float64 {
	switch s {
	case O2:
		return c.O2
	case CO2:
		return c.CO2
	case N2:
		return c.N2
	default:
		return 0
	}
}

func (c *Cell) field(s Species) *float64 {
	switch s {
	case O2:
		return &c.O2
	case CO2:
		return &c.CO2
	case N2:
		return &c.N2
	default:
		return nil
	}
}

// Add adds amount of a species. Negative amounts are ignored.
func (c *Cell) Add(s Species, amount float64) {
	f := c.field(s)
	if f == nil || amount <= 0 {
		return
	}
	*f += amount
}

// Consume removes up to amount of a species, clamping at zero.
// Returns the quantity actually removed.
func (c *Cell) Consume(s Species, amount float64) float64 {
	f := c.field(s)
	if f == nil || amount <= 0 {
		return 0
	}
	removed := amount
	if removed > *f {
		removed = *f
	}
	*f -= removed
	return removed
}

// MixWith moves (other - c) * rate of each species from other into c, and
// the same quantity out of other. The pair's combined total is unchanged.
func (c *Cell) MixWith(other *Cell, rate float64) {
	for _, s := range AllSpecies() {
		mine, theirs := c.field(s), other.field(s)
		diff := (*theirs - *mine) * rate
		*mine += diff
		*theirs -= diff
	}
}

// Drift adds (other - self) * rate of every species to c, where self and
// other are snapshots taken before the pass that calls it
func (c *Cell) Drift(self, other Cell, rate float64) {
	c.O2 += (other.O2 - self.O2) * rate
	c.CO2 += (other.CO2 - self.CO2) * rate
	c.N2 += (other.N2 - self.N2) * rate
}

// Scale multiplies every species by factor and snaps values below epsilon to zero
func (c *Cell) Scale(factor, epsilon float64) {
	for _, s := range AllSpecies() {
		f := c.field(s)
		*f *= factor
		if *f < epsilon {
			*f = 0
		}
	}
}

// IsFinite reports whether every species holds a finite quantity
func (c Cell) IsFinite() bool {
	for _, s := range AllSpecies() {
		if v := c.Get(s); math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Predominant returns the species with the largest quantity.
// Ties resolve in O2, CO2, N2 order. ok is false for an empty cell.
func (c Cell) Predominant() (s Species, ok bool) {
	if c.Total() <= 0 {
		return O2, false
	}
	s = O2
	for _, candidate := range []Species{CO2, N2} {
		if c.Get(candidate) > c.Get(s) {
			s = candidate
		}
	}
	return s, true
}

// Mean returns the per-species arithmetic mean of cells, or an empty cell
func Mean(cells []Cell) Cell {
	var sum Cell
	if len(cells) == 0 {
		return sum
	}
	for _, c := range cells {
		sum.O2 += c.O2
		sum.CO2 += c.CO2
		sum.N2 += c.N2
	}
	n := float64(len(cells))
	return Cell{O2: sum.O2 / n, CO2: sum.CO2 / n, N2: sum.N2 / n}
}

func (c Cell) String() string {
	return fmt.Sprintf("O2=%.2f CO2=%.2f N2=%.2f", c.O2, c.CO2, c.N2)
}
