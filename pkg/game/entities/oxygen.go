package entities

import "lifesupport/pkg/game/gas"

// OxygenGenerator adds O2 to its tile while the tile is powered
type OxygenGenerator struct {
	base

	Rate float64
}

// NewOxygenGenerator creates a generator with the default output
func NewOxygenGenerator() *OxygenGenerator {
	return &OxygenGenerator{Rate: 10}
}

func (o *OxygenGenerator) Kind() Kind { return KindOxygenGenerator }

// Generate adds Rate O2 to the tile when powered. Returns true if gas was produced.
func (o *OxygenGenerator) Generate(tile *gas.Cell, powered bool) bool {
	if o.Cell == nil || tile == nil || !powered {
		return false
	}
	tile.Add(gas.O2, o.Rate)
	return true
}
