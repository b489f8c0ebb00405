package entities

import "lifesupport/pkg/game/gas"

// Plant converts CO2 and N2 on its tile into O2. It needs no power.
type Plant struct {
	base

	O2Rate float64 // O2 produced per CO2 conversion
	CO2Use float64
	N2Use  float64
}

// NewPlant creates a plant with the default conversion rates
func NewPlant() *Plant {
	return &Plant{
		O2Rate: 0.1,
		CO2Use: 0.2,
		N2Use:  0.1,
	}
}

func (p *Plant) Kind() Kind { return KindPlant }

// Generate runs both conversions independently and returns true if either ran
func (p *Plant) Generate(tile *gas.Cell) bool {
	if p.Cell == nil || tile == nil {
		return false
	}
	converted := false
	if tile.CO2 >= p.CO2Use {
		tile.Consume(gas.CO2, p.CO2Use)
		tile.Add(gas.O2, p.O2Rate)
		converted = true
	}
	// N2 converts at half the CO2 yield
	if tile.N2 >= p.N2Use {
		tile.Consume(gas.N2, p.N2Use)
		tile.Add(gas.O2, p.O2Rate*0.5)
		converted = true
	}
	return converted
}
