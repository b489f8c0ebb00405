package entities

import "lifesupport/pkg/game/gas"

// Spac12 harvests gas from vacuum. It only works on tiles outside any room.
type Spac12 struct {
	base

	Species gas.Species
	Rate    float64
	// RequiresPower selects the legacy variant that only runs on a powered tile
	RequiresPower bool
}

// NewSpac12 creates an N2 harvester
func NewSpac12() *Spac12 {
	return &Spac12{
		Species: gas.N2,
		Rate:    2.0,
	}
}

func (s *Spac12) Kind() Kind { return KindSpac12 }

// Generate adds Rate of Species to target: the pipe network gas if the unit is
// connected to one, otherwise its own tile. inRoom and powered describe the
// unit's tile. Returns true if gas was produced.
func (s *Spac12) Generate(target *gas.Cell, inRoom, powered bool) bool {
	if s.Cell == nil || target == nil || inRoom {
		return false
	}
	if s.RequiresPower && !powered {
		return false
	}
	target.Add(s.Species, s.Rate)
	return true
}
