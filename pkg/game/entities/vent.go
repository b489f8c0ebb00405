package entities

import "lifesupport/pkg/game/gas"

// DefaultVentRate is the per-species cap a vent moves each update
const DefaultVentRate = 1.0

// vent holds what input and output vents share
type vent struct {
	base

	Rate          float64
	RequiresPower bool
}

// Ready returns true if the vent is placed and its power requirement is met
func (v *vent) Ready(powered bool) bool {
	if v.Cell == nil {
		return false
	}
	return powered || !v.RequiresPower
}

// InputVent pulls gas from its room into the connected pipe network
type InputVent struct {
	vent
}

// NewInputVent creates an input vent with the default rate
func NewInputVent() *InputVent {
	return &InputVent{vent{Rate: DefaultVentRate}}
}

func (v *InputVent) Kind() Kind { return KindInputVent }

// Pull moves up to Rate of each species (bounded by the room mean) out of the
// room tiles, split evenly across them, into network. Only what the tiles
// actually gave up reaches the network. Returns the total moved.
func (v *InputVent) Pull(roomTiles []*gas.Cell, roomMean gas.Cell, network *gas.Cell, powered bool) float64 {
	if !v.Ready(powered) || network == nil || len(roomTiles) == 0 {
		return 0
	}
	moved := 0.0
	for _, s := range gas.AllSpecies() {
		amount := roomMean.Get(s)
		if amount <= 0 {
			continue
		}
		if amount > v.Rate {
			amount = v.Rate
		}
		perTile := amount / float64(len(roomTiles))
		removed := 0.0
		for _, tile := range roomTiles {
			removed += tile.Consume(s, perTile)
		}
		network.Add(s, removed)
		moved += removed
	}
	return moved
}

// OutputVent pushes gas from the connected pipe network into its room
type OutputVent struct {
	vent
}

// NewOutputVent creates an output vent with the default rate
func NewOutputVent() *OutputVent {
	return &OutputVent{vent{Rate: DefaultVentRate}}
}

func (v *OutputVent) Kind() Kind { return KindOutputVent }

// Push moves up to Rate of each species out of network and spreads it evenly
// over the room tiles. Returns the total moved.
func (v *OutputVent) Push(network *gas.Cell, roomTiles []*gas.Cell, powered bool) float64 {
	if !v.Ready(powered) || network == nil || len(roomTiles) == 0 {
		return 0
	}
	moved := 0.0
	for _, s := range gas.AllSpecies() {
		amount := network.Consume(s, v.Rate)
		if amount <= 0 {
			continue
		}
		perTile := amount / float64(len(roomTiles))
		for _, tile := range roomTiles {
			tile.Add(s, perTile)
		}
		moved += amount
	}
	return moved
}
