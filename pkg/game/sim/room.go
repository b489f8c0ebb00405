package sim

import (
	"github.com/zyedidia/generic/mapset"

	"lifesupport/pkg/engine/world"
	"lifesupport/pkg/game/gas"
	gw "lifesupport/pkg/game/world"
)

// Room is an enclosed region of open tiles sharing an aggregate atmosphere
type Room struct {
	ID    int
	Tiles mapset.Set[*world.Cell]

	// Gases is the per-species mean of the member tiles, refreshed each
	// diffusion tick
	Gases gas.Cell

	// Damage only ever grows
	Damage float64
}

func newRoom(id int, cells []*world.Cell) *Room {
	r := &Room{
		ID:    id,
		Tiles: mapset.New[*world.Cell](),
	}
	for _, cell := range cells {
		r.Tiles.Put(cell)
	}
	r.refreshGases()
	return r
}

// Size returns the number of member tiles
func (r *Room) Size() int {
	return r.Tiles.Size()
}

// Contains returns true if cell is a member of the room
func (r *Room) Contains(cell *world.Cell) bool {
	return r.Tiles.Has(cell)
}

// Cells returns the member tiles in row-major order
func (r *Room) Cells() []*world.Cell {
	cells := make([]*world.Cell, 0, r.Tiles.Size())
	r.Tiles.Each(func(cell *world.Cell) {
		cells = append(cells, cell)
	})
	sortCells(cells)
	return cells
}

// Pressure returns the aggregate pressure of the room
func (r *Room) Pressure() float64 {
	return r.Gases.Pressure()
}

// Breathability classifies the aggregate atmosphere
func (r *Room) Breathability() gas.Breathability {
	return gas.Classify(r.Gases)
}

// gasCells returns pointers to every member tile's gas, row-major
func (r *Room) gasCells() []*gas.Cell {
	cells := r.Cells()
	out := make([]*gas.Cell, len(cells))
	for i, cell := range cells {
		out[i] = &gw.GetTileData(cell).Gases
	}
	return out
}

func (r *Room) refreshGases() {
	cells := r.Cells()
	snapshot := make([]gas.Cell, len(cells))
	for i, cell := range cells {
		snapshot[i] = gw.GetTileData(cell).Gases
	}
	r.Gases = gas.Mean(snapshot)
}

// checkPressure applies over-pressure damage to the room and to every member
// tile carrying a machine or wiring. Returns true if damage was applied.
func (r *Room) checkPressure(maxPressure, rate float64) bool {
	if r.Pressure() <= maxPressure {
		return false
	}
	r.Damage += rate
	r.Tiles.Each(func(cell *world.Cell) {
		data := gw.GetTileData(cell)
		if data.Component == nil && !data.Wire {
			return
		}
		data.Damage = min(1, data.Damage+rate)
	})
	return true
}
