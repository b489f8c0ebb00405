package sim

import (
	"github.com/zyedidia/generic/mapset"

	"lifesupport/pkg/engine/world"
	gw "lifesupport/pkg/game/world"
)

// AdvancePower clears every powered flag, then floods power from each engine
// tile over connected wire. Running it twice without an edit in between
// yields the same powered set. Returns the number of powered tiles.
func (s *Simulator) AdvancePower() int {
	s.grid.ForEachCell(func(_, _ int, cell *world.Cell) {
		gw.GetTileData(cell).Powered = false
	})

	powered := mapset.New[*world.Cell]()
	s.grid.ForEachCell(func(_, _ int, cell *world.Cell) {
		if gw.HasEngine(cell) {
			s.propagatePower(cell, powered)
		}
	})
	return powered.Size()
}

// propagatePower marks start and every wire tile connected to it as powered
func (s *Simulator) propagatePower(start *world.Cell, powered mapset.Set[*world.Cell]) {
	queue := []*world.Cell{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if powered.Has(current) {
			continue
		}
		powered.Put(current)
		gw.GetTileData(current).Powered = true

		for _, neighbor := range current.GetNeighbors() {
			if gw.HasWire(neighbor) && !powered.Has(neighbor) {
				queue = append(queue, neighbor)
			}
		}
	}
}
