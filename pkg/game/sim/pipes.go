package sim

import (
	"github.com/zyedidia/generic/mapset"

	"lifesupport/pkg/engine/world"
	"lifesupport/pkg/game/gas"
	gw "lifesupport/pkg/game/world"
)

// PipeNetwork is a set of connected pipe tiles sharing one gas container
type PipeNetwork struct {
	ID    int
	Tiles mapset.Set[*world.Cell]
	Gases gas.Cell
}

func newPipeNetwork(id int) *PipeNetwork {
	return &PipeNetwork{
		ID:    id,
		Tiles: mapset.New[*world.Cell](),
	}
}

// Size returns the number of pipe tiles in the network
func (n *PipeNetwork) Size() int {
	return n.Tiles.Size()
}

// Cells returns the member tiles in row-major order
func (n *PipeNetwork) Cells() []*world.Cell {
	cells := make([]*world.Cell, 0, n.Tiles.Size())
	n.Tiles.Each(func(cell *world.Cell) {
		cells = append(cells, cell)
	})
	sortCells(cells)
	return cells
}

// Predominant returns the species the network holds most of
func (n *PipeNetwork) Predominant() (gas.Species, bool) {
	return n.Gases.Predominant()
}

func (n *PipeNetwork) add(cell *world.Cell) {
	n.Tiles.Put(cell)
	gw.GetTileData(cell).Network = n.ID
}

// discoverNetwork walks the pipes reachable from cell and returns the network
// they belong to, or nil when no pipe is reachable. The walk starts at the
// cell itself when it carries a pipe, otherwise at its pipe neighbours.
//
// The first already-assigned tile met decides the result; pipes that were
// never assigned join that network, or a new one allocated on demand.
// Two networks bridged by a new pipe are not merged.
func (s *Simulator) discoverNetwork(cell *world.Cell) *PipeNetwork {
	var queue []*world.Cell
	if gw.HasPipe(cell) {
		queue = append(queue, cell)
	} else {
		for _, neighbor := range cell.GetNeighbors() {
			if gw.HasPipe(neighbor) {
				queue = append(queue, neighbor)
			}
		}
	}

	var network *PipeNetwork
	var unassigned []*world.Cell
	visited := mapset.New[*world.Cell]()

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited.Has(current) {
			continue
		}
		visited.Put(current)

		if id := gw.GetTileData(current).Network; id != gw.NoNetwork {
			if network == nil {
				network = s.networks[id]
			}
		} else {
			unassigned = append(unassigned, current)
		}

		for _, neighbor := range current.GetNeighbors() {
			if gw.HasPipe(neighbor) && !visited.Has(neighbor) {
				queue = append(queue, neighbor)
			}
		}
	}

	if network == nil && len(unassigned) > 0 {
		network = newPipeNetwork(s.allocNetworkID())
		s.networks[network.ID] = network
	}
	for _, c := range unassigned {
		network.add(c)
	}
	return network
}

func (s *Simulator) allocNetworkID() int {
	id := s.nextNetwork
	s.nextNetwork++
	return id
}

// detachPipe removes cell from its network. The remaining tiles are
// regrouped by connectivity; the gas is shared out by tile count and the
// largest part keeps the id. A network left with no tiles is dropped with
// its gas.
func (s *Simulator) detachPipe(cell *world.Cell) {
	data := gw.GetTileData(cell)
	network, ok := s.networks[data.Network]
	data.Network = gw.NoNetwork
	if !ok {
		return
	}
	network.Tiles.Remove(cell)
	delete(s.networks, network.ID)

	total := network.Size()
	if total == 0 {
		return
	}

	var parts [][]*world.Cell
	seen := mapset.New[*world.Cell]()
	for _, start := range network.Cells() {
		if seen.Has(start) {
			continue
		}
		part := collectPipes(start, network.Tiles, seen)
		parts = append(parts, part)
	}

	largest := 0
	for i, part := range parts {
		if len(part) > len(parts[largest]) {
			largest = i
		}
	}

	for i, part := range parts {
		id := network.ID
		if i != largest {
			id = s.allocNetworkID()
		}
		n := newPipeNetwork(id)
		share := float64(len(part)) / float64(total)
		n.Gases = network.Gases
		n.Gases.Scale(share, 0)
		for _, c := range part {
			n.add(c)
		}
		s.networks[id] = n
	}
}

// collectPipes gathers the tiles of members connected to start, marking them in seen
func collectPipes(start *world.Cell, members mapset.Set[*world.Cell], seen mapset.Set[*world.Cell]) []*world.Cell {
	var part []*world.Cell
	queue := []*world.Cell{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if seen.Has(current) {
			continue
		}
		seen.Put(current)
		part = append(part, current)
		for _, neighbor := range current.GetNeighbors() {
			if members.Has(neighbor) && !seen.Has(neighbor) {
				queue = append(queue, neighbor)
			}
		}
	}
	return part
}
