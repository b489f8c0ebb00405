package sim

import (
	"github.com/zyedidia/generic/mapset"

	"lifesupport/pkg/engine/world"
	gw "lifesupport/pkg/game/world"
)

// FloodFill returns the enclosed region containing (row, col) in row-major
// order. The result is empty when the start is a wall or door, out of bounds,
// or when the open region reaches the grid edge.
func (s *Simulator) FloodFill(row, col int) []*world.Cell {
	return s.floodFill(s.grid.GetCell(row, col))
}

func (s *Simulator) floodFill(start *world.Cell) []*world.Cell {
	if start == nil || gw.IsBarrier(start) {
		return nil
	}

	visited := mapset.New[*world.Cell]()
	queue := []*world.Cell{start}
	region := make([]*world.Cell, 0)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited.Has(current) {
			continue
		}
		visited.Put(current)
		region = append(region, current)

		// Touching the edge means the region leaks into space
		if s.grid.IsOnPerimeter(current.Row, current.Col) || current.IsOpenEdge() {
			return nil
		}

		for _, neighbor := range current.GetNeighbors() {
			if !visited.Has(neighbor) && !gw.IsBarrier(neighbor) {
				queue = append(queue, neighbor)
			}
		}
	}

	sortCells(region)
	return region
}

// ensureRoom returns the room id of cell, creating the room from a flood fill
// when the cell has none. Returns false if the cell is not enclosed.
func (s *Simulator) ensureRoom(cell *world.Cell) (int, bool) {
	if id := gw.GetTileData(cell).Room; id != gw.NoRoom {
		return id, true
	}
	region := s.floodFill(cell)
	if len(region) == 0 {
		return gw.NoRoom, false
	}
	room := newRoom(s.allocRoomID(), region)
	s.rooms[room.ID] = room
	for _, c := range region {
		gw.GetTileData(c).Room = room.ID
	}
	return room.ID, true
}

func (s *Simulator) allocRoomID() int {
	id := s.nextRoom
	s.nextRoom++
	return id
}

// rebuildRooms re-validates every room after a wall or door edit. Each room
// is re-filled from its surviving tiles: a room whose fill leaks dissolves
// into vacuum, a room cut in two splits (the first part keeps the id, every
// part keeps the damage), and rooms joined by an opening merge under the
// lowest id with the highest damage. Afterwards every machine that needs a
// room and has none claims the enclosed region it sits in, so a breached
// room comes back once it is sealed again.
func (s *Simulator) rebuildRooms() {
	assigned := make(map[*world.Cell]int)
	rebuilt := make(map[int]*Room)

	for _, id := range sortedIDs(s.rooms) {
		old := s.rooms[id]
		keptID := false

		for _, cell := range old.Cells() {
			if _, done := assigned[cell]; done || gw.IsBarrier(cell) {
				continue
			}
			region := s.floodFill(cell)
			if len(region) == 0 {
				continue
			}

			newID := old.ID
			if keptID {
				newID = s.allocRoomID()
			}
			keptID = true

			room := newRoom(newID, region)
			for _, c := range region {
				if prev, ok := s.rooms[gw.GetTileData(c).Room]; ok {
					room.Damage = max(room.Damage, prev.Damage)
				}
				assigned[c] = newID
			}
			rebuilt[newID] = room
		}
	}

	s.grid.ForEachCell(func(_, _ int, cell *world.Cell) {
		gw.GetTileData(cell).Room = assigned[cell]
	})
	s.rooms = rebuilt

	s.grid.ForEachCell(func(_, _ int, cell *world.Cell) {
		data := gw.GetTileData(cell)
		if data.Room == gw.NoRoom && data.Component != nil && data.Component.Kind().RequiresRoom() {
			s.ensureRoom(cell)
		}
	})
	s.syncComponentRooms()
}

// syncComponentRooms refreshes each machine's room back-reference
func (s *Simulator) syncComponentRooms() {
	s.grid.ForEachCell(func(_, _ int, cell *world.Cell) {
		data := gw.GetTileData(cell)
		if data.Component != nil {
			data.Component.Place(cell, data.Room)
		}
	})
}
