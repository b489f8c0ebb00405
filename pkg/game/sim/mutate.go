package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/leonelquinteros/gotext"

	"lifesupport/pkg/engine/world"
	"lifesupport/pkg/game/gas"
	gw "lifesupport/pkg/game/world"
)

// Placement rejections. Callers test with errors.Is.
var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrBlocked     = errors.New("tile is blocked")
	ErrNotEnclosed = errors.New("tile is not inside an enclosed room")
	ErrNotVacuum   = errors.New("tile is not vacuum")
	ErrUnknownTool = errors.New("unknown tool")
)

// Place applies tool to the tile at (row, col). Rejections leave the grid
// untouched and log a message.
func (s *Simulator) Place(row, col int, tool Tool) error {
	cell := s.grid.GetCell(row, col)
	if cell == nil {
		s.log.AddMessage(gotext.Get("Cannot place %s outside the grid.", tool.String()))
		return fmt.Errorf("place %s at %d:%d: %w", tool.Label(), row, col, ErrOutOfBounds)
	}
	if !tool.IsValid() {
		s.log.AddMessage(gotext.Get("Unknown tool."))
		return fmt.Errorf("place tool %d at %s: %w", int(tool), cell.Name(), ErrUnknownTool)
	}

	data := gw.GetTileData(cell)

	switch tool {
	case ToolDelete:
		return s.Remove(row, col)

	case ToolWall:
		if data.Pipe {
			s.detachPipe(cell)
		}
		data.Wall = true
		data.Door = false
		data.Wire = false
		data.Pipe = false
		data.Component = nil
		s.rebuildRooms()

	case ToolDoor:
		data.Door = true
		data.Wall = false
		data.Component = nil
		s.rebuildRooms()

	case ToolWire:
		if gw.HasWall(cell) {
			return s.reject(cell, tool, ErrBlocked)
		}
		data.Wire = true
		s.AdvancePower()

	case ToolPipe:
		if gw.HasWall(cell) {
			return s.reject(cell, tool, ErrBlocked)
		}
		data.Pipe = true

	default:
		return s.placeComponent(cell, tool)
	}
	return nil
}

func (s *Simulator) placeComponent(cell *world.Cell, tool Tool) error {
	data := gw.GetTileData(cell)
	kind := tool.ComponentKind()

	if gw.IsBarrier(cell) {
		return s.reject(cell, tool, ErrBlocked)
	}

	roomID := gw.NoRoom
	if kind.RequiresRoom() {
		id, ok := s.ensureRoom(cell)
		if !ok {
			s.log.AddMessage(gotext.Get("%s must be placed inside an enclosed room!", tool.String()))
			return fmt.Errorf("place %s at %s: %w", tool.Label(), cell.Name(), ErrNotEnclosed)
		}
		roomID = id
	} else if data.Room != gw.NoRoom {
		s.log.AddMessage(gotext.Get("%s can only be placed in vacuum!", tool.String()))
		return fmt.Errorf("place %s at %s: %w", tool.Label(), cell.Name(), ErrNotVacuum)
	}

	component := s.newComponent(kind)
	component.Place(cell, roomID)
	data.Component = component
	s.log.AddMessage(gotext.Get("%s placed successfully.", tool.String()))
	return nil
}

func (s *Simulator) reject(cell *world.Cell, tool Tool, err error) error {
	s.log.AddMessage(gotext.Get("Cannot place %s there.", tool.String()))
	return fmt.Errorf("place %s at %s: %w", tool.Label(), cell.Name(), err)
}

// Remove clears everything built on the tile at (row, col): machine, wiring,
// pipe, door and wall. Removing a machine or wall also resets tile damage.
// Gas on the tile is kept.
func (s *Simulator) Remove(row, col int) error {
	cell := s.grid.GetCell(row, col)
	if cell == nil {
		s.log.AddMessage(gotext.Get("Nothing to delete outside the grid."))
		return fmt.Errorf("remove at %d:%d: %w", row, col, ErrOutOfBounds)
	}
	data := gw.GetTileData(cell)

	if data.Pipe {
		s.detachPipe(cell)
	}
	if data.Wall || gw.HasComponent(cell) {
		data.Damage = 0
	}
	structural := gw.IsBarrier(cell)
	gw.ClearStructure(cell)
	if structural {
		s.rebuildRooms()
	}
	return nil
}

// SetGas overwrites the quantity of one species on a tile. Negative amounts
// are stored as zero and non-finite ones are rejected.
func (s *Simulator) SetGas(row, col int, species gas.Species, amount float64) error {
	cell := s.grid.GetCell(row, col)
	if cell == nil {
		return fmt.Errorf("set gas at %d:%d: %w", row, col, ErrOutOfBounds)
	}
	if gw.HasWall(cell) {
		return fmt.Errorf("set gas at %s: %w", cell.Name(), ErrBlocked)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("set gas at %s: %w", cell.Name(), ErrNonFinite)
	}
	data := gw.GetTileData(cell)
	data.Gases.Consume(species, data.Gases.Get(species))
	data.Gases.Add(species, amount)
	if room, ok := s.rooms[data.Room]; ok {
		room.refreshGases()
	}
	return nil
}
