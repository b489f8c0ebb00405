// Package world extends the generic engine/world primitives with the
// life-support tile state: structure, wiring, pipes, gas and machines.
package world

import (
	"lifesupport/pkg/engine/world"
	"lifesupport/pkg/game/entities"
	"lifesupport/pkg/game/gas"
)

// NoRoom and NoNetwork are the zero ids meaning "not assigned"
const (
	NoRoom    = 0
	NoNetwork = 0
)

// TileData holds the simulation state of a cell.
// This is stored in the engine Cell's GameData field.
type TileData struct {
	Wall    bool
	Door    bool
	Wire    bool
	Pipe    bool
	Powered bool

	// Damage in [0, 1], raised by room over-pressure
	Damage float64

	Gases gas.Cell

	Room    int // owning room id, NoRoom for vacuum or walls
	Network int // pipe network id, NoNetwork until discovered

	Component entities.Component // machine on this tile (if any)
}

// InitTileData initializes tile data for a cell if not already set
func InitTileData(cell *world.Cell) *TileData {
	if cell.GameData == nil {
		cell.GameData = &TileData{}
	}
	return cell.GameData.(*TileData)
}

// GetTileData retrieves tile data from a cell, initializing if needed
func GetTileData(cell *world.Cell) *TileData {
	return InitTileData(cell)
}

// Helper functions for checking tile state

// HasWall returns true if this cell is a wall
func HasWall(cell *world.Cell) bool {
	return GetTileData(cell).Wall
}

// HasDoor returns true if this cell holds a door
func HasDoor(cell *world.Cell) bool {
	return GetTileData(cell).Door
}

// HasWire returns true if this cell carries power wiring
func HasWire(cell *world.Cell) bool {
	return GetTileData(cell).Wire
}

// HasPipe returns true if this cell carries a pipe segment
func HasPipe(cell *world.Cell) bool {
	return GetTileData(cell).Pipe
}

// IsPowered returns true if power reached this cell on the last propagation
func IsPowered(cell *world.Cell) bool {
	return GetTileData(cell).Powered
}

// HasComponent returns true if this cell holds a machine
func HasComponent(cell *world.Cell) bool {
	return GetTileData(cell).Component != nil
}

// HasComponentKind returns true if this cell holds a machine of the given kind
func HasComponentKind(cell *world.Cell, kind entities.Kind) bool {
	c := GetTileData(cell).Component
	return c != nil && c.Kind() == kind
}

// HasEngine returns true if this cell holds an engine
func HasEngine(cell *world.Cell) bool {
	return HasComponentKind(cell, entities.KindEngine)
}

// IsBarrier returns true if gas and room fills cannot pass this cell
func IsBarrier(cell *world.Cell) bool {
	data := GetTileData(cell)
	return data.Wall || data.Door
}

// InRoom returns true if the cell belongs to a room
func InRoom(cell *world.Cell) bool {
	return GetTileData(cell).Room != NoRoom
}

// IsVacuum returns true for non-wall cells outside every room.
// Door cells never join a room, so they count as vacuum.
func IsVacuum(cell *world.Cell) bool {
	data := GetTileData(cell)
	return !data.Wall && data.Room == NoRoom
}

// ClearStructure strips walls, doors, wiring, pipe and machine from a cell.
// Gas, damage, room membership and the powered flag are left for the caller.
func ClearStructure(cell *world.Cell) {
	data := GetTileData(cell)
	data.Wall = false
	data.Door = false
	data.Wire = false
	data.Pipe = false
	data.Component = nil
}
