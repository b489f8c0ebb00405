package sim

import (
	"lifesupport/pkg/engine/world"
	"lifesupport/pkg/game/entities"
	"lifesupport/pkg/game/gas"
	gw "lifesupport/pkg/game/world"
)

// Position is a grid coordinate
type Position struct {
	Row int
	Col int
}

// TileInfo is a read-only view of one tile
type TileInfo struct {
	Position
	Wall    bool
	Door    bool
	Wire    bool
	Pipe    bool
	Powered bool
	Damage  float64
	Gases   gas.Cell
	Room    int // 0 when vacuum or wall
	Network int // 0 until a machine discovers the pipe
	Kind    entities.Kind
	Running bool // engine tiles only
}

// InRoom returns true if the tile belongs to a room
func (t TileInfo) InRoom() bool { return t.Room != gw.NoRoom }

// IsVacuum returns true for non-wall tiles outside every room
func (t TileInfo) IsVacuum() bool { return !t.Wall && t.Room == gw.NoRoom }

// RoomInfo is a read-only view of a room
type RoomInfo struct {
	ID            int
	Tiles         []Position
	Gases         gas.Cell
	Damage        float64
	Pressure      float64
	MaxPressure   float64
	Breathability gas.Breathability
}

// Size returns the number of tiles in the room
func (r RoomInfo) Size() int { return len(r.Tiles) }

// OverPressure returns true if the room is taking pressure damage
func (r RoomInfo) OverPressure() bool { return r.Pressure > r.MaxPressure }

// NetworkInfo is a read-only view of a pipe network
type NetworkInfo struct {
	ID          int
	Tiles       []Position
	Gases       gas.Cell
	Predominant gas.Species
	Empty       bool
}

// Tile returns a view of the tile at (row, col)
func (s *Simulator) Tile(row, col int) (TileInfo, bool) {
	cell := s.grid.GetCell(row, col)
	if cell == nil {
		return TileInfo{}, false
	}
	data := gw.GetTileData(cell)
	info := TileInfo{
		Position: Position{Row: row, Col: col},
		Wall:     data.Wall,
		Door:     data.Door,
		Wire:     data.Wire,
		Pipe:     data.Pipe,
		Powered:  data.Powered,
		Damage:   data.Damage,
		Gases:    data.Gases,
		Room:     data.Room,
		Network:  data.Network,
	}
	if data.Component != nil {
		info.Kind = data.Component.Kind()
	}
	if e, ok := data.Component.(*entities.Engine); ok {
		info.Running = e.Running
	}
	return info, true
}

// Room returns a view of the room with the given id
func (s *Simulator) Room(id int) (RoomInfo, bool) {
	room, ok := s.rooms[id]
	if !ok {
		return RoomInfo{}, false
	}
	return RoomInfo{
		ID:            room.ID,
		Tiles:         positions(room.Cells()),
		Gases:         room.Gases,
		Damage:        room.Damage,
		Pressure:      room.Pressure(),
		MaxPressure:   s.cfg.MaxPressure,
		Breathability: room.Breathability(),
	}, true
}

// Rooms returns every room ordered by id
func (s *Simulator) Rooms() []RoomInfo {
	out := make([]RoomInfo, 0, len(s.rooms))
	for _, id := range sortedIDs(s.rooms) {
		info, _ := s.Room(id)
		out = append(out, info)
	}
	return out
}

// Network returns a view of the pipe network with the given id
func (s *Simulator) Network(id int) (NetworkInfo, bool) {
	network, ok := s.networks[id]
	if !ok {
		return NetworkInfo{}, false
	}
	predominant, hasGas := network.Predominant()
	return NetworkInfo{
		ID:          network.ID,
		Tiles:       positions(network.Cells()),
		Gases:       network.Gases,
		Predominant: predominant,
		Empty:       !hasGas,
	}, true
}

// Networks returns every discovered pipe network ordered by id
func (s *Simulator) Networks() []NetworkInfo {
	out := make([]NetworkInfo, 0, len(s.networks))
	for _, id := range sortedIDs(s.networks) {
		info, _ := s.Network(id)
		out = append(out, info)
	}
	return out
}

func positions(cells []*world.Cell) []Position {
	out := make([]Position, len(cells))
	for i, cell := range cells {
		out[i] = Position{Row: cell.Row, Col: cell.Col}
	}
	return out
}
