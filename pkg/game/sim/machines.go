package sim

import (
	"lifesupport/pkg/engine/world"
	"lifesupport/pkg/game/entities"
	gw "lifesupport/pkg/game/world"
)

// MachineReport counts what the machines did during one update
type MachineReport struct {
	EnginesRunning int
	Producing      int     // generators, plants and SPAC units that made gas
	Vented         float64 // total gas moved by vents
}

// AdvanceMachines updates every machine in row-major order. Engines set their
// own tile's powered flag from their gas check; everything else reads the
// flags left by the last AdvancePower.
func (s *Simulator) AdvanceMachines() MachineReport {
	var report MachineReport

	s.grid.ForEachCell(func(_, _ int, cell *world.Cell) {
		data := gw.GetTileData(cell)

		switch c := data.Component.(type) {
		case *entities.Engine:
			data.Powered = c.Run(&data.Gases)
			if data.Powered {
				report.EnginesRunning++
			}
		case *entities.OxygenGenerator:
			if c.Generate(&data.Gases, gw.IsPowered(cell)) {
				report.Producing++
			}
		case *entities.Plant:
			if c.Generate(&data.Gases) {
				report.Producing++
			}
		case *entities.Spac12:
			if data.Room != gw.NoRoom {
				return
			}
			target := &data.Gases
			if network := s.discoverNetwork(cell); network != nil {
				target = &network.Gases
			}
			if c.Generate(target, false, gw.IsPowered(cell)) {
				report.Producing++
			}
		case *entities.InputVent:
			room, network := s.ventLinks(cell)
			if room == nil || network == nil {
				return
			}
			report.Vented += c.Pull(room.gasCells(), room.Gases, &network.Gases, gw.IsPowered(cell))
		case *entities.OutputVent:
			room, network := s.ventLinks(cell)
			if room == nil || network == nil {
				return
			}
			report.Vented += c.Push(&network.Gases, room.gasCells(), gw.IsPowered(cell))
		}
	})

	return report
}

// ventLinks returns the room and pipe network a vent on cell works between
func (s *Simulator) ventLinks(cell *world.Cell) (*Room, *PipeNetwork) {
	room, ok := s.rooms[gw.GetTileData(cell).Room]
	if !ok {
		return nil, nil
	}
	return room, s.discoverNetwork(cell)
}
