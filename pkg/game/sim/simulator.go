// Package sim runs the life-support simulation: room detection, pipe
// networks, power propagation, machine updates and gas diffusion over a
// fixed tile grid.
//
// A Simulator is owned by one goroutine. Structural edits, ticks and
// queries must not run concurrently.
package sim

import (
	"sort"

	"lifesupport/pkg/engine/world"
	"lifesupport/pkg/game/entities"
	"lifesupport/pkg/game/state"
	gw "lifesupport/pkg/game/world"
)

// Simulator owns the grid and the room and pipe network registries
type Simulator struct {
	cfg  Config
	grid *world.Grid

	rooms       map[int]*Room
	networks    map[int]*PipeNetwork
	nextRoom    int
	nextNetwork int

	log *state.MessageLog
}

// New creates an empty simulation: every tile is vacuum with no gas
func New(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Simulator{
		cfg:         cfg,
		grid:        world.NewGrid(cfg.Rows, cfg.Cols),
		rooms:       make(map[int]*Room),
		networks:    make(map[int]*PipeNetwork),
		nextRoom:    1,
		nextNetwork: 1,
		log:         state.NewMessageLog(),
	}
	s.grid.ForEachCell(func(_, _ int, cell *world.Cell) {
		gw.InitTileData(cell)
	})
	return s, nil
}

// Config returns the settings the simulator was built with
func (s *Simulator) Config() Config { return s.cfg }

// Rows returns the grid height
func (s *Simulator) Rows() int { return s.grid.Rows() }

// Cols returns the grid width
func (s *Simulator) Cols() int { return s.grid.Cols() }

// Messages returns the recent user-facing feedback, oldest first
func (s *Simulator) Messages() []string {
	return append([]string(nil), s.log.Messages...)
}

// ClearMessages empties the feedback log
func (s *Simulator) ClearMessages() {
	s.log.ClearMessages()
}

// newComponent builds a machine of kind and applies the configured rates
func (s *Simulator) newComponent(kind entities.Kind) entities.Component {
	c := entities.New(kind)
	switch m := c.(type) {
	case *entities.Engine:
		m.MinO2, m.MinN2 = s.cfg.EngineMinO2, s.cfg.EngineMinN2
		m.O2Use, m.N2Use = s.cfg.EngineO2Use, s.cfg.EngineN2Use
		m.CO2Ratio = s.cfg.EngineCO2Ratio
	case *entities.OxygenGenerator:
		m.Rate = s.cfg.GeneratorRate
	case *entities.Plant:
		m.O2Rate, m.CO2Use, m.N2Use = s.cfg.PlantO2Rate, s.cfg.PlantCO2Use, s.cfg.PlantN2Use
	case *entities.Spac12:
		m.Species, m.Rate = s.cfg.SpacSpecies, s.cfg.SpacRate
		m.RequiresPower = s.cfg.SpacRequiresPower
	case *entities.InputVent:
		m.Rate, m.RequiresPower = s.cfg.VentRate, s.cfg.VentsRequirePower
	case *entities.OutputVent:
		m.Rate, m.RequiresPower = s.cfg.VentRate, s.cfg.VentsRequirePower
	}
	return c
}

func sortedIDs[T any](m map[int]T) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// sortCells orders cells row-major
func sortCells(cells []*world.Cell) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
}
