package sim

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"lifesupport/pkg/engine/world"
	"lifesupport/pkg/game/gas"
	gw "lifesupport/pkg/game/world"
)

// ErrNonFinite reports a gas quantity that is infinite or NaN
var ErrNonFinite = errors.New("gas quantity is not finite")

// AdvanceGasDiffusion runs one diffusion tick: vacuum tiles bleed gas into
// space, open tiles exchange with their open neighbours, then every room
// refreshes its aggregate and checks over-pressure. A tile left holding a
// non-finite quantity stops the tick with ErrNonFinite.
func (s *Simulator) AdvanceGasDiffusion() error {
	s.dissipateVacuum()
	if err := s.exchangeNeighbors(); err != nil {
		return err
	}
	s.aggregateRooms()
	return nil
}

func (s *Simulator) dissipateVacuum() {
	keep := 1 - s.cfg.VacuumDissipation
	s.grid.ForEachCell(func(_, _ int, cell *world.Cell) {
		if gw.IsVacuum(cell) {
			gw.GetTileData(cell).Gases.Scale(keep, s.cfg.VacuumEpsilon)
		}
	})
}

// exchangeNeighbors reads neighbour gas from a snapshot taken before any
// tile changes, so the pass has no directional bias. With more than one
// worker the rows are split into bands updated concurrently; each band only
// writes its own tiles.
func (s *Simulator) exchangeNeighbors() error {
	rows, cols := s.grid.Rows(), s.grid.Cols()
	snapshot := make([][]gas.Cell, rows)
	for row := range snapshot {
		snapshot[row] = make([]gas.Cell, cols)
		for col := range snapshot[row] {
			snapshot[row][col] = gw.GetTileData(s.grid.GetCell(row, col)).Gases
		}
	}

	workers := s.cfg.Workers
	if workers <= 1 {
		return s.exchangeRows(snapshot, 0, rows)
	}
	if workers > rows {
		workers = rows
	}

	var g errgroup.Group
	band := (rows + workers - 1) / workers
	for from := 0; from < rows; from += band {
		from := from
		to := min(from+band, rows)
		g.Go(func() error {
			return s.exchangeRows(snapshot, from, to)
		})
	}
	return g.Wait()
}

func (s *Simulator) exchangeRows(snapshot [][]gas.Cell, from, to int) error {
	for row := from; row < to; row++ {
		for col := 0; col < s.grid.Cols(); col++ {
			cell := s.grid.GetCell(row, col)
			if gw.IsBarrier(cell) {
				continue
			}
			data := gw.GetTileData(cell)

			open := make([]*world.Cell, 0, 4)
			for _, neighbor := range cell.GetNeighbors() {
				if !gw.IsBarrier(neighbor) {
					open = append(open, neighbor)
				}
			}
			if len(open) == 0 {
				continue
			}

			base := s.cfg.SpreadRate / float64(len(open))
			self := snapshot[row][col]
			for _, neighbor := range open {
				rate := base
				if data.Door || gw.HasDoor(neighbor) {
					rate *= 2
				}
				data.Gases.Drift(self, snapshot[neighbor.Row][neighbor.Col], rate)
			}
			if !data.Gases.IsFinite() {
				return fmt.Errorf("diffuse %s: %w", cell.Name(), ErrNonFinite)
			}
		}
	}
	return nil
}

// aggregateRooms refreshes room gas means and applies over-pressure damage
func (s *Simulator) aggregateRooms() {
	for _, id := range sortedIDs(s.rooms) {
		room := s.rooms[id]
		room.refreshGases()
		room.checkPressure(s.cfg.MaxPressure, s.cfg.DamageRate)
	}
}
