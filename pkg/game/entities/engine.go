package entities

import "lifesupport/pkg/game/gas"

// Engine burns O2 (and N2) from its own tile to generate power for the wire network
type Engine struct {
	base

	MinO2 float64 // O2 needed on the tile before the engine will fire
	MinN2 float64 // N2 needed on the tile; 0 gives the O2-only engine
	O2Use float64
	N2Use float64
	// CO2 emitted per unit of O2 burned
	CO2Ratio float64

	// Running is true while the last Run call found enough gas
	Running bool
}

// NewEngine creates an engine with the default dual-threshold tuning
func NewEngine() *Engine {
	return &Engine{
		MinO2:    4,
		MinN2:    2,
		O2Use:    4,
		N2Use:    8,
		CO2Ratio: 0.8,
	}
}

func (e *Engine) Kind() Kind { return KindEngine }

// CanRun returns true if the tile gas meets both thresholds
func (e *Engine) CanRun(tile *gas.Cell) bool {
	if tile.O2 <= 0 || tile.O2 < e.MinO2 {
		return false
	}
	if e.MinN2 > 0 && (tile.N2 <= 0 || tile.N2 < e.MinN2) {
		return false
	}
	return true
}

// Run burns gas from the tile if the thresholds hold and reports whether the
// engine is producing power. The tile gas is untouched when it cannot run.
func (e *Engine) Run(tile *gas.Cell) bool {
	if e.Cell == nil || tile == nil || !e.CanRun(tile) {
		e.Running = false
		return false
	}
	burned := tile.Consume(gas.O2, e.O2Use)
	tile.Consume(gas.N2, e.N2Use)
	tile.Add(gas.CO2, burned*e.CO2Ratio)
	e.Running = true
	return true
}
