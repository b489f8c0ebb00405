package sim

import (
	"errors"
	"fmt"

	"lifesupport/pkg/game/gas"
)

// ErrInvalidConfig is returned by New for unusable settings
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tunable of the simulation
type Config struct {
	Rows int
	Cols int

	// Gas
	SpreadRate        float64 // share exchanged with open neighbours per diffusion tick
	VacuumDissipation float64 // fraction of vacuum gas lost per diffusion tick
	VacuumEpsilon     float64 // vacuum quantities below this snap to zero
	MaxPressure       float64
	DamageRate        float64

	// Machines
	EngineMinO2       float64
	EngineMinN2       float64 // 0 selects the O2-only engine
	EngineO2Use       float64
	EngineN2Use       float64
	EngineCO2Ratio    float64
	GeneratorRate     float64
	PlantO2Rate       float64
	PlantCO2Use       float64
	PlantN2Use        float64
	SpacSpecies       gas.Species
	SpacRate          float64
	SpacRequiresPower bool
	VentRate          float64
	VentsRequirePower bool

	// Cadence, in frames
	DiffusionPeriod int
	MachinePeriod   int

	// Workers > 1 splits the neighbour exchange across goroutines
	Workers int
}

// DefaultConfig returns the reference tuning on a 20x20 grid
func DefaultConfig() Config {
	return Config{
		Rows: 20,
		Cols: 20,

		SpreadRate:        0.05,
		VacuumDissipation: 0.5,
		VacuumEpsilon:     0.01,
		MaxPressure:       10,
		DamageRate:        0.05,

		EngineMinO2:    4,
		EngineMinN2:    2,
		EngineO2Use:    4,
		EngineN2Use:    8,
		EngineCO2Ratio: 0.8,
		GeneratorRate:  10,
		PlantO2Rate:    0.1,
		PlantCO2Use:    0.2,
		PlantN2Use:     0.1,
		SpacSpecies:    gas.N2,
		SpacRate:       2,
		VentRate:       1,

		DiffusionPeriod: 5,
		MachinePeriod:   10,

		Workers: 1,
	}
}

// Validate checks that the config describes a usable simulation
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return fmt.Errorf("grid %dx%d: %w", c.Rows, c.Cols, ErrInvalidConfig)
	case c.SpreadRate < 0 || c.SpreadRate > 1:
		return fmt.Errorf("spread rate %v: %w", c.SpreadRate, ErrInvalidConfig)
	case c.VacuumDissipation < 0 || c.VacuumDissipation > 1:
		return fmt.Errorf("vacuum dissipation %v: %w", c.VacuumDissipation, ErrInvalidConfig)
	case c.DiffusionPeriod <= 0 || c.MachinePeriod <= 0:
		return fmt.Errorf("periods %d/%d: %w", c.DiffusionPeriod, c.MachinePeriod, ErrInvalidConfig)
	}
	return nil
}
