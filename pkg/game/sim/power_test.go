package sim

import (
	"testing"

	"lifesupport/pkg/game/gas"
)

// buildPoweredRoom walls a 3x3 room at rows/cols 3..5 with an engine at
// (4,3) wired through (4,4) to an oxygen generator at (4,5)
func buildPoweredRoom(t *testing.T, s *Simulator) {
	t.Helper()
	wallRing(t, s, 2, 2, 6, 6)
	for col := 3; col <= 5; col++ {
		mustPlace(t, s, 4, col, ToolWire)
	}
	mustPlace(t, s, 4, 3, ToolEngine)
	mustPlace(t, s, 4, 5, ToolOxygenGenerator)
}

func poweredSet(s *Simulator) map[Position]bool {
	out := make(map[Position]bool)
	for row := 0; row < s.Rows(); row++ {
		for col := 0; col < s.Cols(); col++ {
			if info, _ := s.Tile(row, col); info.Powered {
				out[info.Position] = true
			}
		}
	}
	return out
}

func TestAdvancePower_FloodsWire(t *testing.T) {
	s := newTestSim(t)
	buildPoweredRoom(t, s)
	mustPlace(t, s, 8, 8, ToolWire) // unconnected

	if got := s.AdvancePower(); got != 3 {
		t.Errorf("AdvancePower() = %d, want 3", got)
	}
	for col := 3; col <= 5; col++ {
		if !tileAt(t, s, 4, col).Powered {
			t.Errorf("tile 4:%d not powered", col)
		}
	}
	if tileAt(t, s, 8, 8).Powered {
		t.Error("unconnected wire is powered")
	}
}

func TestAdvancePower_Idempotent(t *testing.T) {
	s := newTestSim(t)
	buildPoweredRoom(t, s)

	s.AdvancePower()
	first := poweredSet(s)
	s.AdvancePower()
	second := poweredSet(s)

	if len(first) != len(second) {
		t.Fatalf("powered set size %d then %d", len(first), len(second))
	}
	for pos := range first {
		if !second[pos] {
			t.Errorf("%v powered on first pass only", pos)
		}
	}
}

func TestAdvancePower_ClearsStaleFlags(t *testing.T) {
	s := newTestSim(t)
	buildPoweredRoom(t, s)
	s.AdvancePower()

	if err := s.Remove(4, 3); err != nil {
		t.Fatalf("Remove(4, 3) error = %v", err)
	}
	if got := s.AdvancePower(); got != 0 {
		t.Errorf("AdvancePower() without engines = %d, want 0", got)
	}
}

func TestAdvanceMachines_EngineBelowThreshold(t *testing.T) {
	s := newTestSim(t)
	buildPoweredRoom(t, s)
	mustSetGas(t, s, 4, 3, gas.O2, 3)
	mustSetGas(t, s, 4, 3, gas.N2, 5)

	s.AdvancePower()
	report := s.AdvanceMachines()

	info := tileAt(t, s, 4, 3)
	if info.Powered || info.Running {
		t.Error("engine below O2 threshold is powered")
	}
	if info.Gases.O2 != 3 || info.Gases.N2 != 5 {
		t.Errorf("engine tile gas = %v, want unchanged", info.Gases)
	}
	if report.EnginesRunning != 0 {
		t.Errorf("EnginesRunning = %d, want 0", report.EnginesRunning)
	}
}

// A walled 3x3 room with a wired engine and generator: after power and one
// machine update both tiles are powered and the generator made oxygen.
func TestEndToEnd_PoweredGenerator(t *testing.T) {
	s := newTestSim(t)
	buildPoweredRoom(t, s)
	mustSetGas(t, s, 4, 3, gas.O2, 10)
	mustSetGas(t, s, 4, 3, gas.N2, 5)
	before := tileAt(t, s, 4, 5).Gases.O2

	s.AdvancePower()
	report := s.AdvanceMachines()

	engine, generator := tileAt(t, s, 4, 3), tileAt(t, s, 4, 5)
	if !engine.Powered || !engine.Running {
		t.Error("engine tile not powered")
	}
	if !generator.Powered {
		t.Error("generator tile not powered")
	}
	if generator.Gases.O2 <= before {
		t.Errorf("generator O2 = %v, want > %v", generator.Gases.O2, before)
	}
	if engine.Gases.O2 != 6 {
		t.Errorf("engine O2 = %v, want 6", engine.Gases.O2)
	}
	if report.EnginesRunning != 1 || report.Producing != 1 {
		t.Errorf("report = %+v, want 1 engine and 1 producer", report)
	}
}
