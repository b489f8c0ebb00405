package sim

import (
	"math"
	"testing"

	"lifesupport/pkg/game/gas"
)

func newTestSim(t *testing.T) *Simulator {
	t.Helper()
	s, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New(DefaultConfig()) error = %v", err)
	}
	return s
}

// wallRing places walls on the border of the rectangle top..bottom, left..right
func wallRing(t *testing.T, s *Simulator, top, left, bottom, right int) {
	t.Helper()
	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			if row != top && row != bottom && col != left && col != right {
				continue
			}
			mustPlace(t, s, row, col, ToolWall)
		}
	}
}

func mustPlace(t *testing.T, s *Simulator, row, col int, tool Tool) {
	t.Helper()
	if err := s.Place(row, col, tool); err != nil {
		t.Fatalf("Place(%d, %d, %s) error = %v", row, col, tool.Label(), err)
	}
}

func mustSetGas(t *testing.T, s *Simulator, row, col int, species gas.Species, amount float64) {
	t.Helper()
	if err := s.SetGas(row, col, species, amount); err != nil {
		t.Fatalf("SetGas(%d, %d, %v, %v) error = %v", row, col, species, amount, err)
	}
}

func tileAt(t *testing.T, s *Simulator, row, col int) TileInfo {
	t.Helper()
	info, ok := s.Tile(row, col)
	if !ok {
		t.Fatalf("Tile(%d, %d) not found", row, col)
	}
	return info
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func totalGas(s *Simulator) float64 {
	total := 0.0
	for row := 0; row < s.Rows(); row++ {
		for col := 0; col < s.Cols(); col++ {
			info, _ := s.Tile(row, col)
			total += info.Gases.Total()
		}
	}
	for _, n := range s.Networks() {
		total += n.Gases.Total()
	}
	return total
}
