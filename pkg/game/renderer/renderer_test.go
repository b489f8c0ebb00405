package renderer

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/gookit/color"

	"lifesupport/pkg/game/entities"
	"lifesupport/pkg/game/gas"
	"lifesupport/pkg/game/sim"
)

func plainOutput(t *testing.T) {
	t.Helper()
	prev := color.Enable
	color.Enable = false
	t.Cleanup(func() { color.Enable = prev })
}

// newBoxSim builds a 3x3 room walled in at rows and cols 1..5 with a plant
// at 4:4 to claim it
func newBoxSim(t *testing.T) *sim.Simulator {
	t.Helper()
	s, err := sim.New(sim.DefaultConfig())
	if err != nil {
		t.Fatalf("sim.New() error = %v", err)
	}
	for row := 1; row <= 5; row++ {
		for col := 1; col <= 5; col++ {
			if row != 1 && row != 5 && col != 1 && col != 5 {
				continue
			}
			if err := s.Place(row, col, sim.ToolWall); err != nil {
				t.Fatalf("Place(%d, %d, wall) error = %v", row, col, err)
			}
		}
	}
	if err := s.Place(4, 4, sim.ToolPlant); err != nil {
		t.Fatalf("Place(4, 4, plant) error = %v", err)
	}
	return s
}

func TestRenderMapShape(t *testing.T) {
	plainOutput(t)
	s := newBoxSim(t)

	lines := RenderMap(s)
	if len(lines) != s.Rows() {
		t.Fatalf("RenderMap() returned %d lines, want %d", len(lines), s.Rows())
	}
	for i, line := range lines {
		if got := visibleWidth(line); got != s.Cols() {
			t.Errorf("line %d width = %d, want %d", i, got, s.Cols())
		}
	}

	row1 := []rune(lines[1])
	if string(row1[1]) != IconWall {
		t.Errorf("tile (1,1) = %q, want wall", string(row1[1]))
	}
	row3 := []rune(lines[3])
	if string(row3[3]) != IconFloor {
		t.Errorf("tile (3,3) = %q, want floor", string(row3[3]))
	}
	if string(row3[10]) != IconVacuum {
		t.Errorf("tile (3,10) = %q, want vacuum", string(row3[10]))
	}
}

func TestRenderTileSymbols(t *testing.T) {
	plainOutput(t)

	tests := []struct {
		name string
		info sim.TileInfo
		want string
	}{
		{"wall", sim.TileInfo{Wall: true}, IconWall},
		{"door", sim.TileInfo{Door: true, Room: 0}, IconDoor},
		{"wire", sim.TileInfo{Wire: true}, IconWire},
		{"pipe", sim.TileInfo{Pipe: true}, IconPipe},
		{"wire and pipe", sim.TileInfo{Wire: true, Pipe: true}, IconWireAndPipe},
		{"engine over wire", sim.TileInfo{Wire: true, Room: 1, Kind: entities.KindEngine}, "E"},
		{"spac", sim.TileInfo{Kind: entities.KindSpac12}, "S"},
		{"vent", sim.TileInfo{Room: 1, Kind: entities.KindOutputVent}, "V"},
		{"floor", sim.TileInfo{Room: 2}, IconFloor},
		{"vacuum", sim.TileInfo{}, IconVacuum},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderTile(tt.info, nil); got != tt.want {
				t.Errorf("RenderTile() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComponentDimmed(t *testing.T) {
	tests := []struct {
		info sim.TileInfo
		want bool
	}{
		{sim.TileInfo{Kind: entities.KindEngine}, true},
		{sim.TileInfo{Kind: entities.KindEngine, Powered: true}, false},
		{sim.TileInfo{Kind: entities.KindOxygenGenerator}, true},
		{sim.TileInfo{Kind: entities.KindSpac12}, true},
		{sim.TileInfo{Kind: entities.KindPlant}, false},
		{sim.TileInfo{Kind: entities.KindInputVent}, false},
	}
	for _, tt := range tests {
		if got := componentDimmed(tt.info); got != tt.want {
			t.Errorf("componentDimmed(%v, powered=%v) = %v, want %v", tt.info.Kind, tt.info.Powered, got, tt.want)
		}
	}
}

func TestPipeStyleFollowsPredominantGas(t *testing.T) {
	if got := pipeStyle(nil); !slices.Equal(got, ColorSubtle) {
		t.Errorf("pipeStyle(nil) = %v, want subtle", got)
	}
	empty := &sim.NetworkInfo{Empty: true}
	if got := pipeStyle(empty); !slices.Equal(got, ColorSubtle) {
		t.Errorf("pipeStyle(empty) = %v, want subtle", got)
	}
	for _, species := range gas.AllSpecies() {
		n := &sim.NetworkInfo{Predominant: species}
		if got := pipeStyle(n); !slices.Equal(got, pipeColors[species]) {
			t.Errorf("pipeStyle(%v) = %v, want %v", species, got, pipeColors[species])
		}
	}
}

func TestRenderRoomReport(t *testing.T) {
	plainOutput(t)
	s := newBoxSim(t)
	if err := s.SetGas(3, 3, gas.O2, 90); err != nil {
		t.Fatalf("SetGas() error = %v", err)
	}

	report := strings.Join(RenderRoomReport(s), "\n")
	for _, want := range []string{
		"Room 1",
		"Size: 9 tiles",
		"O2: 10.0",
		"Damage: 0.0%",
		"Status: Barely Breathable",
		"Pressure: 0.1/10",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("RenderRoomReport() missing %q in:\n%s", want, report)
		}
	}
}

func TestRenderRoomReportWithoutRooms(t *testing.T) {
	plainOutput(t)
	s, err := sim.New(sim.DefaultConfig())
	if err != nil {
		t.Fatalf("sim.New() error = %v", err)
	}
	lines := RenderRoomReport(s)
	if len(lines) != 1 || lines[0] != "No enclosed rooms" {
		t.Errorf("RenderRoomReport() = %q, want the empty notice", lines)
	}
}

func TestJoinColumnsPadsByVisibleWidth(t *testing.T) {
	left := []string{"ab", "abcd", "a"}
	right := []string{"x", "y"}
	got := joinColumns(left, right, 6)
	want := []string{"ab    x", "abcd  y", "a     "}
	if !slices.Equal(got, want) {
		t.Errorf("joinColumns() = %q, want %q", got, want)
	}
}

func TestRenderFrame(t *testing.T) {
	plainOutput(t)
	s := newBoxSim(t)
	if err := s.Place(3, 3, sim.ToolPlant); err != nil {
		t.Fatalf("Place(plant) error = %v", err)
	}

	var buf bytes.Buffer
	if err := RenderFrame(&buf, s, 3); err != nil {
		t.Fatalf("RenderFrame() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Frame 3", "Room 1", "> Plant placed successfully."} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderFrame() output missing %q", want)
		}
	}
}
