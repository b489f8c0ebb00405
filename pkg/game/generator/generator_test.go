package generator

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"

	"lifesupport/pkg/game/entities"
	"lifesupport/pkg/game/gas"
	"lifesupport/pkg/game/sim"
)

func newSim(t *testing.T) *sim.Simulator {
	t.Helper()
	s, err := sim.New(sim.DefaultConfig())
	if err != nil {
		t.Fatalf("sim.New() error = %v", err)
	}
	return s
}

func generate(t *testing.T, g Generator, seed int64) *sim.Simulator {
	t.Helper()
	s := newSim(t)
	if err := g.Generate(s, rand.New(rand.NewSource(seed))); err != nil {
		t.Fatalf("%s.Generate() error = %v", g.Name(), err)
	}
	return s
}

func countKind(s *sim.Simulator, kind entities.Kind) int {
	n := 0
	for row := 0; row < s.Rows(); row++ {
		for col := 0; col < s.Cols(); col++ {
			if info, _ := s.Tile(row, col); info.Kind == kind {
				n++
			}
		}
	}
	return n
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		g, ok := ByName(name)
		if !ok || g == nil {
			t.Errorf("ByName(%q) = %v, %v", name, g, ok)
		}
	}
	if _, ok := ByName("moonbase"); ok {
		t.Error(`ByName("moonbase") ok = true`)
	}
}

func TestHabitat_Builds(t *testing.T) {
	s := generate(t, Habitat, 1)

	rooms := s.Rooms()
	if len(rooms) != 1 {
		t.Fatalf("len(Rooms()) = %d, want 1", len(rooms))
	}
	if rooms[0].Size() != 32 {
		t.Errorf("room size = %d, want 32", rooms[0].Size())
	}
	for _, kind := range []entities.Kind{entities.KindEngine, entities.KindOxygenGenerator, entities.KindPlant, entities.KindOutputVent, entities.KindSpac12} {
		if got := countKind(s, kind); got != 1 {
			t.Errorf("count(%v) = %d, want 1", kind, got)
		}
	}

	engine, _ := s.Tile(6, 3)
	if engine.Gases != (gas.Cell{O2: 10, N2: 5}) {
		t.Errorf("engine tile gas = %v, want seed", engine.Gases)
	}
	plant, _ := s.Tile(4, 6)
	if plant.Gases != (gas.Cell{O2: 40, N2: 3}) {
		t.Errorf("plant tile gas = %v, want room fill", plant.Gases)
	}
	door, _ := s.Tile(3, 3)
	if !door.Door || !door.Pipe {
		t.Errorf("tile 3:3 door=%v pipe=%v, want piped door", door.Door, door.Pipe)
	}
}

func TestHabitat_Runs(t *testing.T) {
	s := generate(t, Habitat, 1)

	s.AdvancePower()
	report := s.AdvanceMachines()

	if report.EnginesRunning != 1 {
		t.Errorf("EnginesRunning = %d, want 1", report.EnginesRunning)
	}
	gen, _ := s.Tile(6, 6)
	if !gen.Powered || gen.Gases.O2 != 50 {
		t.Errorf("generator powered=%v O2=%v, want powered and 50", gen.Powered, gen.Gases.O2)
	}
	if len(s.Networks()) != 1 {
		t.Errorf("len(Networks()) = %d, want 1", len(s.Networks()))
	}
}

func TestTransfer_MovesGasBetweenRooms(t *testing.T) {
	s := generate(t, Transfer, 1)
	if len(s.Rooms()) != 2 {
		t.Fatalf("len(Rooms()) = %d, want 2", len(s.Rooms()))
	}

	// One diffusion tick spreads the seeded column into its neighbours, so
	// six source tiles can each give up their share to the input vent
	s.AdvanceGasDiffusion()
	s.AdvanceMachines()

	target, _ := s.Tile(3, 13)
	dest, _ := s.Room(target.Room)
	total := 0.0
	for _, pos := range dest.Tiles {
		info, _ := s.Tile(pos.Row, pos.Col)
		total += info.Gases.Total()
	}
	if math.Abs(total-1) > 1e-9 {
		t.Errorf("destination room gas = %v, want 1", total)
	}
}

func TestLayout_UnknownSymbol(t *testing.T) {
	l := &Layout{Title: "bad", Rows: []string{"..X.."}}
	err := l.Generate(newSim(t), nil)
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("Generate() error = %v, want ErrUnknownSymbol", err)
	}
}

func TestLayout_TooLarge(t *testing.T) {
	l := &Layout{Title: "wide", Rows: []string{"......................"}}
	if err := l.Generate(newSim(t), nil); !errors.Is(err, ErrTooLarge) {
		t.Errorf("Generate() error = %v, want ErrTooLarge", err)
	}
}

func TestLayout_MachineOutsideRoomFails(t *testing.T) {
	l := &Layout{Title: "loose", Rows: []string{"", "..E.."}}
	if err := l.Generate(newSim(t), nil); !errors.Is(err, sim.ErrNotEnclosed) {
		t.Errorf("Generate() error = %v, want sim.ErrNotEnclosed", err)
	}
}

func TestBSP_RoomsAreFitted(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		s := generate(t, BSP, seed)

		rooms := s.Rooms()
		if len(rooms) < 1 {
			t.Fatalf("seed %d: no rooms", seed)
		}
		if got := countKind(s, entities.KindEngine); got != len(rooms) {
			t.Errorf("seed %d: %d engines for %d rooms", seed, got, len(rooms))
		}
		if got := countKind(s, entities.KindSpac12); got != len(rooms) {
			t.Errorf("seed %d: %d SPAC-12 for %d rooms", seed, got, len(rooms))
		}
		for _, r := range rooms {
			for _, pos := range r.Tiles {
				if pos.Row <= 0 || pos.Col <= 0 || pos.Row >= s.Rows()-1 || pos.Col >= s.Cols()-1 {
					t.Errorf("seed %d: room %d reaches the grid edge at %v", seed, r.ID, pos)
				}
			}
		}
	}
}

func TestBSP_Deterministic(t *testing.T) {
	a, b := generate(t, BSP, 42), generate(t, BSP, 42)
	for row := 0; row < a.Rows(); row++ {
		for col := 0; col < a.Cols(); col++ {
			ta, _ := a.Tile(row, col)
			tb, _ := b.Tile(row, col)
			if ta != tb {
				t.Fatalf("tile %d:%d differs between runs with the same seed", row, col)
			}
		}
	}
}

func TestBSP_GridTooSmall(t *testing.T) {
	cfg := sim.DefaultConfig()
	cfg.Rows, cfg.Cols = 6, 6
	s, err := sim.New(cfg)
	if err != nil {
		t.Fatalf("sim.New() error = %v", err)
	}
	if err := BSP.Generate(s, rand.New(rand.NewSource(1))); err == nil {
		t.Error("Generate() on 6x6 grid error = nil, want error")
	}
}

func TestParseLayout(t *testing.T) {
	src := "..###\r\n..#E#\n..###\n"
	l, err := ParseLayout("file", strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseLayout() error = %v", err)
	}
	want := []string{"..###", "..#E#", "..###"}
	if len(l.Rows) != len(want) {
		t.Fatalf("ParseLayout() rows = %q, want %q", l.Rows, want)
	}
	for i := range want {
		if l.Rows[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, l.Rows[i], want[i])
		}
	}
	if l.Name() != "file" {
		t.Errorf("Name() = %q, want %q", l.Name(), "file")
	}
}

func TestSymbol_RebuildsHabitat(t *testing.T) {
	s := generate(t, Habitat, 1)

	rows := make([]string, s.Rows())
	for row := range rows {
		var b strings.Builder
		for col := 0; col < s.Cols(); col++ {
			info, _ := s.Tile(row, col)
			b.WriteRune(Symbol(info))
		}
		rows[row] = b.String()
	}
	for row, line := range habitatLayout.Rows {
		if !strings.HasPrefix(rows[row], line) {
			t.Errorf("row %d = %q, want prefix %q", row, rows[row], line)
		}
	}

	rebuilt := generate(t, &Layout{Title: "copy", Rows: rows}, 1)
	if got, want := len(rebuilt.Rooms()), len(s.Rooms()); got != want {
		t.Errorf("rebuilt rooms = %d, want %d", got, want)
	}
	for row := 0; row < s.Rows(); row++ {
		for col := 0; col < s.Cols(); col++ {
			a, _ := s.Tile(row, col)
			b, _ := rebuilt.Tile(row, col)
			if a.Kind != b.Kind || a.Wall != b.Wall || a.Door != b.Door || a.Wire != b.Wire || a.Pipe != b.Pipe {
				t.Errorf("tile %d:%d rebuilt as %+v, want %+v", row, col, b, a)
			}
		}
	}
}

func TestSymbol_WireAndPipe(t *testing.T) {
	info := sim.TileInfo{Wire: true, Pipe: true}
	if got := Symbol(info); got != SymbolWireAndPipe {
		t.Errorf("Symbol(wire+pipe) = %q, want %q", got, SymbolWireAndPipe)
	}
	if got := Symbol(sim.TileInfo{Kind: entities.KindSpac12}); got != SymbolBareSpac12 {
		t.Errorf("Symbol(bare spac) = %q, want %q", got, SymbolBareSpac12)
	}
}
