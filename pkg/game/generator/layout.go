package generator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"lifesupport/pkg/game/entities"
	"lifesupport/pkg/game/gas"
	"lifesupport/pkg/game/sim"
)

// Layout errors
var (
	ErrUnknownSymbol = errors.New("unknown layout symbol")
	ErrTooLarge      = errors.New("layout larger than grid")
)

// Layout symbols. Machines that need wiring or piping get it on their tile.
const (
	SymbolVacuum      = '.'
	SymbolBlankVacuum = ' '
	SymbolWall        = '#'
	SymbolDoor        = 'D'
	SymbolPipedDoor   = 'd'
	SymbolWire        = '-'
	SymbolPipe        = '='
	SymbolWireAndPipe = '+'
	SymbolEngine      = 'E'
	SymbolOxygen      = 'O'
	SymbolPlant       = 'P'
	SymbolInputVent   = 'I'
	SymbolOutputVent  = 'V'
	SymbolSpac12      = 'S'
	SymbolBareSpac12  = 's'
)

// symbolTools maps each symbol to the tools it paints, in build order:
// structure, then wire and pipe, then the machine
var symbolTools = map[rune][]sim.Tool{
	SymbolVacuum:      nil,
	SymbolBlankVacuum: nil,
	SymbolWall:        {sim.ToolWall},
	SymbolDoor:        {sim.ToolDoor},
	SymbolPipedDoor:   {sim.ToolDoor, sim.ToolPipe},
	SymbolWire:        {sim.ToolWire},
	SymbolPipe:        {sim.ToolPipe},
	SymbolWireAndPipe: {sim.ToolWire, sim.ToolPipe},
	SymbolEngine:      {sim.ToolWire, sim.ToolEngine},
	SymbolOxygen:      {sim.ToolWire, sim.ToolOxygenGenerator},
	SymbolPlant:       {sim.ToolPlant},
	SymbolInputVent:   {sim.ToolPipe, sim.ToolInputVent},
	SymbolOutputVent:  {sim.ToolPipe, sim.ToolOutputVent},
	SymbolSpac12:      {sim.ToolPipe, sim.ToolSpac12},
	SymbolBareSpac12:  {sim.ToolSpac12},
}

// Seed sets the gas on one tile after the layout is built
type Seed struct {
	Row, Col int
	Gases    gas.Cell
}

// Layout is a hand-drawn scenario. Short rows are padded with vacuum.
type Layout struct {
	Title string
	Rows  []string

	// RoomFill is written to every room tile once the machines are placed
	RoomFill gas.Cell
	Seeds    []Seed
}

// Name returns the title of this layout
func (l *Layout) Name() string {
	return l.Title
}

// Generate paints the layout. The rng is unused; layouts are fixed.
func (l *Layout) Generate(s *sim.Simulator, _ *rand.Rand) error {
	if len(l.Rows) > s.Rows() {
		return fmt.Errorf("layout %q has %d rows: %w", l.Title, len(l.Rows), ErrTooLarge)
	}
	for row, line := range l.Rows {
		if len([]rune(line)) > s.Cols() {
			return fmt.Errorf("layout %q row %d: %w", l.Title, row, ErrTooLarge)
		}
		for col, r := range []rune(line) {
			if _, ok := symbolTools[r]; !ok {
				return fmt.Errorf("layout %q at %d:%d %q: %w", l.Title, row, col, r, ErrUnknownSymbol)
			}
		}
	}

	// Walls and doors go down first so machines see their final rooms
	for pass := 0; pass < 3; pass++ {
		for row, line := range l.Rows {
			for col, r := range []rune(line) {
				for _, tool := range symbolTools[r] {
					if toolPass(tool) != pass {
						continue
					}
					if err := s.Place(row, col, tool); err != nil {
						return fmt.Errorf("layout %q: %w", l.Title, err)
					}
				}
			}
		}
	}

	if l.RoomFill.Total() > 0 {
		for _, room := range s.Rooms() {
			for _, pos := range room.Tiles {
				if err := setGases(s, pos.Row, pos.Col, l.RoomFill); err != nil {
					return err
				}
			}
		}
	}
	for _, seed := range l.Seeds {
		if err := setGases(s, seed.Row, seed.Col, seed.Gases); err != nil {
			return fmt.Errorf("layout %q seed: %w", l.Title, err)
		}
	}
	return nil
}

func toolPass(t sim.Tool) int {
	switch t {
	case sim.ToolWall, sim.ToolDoor:
		return 0
	case sim.ToolWire, sim.ToolPipe:
		return 1
	default:
		return 2
	}
}

func setGases(s *sim.Simulator, row, col int, cell gas.Cell) error {
	for _, species := range gas.AllSpecies() {
		if err := s.SetGas(row, col, species, cell.Get(species)); err != nil {
			return err
		}
	}
	return nil
}

// ParseLayout reads a layout drawn one grid row per line. Lines are kept as
// written; symbols are checked when the layout is generated.
func ParseLayout(title string, r io.Reader) (*Layout, error) {
	l := &Layout{Title: title}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l.Rows = append(l.Rows, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading layout %q: %w", title, err)
	}
	return l, nil
}

// Symbol returns the layout symbol that rebuilds the tile's structure and
// machine. Gas and damage are not encoded.
func Symbol(info sim.TileInfo) rune {
	switch info.Kind {
	case entities.KindEngine:
		return SymbolEngine
	case entities.KindOxygenGenerator:
		return SymbolOxygen
	case entities.KindPlant:
		return SymbolPlant
	case entities.KindInputVent:
		return SymbolInputVent
	case entities.KindOutputVent:
		return SymbolOutputVent
	case entities.KindSpac12:
		if info.Pipe {
			return SymbolSpac12
		}
		return SymbolBareSpac12
	}

	switch {
	case info.Wall:
		return SymbolWall
	case info.Door && info.Pipe:
		return SymbolPipedDoor
	case info.Door:
		return SymbolDoor
	case info.Wire && info.Pipe:
		return SymbolWireAndPipe
	case info.Pipe:
		return SymbolPipe
	case info.Wire:
		return SymbolWire
	default:
		return SymbolVacuum
	}
}
