package devtools

import (
	"fmt"
	"math/rand"

	"lifesupport/pkg/game/gas"
	"lifesupport/pkg/game/generator"
	"lifesupport/pkg/game/sim"
)

// DevMapKey is the generator key the dev map registers under
const DevMapKey = "dev"

// devMapLayout holds every machine kind in each of its states: a powered
// workshop fed by a SPAC-12, a bare SPAC in vacuum, and three sealed rooms
// that start toxic, over-pressured and starved
var devMapLayout = &generator.Layout{
	Title: "Dev Test Map",
	Rows: []string{
		"....................",
		".#########..........",
		".#E-O...P#..........",
		".#.......#..........",
		".#I=====V#..........",
		".#O...+..#..........",
		".#####d###..........",
		"......=.............",
		"......S.............",
		"..s.................",
		"....................",
		".#####...#####.####.",
		".#...#...#...#.#..#.",
		".#.P.#...#.P.#.#E.#.",
		".#...#...#...#.#..#.",
		".#####...#####.####.",
	},
}

// roomFill sets the gas of the whole room containing an anchor tile
type roomFill struct {
	anchor sim.Position
	gases  gas.Cell
}

var devMapFills = []roomFill{
	{anchor: sim.Position{Row: 3, Col: 5}, gases: gas.Cell{O2: 40, N2: 3}},
	{anchor: sim.Position{Row: 13, Col: 3}, gases: gas.Cell{O2: 400}},
	{anchor: sim.Position{Row: 13, Col: 10}, gases: gas.Cell{N2: 1200}},
}

// devMapSeeds tops up tiles after the room fills
var devMapSeeds = []generator.Seed{
	{Row: 2, Col: 2, Gases: gas.Cell{O2: 10, N2: 5}},
	{Row: 9, Col: 2, Gases: gas.Cell{N2: 4}},
}

// DevMap builds the developer test map
type DevMap struct{}

// Name returns the display name of the dev map
func (DevMap) Name() string {
	return devMapLayout.Title
}

// Generate paints the dev map and its starting atmospheres
func (DevMap) Generate(s *sim.Simulator, rng *rand.Rand) error {
	if err := devMapLayout.Generate(s, rng); err != nil {
		return err
	}
	for _, fill := range devMapFills {
		tile, ok := s.Tile(fill.anchor.Row, fill.anchor.Col)
		if !ok || !tile.InRoom() {
			return fmt.Errorf("dev map anchor %d:%d is not in a room", fill.anchor.Row, fill.anchor.Col)
		}
		room, _ := s.Room(tile.Room)
		for _, pos := range room.Tiles {
			if err := setGases(s, pos, fill.gases); err != nil {
				return err
			}
		}
	}
	for _, seed := range devMapSeeds {
		if err := setGases(s, sim.Position{Row: seed.Row, Col: seed.Col}, seed.Gases); err != nil {
			return err
		}
	}
	return nil
}

func setGases(s *sim.Simulator, pos sim.Position, cell gas.Cell) error {
	for _, species := range gas.AllSpecies() {
		if err := s.SetGas(pos.Row, pos.Col, species, cell.Get(species)); err != nil {
			return err
		}
	}
	return nil
}

// RegisterDevMap makes the dev map selectable by DevMapKey
func RegisterDevMap() {
	generator.Register(DevMapKey, DevMap{})
}
