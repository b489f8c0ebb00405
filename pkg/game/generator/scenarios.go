package generator

import "lifesupport/pkg/game/gas"

// habitatLayout is a single room with a wired engine and oxygen generator,
// a plant, and a SPAC-12 feeding an output vent through a piped door
var habitatLayout = &Layout{
	Title: "Habitat",
	Rows: []string{
		"....................",
		"....................",
		"...S................",
		"..#d########........",
		"..#V..P....#........",
		"..#........#........",
		"..#E--O....#........",
		"..#........#........",
		"..##########........",
	},
	RoomFill: gas.Cell{O2: 40, N2: 3},
	Seeds: []Seed{
		{Row: 6, Col: 3, Gases: gas.Cell{O2: 10, N2: 5}},
	},
}

// transferLayout pipes gas from a CO2-heavy room into an empty one
var transferLayout = &Layout{
	Title: "Transfer",
	Rows: []string{
		"....................",
		"..######..######....",
		"..#....#..#....#....",
		"..#.I==d==d==V.#....",
		"..#....#..#....#....",
		"..######..######....",
	},
	Seeds: []Seed{
		{Row: 2, Col: 3, Gases: gas.Cell{O2: 20, CO2: 30}},
		{Row: 3, Col: 3, Gases: gas.Cell{O2: 20, CO2: 30}},
		{Row: 4, Col: 3, Gases: gas.Cell{O2: 20, CO2: 30}},
	},
}
