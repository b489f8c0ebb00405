// Package entities contains the life-support machines that can be placed on
// tiles. Machine behaviour works on gas containers handed in by the
// simulation; the machines themselves only hold their tuning and state.
package entities

import (
	"lifesupport/pkg/engine/world"
)

// Kind identifies a component variant
type Kind int

const (
	KindNone Kind = iota
	KindEngine
	KindOxygenGenerator
	KindPlant
	KindSpac12
	KindInputVent
	KindOutputVent
)

// String returns the display name of the component kind
func (k Kind) String() string {
	switch k {
	case KindEngine:
		return "Engine"
	case KindOxygenGenerator:
		return "O2 Generator"
	case KindPlant:
		return "Plant"
	case KindSpac12:
		return "SPAC-12"
	case KindInputVent:
		return "Input Vent"
	case KindOutputVent:
		return "Output Vent"
	default:
		return "None"
	}
}

// RequiresRoom returns true if the kind can only be placed inside an enclosed room
func (k Kind) RequiresRoom() bool {
	switch k {
	case KindEngine, KindOxygenGenerator, KindPlant, KindInputVent, KindOutputVent:
		return true
	default:
		return false
	}
}

// Component is the closed set of machines a tile can hold.
// Only types in this package implement it.
type Component interface {
	Kind() Kind
	// RoomID returns the id of the room the component was placed in, 0 for vacuum
	RoomID() int
	// Placed returns the cell the component sits on, nil before placement
	Placed() *world.Cell
	// Place records the owning cell and room
	Place(cell *world.Cell, roomID int)

	sealed()
}

// base holds the placement back-references shared by every component
type base struct {
	Cell   *world.Cell
	roomID int
}

func (b *base) RoomID() int         { return b.roomID }
func (b *base) Placed() *world.Cell { return b.Cell }
func (b *base) sealed()             {}

// Place records the owning cell and room
func (b *base) Place(cell *world.Cell, roomID int) {
	b.Cell = cell
	b.roomID = roomID
}

// New creates a component of the given kind with default tuning
func New(kind Kind) Component {
	switch kind {
	case KindEngine:
		return NewEngine()
	case KindOxygenGenerator:
		return NewOxygenGenerator()
	case KindPlant:
		return NewPlant()
	case KindSpac12:
		return NewSpac12()
	case KindInputVent:
		return NewInputVent()
	case KindOutputVent:
		return NewOutputVent()
	default:
		return nil
	}
}
