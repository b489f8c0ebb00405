package sim

import (
	"github.com/leonelquinteros/gotext"

	"lifesupport/pkg/game/entities"
)

// dynamicGet translates a key chosen at runtime
var dynamicGet = gotext.Get

// Tool is a structural edit a player can paint onto a tile
type Tool int

const (
	ToolWall Tool = iota
	ToolDoor
	ToolWire
	ToolEngine
	ToolOxygenGenerator
	ToolInputVent
	ToolOutputVent
	ToolPipe
	ToolPlant
	ToolSpac12
	ToolDelete
)

// AllTools returns every tool in catalogue order
func AllTools() []Tool {
	return []Tool{
		ToolWall, ToolDoor, ToolWire, ToolEngine, ToolOxygenGenerator,
		ToolInputVent, ToolOutputVent, ToolPipe, ToolPlant, ToolSpac12, ToolDelete,
	}
}

// Label returns the untranslated display name, used as the translation key
func (t Tool) Label() string {
	switch t {
	case ToolWall:
		return "Wall"
	case ToolDoor:
		return "Door"
	case ToolWire:
		return "Wire"
	case ToolPipe:
		return "Pipe"
	case ToolDelete:
		return "Delete"
	default:
		if k := t.ComponentKind(); k != entities.KindNone {
			return k.String()
		}
		return "Unknown"
	}
}

// String returns the localized display name
func (t Tool) String() string {
	return dynamicGet(t.Label())
}

// IsValid returns true for tools in the catalogue
func (t Tool) IsValid() bool {
	return t >= ToolWall && t <= ToolDelete
}

// ComponentKind returns the machine a tool places, or KindNone
func (t Tool) ComponentKind() entities.Kind {
	switch t {
	case ToolEngine:
		return entities.KindEngine
	case ToolOxygenGenerator:
		return entities.KindOxygenGenerator
	case ToolInputVent:
		return entities.KindInputVent
	case ToolOutputVent:
		return entities.KindOutputVent
	case ToolPlant:
		return entities.KindPlant
	case ToolSpac12:
		return entities.KindSpac12
	default:
		return entities.KindNone
	}
}

// ToolCategory groups tools for menus
type ToolCategory struct {
	Name  string
	Tools []Tool
}

// ToolCategories returns the tool catalogue grouped by purpose.
// Category names are localized.
func ToolCategories() []ToolCategory {
	return []ToolCategory{
		{Name: gotext.Get("Construction"), Tools: []Tool{ToolWall, ToolDoor}},
		{Name: gotext.Get("Power"), Tools: []Tool{ToolWire, ToolEngine}},
		{Name: gotext.Get("Life Support"), Tools: []Tool{
			ToolOxygenGenerator, ToolInputVent, ToolOutputVent, ToolPipe, ToolPlant, ToolSpac12,
		}},
		{Name: gotext.Get("Utility"), Tools: []Tool{ToolDelete}},
	}
}

// ParseTool returns the tool with the given untranslated label
func ParseTool(label string) (Tool, bool) {
	for _, t := range AllTools() {
		if t.Label() == label {
			return t, true
		}
	}
	return 0, false
}
