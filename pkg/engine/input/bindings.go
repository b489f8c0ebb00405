package input

import (
	"sort"
	"strings"
)

// Action is what a command line asks the console to do
type Action int

const (
	ActionNone Action = iota

	// Editing
	ActionPlace
	ActionDelete
	ActionSetGas

	// Time
	ActionStep
	ActionPower

	// Reports
	ActionShow
	ActionRooms
	ActionTools
	ActionDump

	// Meta
	ActionBind
	ActionHelp
	ActionQuit
)

// Intent is a parsed command: the bound action and the remaining words
type Intent struct {
	Action Action
	Code   string
	Args   []string
}

// bindings maps command words to actions. Multiple words may point to the
// same Action.
var bindings = map[string]Action{
	"place": ActionPlace,
	"p":     ActionPlace,
	"build": ActionPlace,

	"delete": ActionDelete,
	"del":    ActionDelete,
	"rm":     ActionDelete,

	"gas": ActionSetGas,
	"g":   ActionSetGas,

	"step": ActionStep,
	"s":    ActionStep,
	"tick": ActionStep,

	"power": ActionPower,

	"show": ActionShow,
	"map":  ActionShow,
	"m":    ActionShow,

	"rooms": ActionRooms,
	"r":     ActionRooms,

	"tools": ActionTools,
	"t":     ActionTools,

	"dump": ActionDump,

	"bind": ActionBind,

	"help": ActionHelp,
	"h":    ActionHelp,
	"?":    ActionHelp,

	"quit": ActionQuit,
	"q":    ActionQuit,
	"exit": ActionQuit,
}

// ParseLine splits a command line into words and binds the first one.
// Blank lines give ActionNone with no code.
func ParseLine(line string) Intent {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Intent{Action: ActionNone}
	}
	code := strings.ToLower(fields[0])
	return Intent{Action: bindings[code], Code: code, Args: fields[1:]}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionPlace:
		return "Place"
	case ActionDelete:
		return "Delete"
	case ActionSetGas:
		return "Set Gas"
	case ActionStep:
		return "Step"
	case ActionPower:
		return "Power"
	case ActionShow:
		return "Show"
	case ActionRooms:
		return "Rooms"
	case ActionTools:
		return "Tools"
	case ActionDump:
		return "Dump"
	case ActionBind:
		return "Bind"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetBinding points code at action, replacing any previous meaning of code.
// An empty code or ActionNone removes nothing and returns false.
func SetBinding(code string, action Action) bool {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" || action == ActionNone {
		return false
	}
	bindings[code] = action
	return true
}
