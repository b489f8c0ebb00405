package gameplay

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/leonelquinteros/gotext"

	"lifesupport/pkg/engine/input"
	"lifesupport/pkg/game/devtools"
	"lifesupport/pkg/game/gas"
	"lifesupport/pkg/game/renderer"
	"lifesupport/pkg/game/sim"
)

// ProcessIntent applies one parsed command. quit is true once the user asks
// to leave.
func (g *Session) ProcessIntent(intent input.Intent) (quit bool, err error) {
	switch intent.Action {
	case input.ActionNone:
		if intent.Code == "" {
			return false, nil
		}
		return false, fmt.Errorf("%w: %s", ErrUnknownCommand, intent.Code)

	case input.ActionPlace:
		return false, g.place(intent.Args)

	case input.ActionDelete:
		row, col, err := parsePosition(intent.Args, "delete <row> <col>")
		if err != nil {
			return false, err
		}
		if err := g.Sim.Remove(row, col); err != nil {
			return false, err
		}
		return false, g.printMessages()

	case input.ActionSetGas:
		return false, g.setGas(intent.Args)

	case input.ActionStep:
		return false, g.step(intent.Args)

	case input.ActionPower:
		n := g.Sim.AdvancePower()
		return false, g.println(gotext.Get("%d tiles powered.", n))

	case input.ActionShow:
		return false, renderer.RenderFrame(g.Out, g.Sim, g.Clock.Frame)

	case input.ActionRooms:
		return false, g.println(renderer.RenderRoomReport(g.Sim)...)

	case input.ActionTools:
		return false, g.printTools()

	case input.ActionDump:
		path, err := devtools.DumpMapToFile(g.Sim, devtools.DumpInfo{
			Scenario: g.Scenario,
			Seed:     g.Seed,
			Frame:    g.Clock.Frame,
		})
		if err != nil {
			return false, fmt.Errorf("map dump failed: %w", err)
		}
		return false, g.println(gotext.Get("Map dumped to %s", path))

	case input.ActionBind:
		return false, g.bind(intent.Args)

	case input.ActionHelp:
		return false, g.printHelp()

	case input.ActionQuit:
		return true, nil
	}
	return false, nil
}

func (g *Session) place(args []string) error {
	const usage = "place <tool> <row> <col>"
	if len(args) < 3 {
		return fmt.Errorf("%w: %s", ErrUsage, usage)
	}
	tool, ok := findTool(strings.Join(args[:len(args)-2], " "))
	if !ok {
		return fmt.Errorf("%w: unknown tool %q", ErrUsage, strings.Join(args[:len(args)-2], " "))
	}
	row, col, err := parsePosition(args[len(args)-2:], usage)
	if err != nil {
		return err
	}

	placeErr := g.Sim.Place(row, col, tool)
	if err := g.printMessages(); err != nil {
		return err
	}
	return placeErr
}

func (g *Session) setGas(args []string) error {
	const usage = "gas <row> <col> <O2|CO2|N2> <amount>"
	if len(args) != 4 {
		return fmt.Errorf("%w: %s", ErrUsage, usage)
	}
	row, col, err := parsePosition(args[:2], usage)
	if err != nil {
		return err
	}
	species, ok := gas.ParseSpecies(args[2])
	if !ok {
		return fmt.Errorf("%w: %s", ErrUsage, usage)
	}
	amount, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUsage, usage)
	}
	return g.Sim.SetGas(row, col, species, amount)
}

func (g *Session) step(args []string) error {
	n := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 {
			return fmt.Errorf("%w: step [frames]", ErrUsage)
		}
		n = v
	}
	if err := g.Clock.Run(n, nil); err != nil {
		return err
	}
	return renderer.RenderFrame(g.Out, g.Sim, g.Clock.Frame)
}

// bind points a new word at the action of an existing command word
func (g *Session) bind(args []string) error {
	const usage = "bind <word> <command>"
	if len(args) != 2 {
		return fmt.Errorf("%w: %s", ErrUsage, usage)
	}
	action := input.ParseLine(args[1]).Action
	if action == input.ActionNone || !input.SetBinding(args[0], action) {
		return fmt.Errorf("%w: %s", ErrUsage, usage)
	}
	return g.println(gotext.Get("%s now runs %s.", strings.ToLower(args[0]), input.ActionName(action)))
}

// findTool matches a tool label ignoring case
func findTool(name string) (sim.Tool, bool) {
	for _, t := range sim.AllTools() {
		if strings.EqualFold(t.Label(), name) || strings.EqualFold(t.String(), name) {
			return t, true
		}
	}
	return 0, false
}

func parsePosition(args []string, usage string) (row, col int, err error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("%w: %s", ErrUsage, usage)
	}
	row, rowErr := strconv.Atoi(args[0])
	col, colErr := strconv.Atoi(args[1])
	if rowErr != nil || colErr != nil {
		return 0, 0, fmt.Errorf("%w: %s", ErrUsage, usage)
	}
	return row, col, nil
}

func (g *Session) println(lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(g.Out, line); err != nil {
			return err
		}
	}
	return nil
}

// printMessages flushes the simulator's message log to the output
func (g *Session) printMessages() error {
	msgs := g.Sim.Messages()
	g.Sim.ClearMessages()
	return g.println(msgs...)
}

func (g *Session) printTools() error {
	var lines []string
	for _, category := range sim.ToolCategories() {
		names := make([]string, len(category.Tools))
		for i, t := range category.Tools {
			names[i] = t.String()
		}
		lines = append(lines, renderer.ColorHeader.Sprint(category.Name)+": "+strings.Join(names, ", "))
	}
	return g.println(lines...)
}

func (g *Session) printHelp() error {
	byAction := input.GetBindingsByAction()
	actions := make([]input.Action, 0, len(byAction))
	for a := range byAction {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	lines := make([]string, 0, len(actions))
	for _, a := range actions {
		lines = append(lines, fmt.Sprintf("%-8s %s", input.ActionName(a), strings.Join(byAction[a], ", ")))
	}
	return g.println(lines...)
}
