// Package renderer turns simulation state into coloured terminal text: the
// tile map, the room report and the message log.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"lifesupport/pkg/engine/terminal"
	"lifesupport/pkg/game/entities"
	"lifesupport/pkg/game/gas"
	"lifesupport/pkg/game/sim"
)

// Icon constants, matching the layout symbols where one exists
const (
	IconVacuum      = " "
	IconFloor       = "."
	IconWall        = "▒"
	IconDoor        = "D"
	IconWire        = "-"
	IconPipe        = "="
	IconWireAndPipe = "+"
)

// reportGap separates the map from the room report when they share lines
const reportGap = 3

var (
	ColorFloor   color.Style
	ColorWall    color.Style
	ColorDoor    color.Style
	ColorWireOn  color.Style
	ColorWireOff color.Style
	ColorHeader  color.Style
	ColorSubtle  color.Style

	componentColors map[entities.Kind]color.Style
	pipeColors      map[gas.Species]color.Style
	statusColors    map[gas.Breathability]color.Style
)

func init() {
	InitColors()
}

// InitColors initializes the color styles
func InitColors() {
	ColorFloor = color.Style{color.FgGray}
	ColorWall = color.Style{color.FgWhite}
	ColorDoor = color.Style{color.FgYellow, color.OpBold}
	ColorWireOn = color.Style{color.FgYellow}
	ColorWireOff = color.Style{color.FgRed}
	ColorHeader = color.Style{color.FgCyan, color.OpBold}
	ColorSubtle = color.Style{color.FgGray, color.OpBold}

	componentColors = map[entities.Kind]color.Style{
		entities.KindEngine:          {color.FgRed, color.OpBold},
		entities.KindOxygenGenerator: {color.FgLightGreen, color.OpBold},
		entities.KindInputVent:       {color.FgBlue, color.OpBold},
		entities.KindOutputVent:      {color.FgBlue, color.OpBold},
		entities.KindPlant:           {color.FgGreen},
		entities.KindSpac12:          {color.FgMagenta, color.OpBold},
	}
	pipeColors = map[gas.Species]color.Style{
		gas.O2:  {color.FgCyan},
		gas.CO2: {color.FgLightRed},
		gas.N2:  {color.FgGray},
	}
	statusColors = map[gas.Breathability]color.Style{
		gas.VeryBreathable:   {color.FgGreen, color.OpBold},
		gas.Breathable:       {color.FgBlue, color.OpBold},
		gas.BarelyBreathable: {color.FgYellow},
		gas.O2Toxic:          {color.FgMagenta, color.OpBold},
		gas.Unbreathable:     {color.FgRed, color.OpBold},
	}
}

// SetColor switches ANSI colour output on or off for every style
func SetColor(enabled bool) {
	color.Enable = enabled
}

// componentSymbol returns the map letter for a machine kind
func componentSymbol(kind entities.Kind) string {
	switch kind {
	case entities.KindEngine:
		return "E"
	case entities.KindOxygenGenerator:
		return "O"
	case entities.KindPlant:
		return "P"
	case entities.KindSpac12:
		return "S"
	case entities.KindInputVent:
		return "I"
	case entities.KindOutputVent:
		return "V"
	default:
		return "?"
	}
}

// componentDimmed reports whether a powered machine is drawn as idle
func componentDimmed(info sim.TileInfo) bool {
	switch info.Kind {
	case entities.KindEngine, entities.KindOxygenGenerator, entities.KindSpac12:
		return !info.Powered
	default:
		return false
	}
}

// RenderTile returns the coloured one-character view of a tile. network is
// the tile's pipe network, or nil.
func RenderTile(info sim.TileInfo, network *sim.NetworkInfo) string {
	switch {
	case info.Wall:
		return ColorWall.Sprint(IconWall)
	case info.Kind != entities.KindNone:
		if componentDimmed(info) {
			return ColorSubtle.Sprint(componentSymbol(info.Kind))
		}
		return componentColors[info.Kind].Sprint(componentSymbol(info.Kind))
	case info.Door:
		return ColorDoor.Sprint(IconDoor)
	case info.Wire && info.Pipe:
		return wireStyle(info).Sprint(IconWireAndPipe)
	case info.Pipe:
		return pipeStyle(network).Sprint(IconPipe)
	case info.Wire:
		return wireStyle(info).Sprint(IconWire)
	case info.InRoom():
		return ColorFloor.Sprint(IconFloor)
	default:
		return IconVacuum
	}
}

func wireStyle(info sim.TileInfo) color.Style {
	if info.Powered {
		return ColorWireOn
	}
	return ColorWireOff
}

// pipeStyle colours a pipe by the gas its network holds most of
func pipeStyle(network *sim.NetworkInfo) color.Style {
	if network == nil || network.Empty {
		return ColorSubtle
	}
	return pipeColors[network.Predominant]
}

// RenderMap returns one line per grid row
func RenderMap(s *sim.Simulator) []string {
	networks := make(map[int]*sim.NetworkInfo)
	for _, n := range s.Networks() {
		networks[n.ID] = &n
	}

	lines := make([]string, 0, s.Rows())
	for row := 0; row < s.Rows(); row++ {
		var b strings.Builder
		for col := 0; col < s.Cols(); col++ {
			info, _ := s.Tile(row, col)
			b.WriteString(RenderTile(info, networks[info.Network]))
		}
		lines = append(lines, b.String())
	}
	return lines
}

// RenderStatus returns the coloured breathability label
func RenderStatus(b gas.Breathability) string {
	return statusColors[b].Sprint(b.String())
}

// RenderRoomReport returns the per-room summary: size, gas means, damage,
// status and pressure against the limit
func RenderRoomReport(s *sim.Simulator) []string {
	rooms := s.Rooms()
	if len(rooms) == 0 {
		return []string{ColorSubtle.Sprint(gotext.Get("No enclosed rooms"))}
	}

	var lines []string
	for _, r := range rooms {
		lines = append(lines,
			ColorHeader.Sprint(gotext.Get("Room %d", r.ID)),
			gotext.Get("  Size: %d tiles", r.Size()),
			fmt.Sprintf("  O2: %.1f  CO2: %.1f  N2: %.1f", r.Gases.O2, r.Gases.CO2, r.Gases.N2),
			gotext.Get("  Damage: %.1f%%", r.Damage*100),
			gotext.Get("  Status: %s", RenderStatus(r.Breathability)),
			gotext.Get("  Pressure: %.1f/%.0f", r.Pressure, r.MaxPressure),
		)
	}
	return lines
}

// visibleWidth returns the printed width of s without colour codes
func visibleWidth(s string) int {
	return len([]rune(color.ClearCode(s)))
}

// joinColumns places right beside left, padding left to width
func joinColumns(left, right []string, width int) []string {
	n := max(len(left), len(right))
	out := make([]string, n)
	for i := 0; i < n; i++ {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		pad := width - visibleWidth(l)
		if pad < 0 {
			pad = 0
		}
		out[i] = l + strings.Repeat(" ", pad) + r
	}
	return out
}

// RenderFrame writes the map, the room report and the recent messages.
// The report sits beside the map when the terminal is wide enough.
func RenderFrame(w io.Writer, s *sim.Simulator, frame int) error {
	header := ColorHeader.Sprint(gotext.Get("Frame %d", frame))
	mapLines := RenderMap(s)
	report := RenderRoomReport(s)

	var body []string
	mapWidth := s.Cols() + reportGap
	reportWidth := 0
	for _, line := range report {
		reportWidth = max(reportWidth, visibleWidth(line))
	}
	if terminal.Fits(mapWidth + reportWidth) {
		body = joinColumns(mapLines, report, mapWidth)
	} else {
		body = append(append(mapLines, ""), report...)
	}

	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, line := range body {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	for _, msg := range s.Messages() {
		if _, err := fmt.Fprintln(w, ColorSubtle.Sprint("> "+msg)); err != nil {
			return err
		}
	}
	return nil
}
