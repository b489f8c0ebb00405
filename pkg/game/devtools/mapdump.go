// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"lifesupport/pkg/game/entities"
	"lifesupport/pkg/game/generator"
	"lifesupport/pkg/game/sim"
)

const mapDumpFilename = "map.txt"

// DumpInfo is the run metadata written at the top of a dump
type DumpInfo struct {
	Scenario string
	Seed     int64
	Frame    int
}

// DumpMapToFile writes a full debug dump to map.txt and returns its path
func DumpMapToFile(s *sim.Simulator, info DumpInfo) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpMap(f, s, info); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}

// dumpWriter remembers the first write error so sections can be written
// without checking every line
type dumpWriter struct {
	w   io.Writer
	err error
}

func (d *dumpWriter) printf(format string, a ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, a...)
}

func (d *dumpWriter) println(a ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintln(d.w, a...)
}

// DumpMap writes metadata, legend, the layout map, and machine, room and
// network lists. The map section uses layout symbols, so it can be loaded
// back with generator.ParseLayout.
func DumpMap(w io.Writer, s *sim.Simulator, info DumpInfo) error {
	d := &dumpWriter{w: w}
	cfg := s.Config()

	d.println("=== MAP DUMP DEBUG (layout, machines, rooms, pipe networks) ===")
	d.println()
	d.println("--- Metadata ---")
	d.printf("scenario: %s\n", info.Scenario)
	d.printf("seed: %d\n", info.Seed)
	d.printf("frame: %d\n", info.Frame)
	d.printf("grid_rows: %d\n", s.Rows())
	d.printf("grid_cols: %d\n", s.Cols())
	d.println("coordinate_system: row,col (0-based, row=vertical, col=horizontal)")
	d.printf("max_pressure: %g\n", cfg.MaxPressure)
	d.printf("diffusion_period: %d\n", cfg.DiffusionPeriod)
	d.printf("machine_period: %d\n", cfg.MachinePeriod)
	d.println()

	d.println("--- Legend (layout symbols) ---")
	d.println(". = floor or vacuum  # = wall  D = door  d = door with pipe  - = wire  = = pipe  + = wire and pipe  E = engine  O = O2 generator  P = plant  I = input vent  V = output vent  S = SPAC-12 on pipe  s = bare SPAC-12")
	d.println()

	d.println("--- Map ---")
	for row := 0; row < s.Rows(); row++ {
		line := make([]rune, s.Cols())
		for col := range line {
			tile, _ := s.Tile(row, col)
			line[col] = generator.Symbol(tile)
		}
		d.println(string(line))
	}
	d.println()

	d.println("Machines:")
	for row := 0; row < s.Rows(); row++ {
		for col := 0; col < s.Cols(); col++ {
			tile, _ := s.Tile(row, col)
			if tile.Kind == entities.KindNone {
				continue
			}
			d.printf("  row: %d col: %d kind: %q powered: %v room: %d network: %d damage: %.2f",
				row, col, tile.Kind.String(), tile.Powered, tile.Room, tile.Network, tile.Damage)
			if tile.Kind == entities.KindEngine {
				d.printf(" running: %v", tile.Running)
			}
			d.println()
		}
	}
	d.println()

	d.println("Rooms:")
	rooms := s.Rooms()
	if len(rooms) == 0 {
		d.println("  (none)")
	}
	for _, r := range rooms {
		d.printf("  id: %d size: %d o2: %.3f co2: %.3f n2: %.3f pressure: %.3f damage: %.3f status: %q\n",
			r.ID, r.Size(), r.Gases.O2, r.Gases.CO2, r.Gases.N2, r.Pressure, r.Damage, r.Breathability.Label())
	}
	d.println()

	d.println("Pipe networks:")
	networks := s.Networks()
	if len(networks) == 0 {
		d.println("  (none)")
	}
	for _, n := range networks {
		predominant := "none"
		if !n.Empty {
			predominant = n.Predominant.String()
		}
		d.printf("  id: %d size: %d o2: %.3f co2: %.3f n2: %.3f predominant: %s\n",
			n.ID, len(n.Tiles), n.Gases.O2, n.Gases.CO2, n.Gases.N2, predominant)
	}
	d.println()

	d.println("=== END MAP DUMP ===")
	return d.err
}
