package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/leonelquinteros/gotext"

	"lifesupport/pkg/engine/input"
	"lifesupport/pkg/engine/terminal"
	"lifesupport/pkg/game/devtools"
	"lifesupport/pkg/game/gameplay"
	"lifesupport/pkg/game/generator"
	"lifesupport/pkg/game/renderer"
	"lifesupport/pkg/game/sim"
)

type options struct {
	scenario    string
	layoutFile  string
	seed        int64
	frames      int
	reportEvery int
	interactive bool
	dump        bool
	noColor     bool
	locales     string
	lang        string
	cfg         sim.Config
}

func parseFlags() options {
	devtools.RegisterDevMap()

	opts := options{cfg: sim.DefaultConfig()}
	flag.StringVar(&opts.scenario, "scenario", "habitat", "starting layout: "+strings.Join(generator.Names(), ", "))
	flag.StringVar(&opts.layoutFile, "layout", "", "load the starting layout from a text file instead of -scenario")
	flag.Int64Var(&opts.seed, "seed", 0, "random seed for procedural layouts (0 picks one from the clock)")
	flag.IntVar(&opts.frames, "frames", 100, "frames to simulate in batch mode")
	flag.IntVar(&opts.reportEvery, "report-every", 50, "print a frame report every N frames (0 for the last frame only)")
	flag.BoolVar(&opts.interactive, "interactive", false, "read commands from stdin instead of running a batch")
	flag.BoolVar(&opts.dump, "dump", false, "write map.txt after the batch run")
	flag.BoolVar(&opts.noColor, "no-color", false, "disable ANSI colour output")
	flag.StringVar(&opts.locales, "locales", "locales", "directory holding gettext catalogs")
	flag.StringVar(&opts.lang, "lang", "en_GB", "catalog language")

	flag.IntVar(&opts.cfg.DiffusionPeriod, "diffusion-period", opts.cfg.DiffusionPeriod, "frames between gas diffusion updates")
	flag.IntVar(&opts.cfg.MachinePeriod, "machine-period", opts.cfg.MachinePeriod, "frames between power and machine updates")
	flag.IntVar(&opts.cfg.Workers, "workers", opts.cfg.Workers, "goroutines used for neighbour gas exchange")
	flag.BoolVar(&opts.cfg.VentsRequirePower, "vents-need-power", opts.cfg.VentsRequirePower, "vents only move gas on powered tiles")
	flag.BoolVar(&opts.cfg.SpacRequiresPower, "spac-needs-power", opts.cfg.SpacRequiresPower, "SPAC-12 units only produce on powered tiles")
	flag.Parse()

	if opts.seed == 0 {
		opts.seed = time.Now().UnixNano()
	}
	return opts
}

// chooseGenerator resolves the layout file or scenario name
func chooseGenerator(opts options) (generator.Generator, string, error) {
	if opts.layoutFile != "" {
		f, err := os.Open(opts.layoutFile)
		if err != nil {
			return nil, "", err
		}
		defer f.Close()

		layout, err := generator.ParseLayout(filepath.Base(opts.layoutFile), f)
		if err != nil {
			return nil, "", err
		}
		return layout, opts.layoutFile, nil
	}

	g, ok := generator.ByName(opts.scenario)
	if !ok {
		return nil, "", fmt.Errorf("unknown scenario %q (have %s)", opts.scenario, strings.Join(generator.Names(), ", "))
	}
	return g, opts.scenario, nil
}

func main() {
	opts := parseFlags()

	gotext.Configure(opts.locales, opts.lang, "default")
	renderer.InitColors()
	renderer.SetColor(!opts.noColor && terminal.IsInteractive())

	s, err := sim.New(opts.cfg)
	if err != nil {
		log.Fatalf("Cannot create simulator: %v", err)
	}

	gen, name, err := chooseGenerator(opts)
	if err != nil {
		log.Fatalf("Cannot choose layout: %v", err)
	}
	if err := gen.Generate(s, rand.New(rand.NewSource(opts.seed))); err != nil {
		log.Fatalf("Cannot build %s: %v", gen.Name(), err)
	}
	s.AdvancePower()
	s.ClearMessages()

	session := gameplay.NewSession(s, os.Stdout)
	session.Scenario = name
	session.Seed = opts.seed

	if opts.interactive {
		if err := renderer.RenderFrame(os.Stdout, s, 0); err != nil {
			log.Fatalf("Cannot write frame: %v", err)
		}
		if err := session.Run(input.NewReader(os.Stdin), terminal.IsInteractive()); err != nil {
			log.Fatalf("Console stopped: %v", err)
		}
		return
	}

	runBatch(session, opts)
}

// runBatch steps the clock for the requested frames and prints reports
func runBatch(session *gameplay.Session, opts options) {
	var writeErr error
	runErr := session.Clock.Run(opts.frames, func(frame int) {
		if writeErr != nil {
			return
		}
		last := frame == opts.frames
		if last || (opts.reportEvery > 0 && frame%opts.reportEvery == 0) {
			writeErr = renderer.RenderFrame(os.Stdout, session.Sim, frame)
		}
	})
	if runErr != nil {
		log.Fatalf("Simulation stopped: %v", runErr)
	}
	if writeErr != nil {
		log.Fatalf("Cannot write frame: %v", writeErr)
	}

	if opts.dump {
		path, err := devtools.DumpMapToFile(session.Sim, devtools.DumpInfo{
			Scenario: session.Scenario,
			Seed:     session.Seed,
			Frame:    session.Clock.Frame,
		})
		if err != nil {
			log.Fatalf("Map dump failed: %v", err)
		}
		fmt.Println(gotext.Get("Map dumped to %s", path))
	}
}
