// Package gameplay runs the interactive console: it reads commands, applies
// them to a simulator and prints the results.
package gameplay

import (
	"errors"
	"fmt"
	"io"

	"github.com/leonelquinteros/gotext"

	"lifesupport/pkg/engine/input"
	"lifesupport/pkg/game/renderer"
	"lifesupport/pkg/game/sim"
)

// Console errors
var (
	ErrUsage          = errors.New("usage")
	ErrUnknownCommand = errors.New("unknown command")
)

// Session is one console run over a simulator
type Session struct {
	Sim   *sim.Simulator
	Clock *sim.Clock
	Out   io.Writer

	// Scenario and Seed are recorded in map dumps
	Scenario string
	Seed     int64
}

// NewSession creates a session with its clock at frame 0
func NewSession(s *sim.Simulator, out io.Writer) *Session {
	return &Session{
		Sim:   s,
		Clock: sim.NewClock(s),
		Out:   out,
	}
}

// Run reads commands until quit or end of input. Command errors are printed
// and the session continues; read and write errors end it.
func (g *Session) Run(r *input.Reader, prompt bool) error {
	for {
		if prompt {
			if _, err := fmt.Fprint(g.Out, renderer.ColorHeader.Sprint("> ")); err != nil {
				return err
			}
		}

		line, err := r.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading command: %w", err)
		}

		quit, err := g.ProcessIntent(input.ParseLine(line))
		if err != nil {
			if _, werr := fmt.Fprintln(g.Out, renderer.ColorWireOff.Sprint(err.Error())); werr != nil {
				return werr
			}
		}
		if quit {
			_, err := fmt.Fprintln(g.Out, gotext.Get("Goodbye."))
			return err
		}
	}
}
