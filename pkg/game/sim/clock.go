package sim

import "fmt"

// Clock drives a Simulator from a frame counter with two independent
// cadences: gas diffusion every DiffusionPeriod frames, power and machines
// every MachinePeriod frames.
type Clock struct {
	sim   *Simulator
	Frame int
}

// NewClock creates a clock at frame 0
func NewClock(s *Simulator) *Clock {
	return &Clock{sim: s}
}

// Step advances one frame. On a frame where both cadences fall, power and
// machines run before diffusion. Returns which phases ran.
func (c *Clock) Step() (machines, diffusion bool, err error) {
	c.Frame++
	cfg := c.sim.cfg

	if c.Frame%cfg.MachinePeriod == 0 {
		c.sim.AdvancePower()
		c.sim.AdvanceMachines()
		machines = true
	}
	if c.Frame%cfg.DiffusionPeriod == 0 {
		if err := c.sim.AdvanceGasDiffusion(); err != nil {
			return machines, false, fmt.Errorf("frame %d: %w", c.Frame, err)
		}
		diffusion = true
	}
	return machines, diffusion, nil
}

// Run advances n frames, calling onFrame (if not nil) after each one. It
// stops at the first frame that fails.
func (c *Clock) Run(n int, onFrame func(frame int)) error {
	for i := 0; i < n; i++ {
		if _, _, err := c.Step(); err != nil {
			return err
		}
		if onFrame != nil {
			onFrame(c.Frame)
		}
	}
	return nil
}
