// Package app hosts the interactive viewer. The window itself needs the ebiten
// build tag; the stepping controls are shared with headless builds.
package app

import "cellsim/internal/core"

// Controls tracks pause and single-step state for a sim.
type Controls struct {
	sim      core.Sim
	paused   bool
	tickOnce bool
}

// NewControls wraps sim. Viewers start paused so the initial layout is visible.
func NewControls(sim core.Sim) *Controls {
	return &Controls{sim: sim, paused: true}
}

// TogglePause flips the paused state.
func (c *Controls) TogglePause() { c.paused = !c.paused }

// Resume clears the paused state.
func (c *Controls) Resume() { c.paused = false }

// TickOnce requests a single generation while paused.
func (c *Controls) TickOnce() { c.tickOnce = true }

// Paused reports whether the sim is paused.
func (c *Controls) Paused() bool { return c.paused }

// Reset rewinds the sim and pauses.
func (c *Controls) Reset() {
	c.sim.Reset()
	c.paused = true
	c.tickOnce = false
}

// Advance steps the sim when running or when a single tick was requested. It
// reports whether a generation was applied.
func (c *Controls) Advance() bool {
	if c.sim.Done() {
		c.tickOnce = false
		return false
	}
	if c.paused && !c.tickOnce {
		return false
	}
	c.sim.Step()
	c.tickOnce = false
	return true
}
