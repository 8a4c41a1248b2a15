package ui

import (
	"fmt"

	"cellsim/internal/core"
)

// StatusLine summarises a running sim for the overlay.
func StatusLine(sim core.Sim, paused bool) string {
	state := "running"
	switch {
	case sim.Done():
		state = "terminated"
	case paused:
		state = "paused"
	}
	return fmt.Sprintf("%s  gen %d  count %d  [%s]", sim.Name(), sim.Generation(), sim.Count(), state)
}
