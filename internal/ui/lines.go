package ui

import (
	"fmt"

	"falling-sand/internal/core"
)

// Status is the driver state shown above the parameter listing.
type Status struct {
	Brush  string
	Radius int
	Paused bool
}

// Lines formats the driver status and the sim's parameter snapshot as the
// text rows of the panel.
func Lines(st Status, snap core.ParameterSnapshot) []string {
	state := "running"
	if st.Paused {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("Brush: %s (r=%d)", st.Brush, st.Radius),
		"State: " + state,
	}
	for _, group := range snap.Groups {
		lines = append(lines, "", group.Name)
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}
