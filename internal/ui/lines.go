package ui

import (
	"fmt"
	"strings"

	"heatbugs/internal/core"
)

type statsProvider interface {
	Tick() uint64
	BugCount() int
	ComfortableBugs() int
	LastMoved() int
}

// PanelLines returns the text rows shown in the HUD panel: a title, the
// parameter groups of sim and, when available, live bug statistics.
func PanelLines(sim core.Sim) []string {
	lines := []string{buildTitle(sim)}
	if st, ok := sim.(statsProvider); ok {
		lines = append(lines,
			"",
			fmt.Sprintf("Tick        %d", st.Tick()),
			fmt.Sprintf("Comfortable %d/%d", st.ComfortableBugs(), st.BugCount()),
			fmt.Sprintf("Moved       %d", st.LastMoved()),
		)
	}
	provider, ok := sim.(core.ParameterProvider)
	if !ok {
		return append(lines, "", "No parameters")
	}
	for _, group := range provider.Parameters().Groups {
		lines = append(lines, "", group.Name)
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("  %-18s %s", p.Label, p.Value))
		}
	}
	return lines
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Parameters"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}
