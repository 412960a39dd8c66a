// Package view renders heat bug worlds to a terminal.
package view

import (
	"strings"

	"github.com/logrusorgru/aurora"

	"heatbugs/internal/core"
	"heatbugs/internal/sims/heatbugs"
)

// grayscale ramp of the xterm 256-colour palette.
const (
	grayFirst  = 232
	grayLevels = 24
	bugColor   = 45
)

var plainRamp = []byte(" .:-=+*#%@")

// Heatmap formats display buffers as two characters per cell, row 0 first.
type Heatmap struct {
	au     aurora.Aurora
	colors bool
}

// NewHeatmap returns a Heatmap. With colors disabled cells are drawn with an
// ASCII intensity ramp and bugs as "<>".
func NewHeatmap(colors bool) *Heatmap {
	return &Heatmap{au: aurora.NewAurora(colors), colors: colors}
}

// Render draws the display buffer of sim.
func (h *Heatmap) Render(sim core.Sim) string {
	size := sim.Size()
	cells := sim.Cells()
	if len(cells) != size.W*size.H {
		return ""
	}
	var b strings.Builder
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			b.WriteString(h.cell(cells[y*size.W+x]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (h *Heatmap) cell(v uint8) string {
	if v == heatbugs.DisplayBug {
		if !h.colors {
			return "<>"
		}
		return h.au.BgIndex(bugColor, h.au.Black("<>")).String()
	}
	level := float64(v) / float64(heatbugs.DisplayBug-1)
	if !h.colors {
		c := plainRamp[int(level*float64(len(plainRamp)-1)+0.5)]
		return string([]byte{c, c})
	}
	idx := uint8(grayFirst + int(level*float64(grayLevels-1)+0.5))
	return h.au.BgIndex(idx, "  ").String()
}
