//go:build ebiten

package ui

import (
	"image/color"

	"heatbugs/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 15
)

// HUD renders the read-only parameter and statistics panel to the right of
// the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// Update refreshes the cached panel text from the simulation.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	h.lines = PanelLines(h.sim)
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if minHeight := (len(h.lines) + 1) * lineHeight; height < minHeight {
		height = minHeight
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	for i, line := range h.lines {
		clr := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i == 0 {
			clr = color.RGBA{R: 200, G: 200, B: 210, A: 255}
		}
		text.Draw(h.panel, line, face, panelPadding, (i+1)*lineHeight, clr)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
