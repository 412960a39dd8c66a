//go:build ebiten

package ui

import (
	"image/color"

	"heatbugs/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type comfortProvider interface {
	Temperatures() []float64
	Comfortable(t float64) bool
}

// Overlay tints cells whose temperature lies inside the comfort band. Key 1
// toggles it.
type Overlay struct {
	sim         core.Sim
	scale       int
	showComfort bool
	maskImg     *ebiten.Image
	maskBuf     []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update handles the overlay toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showComfort = !o.showComfort
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showComfort {
		return
	}
	provider, ok := o.sim.(comfortProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	total := size.W * size.H
	if total == 0 {
		return
	}
	if o.maskImg == nil {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}
	ComfortMask(o.maskBuf, provider.Temperatures(), provider.Comfortable, color.RGBA{R: 40, G: 200, B: 90, A: 96})
	o.maskImg.WritePixels(o.maskBuf)

	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}
