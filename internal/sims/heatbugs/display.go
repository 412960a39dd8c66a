package heatbugs

import (
	"image/color"
	"math"
)

const (
	displayLevels = 255
	// DisplayBug is the palette index of a cell occupied by at least one bug.
	DisplayBug uint8 = displayLevels
)

var heatPalette = buildHeatPalette()

// Palette exposes the color palette used for rendering the display buffer.
func (w *World) Palette() []color.RGBA {
	return heatPalette
}

func buildHeatPalette() []color.RGBA {
	palette := make([]color.RGBA, displayLevels+1)
	for i := 0; i < displayLevels; i++ {
		v := uint8(float64(i)/float64(displayLevels-1)*255 + 0.5)
		palette[i] = color.RGBA{R: v, G: v, B: v, A: 255}
	}
	palette[DisplayBug] = color.RGBA{R: 0, G: 179, B: 255, A: 255}
	return palette
}

// Brightness maps a temperature onto [0, 1]: 1 - 10/(t+1), clamped. Cold cells
// are black and brightness approaches white as t grows.
func Brightness(t float64) float64 {
	if t+1 <= 0 || math.IsNaN(t) {
		return 0
	}
	g := 1 - 1/((t+1)/10)
	if g < 0 {
		return 0
	}
	if g > 1 {
		return 1
	}
	return g
}

func encodeDisplayValue(t float64) uint8 {
	return uint8(math.Round(Brightness(t) * float64(displayLevels-1)))
}

func (w *World) rebuildDisplay() {
	temps := w.temp.Values()
	for i := range w.display {
		w.display[i] = encodeDisplayValue(temps[i])
	}
	for _, b := range w.bugs {
		w.display[w.temp.Index(b.X, b.Y)] = DisplayBug
	}
}
