package app

import "heatbugs/internal/core"

const (
	hudWidth     = 240
	hudMinHeight = 360
)

// WindowSize returns the window dimensions for a grid drawn at scale with the
// HUD panel to its right.
func WindowSize(size core.Size, scale int) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	w := size.W*scale + hudWidth
	h := size.H * scale
	if h < hudMinHeight {
		h = hudMinHeight
	}
	return w, h
}
