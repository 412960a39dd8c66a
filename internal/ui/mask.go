package ui

import "image/color"

// ComfortMask writes premultiplied tint pixels into buf for every temperature
// accepted by inBand and clears the rest.
func ComfortMask(buf []byte, temps []float64, inBand func(float64) bool, tint color.RGBA) {
	a := uint32(tint.A)
	r := uint8(uint32(tint.R) * a / 255)
	g := uint8(uint32(tint.G) * a / 255)
	b := uint8(uint32(tint.B) * a / 255)
	for i, t := range temps {
		base := i * 4
		if base+3 >= len(buf) {
			return
		}
		if inBand(t) {
			buf[base+0], buf[base+1], buf[base+2], buf[base+3] = r, g, b, tint.A
			continue
		}
		buf[base+0], buf[base+1], buf[base+2], buf[base+3] = 0, 0, 0, 0
	}
}
