package heatbugs

import "sync"

// Diffuse replaces the temperature field with the next tick's values:
//
//	next[c] = prev[c]*(1 - decay - 8*diffusion) + sum(prev[n]*diffusion)
//
// over the eight wrapped neighbours n, then adds BugHeat once per bug to the
// cell it occupies. Every read comes from the previous tick's buffer.
func (w *World) Diffuse() {
	w.mustBeInitialized()

	w.temp, w.prev = w.prev, w.temp

	if w.cfg.Workers > 1 && w.h > 1 {
		w.diffuseParallel(w.cfg.Workers)
	} else {
		w.diffuseRows(0, w.h)
	}

	heat := w.cfg.Params.BugHeat
	temps := w.temp.Values()
	for _, b := range w.bugs {
		temps[w.temp.Index(b.X, b.Y)] += heat
	}
}

func (w *World) diffuseRows(y0, y1 int) {
	p := w.cfg.Params
	self := 1 - p.Decay - 8*p.Diffusion
	src := w.prev.Values()
	dst := w.temp.Values()
	for y := y0; y < y1; y++ {
		for x := 0; x < w.w; x++ {
			idx := y*w.w + x
			t := src[idx] * self
			for _, n := range w.nbr[idx] {
				t += src[n] * p.Diffusion
			}
			dst[idx] = t
		}
	}
}

// diffuseParallel splits the grid into row bands. All bands finish before
// Diffuse goes on to inject bug heat.
func (w *World) diffuseParallel(workers int) {
	if workers > w.h {
		workers = w.h
	}
	band := (w.h + workers - 1) / workers
	var wg sync.WaitGroup
	for y0 := 0; y0 < w.h; y0 += band {
		y1 := y0 + band
		if y1 > w.h {
			y1 = w.h
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			w.diffuseRows(y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}
