// Package heatbugs implements a toroidal thermal grid whose cells decay and
// diffuse heat, inhabited by bugs that emit heat and hill-climb toward a
// comfortable temperature band.
package heatbugs

import (
	"heatbugs/internal/core"
)

// World stores the temperature field, the bug positions and the tick counter.
type World struct {
	cfg  Config
	name string

	w, h int

	// temp is the live field; prev holds the previous tick during Diffuse.
	temp *core.FloatGrid
	prev *core.FloatGrid
	// nbr caches the wrapped neighbour indices of every cell in scan order.
	nbr [][8]int

	bugs    []core.Coord
	display []uint8

	tick  uint64
	moved int
}

// New returns a heat bug world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options. The
// world is empty until Reset is called.
func NewWithConfig(cfg Config) *World {
	temp := core.NewFloatGrid(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = temp.W, temp.H
	if cfg.Params.BugCount < 0 {
		cfg.Params.BugCount = 0
	}
	w := &World{
		cfg:     cfg,
		name:    "heatbugs",
		w:       temp.W,
		h:       temp.H,
		temp:    temp,
		prev:    core.NewFloatGrid(temp.W, temp.H),
		display: make([]uint8, temp.W*temp.H),
	}
	w.nbr = buildNeighborTable(temp)
	return w
}

func buildNeighborTable(g *core.FloatGrid) [][8]int {
	table := make([][8]int, g.W*g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			for i, n := range g.Neighbors(core.Coord{X: x, Y: y}) {
				table[g.Index(x, y)][i] = g.Index(n.X, n.Y)
			}
		}
	}
	return table
}

// Name returns the simulation identifier.
func (w *World) Name() string { return w.name }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Cells exposes the current display buffer.
func (w *World) Cells() []uint8 { return w.display }

// Tick reports how many steps have run since the last Reset.
func (w *World) Tick() uint64 { return w.tick }

// Temperature returns the temperature at c after wrapping.
func (w *World) Temperature(c core.Coord) float64 { return w.temp.At(c) }

// Temperatures returns a row-major copy of the temperature field.
func (w *World) Temperatures() []float64 {
	return append([]float64(nil), w.temp.Values()...)
}

// Bugs returns a copy of the current bug positions.
func (w *World) Bugs() []core.Coord {
	return append([]core.Coord(nil), w.bugs...)
}

// BugCount reports the size of the bug population.
func (w *World) BugCount() int { return len(w.bugs) }

// LastMoved reports how many bugs changed cell during the most recent step.
func (w *World) LastMoved() int { return w.moved }

// SetTemperature overwrites the temperature at c. It is intended for seeding
// scenarios between ticks.
func (w *World) SetTemperature(c core.Coord, t float64) {
	w.temp.Set(c, t)
	w.rebuildDisplay()
}

// FillTemperature sets every cell to t.
func (w *World) FillTemperature(t float64) {
	w.temp.Fill(t)
	w.rebuildDisplay()
}

// PlaceBugs replaces the bug population with the given positions, wrapped
// into the grid.
func (w *World) PlaceBugs(positions []core.Coord) {
	w.bugs = w.bugs[:0]
	for _, p := range positions {
		w.bugs = append(w.bugs, w.temp.WrapCoord(p))
	}
	w.rebuildDisplay()
}

// Reset seeds cell temperatures uniformly in the configured range and scatters
// the bugs over uniform coordinates. A zero seed selects the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	rng := core.NewRNG(effective)
	p := w.cfg.Params

	temps := w.temp.Values()
	for i := range temps {
		temps[i] = rng.Float64Range(p.InitTempMin, p.InitTempMax)
	}
	w.prev.CopyFrom(w.temp)

	w.bugs = w.bugs[:0]
	for i := 0; i < p.BugCount; i++ {
		w.bugs = append(w.bugs, rng.CoordIn(w.Size()))
	}

	w.tick = 0
	w.moved = 0
	w.rebuildDisplay()
}

// Step advances the world by one tick: a full diffusion pass followed by a
// full relocation pass.
func (w *World) Step() {
	w.Diffuse()
	w.MoveBugs()
	w.tick++
	w.rebuildDisplay()
}

// Comfortable reports whether t lies inside the closed comfort band.
func (w *World) Comfortable(t float64) bool {
	return t >= w.cfg.Params.BugMin && t <= w.cfg.Params.BugMax
}

// ComfortableBugs counts bugs standing on a cell inside the comfort band.
func (w *World) ComfortableBugs() int {
	n := 0
	for _, b := range w.bugs {
		if w.Comfortable(w.temp.At(b)) {
			n++
		}
	}
	return n
}

func (w *World) mustBeInitialized() {
	total := w.w * w.h
	if len(w.temp.Values()) != total || len(w.prev.Values()) != total || len(w.nbr) != total {
		panic("heatbugs: grid not fully populated")
	}
}
