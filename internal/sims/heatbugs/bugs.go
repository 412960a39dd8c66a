package heatbugs

import (
	"math"

	"heatbugs/internal/core"
)

// MoveBugs relocates every uncomfortable bug to the best cell of its 3x3
// neighbourhood and returns how many bugs changed position. Bugs inside the
// comfort band stay put.
func (w *World) MoveBugs() int {
	w.mustBeInitialized()
	moved := 0
	for i, pos := range w.bugs {
		next := w.relocate(pos)
		if next != pos {
			w.bugs[i] = next
			moved++
		}
	}
	w.moved = moved
	return moved
}

// relocate scans the centre and its eight neighbours in scan order, keeping
// the best candidate seen so far. Ties keep the earlier candidate.
func (w *World) relocate(pos core.Coord) core.Coord {
	best := pos
	bestT := w.temp.At(pos)
	if w.Comfortable(bestT) {
		return pos
	}
	for _, off := range core.MooreOffsets {
		c := w.temp.WrapCoord(core.Coord{X: pos.X + off.X, Y: pos.Y + off.Y})
		t := w.temp.At(c)
		if w.prefer(t, bestT) {
			best, bestT = c, t
		}
	}
	return best
}

// prefer reports whether a candidate at temperature cand replaces the current
// best at temperature best. In-band beats out-of-band. Among in-band values the
// one farther from its nearest band edge wins; among out-of-band values the one
// nearer to an edge wins.
func (w *World) prefer(cand, best float64) bool {
	candIn := w.Comfortable(cand)
	bestIn := w.Comfortable(best)
	switch {
	case candIn && bestIn:
		return w.edgeDistance(cand) > w.edgeDistance(best)
	case candIn:
		return true
	case bestIn:
		return false
	default:
		return w.edgeDistance(cand) < w.edgeDistance(best)
	}
}

// edgeDistance is the distance from t to whichever comfort band edge is nearer.
func (w *World) edgeDistance(t float64) float64 {
	p := w.cfg.Params
	return math.Min(math.Abs(t-p.BugMin), math.Abs(t-p.BugMax))
}
