// Package telemetry computes per-tick statistics for a heat bug world and
// writes them to a run directory.
package telemetry

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// TickStats summarizes the temperature field and the bug population after a tick.
type TickStats struct {
	Tick            uint64  `csv:"tick"`
	MeanTemp        float64 `csv:"mean_temp"`
	StdDevTemp      float64 `csv:"stddev_temp"`
	MinTemp         float64 `csv:"min_temp"`
	MaxTemp         float64 `csv:"max_temp"`
	TotalHeat       float64 `csv:"total_heat"`
	Bugs            int     `csv:"bugs"`
	ComfortableBugs int     `csv:"comfortable_bugs"`
	MovedBugs       int     `csv:"moved_bugs"`
}

// Source is the read-only view of a world that Collect needs.
type Source interface {
	Tick() uint64
	Temperatures() []float64
	BugCount() int
	ComfortableBugs() int
	LastMoved() int
}

// Collect builds a TickStats record from the current state of src.
func Collect(src Source) TickStats {
	temps := src.Temperatures()
	s := TickStats{
		Tick:            src.Tick(),
		Bugs:            src.BugCount(),
		ComfortableBugs: src.ComfortableBugs(),
		MovedBugs:       src.LastMoved(),
	}
	if len(temps) == 0 {
		return s
	}
	s.MeanTemp, s.StdDevTemp = stat.PopMeanStdDev(temps, nil)
	s.MinTemp = floats.Min(temps)
	s.MaxTemp = floats.Max(temps)
	s.TotalHeat = floats.Sum(temps)
	return s
}

// ComfortFraction reports the share of bugs inside the comfort band.
func (s TickStats) ComfortFraction() float64 {
	if s.Bugs == 0 {
		return 0
	}
	return float64(s.ComfortableBugs) / float64(s.Bugs)
}

// Summary aggregates a series of tick records.
type Summary struct {
	Ticks               int
	MeanComfortFraction float64
	FinalMeanTemp       float64
	PeakMaxTemp         float64
	TotalMoves          int
}

// Summarize folds records into a Summary. An empty series yields the zero value.
func Summarize(records []TickStats) Summary {
	if len(records) == 0 {
		return Summary{}
	}
	fractions := make([]float64, len(records))
	peaks := make([]float64, len(records))
	moves := 0
	for i, r := range records {
		fractions[i] = r.ComfortFraction()
		peaks[i] = r.MaxTemp
		moves += r.MovedBugs
	}
	return Summary{
		Ticks:               len(records),
		MeanComfortFraction: stat.Mean(fractions, nil),
		FinalMeanTemp:       records[len(records)-1].MeanTemp,
		PeakMaxTemp:         floats.Max(peaks),
		TotalMoves:          moves,
	}
}
