package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"heatbugs/internal/core"
	"heatbugs/internal/sims/heatbugs"
	"heatbugs/internal/telemetry"
)

const progressEvery = 100

// runner drives a world for a fixed number of ticks, recording telemetry
// after each one.
type runner struct {
	world    *heatbugs.World
	out      *telemetry.OutputManager
	ticks    int
	interval time.Duration

	started time.Time
}

// Run steps the world until the tick budget is spent or ctx is cancelled.
func (r *runner) Run(ctx context.Context) (telemetry.Summary, error) {
	r.started = time.Now()
	records := make([]telemetry.TickStats, 0, r.ticks)

	var cadence *core.FixedStep
	if r.interval > 0 {
		cadence = core.NewFixedInterval(r.interval)
		slog.Debug("paced run", "interval", cadence.Interval())
	}

	for len(records) < r.ticks {
		if err := ctx.Err(); err != nil {
			slog.Warn("run interrupted", "ticks", humanize.Comma(int64(len(records))))
			return telemetry.Summarize(records), err
		}
		if cadence != nil && !cadence.ShouldStep() {
			time.Sleep(time.Millisecond)
			continue
		}

		r.world.Step()
		stats := telemetry.Collect(r.world)
		records = append(records, stats)
		if err := r.out.WriteTick(stats); err != nil {
			return telemetry.Summarize(records), err
		}

		slog.Debug("tick",
			"tick", stats.Tick,
			"mean_temp", stats.MeanTemp,
			"comfortable", stats.ComfortableBugs,
			"moved", stats.MovedBugs,
		)
		if stats.Tick%progressEvery == 0 {
			slog.Info("progress",
				"tick", humanize.Comma(int64(stats.Tick)),
				"comfortable", stats.ComfortableBugs,
				"bugs", stats.Bugs,
				"mean_temp", stats.MeanTemp,
			)
		}
	}
	return telemetry.Summarize(records), nil
}

func (r *runner) logSummary(s telemetry.Summary) {
	slog.Info("finished",
		"ticks", humanize.Comma(int64(s.Ticks)),
		"elapsed", time.Since(r.started).Round(time.Millisecond),
		"mean_comfort", s.MeanComfortFraction,
		"final_mean_temp", s.FinalMeanTemp,
		"peak_temp", s.PeakMaxTemp,
		"moves", humanize.Comma(int64(s.TotalMoves)),
		"output", r.out.Dir(),
	)
}
