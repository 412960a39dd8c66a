package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"heatbugs/internal/sims/heatbugs"
	"heatbugs/internal/telemetry"
)

type paramSet struct {
	bugHeat   float64
	bugMin    float64
	bandWidth float64
	bugCount  int
}

func (p paramSet) String() string {
	return fmt.Sprintf("heat=%.2f band=[%.1f,%.1f] bugs=%d", p.bugHeat, p.bugMin, p.bugMin+p.bandWidth, p.bugCount)
}

type scenarioResult struct {
	params  paramSet
	summary telemetry.Summary
	final   telemetry.TickStats
}

func main() {
	steps := flag.Int("steps", 400, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of concurrent scenarios")
	seed := flag.Int64("seed", 1337, "seed used for every scenario")
	top := flag.Int("top", 5, "number of results to print")
	flag.Parse()

	base := heatbugs.DefaultConfig()
	base.Seed = *seed

	sets := buildSets(
		[]float64{1.5, 2.5, 3.5},
		[]float64{5, 10, 15},
		[]float64{3, 5, 8},
		[]int{10, 30, 60},
	)

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d steps)\n", len(sets), *workers, *steps)

	start := time.Now()
	all, err := sweep(context.Background(), base, sets, *steps, *workers)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sweep failed:", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d results (%s ticks in %s):\n", *top, humanize.Comma(int64(len(sets)*(*steps))), elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		fmt.Printf("%2d) comfort=%.3f final=%d/%d meanTemp=%.2f peak=%.2f moves=%s params=%s\n",
			i+1, res.summary.MeanComfortFraction, res.final.ComfortableBugs, res.final.Bugs,
			res.final.MeanTemp, res.summary.PeakMaxTemp, humanize.Comma(int64(res.summary.TotalMoves)), res.params)
	}
}

func buildSets(heats, mins, widths []float64, counts []int) []paramSet {
	var sets []paramSet
	for _, heat := range heats {
		for _, min := range mins {
			for _, width := range widths {
				for _, count := range counts {
					sets = append(sets, paramSet{bugHeat: heat, bugMin: min, bandWidth: width, bugCount: count})
				}
			}
		}
	}
	return sets
}

// sweep runs every parameter set on its own world and returns the results
// ordered by mean comfort fraction, best first. Ties keep input order.
func sweep(ctx context.Context, base heatbugs.Config, sets []paramSet, steps, workers int) ([]scenarioResult, error) {
	if workers <= 0 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	results := make([]scenarioResult, len(sets))
	for i, params := range sets {
		i, params := i, params
		g.Go(func() error {
			res, err := runScenario(ctx, base, params, steps)
			if err != nil {
				return fmt.Errorf("scenario %s: %w", params, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].summary.MeanComfortFraction > results[j].summary.MeanComfortFraction
	})
	return results, nil
}

func runScenario(ctx context.Context, base heatbugs.Config, params paramSet, steps int) (scenarioResult, error) {
	cfg := base
	cfg.Workers = 1
	cfg.Params.BugHeat = params.bugHeat
	cfg.Params.BugMin = params.bugMin
	cfg.Params.BugMax = params.bugMin + params.bandWidth
	cfg.Params.BugCount = params.bugCount
	if err := cfg.Validate(); err != nil {
		return scenarioResult{}, err
	}

	world := heatbugs.NewWithConfig(cfg)
	world.Reset(0)

	records := make([]telemetry.TickStats, 0, steps)
	for step := 0; step < steps; step++ {
		if err := ctx.Err(); err != nil {
			return scenarioResult{}, err
		}
		world.Step()
		records = append(records, telemetry.Collect(world))
	}

	res := scenarioResult{params: params, summary: telemetry.Summarize(records)}
	if len(records) > 0 {
		res.final = records[len(records)-1]
	}
	return res, nil
}
