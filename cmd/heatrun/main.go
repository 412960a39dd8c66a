package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/integrii/flaggy"
	"github.com/mattn/go-isatty"

	"heatbugs/internal/sims/heatbugs"
	"heatbugs/internal/telemetry"
	"heatbugs/internal/view"
)

type options struct {
	variant     string
	configPath  string
	seed        int64
	ticks       int
	interval    time.Duration
	outDir      string
	overrides   []string
	interactive bool
	print       bool
	verbose     bool
}

func main() {
	opts := parseOptions()

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(opts); err != nil {
		slog.Error("heatrun failed", "error", err)
		os.Exit(1)
	}
}

func parseOptions() options {
	opts := options{
		variant:  heatbugs.VariantBugs,
		ticks:    500,
		interval: 0,
	}
	flaggy.SetName("heatrun")
	flaggy.SetDescription("Headless heat bug simulation runner")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&opts.variant, "e", "variant", "Variant to run ["+strings.Join(heatbugs.Variants, "|")+"]")
	flaggy.String(&opts.configPath, "c", "config", "YAML config file (overrides the variant defaults)")
	flaggy.Int64(&opts.seed, "s", "seed", "Seed for initialization (0 uses the config seed)")
	flaggy.Int(&opts.ticks, "t", "ticks", "Number of ticks to run (ignored in interactive mode)")
	flaggy.Duration(&opts.interval, "i", "interval", "Delay between ticks, for example 100ms (0 runs flat out)")
	flaggy.String(&opts.outDir, "o", "out", "Directory for telemetry output (empty disables)")
	flaggy.StringSlice(&opts.overrides, "", "set", "Parameter override in key=value form (repeatable)")
	flaggy.Bool(&opts.interactive, "n", "interactive", "Start the interactive terminal viewer")
	flaggy.Bool(&opts.print, "p", "print", "Print the final field as a heatmap")
	flaggy.Bool(&opts.verbose, "v", "verbose", "Log every tick")
	flaggy.Parse()

	known := false
	for _, v := range heatbugs.Variants {
		known = known || v == opts.variant
	}
	if !known {
		flaggy.ShowHelpAndExit("unknown variant " + opts.variant)
	}
	return opts
}

func run(opts options) error {
	cfg, err := buildConfig(opts)
	if err != nil {
		return err
	}

	om, err := telemetry.NewOutputManager(opts.outDir)
	if err != nil {
		return err
	}
	defer om.Close()
	if err := om.WriteConfig(cfg); err != nil {
		return err
	}

	world := heatbugs.NewVariantWithConfig(opts.variant, cfg)
	seed := effectiveSeed(opts, cfg)
	world.Reset(seed)
	slog.Info("world ready",
		"variant", world.Name(),
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"bugs", cfg.Params.BugCount,
		"seed", seed,
		"run", om.RunID(),
	)

	if opts.interactive {
		var writeErr error
		term := view.NewTerminal(world, seed, opts.interval, func() {
			if err := om.WriteTick(telemetry.Collect(world)); err != nil && writeErr == nil {
				writeErr = err
			}
		})
		if err := term.Run(); err != nil {
			return err
		}
		return writeErr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := &runner{world: world, out: om, ticks: opts.ticks, interval: opts.interval}
	summary, err := r.Run(ctx)
	if err != nil {
		return err
	}
	r.logSummary(summary)

	if opts.print {
		colors := isatty.IsTerminal(os.Stdout.Fd())
		fmt.Print(view.NewHeatmap(colors).Render(world))
	}
	return nil
}

func buildConfig(opts options) (heatbugs.Config, error) {
	cfg := heatbugs.VariantConfig(opts.variant)
	if opts.configPath != "" {
		loaded, err := heatbugs.LoadConfigOver(cfg, opts.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	kv, err := parseOverrides(opts.overrides)
	if err != nil {
		return cfg, err
	}
	cfg = heatbugs.ApplyOverrides(cfg, kv)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// effectiveSeed is the seed Reset will actually use.
func effectiveSeed(opts options, cfg heatbugs.Config) int64 {
	if opts.seed != 0 {
		return opts.seed
	}
	return cfg.Seed
}

func parseOverrides(pairs []string) (map[string]string, error) {
	kv := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("override %q: expected key=value", pair)
		}
		kv[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return kv, nil
}
