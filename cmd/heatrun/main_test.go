package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"heatbugs/internal/sims/heatbugs"
	"heatbugs/internal/telemetry"
)

func TestBuildConfigOverrides(t *testing.T) {
	cfg, err := buildConfig(options{
		variant:   heatbugs.VariantField,
		overrides: []string{"w=12", " bug_heat = 4 "},
	})
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if cfg.Width != 12 || cfg.Params.BugHeat != 4 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Params.BugCount != 0 {
		t.Fatalf("heatfield should have no bugs, got %d", cfg.Params.BugCount)
	}
}

func TestBuildConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("height: 9\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := buildConfig(options{variant: heatbugs.VariantBugs, configPath: path})
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if cfg.Height != 9 {
		t.Fatalf("height = %d, want 9", cfg.Height)
	}
}

func TestBuildConfigFromFileKeepsVariant(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("width: 10\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := buildConfig(options{variant: heatbugs.VariantGrid, configPath: path})
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if cfg.Width != 10 {
		t.Fatalf("width = %d, want 10", cfg.Width)
	}
	if cfg.Params.Decay != 0 || cfg.Params.Diffusion != 0 || cfg.Params.BugCount != 0 {
		t.Fatalf("static grid picked up full-model constants: %+v", cfg.Params)
	}

	world := heatbugs.NewVariantWithConfig(heatbugs.VariantGrid, cfg)
	world.Reset(0)
	if world.Name() != heatbugs.VariantGrid || world.BugCount() != 0 {
		t.Fatalf("world %s has %d bugs, want static grid", world.Name(), world.BugCount())
	}
}

func TestEffectiveSeed(t *testing.T) {
	cfg := heatbugs.DefaultConfig()
	cfg.Seed = 42
	if got := effectiveSeed(options{}, cfg); got != 42 {
		t.Fatalf("seed = %d, want config seed 42", got)
	}
	if got := effectiveSeed(options{seed: 7}, cfg); got != 7 {
		t.Fatalf("seed = %d, want flag seed 7", got)
	}
}

func TestParseOverridesRejectsMalformed(t *testing.T) {
	if _, err := parseOverrides([]string{"nokey"}); err == nil {
		t.Fatal("expected error for missing '='")
	}
	if _, err := parseOverrides([]string{"=3"}); err == nil {
		t.Fatal("expected error for empty key")
	}
}

func TestRunnerRecordsEveryTick(t *testing.T) {
	world := heatbugs.New(10, 10)
	world.Reset(0)
	om, err := telemetry.NewOutputManager(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer om.Close()

	r := &runner{world: world, out: om, ticks: 12}
	summary, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Ticks != 12 || world.Tick() != 12 {
		t.Fatalf("summary ticks=%d world tick=%d, want 12", summary.Ticks, world.Tick())
	}
	if _, err := os.Stat(filepath.Join(om.Dir(), "telemetry.csv")); err != nil {
		t.Fatalf("telemetry.csv missing: %v", err)
	}
}

func TestRunnerStopsOnCancel(t *testing.T) {
	world := heatbugs.New(5, 5)
	world.Reset(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &runner{world: world, ticks: 10}
	if _, err := r.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run err = %v, want context.Canceled", err)
	}
	if world.Tick() != 0 {
		t.Fatalf("cancelled run should not step, tick=%d", world.Tick())
	}
}
