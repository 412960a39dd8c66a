package view

import (
	"strings"
	"testing"
	"time"

	"heatbugs/internal/core"
	"heatbugs/internal/sims/heatbugs"
)

func TestHeatmapPlain(t *testing.T) {
	world := heatbugs.New(3, 2)
	world.Reset(0)
	world.FillTemperature(0)
	world.SetTemperature(core.Coord{X: 2, Y: 0}, 1e9)
	world.PlaceBugs([]core.Coord{{X: 1, Y: 1}})

	got := NewHeatmap(false).Render(world)
	want := "    @@\n  <>  \n"
	if got != want {
		t.Fatalf("plain render = %q, want %q", got, want)
	}
}

func TestHeatmapColorsEmitEscapes(t *testing.T) {
	world := heatbugs.New(2, 2)
	world.Reset(0)
	out := NewHeatmap(true).Render(world)
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("expected ANSI escapes in colored render, got %q", out)
	}
	if strings.Count(out, "\n") != 2 {
		t.Fatalf("expected one line per row, got %q", out)
	}
}

func TestTerminalActions(t *testing.T) {
	world := heatbugs.New(5, 5)
	world.Reset(3)
	steps := 0
	term := NewTerminal(world, 3, 0, func() { steps++ })
	if term.interval != 100*time.Millisecond {
		t.Fatalf("default interval = %s", term.interval)
	}

	term.step()
	term.step()
	if world.Tick() != 2 || steps != 2 {
		t.Fatalf("tick=%d callbacks=%d, want 2/2", world.Tick(), steps)
	}

	term.toggle()
	if !term.running || !strings.Contains(term.status(), "tick 2") {
		t.Fatalf("status after toggle = %q", term.status())
	}

	term.reset()
	if term.running || world.Tick() != 0 {
		t.Fatal("reset should pause and rewind the world")
	}
}
