package app

import (
	"flag"
	"testing"

	"heatbugs/internal/core"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-sim", "heatfield", "-tps", "4", "-seed", "9"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Sim != "heatfield" || cfg.TPS != 4 || cfg.Seed != 9 || cfg.Scale != 15 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestWindowSize(t *testing.T) {
	w, h := WindowSize(core.Size{W: 25, H: 25}, 15)
	if w != 25*15+hudWidth || h != 375 {
		t.Fatalf("window = %dx%d", w, h)
	}
	_, h = WindowSize(core.Size{W: 4, H: 4}, 0)
	if h != hudMinHeight {
		t.Fatalf("small grids should keep the HUD readable, got height %d", h)
	}
}
