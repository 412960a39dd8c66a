//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"heatbugs/internal/app"
	"heatbugs/internal/core"
	"heatbugs/internal/sims/heatbugs"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	var sim core.Sim
	if cfg.Config != "" {
		c, err := heatbugs.LoadConfigOver(heatbugs.VariantConfig(cfg.Sim), cfg.Config)
		if err != nil {
			log.Fatal(err)
		}
		sim = heatbugs.NewVariantWithConfig(cfg.Sim, c)
	} else {
		sim = factory(nil)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed)
	w, h := app.WindowSize(sim.Size(), cfg.Scale)

	ebiten.SetWindowTitle("heatbugs — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
