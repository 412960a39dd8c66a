//go:build !ebiten

package app

import (
	"errors"

	"heatbugs/internal/core"
)

var errNoWindow = errors.New("heatbugs: window support is not compiled in, rebuild with -tags ebiten")

// Game stands in for the windowed viewer in headless builds.
type Game struct{}

// New panics; the windowed viewer only exists in ebiten builds.
func New(core.Sim, int, int64) *Game {
	panic(errNoWindow)
}

func (g *Game) Reset(int64) {}

// Update reports that no window backend is available.
func (g *Game) Update() error { return errNoWindow }

func (g *Game) Draw(any) {}

func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
