package ui

import (
	"image/color"
	"strings"
	"testing"

	"heatbugs/internal/core"
	"heatbugs/internal/sims/heatbugs"
)

func TestPanelLines(t *testing.T) {
	world := heatbugs.New(10, 10)
	world.Reset(0)
	world.Step()

	lines := PanelLines(world)
	if lines[0] != "Heatbugs" {
		t.Fatalf("title = %q", lines[0])
	}
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"Tick        1", "Comfortable", "Thermal", "Bug heat", "2.5"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("panel missing %q:\n%s", want, joined)
		}
	}
}

type bareSim struct{}

func (bareSim) Name() string    { return "" }
func (bareSim) Size() core.Size { return core.Size{W: 1, H: 1} }
func (bareSim) Reset(int64)     {}
func (bareSim) Step()           {}
func (bareSim) Cells() []uint8  { return []uint8{0} }

func TestPanelLinesWithoutProviders(t *testing.T) {
	lines := PanelLines(bareSim{})
	if lines[0] != "Parameters" || lines[len(lines)-1] != "No parameters" {
		t.Fatalf("unexpected lines %q", lines)
	}
}

func TestComfortMask(t *testing.T) {
	buf := make([]byte, 8)
	inBand := func(t float64) bool { return t >= 10 && t <= 15 }
	ComfortMask(buf, []float64{12, 3}, inBand, color.RGBA{R: 255, G: 0, B: 255, A: 255})
	want := []byte{255, 0, 255, 255, 0, 0, 0, 0}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf = %v, want %v", buf, want)
		}
	}
}
