package view

import (
	"errors"
	"fmt"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"heatbugs/internal/core"
)

const (
	fieldView  = "field"
	statusView = "status"
)

type bugStats interface {
	Tick() uint64
	BugCount() int
	ComfortableBugs() int
}

// Terminal is an interactive gocui viewer. The sim is only touched from the
// gocui main loop.
type Terminal struct {
	sim      core.Sim
	heatmap  *Heatmap
	interval time.Duration
	seed     int64

	running bool
	onStep  func()
}

// NewTerminal builds a viewer that advances sim every interval while running.
// onStep, if non-nil, runs after every tick.
func NewTerminal(sim core.Sim, seed int64, interval time.Duration, onStep func()) *Terminal {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &Terminal{
		sim:      sim,
		heatmap:  NewHeatmap(true),
		interval: interval,
		seed:     seed,
		onStep:   onStep,
	}
}

// Run blocks until the user quits.
func (t *Terminal) Run() error {
	g, err := gocui.NewGui(gocui.Output256)
	if err != nil {
		return fmt.Errorf("starting terminal ui: %w", err)
	}
	defer g.Close()

	g.SetManagerFunc(t.layout)
	if err := t.bindKeys(g); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				g.Update(func(*gocui.Gui) error {
					if t.running {
						t.step()
					}
					return nil
				})
			}
		}
	}()

	if err := g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

func (t *Terminal) bindKeys(g *gocui.Gui) error {
	bindings := []struct {
		key     interface{}
		handler func()
	}{
		{'n', t.step},
		{gocui.KeySpace, t.toggle},
		{'r', t.reset},
	}
	for _, kb := range bindings {
		handler := kb.handler
		if err := g.SetKeybinding("", kb.key, gocui.ModNone, func(*gocui.Gui, *gocui.View) error {
			handler()
			return nil
		}); err != nil {
			return fmt.Errorf("binding key: %w", err)
		}
	}
	quit := func(*gocui.Gui, *gocui.View) error { return gocui.ErrQuit }
	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		return fmt.Errorf("binding quit: %w", err)
	}
	if err := g.SetKeybinding("", 'q', gocui.ModNone, quit); err != nil {
		return fmt.Errorf("binding quit: %w", err)
	}
	return nil
}

func (t *Terminal) layout(g *gocui.Gui) error {
	size := t.sim.Size()
	v, err := g.SetView(fieldView, 0, 0, size.W*2+1, size.H+1)
	if err != nil && !errors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	v.Title = t.sim.Name()
	v.Clear()
	fmt.Fprint(v, t.heatmap.Render(t.sim))

	s, err := g.SetView(statusView, 0, size.H+2, size.W*2+1, size.H+4)
	if err != nil && !errors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	s.Clear()
	fmt.Fprint(s, t.status())
	return nil
}

func (t *Terminal) status() string {
	state := aurora.Cyan("running").String()
	if !t.running {
		state = aurora.Blue("paused").String()
	}
	line := state
	if st, ok := t.sim.(bugStats); ok {
		line = fmt.Sprintf("%s  tick %d  comfortable %d/%d", state, st.Tick(), st.ComfortableBugs(), st.BugCount())
	}
	return line + "  [space] run/pause [n] step [r] reset [q] quit"
}

func (t *Terminal) step() {
	t.sim.Step()
	if t.onStep != nil {
		t.onStep()
	}
}

func (t *Terminal) toggle() { t.running = !t.running }

func (t *Terminal) reset() {
	t.running = false
	t.sim.Reset(t.seed)
}
