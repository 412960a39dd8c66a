package core

import (
	"testing"
	"time"
)

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		va := a.Float64Range(0, 5)
		vb := b.Float64Range(0, 5)
		if va != vb {
			t.Fatalf("draw %d differs: %f vs %f", i, va, vb)
		}
		if va < 0 || va >= 5 {
			t.Fatalf("draw %d out of range: %f", i, va)
		}
	}
	if got := a.Float64Range(2, 2); got != 2 {
		t.Fatalf("empty range should return lo, got %f", got)
	}
	if got := a.IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d, want 0", got)
	}
	size := Size{W: 4, H: 9}
	for i := 0; i < 100; i++ {
		c := a.CoordIn(size)
		if c.X < 0 || c.X >= size.W || c.Y < 0 || c.Y >= size.H {
			t.Fatalf("coordinate %v outside %v", c, size)
		}
	}
}

func TestFixedStepInterval(t *testing.T) {
	base := time.Unix(0, 0)
	clock := base
	fs := NewFixedInterval(100 * time.Millisecond)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("should not step before the interval elapses")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("should step once the interval elapses")
	}
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("interval = %s", fs.Interval())
	}
	fs.SetInterval(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("non-positive interval should fall back to 60 TPS, got %s", fs.Interval())
	}
}

func TestRegisterIgnoresInvalid(t *testing.T) {
	before := len(Sims())
	Register("", func(map[string]string) Sim { return nil })
	Register("nil-factory", nil)
	if len(Sims()) != before {
		t.Fatal("invalid registrations must be ignored")
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "w", Value: "25"}}},
		{Name: "B", Params: []Parameter{{Key: "decay", Value: "0.01"}}},
	}}
	p, ok := snap.Lookup("decay")
	if !ok || p.Value != "0.01" {
		t.Fatalf("lookup decay = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("missing key should not resolve")
	}
}
