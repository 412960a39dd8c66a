package core

import "testing"

func TestWrapStaysInDomain(t *testing.T) {
	g := NewFloatGrid(5, 3)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			for _, off := range MooreOffsets {
				nx, ny := g.Wrap(x+off.X, y+off.Y)
				if nx < 0 || nx >= g.W || ny < 0 || ny >= g.H {
					t.Fatalf("wrap(%d,%d) = (%d,%d) escapes %dx%d", x+off.X, y+off.Y, nx, ny, g.W, g.H)
				}
			}
		}
	}

	if x, y := g.Wrap(-7, 11); x != 3 || y != 2 {
		t.Fatalf("wrap(-7,11) = (%d,%d), want (3,2)", x, y)
	}
}

func TestNeighborsScanOrderAndWrap(t *testing.T) {
	g := NewFloatGrid(4, 4)
	got := g.Neighbors(Coord{X: 0, Y: 0})
	want := [8]Coord{
		{3, 3}, {3, 0}, {3, 1},
		{0, 3}, {0, 1},
		{1, 3}, {1, 0}, {1, 1},
	}
	if got != want {
		t.Fatalf("neighbors(0,0) = %v, want %v", got, want)
	}

	for _, n := range g.Neighbors(Coord{X: 2, Y: 1}) {
		if n == (Coord{X: 2, Y: 1}) {
			t.Fatal("neighbors must exclude the centre")
		}
	}
}

func TestAtSetWrap(t *testing.T) {
	g := NewFloatGrid(3, 3)
	g.Set(Coord{X: -1, Y: 4}, 7.5)
	if got := g.At(Coord{X: 2, Y: 1}); got != 7.5 {
		t.Fatalf("expected wrapped write at (2,1), got %f", got)
	}
	if got := g.Values()[g.Index(2, 1)]; got != 7.5 {
		t.Fatalf("backing slice not updated, got %f", got)
	}
}

func TestCopyFromAndFill(t *testing.T) {
	a := NewFloatGrid(2, 2)
	b := NewFloatGrid(2, 2)
	a.Fill(3)
	b.CopyFrom(a)
	for i, v := range b.Values() {
		if v != 3 {
			t.Fatalf("cell %d = %f after copy, want 3", i, v)
		}
	}
	a.Fill(1)
	if b.Values()[0] != 3 {
		t.Fatal("copy must not alias the source buffer")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on dimension mismatch")
		}
	}()
	b.CopyFrom(NewFloatGrid(3, 2))
}

func TestNewFloatGridClampsDimensions(t *testing.T) {
	g := NewFloatGrid(0, -4)
	if g.W != 1 || g.H != 1 || len(g.Values()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d (%d cells)", g.W, g.H, len(g.Values()))
	}
}
