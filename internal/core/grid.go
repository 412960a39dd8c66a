package core

// MooreOffsets lists the 3x3 neighbourhood offsets in scan order: dx is the
// outer loop and dy the inner one. Index 4 is the centre.
var MooreOffsets = [9]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// FloatGrid stores a 2D toroidal field of float64 values in row-major order.
type FloatGrid struct {
	W, H int
	data []float64
}

// NewFloatGrid allocates a grid with the given dimensions.
func NewFloatGrid(w, h int) *FloatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FloatGrid{W: w, H: h, data: make([]float64, w*h)}
}

// Values exposes the backing slice so callers can read/write values directly.
func (g *FloatGrid) Values() []float64 { return g.data }

// Index returns the linear slice index for already wrapped coordinates.
func (g *FloatGrid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *FloatGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// WrapCoord is Wrap for a Coord.
func (g *FloatGrid) WrapCoord(c Coord) Coord {
	x, y := g.Wrap(c.X, c.Y)
	return Coord{X: x, Y: y}
}

// At returns the value stored at c after wrapping.
func (g *FloatGrid) At(c Coord) float64 {
	x, y := g.Wrap(c.X, c.Y)
	return g.data[g.Index(x, y)]
}

// Set stores v at c after wrapping.
func (g *FloatGrid) Set(c Coord, v float64) {
	x, y := g.Wrap(c.X, c.Y)
	g.data[g.Index(x, y)] = v
}

// Neighbors returns the wrapped Moore neighbourhood of c in scan order,
// excluding c itself.
func (g *FloatGrid) Neighbors(c Coord) [8]Coord {
	var out [8]Coord
	n := 0
	for i, off := range MooreOffsets {
		if i == 4 {
			continue
		}
		out[n] = g.WrapCoord(Coord{X: c.X + off.X, Y: c.Y + off.Y})
		n++
	}
	return out
}

// CopyFrom overwrites g with the contents of src. Both grids must share
// dimensions.
func (g *FloatGrid) CopyFrom(src *FloatGrid) {
	if src.W != g.W || src.H != g.H {
		panic("core: FloatGrid.CopyFrom dimension mismatch")
	}
	copy(g.data, src.data)
}

// Fill sets every cell to v.
func (g *FloatGrid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}
