package core

// IntGrid stores a 2D grid of integer cell values in row-major order.
// It plays the raster role in the spread model: host counts, disperser
// counts and mortality totals all live in IntGrids owned by the caller.
type IntGrid struct {
	Rows, Cols int
	data       []int
}

// NewIntGrid allocates a zeroed grid with the given dimensions.
func NewIntGrid(rows, cols int) *IntGrid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &IntGrid{Rows: rows, Cols: cols, data: make([]int, rows*cols)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *IntGrid) Cells() []int { return g.data }

// Index returns the linear slice index for (row, col).
func (g *IntGrid) Index(row, col int) int { return row*g.Cols + col }

// In reports whether (row, col) lies inside the grid.
func (g *IntGrid) In(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// At reads the value at (row, col).
func (g *IntGrid) At(row, col int) int { return g.data[row*g.Cols+col] }

// Set writes the value at (row, col).
func (g *IntGrid) Set(row, col, v int) { g.data[row*g.Cols+col] = v }

// Add adds delta to the value at (row, col).
func (g *IntGrid) Add(row, col, delta int) { g.data[row*g.Cols+col] += delta }

// Fill sets every cell to v.
func (g *IntGrid) Fill(v int) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Zero fills the grid with zeros.
func (g *IntGrid) Zero() { g.Fill(0) }

// AddGrid adds other elementwise. Dimensions must match.
func (g *IntGrid) AddGrid(other *IntGrid) {
	for i, v := range other.data {
		g.data[i] += v
	}
}

// Sum returns the total across all cells.
func (g *IntGrid) Sum() int {
	total := 0
	for _, v := range g.data {
		total += v
	}
	return total
}

// Clone returns a deep copy of the grid.
func (g *IntGrid) Clone() *IntGrid {
	out := NewIntGrid(g.Rows, g.Cols)
	copy(out.data, g.data)
	return out
}

// FloatGrid stores a 2D grid of float64 cell values in row-major order.
// Weather coefficients and temperature fields are FloatGrids.
type FloatGrid struct {
	Rows, Cols int
	data       []float64
}

// NewFloatGrid allocates a zeroed grid with the given dimensions.
func NewFloatGrid(rows, cols int) *FloatGrid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &FloatGrid{Rows: rows, Cols: cols, data: make([]float64, rows*cols)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *FloatGrid) Cells() []float64 { return g.data }

// At reads the value at (row, col).
func (g *FloatGrid) At(row, col int) float64 { return g.data[row*g.Cols+col] }

// Set writes the value at (row, col).
func (g *FloatGrid) Set(row, col int, v float64) { g.data[row*g.Cols+col] = v }

// Fill sets every cell to v.
func (g *FloatGrid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Zero fills the grid with zeros.
func (g *FloatGrid) Zero() { g.Fill(0) }
