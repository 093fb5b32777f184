package heat

// Grid is a dense row-major buffer of accumulated intensity.
//
// Cell (r, c) is stored at index r*Cols + c. A Grid returned by a
// Calculator belongs to the caller; the calculator keeps no reference.
type Grid struct {
	rows int
	cols int
	data []float32
}

// NewGrid creates a zeroed grid. Negative extents produce an empty grid.
func NewGrid(size Size) *Grid {
	s := size.clamped()
	return &Grid{
		rows: s.Rows,
		cols: s.Cols,
		data: make([]float32, s.Rows*s.Cols),
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Size returns the grid extent.
func (g *Grid) Size() Size {
	return Size{Rows: g.rows, Cols: g.cols}
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.data)
}

// Data returns the flat row-major cell values.
func (g *Grid) Data() []float32 {
	return g.data
}

// Index returns the flat index of cell (r, c). It does not check bounds.
func (g *Grid) Index(r, c int) int {
	return r*g.cols + c
}

// In reports whether (r, c) lies inside the grid.
func (g *Grid) In(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// At returns the value of cell (r, c), or 0 outside the grid.
func (g *Grid) At(r, c int) float32 {
	if !g.In(r, c) {
		return 0
	}
	return g.data[g.Index(r, c)]
}

// add accumulates v into cell (r, c). The sum is formed in float64 and
// stored back as float32.
func (g *Grid) add(r, c int, v float64) {
	i := r*g.cols + c
	g.data[i] = float32(float64(g.data[i]) + v)
}

// Sum returns the total of all cells in float64.
func (g *Grid) Sum() float64 {
	var sum float64
	for _, v := range g.data {
		sum += float64(v)
	}
	return sum
}

// Max returns the largest cell value, or 0 for an empty grid.
func (g *Grid) Max() float32 {
	if len(g.data) == 0 {
		return 0
	}
	m := g.data[0]
	for _, v := range g.data[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
