package heat

// Point is a weighted sample on the grid.
//
// Row and Col may lie outside the grid; the part of the kernel window that
// overlaps the grid still contributes.
type Point struct {
	Row    int     `json:"r"`
	Col    int     `json:"c"`
	Weight float64 `json:"w"`
}

// Pt is shorthand for Point{Row: r, Col: c, Weight: w}.
func Pt(r, c int, w float64) Point {
	return Point{Row: r, Col: c, Weight: w}
}

// Size is the extent of a density grid in cells.
type Size struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Sz is shorthand for Size{Rows: rows, Cols: cols}.
func Sz(rows, cols int) Size {
	return Size{Rows: rows, Cols: cols}
}

// clamped returns the size with negative extents replaced by zero.
func (s Size) clamped() Size {
	return Size{Rows: max(s.Rows, 0), Cols: max(s.Cols, 0)}
}

// Len returns the number of cells, Rows*Cols. Negative extents count as 0.
func (s Size) Len() int {
	c := s.clamped()
	return c.Rows * c.Cols
}

// Empty reports whether the grid has no cells.
func (s Size) Empty() bool {
	return s.Len() == 0
}
