package parallel

// Band is a contiguous half-open range of grid rows [Start, End).
type Band struct {
	Start int
	End   int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.End - b.Start
}

// Empty reports whether the band covers no rows.
func (b Band) Empty() bool {
	return b.End <= b.Start
}

// Contains reports whether row r lies inside the band.
func (b Band) Contains(r int) bool {
	return r >= b.Start && r < b.End
}

// SplitRows divides rows into at most n bands of near-equal height, each at
// least minRows tall. The bands cover [0, rows) in order without gaps.
//
// Returns nil for rows <= 0. n <= 0 is treated as 1.
func SplitRows(rows, n, minRows int) []Band {
	if rows <= 0 {
		return nil
	}
	if n <= 0 {
		n = 1
	}
	if minRows < 1 {
		minRows = 1
	}
	if maxBands := rows / minRows; n > maxBands {
		n = maxBands
	}
	if n < 1 {
		n = 1
	}

	bands := make([]Band, n)
	base, extra := rows/n, rows%n
	start := 0
	for i := range bands {
		h := base
		if i < extra {
			h++
		}
		bands[i] = Band{Start: start, End: start + h}
		start += h
	}
	return bands
}
