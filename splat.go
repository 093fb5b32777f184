package heat

import (
	"github.com/gogpu/heat/internal/parallel"
	"github.com/gogpu/heat/kernel"
)

// splat accumulates every point into the rows of g covered by band.
//
// The kernel window of a point at (pr, pc) spans rows pr-b..pr+b and columns
// pc-b..pc+b (b = blur size). The window is clipped to the band and to the
// grid columns; weights are looked up relative to the unclipped window start
// so that cells at the grid edge receive the same sample they would get from
// an unclipped splat.
func splat(g *Grid, band parallel.Band, points []Point, k *kernel.Kernel) {
	if band.Empty() || g.cols == 0 {
		return
	}

	b := k.BlurSize
	w := k.Weights
	maxCol := g.cols - 1
	maxRow := band.End - 1

	for _, p := range points {
		sr := p.Row - b
		sc := p.Col - b

		rmin := max(band.Start, sr)
		rmax := min(maxRow, p.Row+b)
		cmin := max(0, sc)
		cmax := min(maxCol, p.Col+b)

		for r := rmin; r <= rmax; r++ {
			ky := p.Weight * float64(w[r-sr])
			for c := cmin; c <= cmax; c++ {
				g.add(r, c, ky*float64(w[c-sc]))
			}
		}
	}
}
