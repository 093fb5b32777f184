// Package heat accumulates weighted grid points into a kernel density grid.
//
// # Overview
//
// Each point is splatted through a separable Gaussian kernel and the
// contributions of overlapping points are summed into a dense, row-major
// float32 grid. The result is typically used as per-vertex height or colour
// intensity by a renderer; heat itself does no drawing or projection.
//
// # Quick Start
//
//	import "github.com/gogpu/heat"
//
//	calc := heat.NewCalculator()
//
//	points := []heat.Point{
//		heat.Pt(10, 12, 1.0),
//		heat.Pt(11, 14, 0.5),
//	}
//
//	// 64x64 grid, blur radius of 2 cells
//	values := calc.Calculate(points, heat.Sz(64, 64), 2)
//	v := values[10*64+12]
//
// # Kernel
//
// The 1D kernel for radius r has half-width b = round(2r) and samples
// exp(-d²/(2r²)) * r/(2√(2π)) for d in [-b, b]. The weight a point adds to
// the cell at offset (dr, dc) is w * k(dr) * k(dc). See package kernel.
//
// The calculator keeps the last kernel it built and reuses it while the
// radius is unchanged (exact float equality).
//
// # Bounds
//
// Points may lie outside the grid. Their kernel window is clipped to the
// grid, so only overlapping cells receive contributions. Cells outside every
// window stay exactly 0.
//
// # Parallelism
//
// [WithWorkers] splits the grid into row bands accumulated on separate
// goroutines. Every cell still receives its contributions in input order,
// so parallel and serial results are bit-identical.
package heat
