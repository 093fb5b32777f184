package heat

import (
	"github.com/gogpu/heat/internal/parallel"
	"github.com/gogpu/heat/kernel"
)

// Calculator turns weighted points into a density grid.
//
// Each point is splatted through the separable Gaussian kernel for the
// requested radius and overlapping contributions are summed. The kernel is
// cached and rebuilt only when the radius changes between calls.
//
// Calculator is safe for concurrent use: the kernel cache is guarded and
// every call writes to its own freshly allocated grid.
type Calculator struct {
	cache       *kernel.Cache
	workers     int
	minBandRows int
	pool        *parallel.WorkerPool
}

// NewCalculator creates a calculator.
// Without options it accumulates on the calling goroutine and owns a private
// kernel cache.
func NewCalculator(opts ...CalculatorOption) *Calculator {
	o := defaultCalculatorOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.cache == nil {
		o.cache = kernel.NewCache()
	}

	c := &Calculator{
		cache:       o.cache,
		workers:     o.workers,
		minBandRows: o.minBandRows,
	}

	if o.workers != 1 {
		c.pool = parallel.NewWorkerPool(o.workers)
		c.workers = c.pool.Workers()
		Logger().Debug("heat: worker pool started", "workers", c.workers)
	}

	return c
}

// Calculate returns the density grid for points as a flat row-major slice of
// size.Rows*size.Cols values (index = row*cols + col).
//
// An empty point list yields an all-zero slice. Points whose kernel window
// lies entirely outside the grid contribute nothing.
func (c *Calculator) Calculate(points []Point, size Size, radius float64) []float32 {
	return c.CalculateGrid(points, size, radius).Data()
}

// CalculateGrid is like Calculate but returns the Grid wrapper.
func (c *Calculator) CalculateGrid(points []Point, size Size, radius float64) *Grid {
	return c.CalculateWith(c.cache.Kernel(radius), points, size)
}

// CalculateWith accumulates points using an explicitly supplied kernel,
// bypassing the cache.
func (c *Calculator) CalculateWith(k *kernel.Kernel, points []Point, size Size) *Grid {
	g := NewGrid(size)
	if len(points) == 0 || g.Len() == 0 {
		return g
	}

	bands := c.bands(g.rows)
	Logger().Debug("heat: accumulate",
		"points", len(points),
		"rows", g.rows,
		"cols", g.cols,
		"radius", k.Radius,
		"blur_size", k.BlurSize,
		"bands", len(bands))

	if len(bands) == 1 {
		splat(g, bands[0], points, k)
		return g
	}

	tasks := make([]func(), len(bands))
	for i, b := range bands {
		tasks[i] = func() { splat(g, b, points, k) }
	}
	c.pool.Run(tasks)

	return g
}

// bands returns the row partition for a grid of the given height.
func (c *Calculator) bands(rows int) []parallel.Band {
	if c.pool == nil || rows < 2*c.minBandRows {
		return []parallel.Band{{Start: 0, End: rows}}
	}
	return parallel.SplitRows(rows, c.workers, c.minBandRows)
}

// Kernel returns the cached kernel for radius, building it if needed.
func (c *Calculator) Kernel(radius float64) *kernel.Kernel {
	return c.cache.Kernel(radius)
}

// Cache returns the kernel cache used by the calculator.
func (c *Calculator) Cache() *kernel.Cache {
	return c.cache
}

// Workers returns the number of goroutines used for accumulation.
func (c *Calculator) Workers() int {
	return c.workers
}

// Close stops the worker pool, if any. The calculator remains usable and
// falls back to running bands on the calling goroutine.
func (c *Calculator) Close() {
	if c.pool != nil {
		c.pool.Close()
	}
}

var defaultCalculator = NewCalculator()

// Calculate accumulates points with a shared package-level calculator.
// See Calculator.Calculate.
func Calculate(points []Point, size Size, radius float64) []float32 {
	return defaultCalculator.Calculate(points, size, radius)
}
