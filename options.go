package heat

import "github.com/gogpu/heat/kernel"

// defaultMinBandRows is the smallest band height handed to a worker.
// Below this the per-band point scan costs more than the split saves.
const defaultMinBandRows = 16

// CalculatorOption configures a Calculator during creation.
//
// Example:
//
//	// Serial calculator with its own kernel cache
//	calc := heat.NewCalculator()
//
//	// Four workers sharing a cache with another calculator
//	calc := heat.NewCalculator(heat.WithWorkers(4), heat.WithKernelCache(shared))
type CalculatorOption func(*calculatorOptions)

type calculatorOptions struct {
	cache       *kernel.Cache
	workers     int
	minBandRows int
}

func defaultCalculatorOptions() calculatorOptions {
	return calculatorOptions{
		cache:       nil, // Created in NewCalculator if nil
		workers:     1,
		minBandRows: defaultMinBandRows,
	}
}

// WithKernelCache makes the calculator use c instead of a private cache.
// Several calculators can share one cache; it is safe for concurrent use.
func WithKernelCache(c *kernel.Cache) CalculatorOption {
	return func(o *calculatorOptions) {
		o.cache = c
	}
}

// WithWorkers splits accumulation across n goroutines.
// n <= 0 uses GOMAXPROCS. n == 1 (the default) keeps accumulation on the
// calling goroutine.
//
// The output is bit-identical to serial accumulation for any n.
func WithWorkers(n int) CalculatorOption {
	return func(o *calculatorOptions) {
		o.workers = n
	}
}

// WithMinBandRows sets the minimum number of rows per parallel band.
// Grids shorter than two bands are accumulated serially.
func WithMinBandRows(rows int) CalculatorOption {
	return func(o *calculatorOptions) {
		if rows > 0 {
			o.minBandRows = rows
		}
	}
}
