package kernel

import "math"

// Kernel is a symmetric 1D Gaussian sampling kernel.
//
// Weights has 2*BlurSize+1 entries; Weights[BlurSize] is the centre sample.
// A Kernel must not be modified after it is built.
type Kernel struct {
	// Radius is the radius the kernel was generated from.
	Radius float64

	// BlurSize is the half-width of the kernel support in cells.
	BlurSize int

	// Weights holds the kernel samples, centre at index BlurSize.
	Weights []float32
}

// BlurSize returns the kernel half-width for radius: round(radius * 2),
// rounding halves up.
func BlurSize(radius float64) int {
	return int(math.Floor(radius*2.0 + 0.5))
}

// Gaussian builds the sampling kernel for radius.
//
// Radius is expected to be positive and finite. Other values are not
// special-cased and produce a degenerate kernel (see [Validate]).
func Gaussian(radius float64) *Kernel {
	blurSize := BlurSize(radius)
	size := blurSize*2 + 1
	if size < 1 {
		// Negative radius; keep the single centre sample so indexing stays valid.
		blurSize, size = 0, 1
	}

	deno := -2.0 * radius * radius
	nume := radius / (2.0 * math.Sqrt(2.0*math.Pi))

	weights := make([]float32, size)
	for i := range weights {
		d0 := float64(i - blurSize)
		weights[i] = float32(math.Exp(d0*d0/deno) * nume)
	}

	return &Kernel{
		Radius:   radius,
		BlurSize: blurSize,
		Weights:  weights,
	}
}

// Len returns the number of samples, 2*BlurSize+1.
func (k *Kernel) Len() int {
	return len(k.Weights)
}

// Center returns the index of the zero-offset sample.
func (k *Kernel) Center() int {
	return k.BlurSize
}

// At returns the sample at signed offset d from the centre, or 0 when d lies
// outside the kernel support.
func (k *Kernel) At(d int) float32 {
	i := d + k.BlurSize
	if i < 0 || i >= len(k.Weights) {
		return 0
	}
	return k.Weights[i]
}

// Sum returns the sum of all samples in float64.
//
// The total mass of an unclipped 2D splat of weight w is w * Sum()^2.
func (k *Kernel) Sum() float64 {
	var sum float64
	for _, v := range k.Weights {
		sum += float64(v)
	}
	return sum
}
