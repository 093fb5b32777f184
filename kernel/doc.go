// Package kernel provides the 1D Gaussian sampling kernel used by the heat
// accumulator, together with a single-entry cache keyed on the radius.
//
// A kernel built for radius r has a half-width (blur size) of round(2r)
// cells and 2*blurSize+1 samples:
//
//	k[i] = exp(d*d / (-2*r*r)) * r / (2*sqrt(2*pi)),  d = i - blurSize
//
// The 2D splat weight at offset (dr, dc) is k[dr+b] * k[dc+b], so only the
// 1D kernel is ever stored.
//
// # Caching
//
// [Cache] remembers the last kernel it built and returns it unchanged while
// the requested radius compares equal (==) to the radius that produced it.
// There is no tolerance: 2.0 and 2.0000001 are different kernels.
//
// Kernels are immutable after construction and may be shared freely between
// goroutines.
package kernel
