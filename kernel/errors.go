package kernel

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRadius is returned by Validate for radii that are not positive
// and finite.
var ErrInvalidRadius = errors.New("kernel: radius must be positive and finite")

// Validate reports whether radius produces a meaningful kernel.
//
// The accumulator never calls Validate; it is meant for input boundaries
// such as command-line flags or decoded requests.
func Validate(radius float64) error {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRadius, radius)
	}
	return nil
}
