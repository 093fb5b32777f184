package kernel

import (
	"sync"
	"sync/atomic"
)

// Cache memoizes the most recently built kernel.
//
// A lookup with a radius that compares equal to the cached kernel's radius
// returns the cached kernel; any other radius rebuilds and replaces it.
// Only one kernel is held at a time, so alternating between two radii
// rebuilds on every switch.
//
// Cache is safe for concurrent use. The zero value is ready to use.
type Cache struct {
	mu     sync.Mutex
	kernel *Kernel

	// recomputes counts Gaussian rebuilds.
	recomputes atomic.Uint64
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Kernel returns the kernel for radius, building it if the cached kernel was
// produced from a different radius.
//
// NaN never compares equal to itself, so a NaN radius rebuilds on every call.
func (c *Cache) Kernel(radius float64) *Kernel {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.kernel != nil && c.kernel.Radius == radius {
		return c.kernel
	}

	k := Gaussian(radius)
	c.kernel = k
	n := c.recomputes.Add(1)

	Logger().Debug("kernel: rebuilt",
		"radius", radius,
		"blur_size", k.BlurSize,
		"size", k.Len(),
		"recomputes", n)

	return k
}

// Current returns the cached kernel without building one.
// Returns nil if nothing has been cached yet.
func (c *Cache) Current() *Kernel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.kernel
}

// Recomputes returns how many times the cache has built a kernel.
func (c *Cache) Recomputes() uint64 {
	return c.recomputes.Load()
}

// Reset drops the cached kernel. The recompute counter is kept.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.kernel = nil
	c.mu.Unlock()
}
