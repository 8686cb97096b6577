// SPDX-License-Identifier: MIT
package csinvert

import (
	"github.com/anyvalid/confseq/confnum"
)

// MartingaleFunc is the pure per-grid-point function the inversion engine
// evaluates: given the observed stream and a candidate mean m, it returns
// the martingale value M_t(m) for t = 1..n. Implementations must be safe
// to call concurrently from multiple goroutines with different m — the
// stream, martingale function, and alpha are read-only inputs to workers.
type MartingaleFunc func(x confnum.Observations, m float64) ([]float64, error)

// InvertConfig carries the knobs of the grid-inversion algorithm.
type InvertConfig struct {
	Alpha               float64
	B                   int
	N                   *int
	RunningIntersection bool
	Parallel            bool
}

// InvertOption configures an InvertConfig via functional arguments.
type InvertOption func(*InvertConfig) error

// DefaultInvertConfig returns the standard defaults: B=1000, no population
// size, no running intersection, serial evaluation. Alpha has no default
// and must be supplied by the caller.
func DefaultInvertConfig(alpha float64) InvertConfig {
	return InvertConfig{
		Alpha: alpha,
		B:     1000,
	}
}

// WithGridResolution sets B, the number of grid cells.
func WithGridResolution(b int) InvertOption {
	return func(c *InvertConfig) error {
		if err := confnum.ValidateGridResolution(b); err != nil {
			return err
		}
		c.B = b
		return nil
	}
}

// WithPopulationSize sets N, enabling the logical-CS intersection.
func WithPopulationSize(n int) InvertOption {
	return func(c *InvertConfig) error {
		if n <= 0 {
			return confnum.ErrPopulationSize
		}
		c.N = &n
		return nil
	}
}

// WithRunningIntersection enables the monotone running intersection.
func WithRunningIntersection(enabled bool) InvertOption {
	return func(c *InvertConfig) error {
		c.RunningIntersection = enabled
		return nil
	}
}

// WithParallel enables the worker-pool grid sweep.
func WithParallel(enabled bool) InvertOption {
	return func(c *InvertConfig) error {
		c.Parallel = enabled
		return nil
	}
}

// NewInvertConfig builds an InvertConfig from DefaultInvertConfig(alpha)
// plus the supplied options.
func NewInvertConfig(alpha float64, opts ...InvertOption) (InvertConfig, error) {
	if err := confnum.ValidateAlpha(alpha); err != nil {
		return InvertConfig{}, err
	}
	cfg := DefaultInvertConfig(alpha)
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return InvertConfig{}, err
		}
	}
	return cfg, nil
}
