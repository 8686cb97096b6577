// SPDX-License-Identifier: MIT
package confnum

import "fmt"

// Observations is an immutable view over a finite ordered stream
// x_1, …, x_n with every x_t in [0, 1]. Once constructed via
// NewObservations, the backing slice is never mutated by this module.
type Observations struct {
	x []float64
}

// NewObservations validates x and wraps it as an Observations. Validation is
// eager: either every entry is within [0, 1] and x is non-empty, or no
// Observations is returned at all.
func NewObservations(x []float64) (Observations, error) {
	if len(x) == 0 {
		return Observations{}, ErrEmptyObservations
	}
	for t, v := range x {
		if v < 0 || v > 1 {
			return Observations{}, fmt.Errorf("%w: x[%d] = %v", ErrObservationOutOfRange, t, v)
		}
	}
	cp := make([]float64, len(x))
	copy(cp, x)
	return Observations{x: cp}, nil
}

// Len returns the number of observations.
func (o Observations) Len() int { return len(o.x) }

// Slice returns the observations up to and excluding index t (a 0-based
// prefix of length t). Used by ci_sequence-style prefix recomputation.
func (o Observations) Slice(t int) Observations {
	if t >= len(o.x) {
		t = len(o.x)
	}
	cp := make([]float64, t)
	copy(cp, o.x[:t])
	return Observations{x: cp}
}

// Raw exposes the underlying slice as a read-only view. Callers must not
// mutate the returned slice.
func (o Observations) Raw() []float64 { return o.x }

// At returns the t-th observation (0-based).
func (o Observations) At(t int) float64 { return o.x[t] }

// CumulativeSum returns S_t = Σ_{s<=t} x_s for t = 1..n (S[0] == x_1, ...,
// using 0-based indexing where CumulativeSum()[i] == S_{i+1}).
func (o Observations) CumulativeSum() []float64 {
	out := make([]float64, len(o.x))
	var running float64
	for i, v := range o.x {
		running += v
		out[i] = running
	}
	return out
}
