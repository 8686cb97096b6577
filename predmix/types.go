// SPDX-License-Identifier: MIT
package predmix

import (
	"fmt"

	"github.com/anyvalid/confseq/confnum"
)

// BetGenerator produces a predictable sequence of bets λ_1..λ_n from the
// observed stream x and a candidate mean m. λ_t may depend on x_{1..t-1}
// and m but never on x_t — implementations must not look ahead.
type BetGenerator interface {
	Bets(x confnum.Observations, m float64) ([]float64, error)
}

// Family bundles an ordered sequence of BetGenerator capabilities with a
// weight vector, the unit that capital.DiversifiedMartingale combines.
type Family struct {
	Generators []BetGenerator
	Weights    []float64 // nil means uniform 1/K
}

// NewFamily validates and builds a Family. A nil weights slice defaults to
// uniform weight 1/K at the point of use; if supplied here it must have one
// entry per generator, be non-negative, and sum to 1.
func NewFamily(gens []BetGenerator, weights []float64) (Family, error) {
	if len(gens) == 0 {
		return Family{}, fmt.Errorf("%w: family has no generators", confnum.ErrPrecondition)
	}
	if err := confnum.ValidateWeights(weights, len(gens)); err != nil {
		return Family{}, err
	}
	return Family{Generators: gens, Weights: weights}, nil
}

// ResolvedWeights returns the family's weights, substituting uniform 1/K
// when none were supplied.
func (f Family) ResolvedWeights() []float64 {
	if f.Weights != nil {
		return f.Weights
	}
	k := len(f.Generators)
	w := make([]float64, k)
	uniform := 1.0 / float64(k)
	for i := range w {
		w[i] = uniform
	}
	return w
}
