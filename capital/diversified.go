// SPDX-License-Identifier: MIT
package capital

import (
	"fmt"

	"github.com/anyvalid/confseq/confnum"
	"github.com/anyvalid/confseq/predmix"
)

// DiversifiedMartingale computes a weighted sum of per-generator martingales
// over a family of bet-generator pairs. posFamily and negFamily must have
// the same length; negFamily may be the zero Family (nil Generators) to
// reuse posFamily's generators on the negative branch of every pair.
func DiversifiedMartingale(x confnum.Observations, m float64, posFamily, negFamily predmix.Family, cfg Config) ([]float64, error) {
	if len(posFamily.Generators) == 0 {
		return nil, fmt.Errorf("%w: positive family has no generators", confnum.ErrPrecondition)
	}
	if negFamily.Generators == nil {
		negFamily = posFamily
	}
	if len(posFamily.Generators) != len(negFamily.Generators) {
		return nil, fmt.Errorf("%w: %d positive vs %d negative generators",
			confnum.ErrFamilyLengthMismatch, len(posFamily.Generators), len(negFamily.Generators))
	}

	weights := posFamily.ResolvedWeights()
	if err := confnum.ValidateWeights(weights, len(posFamily.Generators)); err != nil {
		return nil, err
	}

	n := x.Len()
	total := make([]float64, n)
	for k, posGen := range posFamily.Generators {
		negGen := negFamily.Generators[k]
		mk, err := Martingale(x, m, posGen, negGen, cfg)
		if err != nil {
			return nil, err
		}
		w := weights[k]
		for i, v := range mk {
			total[i] += w * v
		}
	}
	return total, nil
}
