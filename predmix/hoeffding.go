// SPDX-License-Identifier: MIT
package predmix

import (
	"math"

	"github.com/anyvalid/confseq/confnum"
)

// PredMixHoeffding is the default predictable-mixture bet schedule used by
// the Hoeffding closed-form confidence sequence:
//
//	λ_t = min(1, sqrt(8*ln(2/alpha) / (t*ln(t+1))))
//
// It is exposed as a standalone BetGenerator — rather than inlined only
// inside the Hoeffding CS formula — so it can be reused anywhere a bet
// generator is accepted, including inside a diversified family.
type PredMixHoeffding struct {
	alpha float64
}

// NewPredMixHoeffding builds the default Hoeffding bet schedule for
// significance level alpha.
func NewPredMixHoeffding(alpha float64) (*PredMixHoeffding, error) {
	if err := confnum.ValidateAlpha(alpha); err != nil {
		return nil, err
	}
	return &PredMixHoeffding{alpha: alpha}, nil
}

// Bets implements BetGenerator. m is unused: the default Hoeffding bet
// schedule depends only on t and alpha.
func (g *PredMixHoeffding) Bets(x confnum.Observations, _ float64) ([]float64, error) {
	n := x.Len()
	lambdas := make([]float64, n)
	logTerm := math.Log(2 / g.alpha)
	for i := 0; i < n; i++ {
		t := float64(i + 1)
		lambdas[i] = math.Min(1, math.Sqrt(8*logTerm/(t*math.Log(t+1))))
	}
	return lambdas, nil
}
