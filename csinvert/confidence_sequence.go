// SPDX-License-Identifier: MIT
package csinvert

import (
	"github.com/anyvalid/confseq/capital"
	"github.com/anyvalid/confseq/confnum"
	"github.com/anyvalid/confseq/predmix"
)

// ConfidenceSequence is the top-level entry point: it builds a
// MartingaleFunc from the diversified betting martingale of
// posFamily/negFamily and capCfg, then inverts it on the grid described
// by invCfg.
//
// negFamily may be the zero Family (no generators) to reuse posFamily on
// the negative branch of every pair, matching capital.DiversifiedMartingale.
func ConfidenceSequence(x confnum.Observations, posFamily, negFamily predmix.Family, capCfg capital.Config, invCfg InvertConfig) (l, u []float64, err error) {
	mart := func(x confnum.Observations, m float64) ([]float64, error) {
		return capital.DiversifiedMartingale(x, m, posFamily, negFamily, capCfg)
	}
	return Invert(x, mart, invCfg)
}
