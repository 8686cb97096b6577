// SPDX-License-Identifier: MIT
package csinvert

import (
	"github.com/anyvalid/confseq/capital"
	"github.com/anyvalid/confseq/confnum"
	"github.com/anyvalid/confseq/predmix"
)

// FixedTimeCIFunc computes a single fixed-time confidence interval from a
// (possibly truncated) observation window — the contract CISequence
// re-invokes on each prefix.
type FixedTimeCIFunc func(x confnum.Observations) (l, u float64, err error)

// FixedTimeCI is a convenience wrapper around ConfidenceSequence exposing
// only the final (l_n, u_n) pair.
func FixedTimeCI(x confnum.Observations, posFamily, negFamily predmix.Family, capCfg capital.Config, invCfg InvertConfig) (l, u float64, err error) {
	ls, us, err := ConfidenceSequence(x, posFamily, negFamily, capCfg, invCfg)
	if err != nil {
		return 0, 0, err
	}
	last := len(ls) - 1
	return ls[last], us[last], nil
}

// CISequence computes a sequence of fixed-time confidence intervals: ciFn
// is re-invoked on each prefix x[:t_k] for t_k in times — an observational
// contract, not an optimization target, though the same worker-pool
// pattern as the grid sweep is available via parallel.
func CISequence(x confnum.Observations, ciFn FixedTimeCIFunc, times []int, parallel bool) (l, u []float64, err error) {
	if err := confnum.ValidateTimes(times); err != nil {
		return nil, nil, err
	}
	wrapped := func(prefix confnum.Observations) (float64, float64, error) {
		return ciFn(prefix)
	}
	return prefixSweep(x, wrapped, times, parallel)
}
