// SPDX-License-Identifier: MIT
package capital

import (
	"fmt"
	"math"

	"github.com/anyvalid/confseq/confnum"
	"github.com/anyvalid/confseq/internal/obslog"
	"github.com/anyvalid/confseq/predmix"
)

// Martingale builds the betting martingale for candidate mean m: the
// positive and negative truncated capital processes from posGen/negGen,
// combined per cfg.Theta/cfg.ConvexComb, with positions where the
// effective null mean falls outside (0, 1) forced to +Inf.
//
// negGen may be nil, in which case posGen is reused for the negative
// branch.
func Martingale(x confnum.Observations, m float64, posGen, negGen predmix.BetGenerator, cfg Config) ([]float64, error) {
	if posGen == nil {
		return nil, fmt.Errorf("%w: posGen is nil", confnum.ErrPrecondition)
	}
	if err := confnum.ValidateMean(m); err != nil {
		return nil, err
	}
	if negGen == nil {
		negGen = posGen
	}

	raw := x.Raw()
	n := len(raw)

	// Step 1: effective null mean mu_t(m), and which positions are
	// infeasible (mu_t outside the open interval (0, 1)).
	mu := effectiveNullMean(raw, m, cfg.N)
	infeasible := make([]bool, n)
	for i, mt := range mu {
		infeasible[i] = mt <= 0 || mt >= 1
	}

	// Step 2: predictable bets from each generator.
	lambdasPos, err := posGen.Bets(x, m)
	if err != nil {
		return nil, err
	}
	lambdasNeg, err := negGen.Bets(x, m)
	if err != nil {
		return nil, err
	}
	if len(lambdasPos) != n || len(lambdasNeg) != n {
		return nil, fmt.Errorf("%w: bet generator returned %d/%d bets for %d observations",
			confnum.ErrPrecondition, len(lambdasPos), len(lambdasNeg), n)
	}

	// Step 3: truncation bounds.
	upper := make([]float64, n)
	lower := make([]float64, n)
	if cfg.MTrunc {
		for i, mt := range mu {
			u := cfg.TruncScale / mt
			l := cfg.TruncScale / (1 - mt)
			upper[i] = confnum.ClampInf(u, func() { obslog.TruncationClamped("upper", confnum.InfinitySentinel) })
			lower[i] = confnum.ClampInf(l, func() { obslog.TruncationClamped("lower", confnum.InfinitySentinel) })
		}
	} else {
		for i := range upper {
			upper[i] = cfg.TruncScale
			lower[i] = cfg.TruncScale
		}
	}

	// Step 4: clip. The negative branch's clip intentionally swaps the
	// roles of upper and lower relative to the positive branch.
	for i := range lambdasPos {
		lambdasPos[i] = confnum.Clip(lambdasPos[i], -lower[i], upper[i])
		lambdasNeg[i] = confnum.Clip(lambdasNeg[i], -upper[i], lower[i])
	}

	// Step 5: cumulative products.
	capPos := make([]float64, n)
	capNeg := make([]float64, n)
	runningPos, runningNeg := 1.0, 1.0
	for i := 0; i < n; i++ {
		diff := raw[i] - mu[i]
		runningPos *= 1 + lambdasPos[i]*diff
		runningNeg *= 1 - lambdasNeg[i]*diff
		capPos[i] = runningPos
		capNeg[i] = runningNeg
	}

	// Step 6: combine.
	martingale := make([]float64, n)
	switch {
	case cfg.Theta == 1:
		copy(martingale, capPos)
	case cfg.Theta == 0:
		copy(martingale, capNeg)
	case cfg.ConvexComb:
		for i := range martingale {
			martingale[i] = cfg.Theta*capPos[i] + (1-cfg.Theta)*capNeg[i]
		}
	default:
		for i := range martingale {
			martingale[i] = math.Max(cfg.Theta*capPos[i], (1-cfg.Theta)*capNeg[i])
		}
	}

	// Step 7: infeasible candidate means are impossible -> +Inf.
	for i, inf := range infeasible {
		if inf {
			martingale[i] = math.Inf(1)
		}
	}

	// Step 8: non-negativity and NaN assertions.
	for i, v := range martingale {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("%w: martingale value at t=%d is NaN", confnum.ErrNumerical, i+1)
		}
		if v < 0 {
			return nil, fmt.Errorf("%w: martingale value at t=%d is negative (%v)", confnum.ErrNumerical, i+1, v)
		}
	}

	return martingale, nil
}
