// SPDX-License-Identifier: MIT
package closedform

import (
	"math"

	"github.com/anyvalid/confseq/confnum"
	"github.com/anyvalid/confseq/predmix"
)

// EmpBernCS implements the predictable-mixture empirical-Bernstein
// confidence sequence, using the predmix empirical-Bernstein bet generator
// at significance alpha/2 and a truncation cap of tau in (0, 1] (pass 0.5
// to match the reference default). fixedN, if non-nil, fixes the bet
// schedule's horizon instead of letting it scale with t*ln(1+t).
func EmpBernCS(x confnum.Observations, alpha, tau float64, runningIntersection bool, fixedN *int) (l, u []float64, err error) {
	if err := confnum.ValidateAlpha(alpha); err != nil {
		return nil, nil, err
	}
	if err := confnum.ValidateTruncScale(tau); err != nil {
		return nil, nil, err
	}

	opts := []predmix.EBOption{predmix.WithTruncation(tau)}
	if fixedN != nil {
		opts = append(opts, predmix.WithFixedHorizon(*fixedN))
	}
	gen, err := predmix.NewPredMixEB(alpha/2, opts...)
	if err != nil {
		return nil, nil, err
	}
	lambdas, err := gen.Bets(x, 0)
	if err != nil {
		return nil, nil, err
	}

	raw := x.Raw()
	n := len(raw)
	l = make([]float64, n)
	u = make([]float64, n)

	logTerm := math.Log(2 / alpha)
	var sumLambda, sumLambdaX, sumPsi, cumX float64
	muHatPrev := 0.0 // s-hat_0 := 0

	for t := 0; t < n; t++ {
		xt := raw[t]
		lam := lambdas[t]

		diff := xt - muHatPrev
		sumPsi += diff * diff * (-math.Log(1-lam) - lam)

		sumLambda += lam
		sumLambdaX += lam * xt

		var margin float64
		var muHatW float64
		if sumLambda == 0 {
			margin = math.Inf(1)
			muHatW = 0.5
		} else {
			margin = (logTerm + sumPsi) / sumLambda
			muHatW = sumLambdaX / sumLambda
		}

		l[t] = math.Max(0, muHatW-margin)
		u[t] = math.Min(1, muHatW+margin)

		cumX += xt
		muHatPrev = cumX / float64(t+1)
	}

	if runningIntersection {
		applyRunningIntersection(l, u)
	}

	return l, u, nil
}
