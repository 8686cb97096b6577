// SPDX-License-Identifier: MIT
package closedform

import (
	"fmt"
	"math"

	"github.com/anyvalid/confseq/confnum"
	"github.com/anyvalid/confseq/predmix"
)

// HoeffdingCS implements the predictable-mixture Hoeffding confidence
// sequence. lambdas, if non-nil, must have one entry per observation and
// replaces the default bet schedule
// min(1, sqrt(8*ln(2/alpha)/(t*ln(t+1)))).
func HoeffdingCS(x confnum.Observations, alpha float64, lambdas []float64, runningIntersection bool) (l, u []float64, err error) {
	if err := confnum.ValidateAlpha(alpha); err != nil {
		return nil, nil, err
	}
	n := x.Len()
	if lambdas == nil {
		gen, genErr := predmix.NewPredMixHoeffding(alpha)
		if genErr != nil {
			return nil, nil, genErr
		}
		lambdas, genErr = gen.Bets(x, 0)
		if genErr != nil {
			return nil, nil, genErr
		}
	} else if len(lambdas) != n {
		return nil, nil, fmt.Errorf("%w: have %d lambdas, want %d", confnum.ErrPrecondition, len(lambdas), n)
	}

	raw := x.Raw()
	l = make([]float64, n)
	u = make([]float64, n)

	var sumLambda, sumLambdaX, sumLambdaSq float64
	logTerm := math.Log(2 / alpha)

	for t := 0; t < n; t++ {
		lam := lambdas[t]
		sumLambda += lam
		sumLambdaX += lam * raw[t]
		sumLambdaSq += lam * lam

		var muHat float64
		if sumLambda == 0 {
			muHat = 0.5
		} else {
			muHat = sumLambdaX / sumLambda
		}

		psi := sumLambdaSq / 8
		var margin float64
		if sumLambda == 0 {
			margin = math.Inf(1)
		} else {
			margin = (psi + logTerm) / sumLambda
		}

		l[t] = math.Max(0, muHat-margin)
		u[t] = math.Min(1, muHat+margin)
	}

	if runningIntersection {
		applyRunningIntersection(l, u)
	}

	return l, u, nil
}

// applyRunningIntersection implements l := max-accumulate(l), u :=
// min-accumulate(u) — the monotone tightening shared by HoeffdingCS and
// EmpBernCS.
func applyRunningIntersection(l, u []float64) {
	runningMax, runningMin := math.Inf(-1), math.Inf(1)
	for t := range l {
		runningMax = math.Max(runningMax, l[t])
		runningMin = math.Min(runningMin, u[t])
		l[t] = runningMax
		u[t] = runningMin
	}
}
