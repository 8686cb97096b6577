// SPDX-License-Identifier: MIT
package confnum

import "fmt"

// ValidateAlpha checks alpha is in (0, 1).
func ValidateAlpha(alpha float64) error {
	if alpha <= 0 || alpha >= 1 {
		return fmt.Errorf("%w: alpha = %v", ErrAlphaOutOfRange, alpha)
	}
	return nil
}

// ValidateMean checks a candidate mean m is in [0, 1].
func ValidateMean(m float64) error {
	if m < 0 || m > 1 {
		return fmt.Errorf("%w: m = %v", ErrMeanOutOfRange, m)
	}
	return nil
}

// ValidatePopulationSize checks N is a positive population size. A nil N
// (sampling with replacement) is always valid.
func ValidatePopulationSize(n *int) error {
	if n == nil {
		return nil
	}
	if *n <= 0 {
		return fmt.Errorf("%w: N = %d", ErrPopulationSize, *n)
	}
	return nil
}

// ValidateTruncScale checks tau is in (0, 1].
func ValidateTruncScale(tau float64) error {
	if tau <= 0 || tau > 1 {
		return fmt.Errorf("%w: tau = %v", ErrTruncScale, tau)
	}
	return nil
}

// ValidateFakeObsWeight checks k >= 1.
func ValidateFakeObsWeight(k float64) error {
	if k < 1 {
		return fmt.Errorf("%w: k = %v", ErrFakeObsWeight, k)
	}
	return nil
}

// ValidatePriorVariance checks sigma0^2 is in (0, 1/4].
func ValidatePriorVariance(sigma2 float64) error {
	if sigma2 <= 0 || sigma2 > 0.25 {
		return fmt.Errorf("%w: sigma0^2 = %v", ErrPriorVariance, sigma2)
	}
	return nil
}

// ValidateGridResolution checks the grid resolution B is positive.
func ValidateGridResolution(b int) error {
	if b <= 0 {
		return fmt.Errorf("%w: B = %d", ErrGridResolution, b)
	}
	return nil
}

// ValidateWeights checks that w has length k, every entry is non-negative,
// and the entries sum to 1 within tolerance. A nil w is always valid (the
// caller defaults to uniform weights).
func ValidateWeights(w []float64, k int) error {
	if w == nil {
		return nil
	}
	if len(w) != k {
		return fmt.Errorf("%w: have %d weights, want %d", ErrWeightLengthMismatch, len(w), k)
	}
	var sum float64
	for i, wi := range w {
		if wi < 0 {
			return fmt.Errorf("%w: w[%d] = %v", ErrWeightNegative, i, wi)
		}
		sum += wi
	}
	const tol = 1e-9
	if diff := sum - 1; diff < -tol || diff > tol {
		return fmt.Errorf("%w: sum = %v", ErrWeightSum, sum)
	}
	return nil
}

// ValidateTimes checks that times is strictly increasing and every entry is
// a positive integer (a valid stopping-time grid for ci_sequence).
func ValidateTimes(times []int) error {
	prev := 0
	for i, t := range times {
		if t <= 0 || t <= prev {
			return fmt.Errorf("%w: times[%d] = %d", ErrTimesNotIncreasing, i, t)
		}
		prev = t
	}
	return nil
}
