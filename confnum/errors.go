// SPDX-License-Identifier: MIT
// Sentinel error set (unified, consistent). This file defines ONLY
// package-level sentinel errors. All public constructors MUST return these
// sentinels (wrapped with %w for context) and tests MUST check them via
// errors.Is. Panics are reserved for programmer errors in internal helpers
// (mismatched slice lengths, nil capability values) — never for
// user-triggered input.
package confnum

import "errors"

var (
	// ErrPrecondition is the sentinel for input range violations that have
	// no more specific sentinel below. The specific sentinels are separate
	// errors: errors.Is matches each of them individually, and none of them
	// matches ErrPrecondition.
	ErrPrecondition = errors.New("confnum: precondition violated")

	// ErrObservationOutOfRange is returned when some x_t falls outside [0, 1].
	ErrObservationOutOfRange = errors.New("confnum: observation out of [0, 1]")

	// ErrEmptyObservations is returned when a zero-length stream is supplied
	// where at least one observation is required.
	ErrEmptyObservations = errors.New("confnum: observation stream is empty")

	// ErrAlphaOutOfRange is returned when alpha is not in (0, 1).
	ErrAlphaOutOfRange = errors.New("confnum: alpha out of (0, 1)")

	// ErrMeanOutOfRange is returned when a candidate mean m is not in [0, 1].
	ErrMeanOutOfRange = errors.New("confnum: candidate mean out of [0, 1]")

	// ErrPopulationSize is returned when N <= 0.
	ErrPopulationSize = errors.New("confnum: population size must be positive")

	// ErrTruncScale is returned when tau is not in (0, 1].
	ErrTruncScale = errors.New("confnum: truncation scale out of (0, 1]")

	// ErrFakeObsWeight is returned when k < 1.
	ErrFakeObsWeight = errors.New("confnum: fake-observation weight must be >= 1")

	// ErrPriorVariance is returned when sigma0^2 is not in (0, 1/4].
	ErrPriorVariance = errors.New("confnum: prior variance out of (0, 1/4]")

	// ErrWeightLengthMismatch is returned when a weight vector's length
	// does not match the number of bet-generator families it weights.
	ErrWeightLengthMismatch = errors.New("confnum: weight vector length mismatch")

	// ErrWeightNegative is returned when a family weight is negative.
	ErrWeightNegative = errors.New("confnum: family weight is negative")

	// ErrWeightSum is returned when family weights do not sum to 1 within
	// tolerance.
	ErrWeightSum = errors.New("confnum: family weights must sum to 1")

	// ErrFamilyLengthMismatch is returned when positive and negative bet
	// generator families have different lengths.
	ErrFamilyLengthMismatch = errors.New("confnum: positive/negative family length mismatch")

	// ErrGridResolution is returned when the grid resolution B is <= 0.
	ErrGridResolution = errors.New("confnum: grid resolution must be positive")

	// ErrTimesNotIncreasing is returned when a CI-sequence times vector is
	// not strictly increasing or contains non-positive entries.
	ErrTimesNotIncreasing = errors.New("confnum: times must be strictly increasing and positive")

	// ErrNumerical marks a fatal numerical failure: a cumulative product
	// produced NaN, or a martingale value came out negative despite
	// truncation.
	ErrNumerical = errors.New("confnum: numerical failure")
)
