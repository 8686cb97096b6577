package csinvert_test

import (
	"math"
	"testing"

	"github.com/anyvalid/confseq/capital"
	"github.com/anyvalid/confseq/confnum"
	"github.com/anyvalid/confseq/csinvert"
	"github.com/anyvalid/confseq/predmix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func obs(t *testing.T, x []float64) confnum.Observations {
	t.Helper()
	o, err := confnum.NewObservations(x)
	require.NoError(t, err)
	return o
}

func defaultFamily(t *testing.T, alpha float64) predmix.Family {
	t.Helper()
	gen, err := predmix.NewPredMixEB(alpha)
	require.NoError(t, err)
	fam, err := predmix.NewFamily([]predmix.BetGenerator{gen}, nil)
	require.NoError(t, err)
	return fam
}

func constRepeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Scenario 1: a constant stream keeps the true mean in the CS at
// every step, and the region shrinks as evidence accumulates.
func TestConfidenceSequence_ConstantStreamContainsTruth(t *testing.T) {
	alpha := 0.05
	fam := defaultFamily(t, alpha)
	x := obs(t, constRepeat(0.5, 10))

	capCfg := capital.DefaultConfig()
	invCfg, err := csinvert.NewInvertConfig(alpha, csinvert.WithGridResolution(200))
	require.NoError(t, err)

	l, u, err := csinvert.ConfidenceSequence(x, fam, predmix.Family{}, capCfg, invCfg)
	require.NoError(t, err)

	for tt := 0; tt < 10; tt++ {
		assert.LessOrEqualf(t, l[tt], 0.5, "l[%d] must be <= 0.5", tt)
		assert.GreaterOrEqualf(t, u[tt], 0.5, "u[%d] must be >= 0.5", tt)
	}
	width0 := u[0] - l[0]
	width9 := u[9] - l[9]
	assert.Less(t, width9, width0, "the CS must narrow as evidence accumulates")
}

// Scenario 2: a stream of 1s followed by 0s must contain 0.5 at the
// end, and must still contain 1.0 partway through.
func TestConfidenceSequence_OnesFollowedByZeros(t *testing.T) {
	alpha := 0.05
	fam := defaultFamily(t, alpha)
	x := obs(t, append(constRepeat(1, 5), constRepeat(0, 5)...))

	capCfg := capital.DefaultConfig()
	invCfg, err := csinvert.NewInvertConfig(alpha, csinvert.WithGridResolution(200))
	require.NoError(t, err)

	l, u, err := csinvert.ConfidenceSequence(x, fam, predmix.Family{}, capCfg, invCfg)
	require.NoError(t, err)

	assert.LessOrEqual(t, l[9], 0.5)
	assert.GreaterOrEqual(t, u[9], 0.5)

	assert.GreaterOrEqual(t, u[4], 1.0)
}

// Scenario 3: N observations all zero with logical CS enabled must
// collapse to l=u=0 at t=N.
func TestConfidenceSequence_AllZeroWithLogicalCS(t *testing.T) {
	alpha := 0.05
	fam := defaultFamily(t, alpha)
	N := 20
	x := obs(t, constRepeat(0, N))

	capCfg, err := capital.NewConfig(capital.WithPopulationSize(N))
	require.NoError(t, err)
	invCfg, err := csinvert.NewInvertConfig(alpha, csinvert.WithGridResolution(200), csinvert.WithPopulationSize(N))
	require.NoError(t, err)

	l, u, err := csinvert.ConfidenceSequence(x, fam, predmix.Family{}, capCfg, invCfg)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, l[N-1], 1e-9)
	assert.InDelta(t, 0.0, u[N-1], 1e-9)
}

func TestConfidenceSequence_RunningIntersectionIsMonotone(t *testing.T) {
	alpha := 0.05
	fam := defaultFamily(t, alpha)
	x := obs(t, []float64{0.1, 0.9, 0.2, 0.8, 0.4, 0.6, 0.3, 0.7})

	capCfg := capital.DefaultConfig()
	invCfg, err := csinvert.NewInvertConfig(alpha, csinvert.WithGridResolution(100), csinvert.WithRunningIntersection(true))
	require.NoError(t, err)

	l, u, err := csinvert.ConfidenceSequence(x, fam, predmix.Family{}, capCfg, invCfg)
	require.NoError(t, err)

	for i := 1; i < len(l); i++ {
		assert.GreaterOrEqualf(t, l[i], l[i-1], "l must be non-decreasing at %d", i)
		assert.LessOrEqualf(t, u[i], u[i-1], "u must be non-increasing at %d", i)
	}
}

func TestConfidenceSequence_LargerAlphaNarrowsRegion(t *testing.T) {
	fam05 := defaultFamily(t, 0.05)
	fam20 := defaultFamily(t, 0.20)
	x := obs(t, []float64{0.3, 0.4, 0.6, 0.5, 0.45, 0.55, 0.5, 0.5})

	capCfg := capital.DefaultConfig()
	inv05, err := csinvert.NewInvertConfig(0.05, csinvert.WithGridResolution(200))
	require.NoError(t, err)
	inv20, err := csinvert.NewInvertConfig(0.20, csinvert.WithGridResolution(200))
	require.NoError(t, err)

	l05, u05, err := csinvert.ConfidenceSequence(x, fam05, predmix.Family{}, capCfg, inv05)
	require.NoError(t, err)
	l20, u20, err := csinvert.ConfidenceSequence(x, fam20, predmix.Family{}, capCfg, inv20)
	require.NoError(t, err)

	last := len(l05) - 1
	assert.LessOrEqual(t, u20[last]-l20[last], u05[last]-l05[last])
}

func TestInvert_RejectsBadGridResolution(t *testing.T) {
	fam := defaultFamily(t, 0.05)
	x := obs(t, []float64{0.5})
	capCfg := capital.DefaultConfig()
	_, err := csinvert.NewInvertConfig(0.05, csinvert.WithGridResolution(0))
	assert.ErrorIs(t, err, confnum.ErrGridResolution)
	_ = fam
	_ = x
	_ = capCfg
}

func TestConfidenceSequence_ParallelMatchesSerial(t *testing.T) {
	alpha := 0.05
	fam := defaultFamily(t, alpha)
	x := obs(t, []float64{0.3, 0.4, 0.6, 0.5, 0.45, 0.55, 0.5, 0.5, 0.6, 0.4})

	capCfg := capital.DefaultConfig()
	invSerial, err := csinvert.NewInvertConfig(alpha, csinvert.WithGridResolution(150))
	require.NoError(t, err)
	invParallel, err := csinvert.NewInvertConfig(alpha, csinvert.WithGridResolution(150), csinvert.WithParallel(true))
	require.NoError(t, err)

	lSerial, uSerial, err := csinvert.ConfidenceSequence(x, fam, predmix.Family{}, capCfg, invSerial)
	require.NoError(t, err)
	lParallel, uParallel, err := csinvert.ConfidenceSequence(x, fam, predmix.Family{}, capCfg, invParallel)
	require.NoError(t, err)

	assert.Equal(t, lSerial, lParallel)
	assert.Equal(t, uSerial, uParallel)
}

func TestInvert_EmptyRegionIsNaN(t *testing.T) {
	// With the real diversified martingale at a tiny alpha, the bounds are
	// either both numbers or both NaN.
	fam := defaultFamily(t, 1e-9)
	x := obs(t, []float64{0.0})
	capCfg, err := capital.NewConfig(capital.WithMTrunc(false), capital.WithTruncScale(1))
	require.NoError(t, err)
	invCfg, err := csinvert.NewInvertConfig(1e-9, csinvert.WithGridResolution(50))
	require.NoError(t, err)

	l, u, err := csinvert.ConfidenceSequence(x, fam, predmix.Family{}, capCfg, invCfg)
	require.NoError(t, err)
	// Either the region is found, or both bounds report NaN together —
	// never one without the other.
	assert.Equal(t, math.IsNaN(l[0]), math.IsNaN(u[0]))

	// A degenerate martingale function that rejects every m forces an
	// EmptyRegion outcome, which must surface as NaN, not an error.
	rejectAll := func(x confnum.Observations, _ float64) ([]float64, error) {
		out := make([]float64, x.Len())
		for i := range out {
			out[i] = math.Inf(1)
		}
		return out, nil
	}
	l, u, err = csinvert.Invert(x, rejectAll, invCfg)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(l[0]))
	assert.True(t, math.IsNaN(u[0]))
}
