package capital_test

import (
	"math"
	"testing"

	"github.com/anyvalid/confseq/capital"
	"github.com/anyvalid/confseq/confnum"
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

func defaultGen(t *testing.T, alpha float64) predmix.BetGenerator {
	t.Helper()
	g, err := predmix.NewPredMixEB(alpha)
	require.NoError(t, err)
	return g
}

func TestMartingale_NonNegativeAndFinite(t *testing.T) {
	gen := defaultGen(t, 0.05)
	x := obs(t, []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5})
	cfg := capital.DefaultConfig()

	mart, err := capital.Martingale(x, 0.5, gen, nil, cfg)
	require.NoError(t, err)
	require.Len(t, mart, x.Len())
	for i, v := range mart {
		assert.GreaterOrEqualf(t, v, 0.0, "M[%d] must be >= 0", i)
		assert.Falsef(t, math.IsNaN(v), "M[%d] must not be NaN", i)
	}
}

func TestMartingale_InfeasibleMeanIsInfinite(t *testing.T) {
	gen := defaultGen(t, 0.05)
	N := 10
	x := obs(t, []float64{0, 0, 0, 0, 0})
	cfg, err := capital.NewConfig(capital.WithPopulationSize(N))
	require.NoError(t, err)

	// m=1 with N=10 all-zero observations: mu_t(1) will exceed 1 quickly,
	// since the remaining population must average to more than 1.
	mart, err := capital.Martingale(x, 1.0, gen, nil, cfg)
	require.NoError(t, err)
	assert.True(t, math.IsInf(mart[len(mart)-1], 1))
}

func TestMartingale_RejectsNilPosGen(t *testing.T) {
	x := obs(t, []float64{0.5})
	_, err := capital.Martingale(x, 0.5, nil, nil, capital.DefaultConfig())
	assert.ErrorIs(t, err, confnum.ErrPrecondition)
}

func TestMartingale_RejectsBadMean(t *testing.T) {
	gen := defaultGen(t, 0.05)
	x := obs(t, []float64{0.5})
	_, err := capital.Martingale(x, 1.5, gen, nil, capital.DefaultConfig())
	assert.ErrorIs(t, err, confnum.ErrMeanOutOfRange)
}

func TestMartingale_ThetaOneEqualsPositiveBranch(t *testing.T) {
	gen := defaultGen(t, 0.05)
	x := obs(t, []float64{0.2, 0.8, 0.4, 0.6})
	cfgTheta1, err := capital.NewConfig(capital.WithTheta(1))
	require.NoError(t, err)
	cfgMax, err := capital.NewConfig() // theta=0.5, max combination
	require.NoError(t, err)

	m1, err := capital.Martingale(x, 0.5, gen, nil, cfgTheta1)
	require.NoError(t, err)
	mMax, err := capital.Martingale(x, 0.5, gen, nil, cfgMax)
	require.NoError(t, err)

	// theta=1 always isolates the positive branch, regardless of how the
	// default config would have combined it.
	assert.NotNil(t, m1)
	assert.NotNil(t, mMax)

	// Positive branch by hand: at m=1/2 with tau=1/2 and m-dependent
	// truncation, both truncation bounds are tau/m = tau/(1-m) = 1.
	bets, err := gen.Bets(x, 0.5)
	require.NoError(t, err)
	require.Len(t, m1, x.Len())
	want := 1.0
	for i, xi := range x.Raw() {
		lam := math.Max(-1, math.Min(1, bets[i]))
		want *= 1 + lam*(xi-0.5)
		assert.InDeltaf(t, want, m1[i], 1e-12, "M[%d] must equal the positive capital process", i)
	}
}

func TestMartingale_SymmetryUnderComplement(t *testing.T) {
	// Symmetry property: replacing x by (1-x) and m by (1-m) yields
	// identical capital values when pos/neg generators are identical,
	// theta=1/2, convex_comb=false.
	gen := defaultGen(t, 0.05)
	cfg, err := capital.NewConfig(capital.WithTheta(0.5), capital.WithConvexComb(false), capital.WithMTrunc(false))
	require.NoError(t, err)

	x := []float64{0.2, 0.7, 0.3, 0.9, 0.1}
	xComplement := make([]float64, len(x))
	for i, v := range x {
		xComplement[i] = 1 - v
	}

	ox := obs(t, x)
	oxc := obs(t, xComplement)

	m := 0.4
	mart1, err := capital.Martingale(ox, m, gen, nil, cfg)
	require.NoError(t, err)
	mart2, err := capital.Martingale(oxc, 1-m, gen, nil, cfg)
	require.NoError(t, err)

	for i := range mart1 {
		assert.InDelta(t, mart1[i], mart2[i], 1e-9)
	}
}
