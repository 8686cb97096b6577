// SPDX-License-Identifier: MIT
package predmix

import (
	"math"

	"github.com/anyvalid/confseq/confnum"
)

// ebConfig holds the tunables of the predictable-mixture empirical-Bernstein
// bet generator: prior mean/variance for the regularized running moments,
// the fake-observation weight, the truncation cap, the output scale, and
// an optional fixed horizon.
type ebConfig struct {
	priorMean     float64
	priorVariance float64
	fakeObsWeight float64
	truncation    float64
	scale         float64
	fixedHorizon  *int
}

// EBOption configures a PredMixEB via functional arguments.
type EBOption func(*ebConfig) error

// WithPriorMean sets μ0, the prior mean used for the regularized running
// mean. Default: 1/2.
func WithPriorMean(mu0 float64) EBOption {
	return func(c *ebConfig) error {
		if mu0 < 0 || mu0 > 1 {
			return confnum.ErrMeanOutOfRange
		}
		c.priorMean = mu0
		return nil
	}
}

// WithPriorVariance sets σ0², the prior variance used for the regularized
// running variance. Default: 1/4. Must lie in (0, 1/4].
func WithPriorVariance(sigma2 float64) EBOption {
	return func(c *ebConfig) error {
		if err := confnum.ValidatePriorVariance(sigma2); err != nil {
			return err
		}
		c.priorVariance = sigma2
		return nil
	}
}

// WithFakeObsWeight sets k, the fake-observation weight controlling
// regularization strength. Default: 1. Must be >= 1.
func WithFakeObsWeight(k float64) EBOption {
	return func(c *ebConfig) error {
		if err := confnum.ValidateFakeObsWeight(k); err != nil {
			return err
		}
		c.fakeObsWeight = k
		return nil
	}
}

// WithTruncation sets T, the per-coordinate truncation cap applied to each
// raw bet before scaling. Default: +Inf (no cap).
func WithTruncation(t float64) EBOption {
	return func(c *ebConfig) error {
		if t <= 0 {
			return confnum.ErrPrecondition
		}
		c.truncation = t
		return nil
	}
}

// WithScale sets s, the final multiplicative scale factor. Default: 1.
func WithScale(s float64) EBOption {
	return func(c *ebConfig) error {
		if s <= 0 {
			return confnum.ErrPrecondition
		}
		c.scale = s
		return nil
	}
}

// WithFixedHorizon replaces the t*ln(1+t) denominator term with a fixed
// sample size n*, optimizing the bet schedule for a known horizon.
func WithFixedHorizon(n int) EBOption {
	return func(c *ebConfig) error {
		if n <= 0 {
			return confnum.ErrPrecondition
		}
		c.fixedHorizon = &n
		return nil
	}
}

// PredMixEB is the predictable-mixture empirical-Bernstein BetGenerator:
// bets that shrink like 1/sqrt(t log t) (or 1/sqrt(n*) under a fixed
// horizon), scaled by the inverse square root of a regularized running-variance
// estimate that only looks at strictly-past observations.
type PredMixEB struct {
	alpha float64
	cfg   ebConfig
}

// NewPredMixEB builds a PredMixEB for significance level alpha, applying
// any supplied options over the defaults (μ0=1/2, σ0²=1/4, k=1, T=+Inf,
// s=1, no fixed horizon).
func NewPredMixEB(alpha float64, opts ...EBOption) (*PredMixEB, error) {
	if err := confnum.ValidateAlpha(alpha); err != nil {
		return nil, err
	}
	cfg := ebConfig{
		priorMean:     0.5,
		priorVariance: 0.25,
		fakeObsWeight: 1,
		truncation:    math.Inf(1),
		scale:         1,
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return &PredMixEB{alpha: alpha, cfg: cfg}, nil
}

// Bets implements BetGenerator. m is accepted for interface compatibility
// but unused: the empirical-Bernstein bet schedule depends only on the
// observed stream, not on the candidate mean (matching the original's
// lambda_predmix_eb, which ignores its m argument).
func (g *PredMixEB) Bets(x confnum.Observations, _ float64) ([]float64, error) {
	obs := x.Raw()
	n := len(obs)
	k := g.cfg.fakeObsWeight
	mu0 := g.cfg.priorMean
	sigma0sq := g.cfg.priorVariance

	lambdas := make([]float64, n)

	sigma2Prev := sigma0sq // v_0
	var cumX, cumSq float64

	for t := 1; t <= n; t++ {
		xt := obs[t-1]
		cumX += xt
		muHatT := (k*mu0 + cumX) / (float64(t) + k)
		cumSq += (xt - muHatT) * (xt - muHatT)
		sigma2T := (k*sigma0sq + cumSq) / (float64(t) + k)

		var denom float64
		if g.cfg.fixedHorizon != nil {
			denom = float64(*g.cfg.fixedHorizon) * sigma2Prev
		} else {
			denom = float64(t) * math.Log(1+float64(t)) * sigma2Prev
		}

		bet := math.Sqrt(2 * math.Log(1/g.alpha) / denom)
		if math.IsNaN(bet) {
			bet = 0
		}
		lambdas[t-1] = math.Min(g.cfg.truncation, bet) * g.cfg.scale

		sigma2Prev = sigma2T
	}

	return lambdas, nil
}
