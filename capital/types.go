// SPDX-License-Identifier: MIT
package capital

import "github.com/anyvalid/confseq/confnum"

// Config carries the shared knobs of a capital process: the positive/
// negative combination weight theta, the truncation scale tau, whether
// truncation is m-dependent, whether the combination is a convex sum or a
// coordinate-wise max, and an optional population size for WoR.
type Config struct {
	Theta      float64
	TruncScale float64
	MTrunc     bool
	ConvexComb bool
	N          *int
}

// Option configures a Config via functional arguments.
type Option func(*Config) error

// DefaultConfig returns the standard defaults: theta=1/2, trunc_scale=1/2,
// m_trunc=true, convex_comb=false, with replacement (N=nil).
func DefaultConfig() Config {
	return Config{
		Theta:      0.5,
		TruncScale: 0.5,
		MTrunc:     true,
		ConvexComb: false,
		N:          nil,
	}
}

// WithTheta sets the positive/negative weight theta in [0, 1].
func WithTheta(theta float64) Option {
	return func(c *Config) error {
		if theta < 0 || theta > 1 {
			return confnum.ErrPrecondition
		}
		c.Theta = theta
		return nil
	}
}

// WithTruncScale sets tau in (0, 1].
func WithTruncScale(tau float64) Option {
	return func(c *Config) error {
		if err := confnum.ValidateTruncScale(tau); err != nil {
			return err
		}
		c.TruncScale = tau
		return nil
	}
}

// WithMTrunc toggles m-dependent truncation.
func WithMTrunc(enabled bool) Option {
	return func(c *Config) error {
		c.MTrunc = enabled
		return nil
	}
}

// WithConvexComb toggles convex-combination vs. coordinate-wise max.
func WithConvexComb(enabled bool) Option {
	return func(c *Config) error {
		c.ConvexComb = enabled
		return nil
	}
}

// WithPopulationSize sets N, signifying sampling without replacement from a
// finite population. N must be positive.
func WithPopulationSize(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return confnum.ErrPopulationSize
		}
		c.N = &n
		return nil
	}
}

// NewConfig builds a Config from DefaultConfig plus the supplied options.
func NewConfig(opts ...Option) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}
