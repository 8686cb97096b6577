// SPDX-License-Identifier: MIT
// Package obslog gives the confseq core a single place to emit diagnostic
// log events: truncation bounds clamped to the infinity sentinel, and
// confidence regions that came up empty at some time step. It wraps
// github.com/rs/zerolog, disabled by default so library callers never see
// output unless they opt in.
package obslog

import (
	"io"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(io.Discard)
)

// SetLogger replaces the package-level logger. Pass zerolog.New(os.Stderr)
// or any configured zerolog.Logger to observe diagnostic events; the
// default logger discards everything.
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// TruncationClamped reports that a truncation bound overflowed to +Inf and
// was clamped to the finite sentinel.
func TruncationClamped(branch string, sentinel float64) {
	current().Info().
		Str("event", "truncation_clamped").
		Str("branch", branch).
		Float64("sentinel", sentinel).
		Msg("truncating at sentinel instead of infinity")
}

// EmptyRegion reports that no grid point satisfied the martingale threshold
// at time step t — an acceptable, non-error outcome.
func EmptyRegion(t int) {
	current().Info().
		Str("event", "empty_region").
		Int("t", t).
		Msg("confidence region empty at time step")
}
