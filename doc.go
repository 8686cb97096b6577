// SPDX-License-Identifier: MIT
// Package confseq is an anytime-valid inference library for the mean of a
// bounded random process.
//
// Given a stream of observations in [0, 1], confseq produces, after every
// new observation, a confidence region for the true mean that stays
// simultaneously valid at every stopping time — not just at a single
// pre-chosen sample size. The technique is a betting martingale: a
// non-negative process whose value stays small under the null hypothesis
// "the mean equals m"; the set of m for which the process never exceeds
// 1/alpha is a confidence sequence.
//
// Everything here is organized under five subpackages:
//
//	predmix/    — predictable-mixture bet generators (empirical-Bernstein, Hoeffding)
//	capital/    — truncated capital processes & diversified martingales
//	csinvert/   — grid inversion into a confidence sequence, logical WoR bounds
//	closedform/ — direct Hoeffding and empirical-Bernstein confidence sequences
//	confnum/    — shared Observations type, precondition validation, NaN/Inf policy
//
// A minimal confidence-sequence computation:
//
//	x, _ := confnum.NewObservations(observedStream)
//	gen, _ := predmix.NewPredMixEB(0.05)
//	fam, _ := predmix.NewFamily([]predmix.BetGenerator{gen}, nil)
//	capCfg := capital.DefaultConfig()
//	invCfg, _ := csinvert.NewInvertConfig(0.05)
//	l, u, _ := csinvert.ConfidenceSequence(x, fam, predmix.Family{}, capCfg, invCfg)
//
// No persistent state survives between calls: every function recomputes
// from the window it is given.
//
//	go get github.com/anyvalid/confseq
package confseq
