// SPDX-License-Identifier: MIT
// Package predmix implements predictable-mixture bet generators: the
// capability that produces a sequence of bets λ_t from strictly-past
// observations, usable by the capital package to build betting
// martingales, and directly by the closedform package for the Hoeffding
// and empirical-Bernstein closed-form confidence sequences.
//
// A BetGenerator is the only abstraction this package exports to callers
// outside it: a small interface with one method, mirroring the original's
// first-class "lambdas_fn" closures as a polymorphic capability instead.
package predmix
