// SPDX-License-Identifier: MIT
// Package closedform implements two direct (non-inverted) confidence
// sequences: the predictable-mixture Hoeffding CS and the predictable-
// mixture empirical-Bernstein CS. Both bypass grid inversion by combining
// a bet schedule's partial sums into a tractable margin.
package closedform
