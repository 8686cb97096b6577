// SPDX-License-Identifier: MIT
// Package confnum holds the numeric primitives and sentinel errors shared by
// every confseq component: the Observations type, precondition validators,
// and the NaN/Inf clamping policy described for the betting-martingale core.
//
// Every public constructor elsewhere in this module funnels its input
// validation through confnum so that a PreconditionError always looks and
// behaves the same regardless of which package raised it.
package confnum
