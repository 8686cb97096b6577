// SPDX-License-Identifier: MIT
// Package capital builds positive and negative truncated capital processes
// for a candidate mean, and combines a family of them into a diversified
// martingale. Every exported function recomputes from scratch from its
// inputs; no state survives between calls.
package capital
