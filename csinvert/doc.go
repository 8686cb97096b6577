// SPDX-License-Identifier: MIT
// Package csinvert inverts a martingale function on a grid of candidate
// means to produce a confidence sequence: for each time step, the
// confidence region is the set of grid points whose martingale value at that
// step does not exceed the threshold 1/alpha, widened by one grid cell, optionally
// intersected with the logical WoR bounds and a running intersection.
//
// The only concurrency in this module is an optional worker pool over the
// grid sweep: each grid point's martingale evaluation is independent and
// pure, so it parallelizes without any shared mutable state.
package csinvert
