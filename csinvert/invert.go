// SPDX-License-Identifier: MIT
package csinvert

import (
	"math"

	"github.com/anyvalid/confseq/confnum"
	"github.com/anyvalid/confseq/internal/obslog"
)

// buildGrid returns {0, 1/B, 2/B, ..., 1}.
func buildGrid(b int) []float64 {
	grid := make([]float64, b+1)
	for i := range grid {
		grid[i] = float64(i) / float64(b)
	}
	return grid
}

// Invert evaluates mart on the grid {0, 1/B, ..., 1}, collects per-time-step
// the region where mart(x, g) <= 1/alpha, widens by one grid cell,
// optionally intersects with the logical WoR bounds, and optionally runs
// the monotone running intersection.
func Invert(x confnum.Observations, mart MartingaleFunc, cfg InvertConfig) (l, u []float64, err error) {
	if err := confnum.ValidateAlpha(cfg.Alpha); err != nil {
		return nil, nil, err
	}
	if err := confnum.ValidateGridResolution(cfg.B); err != nil {
		return nil, nil, err
	}
	if err := confnum.ValidatePopulationSize(cfg.N); err != nil {
		return nil, nil, err
	}

	n := x.Len()
	grid := buildGrid(cfg.B)
	threshold := 1 / cfg.Alpha

	results, err := gridSweep(x, mart, grid, cfg.Parallel)
	if err != nil {
		return nil, nil, err
	}

	minIdx := make([]int, n)
	maxIdx := make([]int, n)
	found := make([]bool, n)
	for t := range minIdx {
		minIdx[t] = -1
		maxIdx[t] = -1
	}

	for i, vals := range results {
		for t, v := range vals {
			if v <= threshold {
				if !found[t] {
					minIdx[t] = i
					found[t] = true
				}
				maxIdx[t] = i
			}
		}
	}

	l = make([]float64, n)
	u = make([]float64, n)
	step := 1.0 / float64(cfg.B)
	for t := 0; t < n; t++ {
		if !found[t] {
			l[t] = math.NaN()
			u[t] = math.NaN()
			obslog.EmptyRegion(t + 1)
			continue
		}
		l[t] = math.Max(0, grid[minIdx[t]]-step)
		u[t] = math.Min(1, grid[maxIdx[t]]+step)
	}

	if cfg.N != nil {
		logicalL, logicalU, err := LogicalCS(x, *cfg.N)
		if err != nil {
			return nil, nil, err
		}
		for t := range l {
			if math.IsNaN(l[t]) {
				continue
			}
			l[t] = math.Max(l[t], logicalL[t])
			u[t] = math.Min(u[t], logicalU[t])
		}
	}

	if cfg.RunningIntersection {
		runningMax, runningMin := math.Inf(-1), math.Inf(1)
		for t := 0; t < n; t++ {
			if math.IsNaN(l[t]) {
				continue
			}
			runningMax = math.Max(runningMax, l[t])
			runningMin = math.Min(runningMin, u[t])
			l[t] = runningMax
			u[t] = runningMin
		}
	}

	return l, u, nil
}
