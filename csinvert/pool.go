// SPDX-License-Identifier: MIT
package csinvert

import (
	"context"
	"fmt"
	"runtime"

	"github.com/anyvalid/confseq/confnum"
	"golang.org/x/sync/errgroup"
)

// gridSweep evaluates mart(x, grid[i]) for every i, either serially or over
// an errgroup-backed worker pool sized to GOMAXPROCS. Each task owns a
// single result slot (results[i]); there is no shared mutable state among
// workers, and a worker's error cancels the remaining tasks.
func gridSweep(x confnum.Observations, mart MartingaleFunc, grid []float64, parallel bool) ([][]float64, error) {
	results := make([][]float64, len(grid))

	if !parallel {
		for i, m := range grid {
			v, err := mart(x, m)
			if err != nil {
				return nil, fmt.Errorf("grid point %d (m=%v): %w", i, m, err)
			}
			results[i] = v
		}
		return results, nil
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, m := range grid {
		i, m := i, m
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			v, err := mart(x, m)
			if err != nil {
				return fmt.Errorf("grid point %d (m=%v): %w", i, m, err)
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// prefixSweep evaluates ciFn on each prefix x[:t] for t in times, either
// serially or over the same worker-pool pattern as gridSweep.
func prefixSweep(x confnum.Observations, ciFn func(confnum.Observations) (float64, float64, error), times []int, parallel bool) ([]float64, []float64, error) {
	l := make([]float64, len(times))
	u := make([]float64, len(times))

	if !parallel {
		for i, t := range times {
			lo, hi, err := ciFn(x.Slice(t))
			if err != nil {
				return nil, nil, fmt.Errorf("prefix t=%d: %w", t, err)
			}
			l[i], u[i] = lo, hi
		}
		return l, u, nil
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, t := range times {
		i, t := i, t
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			lo, hi, err := ciFn(x.Slice(t))
			if err != nil {
				return fmt.Errorf("prefix t=%d: %w", t, err)
			}
			l[i], u[i] = lo, hi
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return l, u, nil
}
