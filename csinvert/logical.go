// SPDX-License-Identifier: MIT
package csinvert

import (
	"fmt"

	"github.com/anyvalid/confseq/confnum"
)

// LogicalCS computes the logical confidence sequence for sampling without
// replacement: bounds derivable from [0,1]-boundedness and the finite
// population size alone, independent of any martingale.
//
//	l_t = S_t / N
//	u_t = 1 - (t - S_t) / N
func LogicalCS(x confnum.Observations, n int) (l, u []float64, err error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("%w: N = %d", confnum.ErrPopulationSize, n)
	}
	N := float64(n)
	s := x.CumulativeSum()
	length := x.Len()
	l = make([]float64, length)
	u = make([]float64, length)
	for i := 0; i < length; i++ {
		t := float64(i + 1)
		st := s[i]
		l[i] = st / N
		u[i] = 1 - (t-st)/N
	}
	return l, u, nil
}
