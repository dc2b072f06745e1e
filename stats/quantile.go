// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
)

// Quantile returns the q'th quantile of xs, which must be sorted in
// increasing order. q is clamped to [0, 1].
//
// Quantiles are linearly interpolated between order statistics: with
// n values and h = (n-1)q, the result is xs[⌊h⌋] + (h-⌊h⌋)(xs[⌊h⌋+1]
// - xs[⌊h⌋]). This is Hyndman and Fan's definition 7, the default of
// most statistical packages. For n = 0 it returns NaN.
func Quantile(xs []float64, q float64) float64 {
	n := len(xs)
	if n == 0 {
		return nan
	}
	if q <= 0 {
		return xs[0]
	}
	if q >= 1 {
		return xs[n-1]
	}
	h := float64(n-1) * q
	lo := math.Floor(h)
	i := int(lo)
	if h == lo {
		// Exactly on an order statistic. Interpolating would
		// give 0·Inf when the next value is infinite.
		return xs[i]
	}
	if i+1 >= n {
		return xs[n-1]
	}
	return xs[i] + (h-lo)*(xs[i+1]-xs[i])
}

// Quartiles returns the 25th, 50th and 75th percentiles of xs, which
// need not be sorted.
func Quartiles(xs []float64) (q1, median, q3 float64) {
	s := sorted(xs)
	return Quantile(s, 0.25), Quantile(s, 0.5), Quantile(s, 0.75)
}

// sorted returns a sorted copy of xs.
func sorted(xs []float64) []float64 {
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	return s
}
