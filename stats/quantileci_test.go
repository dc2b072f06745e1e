// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func TestQuantileCI(t *testing.T) {
	var res OrderCI
	check := func(wlo, whi int, wconf float64) {
		t.Helper()
		if wlo != res.LoOrder || whi != res.HiOrder || !aeq(wconf, res.Confidence) {
			t.Errorf("want [%v,%v]@%v, got [%v,%v]@%v",
				wlo, whi, wconf, res.LoOrder, res.HiOrder, res.Confidence)
		}
	}

	// Confidence so low the interval falls directly around the
	// quantile.
	res = QuantileCI(4, 0.5, 0.001)
	check(2, 3, 0.375)
	res = QuantileCI(4, 0.25, 0.001)
	check(1, 2, 0.421875)

	// Widening: B(4, 0.5) is 1,4,6,4,1 sixteenths.
	res = QuantileCI(4, 0.5, 0.6)
	check(1, 3, 10.0/16)
	res = QuantileCI(4, 0.5, 0.9)
	check(0, 4, 15.0/16)
	// The whole sample is not enough.
	res = QuantileCI(4, 0.5, 0.99)
	check(0, 5, 1)

	res = QuantileCI(10, 0.5, 1)
	check(0, 11, 1)
}

func TestQuantileCIApprox(t *testing.T) {
	// The normal approximation should agree closely with the
	// exact computation just above the threshold.
	defer func(old int) { quantileCIApproxThreshold = old }(quantileCIApproxThreshold)
	for _, n := range []int{40, 60, 100} {
		quantileCIApproxThreshold = 1000
		exact := QuantileCI(n, 0.5, 0.95)
		quantileCIApproxThreshold = 0
		approx := QuantileCI(n, 0.5, 0.95)
		if d := exact.LoOrder - approx.LoOrder; d < -1 || d > 1 {
			t.Errorf("n=%d: exact %+v, approx %+v", n, exact, approx)
		}
		if approx.Confidence < 0.95 {
			t.Errorf("n=%d: approx confidence %v below requested", n, approx.Confidence)
		}
	}
}

func TestMedianCI(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	lo, hi := MedianCI(xs, 0.6)
	if lo != 1 || hi != 3 {
		t.Errorf("want [1,3], got [%v,%v]", lo, hi)
	}
	lo, hi = MedianCI(xs, 0.99)
	if !math.IsInf(lo, -1) || !math.IsInf(hi, 1) {
		t.Errorf("want (-inf, +inf), got [%v,%v]", lo, hi)
	}
}
