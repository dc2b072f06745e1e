// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// An OrderCI is a distribution-free confidence interval for a
// population quantile, bounded by two order statistics of a sample.
type OrderCI struct {
	// Quantile is the quantile the interval covers.
	Quantile float64

	// N is the sample size.
	N int

	// Confidence is the actual confidence level of the interval,
	// which is at least the requested level.
	Confidence float64

	// LoOrder and HiOrder are the 1-based order statistics that
	// bound the interval. Values outside [1, N] mean the bound is
	// -∞ or +∞ respectively: the sample was too small for the
	// requested confidence.
	LoOrder, HiOrder int
}

// Bounds returns the interval in terms of sorted sample xs, which
// must have length c.N.
func (c OrderCI) Bounds(xs []float64) (lo, hi float64) {
	if len(xs) != c.N {
		panic("stats: sample size differs from OrderCI")
	}
	lo, hi = math.Inf(-1), inf
	if c.LoOrder >= 1 {
		lo = xs[c.LoOrder-1]
	}
	if c.HiOrder <= c.N {
		hi = xs[c.HiOrder-1]
	}
	return
}

// quantileCIApproxThreshold is the sample size above which the
// normal approximation is used. This is a variable for testing.
var quantileCIApproxThreshold = 30

// QuantileCI returns the order statistics bounding a confidence
// interval for the q'th quantile (0 < q < 1) of a sample of size n.
//
// The number of sample values below the population quantile is
// Binomial(n, q), so PMF(k) is the probability that the quantile
// falls between the k'th and (k+1)'th order statistics. Small samples
// accumulate that distribution outward from its mode; larger ones use
// its normal approximation with a continuity correction.
func QuantileCI(n int, q, confidence float64) OrderCI {
	res := OrderCI{Quantile: q, N: n}
	if confidence >= 1 {
		res.Confidence, res.LoOrder, res.HiOrder = 1, 0, n+1
		return res
	}

	samp := distuv.Binomial{N: float64(n), P: q}
	var l, r int
	if n <= quantileCIApproxThreshold {
		pmf := func(k int) float64 {
			if k < 0 || k > n {
				return 0
			}
			return samp.Prob(float64(k))
		}
		// Start at the (lower) mode; probabilities decrease
		// monotonically away from it. [l, r) is the summed
		// band.
		x := int(math.Ceil(float64(n+1)*q) - 1)
		if x < 0 {
			x = 0
		}
		accum := pmf(x)
		l, r = x, x+1
		lp, rp := pmf(l-1), pmf(r)
		for accum < confidence && (lp > 0 || rp > 0) {
			if lp >= rp {
				accum += lp
				l--
				lp = pmf(l - 1)
			} else {
				accum += rp
				r++
				rp = pmf(r)
			}
		}
		res.Confidence = accum
	} else {
		norm := distuv.Normal{Mu: samp.Mean(), Sigma: samp.StdDev()}
		l1 := norm.Quantile((1 - confidence) / 2)
		r1 := 2*norm.Mu - l1

		// Round out to half-integer boundaries, since binomial
		// point k covers [k-0.5, k+0.5] in the approximation.
		l = int(math.Floor(math.Floor(l1-0.5)+0.5)) + 1
		r = int(math.Floor(math.Ceil(r1-0.5)+0.5)) + 1

		band := func(l, r int) float64 {
			return norm.CDF(float64(r)-0.5) - norm.CDF(float64(l)-0.5)
		}
		res.Confidence = band(l, r)
		// Prefer a left-biased interval if it still reaches
		// the requested confidence.
		if b := band(l, r-1); b >= confidence && b < res.Confidence {
			res.Confidence = b
			r--
		}
		if l <= 0 && r >= n+1 {
			res.Confidence = 1
		}
	}

	if l < 0 {
		l = 0
	}
	if r > n+1 {
		r = n + 1
	}
	res.LoOrder, res.HiOrder = l, r
	return res
}

// MedianCI returns a confidence interval for the population median
// given a sorted sample.
func MedianCI(xs []float64, confidence float64) (lo, hi float64) {
	return QuantileCI(len(xs), 0.5, confidence).Bounds(xs)
}
