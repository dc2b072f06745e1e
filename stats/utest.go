// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// MannWhitneyExactLimit is the largest sample size for which
// RankSumTest uses the exact U distribution when there are no ties.
// The exact distribution is irregular at small sizes and approaches
// the normal approximation quickly as they grow.
var MannWhitneyExactLimit = 50

// MannWhitneyTiesExactLimit is the largest sample size for which
// RankSumTest uses the exact U distribution in the presence of ties.
// The tied distribution is much more expensive to compute.
var MannWhitneyTiesExactLimit = 9

// RankSumTest performs a Mann-Whitney U-test of the null hypothesis
// that a and b come from the same population against the alternative
// that one tends to have larger values than the other. Unlike TTest
// it makes no normality assumption.
//
// The statistic is the smaller of the two U values, counting ties as
// one half, so it lies in [0, n1*n2/2]. P is two-sided. It comes from
// the exact U distribution for samples no larger than
// MannWhitneyExactLimit, or MannWhitneyTiesExactLimit if there are
// ties, and otherwise from the normal approximation with both the
// tie correction and the continuity correction.
//
// RankSumTest fails with ErrInsufficientGroups if either sample is
// empty and ErrSamplesEqual if every value is equal.
func RankSumTest(a, b []float64) (TestResult, error) {
	n1, n2 := len(a), len(b)
	if n1 == 0 || n2 == 0 {
		return TestResult{}, ErrInsufficientGroups
	}

	merged, labels := labeledMerge(sorted(a), sorted(b))

	// Sum the ranks of a, giving tied values their average rank,
	// and record the size of each run of ties.
	r1 := 0.0
	var ties []int
	hasTies := false
	for i := 0; i < len(merged); {
		first, na, v := i+1, 0, merged[i]
		for ; i < len(merged) && merged[i] == v; i++ {
			if labels[i] == 1 {
				na++
			}
		}
		r1 += float64(i+first) / 2 * float64(na)
		ties = append(ties, i-first+1)
		if i > first {
			hasTies = true
		}
	}
	u1 := r1 - float64(n1*(n1+1))/2
	u2 := float64(n1*n2) - u1
	u := math.Min(u1, u2)
	res := TestResult{Statistic: u, Sizes: []int{n1, n2}}

	limit := MannWhitneyExactLimit
	if hasTies {
		limit = MannWhitneyTiesExactLimit
	}
	if n1 <= limit && n2 <= limit {
		switch {
		case len(ties) == 1:
			return TestResult{}, ErrSamplesEqual
		case u1 == u2:
			// The whole distribution lies on one side or
			// the other of the observed U.
			res.P = 1
		default:
			res.P = math.Min(1, 2*UDist{N1: n1, N2: n2, T: ties}.CDF(u))
		}
		return res, nil
	}

	N := float64(n1 + n2)
	mu := float64(n1*n2) / 2
	sigma := math.Sqrt(float64(n1*n2) * ((N + 1) - tieCorrection(merged)/(N*(N-1))) / 12)
	if sigma == 0 {
		return TestResult{}, ErrSamplesEqual
	}
	num := u - mu
	num -= sign(num) * 0.5
	res.P = twoSided(distuv.UnitNormal, num/sigma)
	return res, nil
}

// labeledMerge merges sorted x1 and x2. labels[i] is 1 or 2 as
// merged[i] came from x1 or x2.
func labeledMerge(x1, x2 []float64) (merged []float64, labels []byte) {
	merged = make([]float64, 0, len(x1)+len(x2))
	labels = make([]byte, 0, len(x1)+len(x2))
	i, j := 0, 0
	for i < len(x1) || j < len(x2) {
		if j == len(x2) || i < len(x1) && x1[i] < x2[j] {
			merged, labels = append(merged, x1[i]), append(labels, 1)
			i++
		} else {
			merged, labels = append(merged, x2[j]), append(labels, 2)
			j++
		}
	}
	return
}

// tieCorrection computes Σ (t³ - t) over the runs of tied values in
// sorted xs, where t is the run length.
func tieCorrection(xs []float64) float64 {
	t := 0
	for i := 0; i < len(xs); {
		start, v := i, xs[i]
		for ; i < len(xs) && xs[i] == v; i++ {
		}
		run := i - start
		t += run*run*run - run
	}
	return float64(t)
}

func sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
