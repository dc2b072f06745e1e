// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// A TestResult is the outcome of a hypothesis test.
type TestResult struct {
	// Statistic is the test statistic: F for ANOVA, t for the
	// t-test and U for the rank-sum test.
	Statistic float64

	// P is the p-value. For the t-test and rank-sum test it is
	// two-sided.
	P float64

	// DF1 and DF2 are the degrees of freedom of the reference
	// distribution. The t-test uses only DF1; the rank-sum
	// test uses neither.
	DF1, DF2 float64

	// Sizes are the sizes of the samples the test used.
	Sizes []int
}

// Significant reports whether P is below alpha.
func (r TestResult) Significant(alpha float64) bool {
	return r.P < alpha
}

// ANOVA performs a one-way analysis of variance of the null
// hypothesis that every group has the same population mean. The
// statistic is F = (SSB/(k-1)) / (SSW/(N-k)) and P is its upper tail
// under the F(k-1, N-k) distribution.
//
// Empty groups are ignored. ANOVA fails with ErrInsufficientGroups if
// fewer than two groups have observations, ErrSampleSize if there are
// no within-group degrees of freedom, and ErrSamplesEqual if every
// observation is equal. If the groups are internally constant but
// have different means, F is +Inf and P is 0.
//
// The result does not depend on the order of groups.
func ANOVA(groups ...[]float64) (TestResult, error) {
	var used [][]float64
	var sizes []int
	total := 0
	for _, g := range groups {
		if len(g) > 0 {
			used = append(used, g)
			sizes = append(sizes, len(g))
			total += len(g)
		}
	}
	k := len(used)
	if k < 2 {
		return TestResult{}, ErrInsufficientGroups
	}
	dfb, dfw := float64(k-1), float64(total-k)
	if dfw < 1 {
		return TestResult{}, ErrSampleSize
	}

	grand := 0.0
	for _, g := range used {
		grand += floats.Sum(g)
	}
	grand /= float64(total)

	// Test for constant groups directly. A floating-point mean of
	// identical values need not equal them, leaving a spurious
	// within-group spread.
	constant, sameValue := true, true
	for _, g := range used {
		constant = constant && floats.Min(g) == floats.Max(g)
		sameValue = sameValue && g[0] == used[0][0]
	}

	var ssb, ssw float64
	for _, g := range used {
		m := stat.Mean(g, nil)
		ssb += float64(len(g)) * (m - grand) * (m - grand)
		for _, x := range g {
			ssw += (x - m) * (x - m)
		}
	}

	res := TestResult{DF1: dfb, DF2: dfw, Sizes: sizes}
	switch {
	case constant && sameValue:
		return TestResult{}, ErrSamplesEqual
	case constant:
		res.Statistic, res.P = inf, 0
	default:
		res.Statistic = (ssb / dfb) / (ssw / dfw)
		res.P = upperTail(distuv.F{D1: dfb, D2: dfw}, res.Statistic)
	}
	return res, nil
}

// TTest performs Student's two-sample t-test of the null hypothesis
// that a and b have the same population mean, assuming equal
// variances. The variance is pooled from both samples, the statistic
// has n1+n2-2 degrees of freedom and P is two-sided.
//
// TTest fails with ErrInsufficientGroups if either sample is empty
// and ErrSampleSize if the samples have fewer than three values
// together. If both samples are constant, t is 0 with P = 1 when the
// means agree, and ±Inf with P = 0 otherwise.
func TTest(a, b []float64) (TestResult, error) {
	n1, n2 := len(a), len(b)
	if n1 == 0 || n2 == 0 {
		return TestResult{}, ErrInsufficientGroups
	}
	df := float64(n1 + n2 - 2)
	if df < 1 {
		return TestResult{}, ErrSampleSize
	}

	m1, m2 := stat.Mean(a, nil), stat.Mean(b, nil)
	pooled := (sumSquares(a, m1) + sumSquares(b, m2)) / df
	se := math.Sqrt(pooled * (1/float64(n1) + 1/float64(n2)))

	res := TestResult{DF1: df, Sizes: []int{n1, n2}}
	diff := m1 - m2
	constant := floats.Min(a) == floats.Max(a) && floats.Min(b) == floats.Max(b)
	switch {
	case constant && a[0] == b[0]:
		res.Statistic, res.P = 0, 1
	case constant:
		res.Statistic, res.P = math.Copysign(inf, a[0]-b[0]), 0
	default:
		res.Statistic = diff / se
		res.P = twoSided(studentsT(df), res.Statistic)
	}
	return res, nil
}

func sumSquares(xs []float64, mean float64) float64 {
	s := 0.0
	for _, x := range xs {
		s += (x - mean) * (x - mean)
	}
	return s
}
