// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "gonum.org/v1/gonum/stat/distuv"

// A refDist is a continuous reference distribution for a test
// statistic. The gonum distributions used here (distuv.F,
// distuv.StudentsT, distuv.Normal) all satisfy it.
type refDist interface {
	// CDF returns the probability that a draw is <= x.
	CDF(x float64) float64

	// Survival returns the probability that a draw is > x.
	Survival(x float64) float64
}

var (
	_ refDist = distuv.F{}
	_ refDist = distuv.StudentsT{}
	_ refDist = distuv.Normal{}
)

// upperTail returns the one-sided p-value of statistic x.
func upperTail(d refDist, x float64) float64 {
	return d.Survival(x)
}

// twoSided returns the two-sided p-value of statistic x under a
// distribution symmetric about zero.
func twoSided(d refDist, x float64) float64 {
	if x < 0 {
		x = -x
	}
	p := 2 * d.Survival(x)
	if p > 1 {
		p = 1
	}
	return p
}

// studentsT returns the standard Student's t-distribution with df
// degrees of freedom.
func studentsT(df float64) distuv.StudentsT {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
}
