// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// A UDist is the discrete probability distribution of the
// Mann-Whitney U statistic for a pair of samples of sizes N1 and N2.
//
// Without ties it follows Mann, Henry B.; Whitney, Donald R. (1947).
// "On a Test of Whether one of Two Random Variables is Stochastically
// Larger than the Other". Annals of Mathematical Statistics 18 (1):
// 50–60. With ties it uses the graphical method of Klotz, J. H.
// (1966). "The Wilcoxon, Ties, and the Computer". Journal of the
// American Statistical Association 61 (315): 772-787.
type UDist struct {
	N1, N2 int

	// T is the number of tied values at each distinct rank of
	// the merged samples. A nil T means there are no ties. If T
	// is non-nil, its sum must be N1+N2.
	T []int
}

// hasTies reports whether d has any tied values.
func (d UDist) hasTies() bool {
	for _, t := range d.T {
		if t > 1 {
			return true
		}
	}
	return false
}

// p returns p_{N1,N2}(u) of Mann and Whitney for u from 0 through U.
// It runs in Θ(N1·N2·U) time and does not handle ties.
func (d UDist) p(U int) []float64 {
	// Dynamic programming over the recurrence
	//
	//   p_{n,m}(U) = (n p_{n-1,m}(U-m) + m p_{n,m-1}(U)) / (n+m)
	//   p_{n,m}(U) = 0 if U < 0
	//   p_{0,m}(U) = p_{n,0}(U) = [U = 0]
	//
	// p_{n,m} = p_{m,n}, so only n <= m is built, one row of m
	// at a time. Each U slice depends only on the same and
	// smaller U, so it is overwritten in place from the top.
	N, M := d.N1, d.N2
	if N > M {
		N, M = M, N
	}

	memo := make([][]float64, N+1)
	for n := range memo {
		memo[n] = make([]float64, U+1)
	}

	for m := 0; m <= M; m++ {
		memo[0][0] = 1

		nlim := N
		if m < nlim {
			nlim = m
		}
		for n := 1; n <= nlim; n++ {
			lp := memo[n-1] // p_{n-1,m}
			var rp []float64
			if n <= m-1 {
				rp = memo[n] // p_{n,m-1}
			} else {
				rp = memo[m-1] // p_{m-1,n}, m == n
			}

			ulim := n * m
			if U < ulim {
				ulim = U
			}

			out := memo[n]
			nplusm := float64(n + m)
			for u := ulim; u >= 0; u-- {
				l := 0.0
				if u-m >= 0 {
					l = float64(n) * lp[u-m]
				}
				out[u] = (l + float64(m)*rp[u]) / nplusm
			}
		}
	}
	return memo[N]
}

// permCount returns the number of arrangements of the samples under
// the tie vector d.T whose statistic 2U is below (cmp < 0), equal to
// (cmp == 0) or above (cmp > 0) twoUthresh, inclusive. It enumerates
// every split of each tie group, so it is exponential in len(d.T).
func (d UDist) permCount(twoUthresh int, cmp int) (count float64) {
	// u[i] is how many of tie group i belong to the first sample.
	u := make([]int, len(d.T))
	u[len(u)-1] = -1
	for {
		u[len(u)-1]++
		for i := len(u) - 1; i >= 0 && u[i] > d.T[i]; i-- {
			if i == 0 {
				return
			}
			u[i-1]++
			u[i] = 0
		}

		total := 0
		for _, ui := range u {
			total += ui
		}
		if total != d.N1 {
			continue
		}

		twoU, vsum := 0, 0
		for i, ui := range u {
			vi := d.T[i] - ui
			twoU += 2*vsum*ui + ui*vi
			vsum += vi
		}

		if cmp < 0 && twoU > twoUthresh ||
			cmp == 0 && twoU != twoUthresh ||
			cmp > 0 && twoU < twoUthresh {
			continue
		}

		prod := 1
		for i, ui := range u {
			prod *= combin.Binomial(d.T[i], ui)
		}
		count += float64(prod)
	}
}

// arrangements returns the number of ways to choose the first sample
// from the merged samples.
func (d UDist) arrangements() float64 {
	return float64(combin.Binomial(d.N1+d.N2, d.N1))
}

// PMF returns the probability that the statistic equals U.
func (d UDist) PMF(U float64) float64 {
	if U < 0 || U >= 0.5+float64(d.N1*d.N2) {
		return 0
	}
	if d.hasTies() {
		return d.permCount(int(2*U), 0) / d.arrangements()
	}
	// Without ties U is integral.
	ui := int(math.Floor(U))
	return d.p(ui)[ui]
}

// CDF returns the probability that the statistic is at most U.
func (d UDist) CDF(U float64) float64 {
	if U < 0 {
		return 0
	} else if U >= float64(d.N1*d.N2) {
		return 1
	}
	if d.hasTies() {
		return d.permCount(int(2*U), -1) / d.arrangements()
	}

	ui := int(math.Floor(U))
	// The distribution is symmetric about N1·N2/2; sum the
	// smaller tail.
	flip := ui >= (d.N1*d.N2+1)/2
	if flip {
		ui = d.N1*d.N2 - ui - 1
	}
	p := 0.0
	for _, pdf := range d.p(ui)[:ui+1] {
		p += pdf
	}
	if flip {
		p = 1 - p
	}
	return p
}

// Step returns the spacing of the support of d.
func (d UDist) Step() float64 {
	return 0.5
}

// Bounds returns the smallest and largest values of the statistic.
func (d UDist) Bounds() (float64, float64) {
	return 0, float64(d.N1 * d.N2)
}
