// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"
)

func TestANOVA(t *testing.T) {
	g1, g2, g3 := []float64{1, 2, 3}, []float64{4, 5, 6}, []float64{7, 8, 9}
	r, err := ANOVA(g1, g2, g3)
	if err != nil {
		t.Fatal(err)
	}
	// SSB = 54 on 2 df, SSW = 6 on 6 df. For F(2, d2) the upper
	// tail is (1 + 2F/d2)^(-d2/2) = 10^-3.
	if !aeq(27, r.Statistic) || !aeq(0.001, r.P) {
		t.Errorf("want F=27 p=0.001, got %+v", r)
	}
	if r.DF1 != 2 || r.DF2 != 6 {
		t.Errorf("want df (2, 6), got (%v, %v)", r.DF1, r.DF2)
	}
	if diff := cmp.Diff([]int{3, 3, 3}, r.Sizes); diff != "" {
		t.Errorf("sizes (-want +got):\n%s", diff)
	}
	if !r.Significant(0.05) || r.Significant(0.0005) {
		t.Errorf("Significant disagrees with p=%v", r.P)
	}

	swapped, err := ANOVA(g3, g1, g2)
	if err != nil {
		t.Fatal(err)
	}
	if swapped.Statistic != r.Statistic || swapped.P != r.P {
		t.Errorf("group order changed the result: %+v vs %+v", r, swapped)
	}
}

func TestANOVAEmptyGroupsIgnored(t *testing.T) {
	r, err := ANOVA(nil, []float64{1, 2, 3}, []float64{}, []float64{4, 5, 6})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{3, 3}, r.Sizes); diff != "" {
		t.Errorf("sizes (-want +got):\n%s", diff)
	}
}

func TestANOVAErrors(t *testing.T) {
	for _, tc := range []struct {
		name   string
		groups [][]float64
		want   error
	}{
		{"no groups", nil, ErrInsufficientGroups},
		{"one group", [][]float64{{1, 2, 3}}, ErrInsufficientGroups},
		{"one non-empty group", [][]float64{{1, 2, 3}, {}}, ErrInsufficientGroups},
		{"singletons", [][]float64{{1}, {2}}, ErrSampleSize},
		{"all equal", [][]float64{{4, 4}, {4, 4, 4}}, ErrSamplesEqual},
	} {
		if _, err := ANOVA(tc.groups...); !errors.Is(err, tc.want) {
			t.Errorf("%s: want %v, got %v", tc.name, tc.want, err)
		}
	}

	r, err := ANOVA([]float64{1, 1}, []float64{2, 2})
	if err != nil || !math.IsInf(r.Statistic, 1) || r.P != 0 {
		t.Errorf("constant groups with distinct means: want F=+Inf p=0, got %+v, %v", r, err)
	}
	// The mean of three 0.1s is not exactly 0.1.
	r, err = ANOVA([]float64{0.1, 0.1, 0.1}, []float64{0.7, 0.7, 0.7})
	if err != nil || !math.IsInf(r.Statistic, 1) || r.P != 0 {
		t.Errorf("inexact constant groups: want F=+Inf p=0, got %+v, %v", r, err)
	}
}

func TestANOVAOrderInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := rapid.IntRange(2, 5).Draw(t, "k")
		groups := make([][]float64, k)
		for i := range groups {
			groups[i] = rapid.SliceOfN(rapid.Float64Range(-50, 50), 2, 12).Draw(t, "group")
		}
		a, errA := ANOVA(groups...)
		rev := make([][]float64, k)
		for i := range groups {
			rev[k-1-i] = groups[i]
		}
		b, errB := ANOVA(rev...)
		if errA != nil || errB != nil {
			if !errors.Is(errB, errA) {
				t.Fatalf("errors differ: %v vs %v", errA, errB)
			}
			return
		}
		if !(a.P >= 0 && a.P <= 1) || a.Statistic < 0 {
			t.Fatalf("bad result %+v", a)
		}
		if math.Abs(a.Statistic-b.Statistic) > 1e-9*math.Max(1, a.Statistic) || math.Abs(a.P-b.P) > 1e-9 {
			t.Fatalf("order changed result: %+v vs %+v", a, b)
		}
	})
}

func TestTTest(t *testing.T) {
	r, err := TTest([]float64{1, 2, 3}, []float64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if r.Statistic != 0 || r.P != 1 {
		t.Errorf("identical samples: want t=0 p=1, got %+v", r)
	}

	// Pooled variance 2 on 2 df; t = -3/sqrt(2). With 2 df the
	// two-sided p-value is 1 - |t|/sqrt(t²+2).
	r, err = TTest([]float64{1, 3}, []float64{4, 6})
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(-3/math.Sqrt2, r.Statistic) || !aeq(1-math.Sqrt(4.5/6.5), r.P) || r.DF1 != 2 {
		t.Errorf("want t=%v p=%v df=2, got %+v", -3/math.Sqrt2, 1-math.Sqrt(4.5/6.5), r)
	}

	// Swapping samples flips the sign only.
	s, _ := TTest([]float64{4, 6}, []float64{1, 3})
	if s.Statistic != -r.Statistic || s.P != r.P {
		t.Errorf("swap: got %+v vs %+v", s, r)
	}

	// One df: the t distribution is Cauchy.
	r, err = TTest([]float64{0, 2}, []float64{4})
	if err != nil {
		t.Fatal(err)
	}
	if want := 1 - 2/math.Pi*math.Atan(math.Abs(r.Statistic)); !aeq(want, r.P) {
		t.Errorf("1 df: want p=%v, got %+v", want, r)
	}
}

func TestTTestDegenerate(t *testing.T) {
	if _, err := TTest(nil, []float64{1, 2}); !errors.Is(err, ErrInsufficientGroups) {
		t.Errorf("empty sample: got %v", err)
	}
	if _, err := TTest([]float64{1}, []float64{2}); !errors.Is(err, ErrSampleSize) {
		t.Errorf("two values: got %v", err)
	}
	r, err := TTest([]float64{2, 2}, []float64{5, 5, 5})
	if err != nil || !math.IsInf(r.Statistic, -1) || r.P != 0 {
		t.Errorf("constant samples, distinct means: got %+v, %v", r, err)
	}
	r, err = TTest([]float64{2, 2}, []float64{2})
	if err != nil || r.Statistic != 0 || r.P != 1 {
		t.Errorf("constant samples, equal means: got %+v, %v", r, err)
	}
	r, err = TTest([]float64{0.7, 0.7, 0.7}, []float64{0.1, 0.1, 0.1})
	if err != nil || !math.IsInf(r.Statistic, 1) || r.P != 0 {
		t.Errorf("inexact constant samples: got %+v, %v", r, err)
	}
}

func TestRankSumTest(t *testing.T) {
	check := func(a, b []float64, wantU, wantP float64) {
		t.Helper()
		r, err := RankSumTest(a, b)
		if err != nil {
			t.Fatal(err)
		}
		if !aeq(wantU, r.Statistic) || !aeq(wantP, r.P) {
			t.Errorf("want U=%v p=%v, got %+v", wantU, wantP, r)
		}
	}
	s1 := []float64{2, 1, 3, 5}
	s2 := []float64{12, 11, 13, 15}
	// Exact distribution, no ties: 2/C(8,4).
	check(s1, s2, 0, 2.0/70)
	check(s2, s1, 0, 2.0/70)
	check([]float64{1, 2, 3}, []float64{4, 5, 6}, 0, 0.1)
	// Exact distribution with ties.
	check(s1, []float64{2, 2, 2, 2}, 6, 0.7142857142857143)
	check([]float64{1, 2, 2, 3}, []float64{2, 3, 3, 4, 5}, 3, 0.15873015873015872)
	// Ties beyond MannWhitneyTiesExactLimit: normal approximation.
	check([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		[]float64{6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, 12.5, 0.005075392315273926)

	if _, err := RankSumTest([]float64{2, 2}, []float64{2, 2, 2}); !errors.Is(err, ErrSamplesEqual) {
		t.Errorf("all equal: got %v", err)
	}

	defer func(limit int) { MannWhitneyExactLimit = limit }(MannWhitneyExactLimit)
	MannWhitneyExactLimit = 0
	check(s1, s2, 0, 0.03038282197657751)
	check([]float64{1, 2, 3}, []float64{4, 5, 6}, 0, 0.0808555983700523)
	if _, err := RankSumTest(nil, s1); !errors.Is(err, ErrInsufficientGroups) {
		t.Errorf("empty: got %v", err)
	}
}
