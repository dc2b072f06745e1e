// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

func TestCorrelatePairwise(t *testing.T) {
	names := []string{"a", "b", "c", "d"}
	ds := table(t, names,
		[]float64{1, 2, 3, 4, na},
		[]float64{1, 2, 3, 5, 9},
		[]float64{5, 5, 5, 5, na},
		[]float64{na, 4, 3, 2, 1},
	)
	m := Correlate(ds, names)

	check := func(a, b string, want float64, n int) {
		t.Helper()
		r, ok := m.At(a, b)
		if !ok || !aeq(want, r) {
			t.Errorf("corr(%s,%s): want %v, got %v (ok=%v)", a, b, want, r, ok)
		}
		if got := m.N(a, b); got != n {
			t.Errorf("N(%s,%s): want %d, got %d", a, b, n, got)
		}
	}
	check("a", "b", 0.9827076298239906, 4)
	check("a", "d", -1, 3)
	// Listwise deletion over a, b, d would give -0.98198 on 3 rows.
	check("b", "d", -0.9591663046625439, 4)
	check("a", "a", 1, 4)
	check("b", "b", 1, 5)

	for _, other := range names {
		if r, ok := m.At("c", other); ok {
			t.Errorf("corr(c,%s) with constant c: want undefined, got %v", other, r)
		}
	}
}

func TestCorrelateTooFewRows(t *testing.T) {
	ds := table(t, []string{"a", "b"},
		[]float64{1, na, 3},
		[]float64{na, 2, 4},
	)
	m := Correlate(ds, []string{"a", "b"})
	if r, ok := m.At("a", "b"); ok {
		t.Errorf("one paired row: want undefined, got %v", r)
	}
	if r, ok := m.At("a", "a"); !ok || r != 1 {
		t.Errorf("diagonal: want 1, got %v (ok=%v)", r, ok)
	}
}

func TestCorrelateRanked(t *testing.T) {
	names := []string{"a", "b", "c"}
	ds := table(t, names,
		[]float64{1, 2, 3, 4},
		[]float64{1, 3, 2, 4},
		[]float64{4, 3, 2, 1},
	)
	got := Correlate(ds, names).Ranked()
	if len(got) != 3 {
		t.Fatalf("want 3 pairs, got %v", got)
	}
	if got[0].A != "a" || got[0].B != "c" || !aeq(-1, got[0].R) {
		t.Errorf("strongest pair: want a~c at -1, got %+v", got[0])
	}
	for i := 1; i < len(got); i++ {
		if abs(got[i].R) > abs(got[i-1].R) {
			t.Errorf("not sorted by |r|: %v", got)
		}
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func TestCorrelateSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := rapid.IntRange(1, 4).Draw(t, "k")
		n := rapid.IntRange(0, 20).Draw(t, "n")
		names := make([]string, k)
		cols := make([][]float64, k)
		for i := range cols {
			names[i] = fmt.Sprint("c", i)
			cols[i] = make([]float64, n)
			for j := range cols[i] {
				if rapid.IntRange(0, 5).Draw(t, "missing") == 0 {
					cols[i][j] = na
				} else {
					cols[i][j] = rapid.Float64Range(-100, 100).Draw(t, "x")
				}
			}
		}
		if n == 0 {
			return
		}
		m := Correlate(table(t, names, cols...), names)
		for i := range names {
			for j := range names {
				rij, okij := m.AtIndex(i, j)
				rji, okji := m.AtIndex(j, i)
				if okij != okji || okij && rij != rji {
					t.Fatalf("asymmetric at (%d,%d): %v/%v vs %v/%v", i, j, rij, okij, rji, okji)
				}
				if okij && (rij < -1 || rij > 1) {
					t.Fatalf("r=%v out of range", rij)
				}
			}
			if r, ok := m.AtIndex(i, i); ok && r != 1 {
				t.Fatalf("diagonal %d = %v", i, r)
			}
		}
	})
}
