// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/palmer-eda/eda/dataset"
)

// A CorrelationMatrix holds the Pearson correlation of every pair of
// a set of numeric columns.
//
// Each pair is computed over the rows where both columns are present
// (pairwise-complete observations), so different cells may rest on
// different rows. A cell is undefined if fewer than two rows pair up
// or either column is constant over those rows. The diagonal is
// exactly 1 for every column with a non-zero spread.
type CorrelationMatrix struct {
	columns []string
	r       *mat.SymDense
	ok      []bool
	n       []int
}

// Correlate computes the correlation matrix of columns. It panics
// with a *dataset.SchemaError if any column is not numeric.
func Correlate(ds *dataset.Dataset, columns []string) *CorrelationMatrix {
	k := len(columns)
	m := &CorrelationMatrix{
		columns: append([]string(nil), columns...),
		ok:      make([]bool, k*k),
		n:       make([]int, k*k),
	}
	if k == 0 {
		return m
	}
	m.r = mat.NewSymDense(k, nil)

	cols := make([][]dataset.Value, k)
	for i, c := range columns {
		j := ds.Schema().Column(c, dataset.Numeric)
		cols[i] = make([]dataset.Value, ds.Len())
		for row := range cols[i] {
			cols[i][row] = ds.Value(row, j)
		}
	}

	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			x, y := pairwise(cols[i], cols[j])
			r, ok := pearson(x, y)
			if i == j && ok {
				r = 1
			}
			m.set(i, j, r, ok, len(x))
		}
	}
	return m
}

func (m *CorrelationMatrix) set(i, j int, r float64, ok bool, n int) {
	k := len(m.columns)
	if !ok {
		r = nan
	}
	m.r.SetSym(i, j, r)
	m.ok[i*k+j], m.ok[j*k+i] = ok, ok
	m.n[i*k+j], m.n[j*k+i] = n, n
}

// pairwise returns the values of a and b at rows where both are
// present.
func pairwise(a, b []dataset.Value) (x, y []float64) {
	for i := range a {
		if a[i].Valid && b[i].Valid {
			x = append(x, a[i].Num)
			y = append(y, b[i].Num)
		}
	}
	return
}

func pearson(x, y []float64) (float64, bool) {
	if len(x) < 2 {
		return nan, false
	}
	// Test for constant columns directly. A floating-point
	// variance of identical values need not come out exactly 0.
	if floats.Min(x) == floats.Max(x) || floats.Min(y) == floats.Max(y) {
		return nan, false
	}
	r := stat.Correlation(x, y, nil)
	return math.Max(-1, math.Min(1, r)), true
}

// Columns returns the columns of m in order.
func (m *CorrelationMatrix) Columns() []string {
	return append([]string(nil), m.columns...)
}

func (m *CorrelationMatrix) index(name string) int {
	for i, c := range m.columns {
		if c == name {
			return i
		}
	}
	panic("stats: column " + name + " not in correlation matrix")
}

// At returns the correlation of columns a and b and whether it is
// defined. It panics if either column was not correlated.
func (m *CorrelationMatrix) At(a, b string) (float64, bool) {
	return m.AtIndex(m.index(a), m.index(b))
}

// AtIndex is like At but takes column positions.
func (m *CorrelationMatrix) AtIndex(i, j int) (float64, bool) {
	if !m.ok[i*len(m.columns)+j] {
		return nan, false
	}
	return m.r.At(i, j), true
}

// N returns the number of rows on which the correlation of a and b
// was computed.
func (m *CorrelationMatrix) N(a, b string) int {
	return m.n[m.index(a)*len(m.columns)+m.index(b)]
}

// A Pair is one off-diagonal cell of a CorrelationMatrix.
type Pair struct {
	A, B string
	R    float64
	N    int
}

// Ranked returns the defined off-diagonal correlations, strongest
// (by absolute value) first. Ties keep matrix order.
func (m *CorrelationMatrix) Ranked() []Pair {
	k := len(m.columns)
	var pairs []Pair
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if r, ok := m.AtIndex(i, j); ok {
				pairs = append(pairs, Pair{m.columns[i], m.columns[j], r, m.n[i*k+j]})
			}
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return math.Abs(pairs[i].R) > math.Abs(pairs[j].R)
	})
	return pairs
}
