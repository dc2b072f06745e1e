// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/palmer-eda/eda/dataset"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// na marks a missing value in test columns.
var na = math.NaN()

// tb is the part of testing.TB that rapid.T also provides.
type tb interface {
	Helper()
	Fatal(args ...any)
}

// table builds a dataset from numeric columns of equal length. NaN
// entries are missing.
func table(t tb, names []string, cols ...[]float64) *dataset.Dataset {
	t.Helper()
	fields := make([]dataset.Field, len(names))
	for i, n := range names {
		fields[i] = dataset.Field{Name: n, Kind: dataset.Numeric}
	}
	recs := make([]dataset.Record, len(cols[0]))
	for r := range recs {
		recs[r] = make(dataset.Record, len(cols))
		for c := range cols {
			recs[r][c] = dataset.Num(cols[c][r])
		}
	}
	ds, err := dataset.New(dataset.NewSchema(fields...), recs)
	if err != nil {
		t.Fatal(err)
	}
	return ds
}

func column(t tb, xs ...float64) *dataset.Dataset {
	t.Helper()
	return table(t, []string{"x"}, xs)
}

func expectSchemaPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if _, ok := recover().(*dataset.SchemaError); !ok {
			t.Errorf("want panic with *dataset.SchemaError")
		}
	}()
	f()
}
