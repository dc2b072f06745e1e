// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "github.com/palmer-eda/eda/dataset"

// Grouped holds per-group summaries of numeric columns.
type Grouped struct {
	// Field is the categorical field the rows were grouped by.
	Field string

	// Columns are the summarized numeric columns, in the order
	// of each Group's Summaries.
	Columns []string

	// Groups are the distinct present values of Field in the
	// order they first occur. Every group has at least one row.
	Groups []Group

	// Excluded is the number of rows whose Field was absent.
	// These rows belong to no group.
	Excluded int
}

// A Group is the set of rows sharing one value of the grouping field.
type Group struct {
	Key       string
	Rows      []int
	Summaries []Summary
}

// Lookup returns the group with the given key.
func (g *Grouped) Lookup(key string) (*Group, bool) {
	for i := range g.Groups {
		if g.Groups[i].Key == key {
			return &g.Groups[i], true
		}
	}
	return nil, false
}

// Stats returns the group's summary of column.
func (g *Group) Stats(column string) (Summary, bool) {
	for _, s := range g.Summaries {
		if s.Column == column {
			return s, true
		}
	}
	return Summary{}, false
}

// GroupBy partitions the rows of ds by the categorical groupField
// and summarizes each numeric column within each group. Rows with an
// absent groupField are left out of every group and counted in
// Excluded. It panics with a *dataset.SchemaError on an unknown or
// mistyped field.
func GroupBy(ds *dataset.Dataset, groupField string, columns []string) *Grouped {
	for _, c := range columns {
		ds.Schema().Column(c, dataset.Numeric)
	}
	keys, rows, excluded := groupRows(ds, groupField)
	g := &Grouped{
		Field:    groupField,
		Columns:  append([]string(nil), columns...),
		Groups:   make([]Group, len(keys)),
		Excluded: excluded,
	}
	for i, k := range keys {
		grp := Group{Key: k, Rows: rows[i], Summaries: make([]Summary, len(columns))}
		for j, c := range columns {
			grp.Summaries[j] = summarize(c, ds.FloatsAt(c, rows[i]))
		}
		g.Groups[i] = grp
	}
	return g
}

// A Sample is the present values of one column within one group.
type Sample struct {
	Key string
	Xs  []float64
}

// Partition returns the present values of column for each group of
// groupField, with the same ordering and exclusion rules as GroupBy.
// A group may have an empty sample if column is absent in all of its
// rows.
func Partition(ds *dataset.Dataset, groupField, column string) []Sample {
	ds.Schema().Column(column, dataset.Numeric)
	keys, rows, _ := groupRows(ds, groupField)
	out := make([]Sample, len(keys))
	for i, k := range keys {
		out[i] = Sample{Key: k, Xs: ds.FloatsAt(column, rows[i])}
	}
	return out
}

// Values returns the Xs of the samples, in order.
func Values(samples []Sample) [][]float64 {
	out := make([][]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Xs
	}
	return out
}

// Find returns the sample with the given key.
func Find(samples []Sample, key string) ([]float64, bool) {
	for _, s := range samples {
		if s.Key == key {
			return s.Xs, true
		}
	}
	return nil, false
}

func groupRows(ds *dataset.Dataset, field string) (keys []string, rows [][]int, excluded int) {
	col := ds.Schema().Column(field, dataset.Categorical)
	index := make(map[string]int)
	for r := 0; r < ds.Len(); r++ {
		v := ds.Value(r, col)
		if !v.Valid {
			excluded++
			continue
		}
		i, ok := index[v.Str]
		if !ok {
			i = len(keys)
			index[v.Str] = i
			keys = append(keys, v.Str)
			rows = append(rows, nil)
		}
		rows[i] = append(rows[i], r)
	}
	return
}
