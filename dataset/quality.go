// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// A MissingCount is the number of absent values in one field.
type MissingCount struct {
	Field   string
	Missing int
	Percent float64
}

// MissingCounts returns the absent-value count of every field, in
// schema order.
func (ds *Dataset) MissingCounts() []MissingCount {
	out := make([]MissingCount, ds.schema.Len())
	for i, f := range ds.schema.fields {
		n := 0
		for _, rec := range ds.records {
			if !rec[i].Valid {
				n++
			}
		}
		out[i] = MissingCount{Field: f.Name, Missing: n}
		if len(ds.records) > 0 {
			out[i].Percent = 100 * float64(n) / float64(len(ds.records))
		}
	}
	return out
}

// Completeness returns the fraction of cells that are present, or 1
// for a dataset with no cells.
func (ds *Dataset) Completeness() float64 {
	total := len(ds.records) * ds.schema.Len()
	if total == 0 {
		return 1
	}
	missing := 0
	for _, m := range ds.MissingCounts() {
		missing += m.Missing
	}
	return float64(total-missing) / float64(total)
}

// CompleteRows returns the number of records with no absent value.
func (ds *Dataset) CompleteRows() int {
	n := 0
outer:
	for _, rec := range ds.records {
		for _, v := range rec {
			if !v.Valid {
				continue outer
			}
		}
		n++
	}
	return n
}

// Duplicates returns the number of records equal to some earlier
// record in every field. Two absent values are equal.
func (ds *Dataset) Duplicates() int {
	seen := make(map[string]bool, len(ds.records))
	n := 0
	for _, rec := range ds.records {
		k := recordKey(ds.schema, rec)
		if seen[k] {
			n++
		}
		seen[k] = true
	}
	return n
}

func recordKey(s *Schema, rec Record) string {
	var b strings.Builder
	for i, v := range rec {
		switch {
		case !v.Valid:
			b.WriteString("\x00-")
		case s.fields[i].Kind == Numeric:
			b.WriteString("\x00n")
			b.WriteString(strconv.FormatUint(math.Float64bits(v.Num), 16))
		default:
			b.WriteString("\x00s")
			b.WriteString(strconv.Quote(v.Str))
		}
	}
	return b.String()
}

// A Level is one category of a categorical field, or the absent
// category if Missing is set.
type Level struct {
	Name    string
	Missing bool
}

func (l Level) String() string {
	if l.Missing {
		return "<missing>"
	}
	return l.Name
}

// A LevelCount is the number of records at one Level.
type LevelCount struct {
	Level
	N int
}

// ValueCounts returns the number of records at each level of the
// categorical field name, most frequent first. Equal counts keep
// first-seen order. Absent values are counted as their own level
// only if includeMissing is set.
func (ds *Dataset) ValueCounts(name string, includeMissing bool) []LevelCount {
	col := ds.schema.Column(name, Categorical)
	levels := ds.levels(col, includeMissing)
	counts := make([]LevelCount, len(levels.order))
	for i, l := range levels.order {
		counts[i].Level = l
	}
	for _, rec := range ds.records {
		if i, ok := levels.find(rec[col]); ok {
			counts[i].N++
		}
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].N > counts[j].N })
	return counts
}

// A CrossTab counts records by the levels of two categorical fields.
// Counts[i][j] is the number of records at Rows[i] and Cols[j].
type CrossTab struct {
	RowField, ColField string
	Rows, Cols         []Level
	Counts             [][]int
}

// CrossTabulate counts records by (rowField, colField). Levels appear
// in first-seen order. Records absent in either field are dropped
// unless includeMissing is set, in which case absence is its own
// level.
func (ds *Dataset) CrossTabulate(rowField, colField string, includeMissing bool) *CrossTab {
	rc := ds.schema.Column(rowField, Categorical)
	cc := ds.schema.Column(colField, Categorical)
	rl, cl := ds.levels(rc, includeMissing), ds.levels(cc, includeMissing)
	ct := &CrossTab{
		RowField: rowField,
		ColField: colField,
		Rows:     rl.order,
		Cols:     cl.order,
		Counts:   make([][]int, len(rl.order)),
	}
	for i := range ct.Counts {
		ct.Counts[i] = make([]int, len(cl.order))
	}
	for _, rec := range ds.records {
		i, ok1 := rl.find(rec[rc])
		j, ok2 := cl.find(rec[cc])
		if ok1 && ok2 {
			ct.Counts[i][j]++
		}
	}
	return ct
}

type levelIndex struct {
	order   []Level
	byName  map[string]int
	missing int
}

func (li *levelIndex) find(v Value) (int, bool) {
	if !v.Valid {
		return li.missing, li.missing >= 0
	}
	i, ok := li.byName[v.Str]
	return i, ok
}

func (ds *Dataset) levels(col int, includeMissing bool) *levelIndex {
	li := &levelIndex{byName: make(map[string]int), missing: -1}
	for _, rec := range ds.records {
		v := rec[col]
		if !v.Valid {
			if includeMissing && li.missing < 0 {
				li.missing = len(li.order)
				li.order = append(li.order, Level{Missing: true})
			}
			continue
		}
		if _, ok := li.byName[v.Str]; !ok {
			li.byName[v.Str] = len(li.order)
			li.order = append(li.order, Level{Name: v.Str})
		}
	}
	return li
}
