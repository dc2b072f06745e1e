// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"

	"github.com/palmer-eda/eda/dataset"
)

var groupSchema = dataset.NewSchema(
	dataset.Field{Name: "g", Kind: dataset.Categorical},
	dataset.Field{Name: "v", Kind: dataset.Numeric},
)

func TestGroupBy(t *testing.T) {
	ds, err := dataset.FromMaps(groupSchema, []map[string]any{
		{"g": "A", "v": 1},
		{"g": "A", "v": 3},
		{"g": "B", "v": 5},
		{"g": nil, "v": 9},
	})
	if err != nil {
		t.Fatal(err)
	}

	g := GroupBy(ds, "g", []string{"v"})
	if g.Excluded != 1 {
		t.Errorf("want 1 excluded row, got %d", g.Excluded)
	}
	var keys []string
	for _, grp := range g.Groups {
		keys = append(keys, grp.Key)
	}
	if diff := cmp.Diff([]string{"A", "B"}, keys); diff != "" {
		t.Errorf("group order (-want +got):\n%s", diff)
	}

	a, ok := g.Lookup("A")
	if !ok {
		t.Fatal("no group A")
	}
	if diff := cmp.Diff([]int{0, 1}, a.Rows); diff != "" {
		t.Errorf("group A rows (-want +got):\n%s", diff)
	}
	s, ok := a.Stats("v")
	if !ok || s.N != 2 || s.Mean != 2 || s.Min != 1 || s.Max != 3 {
		t.Errorf("group A summary: got %+v", s)
	}
	if _, ok := g.Lookup("C"); ok {
		t.Errorf("unexpected group C")
	}

	samples := Partition(ds, "g", "v")
	want := []Sample{{"A", []float64{1, 3}}, {"B", []float64{5}}}
	if diff := cmp.Diff(want, samples); diff != "" {
		t.Errorf("Partition (-want +got):\n%s", diff)
	}
	if xs, ok := Find(samples, "B"); !ok || len(xs) != 1 {
		t.Errorf("Find(B) = %v, %v", xs, ok)
	}
}

func TestGroupBySchemaMismatch(t *testing.T) {
	ds, _ := dataset.FromMaps(groupSchema, []map[string]any{{"g": "A", "v": 1}})
	expectSchemaPanic(t, func() { GroupBy(ds, "v", []string{"v"}) })
	expectSchemaPanic(t, func() { GroupBy(ds, "g", []string{"g"}) })
	expectSchemaPanic(t, func() { Partition(ds, "h", "v") })
}

func TestGroupByPartition(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 60).Draw(t, "n")
		rows := make([]map[string]any, n)
		for i := range rows {
			k := rapid.IntRange(-1, 4).Draw(t, fmt.Sprint("key", i))
			var key any
			if k >= 0 {
				key = fmt.Sprint("k", k)
			}
			rows[i] = map[string]any{"g": key, "v": float64(i)}
		}
		ds, err := dataset.FromMaps(groupSchema, rows)
		if err != nil {
			t.Fatal(err)
		}

		g := GroupBy(ds, "g", []string{"v"})
		seen := make(map[int]string)
		for _, grp := range g.Groups {
			if len(grp.Rows) == 0 {
				t.Fatalf("empty group %q", grp.Key)
			}
			for _, r := range grp.Rows {
				if prev, dup := seen[r]; dup {
					t.Fatalf("row %d in groups %q and %q", r, prev, grp.Key)
				}
				seen[r] = grp.Key
				if key, ok := ds.String(r, "g"); !ok || key != grp.Key {
					t.Fatalf("row %d has key %q/%v, placed in %q", r, key, ok, grp.Key)
				}
			}
		}
		for r := 0; r < ds.Len(); r++ {
			_, present := ds.String(r, "g")
			if _, grouped := seen[r]; present != grouped {
				t.Fatalf("row %d: present=%v grouped=%v", r, present, grouped)
			}
		}
		if len(seen)+g.Excluded != ds.Len() {
			t.Fatalf("%d grouped + %d excluded != %d rows", len(seen), g.Excluded, ds.Len())
		}
	})
}
