// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScreen(t *testing.T) {
	ds := table(t, []string{"len_mm", "mass_g"},
		[]float64{40, -1, 42, 39, na},
		[]float64{3800, 3700, 40000, 3900, 4000},
	)
	got := Screen(ds, []string{"len_mm", "mass_g"}, ScreenRules{Measurements: []string{"len_mm", "mass_g"}})
	want := []Issue{
		{Column: "len_mm", Kind: NegativeValue, Count: 1},
		{Column: "mass_g", Kind: ExtremeValue, Count: 1, Threshold: 12000},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if s := got[1].String(); s != "1 extremely high values in mass_g (>12000.0)" {
		t.Errorf("String: got %q", s)
	}

	if got := Screen(ds, []string{"len_mm"}, ScreenRules{ExtremeFactor: 10}); got != nil {
		t.Errorf("want no issues, got %v", got)
	}
}
