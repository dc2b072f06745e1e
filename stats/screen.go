// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"

	"github.com/palmer-eda/eda/dataset"
)

// DefaultExtremeFactor is the multiple of Q3 above which Screen
// reports a value as implausibly large.
const DefaultExtremeFactor = 3

// An IssueKind classifies a data-quality finding.
type IssueKind int

const (
	// NegativeValue is a negative value in a column that
	// measures a physical size.
	NegativeValue IssueKind = iota
	// ExtremeValue is a value above ExtremeFactor times the
	// column's Q3, a likely data-entry error.
	ExtremeValue
)

func (k IssueKind) String() string {
	switch k {
	case NegativeValue:
		return "negative"
	case ExtremeValue:
		return "extreme"
	}
	return fmt.Sprintf("IssueKind(%d)", int(k))
}

// An Issue is one data-quality finding on a column.
type Issue struct {
	Column    string
	Kind      IssueKind
	Count     int
	Threshold float64
}

func (i Issue) String() string {
	switch i.Kind {
	case NegativeValue:
		return fmt.Sprintf("%d negative values in %s", i.Count, i.Column)
	default:
		return fmt.Sprintf("%d extremely high values in %s (>%.1f)", i.Count, i.Column, i.Threshold)
	}
}

// ScreenRules configures Screen.
type ScreenRules struct {
	// Measurements are the columns that may not be negative.
	Measurements []string

	// ExtremeFactor is the multiple of Q3 above which a value is
	// flagged. Zero means DefaultExtremeFactor.
	ExtremeFactor float64
}

// Screen checks columns for implausible values: negatives in
// rules.Measurements and values above rules.ExtremeFactor × Q3 in
// any of columns. It returns one Issue per finding, in column order,
// and nil for clean data.
func Screen(ds *dataset.Dataset, columns []string, rules ScreenRules) []Issue {
	factor := rules.ExtremeFactor
	if factor == 0 {
		factor = DefaultExtremeFactor
	}
	var issues []Issue
	for _, c := range rules.Measurements {
		xs, _ := ds.Floats(c)
		n := 0
		for _, x := range xs {
			if x < 0 {
				n++
			}
		}
		if n > 0 {
			issues = append(issues, Issue{Column: c, Kind: NegativeValue, Count: n})
		}
	}
	for _, c := range columns {
		xs, _ := ds.Floats(c)
		if len(xs) == 0 {
			continue
		}
		limit := factor * Quantile(sorted(xs), 0.75)
		n := 0
		for _, x := range xs {
			if x > limit {
				n++
			}
		}
		if n > 0 {
			issues = append(issues, Issue{Column: c, Kind: ExtremeValue, Count: n, Threshold: limit})
		}
	}
	return issues
}
