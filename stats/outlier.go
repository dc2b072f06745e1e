// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "github.com/palmer-eda/eda/dataset"

// FenceFactor scales the IQR to place the outlier fences.
const FenceFactor = 1.5

// An OutlierSet is the result of IQR outlier detection on one column.
type OutlierSet struct {
	Column string

	// N is the number of present values examined.
	N int

	Q1, Q3 float64

	// Lower and Upper are the fences Q1 - 1.5 IQR and
	// Q3 + 1.5 IQR. Values strictly outside [Lower, Upper] are
	// outliers. When every value is equal the fences collapse to
	// that value.
	Lower, Upper float64

	// Outliers are in row order.
	Outliers []Outlier
}

// An Outlier is a value outside the fences and the row it came from.
type Outlier struct {
	Row   int
	Value float64
}

// Empty reports whether the column had no present values, in which
// case the quartiles and fences are NaN.
func (o OutlierSet) Empty() bool { return o.N == 0 }

// IQR returns the interquartile range.
func (o OutlierSet) IQR() float64 { return o.Q3 - o.Q1 }

// DetectOutliers finds the present values of column lying outside
// its IQR fences. Quartiles follow the same rule as Summarize. It
// panics with a *dataset.SchemaError if column is not numeric.
func DetectOutliers(ds *dataset.Dataset, column string) OutlierSet {
	xs, rows := ds.Floats(column)
	o := OutlierSet{Column: column, N: len(xs)}
	if o.N == 0 {
		o.Q1, o.Q3, o.Lower, o.Upper = nan, nan, nan, nan
		return o
	}
	srt := sorted(xs)
	o.Q1, o.Q3 = Quantile(srt, 0.25), Quantile(srt, 0.75)
	iqr := o.Q3 - o.Q1
	o.Lower, o.Upper = o.Q1-FenceFactor*iqr, o.Q3+FenceFactor*iqr
	for i, x := range xs {
		if x < o.Lower || x > o.Upper {
			o.Outliers = append(o.Outliers, Outlier{Row: rows[i], Value: x})
		}
	}
	return o
}
