// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"context"

	mstats "github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/palmer-eda/eda/dataset"
)

// MedianConfidence is the confidence level of Summary.MedianLo and
// Summary.MedianHi.
const MedianConfidence = 0.95

// A Summary describes the present values of one numeric column.
//
// N counts only present values. If N is 0 the summary is Empty and
// every other statistic is NaN. Statistics that need more values
// than are available are also NaN: StdDev needs 2, Skewness 3 and
// Kurtosis 4, and the shape statistics need a non-zero spread.
type Summary struct {
	Column string
	N      int

	Mean     float64
	StdDev   float64 // Sample standard deviation (n-1 denominator).
	Variance float64 // Sample variance, StdDev².

	// Mode is the most frequent value. Ties, including a column
	// with no repeated value, go to the smallest candidate.
	Mode float64

	Min, Q1, Median, Q3, Max float64

	// Skewness is the adjusted Fisher-Pearson coefficient G1.
	// Kurtosis is the bias-corrected excess kurtosis G2.
	Skewness, Kurtosis float64

	// MedianLo and MedianHi bound a MedianConfidence confidence
	// interval for the population median. They may be infinite
	// for small samples.
	MedianLo, MedianHi float64
}

// Empty reports whether the column had no present values.
func (s Summary) Empty() bool { return s.N == 0 }

// IQR returns the interquartile range Q3 - Q1.
func (s Summary) IQR() float64 { return s.Q3 - s.Q1 }

// Range returns Max - Min.
func (s Summary) Range() float64 { return s.Max - s.Min }

// Summarize describes the present values of the numeric column of
// ds. It panics with a *dataset.SchemaError if column is not a
// numeric field of ds.
func Summarize(ds *dataset.Dataset, column string) Summary {
	xs, _ := ds.Floats(column)
	return summarize(column, xs)
}

func summarize(column string, xs []float64) Summary {
	s := Summary{Column: column, N: len(xs)}
	if s.N == 0 {
		s.Mean, s.StdDev, s.Variance, s.Mode = nan, nan, nan, nan
		s.Skewness, s.Kurtosis = nan, nan
		s.Min, s.Q1, s.Median, s.Q3, s.Max = nan, nan, nan, nan, nan
		s.MedianLo, s.MedianHi = nan, nan
		return s
	}

	// montanaflynn/stats only fails on empty input, handled above.
	s.Mean, _ = mstats.Mean(xs)
	s.Min, _ = mstats.Min(xs)
	s.Max, _ = mstats.Max(xs)
	s.StdDev, s.Variance = nan, nan
	if s.N >= 2 {
		s.StdDev, _ = mstats.StandardDeviationSample(xs)
		s.Variance, _ = mstats.SampleVariance(xs)
	}
	// Mode returns the modes in increasing order, and none when
	// every value is equally frequent.
	if modes, _ := mstats.Mode(xs); len(modes) > 0 {
		s.Mode = modes[0]
	} else {
		s.Mode = s.Min
	}

	srt := sorted(xs)
	s.Q1 = Quantile(srt, 0.25)
	s.Median = Quantile(srt, 0.5)
	s.Q3 = Quantile(srt, 0.75)
	s.MedianLo, s.MedianHi = MedianCI(srt, MedianConfidence)

	s.Skewness, s.Kurtosis = nan, nan
	if s.Min != s.Max {
		if s.N >= 3 {
			s.Skewness = stat.Skew(xs, nil)
		}
		if s.N >= 4 {
			s.Kurtosis = stat.ExKurtosis(xs, nil)
		}
	}
	return s
}

// Describe summarizes each of columns, computing the summaries
// concurrently. The result is in the order of columns and equals
// calling Summarize on each. It panics with a *dataset.SchemaError
// before starting any work if a column is not numeric.
func Describe(ctx context.Context, ds *dataset.Dataset, columns []string) ([]Summary, error) {
	for _, c := range columns {
		ds.Schema().Column(c, dataset.Numeric)
	}

	out := make([]Summary, len(columns))
	g, ctx := errgroup.WithContext(ctx)
	for i, c := range columns {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = Summarize(ds, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
