// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats computes descriptive statistics, correlations,
// outlier sets and hypothesis tests over a dataset.Dataset.
//
// Every function is a pure computation over its arguments. Nothing
// is cached and nothing is written back to the dataset.
//
// Statistics that cannot be computed because there is too little
// data are reported in band as NaN, alongside an explicit flag such
// as Summary.Empty or the ok result of CorrelationMatrix.At. Asking
// for a column that the dataset's schema does not declare is a
// programming error and panics with a *dataset.SchemaError.
package stats // import "github.com/palmer-eda/eda/stats"

import (
	"math"

	"github.com/pkg/errors"
)

var inf = math.Inf(1)
var nan = math.NaN()

var (
	// ErrInsufficientGroups is returned by a hypothesis test
	// given fewer than two non-empty samples.
	ErrInsufficientGroups = errors.New("stats: fewer than two non-empty groups")

	// ErrSampleSize is returned when the samples are non-empty
	// but leave no degrees of freedom for the test.
	ErrSampleSize = errors.New("stats: sample too small")

	// ErrSamplesEqual is returned when every observation is the
	// same value, so the test statistic is undefined.
	ErrSamplesEqual = errors.New("stats: all samples are equal")
)

// Defined reports whether x holds a computed statistic.
func Defined(x float64) bool {
	return !math.IsNaN(x)
}
