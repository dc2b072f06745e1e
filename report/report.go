// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report runs the full exploratory analysis of a dataset and
// renders the results as JSON, Markdown or HTML.
package report

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/palmer-eda/eda/dataset"
	"github.com/palmer-eda/eda/load"
	"github.com/palmer-eda/eda/stats"
)

// A Plan names the fields an analysis looks at.
type Plan struct {
	// Measurements are the numeric columns to describe, correlate
	// and test.
	Measurements []string

	// GroupField is compared across all its levels with ANOVA.
	GroupField string

	// SexField and SexLevels pick the two groups of the
	// dimorphism comparisons.
	SexField  string
	SexLevels [2]string

	// Categorical fields get value counts; CrossTabs pairs of
	// categorical fields get contingency tables.
	Categorical []string
	CrossTabs   [][2]string

	// Alpha is the significance level reported with each test.
	Alpha float64
}

// PenguinPlan is the analysis of the Palmer penguins dataset.
func PenguinPlan() Plan {
	return Plan{
		Measurements: load.Measurements,
		GroupField:   load.Species,
		SexField:     load.Sex,
		SexLevels:    [2]string{"MALE", "FEMALE"},
		Categorical:  []string{load.Species, load.Island, load.Sex},
		CrossTabs:    [][2]string{{load.Island, load.Species}, {load.Species, load.Sex}},
		Alpha:        0.05,
	}
}

// Check returns a *dataset.SchemaError if the plan names a field the
// schema does not declare with the right kind.
func (p Plan) Check(s *dataset.Schema) error {
	if err := s.Check(dataset.Numeric, p.Measurements...); err != nil {
		return err
	}
	cats := append([]string{p.GroupField, p.SexField}, p.Categorical...)
	for _, ct := range p.CrossTabs {
		cats = append(cats, ct[0], ct[1])
	}
	return s.Check(dataset.Categorical, cats...)
}

// A Report is the complete result of an analysis.
type Report struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Generated time.Time `json:"generated"`
	Alpha     float64   `json:"alpha"`

	Overview    Overview     `json:"overview"`
	Columns     []Summary    `json:"columns"`
	Groupings   []Grouping   `json:"groupings"`
	Outliers    []OutlierSet `json:"outliers"`
	Correlation Correlation  `json:"correlation"`
	ANOVA       []Test       `json:"anova"`
	Dimorphism  []Comparison `json:"dimorphism"`
	Issues      []string     `json:"issues"`
}

// Overview describes the shape and quality of the dataset.
type Overview struct {
	Rows         int        `json:"rows"`
	Fields       int        `json:"fields"`
	CompleteRows int        `json:"complete_rows"`
	Completeness float64    `json:"completeness"`
	Duplicates   int        `json:"duplicates"`
	Missing      []Missing  `json:"missing"`
	Levels       []Levels   `json:"levels"`
	CrossTabs    []CrossTab `json:"cross_tabs"`
}

// Missing counts the absent values of one field.
type Missing struct {
	Field   string  `json:"field"`
	Missing int     `json:"missing"`
	Percent float64 `json:"percent"`
}

// Levels are the value counts of one categorical field.
type Levels struct {
	Field  string       `json:"field"`
	Counts []LevelCount `json:"counts"`
}

// A LevelCount is the number of rows at one level.
type LevelCount struct {
	Level string `json:"level"`
	N     int    `json:"n"`
}

// A CrossTab counts rows by two categorical fields.
type CrossTab struct {
	Rows   string   `json:"rows"`
	Cols   string   `json:"cols"`
	Row    []string `json:"row_levels"`
	Col    []string `json:"col_levels"`
	Counts [][]int  `json:"counts"`
}

// Summary is the JSON form of stats.Summary.
type Summary struct {
	Column   string `json:"column"`
	N        int    `json:"n"`
	Mean     Num    `json:"mean"`
	StdDev   Num    `json:"std"`
	Variance Num    `json:"variance"`
	Mode     Num    `json:"mode"`
	Min      Num    `json:"min"`
	Q1       Num    `json:"q1"`
	Median   Num    `json:"median"`
	Q3       Num    `json:"q3"`
	Max      Num    `json:"max"`
	IQR      Num    `json:"iqr"`
	Range    Num    `json:"range"`
	Skewness Num    `json:"skewness"`
	Kurtosis Num    `json:"kurtosis"`
	MedianLo Num    `json:"median_ci_lo"`
	MedianHi Num    `json:"median_ci_hi"`
}

// A Grouping is the JSON form of stats.Grouped.
type Grouping struct {
	Field    string  `json:"field"`
	Excluded int     `json:"excluded"`
	Groups   []Group `json:"groups"`
}

// A Group is one level of a Grouping.
type Group struct {
	Key     string    `json:"key"`
	Size    int       `json:"size"`
	Columns []Summary `json:"columns"`
}

// OutlierSet is the JSON form of stats.OutlierSet.
type OutlierSet struct {
	Column   string    `json:"column"`
	N        int       `json:"n"`
	Lower    Num       `json:"lower"`
	Upper    Num       `json:"upper"`
	Outliers []Outlier `json:"outliers"`
}

// An Outlier is one value outside the fences.
type Outlier struct {
	Row   int     `json:"row"`
	Value float64 `json:"value"`
}

// Correlation is the JSON form of a stats.CorrelationMatrix. Matrix
// cells are null where the correlation is undefined.
type Correlation struct {
	Columns []string `json:"columns"`
	Matrix  [][]Num  `json:"matrix"`
	Ranked  []Pair   `json:"ranked"`
}

// A Pair is one defined off-diagonal correlation.
type Pair struct {
	A string  `json:"a"`
	B string  `json:"b"`
	R float64 `json:"r"`
	N int     `json:"n"`
}

// A Test is the outcome of one hypothesis test on one column.
type Test struct {
	Column      string `json:"column"`
	Method      string `json:"method"`
	Statistic   Num    `json:"statistic"`
	P           Num    `json:"p"`
	DF1         Num    `json:"df1,omitempty"`
	DF2         Num    `json:"df2,omitempty"`
	Sizes       []int  `json:"sizes"`
	Significant bool   `json:"significant"`

	// Error is set instead of the statistics when the test could
	// not be run, for example for lack of groups.
	Error string `json:"error,omitempty"`
}

// A Comparison is the two-group dimorphism analysis of one column.
type Comparison struct {
	Column  string `json:"column"`
	A       string `json:"a"`
	B       string `json:"b"`
	TTest   Test   `json:"t_test"`
	RankSum Test   `json:"rank_sum"`
}

// Build runs every analysis in plan over ds. source names the data
// for the report header. Build fails only if plan does not fit the
// dataset's schema; tests that cannot be run are recorded in the
// report.
func Build(ctx context.Context, ds *dataset.Dataset, plan Plan, source string) (*Report, error) {
	if err := plan.Check(ds.Schema()); err != nil {
		return nil, errors.Wrap(err, "analysis plan")
	}

	r := &Report{
		ID:        uuid.NewString(),
		Source:    source,
		Generated: time.Now().UTC(),
		Alpha:     plan.Alpha,
		Overview:  overview(ds, plan),
		Issues:    []string{},
	}

	sums, err := stats.Describe(ctx, ds, plan.Measurements)
	if err != nil {
		return nil, err
	}
	for _, s := range sums {
		r.Columns = append(r.Columns, FromSummary(s))
	}

	for _, field := range []string{plan.GroupField, plan.SexField} {
		r.Groupings = append(r.Groupings, FromGrouped(stats.GroupBy(ds, field, plan.Measurements)))
	}

	for _, c := range plan.Measurements {
		r.Outliers = append(r.Outliers, FromOutliers(stats.DetectOutliers(ds, c)))
	}

	r.Correlation = FromCorrelation(stats.Correlate(ds, plan.Measurements))

	for _, c := range plan.Measurements {
		groups := stats.Partition(ds, plan.GroupField, c)
		res, err := stats.ANOVA(stats.Values(groups)...)
		r.ANOVA = append(r.ANOVA, FromTest(c, "anova", res, err, plan.Alpha))
	}

	a, b := plan.SexLevels[0], plan.SexLevels[1]
	for _, c := range plan.Measurements {
		groups := stats.Partition(ds, plan.SexField, c)
		xa, _ := stats.Find(groups, a)
		xb, _ := stats.Find(groups, b)
		cmp := Comparison{Column: c, A: a, B: b}
		res, err := stats.TTest(xa, xb)
		cmp.TTest = FromTest(c, "student_t", res, err, plan.Alpha)
		res, err = stats.RankSumTest(xa, xb)
		cmp.RankSum = FromTest(c, "mann_whitney_u", res, err, plan.Alpha)
		r.Dimorphism = append(r.Dimorphism, cmp)
	}

	numeric := ds.Schema().Names(dataset.Numeric)
	for _, issue := range stats.Screen(ds, numeric, stats.ScreenRules{Measurements: plan.Measurements}) {
		r.Issues = append(r.Issues, issue.String())
	}
	return r, nil
}

func overview(ds *dataset.Dataset, plan Plan) Overview {
	o := Overview{
		Rows:         ds.Len(),
		Fields:       ds.Schema().Len(),
		CompleteRows: ds.CompleteRows(),
		Completeness: ds.Completeness(),
		Duplicates:   ds.Duplicates(),
	}
	for _, m := range ds.MissingCounts() {
		o.Missing = append(o.Missing, Missing{m.Field, m.Missing, m.Percent})
	}
	for _, f := range plan.Categorical {
		lv := Levels{Field: f}
		for _, c := range ds.ValueCounts(f, true) {
			lv.Counts = append(lv.Counts, LevelCount{c.Level.String(), c.N})
		}
		o.Levels = append(o.Levels, lv)
	}
	for _, pair := range plan.CrossTabs {
		ct := ds.CrossTabulate(pair[0], pair[1], false)
		o.CrossTabs = append(o.CrossTabs, CrossTab{
			Rows:   ct.RowField,
			Cols:   ct.ColField,
			Row:    levelNames(ct.Rows),
			Col:    levelNames(ct.Cols),
			Counts: ct.Counts,
		})
	}
	return o
}

func levelNames(ls []dataset.Level) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.String()
	}
	return out
}

// FromSummary converts s to its JSON form.
func FromSummary(s stats.Summary) Summary {
	return Summary{
		Column:   s.Column,
		N:        s.N,
		Mean:     Num(s.Mean),
		StdDev:   Num(s.StdDev),
		Variance: Num(s.Variance),
		Mode:     Num(s.Mode),
		Min:      Num(s.Min),
		Q1:       Num(s.Q1),
		Median:   Num(s.Median),
		Q3:       Num(s.Q3),
		Max:      Num(s.Max),
		IQR:      Num(s.IQR()),
		Range:    Num(s.Range()),
		Skewness: Num(s.Skewness),
		Kurtosis: Num(s.Kurtosis),
		MedianLo: Num(s.MedianLo),
		MedianHi: Num(s.MedianHi),
	}
}

// FromGrouped converts g to its JSON form.
func FromGrouped(g *stats.Grouped) Grouping {
	out := Grouping{Field: g.Field, Excluded: g.Excluded}
	for _, grp := range g.Groups {
		og := Group{Key: grp.Key, Size: len(grp.Rows)}
		for _, s := range grp.Summaries {
			og.Columns = append(og.Columns, FromSummary(s))
		}
		out.Groups = append(out.Groups, og)
	}
	return out
}

// FromOutliers converts o to its JSON form.
func FromOutliers(o stats.OutlierSet) OutlierSet {
	out := OutlierSet{
		Column:   o.Column,
		N:        o.N,
		Lower:    Num(o.Lower),
		Upper:    Num(o.Upper),
		Outliers: []Outlier{},
	}
	for _, x := range o.Outliers {
		out.Outliers = append(out.Outliers, Outlier{x.Row, x.Value})
	}
	return out
}

// FromCorrelation converts m to its JSON form.
func FromCorrelation(m *stats.CorrelationMatrix) Correlation {
	cols := m.Columns()
	c := Correlation{Columns: cols, Matrix: make([][]Num, len(cols)), Ranked: []Pair{}}
	for _, p := range m.Ranked() {
		c.Ranked = append(c.Ranked, Pair(p))
	}
	for i := range cols {
		c.Matrix[i] = make([]Num, len(cols))
		for j := range cols {
			r, _ := m.AtIndex(i, j)
			c.Matrix[i][j] = Num(r)
		}
	}
	return c
}

// FromTest records the outcome of a test run with stats.ANOVA,
// stats.TTest or stats.RankSumTest. A non-nil err is kept as the
// reason the test could not run.
func FromTest(column, method string, res stats.TestResult, err error, alpha float64) Test {
	t := Test{Column: column, Method: method}
	if err != nil {
		t.Error = err.Error()
		t.Statistic, t.P = Num(math.NaN()), Num(math.NaN())
		return t
	}
	t.Statistic, t.P = Num(res.Statistic), Num(res.P)
	t.DF1, t.DF2 = Num(res.DF1), Num(res.DF2)
	t.Sizes = res.Sizes
	t.Significant = res.Significant(alpha)
	return t
}
