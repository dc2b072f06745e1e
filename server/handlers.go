// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/palmer-eda/eda/dataset"
	"github.com/palmer-eda/eda/report"
	"github.com/palmer-eda/eda/stats"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"source": s.source,
		"rows":   s.ds.Len(),
	})
}

// columns returns the column query parameters, or the plan's
// measurements if there are none, after checking they are numeric.
func (s *Server) columns(r *http.Request) ([]string, error) {
	cols := r.URL.Query()["column"]
	if len(cols) == 0 {
		cols = s.plan.Measurements
	}
	return cols, s.ds.Schema().Check(dataset.Numeric, cols...)
}

// column returns the single required column parameter.
func (s *Server) column(r *http.Request) (string, error) {
	c := r.URL.Query().Get("column")
	if c == "" {
		return "", errors.New("missing column parameter")
	}
	return c, s.ds.Schema().Check(dataset.Numeric, c)
}

// groupField returns the by parameter, or def.
func (s *Server) groupField(r *http.Request, def string) (string, error) {
	by := r.URL.Query().Get("by")
	if by == "" {
		by = def
	}
	return by, s.ds.Schema().Check(dataset.Categorical, by)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	cols, err := s.columns(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sums, err := stats.Describe(r.Context(), s.ds, cols)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	out := make([]report.Summary, len(sums))
	for i, sum := range sums {
		out[i] = report.FromSummary(sum)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGroups(w http.ResponseWriter, r *http.Request) {
	cols, err := s.columns(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	by, err := s.groupField(r, s.plan.GroupField)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, report.FromGrouped(stats.GroupBy(s.ds, by, cols)))
}

func (s *Server) handleOutliers(w http.ResponseWriter, r *http.Request) {
	cols, err := s.columns(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	out := make([]report.OutlierSet, len(cols))
	for i, c := range cols {
		out[i] = report.FromOutliers(stats.DetectOutliers(s.ds, c))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCorrelation(w http.ResponseWriter, r *http.Request) {
	cols, err := s.columns(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, report.FromCorrelation(stats.Correlate(s.ds, cols)))
}

func (s *Server) handleANOVA(w http.ResponseWriter, r *http.Request) {
	c, err := s.column(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	by, err := s.groupField(r, s.plan.GroupField)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	res, err := stats.ANOVA(stats.Values(stats.Partition(s.ds, by, c))...)
	s.writeTest(w, report.FromTest(c, "anova", res, err, s.plan.Alpha), err)
}

func (s *Server) handleTTest(w http.ResponseWriter, r *http.Request) {
	c, err := s.column(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	by, err := s.groupField(r, s.plan.SexField)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	q := r.URL.Query()
	a, b := q.Get("a"), q.Get("b")
	if a == "" {
		a = s.plan.SexLevels[0]
	}
	if b == "" {
		b = s.plan.SexLevels[1]
	}
	groups := stats.Partition(s.ds, by, c)
	xa, _ := stats.Find(groups, a)
	xb, _ := stats.Find(groups, b)

	t, terr := stats.TTest(xa, xb)
	u, uerr := stats.RankSumTest(xa, xb)
	if terr != nil {
		s.writeTest(w, report.FromTest(c, "student_t", t, terr, s.plan.Alpha), terr)
		return
	}
	writeJSON(w, http.StatusOK, report.Comparison{
		Column:  c,
		A:       a,
		B:       b,
		TTest:   report.FromTest(c, "student_t", t, nil, s.plan.Alpha),
		RankSum: report.FromTest(c, "mann_whitney_u", u, uerr, s.plan.Alpha),
	})
}

// writeTest writes a test outcome. Tests that could not run for lack
// of data are 422s.
func (s *Server) writeTest(w http.ResponseWriter, t report.Test, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, t)
	case errors.Is(err, stats.ErrInsufficientGroups),
		errors.Is(err, stats.ErrSampleSize),
		errors.Is(err, stats.ErrSamplesEqual):
		writeJSON(w, http.StatusUnprocessableEntity, t)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	rep, err := report.Build(r.Context(), s.ds, s.plan, s.source)
	if err != nil {
		var se *dataset.SchemaError
		if errors.As(err, &se) {
			writeError(w, http.StatusBadRequest, err)
		} else {
			writeError(w, http.StatusServiceUnavailable, err)
		}
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		w.Header().Set("Content-Type", "application/json")
		err = report.WriteJSON(w, rep)
	case "md", "markdown":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		err = report.WriteMarkdown(w, rep)
	case "html":
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = report.WriteHTML(w, rep)
	default:
		writeError(w, http.StatusBadRequest, errors.Errorf("unknown format %q", format))
		return
	}
	if err != nil {
		log.WithError(err).Warn("write report")
	}
}
