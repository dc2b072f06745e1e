// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteHTML writes r as a complete HTML page.
func WriteHTML(w io.Writer, r *Report) error {
	var md bytes.Buffer
	if err := WriteMarkdown(&md, r); err != nil {
		return err
	}
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{
		Title: "Exploratory analysis of " + r.Source,
		Flags: html.CommonFlags | html.CompletePage,
	})
	_, err := w.Write(markdown.ToHTML(md.Bytes(), p, renderer))
	return err
}

// WriteMarkdown writes r as a Markdown document.
func WriteMarkdown(w io.Writer, r *Report) error {
	bw := bufio.NewWriter(w)
	m := &mdWriter{w: bw}

	m.printf("# Exploratory analysis of %s\n\n", r.Source)
	m.printf("Report `%s`, generated %s. Tests use α = %g.\n\n", r.ID, r.Generated.Format(time.RFC3339), r.Alpha)

	o := r.Overview
	m.printf("## Overview\n\n")
	m.printf("%d rows, %d fields. %d complete rows; %.1f%% of cells present; %d duplicate rows.\n\n",
		o.Rows, o.Fields, o.CompleteRows, 100*o.Completeness, o.Duplicates)
	m.table([]string{"field", "missing", "percent"}, len(o.Missing), func(i int) []string {
		x := o.Missing[i]
		return []string{x.Field, fmt.Sprint(x.Missing), fmt.Sprintf("%.1f%%", x.Percent)}
	})
	for _, lv := range o.Levels {
		m.printf("### %s\n\n", lv.Field)
		m.table([]string{"level", "n"}, len(lv.Counts), func(i int) []string {
			return []string{lv.Counts[i].Level, fmt.Sprint(lv.Counts[i].N)}
		})
	}
	for _, ct := range o.CrossTabs {
		m.printf("### %s by %s\n\n", ct.Rows, ct.Cols)
		m.table(append([]string{ct.Rows}, ct.Col...), len(ct.Row), func(i int) []string {
			row := []string{ct.Row[i]}
			for _, n := range ct.Counts[i] {
				row = append(row, fmt.Sprint(n))
			}
			return row
		})
	}

	m.printf("## Descriptive statistics\n\n")
	m.summaries(r.Columns)

	for _, g := range r.Groupings {
		m.printf("## By %s\n\n", g.Field)
		if g.Excluded > 0 {
			m.printf("%d rows with no %s are excluded.\n\n", g.Excluded, g.Field)
		}
		for _, grp := range g.Groups {
			m.printf("### %s (%d rows)\n\n", grp.Key, grp.Size)
			m.summaries(grp.Columns)
		}
	}

	m.printf("## Outliers\n\n")
	m.table([]string{"column", "n", "lower fence", "upper fence", "outliers"}, len(r.Outliers), func(i int) []string {
		o := r.Outliers[i]
		vals := make([]string, len(o.Outliers))
		for j, x := range o.Outliers {
			vals[j] = fmt.Sprintf("%g (row %d)", x.Value, x.Row)
		}
		return []string{o.Column, fmt.Sprint(o.N), o.Lower.Format(2), o.Upper.Format(2), strings.Join(vals, ", ")}
	})

	c := r.Correlation
	m.printf("## Correlation\n\n")
	m.table(append([]string{""}, c.Columns...), len(c.Columns), func(i int) []string {
		row := []string{c.Columns[i]}
		for _, x := range c.Matrix[i] {
			row = append(row, x.Format(3))
		}
		return row
	})
	m.table([]string{"pair", "r", "n"}, len(c.Ranked), func(i int) []string {
		p := c.Ranked[i]
		return []string{p.A + " ~ " + p.B, fmt.Sprintf("%.3f", p.R), fmt.Sprint(p.N)}
	})

	m.printf("## Differences between groups\n\n")
	m.tests(r.ANOVA)
	if len(r.Dimorphism) > 0 {
		d := r.Dimorphism[0]
		m.printf("### %s vs %s\n\n", d.A, d.B)
		var ts []Test
		for _, d := range r.Dimorphism {
			ts = append(ts, d.TTest, d.RankSum)
		}
		m.tests(ts)
	}

	m.printf("## Data quality\n\n")
	if len(r.Issues) == 0 {
		m.printf("No issues found.\n")
	}
	for _, issue := range r.Issues {
		m.printf("- %s\n", issue)
	}

	if m.err != nil {
		return m.err
	}
	return bw.Flush()
}

// mdWriter accumulates the first write error.
type mdWriter struct {
	w   io.Writer
	err error
}

func (m *mdWriter) printf(format string, args ...any) {
	if m.err != nil {
		return
	}
	_, m.err = fmt.Fprintf(m.w, format, args...)
}

func (m *mdWriter) table(header []string, n int, row func(i int) []string) {
	if n == 0 {
		return
	}
	m.printf("| %s |\n", strings.Join(header, " | "))
	m.printf("|%s\n", strings.Repeat(" --- |", len(header)))
	for i := 0; i < n; i++ {
		m.printf("| %s |\n", strings.Join(row(i), " | "))
	}
	m.printf("\n")
}

func (m *mdWriter) summaries(ss []Summary) {
	header := []string{"column", "n", "mean", "std", "min", "q1", "median", "q3", "max", "range", "mode", "skew", "kurtosis", "median 95% CI"}
	m.table(header, len(ss), func(i int) []string {
		s := ss[i]
		return []string{
			s.Column, fmt.Sprint(s.N),
			s.Mean.Format(2), s.StdDev.Format(2), s.Min.Format(2),
			s.Q1.Format(2), s.Median.Format(2), s.Q3.Format(2), s.Max.Format(2),
			s.Range.Format(2), s.Mode.Format(2),
			s.Skewness.Format(3), s.Kurtosis.Format(3),
			"[" + s.MedianLo.Format(2) + ", " + s.MedianHi.Format(2) + "]",
		}
	})
}

func (m *mdWriter) tests(ts []Test) {
	m.table([]string{"column", "test", "statistic", "p", "significant"}, len(ts), func(i int) []string {
		t := ts[i]
		if t.Error != "" {
			return []string{t.Column, t.Method, "", "", t.Error}
		}
		sig := "no"
		if t.Significant {
			sig = "yes"
		}
		return []string{t.Column, t.Method, t.Statistic.Format(3), t.P.Format(4), sig}
	})
}
