// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/palmer-eda/eda/dataset"
	"github.com/palmer-eda/eda/report"
	"github.com/palmer-eda/eda/server"
	"github.com/palmer-eda/eda/stats"
)

func newDescribeCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe [COLUMN...]",
		Short: "Describe the distribution of numeric columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := opts.load()
			if err != nil {
				return err
			}
			cols, err := opts.columns(ds, args)
			if err != nil {
				return err
			}
			sums, err := stats.Describe(cmd.Context(), ds, cols)
			if err != nil {
				return err
			}
			w := newTable(cmd.OutOrStdout())
			printSummaryHeader(w, "column")
			for _, s := range sums {
				printSummary(w, s.Column, s)
			}
			return w.Flush()
		},
	}
}

func newGroupsCommand(opts *globalOptions) *cobra.Command {
	var by string
	cmd := &cobra.Command{
		Use:   "groups [COLUMN...]",
		Short: "Describe numeric columns within each level of a categorical field",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := opts.load()
			if err != nil {
				return err
			}
			cols, err := opts.columns(ds, args)
			if err != nil {
				return err
			}
			if by == "" {
				by = opts.cfg.GroupField
			}
			if err := ds.Schema().Check(dataset.Categorical, by); err != nil {
				return err
			}

			g := stats.GroupBy(ds, by, cols)
			w := newTable(cmd.OutOrStdout())
			printSummaryHeader(w, by+"\tcolumn")
			for _, grp := range g.Groups {
				for _, s := range grp.Summaries {
					printSummary(w, grp.Key+"\t"+s.Column, s)
				}
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if g.Excluded > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%d rows with no %s excluded\n", g.Excluded, by)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&by, "by", "", "Categorical field to group by (default $EDA_GROUP_FIELD)")
	return cmd
}

func newOutliersCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "outliers [COLUMN...]",
		Short: "List values outside the 1.5×IQR fences",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := opts.load()
			if err != nil {
				return err
			}
			cols, err := opts.columns(ds, args)
			if err != nil {
				return err
			}
			w := newTable(cmd.OutOrStdout())
			fmt.Fprintln(w, "column\tn\tlower\tupper\toutliers")
			for _, c := range cols {
				o := stats.DetectOutliers(ds, c)
				vals := make([]string, len(o.Outliers))
				for i, x := range o.Outliers {
					vals[i] = fmt.Sprintf("%g@%d", x.Value, x.Row)
				}
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", c, o.N,
					report.Num(o.Lower).Format(2), report.Num(o.Upper).Format(2), strings.Join(vals, " "))
			}
			return w.Flush()
		},
	}
}

func newCorrCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "corr [COLUMN...]",
		Short: "Print the Pearson correlation matrix and the strongest pairs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := opts.load()
			if err != nil {
				return err
			}
			cols, err := opts.columns(ds, args)
			if err != nil {
				return err
			}
			m := stats.Correlate(ds, cols)
			w := newTable(cmd.OutOrStdout())
			fmt.Fprintf(w, "\t%s\n", strings.Join(cols, "\t"))
			for i, a := range cols {
				fmt.Fprint(w, a)
				for j := range cols {
					r, _ := m.AtIndex(i, j)
					fmt.Fprintf(w, "\t%s", report.Num(r).Format(3))
				}
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w)
			for _, p := range m.Ranked() {
				fmt.Fprintf(w, "%s ~ %s\t%.3f\tn=%d\n", p.A, p.B, p.R, p.N)
			}
			return w.Flush()
		},
	}
}

func newTestCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "test [COLUMN...]",
		Short: "Test for differences between species and between sexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := opts.load()
			if err != nil {
				return err
			}
			cols, err := opts.columns(ds, args)
			if err != nil {
				return err
			}
			cfg := opts.cfg
			if err := ds.Schema().Check(dataset.Categorical, cfg.GroupField, cfg.SexField); err != nil {
				return err
			}

			w := newTable(cmd.OutOrStdout())
			fmt.Fprintln(w, "column\ttest\tstatistic\tp\tsignificant")
			a, b := cfg.SexLevels[0], cfg.SexLevels[1]
			for _, c := range cols {
				res, err := stats.ANOVA(stats.Values(stats.Partition(ds, cfg.GroupField, c))...)
				printTest(w, report.FromTest(c, "anova by "+cfg.GroupField, res, err, cfg.Alpha))

				groups := stats.Partition(ds, cfg.SexField, c)
				xa, _ := stats.Find(groups, a)
				xb, _ := stats.Find(groups, b)
				res, err = stats.TTest(xa, xb)
				printTest(w, report.FromTest(c, "t "+a+" vs "+b, res, err, cfg.Alpha))
				res, err = stats.RankSumTest(xa, xb)
				printTest(w, report.FromTest(c, "U "+a+" vs "+b, res, err, cfg.Alpha))
			}
			return w.Flush()
		},
	}
}

func newReportCommand(opts *globalOptions) *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the complete analysis as Markdown, HTML or JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			write, ok := map[string]func(io.Writer, *report.Report) error{
				"md":   report.WriteMarkdown,
				"html": report.WriteHTML,
				"json": report.WriteJSON,
			}[format]
			if !ok {
				return errors.Errorf("unknown format %q", format)
			}
			ds, err := opts.load()
			if err != nil {
				return err
			}
			rep, err := report.Build(cmd.Context(), ds, opts.plan(), opts.cfg.DataFile)
			if err != nil {
				return err
			}
			if output == "" {
				return write(cmd.OutOrStdout(), rep)
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := write(f, rep); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVar(&format, "format", "md", "Output format: md, html or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}

func newServeCommand(opts *globalOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analyses as a JSON HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := opts.load()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = opts.cfg.Addr
			}
			if err := opts.plan().Check(ds.Schema()); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(ds, opts.plan(), opts.cfg.DataFile).ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default $EDA_ADDR)")
	return cmd
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
}

func printSummaryHeader(w io.Writer, key string) {
	fmt.Fprintf(w, "%s\tn\tmean\tstd\tvar\tmin\tq1\tmedian\tq3\tmax\tmode\tskew\tkurt\n", key)
}

func printSummary(w io.Writer, key string, s stats.Summary) {
	f := func(x float64, prec int) string { return report.Num(x).Format(prec) }
	fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n", key, s.N,
		f(s.Mean, 2), f(s.StdDev, 2), f(s.Variance, 2), f(s.Min, 2), f(s.Q1, 2), f(s.Median, 2),
		f(s.Q3, 2), f(s.Max, 2), f(s.Mode, 2), f(s.Skewness, 3), f(s.Kurtosis, 3))
}

func printTest(w io.Writer, t report.Test) {
	if t.Error != "" {
		fmt.Fprintf(w, "%s\t%s\t\t\t%s\n", t.Column, t.Method, t.Error)
		return
	}
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v\n", t.Column, t.Method, t.Statistic.Format(3), t.P.Format(4), t.Significant)
}
