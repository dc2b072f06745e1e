// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command penguins explores a dataset of penguin measurements: it
// describes the columns, compares species and sexes, and writes
// reports or serves the analyses over HTTP.
//
// Settings come from EDA_* environment variables or a .env file, and
// the --data, --sheet and --log-level flags override them.
package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/palmer-eda/eda/config"
	"github.com/palmer-eda/eda/dataset"
	"github.com/palmer-eda/eda/load"
	"github.com/palmer-eda/eda/report"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.WithError(err).Error("penguins")
		os.Exit(1)
	}
}

type globalOptions struct {
	data     string
	sheet    string
	logLevel string

	cfg *config.Config
}

func newRootCommand() *cobra.Command {
	var opts globalOptions

	cmd := &cobra.Command{
		Use:           "penguins",
		Short:         "Exploratory statistics of the Palmer penguins dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.data, "data", "", "CSV or XLSX file to analyze (default $EDA_DATA_FILE)")
	flags.StringVar(&opts.sheet, "sheet", "", "Worksheet of an XLSX file (default the first)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (default $EDA_LOG_LEVEL)")

	cmd.AddCommand(
		newDescribeCommand(&opts),
		newGroupsCommand(&opts),
		newOutliersCommand(&opts),
		newCorrCommand(&opts),
		newTestCommand(&opts),
		newReportCommand(&opts),
		newServeCommand(&opts),
	)
	return cmd
}

// setup loads the configuration and applies the flags set on cmd.
func (o *globalOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataFile = o.data
	}
	if flags.Changed("sheet") {
		cfg.Sheet = o.sheet
	}
	if flags.Changed("log-level") {
		level, err := logrus.ParseLevel(o.logLevel)
		if err != nil {
			return errors.Wrap(err, "--log-level")
		}
		cfg.LogLevel = level
	}

	logrus.SetOutput(cmd.ErrOrStderr())
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(cfg.LogLevel)
	o.cfg = cfg
	return nil
}

// load reads the configured data file.
func (o *globalOptions) load() (*dataset.Dataset, error) {
	logrus.WithField("file", o.cfg.DataFile).Debug("loading dataset")
	return load.File(o.cfg.DataFile, load.Options{
		Schema:        load.PenguinSchema(),
		MissingTokens: o.cfg.MissingTokens,
		Sheet:         o.cfg.Sheet,
	})
}

// plan is the penguin analysis with the configured groups.
func (o *globalOptions) plan() report.Plan {
	p := report.PenguinPlan()
	p.GroupField = o.cfg.GroupField
	p.SexField = o.cfg.SexField
	p.SexLevels = o.cfg.SexLevels
	p.Alpha = o.cfg.Alpha
	return p
}

// columns returns args, or the plan's measurements if args is empty,
// after checking they are numeric fields of ds.
func (o *globalOptions) columns(ds *dataset.Dataset, args []string) ([]string, error) {
	if len(args) == 0 {
		return o.plan().Measurements, nil
	}
	return args, ds.Schema().Check(dataset.Numeric, args...)
}
