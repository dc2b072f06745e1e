// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package load reads tabular files into a dataset.Dataset according
// to a caller-supplied schema.
package load

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/palmer-eda/eda/dataset"
)

var log = logrus.WithField("component", "load")

// DefaultMissingTokens are the cell contents read as missing values.
var DefaultMissingTokens = []string{"", "NA", "NaN", "nan", "."}

// Options control how a file is read.
type Options struct {
	// Schema declares the fields to read. Every field must appear
	// in the header row; other columns are ignored.
	Schema *dataset.Schema

	// MissingTokens are cell contents treated as absent, after
	// trimming spaces. Nil means DefaultMissingTokens.
	MissingTokens []string

	// Sheet is the worksheet to read from spreadsheet files. The
	// empty string means the first sheet.
	Sheet string
}

// File reads the CSV or XLSX file at path, chosen by extension.
func File(path string, opts Options) (*dataset.Dataset, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open data file")
		}
		defer f.Close()
		return CSV(f, opts)
	case ".xlsx":
		return XLSX(path, opts)
	default:
		return nil, errors.Errorf("unsupported data file type %q", ext)
	}
}

// CSV reads comma-separated records with a header row from r.
func CSV(r io.Reader, opts Options) (*dataset.Dataset, error) {
	start := time.Now()
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "read CSV")
	}
	log.Debugf("read %d CSV lines in %s", len(rows), time.Since(start))
	return fromRows(rows, opts)
}

// XLSX reads a worksheet of a spreadsheet file whose first row is
// the header.
func XLSX(path string, opts Options) (*dataset.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "open spreadsheet")
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "read sheet %q", sheet)
	}
	log.Debugf("read %d rows from sheet %q", len(rows), sheet)
	return fromRows(rows, opts)
}

func fromRows(rows [][]string, opts Options) (*dataset.Dataset, error) {
	if opts.Schema == nil {
		return nil, errors.New("load: no schema")
	}
	if len(rows) == 0 {
		return nil, errors.New("load: no header row")
	}

	fields := opts.Schema.Fields()
	header := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		header[strings.TrimSpace(h)] = i
	}
	pos := make([]int, len(fields))
	for i, f := range fields {
		j, ok := header[f.Name]
		if !ok {
			return nil, errors.Wrap(&dataset.SchemaError{Field: f.Name, Want: f.Kind}, "header")
		}
		pos[i] = j
		delete(header, f.Name)
	}
	for name := range header {
		log.Debugf("ignoring column %q not in schema", name)
	}

	missing := opts.MissingTokens
	if missing == nil {
		missing = DefaultMissingTokens
	}
	isMissing := make(map[string]bool, len(missing))
	for _, tok := range missing {
		isMissing[tok] = true
	}

	records := make([]dataset.Record, 0, len(rows)-1)
	for line, row := range rows[1:] {
		rec := make(dataset.Record, len(fields))
		for i, f := range fields {
			var cell string
			// Spreadsheet rows omit trailing empty cells.
			if pos[i] < len(row) {
				cell = strings.TrimSpace(row[pos[i]])
			}
			if isMissing[cell] {
				continue
			}
			if f.Kind == dataset.Categorical {
				rec[i] = dataset.Str(cell)
				continue
			}
			x, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d column %q", line+2, f.Name)
			}
			rec[i] = dataset.Num(x)
		}
		records = append(records, rec)
	}
	return dataset.New(opts.Schema, records)
}
