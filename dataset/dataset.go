// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset holds an immutable, schema-typed table of records
// with explicit missing values.
package dataset

import (
	"math"

	"github.com/pkg/errors"
)

// A Value is one cell of a record. Exactly one of Num or Str is
// meaningful, depending on the field's Kind. Valid is false for an
// absent value; absent values are never coerced to a sentinel.
type Value struct {
	Num   float64
	Str   string
	Valid bool
}

// Missing is the absent value.
var Missing = Value{}

// Num returns a present numeric value. NaN is treated as absent.
func Num(x float64) Value {
	if math.IsNaN(x) {
		return Missing
	}
	return Value{Num: x, Valid: true}
}

// Str returns a present categorical value.
func Str(s string) Value {
	return Value{Str: s, Valid: true}
}

// A Record is one row, with one Value per schema field.
type Record []Value

// A Dataset is an ordered sequence of records sharing a Schema. It
// is never modified after construction.
type Dataset struct {
	schema  *Schema
	records []Record
}

// New returns a Dataset over a copy of records. Every record must
// have exactly one value per schema field.
func New(schema *Schema, records []Record) (*Dataset, error) {
	if schema == nil {
		return nil, errors.New("dataset: nil schema")
	}
	ds := &Dataset{schema: schema, records: make([]Record, len(records))}
	for i, rec := range records {
		if len(rec) != schema.Len() {
			return nil, errors.Errorf("dataset: record %d has %d values, schema has %d fields", i, len(rec), schema.Len())
		}
		ds.records[i] = append(Record(nil), rec...)
	}
	return ds, nil
}

// FromMaps builds a Dataset from loosely typed rows. Numeric fields
// accept any Go integer or float; categorical fields accept strings.
// A nil or absent entry is a missing value.
func FromMaps(schema *Schema, rows []map[string]any) (*Dataset, error) {
	records := make([]Record, len(rows))
	for i, row := range rows {
		rec := make(Record, schema.Len())
		for name, v := range row {
			j, f, ok := schema.Lookup(name)
			if !ok {
				return nil, errors.Errorf("dataset: row %d: field %q not in schema", i, name)
			}
			val, err := toValue(f.Kind, v)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d field %q", i, name)
			}
			rec[j] = val
		}
		records[i] = rec
	}
	return New(schema, records)
}

func toValue(kind Kind, v any) (Value, error) {
	if v == nil {
		return Missing, nil
	}
	if kind == Categorical {
		s, ok := v.(string)
		if !ok {
			return Missing, errors.Errorf("want string, got %T", v)
		}
		return Str(s), nil
	}
	switch x := v.(type) {
	case float64:
		return Num(x), nil
	case float32:
		return Num(float64(x)), nil
	case int:
		return Num(float64(x)), nil
	case int32:
		return Num(float64(x)), nil
	case int64:
		return Num(float64(x)), nil
	}
	return Missing, errors.Errorf("want number, got %T", v)
}

// Schema returns the dataset's schema.
func (ds *Dataset) Schema() *Schema { return ds.schema }

// Len returns the number of records.
func (ds *Dataset) Len() int { return len(ds.records) }

// Value returns the raw value of field i in row.
func (ds *Dataset) Value(row, i int) Value { return ds.records[row][i] }

// Float returns the numeric field name of row and whether it is
// present. It panics with a *SchemaError if name is not a numeric
// field.
func (ds *Dataset) Float(row int, name string) (float64, bool) {
	v := ds.records[row][ds.schema.Column(name, Numeric)]
	return v.Num, v.Valid
}

// String returns the categorical field name of row and whether it
// is present. It panics with a *SchemaError if name is not a
// categorical field.
func (ds *Dataset) String(row int, name string) (string, bool) {
	v := ds.records[row][ds.schema.Column(name, Categorical)]
	return v.Str, v.Valid
}

// Floats returns the present values of numeric field name together
// with the row each came from, in row order.
func (ds *Dataset) Floats(name string) (xs []float64, rows []int) {
	col := ds.schema.Column(name, Numeric)
	for r, rec := range ds.records {
		if v := rec[col]; v.Valid {
			xs = append(xs, v.Num)
			rows = append(rows, r)
		}
	}
	return
}

// FloatsAt is like Floats but only considers the given rows.
func (ds *Dataset) FloatsAt(name string, rows []int) []float64 {
	col := ds.schema.Column(name, Numeric)
	var xs []float64
	for _, r := range rows {
		if v := ds.records[r][col]; v.Valid {
			xs = append(xs, v.Num)
		}
	}
	return xs
}
