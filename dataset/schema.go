// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"strings"
)

// A Kind is how a field's values are interpreted.
type Kind int

const (
	Numeric Kind = iota
	Categorical
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Field is one named column of a Schema.
type Field struct {
	Name string
	Kind Kind
}

// A Schema is the ordered, caller-declared set of fields shared by
// every record of a Dataset. Kinds are never inferred from values:
// a numeric-looking column such as a year is whatever the schema
// says it is.
type Schema struct {
	fields []Field
	index  map[string]int
}

// NewSchema returns a schema with the given fields. It panics if a
// field name is empty or repeated.
func NewSchema(fields ...Field) *Schema {
	s := &Schema{
		fields: append([]Field(nil), fields...),
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		if f.Name == "" {
			panic("dataset: empty field name")
		}
		if _, dup := s.index[f.Name]; dup {
			panic("dataset: duplicate field " + f.Name)
		}
		s.index[f.Name] = i
	}
	return s
}

// Len returns the number of fields.
func (s *Schema) Len() int { return len(s.fields) }

// Fields returns a copy of the fields in declaration order.
func (s *Schema) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Names returns the field names of the given kind in declaration
// order.
func (s *Schema) Names(kind Kind) []string {
	var names []string
	for _, f := range s.fields {
		if f.Kind == kind {
			names = append(names, f.Name)
		}
	}
	return names
}

// Lookup returns the position and declaration of name.
func (s *Schema) Lookup(name string) (int, Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return -1, Field{}, false
	}
	return i, s.fields[i], true
}

// Check returns a *SchemaError if any of names is not a field of
// kind in s. Use it to vet names that come from outside the program
// before handing them to code that treats a mismatch as a bug.
func (s *Schema) Check(kind Kind, names ...string) error {
	for _, name := range names {
		if _, err := s.column(name, kind); err != nil {
			return err
		}
	}
	return nil
}

// Column returns the position of name, which must be a field of the
// given kind. A mismatch is a programming error, so Column panics
// with a *SchemaError.
func (s *Schema) Column(name string, kind Kind) int {
	i, err := s.column(name, kind)
	if err != nil {
		panic(err)
	}
	return i
}

func (s *Schema) column(name string, kind Kind) (int, *SchemaError) {
	i, f, ok := s.Lookup(name)
	if !ok {
		return -1, &SchemaError{Field: name, Want: kind}
	}
	if f.Kind != kind {
		return -1, &SchemaError{Field: name, Want: kind, Got: f.Kind, Declared: true}
	}
	return i, nil
}

func (s *Schema) String() string {
	parts := make([]string, len(s.fields))
	for i, f := range s.fields {
		parts[i] = f.Name + ":" + f.Kind.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// A SchemaError reports a column that is absent from a schema or
// declared with a different kind than an operation requires.
type SchemaError struct {
	Field string
	Want  Kind

	// Declared is set if Field exists with kind Got.
	Declared bool
	Got      Kind
}

func (e *SchemaError) Error() string {
	if e.Declared {
		return fmt.Sprintf("dataset: field %q is %s, want %s", e.Field, e.Got, e.Want)
	}
	return fmt.Sprintf("dataset: no %s field %q in schema", e.Want, e.Field)
}
