// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package employee provides the employee record type that is sorted by
// cloudeng.io/payroll/heapsort together with the means of reading records,
// interactively or from a YAML file, and of printing them.
package employee

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// MaxNameLen is the maximum number of characters (runes) in an employee
// name.
const MaxNameLen = 24

// Record represents a single employee. Records have no identity other than
// their position in a collection.
type Record struct {
	Name   string
	Salary int
}

// New returns a Record for the specified name and salary, or an
// *InputError if the name is too long or the salary is negative.
func New(name string, salary int) (Record, error) {
	if utf8.RuneCountInString(name) > MaxNameLen {
		return Record{}, newInputError(InputTooLong, "name", name, nil)
	}
	if salary < 0 {
		return Record{}, newInputError(NegativeValue, "salary", fmt.Sprint(salary), nil)
	}
	return Record{Name: name, Salary: salary}, nil
}

// String implements fmt.Stringer.
func (r Record) String() string {
	return fmt.Sprintf("[id=%s sal=%d]", r.Name, r.Salary)
}

// Format returns the records as a comma separated list terminated by
// a newline. An empty list results in an empty string.
func Format(records []Record) string {
	if len(records) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, r := range records {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(r.String())
	}
	sb.WriteByte('\n')
	return sb.String()
}

// WriteList writes the records to w in the format used by Format.
func WriteList(w io.Writer, records []Record) error {
	_, err := io.WriteString(w, Format(records))
	return err
}

// Salaries returns the salaries of the supplied records in order.
func Salaries(records []Record) []int {
	s := make([]int, len(records))
	for i, r := range records {
		s[i] = r.Salary
	}
	return s
}
