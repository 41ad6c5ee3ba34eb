// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package employee

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"cloudeng.io/errors"
)

// MaxSalaryLen is the maximum length, in bytes, of the text
// representation of a salary.
const MaxSalaryLen = 32

// Reason identifies why a piece of input was rejected. Reason implements
// error so that errors.Is can be used to test for a specific reason, eg.
//
//	if errors.Is(err, employee.Overflow) { ... }
type Reason int

const (
	ReadFailure Reason = iota + 1
	InputTooLong
	Overflow
	NegativeValue
	NonInteger
	NonNumeric
)

var reasons = map[Reason]string{
	ReadFailure:   "read failure",
	InputTooLong:  "input too long",
	Overflow:      "overflow",
	NegativeValue: "negative value",
	NonInteger:    "not an integer",
	NonNumeric:    "non-numeric character",
}

// String implements fmt.Stringer.
func (r Reason) String() string {
	if s, ok := reasons[r]; ok {
		return s
	}
	return fmt.Sprintf("unknown reason (%d)", int(r))
}

// Error implements error.
func (r Reason) Error() string {
	return r.String()
}

// InputError is returned for all input that fails validation or
// cannot be read.
type InputError struct {
	Reason Reason
	Field  string // name or salary.
	Input  string
	Err    error // underlying error, if any.
}

func newInputError(reason Reason, field, input string, err error) *InputError {
	return &InputError{Reason: reason, Field: field, Input: input, Err: err}
}

// Error implements error.
func (e *InputError) Error() string {
	var sb strings.Builder
	if len(e.Field) > 0 {
		sb.WriteString(e.Field)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Reason.String())
	if e.Reason != ReadFailure && e.Reason != InputTooLong {
		fmt.Fprintf(&sb, ": %q", e.Input)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// Unwrap implements errors.Unwrap.
func (e *InputError) Unwrap() error {
	return e.Err
}

// Is supports errors.Is for Reason values.
func (e *InputError) Is(target error) bool {
	r, ok := target.(Reason)
	return ok && r == e.Reason
}

// ReasonFor returns the Reason for err if it is, or wraps, an *InputError.
func ReasonFor(err error) (Reason, bool) {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie.Reason, true
	}
	return 0, false
}

// ParseName validates an employee name, ignoring any leading or trailing
// white space.
func ParseName(text string) (string, error) {
	name := strings.TrimSpace(text)
	if utf8.RuneCountInString(name) > MaxNameLen {
		return "", newInputError(InputTooLong, "name", text, nil)
	}
	return name, nil
}

// ParseSalary parses a non-negative salary that must fit in an int,
// ignoring any leading or trailing white space. The checks are applied
// in order of length, character set, sign, fractional part and range.
func ParseSalary(text string) (int, error) {
	s := strings.TrimSpace(text)
	if len(s) > MaxSalaryLen {
		return 0, newInputError(InputTooLong, "salary", text, nil)
	}
	digits, negative := strings.CutPrefix(s, "-")
	ndigits, ndots := 0, 0
	for _, c := range digits {
		switch {
		case c >= '0' && c <= '9':
			ndigits++
		case c == '.':
			ndots++
		default:
			return 0, newInputError(NonNumeric, "salary", text, nil)
		}
	}
	if ndigits == 0 {
		return 0, newInputError(NonNumeric, "salary", text, nil)
	}
	if negative {
		return 0, newInputError(NegativeValue, "salary", text, nil)
	}
	if ndots > 0 {
		return 0, newInputError(NonInteger, "salary", text, nil)
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, newInputError(Overflow, "salary", text, nil)
		}
		return 0, newInputError(NonNumeric, "salary", text, err)
	}
	return v, nil
}
