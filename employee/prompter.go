// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package employee

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

// MaxLineLen is the size of the buffer used to read a single line of
// interactive input. Longer lines are rejected as InputTooLong.
const MaxLineLen = 256

type prompterOptions struct {
	maxAttempts int
}

// PrompterOption represents an option to NewPrompter.
type PrompterOption func(*prompterOptions)

// WithMaxAttempts sets the number of times that a single field will be
// prompted for before giving up and returning the last error. Zero, the
// default, means that invalid input is retried indefinitely.
func WithMaxAttempts(n int) PrompterOption {
	return func(o *prompterOptions) {
		o.maxAttempts = n
	}
}

// Prompter reads employee records interactively, one field per line.
// Invalid input is reported and the offending field is prompted for
// again; read failures, including io.EOF, are returned immediately.
type Prompter struct {
	prompterOptions
	rd  *bufio.Reader
	out io.Writer
}

// NewPrompter returns a Prompter that reads from in and writes prompts
// and diagnostics to out.
func NewPrompter(in io.Reader, out io.Writer, opts ...PrompterOption) *Prompter {
	p := &Prompter{
		rd:  bufio.NewReaderSize(in, MaxLineLen),
		out: out,
	}
	for _, fn := range opts {
		fn(&p.prompterOptions)
	}
	return p
}

// ReadN reads exactly n records. It returns the records read so far
// and an error if input fails or the context is canceled.
func (p *Prompter) ReadN(ctx context.Context, n int) ([]Record, error) {
	records := make([]Record, 0, n)
	for i := range n {
		fmt.Fprintf(p.out, "employee %d of %d\n", i+1, n)
		r, err := p.ReadRecord(ctx)
		if err != nil {
			return records, err
		}
		records = append(records, r)
	}
	return records, nil
}

// ReadRecord reads a single record.
func (p *Prompter) ReadRecord(ctx context.Context) (Record, error) {
	name, err := prompt(ctx, p, "name", ParseName)
	if err != nil {
		return Record{}, err
	}
	salary, err := prompt(ctx, p, "salary", ParseSalary)
	if err != nil {
		return Record{}, err
	}
	return Record{Name: name, Salary: salary}, nil
}

func prompt[T any](ctx context.Context, p *Prompter, field string, parse func(string) (T, error)) (T, error) {
	var zero T
	logger := ctxlog.Logger(ctx)
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		fmt.Fprintf(p.out, "%s: ", field)
		line, err := p.readLine(field)
		if err == nil {
			var v T
			if v, err = parse(line); err == nil {
				return v, nil
			}
		}
		reason, ok := ReasonFor(err)
		if !ok || reason == ReadFailure {
			return zero, err
		}
		fmt.Fprintf(p.out, "invalid %s: %v, please try again\n", field, reason)
		logger.Warn("invalid input", "field", field, "reason", reason.String(), "attempt", attempt)
		if p.maxAttempts > 0 && attempt >= p.maxAttempts {
			return zero, err
		}
	}
}

// readLine returns the next line of input without its line terminator.
// Lines that do not fit in the read buffer are consumed and rejected.
func (p *Prompter) readLine(field string) (string, error) {
	buf, err := p.rd.ReadSlice('\n')
	switch {
	case err == nil:
	case errors.Is(err, bufio.ErrBufferFull):
		p.discardLine()
		return "", newInputError(InputTooLong, field, "", nil)
	case errors.Is(err, io.EOF) && len(buf) > 0:
		// final line without a newline.
	default:
		return "", newInputError(ReadFailure, field, "", err)
	}
	return strings.TrimRight(string(buf), "\r\n"), nil
}

func (p *Prompter) discardLine() {
	for {
		_, err := p.rd.ReadSlice('\n')
		if !errors.Is(err, bufio.ErrBufferFull) {
			return
		}
	}
}
