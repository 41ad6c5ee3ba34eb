// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/logging"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/payroll/employee"
	"cloudeng.io/payroll/heapsort"
)

func logLevel(level int) slog.Level {
	switch {
	case level <= 0:
		return slog.LevelError
	case level == 1:
		return slog.LevelWarn
	case level == 2:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

func (a *app) withLogger(ctx context.Context) context.Context {
	var w io.Writer = a.stderr
	if a.globals.LogPretty {
		w = logging.NewJSONFormatter(a.stderr, "", "  ")
	}
	return ctxlog.NewJSONLogger(ctx, w, &slog.HandlerOptions{
		Level: logLevel(a.globals.LogLevel),
	})
}

func (a *app) interactive(ctx context.Context, values any, _ []string) error {
	fv := values.(*interactiveFlags)
	if fv.Count < 0 {
		return fmt.Errorf("invalid number of employees: %v", fv.Count)
	}
	ctx = a.withLogger(ctx)
	p := employee.NewPrompter(a.stdin, a.stdout, employee.WithMaxAttempts(fv.MaxAttempts))
	records, err := p.ReadN(ctx, fv.Count)
	if err != nil {
		return fmt.Errorf("failed to read employee %v of %v: %w", len(records)+1, fv.Count, err)
	}
	return a.sortAndWrite(ctx, records, fv.OutputFlags)
}

func (a *app) file(ctx context.Context, values any, args []string) error {
	fv := values.(*fileFlags)
	ctx = a.withLogger(ctx)
	records, err := employee.ParseFile(ctx, args[0])
	if err != nil {
		return err
	}
	return a.sortAndWrite(ctx, records, fv.OutputFlags)
}

func (a *app) sortAndWrite(ctx context.Context, records []employee.Record, of OutputFlags) (returnErr error) {
	logger := ctxlog.Logger(ctx)
	var opts []heapsort.Option
	if a.globals.Trace {
		opts = append(opts, heapsort.WithSwapCallback(func(iv, jv employee.Record, i, j int) {
			logger.Debug("swap", "i", i, "j", j, "record_i", iv.String(), "record_j", jv.String())
		}))
	}
	start := time.Now()
	heapsort.Sort(records, opts...)
	logger.Info("sorted employees", "employees", len(records), "duration", time.Since(start))
	logger.Debug("sorted salaries", "salaries", employee.Salaries(records))

	if len(of.Output) == 0 {
		return employee.WriteList(a.stdout, records)
	}
	f, err := os.Create(of.Output)
	if err != nil {
		return err
	}
	defer func() {
		returnErr = errors.NewM(returnErr, f.Close())
	}()
	return employee.WriteList(f, records)
}
