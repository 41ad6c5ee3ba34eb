// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cloudeng.io/errors"
	"cloudeng.io/payroll/employee"
)

const employeesYAML = `employees:
  - name: A
    salary: 50
  - name: B
    salary: 20
  - name: C
    salary: 80
`

func newTestApp(stdin string) (*app, *strings.Builder, *strings.Builder) {
	stdout, stderr := &strings.Builder{}, &strings.Builder{}
	return &app{
		stdin:  strings.NewReader(stdin),
		stdout: stdout,
		stderr: stderr,
	}, stdout, stderr
}

func writeEmployees(t *testing.T) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "employees.yaml")
	if err := os.WriteFile(filename, []byte(employeesYAML), 0o600); err != nil {
		t.Fatal(err)
	}
	return filename
}

func TestFile(t *testing.T) {
	ctx := context.Background()
	filename := writeEmployees(t)
	a, stdout, _ := newTestApp("")
	if err := newCommandSet(a).DispatchWithArgs(ctx, "salarysort", "file", filename); err != nil {
		t.Fatal(err)
	}
	if got, want := stdout.String(), "[id=C sal=80], [id=A sal=50], [id=B sal=20]\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFileOutput(t *testing.T) {
	ctx := context.Background()
	filename := writeEmployees(t)
	output := filepath.Join(t.TempDir(), "sorted.txt")
	a, stdout, _ := newTestApp("")
	if err := newCommandSet(a).DispatchWithArgs(ctx, "salarysort", "file", "--output="+output, filename); err != nil {
		t.Fatal(err)
	}
	if got := stdout.String(); len(got) != 0 {
		t.Errorf("unexpected output on stdout: %q", got)
	}
	buf, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(buf), "[id=C sal=80], [id=A sal=50], [id=B sal=20]\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInteractive(t *testing.T) {
	ctx := context.Background()
	input := "A\n50\nB\n-20\n20\nC\neighty\n80\nD\n20\n"
	a, stdout, _ := newTestApp(input)
	if err := newCommandSet(a).DispatchWithArgs(ctx, "salarysort", "interactive", "--count=4"); err != nil {
		t.Fatal(err)
	}
	out := stdout.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	last := lines[len(lines)-1]
	if !strings.HasSuffix(last, "[id=C sal=80], [id=A sal=50], [id=B sal=20], [id=D sal=20]") &&
		!strings.HasSuffix(last, "[id=C sal=80], [id=A sal=50], [id=D sal=20], [id=B sal=20]") {
		t.Errorf("unexpected output: %q", last)
	}
	for _, reason := range []employee.Reason{employee.NegativeValue, employee.NonNumeric} {
		if !strings.Contains(out, reason.String()) {
			t.Errorf("%v: not reported in %q", reason, out)
		}
	}
}

func TestInteractiveShortInput(t *testing.T) {
	ctx := context.Background()
	a, _, _ := newTestApp("A\n50\n")
	err := newCommandSet(a).DispatchWithArgs(ctx, "salarysort", "interactive", "--count=2")
	if !errors.Is(err, employee.ReadFailure) {
		t.Fatalf("missing or wrong error: %v", err)
	}
	if !strings.Contains(err.Error(), "employee 2 of 2") {
		t.Errorf("unexpected error message: %v", err)
	}

	err = newCommandSet(a).DispatchWithArgs(ctx, "salarysort", "interactive", "--count=-1")
	if err == nil || !strings.Contains(err.Error(), "invalid number of employees") {
		t.Errorf("missing or wrong error: %v", err)
	}
}

func TestTrace(t *testing.T) {
	ctx := context.Background()
	filename := writeEmployees(t)
	a, _, stderr := newTestApp("")
	if err := newCommandSet(a).DispatchWithArgs(ctx, "salarysort", "--log-level=3", "--trace", "file", filename); err != nil {
		t.Fatal(err)
	}
	logged := stderr.String()
	for _, msg := range []string{`"msg":"swap"`, `"msg":"sorted employees"`, `"msg":"read employee file"`} {
		if !strings.Contains(logged, msg) {
			t.Errorf("%v: missing from log output: %v", msg, logged)
		}
	}

	a, _, stderr = newTestApp("")
	if err := newCommandSet(a).DispatchWithArgs(ctx, "salarysort", "file", filename); err != nil {
		t.Fatal(err)
	}
	if got := stderr.String(); len(got) != 0 {
		t.Errorf("unexpected log output at the default level: %v", got)
	}
}

func TestLogLevel(t *testing.T) {
	for i, tc := range []struct {
		level int
		want  string
	}{
		{-1, "ERROR"}, {0, "ERROR"}, {1, "WARN"}, {2, "INFO"}, {3, "DEBUG"}, {10, "DEBUG"},
	} {
		if got, want := logLevel(tc.level).String(), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}
