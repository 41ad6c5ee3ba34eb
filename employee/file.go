// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package employee

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

// FileSpec represents the YAML format used to specify a list of
// employees, for example:
//
//	employees:
//	  - name: Alice
//	    salary: 50000
//	  - name: Bob
//	    salary: 42000
//
// Salaries are validated using ParseSalary rather than by the YAML
// decoder so that they are subject to the same rules as interactive
// input.
type FileSpec struct {
	Employees []EntrySpec `yaml:"employees" cmd:"the list of employees"`
}

// EntrySpec represents a single employee in a FileSpec.
type EntrySpec struct {
	Name   string    `yaml:"name" cmd:"employee name, at most 24 characters"`
	Salary yaml.Node `yaml:"salary" cmd:"non-negative integer salary"`
}

// Records validates the entries and returns the
// corresponding records. All invalid entries are reported.
func (fs FileSpec) Records() ([]Record, error) {
	records := make([]Record, 0, len(fs.Employees))
	var errs errors.M
	for i, e := range fs.Employees {
		r, err := e.record()
		if err != nil {
			errs.Append(fmt.Errorf("employee %d: %w", i, err))
			continue
		}
		records = append(records, r)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (e EntrySpec) record() (Record, error) {
	name, err := ParseName(e.Name)
	if err != nil {
		return Record{}, err
	}
	if e.Salary.Kind != yaml.ScalarNode {
		return Record{}, newInputError(NonNumeric, "salary", e.Salary.Value, nil)
	}
	salary, err := ParseSalary(e.Salary.Value)
	if err != nil {
		return Record{}, err
	}
	return Record{Name: name, Salary: salary}, nil
}

// Parse parses a YAML employee list as per FileSpec.
func Parse(spec []byte) ([]Record, error) {
	var fs FileSpec
	if err := cmdyaml.ParseConfigStrict(spec, &fs); err != nil {
		return nil, err
	}
	return fs.Records()
}

// ParseFile is like Parse but reads the YAML from filename. The file
// is read using cloudeng.io/file.FSReadFile and hence may be read from
// any fs.ReadFileFS stored in the context.
func ParseFile(ctx context.Context, filename string) ([]Record, error) {
	var fs FileSpec
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &fs); err != nil {
		return nil, err
	}
	records, err := fs.Records()
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	ctxlog.Logger(ctx).Info("read employee file", "file", filename, "employees", len(records))
	return records, nil
}
