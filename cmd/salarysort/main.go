// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command salarysort reads a fixed number of employee records, either
// interactively or from a YAML file, and prints them in descending
// order of salary.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

// GlobalFlags represents the flags common to all commands.
type GlobalFlags struct {
	LogLevel  int  `subcmd:"log-level,0,'logging level: 0=error, 1=warn, 2=info, 3=debug'"`
	LogPretty bool `subcmd:"log-pretty,false,indent json log records"`
	Trace     bool `subcmd:"trace,false,log every swap performed whilst sorting at debug level"`
}

// OutputFlags represents the flags that control where the sorted
// list is written.
type OutputFlags struct {
	Output string `subcmd:"output,,'file to write the sorted list to, stdout is used if not specified'"`
}

type interactiveFlags struct {
	OutputFlags
	Count       int `subcmd:"count,5,number of employees to read"`
	MaxAttempts int `subcmd:"max-attempts,0,'number of attempts allowed for each invalid name or salary, 0 for unlimited'"`
}

type fileFlags struct {
	OutputFlags
}

func newCommandSet(a *app) *subcmd.CommandSet {
	interactiveCmd := subcmd.NewCommand("interactive",
		subcmd.MustRegisterFlagStruct(&interactiveFlags{}, nil, nil),
		a.interactive, subcmd.WithoutArguments())
	interactiveCmd.Document("read employee names and salaries from stdin and print them sorted by descending salary")

	fileCmd := subcmd.NewCommand("file",
		subcmd.MustRegisterFlagStruct(&fileFlags{}, nil, nil),
		a.file, subcmd.ExactlyNumArguments(1))
	fileCmd.Document("read employees from a yaml file and print them sorted by descending salary", "<employees.yaml>")

	cmdSet := subcmd.NewCommandSet(interactiveCmd, fileCmd)
	cmdSet.Document(`sort employees by descending salary using an in-place heapsort.

Employees have a name of at most 24 characters and a non-negative integer
salary. Invalid names or salaries entered interactively are reported and
prompted for again. The sorted list is printed as:

  [id=<name> sal=<salary>], [id=<name> sal=<salary>], ...

The yaml file format is:

  employees:
    - name: <name>
      salary: <salary>
`)
	globals := subcmd.NewFlagSet()
	globals.MustRegisterFlagStruct(&a.globals, nil, nil)
	cmdSet.WithGlobalFlags(globals)
	return cmdSet
}

type app struct {
	globals GlobalFlags
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cmdutil.HandleSignals(cancel, os.Interrupt)
	a := &app{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	if err := newCommandSet(a).Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}
