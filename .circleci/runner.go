// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command runner runs the tests and linters for this module in CI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/errors"
)

type testFlags struct {
	Race bool `subcmd:"race,true,run tests with the race detector enabled"`
}

type lintFlags struct {
	Linter string `subcmd:"linter,golangci-lint,linter to run in addition to go vet"`
}

func main() {
	testCmd := subcmd.NewCommand("test",
		subcmd.MustRegisterFlagStruct(&testFlags{}, nil, nil),
		runTests, subcmd.OptionalSingleArgument())
	testCmd.Document("run tests", "[<package-pattern>]")
	lintCmd := subcmd.NewCommand("lint",
		subcmd.MustRegisterFlagStruct(&lintFlags{}, nil, nil),
		runLints, subcmd.OptionalSingleArgument())
	lintCmd.Document("run go vet and the configured linter", "[<package-pattern>]")
	cmdSet := subcmd.NewCommandSet(testCmd, lintCmd)
	if err := cmdSet.Dispatch(context.Background()); err != nil {
		cmdutil.Exit("%v", err)
	}
}

func packages(args []string) string {
	if len(args) == 0 {
		return "./..."
	}
	return args[0]
}

func runTests(ctx context.Context, values any, args []string) error {
	fv := values.(*testFlags)
	cl := []string{"test", "-failfast", "--covermode=atomic"}
	if fv.Race {
		cl = append(cl, "-race")
	}
	return run(ctx, "go", append(cl, packages(args))...)
}

func runLints(ctx context.Context, values any, args []string) error {
	fv := values.(*lintFlags)
	pkgs := packages(args)
	var errs errors.M
	errs.Append(run(ctx, "go", "vet", pkgs))
	if len(fv.Linter) > 0 {
		errs.Append(run(ctx, fv.Linter, "run", pkgs))
	}
	return errs.Err()
}

func run(ctx context.Context, command string, args ...string) error {
	fmt.Printf("%v %v...\n", command, args)
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Printf("%v... failed\n", command)
		return fmt.Errorf("%v %v: %w", command, args, err)
	}
	fmt.Printf("%v... ok\n", command)
	return nil
}
