package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/reusee/bfi/cmds"
	"github.com/reusee/bfi/modes"
	"github.com/reusee/dscope"
)

type action func(ctx context.Context, scope dscope.Scope) error

var selected action

func define(name string, desc string, fn any) {
	cmds.Define(name, cmds.Func(fn).Desc(desc))
}

func init() {
	define("run", "run PATH, - for stdin, http(s) urls are fetched", func(path string) {
		selected = func(ctx context.Context, scope dscope.Scope) error {
			return runProgram(ctx, scope, path)
		}
	})
	define("translate", "translate PATH into dialect TO", func(path string, to string) {
		selected = func(ctx context.Context, scope dscope.Scope) error {
			return translateProgram(ctx, scope, path, to)
		}
	})
	define("check", "tokenize PATH and check its brackets", func(path string) {
		selected = func(ctx context.Context, scope dscope.Scope) error {
			return checkProgram(ctx, scope, path)
		}
	})
	define("dialects", "list dialects", func() {
		selected = listDialects
	})
	define("-snapshots", "list saved tapes", func() {
		selected = listSnapshots
	})
	define("forget", "forget saved tapes named NAME", func(name string) {
		selected = func(ctx context.Context, scope dscope.Scope) error {
			return forgetSnapshots(ctx, scope, name)
		}
	})
}

func main() {
	cmds.Execute(os.Args[1:])
	if selected == nil {
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(exitUsage)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	// a second interrupt kills the process
	context.AfterFunc(ctx, stop)

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	err := selected(ctx, scope)
	if errors.Is(err, context.Canceled) {
		err = errors.Join(errInterrupted, err)
	}
	exit(err)
}
