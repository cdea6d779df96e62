package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/bfi/bficonfigs"
	"github.com/reusee/bfi/bfvm"
	"github.com/reusee/bfi/cmds"
	"github.com/reusee/bfi/debugs"
	"github.com/reusee/bfi/interp"
	"github.com/reusee/bfi/logs"
	"github.com/reusee/bfi/sources"
	"github.com/reusee/bfi/storages"
	"github.com/reusee/dscope"
)

var (
	tapFlag     = cmds.Switch("-tap", "inspect the final machine state in a starlark repl")
	evalFlag    = cmds.Collect[string]("-eval", "print a starlark expression over the final machine state")
	saveFlag    = cmds.Var[string]("-save", "save the final tape as NAME")
	restoreFlag = cmds.Var[string]("-restore", "start from the tape saved as NAME")
)

func runProgram(ctx context.Context, scope dscope.Scope, path string) (err error) {
	scope.Call(func(
		load sources.Load,
		execute interp.Execute,
		openStore storages.OpenStore,
		dialectName bficonfigs.DialectName,
		tap debugs.Tap,
		eval debugs.Eval,
		logger logs.Logger,
		stdin sources.Stdin,
		stdout Stdout,
	) {
		var store *storages.Store
		getStore := func() (*storages.Store, error) {
			if store != nil {
				return store, nil
			}
			var err error
			store, err = openStore()
			return store, err
		}
		defer func() {
			if store != nil {
				store.Close()
			}
		}()

		var src sources.Source
		src, err = load(ctx, path)
		if err != nil {
			return
		}

		var initial *bfvm.State
		if *restoreFlag != "" {
			var s *storages.Store
			s, err = getStore()
			if err != nil {
				return
			}
			var snapshot storages.Snapshot
			snapshot, err = s.Load(ctx, *restoreFlag)
			if err != nil {
				return
			}
			logger.InfoContext(ctx, "restore",
				"name", snapshot.Name,
				"id", snapshot.ID,
				"cells", len(snapshot.State.Cells),
			)
			initial = &snapshot.State
		}

		state, runErr := execute(ctx, src, stdin, stdout, initial)

		globals := debugs.MachineGlobals(state, runErr)
		for _, expr := range *evalFlag {
			var result string
			result, err = eval(ctx, expr, globals)
			if err != nil {
				return
			}
			fmt.Fprintln(os.Stderr, result)
		}
		if *tapFlag {
			tap(ctx, path, globals)
		}

		if runErr != nil {
			err = runErr
			return
		}

		if *saveFlag != "" {
			var s *storages.Store
			s, err = getStore()
			if err != nil {
				return
			}
			var snapshot storages.Snapshot
			snapshot, err = s.Save(ctx, *saveFlag, string(dialectName), state)
			if err != nil {
				return
			}
			logger.InfoContext(ctx, "saved",
				"name", snapshot.Name,
				"id", snapshot.ID,
			)
		}
	})
	return
}
