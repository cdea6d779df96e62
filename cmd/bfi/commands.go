package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/reusee/bfi/dialects"
	"github.com/reusee/bfi/interp"
	"github.com/reusee/bfi/sources"
	"github.com/reusee/bfi/storages"
	"github.com/reusee/bfi/tokens"
	"github.com/reusee/dscope"
)

func translateProgram(ctx context.Context, scope dscope.Scope, path string, to string) (err error) {
	scope.Call(func(
		load sources.Load,
		getDialect interp.GetDialect,
		getDialectByName interp.GetDialectByName,
		stdout Stdout,
	) {
		var src sources.Source
		src, err = load(ctx, path)
		if err != nil {
			return
		}
		var from, target dialects.Dialect
		from, err = getDialect()
		if err != nil {
			return
		}
		target, err = getDialectByName(to)
		if err != nil {
			return
		}
		var out string
		out, err = dialects.Translate(src.Text, from, target)
		if err != nil {
			return
		}
		_, err = fmt.Fprintln(stdout, out)
	})
	return
}

func checkProgram(ctx context.Context, scope dscope.Scope, path string) (err error) {
	scope.Call(func(
		load sources.Load,
		parse interp.Parse,
		stdout Stdout,
	) {
		var src sources.Source
		src, err = load(ctx, path)
		if err != nil {
			return
		}
		program, e := parse(src)
		if e != nil {
			err = e
			return
		}
		_, err = fmt.Fprintf(stdout, "%s: %d tokens\n", src.Location, len(program))
	})
	return
}

func listDialects(ctx context.Context, scope dscope.Scope) (err error) {
	scope.Call(func(
		stdout Stdout,
	) {
		for _, name := range dialects.Names() {
			d, err := dialects.Lookup(name)
			ce(err)
			symbols, err := d.Render(tokens.All[:])
			ce(err)
			fmt.Fprintf(stdout, "%s\t%s\n", d, symbols)
		}
		_, err = fmt.Fprintln(stdout, "custom\t-symbols or custom_symbols, eight runes in the order +-<>.,[]")
	})
	return
}

func listSnapshots(ctx context.Context, scope dscope.Scope) (err error) {
	scope.Call(func(
		openStore storages.OpenStore,
		stdout Stdout,
	) {
		var store *storages.Store
		store, err = openStore()
		if err != nil {
			return
		}
		defer store.Close()
		var list []storages.Snapshot
		list, err = store.List(ctx)
		if err != nil {
			return
		}
		w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
		for _, snapshot := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				snapshot.Name,
				snapshot.Dialect,
				snapshot.CreatedAt.Format(time.DateTime),
				snapshot.ID,
			)
		}
		err = w.Flush()
	})
	return
}

func forgetSnapshots(ctx context.Context, scope dscope.Scope, name string) (err error) {
	scope.Call(func(
		openStore storages.OpenStore,
	) {
		var store *storages.Store
		store, err = openStore()
		if err != nil {
			return
		}
		defer store.Close()
		var n int64
		n, err = store.Delete(ctx, name)
		if err != nil {
			return
		}
		if n == 0 {
			err = fmt.Errorf("%s: %w", name, storages.ErrNotFound)
		}
	})
	return
}
