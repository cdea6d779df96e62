package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/bfi/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

func toStringDict(globals map[string]any) starlark.StringDict {
	mappings := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		mappings[name] = toStarlarkValue(value)
	}
	return mappings
}

// Tap opens an interactive starlark session over globals on the terminal.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: what,
		}
		repl.REPLOptions(fileOptions, thread, toStringDict(globals))
	}
}

// Eval evaluates one expression over globals.
type Eval func(ctx context.Context, expr string, globals map[string]any) (string, error)

func (Module) Eval() Eval {
	return func(ctx context.Context, expr string, globals map[string]any) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		thread := &starlark.Thread{
			Name: "eval",
		}
		done := make(chan struct{})
		defer close(done)
		go func() {
			select {
			case <-ctx.Done():
				thread.Cancel(ctx.Err().Error())
			case <-done:
			}
		}()
		value, err := starlark.EvalOptions(fileOptions, thread, "eval", expr, toStringDict(globals))
		if err != nil {
			return "", err
		}
		if s, ok := value.(starlark.String); ok {
			return string(s), nil
		}
		return value.String(), nil
	}
}
