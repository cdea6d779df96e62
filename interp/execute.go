package interp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/reusee/bfi/bfvm"
	"github.com/reusee/bfi/logs"
	"github.com/reusee/bfi/sources"
)

// Parse tokenizes a source with the configured dialect and checks its brackets.
type Parse func(src sources.Source) (bfvm.Program, error)

func (Module) Parse(
	getDialect GetDialect,
) Parse {
	return func(src sources.Source) (bfvm.Program, error) {
		dialect, err := getDialect()
		if err != nil {
			return nil, err
		}
		program, err := dialect.Tokenize(src.Text)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src.Location, err)
		}
		if err := bfvm.CheckBrackets(program); err != nil {
			return nil, fmt.Errorf("%s: %w", src.Location, err)
		}
		return program, nil
	}
}

// Execute runs a source to completion. A non-nil initial state supplies the starting tape and pointer.
type Execute func(ctx context.Context, src sources.Source, in io.Reader, out io.Writer, initial *bfvm.State) (bfvm.State, error)

func (Module) Execute(
	parse Parse,
	newMachine NewMachine,
	newSpan logs.NewSpan,
	logger logs.Logger,
) Execute {
	return func(ctx context.Context, src sources.Source, in io.Reader, out io.Writer, initial *bfvm.State) (state bfvm.State, err error) {
		ctx, _ = newSpan(ctx, "")
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		program, err := parse(src)
		if err != nil {
			return state, err
		}

		if in != nil {
			in = contextReader{ctx: ctx, r: in}
		}
		w := bufio.NewWriter(out)
		machine, err := newMachine(program, in, w)
		if err != nil {
			return state, err
		}
		if initial != nil {
			carried := *initial
			carried.PC = 0
			carried.Steps = 0
			if err := machine.LoadState(carried); err != nil {
				return state, err
			}
		}

		logger.InfoContext(ctx, "run",
			"source", src.Location,
			"tokens", len(program),
		)
		t0 := time.Now()
		state, err = machine.Exec(ctx)
		if e := w.Flush(); e != nil && err == nil {
			err = e
		}
		logger.InfoContext(ctx, "run finished",
			"source", src.Location,
			"steps", state.Steps,
			"cells", len(state.Cells),
			"duration", time.Since(t0),
			"error", err,
		)
		return state, err
	}
}
