package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/reusee/bfi/bfvm"
	"github.com/reusee/bfi/dialects"
)

func ce(err error) {
	if err != nil {
		panic(err)
	}
}

// exit codes
const (
	exitOK       = 0
	exitRuntime  = 1
	exitUsage    = 2
	exitSource   = 3
	exitCanceled = 130
)

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, bfvm.ErrUnbalancedBracket),
		errors.Is(err, dialects.ErrInvalidSource),
		errors.Is(err, dialects.ErrUnknownDialect),
		errors.Is(err, dialects.ErrSymbolCount),
		errors.Is(err, dialects.ErrDuplicateSymbol):
		return exitSource
	case errors.Is(err, errInterrupted):
		return exitCanceled
	}
	return exitRuntime
}

var errInterrupted = errors.New("interrupted")

func exit(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "bfi:", err)
	}
	os.Exit(exitCode(err))
}
