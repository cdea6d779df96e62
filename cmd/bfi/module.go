package main

import (
	"io"
	"os"

	"github.com/reusee/bfi/debugs"
	"github.com/reusee/bfi/interp"
	"github.com/reusee/bfi/storages"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Interp   interp.Module
	Storages storages.Module
	Debugs   debugs.Module
}

// Stdout receives program output and command results.
type Stdout io.Writer

func (Module) Stdout() Stdout {
	return os.Stdout
}
