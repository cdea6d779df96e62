package bfvm

import (
	"errors"
	"fmt"

	"github.com/reusee/bfi/tokens"
)

var (
	ErrUnbalancedBracket = errors.New("unbalanced bracket")
	ErrInputExhausted    = errors.New("input exhausted")
	ErrStepLimit         = errors.New("step limit exceeded")
	ErrTapeLimit         = errors.New("tape limit exceeded")
	ErrPointerOutOfRange = errors.New("pointer out of range")
	ErrPCOutOfRange      = errors.New("program counter out of range")
)

// Error carries the program position of a fatal condition.
type Error struct {
	PC    int
	Token tokens.Token
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("pc %d (%s): %v", e.PC, e.Token, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
