package bfvm

import "io"

type Option func(*Machine)

func WithTape(tape Tape) Option {
	return func(m *Machine) {
		m.Tape = tape
	}
}

func WithInput(r io.Reader) Option {
	return func(m *Machine) {
		m.Input = r
	}
}

func WithOutput(w io.Writer) Option {
	return func(m *Machine) {
		m.Output = w
	}
}

func WithEOF(policy EOFPolicy) Option {
	return func(m *Machine) {
		m.EOF = policy
	}
}

// WithStepLimit stops the run with ErrStepLimit after n steps. Zero means no limit.
func WithStepLimit(n int) Option {
	return func(m *Machine) {
		m.StepLimit = n
	}
}

func WithBudget(n int) Option {
	return func(m *Machine) {
		m.Budget = n
	}
}
