package bfvm

import (
	"context"

	"github.com/reusee/bfi/tokens"
)

const defaultBudget = 1 << 16

// Run executes until the program halts or a fatal error is yielded.
// Every Budget steps it yields InterruptBudget; returning false from yield stops the run.
func (m *Machine) Run(yield func(*Interrupt, error) bool) {
	for {
		if m.StepLimit > 0 && m.Steps >= m.StepLimit && !m.Halted() {
			token := tokens.NoOp
			if m.PC >= 0 {
				token = m.Program[m.PC]
			}
			yield(nil, &Error{
				PC:    m.PC,
				Token: token,
				Err:   ErrStepLimit,
			})
			return
		}

		halted, err := m.Step()
		if err != nil {
			yield(nil, err)
			return
		}
		if halted {
			return
		}

		if m.Budget > 0 && m.Steps%m.Budget == 0 {
			if !yield(InterruptBudget, nil) {
				return
			}
		}
	}
}

// Exec runs to completion. Cancellation of ctx is observed at budget boundaries.
func (m *Machine) Exec(ctx context.Context) (State, error) {
	if m.Budget <= 0 {
		m.Budget = defaultBudget
	}
	for interrupt, err := range m.Run {
		if err != nil {
			return m.State(), err
		}
		if interrupt == InterruptBudget {
			if err := ctx.Err(); err != nil {
				return m.State(), err
			}
		}
	}
	return m.State(), nil
}
