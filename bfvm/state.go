package bfvm

import (
	"encoding/gob"
	"fmt"
	"io"
)

type State struct {
	PC      int
	Pointer int
	Cells   []byte
	Steps   int
}

func (m *Machine) State() State {
	return State{
		PC:      m.PC,
		Pointer: m.Pointer,
		Cells:   m.Tape.Cells(),
		Steps:   m.Steps,
	}
}

// LoadState installs a previously captured state, for example to carry a tape into another program.
func (m *Machine) LoadState(state State) error {
	if state.PC < 0 || state.PC > len(m.Program) {
		return fmt.Errorf("load state: pc %d of %d: %w", state.PC, len(m.Program), ErrPCOutOfRange)
	}
	if err := m.Tape.Load(state.Cells); err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	if state.Pointer < 0 || state.Pointer >= m.Tape.Len() {
		return fmt.Errorf("load state: pointer %d: %w", state.Pointer, ErrPointerOutOfRange)
	}
	m.PC = state.PC
	m.Pointer = state.Pointer
	m.Steps = state.Steps
	return nil
}

type snapshot struct {
	Program Program
	State   State
}

func (m *Machine) Snapshot(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(snapshot{
		Program: m.Program,
		State:   m.State(),
	}); err != nil {
		return err
	}
	return nil
}

func (m *Machine) Restore(r io.Reader) error {
	dec := gob.NewDecoder(r)
	var s snapshot
	if err := dec.Decode(&s); err != nil {
		return err
	}
	m.Program = s.Program
	m.jumps = nil
	return m.LoadState(s.State)
}

func EncodeState(w io.Writer, state State) error {
	return gob.NewEncoder(w).Encode(state)
}

func DecodeState(r io.Reader) (state State, err error) {
	err = gob.NewDecoder(r).Decode(&state)
	return
}
