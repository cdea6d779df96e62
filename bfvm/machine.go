package bfvm

import (
	"errors"
	"fmt"
	"io"

	"github.com/reusee/bfi/tokens"
)

var ErrInvalidToken = errors.New("invalid token")

// Machine executes a Program against a Tape.
// It is owned by a single goroutine; nothing else may touch its state during a run.
type Machine struct {
	Program   Program
	PC        int
	Pointer   int
	Tape      Tape
	Input     io.Reader
	Output    io.Writer
	EOF       EOFPolicy
	StepLimit int
	Budget    int
	Steps     int

	jumps map[int]int
	buf   [1]byte
}

func NewMachine(program Program, options ...Option) *Machine {
	m := &Machine{
		Program: program,
	}
	for _, option := range options {
		option(m)
	}
	if m.Tape == nil {
		m.Tape = NewGrowableTape(0)
	}
	return m
}

// Append adds instructions to the end of the program.
func (m *Machine) Append(ts ...tokens.Token) {
	m.Program = append(m.Program, ts...)
	m.jumps = nil
}

// Reset rewinds the machine and zeroes the tape. The program is kept.
func (m *Machine) Reset() {
	m.PC = 0
	m.Pointer = 0
	m.Steps = 0
	m.Tape.Reset()
}

// Clear resets the machine and drops the program.
func (m *Machine) Clear() {
	m.Reset()
	m.Program = nil
	m.jumps = nil
}

func (m *Machine) Halted() bool {
	return m.PC >= len(m.Program)
}

// Step executes one instruction. It reports halted once the program counter is past the last instruction.
func (m *Machine) Step() (halted bool, err error) {
	if m.PC >= len(m.Program) {
		return true, nil
	}
	if m.PC < 0 {
		return false, &Error{
			PC:    m.PC,
			Token: tokens.NoOp,
			Err:   ErrPCOutOfRange,
		}
	}

	token := m.Program[m.PC]
	switch token {

	case tokens.CellIncrement:
		m.Tape.Write(m.Pointer, m.Tape.Read(m.Pointer)+1)

	case tokens.CellDecrement:
		m.Tape.Write(m.Pointer, m.Tape.Read(m.Pointer)-1)

	case tokens.PointerLeft:
		m.Pointer, err = m.Tape.MoveLeft(m.Pointer)

	case tokens.PointerRight:
		m.Pointer, err = m.Tape.MoveRight(m.Pointer)

	case tokens.Output:
		err = m.output()

	case tokens.Input:
		err = m.input()

	case tokens.JumpIfZero:
		if m.Tape.Read(m.Pointer) == 0 {
			var target int
			target, err = m.jump(Forward)
			if err == nil {
				m.PC = target
			}
		}

	case tokens.JumpIfNonZero:
		if m.Tape.Read(m.Pointer) != 0 {
			var target int
			target, err = m.jump(Backward)
			if err == nil {
				m.PC = target
			}
		}

	default:
		err = ErrInvalidToken
	}

	if err != nil {
		return false, &Error{
			PC:    m.PC,
			Token: token,
			Err:   err,
		}
	}

	// taken jumps land on the partner bracket, so this also steps past it
	m.PC++
	m.Steps++
	return false, nil
}

func (m *Machine) jump(dir Direction) (int, error) {
	if target, ok := m.jumps[m.PC]; ok {
		return target, nil
	}
	target, err := FindMatch(m.Program, m.PC, dir)
	if err != nil {
		return 0, err
	}
	if m.jumps == nil {
		m.jumps = make(map[int]int)
	}
	m.jumps[m.PC] = target
	m.jumps[target] = m.PC
	return target, nil
}

type flusher interface {
	Flush() error
}

func (m *Machine) output() error {
	if m.Output == nil {
		return nil
	}
	m.buf[0] = m.Tape.Read(m.Pointer)
	if _, err := m.Output.Write(m.buf[:]); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if f, ok := m.Output.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush output: %w", err)
		}
	}
	return nil
}

func (m *Machine) readByte() (byte, error) {
	if m.Input == nil {
		return 0, io.EOF
	}
	if r, ok := m.Input.(io.ByteReader); ok {
		return r.ReadByte()
	}
	if _, err := io.ReadFull(m.Input, m.buf[:]); err != nil {
		return 0, err
	}
	return m.buf[0], nil
}

func (m *Machine) input() error {
	b, err := m.readByte()
	if errors.Is(err, io.EOF) {
		switch m.EOF {
		case EOFZero:
			m.Tape.Write(m.Pointer, 0)
		case EOFMax:
			m.Tape.Write(m.Pointer, 255)
		case EOFUnchanged:
		default:
			return ErrInputExhausted
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	m.Tape.Write(m.Pointer, b)
	return nil
}
