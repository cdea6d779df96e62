package bfvm

import "github.com/reusee/bfi/tokens"

type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// FindMatch returns the index of the bracket balancing the one at start.
// The scan counts the start bracket itself, so balance first returns to zero at the partner.
func FindMatch(program Program, start int, dir Direction) (int, error) {
	if start < 0 || start >= len(program) {
		return 0, ErrUnbalancedBracket
	}

	step := 1
	expected := tokens.JumpIfZero
	if dir == Backward {
		step = -1
		expected = tokens.JumpIfNonZero
	}
	if program[start] != expected {
		return 0, ErrUnbalancedBracket
	}

	balance := 0
	for i := start; i >= 0 && i < len(program); i += step {
		switch program[i] {
		case tokens.JumpIfZero:
			balance++
		case tokens.JumpIfNonZero:
			balance--
		}
		if balance == 0 {
			return i, nil
		}
	}

	return 0, ErrUnbalancedBracket
}
