package bfvm

import "github.com/reusee/bfi/tokens"

type Program []tokens.Token

// CheckBrackets reports the first bracket without a counterpart.
func CheckBrackets(program Program) error {
	var open []int
	for i, token := range program {
		switch token {
		case tokens.JumpIfZero:
			open = append(open, i)
		case tokens.JumpIfNonZero:
			if len(open) == 0 {
				return &Error{
					PC:    i,
					Token: token,
					Err:   ErrUnbalancedBracket,
				}
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		return &Error{
			PC:    open[len(open)-1],
			Token: tokens.JumpIfZero,
			Err:   ErrUnbalancedBracket,
		}
	}
	return nil
}
