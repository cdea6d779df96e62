package bfvm

import "fmt"

// EOFPolicy decides what an Input instruction does once the input source is exhausted.
type EOFPolicy int

const (
	EOFError EOFPolicy = iota
	EOFZero
	EOFUnchanged
	EOFMax
)

var eofPolicyNames = map[EOFPolicy]string{
	EOFError:     "error",
	EOFZero:      "zero",
	EOFUnchanged: "unchanged",
	EOFMax:       "max",
}

func (p EOFPolicy) String() string {
	if name, ok := eofPolicyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("EOFPolicy(%d)", int(p))
}

func ParseEOFPolicy(str string) (EOFPolicy, error) {
	switch str {
	case "", "error":
		return EOFError, nil
	case "zero", "0":
		return EOFZero, nil
	case "unchanged", "keep":
		return EOFUnchanged, nil
	case "max", "255", "-1":
		return EOFMax, nil
	}
	return EOFError, fmt.Errorf("unknown eof policy: %s", str)
}
