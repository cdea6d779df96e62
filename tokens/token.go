package tokens

type Token uint8

const (
	CellIncrement Token = iota
	CellDecrement
	PointerLeft
	PointerRight
	Output
	Input
	JumpIfZero
	JumpIfNonZero

	// NoOp marks source symbols that map to no instruction. It never reaches the machine.
	NoOp
)

// All lists the executable tokens in canonical order.
var All = [...]Token{
	CellIncrement,
	CellDecrement,
	PointerLeft,
	PointerRight,
	Output,
	Input,
	JumpIfZero,
	JumpIfNonZero,
}

var symbols = [...]string{
	CellIncrement: "+",
	CellDecrement: "-",
	PointerLeft:   "<",
	PointerRight:  ">",
	Output:        ".",
	Input:         ",",
	JumpIfZero:    "[",
	JumpIfNonZero: "]",
}

func (t Token) Valid() bool {
	return t < NoOp
}

func (t Token) String() string {
	if t.Valid() {
		return symbols[t]
	}
	if t == NoOp {
		return "nop"
	}
	return "invalid"
}
