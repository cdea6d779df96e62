package bfvm

// Tape is the addressable memory of a machine.
// Pointers handed to a tape must come from its own Move calls.
type Tape interface {
	Read(ptr int) byte
	Write(ptr int, value byte)
	MoveLeft(ptr int) (int, error)
	MoveRight(ptr int) (int, error)
	Len() int
	Cells() []byte
	Load(cells []byte) error
	Reset()
}

// DefaultFixedSize is the classic 30000 cell array.
const DefaultFixedSize = 30000
