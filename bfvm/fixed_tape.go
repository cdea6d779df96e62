package bfvm

// FixedTape is a fixed size array of cells.
// Without Wrap, moving off either end is an error.
type FixedTape struct {
	Wrap  bool
	cells []byte
}

var _ Tape = new(FixedTape)

func NewFixedTape(size int, wrap bool) *FixedTape {
	if size <= 0 {
		size = DefaultFixedSize
	}
	return &FixedTape{
		Wrap:  wrap,
		cells: make([]byte, size),
	}
}

func (t *FixedTape) Reset() {
	clear(t.cells)
}

func (t *FixedTape) Len() int {
	return len(t.cells)
}

func (t *FixedTape) Read(ptr int) byte {
	return t.cells[ptr]
}

func (t *FixedTape) Write(ptr int, value byte) {
	t.cells[ptr] = value
}

func (t *FixedTape) MoveRight(ptr int) (int, error) {
	if ptr+1 < len(t.cells) {
		return ptr + 1, nil
	}
	if t.Wrap {
		return 0, nil
	}
	return ptr, ErrPointerOutOfRange
}

func (t *FixedTape) MoveLeft(ptr int) (int, error) {
	if ptr > 0 {
		return ptr - 1, nil
	}
	if t.Wrap {
		return len(t.cells) - 1, nil
	}
	return ptr, ErrPointerOutOfRange
}

func (t *FixedTape) Cells() []byte {
	ret := make([]byte, len(t.cells))
	copy(ret, t.cells)
	return ret
}

// Load copies cells into the tape, truncating to its size.
func (t *FixedTape) Load(cells []byte) error {
	t.Reset()
	copy(t.cells, cells)
	return nil
}
