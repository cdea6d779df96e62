package bfvm

import "fmt"

// GrowableTape grows by one zero cell whenever the pointer walks off either end.
type GrowableTape struct {
	// MaxCells caps the tape length. Zero means unbounded.
	MaxCells int

	buf  []byte
	head int
}

var _ Tape = new(GrowableTape)

func NewGrowableTape(maxCells int) *GrowableTape {
	t := &GrowableTape{
		MaxCells: maxCells,
	}
	t.Reset()
	return t
}

func (t *GrowableTape) Reset() {
	t.buf = make([]byte, 1, 16)
	t.head = 0
}

func (t *GrowableTape) Len() int {
	return len(t.buf) - t.head
}

func (t *GrowableTape) Read(ptr int) byte {
	return t.buf[t.head+ptr]
}

func (t *GrowableTape) Write(ptr int, value byte) {
	t.buf[t.head+ptr] = value
}

func (t *GrowableTape) MoveRight(ptr int) (int, error) {
	if ptr+1 >= t.Len() {
		if t.MaxCells > 0 && t.Len() >= t.MaxCells {
			return ptr, ErrTapeLimit
		}
		t.buf = append(t.buf, 0)
	}
	return ptr + 1, nil
}

func (t *GrowableTape) MoveLeft(ptr int) (int, error) {
	if ptr > 0 {
		return ptr - 1, nil
	}
	if t.MaxCells > 0 && t.Len() >= t.MaxCells {
		return ptr, ErrTapeLimit
	}
	if t.head == 0 {
		t.growFront()
	}
	t.head--
	t.buf[t.head] = 0
	// the new cell takes index 0, every existing cell shifts up by one
	return 0, nil
}

func (t *GrowableTape) growFront() {
	n := t.Len()
	room := max(n, 16)
	buf := make([]byte, room+n, room+cap(t.buf)-t.head)
	copy(buf[room:], t.buf[t.head:])
	t.buf = buf
	t.head = room
}

func (t *GrowableTape) Cells() []byte {
	ret := make([]byte, t.Len())
	copy(ret, t.buf[t.head:])
	return ret
}

// Load replaces the tape contents. An empty slice leaves a single zero cell.
// Contents longer than MaxCells are rejected and leave the tape untouched.
func (t *GrowableTape) Load(cells []byte) error {
	if t.MaxCells > 0 && len(cells) > t.MaxCells {
		return fmt.Errorf("load %d cells: %w", len(cells), ErrTapeLimit)
	}
	t.Reset()
	if len(cells) > 0 {
		t.buf = append(t.buf[:0], cells...)
	}
	return nil
}
