package bfvm

import (
	"errors"
	"testing"
)

func TestGrowableTapeRight(t *testing.T) {
	tape := NewGrowableTape(0)
	if tape.Len() != 1 {
		t.Fatalf("got %d", tape.Len())
	}
	ptr := 0
	for i := 1; i <= 100; i++ {
		var err error
		ptr, err = tape.MoveRight(ptr)
		if err != nil {
			t.Fatal(err)
		}
		if ptr != i {
			t.Fatalf("expected %d, got %d", i, ptr)
		}
		if tape.Len() != i+1 {
			t.Fatalf("expected %d, got %d", i+1, tape.Len())
		}
		if tape.Read(ptr) != 0 {
			t.Fatal("fresh cell should be zero")
		}
	}
	// walking back over existing cells does not grow
	for range 100 {
		ptr, _ = tape.MoveLeft(ptr)
	}
	if ptr != 0 || tape.Len() != 101 {
		t.Fatalf("got %d %d", ptr, tape.Len())
	}
}

func TestGrowableTapeLeft(t *testing.T) {
	tape := NewGrowableTape(0)
	tape.Write(0, 42)

	ptr := 0
	for i := range 100 {
		var err error
		ptr, err = tape.MoveLeft(ptr)
		if err != nil {
			t.Fatal(err)
		}
		if ptr != 0 {
			t.Fatalf("got %d", ptr)
		}
		if tape.Len() != i+2 {
			t.Fatalf("expected %d, got %d", i+2, tape.Len())
		}
		if tape.Read(ptr) != 0 {
			t.Fatal("fresh cell should be zero")
		}
		tape.Write(ptr, byte(i))
	}

	cells := tape.Cells()
	if cells[len(cells)-1] != 42 {
		t.Fatalf("origin cell moved: %v", cells[len(cells)-1])
	}
	if cells[0] != 99 || cells[len(cells)-2] != 0 {
		t.Fatalf("got %v", cells)
	}
}

func TestGrowableTapeZigzag(t *testing.T) {
	tape := NewGrowableTape(0)
	ptr := 0
	var err error
	for range 10 {
		ptr, err = tape.MoveLeft(ptr)
		if err != nil {
			t.Fatal(err)
		}
	}
	for range 30 {
		ptr, err = tape.MoveRight(ptr)
		if err != nil {
			t.Fatal(err)
		}
	}
	if tape.Len() != 31 || ptr != 30 {
		t.Fatalf("got %d %d", tape.Len(), ptr)
	}
	for i, c := range tape.Cells() {
		if c != 0 {
			t.Fatalf("cell %d is %d", i, c)
		}
	}
}

func TestGrowableTapeLimit(t *testing.T) {
	tape := NewGrowableTape(3)
	ptr := 0
	var err error
	ptr, err = tape.MoveRight(ptr)
	if err != nil {
		t.Fatal(err)
	}
	ptr, err = tape.MoveRight(ptr)
	if err != nil {
		t.Fatal(err)
	}
	_, err = tape.MoveRight(ptr)
	if !errors.Is(err, ErrTapeLimit) {
		t.Fatalf("got %v", err)
	}
	_, err = tape.MoveLeft(0)
	if !errors.Is(err, ErrTapeLimit) {
		t.Fatalf("got %v", err)
	}
	// moving inside the tape is still fine
	ptr, err = tape.MoveLeft(ptr)
	if err != nil || ptr != 1 {
		t.Fatalf("got %d %v", ptr, err)
	}
}

func TestGrowableTapeLoad(t *testing.T) {
	tape := NewGrowableTape(0)
	if err := tape.Load([]byte{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	if tape.Len() != 3 || tape.Read(2) != 3 {
		t.Fatalf("got %v", tape.Cells())
	}
	if err := tape.Load(nil); err != nil {
		t.Fatal(err)
	}
	if tape.Len() != 1 || tape.Read(0) != 0 {
		t.Fatalf("got %v", tape.Cells())
	}
}

func TestGrowableTapeLoadLimit(t *testing.T) {
	tape := NewGrowableTape(2)
	if err := tape.Load([]byte{1, 2, 3, 4, 5}); !errors.Is(err, ErrTapeLimit) {
		t.Fatalf("got %v", err)
	}
	if tape.Len() != 1 {
		t.Fatalf("got %v", tape.Cells())
	}
	if err := tape.Load([]byte{1, 2}); err != nil {
		t.Fatal(err)
	}
	if tape.Len() != 2 {
		t.Fatalf("got %v", tape.Cells())
	}
	if _, err := tape.MoveRight(1); !errors.Is(err, ErrTapeLimit) {
		t.Fatalf("got %v", err)
	}
}

func TestFixedTape(t *testing.T) {
	tape := NewFixedTape(4, false)
	if tape.Len() != 4 {
		t.Fatal()
	}
	if _, err := tape.MoveLeft(0); !errors.Is(err, ErrPointerOutOfRange) {
		t.Fatalf("got %v", err)
	}
	if _, err := tape.MoveRight(3); !errors.Is(err, ErrPointerOutOfRange) {
		t.Fatalf("got %v", err)
	}
	ptr, err := tape.MoveRight(2)
	if err != nil || ptr != 3 {
		t.Fatalf("got %d %v", ptr, err)
	}

	if NewFixedTape(0, false).Len() != DefaultFixedSize {
		t.Fatal()
	}
}

func TestFixedTapeWrap(t *testing.T) {
	tape := NewFixedTape(4, true)
	ptr, err := tape.MoveLeft(0)
	if err != nil || ptr != 3 {
		t.Fatalf("got %d %v", ptr, err)
	}
	ptr, err = tape.MoveRight(ptr)
	if err != nil || ptr != 0 {
		t.Fatalf("got %d %v", ptr, err)
	}
	tape.Write(3, 7)
	tape.Reset()
	if tape.Read(3) != 0 {
		t.Fatal()
	}
}
