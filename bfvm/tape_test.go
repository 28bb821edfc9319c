package bfvm

import (
	"errors"
	"math"
	"testing"
)

func TestTapeWrap(t *testing.T) {
	tape := NewTape()
	tape.Decrement()
	if tape.Read() != 255 {
		t.Fatalf("got %d", tape.Read())
	}
	tape.Increment()
	if tape.Read() != 0 {
		t.Fatalf("got %d", tape.Read())
	}
	if !tape.IsEmpty() {
		t.Fatal()
	}
	for range 256 {
		tape.Increment()
	}
	if tape.Read() != 0 {
		t.Fatalf("got %d", tape.Read())
	}
}

func TestTapeSparse(t *testing.T) {
	tape := NewTape()
	if tape.Read() != 0 || !tape.IsEmpty() || tape.Len() != 0 {
		t.Fatal()
	}
	if err := tape.MoveLeft(); err != nil {
		t.Fatal(err)
	}
	if tape.Head != -1 {
		t.Fatalf("got %d", tape.Head)
	}
	tape.Increment()
	if err := tape.MoveRight(); err != nil {
		t.Fatal(err)
	}
	if err := tape.MoveRight(); err != nil {
		t.Fatal(err)
	}
	tape.Write(7)
	if tape.Len() != 2 {
		t.Fatalf("got %d", tape.Len())
	}

	var addrs []int
	var values []byte
	for addr, value := range tape.All() {
		addrs = append(addrs, addr)
		values = append(values, value)
	}
	if len(addrs) != 2 || addrs[0] != -1 || addrs[1] != 1 {
		t.Fatalf("got %v", addrs)
	}
	if values[0] != 1 || values[1] != 7 {
		t.Fatalf("got %v", values)
	}

	snapshot := tape.Snapshot()
	tape.Write(0)
	if tape.Len() != 1 {
		t.Fatalf("got %d", tape.Len())
	}
	if snapshot.Cells[1] != 7 || snapshot.Head != 1 {
		t.Fatalf("got %+v", snapshot)
	}
}

func TestTapeHeadBounds(t *testing.T) {
	tape := &Tape{
		Head: math.MinInt,
	}
	err := tape.MoveLeft()
	if !errors.Is(err, ErrHeadUnderflow) || !errors.Is(err, ErrRuntime) {
		t.Fatalf("got %v", err)
	}
	if tape.Head != math.MinInt {
		t.Fatal()
	}

	tape.Head = math.MaxInt
	err = tape.MoveRight()
	if !errors.Is(err, ErrHeadOverflow) {
		t.Fatalf("got %v", err)
	}

	// zero-value tape is usable
	tape.Head = 0
	tape.Increment()
	if tape.Read() != 1 {
		t.Fatal()
	}
}
