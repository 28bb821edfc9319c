package bfvm

import (
	"iter"
	"maps"
	"math"
	"slices"
)

// Tape is a sparse byte memory addressed by signed integers.
// Only non-zero cells are stored.
type Tape struct {
	Cells map[int]byte
	Head  int
}

func NewTape() *Tape {
	return &Tape{
		Cells: make(map[int]byte),
	}
}

func (t *Tape) MoveRight() error {
	if t.Head == math.MaxInt {
		return ErrHeadOverflow
	}
	t.Head++
	return nil
}

func (t *Tape) MoveLeft() error {
	if t.Head == math.MinInt {
		return ErrHeadUnderflow
	}
	t.Head--
	return nil
}

func (t *Tape) Read() byte {
	return t.Cells[t.Head]
}

func (t *Tape) Write(b byte) {
	if b == 0 {
		delete(t.Cells, t.Head)
		return
	}
	if t.Cells == nil {
		t.Cells = make(map[int]byte)
	}
	t.Cells[t.Head] = b
}

func (t *Tape) Increment() {
	t.Write(t.Read() + 1)
}

func (t *Tape) Decrement() {
	t.Write(t.Read() - 1)
}

func (t *Tape) Len() int {
	return len(t.Cells)
}

func (t *Tape) IsEmpty() bool {
	return len(t.Cells) == 0
}

// All yields materialized cells in ascending address order.
func (t *Tape) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for _, addr := range slices.Sorted(maps.Keys(t.Cells)) {
			if !yield(addr, t.Cells[addr]) {
				return
			}
		}
	}
}

type TapeSnapshot struct {
	Head  int
	Cells map[int]byte
}

func (t *Tape) Snapshot() TapeSnapshot {
	return TapeSnapshot{
		Head:  t.Head,
		Cells: maps.Clone(t.Cells),
	}
}
