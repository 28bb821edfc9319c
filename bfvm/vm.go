package bfvm

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
)

type VM struct {
	Code    []Instruction
	Jumps   JumpTable
	PC      int
	Steps   int
	Context *Context

	// YieldEvery makes Run yield InterruptYield after that many dispatches.
	YieldEvery int
}

func NewVM(code []Instruction, ctx *Context) (*VM, error) {
	jumps, err := MakeJumpTable(code)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = NewContext(nil)
	}
	return &VM{
		Code:    code,
		Jumps:   jumps,
		Context: ctx,
	}, nil
}

// Load parses src and prepares a VM reading from input.
func Load(src string, input []byte) (*VM, error) {
	return NewVM(Parse(src), NewContext(input))
}

func (v *VM) Done() bool {
	return v.PC >= len(v.Code)
}

// Step dispatches the instruction at PC.
// On error PC is left at the failing instruction.
func (v *VM) Step() error {
	if v.Done() {
		return nil
	}
	tape := v.Context.Tape
	inst := v.Code[v.PC]
	next := v.PC + 1

	switch inst.Op {

	case OpMoveRight:
		if err := tape.MoveRight(); err != nil {
			return fmt.Errorf("pc %d: %w", v.PC, err)
		}

	case OpMoveLeft:
		if err := tape.MoveLeft(); err != nil {
			return fmt.Errorf("pc %d: %w", v.PC, err)
		}

	case OpIncrement:
		tape.Increment()

	case OpDecrement:
		tape.Decrement()

	case OpOutput:
		if err := v.Context.writeOutput(tape.Read()); err != nil {
			return fmt.Errorf("pc %d: write output: %w", v.PC, err)
		}

	case OpInput:
		tape.Write(v.Context.readInput())

	case OpLoopBegin:
		if tape.Read() == 0 {
			next = v.Jumps[v.PC] + 1
		}

	case OpLoopEnd:
		if tape.Read() != 0 {
			next = v.Jumps[v.PC]
		}

	case OpInvalid:
		// no-op

	}

	v.PC = next
	v.Steps++
	return nil
}

func (v *VM) Snapshot(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return nil
}

// Restore replaces the VM state with a snapshot. An output sink is not restored.
// Inconsistent snapshots are rejected with ErrBadSnapshot and leave v untouched.
func (v *VM) Restore(r io.Reader) error {
	dec := gob.NewDecoder(r)
	var restored VM
	if err := dec.Decode(&restored); err != nil {
		return err
	}
	if restored.Context == nil {
		restored.Context = NewContext(nil)
	}
	if restored.Context.Tape == nil {
		restored.Context.Tape = NewTape()
	}
	// jumps are rebuilt from code
	jumps, err := MakeJumpTable(restored.Code)
	if err != nil {
		return errors.Join(ErrBadSnapshot, err)
	}
	restored.Jumps = jumps
	if restored.PC < 0 || restored.PC > len(restored.Code) {
		return fmt.Errorf("%w: pc %d out of [0, %d]", ErrBadSnapshot, restored.PC, len(restored.Code))
	}
	if c := restored.Context; c.InputPos < 0 || c.InputPos > len(c.Input) {
		return fmt.Errorf("%w: input position %d out of [0, %d]", ErrBadSnapshot, c.InputPos, len(c.Input))
	}
	if restored.Steps < 0 {
		return fmt.Errorf("%w: negative steps %d", ErrBadSnapshot, restored.Steps)
	}
	*v = restored
	return nil
}
