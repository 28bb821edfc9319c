package bfvm

import (
	"fmt"
	"io"
)

// FormatInstructions writes one line per instruction: pc, source character, op and jump target.
func FormatInstructions(w io.Writer, code []Instruction, jumps JumpTable) error {
	for pc, inst := range code {
		var err error
		if target, ok := jumps[pc]; ok {
			_, err = fmt.Fprintf(w, "%6d  %q  %-10s -> %d\n", pc, inst.Char, inst.Op, target)
		} else {
			_, err = fmt.Fprintf(w, "%6d  %q  %s\n", pc, inst.Char, inst.Op)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// FormatTape writes the head position and every materialized cell.
func FormatTape(w io.Writer, tape *Tape) error {
	if _, err := fmt.Fprintf(w, "head %d, %d cells\n", tape.Head, tape.Len()); err != nil {
		return err
	}
	for addr, value := range tape.All() {
		marker := " "
		if addr == tape.Head {
			marker = "*"
		}
		if _, err := fmt.Fprintf(w, "%s%6d  %3d\n", marker, addr, value); err != nil {
			return err
		}
	}
	return nil
}
