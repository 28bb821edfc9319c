package bfvm

import (
	"fmt"
	"unicode/utf8"
)

// Instruction is one decoded source character.
// Char always holds the source character; for OpInvalid it is the only payload.
type Instruction struct {
	Op   Op
	Char rune
}

func Invalid(ch rune) Instruction {
	return Instruction{
		Op:   OpInvalid,
		Char: ch,
	}
}

func (i Instruction) String() string {
	if i.Op == OpInvalid {
		return fmt.Sprintf("Invalid(%q)", i.Char)
	}
	return i.Op.String()
}

func ParseChar(ch rune) Instruction {
	switch ch {
	case '>':
		return Instruction{Op: OpMoveRight, Char: ch}
	case '<':
		return Instruction{Op: OpMoveLeft, Char: ch}
	case '+':
		return Instruction{Op: OpIncrement, Char: ch}
	case '-':
		return Instruction{Op: OpDecrement, Char: ch}
	case '.':
		return Instruction{Op: OpOutput, Char: ch}
	case ',':
		return Instruction{Op: OpInput, Char: ch}
	case '[':
		return Instruction{Op: OpLoopBegin, Char: ch}
	case ']':
		return Instruction{Op: OpLoopEnd, Char: ch}
	}
	return Invalid(ch)
}

// Parse maps every rune of src to exactly one instruction.
func Parse(src string) []Instruction {
	ret := make([]Instruction, 0, utf8.RuneCountInString(src))
	for _, ch := range src {
		ret = append(ret, ParseChar(ch))
	}
	return ret
}
