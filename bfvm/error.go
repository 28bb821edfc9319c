package bfvm

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedProgram = errors.New("malformed program")
	ErrRuntime          = errors.New("runtime error")

	ErrHeadUnderflow = fmt.Errorf("head underflow: %w", ErrRuntime)
	ErrHeadOverflow  = fmt.Errorf("head overflow: %w", ErrRuntime)

	ErrBadSnapshot = errors.New("bad snapshot")
)

type UnmatchedLoopEndError struct {
	Index int
}

func (e *UnmatchedLoopEndError) Error() string {
	return fmt.Sprintf("unmatched loop end at %d", e.Index)
}

func (e *UnmatchedLoopEndError) Unwrap() error {
	return ErrMalformedProgram
}

type UnmatchedLoopBeginError struct {
	Indices []int
}

func (e *UnmatchedLoopBeginError) Error() string {
	return fmt.Sprintf("unmatched loop begin at %v", e.Indices)
}

func (e *UnmatchedLoopBeginError) Unwrap() error {
	return ErrMalformedProgram
}
