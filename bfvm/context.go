package bfvm

import "io"

// Context is the mutable state of one run.
type Context struct {
	Tape     *Tape
	Output   []byte
	Input    []byte
	InputPos int

	sink io.Writer
}

func NewContext(input []byte) *Context {
	return &Context{
		Tape:  NewTape(),
		Input: input,
	}
}

// WithSink streams every output byte to w as it is produced.
func (c *Context) WithSink(w io.Writer) *Context {
	c.sink = w
	return c
}

func (c *Context) readInput() byte {
	if c.InputPos >= len(c.Input) {
		return 0
	}
	b := c.Input[c.InputPos]
	c.InputPos++
	return b
}

func (c *Context) writeOutput(b byte) error {
	c.Output = append(c.Output, b)
	if c.sink != nil {
		if _, err := c.sink.Write([]byte{b}); err != nil {
			return err
		}
	}
	return nil
}
