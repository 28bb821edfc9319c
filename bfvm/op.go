package bfvm

type Op uint8

const (
	OpInvalid Op = iota
	OpMoveRight
	OpMoveLeft
	OpIncrement
	OpDecrement
	OpOutput
	OpInput
	OpLoopBegin
	OpLoopEnd
)

var opNames = [...]string{
	OpInvalid:   "Invalid",
	OpMoveRight: "MoveRight",
	OpMoveLeft:  "MoveLeft",
	OpIncrement: "Increment",
	OpDecrement: "Decrement",
	OpOutput:    "Output",
	OpInput:     "Input",
	OpLoopBegin: "LoopBegin",
	OpLoopEnd:   "LoopEnd",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "Op(?)"
}
