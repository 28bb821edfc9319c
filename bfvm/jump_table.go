package bfvm

// JumpTable maps each loop bracket position to its partner.
type JumpTable map[int]int

func MakeJumpTable(code []Instruction) (JumpTable, error) {
	table := make(JumpTable)
	var pending []int
	for i, inst := range code {
		switch inst.Op {

		case OpLoopBegin:
			pending = append(pending, i)

		case OpLoopEnd:
			if len(pending) == 0 {
				return nil, &UnmatchedLoopEndError{
					Index: i,
				}
			}
			begin := pending[len(pending)-1]
			pending = pending[:len(pending)-1]
			table[begin] = i
			table[i] = begin

		}
	}
	if len(pending) > 0 {
		return nil, &UnmatchedLoopBeginError{
			Indices: pending,
		}
	}
	return table, nil
}
