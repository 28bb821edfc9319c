package bfvm

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// Prepare parses and validates a program and returns a VM ready to run it.
type Prepare func(ctx context.Context, name string, src string, input []byte) (*VM, error)

func (Module) Prepare(
	logger logs.Logger,
) Prepare {
	return func(ctx context.Context, name string, src string, input []byte) (*VM, error) {
		code := Parse(src)
		vm, err := NewVM(code, NewContext(input))
		if err != nil {
			logger.WarnContext(ctx, "malformed program",
				"name", name,
				"error", err,
			)
			return nil, logs.WrapSpan(ctx, err)
		}

		var ops, loops int
		for _, inst := range code {
			switch inst.Op {
			case OpInvalid:
			case OpLoopBegin:
				loops++
				ops++
			default:
				ops++
			}
		}
		logger.DebugContext(ctx, "program loaded",
			"name", name,
			"instructions", len(code),
			"operators", ops,
			"loops", loops,
			"input", len(input),
		)

		return vm, nil
	}
}
