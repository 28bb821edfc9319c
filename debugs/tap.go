package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL over the state of a stopped or finished VM.
type Tap func(ctx context.Context, what string, vm *bfvm.VM)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, vm *bfvm.VM) {
		globals := Globals(vm)
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, globals)
	}
}

// Globals exposes vm state to starlark: output, tape, head, pc, steps,
// program as a string and code as a list of instructions, and cell(addr)
// reading any tape address.
func Globals(vm *bfvm.VM) starlark.StringDict {
	ctx := vm.Context
	snapshot := ctx.Tape.Snapshot()
	src := make([]rune, len(vm.Code))
	for i, inst := range vm.Code {
		src[i] = inst.Char
	}
	values := map[string]any{
		"output":  ctx.Output,
		"input":   ctx.Input[min(ctx.InputPos, len(ctx.Input)):],
		"tape":    snapshot,
		"head":    snapshot.Head,
		"pc":      vm.PC,
		"steps":   vm.Steps,
		"done":    vm.Done(),
		"program": string(src),
		"code":    vm.Code,
		"cell": func(addr int) int {
			return int(snapshot.Cells[addr])
		},
	}
	ret := make(starlark.StringDict, len(values))
	for name, value := range values {
		ret[name] = toStarlarkValue(value)
	}
	return ret
}
