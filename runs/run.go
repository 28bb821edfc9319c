package runs

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/logs"
)

var ErrBudgetExhausted = errors.New("step budget exhausted")

type Spec struct {
	Name   string
	Source string
	Input  []byte
	// Sink receives output bytes while the program runs.
	Sink io.Writer
}

type Result struct {
	Name string
	Span logs.Span
	VM   *bfvm.VM
	Err  error
}

// Context is the final execution state, nil when the program never started.
func (r Result) Context() *bfvm.Context {
	if r.VM == nil {
		return nil
	}
	return r.VM.Context
}

// Run executes one program under the configured step limit.
// Cancelling ctx stops the run at the next yield point.
type Run func(ctx context.Context, spec Spec) Result

func (Module) Run(
	prepare bfvm.Prepare,
	newSpan logs.NewSpan,
	cont Continue,
) Run {
	return func(ctx context.Context, spec Spec) Result {
		ctx, span := newSpan(ctx, spec.Name)

		vm, err := prepare(ctx, spec.Name, spec.Source, spec.Input)
		if err != nil {
			return Result{
				Name: spec.Name,
				Span: span,
				Err:  err,
			}
		}
		if spec.Sink != nil {
			vm.Context.WithSink(spec.Sink)
		}

		return cont(ctx, spec.Name, vm)
	}
}

// Continue drives an already prepared or restored VM under the configured
// step limit. The limit counts all steps of the VM, including earlier ones.
type Continue func(ctx context.Context, name string, vm *bfvm.VM) Result

func (Module) Continue(
	newSpan logs.NewSpan,
	limit bfconfigs.StepLimit,
	yieldEvery bfconfigs.YieldEvery,
	logger logs.Logger,
) Continue {
	return func(ctx context.Context, name string, vm *bfvm.VM) Result {
		span := logs.SpanOf(ctx)
		if span == "" {
			ctx, span = newSpan(ctx, name)
		}
		result := Result{
			Name: name,
			Span: span,
			VM:   vm,
		}

		if err := drive(ctx, vm, int(limit), int(yieldEvery)); err != nil {
			logger.WarnContext(ctx, "run stopped",
				"name", name,
				"pc", vm.PC,
				"steps", vm.Steps,
				"error", err,
			)
			result.Err = logs.WrapSpan(ctx, err)
			return result
		}

		logger.InfoContext(ctx, "run finished",
			"name", name,
			"steps", vm.Steps,
			"output", len(vm.Context.Output),
			"cells", vm.Context.Tape.Len(),
		)
		return result
	}
}

// drive runs vm in chunks so that the step limit and ctx are checked
// between chunks without the VM knowing about either.
func drive(ctx context.Context, vm *bfvm.VM, limit int, yieldEvery int) error {
	if yieldEvery <= 0 {
		yieldEvery = bfconfigs.DefaultYieldEvery
	}
	for !vm.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}

		chunk := yieldEvery
		if limit > 0 {
			remaining := limit - vm.Steps
			if remaining <= 0 {
				return fmt.Errorf("%w: %d steps", ErrBudgetExhausted, vm.Steps)
			}
			chunk = min(chunk, remaining)
		}
		vm.YieldEvery = chunk

		for intr, err := range vm.Run {
			if err != nil {
				return err
			}
			if intr != nil && intr.Yield {
				break
			}
		}
	}
	return nil
}
