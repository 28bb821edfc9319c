package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/debugs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/runs"
	"github.com/reusee/taibf/sources"
)

// App runs the programs named on the command line and returns the exit code.
type App func(ctx context.Context) int

func (Module) App(
	read sources.Read,
	run runs.Run,
	runAll runs.RunAll,
	cont runs.Continue,
	tap debugs.Tap,
	dump bfconfigs.DumpTape,
	logger logs.Logger,
	stdout Stdout,
	stderr Stderr,
) App {
	return func(ctx context.Context) int {
		fail := func(err error) int {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}

		var input []byte
		if name := *inputFlag; name != "" {
			var err error
			input, err = read(ctx, name)
			if err != nil {
				return fail(err)
			}
		}

		var specs []runs.Spec
		if *exprFlag != "" {
			specs = append(specs, runs.Spec{
				Name:   "-e",
				Source: *exprFlag,
				Input:  input,
			})
		}
		for _, name := range *fileFlags {
			content, err := read(ctx, name)
			if err != nil {
				return fail(err)
			}
			specs = append(specs, runs.Spec{
				Name:   name,
				Source: string(content),
				Input:  input,
			})
		}

		var results []runs.Result
		switch {

		case *resumeFlag != "":
			vm, err := restore(*resumeFlag)
			if err != nil {
				return fail(err)
			}
			// output produced before the snapshot is replayed first
			if _, err := stdout.Write(vm.Context.Output); err != nil {
				return fail(err)
			}
			vm.Context.WithSink(stdout)
			results = append(results, cont(ctx, *resumeFlag, vm))

		case len(specs) == 0:
			fmt.Fprintln(stderr, "no program, use -file <path> or -e <source>")
			cmds.GlobalExecutor.SetOutput(stderr)
			cmds.GlobalExecutor.PrintUsage()
			return 2

		case *listFlag:
			for _, spec := range specs {
				code := bfvm.Parse(spec.Source)
				jumps, err := bfvm.MakeJumpTable(code)
				if err != nil {
					return fail(fmt.Errorf("%s: %w", spec.Name, err))
				}
				if err := bfvm.FormatInstructions(stdout, code, jumps); err != nil {
					return fail(err)
				}
			}
			return 0

		case len(specs) == 1:
			specs[0].Sink = stdout
			results = append(results, run(ctx, specs[0]))

		default:
			results = runAll(ctx, specs)
			for _, result := range results {
				fmt.Fprintf(stdout, "== %s\n", result.Name)
				if c := result.Context(); c != nil {
					if _, err := stdout.Write(c.Output); err != nil {
						return fail(err)
					}
					if !bytes.HasSuffix(c.Output, []byte("\n")) {
						fmt.Fprintln(stdout)
					}
				}
			}

		}

		ret := 0
		for _, result := range results {
			if result.Err != nil {
				fmt.Fprintf(stderr, "%s: %v\n", result.Name, result.Err)
				ret = 1
			}
			vm := result.VM
			if vm == nil {
				continue
			}
			if dump {
				fmt.Fprintf(stderr, "== tape %s\n", result.Name)
				if err := bfvm.FormatTape(stderr, vm.Context.Tape); err != nil {
					return fail(err)
				}
			}
			if *saveFlag != "" && errors.Is(result.Err, runs.ErrBudgetExhausted) {
				if err := save(*saveFlag, vm); err != nil {
					return fail(err)
				}
				logger.InfoContext(ctx, "snapshot saved",
					"name", result.Name,
					"path", *saveFlag,
					"steps", vm.Steps,
				)
			}
			if *tapFlag {
				tap(ctx, result.Name, vm)
			}
		}
		return ret
	}
}

func save(path string, vm *bfvm.VM) error {
	buf := new(bytes.Buffer)
	if err := vm.Snapshot(buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

func restore(path string) (*bfvm.VM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	vm := new(bfvm.VM)
	if err := vm.Restore(f); err != nil {
		return nil, fmt.Errorf("restore %s: %w", path, err)
	}
	return vm, nil
}

