package runs

import (
	"context"
	"sync"

	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/syncs"
)

// RunAll executes independent programs concurrently.
// Results are in the order of specs.
type RunAll func(ctx context.Context, specs []Spec) []Result

func (Module) RunAll(
	run Run,
	parallel bfconfigs.Parallel,
) RunAll {
	return func(ctx context.Context, specs []Spec) []Result {
		results := make([]Result, len(specs))
		sem := syncs.NewSemaphore(int(parallel))
		wg := new(sync.WaitGroup)
		for i, spec := range specs {
			if err := sem.AcquireContext(ctx); err != nil {
				results[i] = Result{
					Name: spec.Name,
					Err:  err,
				}
				continue
			}
			wg.Go(func() {
				defer sem.Release()
				results[i] = run(ctx, spec)
			})
		}
		wg.Wait()
		return results
	}
}
