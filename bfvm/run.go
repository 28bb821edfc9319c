package bfvm

// Run executes until the program ends, an error occurs or the consumer stops.
// Stopping the iteration suspends the VM; calling Run again resumes it.
func (v *VM) Run(yield func(*Interrupt, error) bool) {
	sinceYield := 0
	for !v.Done() {
		if err := v.Step(); err != nil {
			yield(nil, err)
			return
		}
		if v.YieldEvery > 0 {
			sinceYield++
			if sinceYield >= v.YieldEvery {
				sinceYield = 0
				if !yield(InterruptYield, nil) {
					return
				}
			}
		}
	}
}

// Execute runs src to completion.
// The context is returned even when a runtime error stops the run.
func Execute(src string, input []byte) (*Context, error) {
	vm, err := Load(src, input)
	if err != nil {
		return nil, err
	}
	for _, err := range vm.Run {
		if err != nil {
			return vm.Context, err
		}
	}
	return vm.Context, nil
}
