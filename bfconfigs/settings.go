package bfconfigs

import (
	"runtime"

	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/vars"
)

// StepLimit bounds dispatched instructions per run; zero means unbounded.
type StepLimit int

var _ configs.Configurable = StepLimit(0)

func (StepLimit) ConfigKey() string {
	return "step_limit"
}

var stepLimitFlag = cmds.Var[int]("-limit")

func (Module) StepLimit(
	loader configs.Loader,
) StepLimit {
	return configs.Resolve(loader, StepLimit(*stepLimitFlag))
}

// YieldEvery is how often a run returns control to check its budget and context.
type YieldEvery int

var _ configs.Configurable = YieldEvery(0)

func (YieldEvery) ConfigKey() string {
	return "yield_every"
}

const DefaultYieldEvery = 1 << 16

func (Module) YieldEvery(
	loader configs.Loader,
) YieldEvery {
	return vars.FirstNonZero(
		configs.Resolve(loader, YieldEvery(0)),
		DefaultYieldEvery,
	)
}

type Parallel int

var _ configs.Configurable = Parallel(0)

func (Parallel) ConfigKey() string {
	return "parallel"
}

var parallelFlag = cmds.Var[int]("-parallel")

func (Module) Parallel(
	loader configs.Loader,
) Parallel {
	return vars.FirstNonZero(
		configs.Resolve(loader, Parallel(*parallelFlag)),
		Parallel(runtime.NumCPU()),
	)
}

type DumpTape bool

var _ configs.Configurable = DumpTape(false)

func (DumpTape) ConfigKey() string {
	return "dump_tape"
}

var dumpTapeFlag = cmds.Switch("-dump")

func (Module) DumpTape(
	loader configs.Loader,
) DumpTape {
	return configs.Resolve(loader, DumpTape(*dumpTapeFlag))
}

// SearchPaths are directories where relative program names are looked up,
// collected from every config file.
type SearchPaths []string

var searchPathFlags = cmds.Collect[string]("-path")

func (Module) SearchPaths(
	loader configs.Loader,
) SearchPaths {
	paths := append([]string(nil), *searchPathFlags...)
	for list := range configs.All[[]string](loader, "search_paths") {
		paths = append(paths, list...)
	}
	return paths
}
