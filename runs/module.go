package runs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/bfvm"
)

type Module struct {
	dscope.Module
	VM      bfvm.Module
	Configs bfconfigs.Module
}
