package sources

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/nets"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
	Nets    nets.Module
}
