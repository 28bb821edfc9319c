package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taibf/logs"
)

// Module provides network access; a configs.Loader must be provided by the caller.
type Module struct {
	dscope.Module
	Logs logs.Module
}
