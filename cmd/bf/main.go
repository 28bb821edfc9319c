package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/modes"
)

var (
	fileFlags  = cmds.Collect[string]("-file")
	exprFlag   = cmds.Var[string]("-e")
	inputFlag  = cmds.Var[string]("-input")
	listFlag   = cmds.Switch("-list")
	tapFlag    = cmds.Switch("-tap")
	saveFlag   = cmds.Var[string]("-save")
	resumeFlag = cmds.Var[string]("-resume")
)

func init() {
	cmds.Define("run", cmds.Func(func(path string) {
		*fileFlags = append(*fileFlags, path)
	}).Args("path").Desc("run program file, same as -file"))
}

func main() {
	cmds.Execute(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var code int
	scope.Call(func(
		app App,
	) {
		code = app(ctx)
	})
	stop()
	os.Exit(code)
}
