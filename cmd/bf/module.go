package main

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/debugs"
	"github.com/reusee/taibf/runs"
	"github.com/reusee/taibf/sources"
)

type Module struct {
	dscope.Module
	Runs    runs.Module
	Sources sources.Module
	Debugs  debugs.Module
}

type Stdout io.Writer

func (Module) Stdout() Stdout {
	return os.Stdout
}

type Stderr io.Writer

func (Module) Stderr() Stderr {
	return os.Stderr
}
