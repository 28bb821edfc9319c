package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	buf := new(bytes.Buffer)
	executor.SetOutput(buf)
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func(string) {
		}).Desc("BAR").Args("path"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func() {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))
	executor.PrintUsage()

	usage := buf.String()
	for _, want := range []string{
		"-h (help, -help, --help)\tprint this usage\n",
		"foo\tFOO\n",
		"  bar <path>\tBAR\n",
		"  baz\tBAZ\n",
		"    qux\tQUX\n",
	} {
		if !strings.Contains(usage, want) {
			t.Fatalf("missing %q in %s", want, usage)
		}
	}
	if strings.Count(usage, "print this usage") != 1 {
		t.Fatalf("got %s", usage)
	}
}
