package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	buf := new(bytes.Buffer)
	executor.Output = buf
	executor.Define("run", Func(func(path string) {}).Desc("run a program"))
	executor.Define("snapshots", Sub(map[string]*Command{
		"list": Func(func() {}).Desc("LIST"),
		"drop": Func(func(name string) {}).Desc("DROP"),
	}).Desc("manage snapshots"))
	executor.PrintUsage()

	out := buf.String()
	for _, expected := range []string{
		"run <string>\trun a program",
		"-h (help, -help, --help)\tprint this usage",
		"snapshots\tmanage snapshots",
		"  drop <string>\tDROP",
		"  list\tLIST",
	} {
		if !strings.Contains(out, expected) {
			t.Fatalf("missing %q in\n%s", expected, out)
		}
	}
	// aliases print once
	if strings.Count(out, "print this usage") != 1 {
		t.Fatalf("got\n%s", out)
	}
}
