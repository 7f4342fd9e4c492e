// Command backtrace normalizes raw interpreter backtraces into structured
// stack frames.
//
// Raw lines are read from a file or stdin:
//
//	backtrace parse trace.txt
//
// or, for a report document:
//
//	backtrace parse --report --host-vm --format payload report.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
