package pipe

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/npillmayer/schuko/tracing"
)

// Diagnostics for operators are line-oriented and carry a fixed prefix,
// "[ERROR] " for per-item failures and shutdown anomalies, "[INFO] " for
// informational messages. They go to standard error, separate from the
// terminal stage's output. Debug-level tracing additionally runs through
// the package tracer.

var diagMx sync.Mutex
var diagOut io.Writer = os.Stderr

// SetDiagnostics redirects diagnostic output, returning the previous writer.
// Used by tests; the default is standard error.
func SetDiagnostics(w io.Writer) io.Writer {
	diagMx.Lock()
	defer diagMx.Unlock()
	prev := diagOut
	diagOut = w
	return prev
}

func errorf(format string, args ...interface{}) {
	diagMx.Lock()
	fmt.Fprintf(diagOut, "[ERROR] "+format+"\n", args...)
	diagMx.Unlock()
	tracer().Errorf(format, args...)
}

func infof(format string, args ...interface{}) {
	if tracer().GetTraceLevel() < tracing.LevelInfo {
		return
	}
	diagMx.Lock()
	fmt.Fprintf(diagOut, "[INFO] "+format+"\n", args...)
	diagMx.Unlock()
}
