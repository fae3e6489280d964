/*
Package latch provides a single-shot, manually-resettable condition.

A latch is a boolean flag paired with a wait primitive. A goroutine that
waits on the latch returns as soon as the flag is observed true under the
latch's mutex; subsequent waits return immediately until Reset clears the
flag again. A signal that precedes the wait is therefore never lost, which
is the property that distinguishes a latch from a bare condition variable.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package latch

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'strand.latch'.
func tracer() tracing.Trace {
	return tracing.Select("strand.latch")
}
