/*
Package handoff implements the bounded FIFO queue which connects two
adjacent pipeline stages.

The queue is a fixed-capacity ring buffer of owned items, coordinated by one
mutex and three latches: notFull (producers wait here), notEmpty (consumers
wait here) and finished (the shutdown condition). Each item put into the
queue is owned by the queue until it is taken out again; Get transfers
ownership to the caller.

Shutdown is cooperative. SignalFinished raises the finished latch and
broadcasts on notEmpty, so that a consumer parked on an empty queue wakes up
and re-evaluates the empty-and-finished predicate. Items still in the ring
at that point are drained normally; only afterwards does Get report
end-of-stream.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package handoff

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'strand.handoff'.
func tracer() tracing.Trace {
	return tracing.Select("strand.handoff")
}
