/*
Package pipe implements the concurrent stage runtime of a linear
text-transformation pipeline.

A pipeline is an ordered chain of stages. Every stage owns a bounded handoff
queue, a transform function and one dedicated worker goroutine which drains
the queue. The worker either forwards a transformed copy of each item to the
downstream stage's PlaceWork hook, or, for the terminal stage, writes it to
the pipeline's output.

Shutdown is propagated in-band: the sentinel token "<END>" flows through the
chain like any other item. A stage that dequeues it forwards the sentinel
downstream before exiting, so stages quiesce strictly in pipeline order and
no separate shutdown channel is needed.

The lifecycle of a stage is

   UNINIT --Init--> RUNNING --PlaceWork("<END>")--> DRAINING --> FINISHED --Fini--> DEAD

and the driver's startup order is fixed: initialize every stage low to high,
then attach downstream hooks, then feed input; waiting and finalizing also
run low to high, mirroring the path of the sentinel.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pipe

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'strand.pipe'.
func tracer() tracing.Trace {
	return tracing.Select("strand.pipe")
}
