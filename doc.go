/*
Package strand builds linear, multi-stage text-transformation pipelines at
runtime from an ordered list of stage names.

Each line of an input stream is pushed through the chain of stages. Every
stage owns a bounded handoff queue and a dedicated worker goroutine which
drains it, transforms items and forwards them downstream. A sentinel token
"<END>" flows through the chain like any other item and triggers orderly
shutdown of every stage, in pipeline order, without loss or duplication.

The interesting part is the concurrent stage runtime, found in packages
latch, handoff and pipe. Package stages contributes a handful of built-in
character transforms, and cmd/analyzer wraps everything into a command line
tool:

   analyzer <queue-size> <stage> [<stage>...]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package strand
