package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// traceKeys are the tracer selectors of every package of this module.
var traceKeys = []string{
	"strand.latch",
	"strand.handoff",
	"strand.pipe",
	"strand.stages",
	"strand.cli",
}

// setupTracing wires the Go-log adapter into the trace2go selector and sets
// all of the module's tracers to the given level.
func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := &testconfig.Conf{}
	conf.Set("tracing", "go")
	for _, key := range traceKeys {
		conf.Set("trace."+key, level)
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// tracer traces with key 'strand.cli'.
func tracer() tracing.Trace {
	return tracing.Select("strand.cli")
}
