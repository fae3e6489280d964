/*
Package stages provides the built-in text transforms of the analyzer tool
and the registry through which the command line front end looks them up.

Every transform is handed out by a factory. The factory is invoked once per
chain position, so a stage name that appears repeatedly in the same run
yields independent instances with private state; nothing in this package is
process-global except the (read-only) registry itself.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stages

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'strand.stages'.
func tracer() tracing.Trace {
	return tracing.Select("strand.stages")
}
