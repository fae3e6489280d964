package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/npillmayer/strand/pipe"
	"github.com/npillmayer/strand/stages"
)

// Exit codes of the analyzer tool.
const (
	exitOK     = 0
	exitConfig = 1 // argument error, stage lookup failure
	exitInit   = 2 // a stage's Init reported failure, or the end token could not be fed
)

// configError covers everything that is wrong before any stage exists:
// malformed queue size, missing arguments, unknown stage names.
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }
func (e *configError) ExitCode() int { return exitConfig }

// initError covers failures of the pipeline itself: startup failures, and a
// failure to feed the end token into the first stage.
type initError struct {
	err error
}

func (e *initError) Error() string { return e.err.Error() }
func (e *initError) Unwrap() error { return e.err }
func (e *initError) ExitCode() int { return exitInit }

// newAnalyzerCommand builds the command line surface:
//
//	analyzer <queue-size> <stage> [<stage>...]
func newAnalyzerCommand() *cobra.Command {
	var traceLevel string
	cmd := &cobra.Command{
		Use:   "analyzer <queue-size> <stage> [<stage>...]",
		Short: "Push lines of standard input through a chain of text transforms",
		Long: `analyzer builds a linear pipeline from the named stages and pushes every
line of standard input through it. The first argument is the capacity of
the handoff queue between adjacent stages. A line consisting of the token
<END> shuts the pipeline down in order; if the input closes without it,
the token is synthesized.

Available stages: ` + strings.Join(stages.Names(), ", "),
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setupTracing(traceLevel); err != nil {
				return &configError{err}
			}
			queueSize, err := parseQueueSize(args[0])
			if err != nil {
				return &configError{err}
			}
			chain := make([]*pipe.Stage, 0, len(args)-1)
			for _, name := range args[1:] {
				tf, err := stages.New(name)
				if err != nil {
					return &configError{err}
				}
				chain = append(chain, pipe.NewStage(name, tf))
			}
			p := pipe.NewPipeline(queueSize, chain, pipe.WithOutput(cmd.OutOrStdout()))
			if err := p.Start(); err != nil {
				return &initError{err}
			}
			tracer().Infof("pipeline of %d stages running, queue capacity %d", len(chain), queueSize)
			if err := p.Feed(cmd.InOrStdin()); err != nil {
				p.Shutdown()
				return &initError{err}
			}
			if err := p.Shutdown(); err != nil {
				return &initError{err}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Pipeline shutdown complete")
			return nil
		},
	}
	cmd.Flags().StringVar(&traceLevel, "trace", "Error",
		"trace level for diagnostics (Error, Info, Debug)")
	return cmd
}

// parseQueueSize accepts a strict positive decimal: no sign, no leading
// zeros, no fractional part, within the signed integer range.
func parseQueueSize(arg string) (int, error) {
	if arg == "" {
		return 0, fmt.Errorf("queue size is missing")
	}
	if arg[0] == '+' || arg[0] == '-' {
		return 0, fmt.Errorf("queue size %q must be an unsigned decimal", arg)
	}
	if len(arg) > 1 && arg[0] == '0' {
		return 0, fmt.Errorf("queue size %q must not have leading zeros", arg)
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("queue size %q is not a decimal integer", arg)
	}
	if n <= 0 {
		return 0, fmt.Errorf("queue size must be positive, got %d", n)
	}
	return n, nil
}
