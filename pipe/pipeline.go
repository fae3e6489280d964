package pipe

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Input lines up to this length are delivered unchanged; the limit is far
// above the historical 1024-byte limit of the original tool. A longer line
// is not truncated and not skipped: Feed reports it and stops reading, so
// neither it nor any later line reaches the pipeline, and the end token is
// synthesized.
const maxLineLength = 1024 * 1024

// Pipeline wires stage instances into a linear chain, feeds input lines
// into the first stage and performs ordered shutdown. The driver owns the
// stage sequence.
type Pipeline struct {
	queueSize int
	stages    []*Stage
	out       io.Writer
}

// Option configures a pipeline.
type Option func(*Pipeline)

// WithOutput redirects the terminal stage's emissions. Default is standard
// output.
func WithOutput(w io.Writer) Option {
	return func(p *Pipeline) {
		p.out = w
	}
}

// NewPipeline creates a driver for the given stages. The stages must be
// uninitialized; Start brings them up in order.
func NewPipeline(queueSize int, stages []*Stage, opts ...Option) *Pipeline {
	p := &Pipeline{
		queueSize: queueSize,
		stages:    stages,
		out:       os.Stdout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start initializes every stage, low index first, and then wires the chain:
// each stage's downstream hook is the successor's PlaceWork, the terminal
// stage gets nil and the pipeline's output writer.
//
// Attaching only after every stage is initialized guarantees that no stage
// ever observes an unattached downstream transition. If any Init fails, the
// stages initialized so far are finalized, low to high, and the error is
// returned.
func (p *Pipeline) Start() error {
	if len(p.stages) == 0 {
		return ErrEmptyPipeline
	}
	for i, s := range p.stages {
		if err := s.Init(p.queueSize); err != nil {
			for _, t := range p.stages[:i] {
				if ferr := t.Fini(); ferr != nil {
					errorf("stage %s: cleanup after failed startup: %v", t.Name(), ferr)
				}
			}
			return fmt.Errorf("initializing stage %s: %w", s.Name(), err)
		}
	}
	last := len(p.stages) - 1
	for i := 0; i < last; i++ {
		p.stages[i].Attach(p.stages[i+1].PlaceWork)
	}
	p.stages[last].Attach(nil)
	p.stages[last].SetOutput(p.out)
	infof("pipeline of %d stages up, queue capacity %d", len(p.stages), p.queueSize)
	tracer().Debugf("pipeline topology:\n%s", p.Dump())
	return nil
}

// Feed reads r line by line, strips the trailing newline and places each
// line into the first stage. Reading stops after the sentinel line. If the
// stream ends without a sentinel, one is synthesized so that the pipeline
// is guaranteed to terminate.
func (p *Pipeline) Feed(r io.Reader) error {
	first := p.stages[0]
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	sawEnd := false
	for scanner.Scan() {
		line := scanner.Text()
		if err := first.PlaceWork(line); err != nil {
			errorf("driver: placing line into stage %s: %v", first.Name(), err)
			continue
		}
		if line == EndToken {
			sawEnd = true
			break
		}
	}
	if err := scanner.Err(); err != nil {
		errorf("driver: reading input: %v", err)
	}
	if !sawEnd {
		tracer().Debugf("input exhausted without end token, synthesizing one")
		if err := first.PlaceWork(EndToken); err != nil {
			return fmt.Errorf("synthesizing end token: %w", err)
		}
	}
	return nil
}

// Shutdown waits for every stage to finish, then finalizes every stage,
// both in pipeline order. Waiting low-to-high mirrors the path of the
// sentinel: a stage finishes draining and forwards the end token before its
// successor can observe end-of-stream. Shutdown anomalies are logged and do
// not abort the remaining teardown.
func (p *Pipeline) Shutdown() error {
	for _, s := range p.stages {
		if err := s.WaitFinished(); err != nil {
			errorf("stage %s: waiting for completion: %v", s.Name(), err)
		}
	}
	for _, s := range p.stages {
		if err := s.Fini(); err != nil {
			errorf("stage %s: finalization: %v", s.Name(), err)
		}
	}
	infof("all %d stages quiesced", len(p.stages))
	return nil
}

// Run is the driver's whole lifecycle in one call: Start, Feed, Shutdown.
func (p *Pipeline) Run(r io.Reader) error {
	if err := p.Start(); err != nil {
		return err
	}
	if err := p.Feed(r); err != nil {
		// the sentinel could not be delivered; tear down what we can
		p.Shutdown()
		return err
	}
	return p.Shutdown()
}

// Stages returns the stage sequence. The driver keeps ownership.
func (p *Pipeline) Stages() []*Stage {
	return p.stages
}
