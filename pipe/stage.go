package pipe

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"io"
	"os"
	"sync"

	"github.com/npillmayer/strand/handoff"
)

// EndToken is the sentinel item. It flows through the pipeline in-band and
// instructs each stage to terminate after forwarding it downstream.
const EndToken = "<END>"

// Transform turns one input string into one output string. A failing
// transform is a per-item condition: the worker logs it and continues with
// the next item.
type Transform func(string) (string, error)

// Hook accepts one item for a downstream stage. The driver wires each
// stage's hook to the successor's PlaceWork.
type Hook func(string) error

// stage lifecycle states
const (
	stageUninit = iota
	stageRunning
	stageDead
)

// Stage is one unit of the pipeline: a display name, a transform, a bounded
// handoff queue and the dedicated worker goroutine draining it. The worker
// is the sole consumer of the stage's queue.
type Stage struct {
	name      string
	transform Transform

	mx         sync.Mutex // protects state, downstream, attached, finished, out
	state      int
	downstream Hook
	attached   bool
	finished   bool // set by the worker as its last action
	out        io.Writer

	queue      *handoff.Queue[string]
	workerDone chan struct{}
}

// NewStage creates an uninitialized stage. Each call produces a fresh
// instance with private state, so the same transform name may appear at
// several positions of a chain without aliasing.
func NewStage(name string, tf Transform) *Stage {
	return &Stage{
		name:      name,
		transform: tf,
		out:       os.Stdout,
	}
}

// Name returns the display name of the stage.
func (s *Stage) Name() string {
	return s.name
}

// Init constructs the stage's queue and spawns its worker. It fails on a
// non-positive queue size and on repeated initialization.
func (s *Stage) Init(queueSize int) error {
	s.mx.Lock()
	defer s.mx.Unlock()
	if s.state != stageUninit {
		return ErrStageAlreadyInitialized
	}
	q, err := handoff.New[string](queueSize)
	if err != nil {
		return err
	}
	s.queue = q
	s.workerDone = make(chan struct{})
	s.state = stageRunning
	tracer().Debugf("stage %q starting worker, queue capacity %d", s.name, queueSize)
	go s.work()
	return nil
}

// PlaceWork enqueues a copy of item into the stage's queue, blocking while
// the queue is full. Placing the sentinel additionally signals the queue's
// finished condition; the worker will drain whatever is still queued and
// then observe end-of-stream.
//
// PlaceWork is safe for concurrent use, but returns a diagnostic once the
// stage has been finalized.
func (s *Stage) PlaceWork(item string) error {
	s.mx.Lock()
	if s.state != stageRunning || s.finished {
		s.mx.Unlock()
		return ErrStageNotRunning
	}
	q := s.queue
	s.mx.Unlock()
	// the stage mutex is never held across the queue's blocking put
	if err := q.Put(item); err != nil {
		return err
	}
	if item == EndToken {
		q.SignalFinished()
	}
	return nil
}

// Attach installs the downstream hook, or nil for the terminal stage. It is
// legal between Init and worker termination and takes effect at most once;
// installation happens-before any PlaceWork return that might reach the
// downstream.
func (s *Stage) Attach(hook Hook) {
	s.mx.Lock()
	defer s.mx.Unlock()
	if s.attached {
		tracer().Errorf("stage %q: downstream hook attached twice, keeping the first", s.name)
		return
	}
	s.attached = true
	s.downstream = hook
}

// WaitFinished blocks until the stage's queue has been signaled finished and
// the worker has terminated, i.e. has set the stage's finished flag.
func (s *Stage) WaitFinished() error {
	s.mx.Lock()
	if s.state == stageUninit {
		s.mx.Unlock()
		return ErrStageNotInitialized
	}
	q, done := s.queue, s.workerDone
	s.mx.Unlock()
	q.WaitFinished()
	<-done
	return nil
}

// Fini tears the stage down: it signals the queue finished (idempotent),
// joins the worker and destroys the queue. Calling Fini on an already dead
// stage is a no-op.
func (s *Stage) Fini() error {
	s.mx.Lock()
	if s.state == stageUninit {
		s.mx.Unlock()
		return ErrStageNotInitialized
	}
	if s.state == stageDead {
		s.mx.Unlock()
		return nil
	}
	s.state = stageDead
	q, done := s.queue, s.workerDone
	s.mx.Unlock()
	q.SignalFinished()
	<-done // deterministic join, no polling
	q.Destroy()
	tracer().Debugf("stage %q finalized", s.name)
	return nil
}

// Finished reports whether the worker has terminated.
func (s *Stage) Finished() bool {
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.finished
}

// SetOutput redirects the terminal stage's emissions. The default is
// standard output. Must be set before input is fed into the pipeline.
func (s *Stage) SetOutput(w io.Writer) {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.out = w
}

// QueueCap returns the capacity of the stage's queue, 0 if uninitialized.
func (s *Stage) QueueCap() int {
	s.mx.Lock()
	defer s.mx.Unlock()
	if s.queue == nil {
		return 0
	}
	return s.queue.Cap()
}

func (s *Stage) hook() Hook {
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.downstream
}

func (s *Stage) output() io.Writer {
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.out
}
