package pipe

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
)

// work is the loop of a stage's dedicated worker goroutine, the sole
// consumer of the stage's queue.
//
// Regular items are transformed and either forwarded downstream or, for the
// terminal stage, written to the stage's output. The sentinel is forwarded
// downstream first and breaks the loop; end-of-stream from the queue breaks
// it as well. Per-item failures are logged and never abort the pipeline.
//
// The worker's last action is setting the stage's finished flag, then the
// done channel closes, which is what Fini and WaitFinished join on.
func (s *Stage) work() {
	defer close(s.workerDone)
	for {
		item, ok := s.queue.Get()
		if !ok {
			tracer().Debugf("stage %q observed end-of-stream", s.name)
			break
		}
		if item == EndToken {
			if hook := s.hook(); hook != nil {
				if err := hook(EndToken); err != nil {
					errorf("stage %s: forwarding end token: %v", s.name, err)
				}
			}
			tracer().Debugf("stage %q forwarded end token, terminating", s.name)
			break
		}
		out, err := s.transform(item)
		if err != nil {
			errorf("stage %s: transform failed for %q: %v", s.name, item, err)
			continue
		}
		if hook := s.hook(); hook != nil {
			if err := hook(out); err != nil {
				// non-fatal: log and drop the item
				errorf("stage %s: downstream rejected item: %v", s.name, err)
			}
			continue
		}
		fmt.Fprintln(s.output(), out)
	}
	s.mx.Lock()
	s.finished = true
	s.mx.Unlock()
}
