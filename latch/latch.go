package latch

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sync"
)

// Latch is a manually-resettable one-bit condition. The zero value is not
// usable; create latches with New.
//
// Latches start out unsignaled. Signal sets the flag and wakes at least one
// waiter, Broadcast sets the flag and wakes every waiter, Reset clears the
// flag without waking anyone. Wait blocks until the flag is observed true.
type Latch struct {
	mx       sync.Mutex
	cond     *sync.Cond
	signaled bool
}

// New creates an unsignaled latch.
func New() *Latch {
	l := &Latch{}
	l.cond = sync.NewCond(&l.mx)
	return l
}

// Signal sets the latch and wakes at least one waiting goroutine.
func (l *Latch) Signal() {
	l.mx.Lock()
	l.signaled = true
	l.mx.Unlock()
	l.cond.Signal()
}

// Broadcast sets the latch and wakes every waiting goroutine. Callers that
// need all waiters to re-evaluate a predicate use this instead of Signal.
func (l *Latch) Broadcast() {
	l.mx.Lock()
	l.signaled = true
	l.mx.Unlock()
	l.cond.Broadcast()
}

// Reset clears the latch. It does not wake anyone.
func (l *Latch) Reset() {
	l.mx.Lock()
	l.signaled = false
	l.mx.Unlock()
}

// Wait blocks the caller until the flag is observed true under the latch's
// mutex. Spurious wakeups of the underlying condition variable are absorbed
// by re-checking the flag. A latch that is already signaled lets Wait return
// immediately.
func (l *Latch) Wait() {
	l.mx.Lock()
	for !l.signaled {
		l.cond.Wait()
	}
	l.mx.Unlock()
}

// Signaled reports the current state of the flag. The answer may be stale by
// the time the caller acts on it; callers holding their own lock around the
// guarded state should re-check predicates after waking.
func (l *Latch) Signaled() bool {
	l.mx.Lock()
	defer l.mx.Unlock()
	return l.signaled
}
