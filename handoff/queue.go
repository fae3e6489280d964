package handoff

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sync"

	"github.com/npillmayer/strand/latch"
)

// Queue is a bounded FIFO between a producer and a consumer. Items live in a
// ring buffer of fixed capacity; head, tail and count are protected by one
// mutex. Producers block in Put while the ring is full, consumers block in
// Get while it is empty and not yet finished.
//
// Invariants, holding whenever the ring mutex is free:
// 0 <= count <= capacity; head and tail are in [0, capacity); exactly count
// slots starting at head (mod capacity) hold items; notFull is signaled
// exactly when count < capacity; notEmpty is signaled exactly when
// count > 0, except that SignalFinished broadcasts it so parked consumers
// re-check their predicate.
type Queue[T any] struct {
	mx       sync.Mutex // protects ring, head, tail, count, dead
	ring     []T
	capacity int
	head     int
	tail     int
	count    int
	dead     bool
	notFull  *latch.Latch
	notEmpty *latch.Latch
	finished *latch.Latch
}

// New creates an empty queue with the given capacity. Capacity must be
// positive; there is no rounding.
func New[T any](capacity int) (*Queue[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	q := &Queue[T]{
		ring:     make([]T, capacity),
		capacity: capacity,
		notFull:  latch.New(),
		notEmpty: latch.New(),
		finished: latch.New(),
	}
	q.notFull.Signal() // room for capacity items
	return q, nil
}

// Put installs a copy of item at the tail of the ring, blocking while the
// ring is full. After storing it updates notFull (reset when the ring just
// became full) and signals notEmpty.
//
// A wakeup from the notFull latch is only a hint: another producer may have
// filled the freed slot in the meantime, so the room check is repeated under
// the ring mutex until it holds.
func (q *Queue[T]) Put(item T) error {
	for {
		q.mx.Lock()
		if q.dead {
			q.mx.Unlock()
			return ErrQueueDestroyed
		}
		if q.count < q.capacity {
			q.ring[q.tail] = item
			q.tail = (q.tail + 1) % q.capacity
			q.count++
			// latch updates happen under the ring mutex, keeping them atomic
			// with the count transition; latch operations never block
			if q.count == q.capacity {
				q.notFull.Reset()
			}
			q.notEmpty.Signal()
			q.mx.Unlock()
			return nil
		}
		q.mx.Unlock()
		q.notFull.Wait()
	}
}

// Get removes and returns the item at the head of the ring, blocking until
// an item is available or until the queue is both empty and finished. The
// second return value is false only for the end-of-stream case.
//
// The caller receives exclusive ownership of the returned item; the ring
// slot is cleared so the queue holds no reference to it anymore.
func (q *Queue[T]) Get() (T, bool) {
	var zero T
	for {
		q.mx.Lock()
		if q.count > 0 {
			item := q.ring[q.head]
			q.ring[q.head] = zero
			q.head = (q.head + 1) % q.capacity
			q.count--
			// once finished, notEmpty stays broadcast-signaled so late
			// consumers fall through to the empty-and-finished check
			if q.count == 0 && !q.finished.Signaled() {
				q.notEmpty.Reset()
			}
			q.notFull.Signal()
			q.mx.Unlock()
			return item, true
		}
		dead := q.dead
		q.mx.Unlock()
		if dead || q.finished.Signaled() {
			return zero, false
		}
		q.notEmpty.Wait()
	}
}

// SignalFinished marks the queue as finished and broadcasts on the notEmpty
// latch, waking every consumer that was parked at the moment of shutdown so
// it re-evaluates the empty-and-finished predicate. Calling it more than
// once is equivalent to calling it once.
func (q *Queue[T]) SignalFinished() {
	tracer().Debugf("queue switching to finished state")
	q.finished.Signal()
	q.notEmpty.Broadcast()
}

// WaitFinished blocks until SignalFinished has been called.
func (q *Queue[T]) WaitFinished() {
	q.finished.Wait()
}

// Finished reports whether SignalFinished has been called.
func (q *Queue[T]) Finished() bool {
	return q.finished.Signaled()
}

// Len returns the current number of items in the ring.
func (q *Queue[T]) Len() int {
	q.mx.Lock()
	defer q.mx.Unlock()
	return q.count
}

// Cap returns the queue capacity.
func (q *Queue[T]) Cap() int {
	return q.capacity
}

// Destroy drops all undelivered items and marks the queue dead. It must be
// called only when no goroutine can still touch the queue; blocked peers
// are woken up and see an error or end-of-stream.
func (q *Queue[T]) Destroy() {
	q.mx.Lock()
	var zero T
	for i := range q.ring {
		q.ring[i] = zero
	}
	if q.count > 0 {
		tracer().Debugf("queue destroyed with %d undelivered items", q.count)
	}
	q.head, q.tail, q.count = 0, 0, 0
	q.dead = true
	q.mx.Unlock()
	q.notFull.Broadcast()
	q.notEmpty.Broadcast()
}
