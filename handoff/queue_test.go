package handoff

import (
	"fmt"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestQueueInvalidCapacity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strand.handoff")
	defer teardown()
	//
	if _, err := New[string](0); err != ErrInvalidCapacity {
		t.Errorf("capacity 0 should be rejected, got err=%v", err)
	}
	if _, err := New[string](-3); err != ErrInvalidCapacity {
		t.Errorf("capacity -3 should be rejected, got err=%v", err)
	}
}

func TestQueueFIFO(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strand.handoff")
	defer teardown()
	//
	q, err := New[string](4)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"a", "b", "c"} {
		if err := q.Put(s); err != nil {
			t.Fatal(err)
		}
	}
	if q.Len() != 3 {
		t.Errorf("expected 3 items in the queue, have %d", q.Len())
	}
	for _, want := range []string{"a", "b", "c"} {
		got, ok := q.Get()
		if !ok {
			t.Fatal("queue reported end-of-stream with items pending")
		}
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
	if q.Len() != 0 {
		t.Errorf("queue should be empty, has %d items", q.Len())
	}
}

func TestQueueCapacityBound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strand.handoff")
	defer teardown()
	//
	q, _ := New[int](2)
	if q.Cap() != 2 {
		t.Errorf("expected capacity 2, got %d", q.Cap())
	}
	q.Put(1)
	q.Put(2)
	if q.Len() != q.Cap() {
		t.Errorf("queue should be full, count=%d", q.Len())
	}
}

func TestQueuePutBlocksWhenFull(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strand.handoff")
	defer teardown()
	//
	q, _ := New[string](1)
	if err := q.Put("a"); err != nil {
		t.Fatal(err)
	}
	done := make(chan struct{})
	go func() {
		q.Put("b") // has to wait for room
		close(done)
	}()
	select {
	case <-done:
		t.Error("put on a full queue should block")
	case <-time.After(50 * time.Millisecond):
	}
	if got, _ := q.Get(); got != "a" {
		t.Errorf("expected %q, got %q", "a", got)
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("put should resume after room opened up")
	}
	if got, _ := q.Get(); got != "b" {
		t.Errorf("expected %q, got %q", "b", got)
	}
}

func TestQueueDrainsBeforeEndOfStream(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strand.handoff")
	defer teardown()
	//
	q, _ := New[string](4)
	q.Put("a")
	q.Put("b")
	q.SignalFinished()
	if got, ok := q.Get(); !ok || got != "a" {
		t.Errorf("expected %q before end-of-stream, got %q/%v", "a", got, ok)
	}
	if got, ok := q.Get(); !ok || got != "b" {
		t.Errorf("expected %q before end-of-stream, got %q/%v", "b", got, ok)
	}
	if _, ok := q.Get(); ok {
		t.Error("drained finished queue should report end-of-stream")
	}
	if _, ok := q.Get(); ok {
		t.Error("end-of-stream should be sticky")
	}
}

func TestQueueFinishedWakesParkedConsumer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strand.handoff")
	defer teardown()
	//
	q, _ := New[string](2)
	done := make(chan bool)
	go func() {
		_, ok := q.Get() // parks on the empty queue
		done <- ok
	}()
	time.Sleep(20 * time.Millisecond)
	q.SignalFinished()
	select {
	case ok := <-done:
		if ok {
			t.Error("woken consumer should see end-of-stream")
		}
	case <-time.After(time.Second):
		t.Fatal("finished broadcast failed to wake the parked consumer")
	}
}

func TestQueueSignalFinishedIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strand.handoff")
	defer teardown()
	//
	q, _ := New[string](2)
	q.SignalFinished()
	q.SignalFinished()
	if !q.Finished() {
		t.Error("queue should be finished")
	}
	q.WaitFinished() // must not block
	if _, ok := q.Get(); ok {
		t.Error("empty finished queue should report end-of-stream")
	}
}

func TestQueuePutAfterDestroy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strand.handoff")
	defer teardown()
	//
	q, _ := New[string](2)
	q.Put("left behind")
	q.Destroy()
	if err := q.Put("x"); err != ErrQueueDestroyed {
		t.Errorf("put on destroyed queue should fail, got err=%v", err)
	}
}

func TestQueueProducerConsumerOrdering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strand.handoff")
	defer teardown()
	//
	const items = 500
	q, _ := New[string](4) // small capacity forces plenty of blocking
	go func() {
		for i := 0; i < items; i++ {
			q.Put(fmt.Sprintf("item-%04d", i))
		}
		q.SignalFinished()
	}()
	received := 0
	for {
		got, ok := q.Get()
		if !ok {
			break
		}
		want := fmt.Sprintf("item-%04d", received)
		if got != want {
			t.Fatalf("ordering violated: expected %q, got %q", want, got)
		}
		received++
	}
	if received != items {
		t.Errorf("expected %d items delivered, got %d", items, received)
	}
}
