package latch

import (
	"sync"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLatchSignalBeforeWait(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strand.latch")
	defer teardown()
	//
	l := New()
	l.Signal()
	done := make(chan struct{})
	go func() {
		l.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Error("wait after signal should return immediately, timed out instead")
	}
}

func TestLatchWaitBlocksUntilSignal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strand.latch")
	defer teardown()
	//
	l := New()
	done := make(chan struct{})
	go func() {
		l.Wait()
		close(done)
	}()
	select {
	case <-done:
		t.Error("wait on an unsignaled latch should block")
	case <-time.After(50 * time.Millisecond):
	}
	l.Signal()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Error("signal should have woken the waiter")
	}
}

func TestLatchReset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strand.latch")
	defer teardown()
	//
	l := New()
	l.Signal()
	if !l.Signaled() {
		t.Error("latch should be signaled after Signal")
	}
	l.Reset()
	if l.Signaled() {
		t.Error("latch should be unsignaled after Reset")
	}
	done := make(chan struct{})
	go func() {
		l.Wait()
		close(done)
	}()
	select {
	case <-done:
		t.Error("wait after reset should block again")
	case <-time.After(50 * time.Millisecond):
	}
	l.Signal()
	<-done
}

func TestLatchBroadcastWakesAllWaiters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strand.latch")
	defer teardown()
	//
	const waiters = 8
	l := New()
	var wg sync.WaitGroup
	wg.Add(waiters)
	for i := 0; i < waiters; i++ {
		go func() {
			defer wg.Done()
			l.Wait()
		}()
	}
	time.Sleep(20 * time.Millisecond) // let the waiters park
	l.Broadcast()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Errorf("broadcast should wake all %d waiters", waiters)
	}
}

func TestLatchSignalIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strand.latch")
	defer teardown()
	//
	l := New()
	l.Signal()
	l.Signal()
	l.Wait() // must not block
	if !l.Signaled() {
		t.Error("latch should still be signaled")
	}
}
