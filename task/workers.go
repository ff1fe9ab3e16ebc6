package task

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/parstl/parstl/internal"

	"github.com/eapache/queue"
)

const (
	statePending int32 = iota
	stateRunning
)

// poolHandle is a unit of work queued on a Workers scheduler. It is claimed
// exactly once, either by a worker goroutine or by the goroutine that joins
// it.
type poolHandle struct {
	f     func()
	state int32
	p     interface{}
	done  chan struct{}
}

func (h *poolHandle) claim() bool {
	return atomic.CompareAndSwapInt32(&h.state, statePending, stateRunning)
}

func (h *poolHandle) run() {
	defer func() {
		h.p = internal.WrapPanic(recover())
		close(h.done)
	}()
	h.f()
}

func (h *poolHandle) Join() {
	// Work-first joining: a handle that no worker has picked up yet is run
	// on the joining goroutine itself. This is what makes nested fork-join
	// safe on a pool of any size, including a single worker.
	if h.claim() {
		h.run()
	} else {
		<-h.done
	}
	if h.p != nil {
		panic(h.p)
	}
}

// Workers runs submitted units of work on a fixed number of worker
// goroutines, draining a FIFO queue of pending units. Unlike Unbounded, the
// number of goroutines is constant for the lifetime of the scheduler.
type Workers struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending *queue.Queue
	closed  bool
}

// NewWorkers returns a scheduler with n worker goroutines. It panics if
// n < 1. Close must be called to release the workers.
func NewWorkers(n int) *Workers {
	if n < 1 {
		panic(fmt.Sprintf("invalid number of workers: %v", n))
	}
	w := &Workers{pending: queue.New()}
	w.cond = sync.NewCond(&w.mu)
	for i := 0; i < n; i++ {
		go w.worker()
	}
	return w
}

func (w *Workers) worker() {
	for {
		w.mu.Lock()
		for w.pending.Length() == 0 && !w.closed {
			w.cond.Wait()
		}
		if w.pending.Length() == 0 {
			w.mu.Unlock()
			return
		}
		h := w.pending.Remove().(*poolHandle)
		w.mu.Unlock()
		// A joiner may have claimed and run the unit already.
		if h.claim() {
			h.run()
		}
	}
}

func (w *Workers) Submit(f func()) Handle {
	h := &poolHandle{f: f, done: make(chan struct{})}
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		panic("submit on closed scheduler")
	}
	w.pending.Add(h)
	w.mu.Unlock()
	w.cond.Signal()
	return h
}

// Close stops the worker goroutines once the pending queue has drained.
// Handles already submitted remain joinable.
func (w *Workers) Close() {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	w.cond.Broadcast()
}
