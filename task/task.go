// Package task provides the task scheduling abstraction used by the parallel
// algorithms: a Scheduler runs submitted units of asynchronous work, and a
// Handle joins one unit, blocking until it has finished.
//
// A panic raised inside submitted work is recovered by the scheduler,
// annotated with its stack trace, and re-raised on the goroutine that calls
// Join. Submitted work is never cancelled: once submitted, it runs to
// completion or to its own failure, even if a sibling unit fails first.
package task

import (
	"sync"

	"github.com/parstl/parstl/internal"
)

// A Handle represents one submitted unit of work.
type Handle interface {
	// Join blocks until the unit of work has finished. If the work
	// panicked, Join re-raises that panic on the calling goroutine.
	Join()
}

// A Scheduler runs submitted units of asynchronous work. Implementations in
// this package differ only in how they map units to goroutines; all of them
// deliver panics through Handle.Join.
type Scheduler interface {
	Submit(f func()) Handle
}

// goHandle is a unit of work running in its own goroutine.
type goHandle struct {
	wg sync.WaitGroup
	p  interface{}
}

func (h *goHandle) Join() {
	h.wg.Wait()
	if h.p != nil {
		panic(h.p)
	}
}

// Unbounded spawns one goroutine per submitted unit of work, leaving the
// mapping of goroutines to OS threads to the Go runtime. It imposes no bound
// on the number of concurrently outstanding units. This is the default
// scheduler of the parallel package.
type Unbounded struct{}

func (Unbounded) Submit(f func()) Handle {
	h := &goHandle{}
	h.wg.Add(1)
	go func() {
		defer func() {
			h.p = internal.WrapPanic(recover())
			h.wg.Done()
		}()
		f()
	}()
	return h
}

// inlineHandle is a unit of work that already ran on the submitting
// goroutine. Join only re-raises its recorded panic.
type inlineHandle struct {
	p interface{}
}

func (h *inlineHandle) Join() {
	if h.p != nil {
		panic(h.p)
	}
}

func runInline(f func()) Handle {
	h := &inlineHandle{}
	func() {
		defer func() {
			h.p = internal.WrapPanic(recover())
		}()
		f()
	}()
	return h
}
