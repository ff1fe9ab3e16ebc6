package task

import (
	"fmt"

	"github.com/parstl/parstl/internal"

	"golang.org/x/sync/semaphore"
)

// Limited spawns at most a fixed number of concurrently running goroutines.
// When no slot is free at submission time, the work runs immediately on the
// submitting goroutine instead; its panic, if any, is still delivered at
// Join. Running over-limit work on the submitter keeps nested fork-join
// patterns deadlock-free for any limit.
type Limited struct {
	sem *semaphore.Weighted
}

// NewLimited returns a scheduler that spawns at most n goroutines at a time.
// It panics if n < 1.
func NewLimited(n int) *Limited {
	if n < 1 {
		panic(fmt.Sprintf("invalid goroutine limit: %v", n))
	}
	return &Limited{sem: semaphore.NewWeighted(int64(n))}
}

func (l *Limited) Submit(f func()) Handle {
	if !l.sem.TryAcquire(1) {
		return runInline(f)
	}
	h := &goHandle{}
	h.wg.Add(1)
	go func() {
		defer func() {
			h.p = internal.WrapPanic(recover())
			l.sem.Release(1)
			h.wg.Done()
		}()
		f()
	}()
	return h
}
