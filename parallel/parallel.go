// Package parallel provides fork-join parallel versions of the classic
// sequence algorithms over slices.
//
// Every algorithm takes a chunk-size threshold, the sole concurrency knob:
// a sub-range of at most threshold elements runs the sequential algorithm
// directly, a larger one is split at its midpoint, with the left half
// submitted to the active task scheduler and the right half processed on
// the calling goroutine. Partial results are merged by an
// algorithm-specific combiner, so search algorithms deterministically
// return the leftmost match no matter which half finishes first. A
// threshold at or above the input length is exactly the sequential
// algorithm, with no task submitted. All algorithms panic before submitting
// any task if the threshold is not positive.
//
// Caller-supplied functions are invoked concurrently on disjoint sub-ranges
// without any locking; they must not have side effects outside the elements
// they are given. A panic raised inside a submitted task is re-raised on
// the goroutine joining that task; the sibling sub-range is not cancelled
// and runs to completion. If the half running on the calling goroutine
// panics first, that panic propagates and the submitted half's own
// failure, if any, is discarded.
package parallel

import (
	"sync/atomic"

	"github.com/parstl/parstl/internal"
	"github.com/parstl/parstl/sequential"
	"github.com/parstl/parstl/task"
)

// Addable is the constraint for element types that Sum and SumFunc can
// accumulate with the + operator.
type Addable interface {
	~uint | ~int | ~uintptr |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64 |
		~complex64 | ~complex128 |
		~string
}

type schedulerBox struct {
	s task.Scheduler
}

var active atomic.Value // schedulerBox

// SetScheduler replaces the task scheduler used by all algorithms in this
// package. Passing nil restores the default unbounded scheduler. Algorithm
// invocations already in flight keep the scheduler they started with.
func SetScheduler(s task.Scheduler) {
	if s == nil {
		s = task.Unbounded{}
	}
	active.Store(schedulerBox{s})
}

func scheduler() task.Scheduler {
	if b, ok := active.Load().(schedulerBox); ok {
		return b.s
	}
	return task.Unbounded{}
}

// runRange is the fork-join executor for algorithms with a result: at or
// below the threshold it runs leaf, otherwise it splits [low, high) at the
// midpoint, submits the left half as a task, recurses into the right half
// on the calling goroutine, joins, and combines the two partial results.
// combine is always invoked with the left result first.
func runRange[T any](
	sched task.Scheduler,
	low, high, threshold int,
	leaf func(low, high int) T,
	combine func(left, right T) T,
) T {
	if high-low <= threshold {
		return leaf(low, high)
	}
	mid := internal.Midpoint(low, high)
	var left T
	h := sched.Submit(func() {
		left = runRange(sched, low, mid, threshold, leaf, combine)
	})
	right := runRange(sched, mid, high, threshold, leaf, combine)
	h.Join()
	return combine(left, right)
}

// spanRange is the fork-join executor for algorithms whose only effect is
// in-place or destination writes; the halves combine by both having
// completed.
func spanRange(
	sched task.Scheduler,
	low, high, threshold int,
	leaf func(low, high int),
) {
	if high-low <= threshold {
		leaf(low, high)
		return
	}
	mid := internal.Midpoint(low, high)
	h := sched.Submit(func() {
		spanRange(sched, low, mid, threshold, leaf)
	})
	spanRange(sched, mid, high, threshold, leaf)
	h.Join()
}

// firstMatch keeps the leftmost of two search results, where -1 means no
// match in that half.
func firstMatch(left, right int) int {
	if left >= 0 {
		return left
	}
	return right
}

// Transform applies f to every element of src and stores the results in the
// corresponding positions of dst, which must be at least as long as src.
// Source and destination are split at the same midpoints, so concurrent
// writes to dst never overlap.
func Transform[S, D any](src []S, dst []D, f func(S) D, threshold int) {
	internal.CheckThreshold(threshold)
	spanRange(scheduler(), 0, len(src), threshold, func(low, high int) {
		sequential.Transform(src[low:high], dst[low:high], f)
	})
}

// ForEach invokes f with a pointer to every element of s, so f may update
// elements in place. Elements of different sub-ranges are visited
// concurrently.
func ForEach[T any](s []T, f func(*T), threshold int) {
	internal.CheckThreshold(threshold)
	spanRange(scheduler(), 0, len(s), threshold, func(low, high int) {
		sequential.ForEach(s[low:high], f)
	})
}

// Generate assigns the results of f to the elements of s. f is invoked
// concurrently from different sub-ranges and must be safe for that.
func Generate[T any](s []T, f func() T, threshold int) {
	internal.CheckThreshold(threshold)
	spanRange(scheduler(), 0, len(s), threshold, func(low, high int) {
		sequential.Generate(s[low:high], f)
	})
}

// Fill assigns v to every element of s.
func Fill[T any](s []T, v T, threshold int) {
	internal.CheckThreshold(threshold)
	spanRange(scheduler(), 0, len(s), threshold, func(low, high int) {
		sequential.Fill(s[low:high], v)
	})
}

// Copy copies the elements of src into the corresponding positions of dst,
// which must be at least as long as src.
func Copy[T any](src, dst []T, threshold int) {
	internal.CheckThreshold(threshold)
	spanRange(scheduler(), 0, len(src), threshold, func(low, high int) {
		sequential.Copy(src[low:high], dst[low:high])
	})
}

// Sum returns the sum of the elements of s, combining the partial sums of
// the two halves with the + operator. For floating-point elements the
// association of the additions depends on the threshold, so the result may
// differ from the sequential sum by rounding.
func Sum[T Addable](s []T, threshold int) T {
	internal.CheckThreshold(threshold)
	return runRange(scheduler(), 0, len(s), threshold,
		func(low, high int) T {
			return sequential.Sum(s[low:high])
		},
		func(left, right T) T {
			return left + right
		})
}

// SumFunc returns the sum of f applied to every element of s.
func SumFunc[T any, R Addable](s []T, f func(T) R, threshold int) R {
	internal.CheckThreshold(threshold)
	return runRange(scheduler(), 0, len(s), threshold,
		func(low, high int) R {
			return sequential.SumFunc(s[low:high], f)
		},
		func(left, right R) R {
			return left + right
		})
}

// Count returns the number of elements of s equal to v.
func Count[T comparable](s []T, v T, threshold int) int {
	internal.CheckThreshold(threshold)
	return runRange(scheduler(), 0, len(s), threshold,
		func(low, high int) int {
			return sequential.Count(s[low:high], v)
		},
		func(left, right int) int {
			return left + right
		})
}

// CountIf returns the number of elements of s satisfying pred.
func CountIf[T any](s []T, pred func(T) bool, threshold int) int {
	internal.CheckThreshold(threshold)
	return runRange(scheduler(), 0, len(s), threshold,
		func(low, high int) int {
			return sequential.CountIf(s[low:high], pred)
		},
		func(left, right int) int {
			return left + right
		})
}

// Find returns the index of the first element of s equal to v, or -1 if
// there is none. The leftmost match is returned even when a later sub-range
// finds its own match first.
func Find[T comparable](s []T, v T, threshold int) int {
	internal.CheckThreshold(threshold)
	return runRange(scheduler(), 0, len(s), threshold,
		func(low, high int) int {
			if i := sequential.Find(s[low:high], v); i >= 0 {
				return low + i
			}
			return -1
		},
		firstMatch)
}

// FindIf returns the index of the first element of s satisfying pred, or -1
// if there is none.
func FindIf[T any](s []T, pred func(T) bool, threshold int) int {
	internal.CheckThreshold(threshold)
	return runRange(scheduler(), 0, len(s), threshold,
		func(low, high int) int {
			if i := sequential.FindIf(s[low:high], pred); i >= 0 {
				return low + i
			}
			return -1
		},
		firstMatch)
}

// FindIfNot returns the index of the first element of s not satisfying
// pred, or -1 if there is none.
func FindIfNot[T any](s []T, pred func(T) bool, threshold int) int {
	internal.CheckThreshold(threshold)
	return runRange(scheduler(), 0, len(s), threshold,
		func(low, high int) int {
			if i := sequential.FindIfNot(s[low:high], pred); i >= 0 {
				return low + i
			}
			return -1
		},
		firstMatch)
}

// All reports whether every element of s satisfies pred.
func All[T any](s []T, pred func(T) bool, threshold int) bool {
	return FindIfNot(s, pred, threshold) == -1
}

// Any reports whether at least one element of s satisfies pred.
func Any[T any](s []T, pred func(T) bool, threshold int) bool {
	return FindIf(s, pred, threshold) != -1
}

// None reports whether no element of s satisfies pred.
func None[T any](s []T, pred func(T) bool, threshold int) bool {
	return FindIf(s, pred, threshold) == -1
}

// Replace replaces every element of s equal to old with new.
func Replace[T comparable](s []T, old, new T, threshold int) {
	internal.CheckThreshold(threshold)
	spanRange(scheduler(), 0, len(s), threshold, func(low, high int) {
		sequential.Replace(s[low:high], old, new)
	})
}

// ReplaceIf replaces every element of s satisfying pred with new.
func ReplaceIf[T any](s []T, pred func(T) bool, new T, threshold int) {
	internal.CheckThreshold(threshold)
	spanRange(scheduler(), 0, len(s), threshold, func(low, high int) {
		sequential.ReplaceIf(s[low:high], pred, new)
	})
}

// Equal reports whether a and b have the same length and equal elements at
// every index. Both halves are always compared in full; there is no early
// termination.
func Equal[T comparable](a, b []T, threshold int) bool {
	internal.CheckThreshold(threshold)
	if len(a) != len(b) {
		return false
	}
	return runRange(scheduler(), 0, len(a), threshold,
		func(low, high int) bool {
			return sequential.Equal(a[low:high], b[low:high])
		},
		func(left, right bool) bool {
			return left && right
		})
}

// EqualFunc reports whether a and b have the same length and eq holds for
// the elements at every index.
func EqualFunc[S, D any](a []S, b []D, eq func(S, D) bool, threshold int) bool {
	internal.CheckThreshold(threshold)
	if len(a) != len(b) {
		return false
	}
	return runRange(scheduler(), 0, len(a), threshold,
		func(low, high int) bool {
			return sequential.EqualFunc(a[low:high], b[low:high], eq)
		},
		func(left, right bool) bool {
			return left && right
		})
}
