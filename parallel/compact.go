package parallel

import (
	"github.com/parstl/parstl/internal"
	"github.com/parstl/parstl/sequential"
	"github.com/parstl/parstl/task"
)

// Compacting algorithms cannot use recursive halving: the destination of a
// half depends on how many elements the halves before it keep, which is
// unknown until they finish. They instead partition the input into
// threshold-sized chunks up front, compact every chunk concurrently within
// its own bounds, and then append the surviving sub-ranges one after
// another in chunk order.

// CopyIf copies the elements of src satisfying pred into the leading
// positions of dst, preserving their relative order, and returns the number
// of elements copied. dst must be at least as long as src; elements of dst
// at or beyond the returned count are left in an unspecified state.
func CopyIf[T any](src, dst []T, pred func(T) bool, threshold int) int {
	internal.CheckThreshold(threshold)
	n := len(src)
	if n == 0 {
		return 0
	}
	sched := scheduler()
	chunks := (n + threshold - 1) / threshold
	ends := make([]int, chunks) // absolute end of each chunk's surviving sub-range
	handles := make([]task.Handle, chunks)
	for i := 0; i < chunks; i++ {
		start := i * threshold
		stop := min(start+threshold, n)
		handles[i] = sched.Submit(func() {
			ends[i] = start + sequential.CopyIf(src[start:stop], dst[start:stop], pred)
		})
	}
	return stitch(dst, ends, handles, threshold)
}

// RemoveIf moves the elements of s not satisfying pred to the front of s,
// preserving their relative order, and returns the number of elements kept.
// Elements beyond the returned length are left in an unspecified state;
// callers who need a shrunk slice must truncate to the returned length.
func RemoveIf[T any](s []T, pred func(T) bool, threshold int) int {
	internal.CheckThreshold(threshold)
	n := len(s)
	if n == 0 {
		return 0
	}
	sched := scheduler()
	chunks := (n + threshold - 1) / threshold
	ends := make([]int, chunks)
	handles := make([]task.Handle, chunks)
	for i := 0; i < chunks; i++ {
		start := i * threshold
		stop := min(start+threshold, n)
		handles[i] = sched.Submit(func() {
			ends[i] = start + sequential.RemoveIf(s[start:stop], pred)
		})
	}
	return stitch(s, ends, handles, threshold)
}

// Remove moves the elements of s not equal to v to the front of s,
// preserving their relative order, and returns the number of elements kept.
func Remove[T comparable](s []T, v T, threshold int) int {
	return RemoveIf(s, func(x T) bool { return x == v }, threshold)
}

// stitch joins the chunk tasks strictly in chunk order and moves each
// chunk's surviving sub-range s[i*threshold:ends[i]] to directly follow the
// previous chunk's survivors. This pass is deliberately sequential: where
// chunk k lands depends on the survivor count of every chunk before it. The
// first chunk's survivors are already in place. Moving chunk k's survivors
// only touches positions before chunk k+1's start, so it never races with
// chunk tasks that are still running.
func stitch[T any](s []T, ends []int, handles []task.Handle, threshold int) int {
	handles[0].Join()
	newEnd := ends[0]
	for i := 1; i < len(handles); i++ {
		handles[i].Join()
		start := i * threshold
		newEnd += copy(s[newEnd:], s[start:ends[i]])
	}
	return newEnd
}
