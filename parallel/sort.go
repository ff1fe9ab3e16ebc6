package parallel

import (
	"cmp"

	"github.com/parstl/parstl/internal"
	"github.com/parstl/parstl/sequential"
)

// Sort sorts s in ascending order using parallel merge sort: the two halves
// of a split are sorted concurrently, then merged back into s. The sort is
// not guaranteed to be stable.
//
// The merge at each recursion level is sequential and O(n), which caps how
// far the sort can scale with additional cores.
func Sort[T cmp.Ordered](s []T, threshold int) {
	SortFunc(s, func(a, b T) bool { return a < b }, threshold)
}

// SortFunc sorts s according to the less function, which must define a
// strict weak ordering and is invoked concurrently on disjoint sub-ranges.
// The sort is not guaranteed to be stable.
func SortFunc[T any](s []T, less func(a, b T) bool, threshold int) {
	internal.CheckThreshold(threshold)
	sched := scheduler()
	var recur func(low, high int)
	recur = func(low, high int) {
		if high-low <= threshold {
			sequential.SortFunc(s[low:high], less)
			return
		}
		mid := internal.Midpoint(low, high)
		h := sched.Submit(func() {
			recur(low, mid)
		})
		recur(mid, high)
		h.Join()
		merge(s, low, mid, high, less)
	}
	recur(0, len(s))
}

// merge merges the sorted sub-ranges s[low:mid] and s[mid:high] back into
// s[low:high] through two temporary buffers. The left element is taken when
// neither orders before the other.
func merge[T any](s []T, low, mid, high int, less func(a, b T) bool) {
	left := make([]T, mid-low)
	copy(left, s[low:mid])
	right := make([]T, high-mid)
	copy(right, s[mid:high])
	i, j, k := 0, 0, low
	for i < len(left) && j < len(right) {
		if less(right[j], left[i]) {
			s[k] = right[j]
			j++
		} else {
			s[k] = left[i]
			i++
		}
		k++
	}
	// A remaining right suffix already sits in its final positions, so only
	// the left remainder needs to be moved.
	copy(s[k:high], left[i:])
}
