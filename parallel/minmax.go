package parallel

import (
	"cmp"

	"github.com/parstl/parstl/internal"
	"github.com/parstl/parstl/sequential"
)

// MaxIndex returns the index of a largest element of s, or -1 if s is
// empty.
//
// When the maximum occurs in both halves of a split, the right half's
// candidate is kept, so the returned index is implementation-defined among
// equal maxima (within one half it is still the leftmost occurrence).
func MaxIndex[T cmp.Ordered](s []T, threshold int) int {
	return MaxIndexFunc(s, func(a, b T) bool { return a < b }, threshold)
}

// MaxIndexFunc returns the index of an element m of s such that less(m, x)
// is false for every element x, ordering by the less function, or -1 if s
// is empty. The tie-break between halves is the same as for MaxIndex.
func MaxIndexFunc[T any](s []T, less func(a, b T) bool, threshold int) int {
	internal.CheckThreshold(threshold)
	if len(s) == 0 {
		return -1
	}
	return runRange(scheduler(), 0, len(s), threshold,
		func(low, high int) int {
			return low + sequential.MaxIndexFunc(s[low:high], less)
		},
		func(left, right int) int {
			if less(s[right], s[left]) {
				return left
			}
			return right
		})
}

// MinIndex returns the index of a smallest element of s, or -1 if s is
// empty.
//
// When the minimum occurs in both halves of a split, the left half's
// candidate is kept, so for MinIndex the returned index is the leftmost
// occurrence of the minimum.
func MinIndex[T cmp.Ordered](s []T, threshold int) int {
	return MinIndexFunc(s, func(a, b T) bool { return a < b }, threshold)
}

// MinIndexFunc returns the index of an element m of s such that less(x, m)
// is false for every element x, ordering by the less function, or -1 if s
// is empty. The tie-break between halves is the same as for MinIndex.
func MinIndexFunc[T any](s []T, less func(a, b T) bool, threshold int) int {
	internal.CheckThreshold(threshold)
	if len(s) == 0 {
		return -1
	}
	return runRange(scheduler(), 0, len(s), threshold,
		func(low, high int) int {
			return low + sequential.MinIndexFunc(s[low:high], less)
		},
		func(left, right int) int {
			if less(s[right], s[left]) {
				return right
			}
			return left
		})
}
