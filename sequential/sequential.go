// Package sequential provides sequential implementations of the algorithms
// in the parallel package. They are the base cases that the parallel
// versions reduce to at or below the chunk threshold, and the reference
// implementations that the parallel results are tested against.
package sequential

import (
	"cmp"
	"slices"
	"sort"
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

// Transform applies f to every element of src and stores the results in the
// corresponding positions of dst, which must be at least as long as src.
func Transform[S, D any](src []S, dst []D, f func(S) D) {
	for i := range src {
		dst[i] = f(src[i])
	}
}

// ForEach invokes f with a pointer to every element of s in order, so f may
// update elements in place.
func ForEach[T any](s []T, f func(*T)) {
	for i := range s {
		f(&s[i])
	}
}

// Generate assigns the successive results of f to the elements of s.
func Generate[T any](s []T, f func() T) {
	for i := range s {
		s[i] = f()
	}
}

// Fill assigns v to every element of s.
func Fill[T any](s []T, v T) {
	for i := range s {
		s[i] = v
	}
}

// Copy copies the elements of src into the corresponding positions of dst,
// which must be at least as long as src.
func Copy[T any](src, dst []T) {
	copy(dst, src)
}

// Sum returns the sum of the elements of s, with the zero value of T as the
// sum of an empty slice.
func Sum[T Addable](s []T) (sum T) {
	for _, v := range s {
		sum += v
	}
	return
}

// SumFunc returns the sum of f applied to every element of s.
func SumFunc[T any, R Addable](s []T, f func(T) R) (sum R) {
	for _, v := range s {
		sum += f(v)
	}
	return
}

// Count returns the number of elements of s equal to v.
func Count[T comparable](s []T, v T) (count int) {
	for i := range s {
		if s[i] == v {
			count++
		}
	}
	return
}

// CountIf returns the number of elements of s satisfying pred.
func CountIf[T any](s []T, pred func(T) bool) (count int) {
	for i := range s {
		if pred(s[i]) {
			count++
		}
	}
	return
}

// Find returns the index of the first element of s equal to v, or -1 if
// there is none.
func Find[T comparable](s []T, v T) int {
	return slices.Index(s, v)
}

// FindIf returns the index of the first element of s satisfying pred, or -1
// if there is none.
func FindIf[T any](s []T, pred func(T) bool) int {
	return slices.IndexFunc(s, pred)
}

// FindIfNot returns the index of the first element of s not satisfying
// pred, or -1 if there is none.
func FindIfNot[T any](s []T, pred func(T) bool) int {
	for i := range s {
		if !pred(s[i]) {
			return i
		}
	}
	return -1
}

// All reports whether every element of s satisfies pred.
func All[T any](s []T, pred func(T) bool) bool {
	return FindIfNot(s, pred) == -1
}

// Any reports whether at least one element of s satisfies pred.
func Any[T any](s []T, pred func(T) bool) bool {
	return FindIf(s, pred) != -1
}

// None reports whether no element of s satisfies pred.
func None[T any](s []T, pred func(T) bool) bool {
	return FindIf(s, pred) == -1
}

// Replace replaces every element of s equal to old with new.
func Replace[T comparable](s []T, old, new T) {
	for i := range s {
		if s[i] == old {
			s[i] = new
		}
	}
}

// ReplaceIf replaces every element of s satisfying pred with new.
func ReplaceIf[T any](s []T, pred func(T) bool, new T) {
	for i := range s {
		if pred(s[i]) {
			s[i] = new
		}
	}
}

// Equal reports whether a and b have the same length and equal elements at
// every index.
func Equal[T comparable](a, b []T) bool {
	return slices.Equal(a, b)
}

// EqualFunc reports whether a and b have the same length and eq holds for
// the elements at every index.
func EqualFunc[S, D any](a []S, b []D, eq func(S, D) bool) bool {
	return slices.EqualFunc(a, b, eq)
}

// MaxIndex returns the index of the first occurrence of the largest element
// of s, or -1 if s is empty.
func MaxIndex[T cmp.Ordered](s []T) int {
	return MaxIndexFunc(s, func(a, b T) bool { return a < b })
}

// MaxIndexFunc returns the index of the first element m of s such that
// less(m, x) is false for every element x, or -1 if s is empty.
func MaxIndexFunc[T any](s []T, less func(a, b T) bool) int {
	if len(s) == 0 {
		return -1
	}
	max := 0
	for i := 1; i < len(s); i++ {
		if less(s[max], s[i]) {
			max = i
		}
	}
	return max
}

// MinIndex returns the index of the first occurrence of the smallest
// element of s, or -1 if s is empty.
func MinIndex[T cmp.Ordered](s []T) int {
	return MinIndexFunc(s, func(a, b T) bool { return a < b })
}

// MinIndexFunc returns the index of the first element m of s such that
// less(x, m) is false for every element x, or -1 if s is empty.
func MinIndexFunc[T any](s []T, less func(a, b T) bool) int {
	if len(s) == 0 {
		return -1
	}
	min := 0
	for i := 1; i < len(s); i++ {
		if less(s[i], s[min]) {
			min = i
		}
	}
	return min
}

// Sort sorts s in ascending order. The sort is not guaranteed to be stable.
func Sort[T cmp.Ordered](s []T) {
	slices.Sort(s)
}

// SortFunc sorts s according to the less function. The sort is not
// guaranteed to be stable.
func SortFunc[T any](s []T, less func(a, b T) bool) {
	sort.Slice(s, func(i, j int) bool {
		return less(s[i], s[j])
	})
}

// CopyIf copies the elements of src satisfying pred into the leading
// positions of dst, preserving their relative order, and returns the number
// of elements copied. dst must have room for that many elements.
func CopyIf[T any](src, dst []T, pred func(T) bool) int {
	n := 0
	for i := range src {
		if pred(src[i]) {
			dst[n] = src[i]
			n++
		}
	}
	return n
}

// RemoveIf moves the elements of s not satisfying pred to the front of s,
// preserving their relative order, and returns the number of elements kept.
// Elements beyond the returned length are left in an unspecified state.
func RemoveIf[T any](s []T, pred func(T) bool) int {
	n := 0
	for i := range s {
		if !pred(s[i]) {
			s[n] = s[i]
			n++
		}
	}
	return n
}

// Remove moves the elements of s not equal to v to the front of s,
// preserving their relative order, and returns the number of elements kept.
// Elements beyond the returned length are left in an unspecified state.
func Remove[T comparable](s []T, v T) int {
	return RemoveIf(s, func(x T) bool { return x == v })
}
