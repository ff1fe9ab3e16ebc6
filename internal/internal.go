package internal

import (
	"fmt"
	"runtime/debug"
)

// Midpoint returns the index that splits the half-open range [low, high)
// into two balanced halves, biased toward the left half when the length is
// odd.
func Midpoint(low, high int) int {
	return low + (high-low)/2
}

// CheckThreshold panics unless threshold is a positive chunk size. Every
// exported algorithm calls this before submitting any task: a threshold of
// zero would recurse without bound.
func CheckThreshold(threshold int) {
	if threshold <= 0 {
		panic(fmt.Sprintf("invalid chunk threshold: %v", threshold))
	}
}

// WrapPanic adds stack trace information to a recovered panic.
func WrapPanic(p interface{}) interface{} {
	if p != nil {
		if err, isError := p.(error); isError {
			return fmt.Errorf("%w\n%s\nrethrown at", err, debug.Stack())
		}
		return fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
	}
	return nil
}
