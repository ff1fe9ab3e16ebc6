package sequential_test

import (
	"testing"

	"github.com/parstl/parstl/sequential"
)

func TestFindVariants(t *testing.T) {
	s := []int{4, 8, 15, 16, 23, 42}
	if got := sequential.Find(s, 15); got != 2 {
		t.Errorf("Find: got %d, want 2", got)
	}
	if got := sequential.Find(s, 7); got != -1 {
		t.Errorf("Find: got %d, want -1", got)
	}
	even := func(v int) bool { return v%2 == 0 }
	if got := sequential.FindIf(s, even); got != 0 {
		t.Errorf("FindIf: got %d, want 0", got)
	}
	if got := sequential.FindIfNot(s, even); got != 2 {
		t.Errorf("FindIfNot: got %d, want 2", got)
	}
}

func TestMinMaxTies(t *testing.T) {
	s := []int{3, 1, 4, 1, 3, 4}
	// The first occurrence wins in the sequential versions.
	if got := sequential.MaxIndex(s); got != 2 {
		t.Errorf("MaxIndex: got %d, want 2", got)
	}
	if got := sequential.MinIndex(s); got != 1 {
		t.Errorf("MinIndex: got %d, want 1", got)
	}
	if got := sequential.MaxIndex([]int{}); got != -1 {
		t.Errorf("MaxIndex of empty: got %d, want -1", got)
	}
}

func TestRemoveIfPreservesOrder(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6, 7, 8}
	n := sequential.RemoveIf(s, func(v int) bool { return v%2 == 0 })
	want := []int{1, 3, 5, 7}
	if n != len(want) || !sequential.Equal(s[:n], want) {
		t.Errorf("got %v, want %v", s[:n], want)
	}
}

func TestSumAndCount(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6, 7, 8}
	if got := sequential.Sum(s); got != 36 {
		t.Errorf("Sum: got %d, want 36", got)
	}
	if got := sequential.SumFunc(s, func(v int) int { return v % 2 }); got != 4 {
		t.Errorf("SumFunc: got %d, want 4", got)
	}
	if got := sequential.Count(s, 4); got != 1 {
		t.Errorf("Count: got %d, want 1", got)
	}
	if got := sequential.CountIf(s, func(v int) bool { return v > 4 }); got != 4 {
		t.Errorf("CountIf: got %d, want 4", got)
	}
}

func TestStringSum(t *testing.T) {
	words := []string{"fork", "-", "join"}
	if got := sequential.Sum(words); got != "fork-join" {
		t.Errorf("got %q", got)
	}
}
