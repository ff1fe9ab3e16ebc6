package parallel_test

import (
	"testing"

	"github.com/parstl/parstl/parallel"
	"github.com/parstl/parstl/sequential"
	"github.com/parstl/parstl/task"
)

// Every scheduler implementation must leave the algorithm results
// unchanged; only the mapping of tasks to goroutines may differ. A single
// worker is the hardest case: it only avoids deadlock because joining a
// not-yet-started task runs it inline.
func TestSchedulers(t *testing.T) {
	workers1 := task.NewWorkers(1)
	defer workers1.Close()
	workers4 := task.NewWorkers(4)
	defer workers4.Close()

	schedulers := map[string]task.Scheduler{
		"unbounded": task.Unbounded{},
		"limited2":  task.NewLimited(2),
		"workers1":  workers1,
		"workers4":  workers4,
	}

	src := makeRandomSlice(4096, 1000)
	wantSum := sequential.Sum(src)
	wantFind := sequential.Find(src, src[3000])
	sorted := make([]int, len(src))
	copy(sorted, src)
	sequential.Sort(sorted)
	kept := make([]int, len(src))
	copy(kept, src)
	keptLen := sequential.RemoveIf(kept, func(v int) bool { return v%3 == 0 })

	for name, sched := range schedulers {
		t.Run(name, func(t *testing.T) {
			parallel.SetScheduler(sched)
			defer parallel.SetScheduler(nil)

			for _, threshold := range []int{1, 64, len(src)} {
				if got := parallel.Sum(src, threshold); got != wantSum {
					t.Errorf("Sum, threshold %d: got %d, want %d", threshold, got, wantSum)
				}
				if got := parallel.Find(src, src[3000], threshold); got != wantFind {
					t.Errorf("Find, threshold %d: got %d, want %d", threshold, got, wantFind)
				}
				s := make([]int, len(src))
				copy(s, src)
				parallel.Sort(s, threshold)
				if !sequential.Equal(s, sorted) {
					t.Errorf("Sort, threshold %d: output differs", threshold)
				}
				copy(s, src)
				if n := parallel.RemoveIf(s, func(v int) bool { return v%3 == 0 }, threshold); n != keptLen || !sequential.Equal(s[:n], kept[:keptLen]) {
					t.Errorf("RemoveIf, threshold %d: output differs", threshold)
				}
			}
		})
	}
}
