// parbench times the parallel algorithms against their sequential
// references over a sweep of chunk-size thresholds, verifying every result
// along the way. It is the tuning tool for picking a threshold on a given
// machine.
//
// Example:
//
//	parbench -n 4000000 -chunks 10000,100000,1000000 -algos sum,sort
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	"gonum.org/v1/gonum/stat"

	"github.com/parstl/parstl/parallel"
	"github.com/parstl/parstl/sequential"
	"github.com/parstl/parstl/task"
)

var (
	bold = color.New(color.Bold)
	red  = color.New(color.FgRed)
)

// An algorithm pairs a parallel entry point with its sequential reference.
// Both reduce their effect to a single checksum so the results can be
// compared.
type algorithm struct {
	name       string
	sequential func(data []float64) float64
	parallel   func(data []float64, threshold int) float64
}

// checksum folds a slice into one order-sensitive value, so a wrong
// permutation from sort or a compaction shows up as a mismatch.
func checksum(s []float64) float64 {
	var c float64
	for i, v := range s {
		c += float64(i%64+1) * v
	}
	return c
}

func algorithms() []algorithm {
	// The same artificial per-element load as the original benchmark, heavy
	// enough that splitting pays off.
	heavy := func(v float64) float64 {
		sum := v
		for i := 0; i < 10; i++ {
			sum += math.Sqrt(float64(i*i*i) * sum)
		}
		return sum
	}
	overHalf := func(v float64) bool { return v > 0.5 }
	lowQuarter := func(v float64) bool { return v < 0.25 }
	return []algorithm{
		{
			name:       "sum",
			sequential: func(d []float64) float64 { return sequential.SumFunc(d, heavy) },
			parallel:   func(d []float64, t int) float64 { return parallel.SumFunc(d, heavy, t) },
		},
		{
			name:       "count-if",
			sequential: func(d []float64) float64 { return float64(sequential.CountIf(d, overHalf)) },
			parallel:   func(d []float64, t int) float64 { return float64(parallel.CountIf(d, overHalf, t)) },
		},
		{
			name:       "min",
			sequential: func(d []float64) float64 { return float64(sequential.MinIndex(d)) },
			parallel:   func(d []float64, t int) float64 { return float64(parallel.MinIndex(d, t)) },
		},
		{
			name: "transform",
			sequential: func(d []float64) float64 {
				dst := make([]float64, len(d))
				sequential.Transform(d, dst, heavy)
				return checksum(dst)
			},
			parallel: func(d []float64, t int) float64 {
				dst := make([]float64, len(d))
				parallel.Transform(d, dst, heavy, t)
				return checksum(dst)
			},
		},
		{
			name: "sort",
			sequential: func(d []float64) float64 {
				s := make([]float64, len(d))
				copy(s, d)
				sequential.Sort(s)
				return checksum(s)
			},
			parallel: func(d []float64, t int) float64 {
				s := make([]float64, len(d))
				copy(s, d)
				parallel.Sort(s, t)
				return checksum(s)
			},
		},
		{
			name: "remove-if",
			sequential: func(d []float64) float64 {
				s := make([]float64, len(d))
				copy(s, d)
				n := sequential.RemoveIf(s, lowQuarter)
				return checksum(s[:n])
			},
			parallel: func(d []float64, t int) float64 {
				s := make([]float64, len(d))
				copy(s, d)
				n := parallel.RemoveIf(s, lowQuarter, t)
				return checksum(s[:n])
			},
		},
	}
}

func parseChunks(spec string) ([]int, error) {
	var chunks []int
	for _, field := range strings.Split(spec, ",") {
		c, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || c < 1 {
			return nil, fmt.Errorf("invalid chunk size %q", field)
		}
		chunks = append(chunks, c)
	}
	return chunks, nil
}

func selectAlgorithms(spec string) ([]algorithm, error) {
	all := algorithms()
	if spec == "" {
		return all, nil
	}
	byName := make(map[string]algorithm, len(all))
	for _, a := range all {
		byName[a.name] = a
	}
	var selected []algorithm
	for _, name := range strings.Split(spec, ",") {
		a, ok := byName[strings.TrimSpace(name)]
		if !ok {
			return nil, fmt.Errorf("unknown algorithm %q", name)
		}
		selected = append(selected, a)
	}
	return selected, nil
}

func newScheduler(kind string, workers int) (task.Scheduler, func(), error) {
	switch kind {
	case "unbounded":
		return task.Unbounded{}, func() {}, nil
	case "limited":
		return task.NewLimited(workers), func() {}, nil
	case "workers":
		w := task.NewWorkers(workers)
		return w, w.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown scheduler %q", kind)
	}
}

func makeProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Benchmarking"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func fail(format string, args ...interface{}) {
	_, _ = red.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	var (
		n          = flag.Int("n", 4_000_000, "number of elements")
		chunkSpec  = flag.String("chunks", "10000,100000,1000000", "comma-separated chunk thresholds")
		algoSpec   = flag.String("algos", "", "comma-separated algorithms (default all)")
		iterations = flag.Int("iterations", 5, "timed runs per configuration")
		seed       = flag.Int64("seed", 1, "random seed for the input data")
		schedKind  = flag.String("sched", "unbounded", "scheduler: unbounded, limited, or workers")
		workers    = flag.Int("workers", runtime.NumCPU(), "goroutine limit or worker count")
	)
	flag.Parse()

	chunks, err := parseChunks(*chunkSpec)
	if err != nil {
		fail("%v", err)
	}
	algos, err := selectAlgorithms(*algoSpec)
	if err != nil {
		fail("%v", err)
	}
	sched, closeSched, err := newScheduler(*schedKind, *workers)
	if err != nil {
		fail("%v", err)
	}
	defer closeSched()
	parallel.SetScheduler(sched)

	r := rand.New(rand.NewSource(*seed))
	data := make([]float64, *n)
	for i := range data {
		data[i] = r.Float64()
	}

	_, _ = bold.Printf("parbench: %d elements, %d iterations, scheduler %s (%d workers), GOMAXPROCS %d\n",
		*n, *iterations, *schedKind, *workers, runtime.GOMAXPROCS(0))

	bar := makeProgressBar(len(algos) * (len(chunks) + 1) * *iterations)
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Algorithm", "Chunk", "Mean", "StdDev", "Speedup")

	for _, algo := range algos {
		want := algo.sequential(data)
		seqTimes := make([]float64, *iterations)
		for i := 0; i < *iterations; i++ {
			start := time.Now()
			algo.sequential(data)
			seqTimes[i] = time.Since(start).Seconds()
			_ = bar.Add(1)
		}
		seqMean := stat.Mean(seqTimes, nil)
		_ = table.Append([]string{
			algo.name,
			"sequential",
			formatSeconds(seqMean),
			formatSeconds(stat.StdDev(seqTimes, nil)),
			"1.00x",
		})

		for _, chunk := range chunks {
			times := make([]float64, *iterations)
			for i := 0; i < *iterations; i++ {
				start := time.Now()
				got := algo.parallel(data, chunk)
				times[i] = time.Since(start).Seconds()
				_ = bar.Add(1)
				if !closeEnough(got, want) {
					fail("%s with chunk %d: result %v differs from sequential %v", algo.name, chunk, got, want)
				}
			}
			mean := stat.Mean(times, nil)
			_ = table.Append([]string{
				algo.name,
				strconv.Itoa(chunk),
				formatSeconds(mean),
				formatSeconds(stat.StdDev(times, nil)),
				fmt.Sprintf("%.2fx", seqMean/mean),
			})
		}
	}

	_ = bar.Finish()
	_ = table.Render()
}

func formatSeconds(s float64) string {
	if math.IsNaN(s) { // single iteration has no standard deviation
		return "-"
	}
	return time.Duration(s * float64(time.Second)).Round(10 * time.Microsecond).String()
}

// closeEnough compares a parallel result with the sequential reference,
// tolerating the rounding differences that reassociated floating-point
// addition produces.
func closeEnough(got, want float64) bool {
	if got == want {
		return true
	}
	return math.Abs(got-want) <= 1e-9*math.Max(math.Abs(got), math.Abs(want))
}
