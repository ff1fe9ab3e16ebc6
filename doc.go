// This package provides fork-join parallel versions of the classic sequence
// algorithms (transform, reduce, search, filter, sort, min/max, replace) over
// slices.
//
// It provides the following subpackages:
//
// parstl/parallel provides the parallel algorithms. Each algorithm takes a
// chunk-size threshold: sub-ranges at or below the threshold run sequentially,
// larger sub-ranges are split at the midpoint, with one half submitted as an
// asynchronous task and the other half processed on the calling goroutine.
//
// parstl/sequential provides sequential implementations of the same
// algorithms. They are the base cases of the parallel versions, and the
// reference every parallel result is tested against.
//
// parstl/task provides the task scheduling abstraction used by
// parstl/parallel, with unbounded-spawn, semaphore-limited, and fixed
// worker-pool implementations.
package parstl
