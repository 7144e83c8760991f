package asciiint

import (
	"sync"

	"github.com/philippag/compint/decint/scheduler"
)

// DefaultKaratsubaThreshold mirrors decint's default; AsciiInt's narrower
// byte digits make the schoolbook/Karatsuba crossover noisier to pin down
// exactly, so the same conservative constant is reused rather than
// inventing an unvalidated base-specific one.
const DefaultKaratsubaThreshold = 40

// DefaultMaxDepth mirrors decint's default.
const DefaultMaxDepth = 4

var tuning = struct {
	mu        sync.RWMutex
	threshold int
	maxDepth  int
	pool      scheduler.Scheduler
}{threshold: DefaultKaratsubaThreshold, maxDepth: DefaultMaxDepth}

// SetKaratsubaThreshold overrides the digit count at or below which
// Multiply uses schoolbook multiplication instead of Karatsuba.
func SetKaratsubaThreshold(t int) {
	tuning.mu.Lock()
	defer tuning.mu.Unlock()
	tuning.threshold = t
}

// KaratsubaThreshold returns the current threshold.
func KaratsubaThreshold() int {
	tuning.mu.RLock()
	defer tuning.mu.RUnlock()
	return tuning.threshold
}

// SetMaxDepth overrides how many levels of Karatsuba recursion Multiply
// forks onto the installed scheduler.
func SetMaxDepth(d int) {
	tuning.mu.Lock()
	defer tuning.mu.Unlock()
	tuning.maxDepth = d
}

// MaxDepth returns the current fork depth bound.
func MaxDepth() int {
	tuning.mu.RLock()
	defer tuning.mu.RUnlock()
	return tuning.maxDepth
}

// SetForkJoinPool installs the scheduler Multiply uses to parallelize
// Karatsuba recursion. A nil pool (the default) makes Multiply always run
// sequentially.
func SetForkJoinPool(s scheduler.Scheduler) {
	tuning.mu.Lock()
	defer tuning.mu.Unlock()
	tuning.pool = s
}

// ForkJoinPool returns the currently installed scheduler, or nil.
func ForkJoinPool() scheduler.Scheduler {
	tuning.mu.RLock()
	defer tuning.mu.RUnlock()
	return tuning.pool
}
