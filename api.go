// Package histz provides a concurrency-safe fixed-width histogram accumulator
// designed for parallel workloads that bin samples from many goroutines at once.
//
// # Core Philosophy
//
// Concurrent counting into shared bins is a classic lost-update hazard: two
// goroutines that read-modify-write the same counter without synchronization
// can silently drop increments. Histz makes that failure mode impossible by
// construction: every bin increment is a single atomic fetch-and-add, and
// results are only handed back behind an explicit join barrier.
//
// # Bin Assignment
//
// A histogram covers the half-open interval [low, high) split into binCount
// bins of equal width (high-low)/binCount. A sample v lands in bin
// floor((v-low)/width): v == low falls in bin 0, v == high is excluded.
// Out-of-range samples are dropped silently (conventional histogram
// semantics) but remain visible through the Underflow and Overflow counters.
//
// # Parallel Accumulation
//
// The Compute functions fan a fixed pool of workers out over the sample
// slice using a start/stride partition:
//
//	counts, err := histz.Compute(samples, 0, 100, 10)
//	counts, err := histz.ComputeWithWorkers(samples, 0, 100, 10, 64)
//
// Each worker owns the index set {worker, worker+workers, ...}, so the pool
// size is independent of the input size: fewer workers than samples means
// workers loop, more workers than samples means the excess own nothing.
// Identical counts come back for every pool size.
//
// # Key-Enforced Registry
//
// Long-lived histograms shared between producers are held in a Registry
// keyed by the Key type. Raw strings are rejected by the API, forcing metric
// names to be declared as constants:
//
//	const ReadingsKey = histz.Key("sensor_readings")
//
//	registry := histz.New()
//	hist, err := registry.Histogram(ReadingsKey, 0, 100, 20)
//	hist.Observe(41.5)
//
// # Thread-Safety Guarantees
//
// - Bin, underflow, overflow, and total updates use sync/atomic fetch-and-add
// - Registry operations use a read-write mutex for concurrent access
// - Any number of goroutines may observe into the same histogram
// - Snapshots (Counts, Count) are coherent once observers are joined
//
// Histograms never mutate the sample data they are fed, and the per-sample
// path takes no locks.
package histz

import "sync"

// Key is the mandatory key type for registry operations.
// No raw strings allowed - compile-time enforcement.
type Key string

// Registry holds named histograms with complete instance isolation.
type Registry struct {
	histograms map[Key]*histogram
	mu         sync.RWMutex
}

// New creates an empty Registry that accepts ONLY Key types.
func New() *Registry {
	return &Registry{
		histograms: make(map[Key]*histogram),
	}
}

// Histogram returns the histogram registered under key, creating it over
// [low, high) with binCount bins if it doesn't exist. An existing histogram
// is returned as-is; its shape is not re-checked against the arguments.
func (r *Registry) Histogram(key Key, low, high float64, binCount int) (Histogram, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if hist, exists := r.histograms[key]; exists {
		return hist, nil
	}

	hist, err := newHistogram(low, high, binCount)
	if err != nil {
		return nil, err
	}
	r.histograms[key] = hist
	return hist, nil
}

// GetHistograms returns a copy of all histograms for export tools.
func (r *Registry) GetHistograms() map[Key]Histogram {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[Key]Histogram, len(r.histograms))
	for key, hist := range r.histograms {
		result[key] = hist
	}
	return result
}

// Reset clears all histograms for a clean test slate.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.histograms = make(map[Key]*histogram)
}
