package histz

import (
	"runtime"
	"sync"
)

// Compute accumulates samples into a fixed-width histogram over [low, high)
// using one worker per available CPU and returns the per-bin counts.
//
// Samples outside [low, high) are dropped, not errors: a value equal to low
// lands in bin 0, a value equal to high is excluded. An empty sample slice
// yields all-zero counts.
func Compute(samples []float64, low, high float64, binCount int) ([]uint64, error) {
	return ComputeWithWorkers(samples, low, high, binCount, 0)
}

// ComputeWithWorkers accumulates with an explicit pool size; workers <= 0
// selects runtime.GOMAXPROCS(0). The result is identical for every pool
// size: work is split by stride, so no partitioning assumption ties the
// worker count to the sample count, and bin increments are atomic, so
// overlapping increments of one bin cannot lose updates.
//
// Inputs are validated before any worker starts; on error there is no
// partial accumulation. Counts are read only after every worker has been
// joined, never while accumulation is in flight.
func ComputeWithWorkers(samples []float64, low, high float64, binCount, workers int) ([]uint64, error) {
	h, err := newHistogram(low, high, binCount)
	if err != nil {
		return nil, err
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := range Stride(worker, workers, len(samples)) {
				h.Observe(samples[i])
			}
		}(w)
	}

	// Join barrier: counts become readable only once every worker is done.
	wg.Wait()

	return h.Counts(), nil
}
