package testing

import (
	"sync"
	"testing"
	"time"

	"github.com/zoobzio/clockz"
)

// LoadConfig configures concurrent load generation for stress testing.
// Provides standardized patterns for concurrent histogram operations.
type LoadConfig struct {
	Setup      func(workerID int)       // Optional per-worker setup
	Operation  func(workerID, opID int) // Operation to execute
	Clock      clockz.Clock             // Optional; wall clock when nil
	Workers    int                      // Number of concurrent workers
	Operations int                      // Operations per worker
}

// GenerateLoad runs concurrent operations using the provided configuration
// and returns the elapsed time measured on the configured clock.
// Eliminates WaitGroup boilerplate and standardizes stress testing patterns.
// Captures worker ID to prevent closure issues in concurrent execution.
func GenerateLoad(_ *testing.T, config LoadConfig) time.Duration {
	clock := config.Clock
	if clock == nil {
		clock = clockz.RealClock
	}

	start := clock.Now()

	var wg sync.WaitGroup
	for w := 0; w < config.Workers; w++ {
		wg.Add(1)
		workerID := w // Capture for closure

		go func() {
			defer wg.Done()

			// Optional per-worker setup (e.g., local variables)
			if config.Setup != nil {
				config.Setup(workerID)
			}

			// Execute operations for this worker
			for op := 0; op < config.Operations; op++ {
				config.Operation(workerID, op)
			}
		}()
	}

	wg.Wait()

	return clock.Now().Sub(start)
}
