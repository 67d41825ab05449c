package histz_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/zoobzio/histz"
	histztesting "github.com/zoobzio/histz/testing"
)

// Test keys for all histz tests (shared across test files).
const (
	TestHistKey       histz.Key = "test_histogram"
	OtherHistKey      histz.Key = "other_histogram"
	SharedHistKey     histz.Key = "shared_histogram"
	ConcurrentHistKey histz.Key = "concurrent_histogram"
	IsolationKey      histz.Key = "isolation"
)

func TestNew(t *testing.T) {
	registry := histz.New()
	if registry == nil {
		t.Fatal("New() returned nil")
	}

	// Verify it returns *Registry
	var _ *histz.Registry = registry
}

func TestRegistry_Histogram_GetOrCreate(t *testing.T) {
	registry := histztesting.NewTestRegistry(t)

	first, err := registry.Histogram(TestHistKey, 0, 10, 5)
	if err != nil {
		t.Fatalf("Histogram returned error: %v", err)
	}

	first.Observe(5)

	// Same key returns the same instance; shape arguments are ignored.
	second, err := registry.Histogram(TestHistKey, 0, 999, 50)
	if err != nil {
		t.Fatalf("Histogram returned error: %v", err)
	}

	if second.Count() != 1 {
		t.Errorf("Second lookup count = %d, want 1 (same instance)", second.Count())
	}
	if second.Bins() != 5 {
		t.Errorf("Second lookup bins = %d, want 5 (original shape)", second.Bins())
	}
}

func TestRegistry_Histogram_InvalidShape(t *testing.T) {
	registry := histztesting.NewTestRegistry(t)

	if _, err := registry.Histogram(TestHistKey, 10, 0, 5); !errors.Is(err, histz.ErrInvalidRange) {
		t.Errorf("Histogram(inverted range) error = %v, want %v", err, histz.ErrInvalidRange)
	}
	if _, err := registry.Histogram(TestHistKey, 0, 10, 0); !errors.Is(err, histz.ErrInvalidBinCount) {
		t.Errorf("Histogram(zero bins) error = %v, want %v", err, histz.ErrInvalidBinCount)
	}

	// Failed creations must not register anything.
	if len(registry.GetHistograms()) != 0 {
		t.Error("Invalid shapes must not leave histograms behind")
	}
}

func TestRegistry_Isolation(t *testing.T) {
	registries := histztesting.NewTestRegistries(t, 2)

	hist1, err := registries[0].Histogram(IsolationKey, 0, 10, 5)
	if err != nil {
		t.Fatalf("Histogram returned error: %v", err)
	}
	hist2, err := registries[1].Histogram(IsolationKey, 0, 10, 5)
	if err != nil {
		t.Fatalf("Histogram returned error: %v", err)
	}

	hist1.Observe(1)
	hist1.Observe(2)
	hist2.Observe(3)

	if hist1.Count() != 2 {
		t.Errorf("Registry 0 count = %d, want 2", hist1.Count())
	}
	if hist2.Count() != 1 {
		t.Errorf("Registry 1 count = %d, want 1 (no cross-registry interference)", hist2.Count())
	}
}

func TestRegistry_GetHistograms(t *testing.T) {
	registry := histztesting.NewTestRegistry(t)

	if _, err := registry.Histogram(TestHistKey, 0, 10, 5); err != nil {
		t.Fatalf("Histogram returned error: %v", err)
	}
	if _, err := registry.Histogram(OtherHistKey, 0, 1, 2); err != nil {
		t.Fatalf("Histogram returned error: %v", err)
	}

	histograms := registry.GetHistograms()
	if len(histograms) != 2 {
		t.Fatalf("GetHistograms() returned %d entries, want 2", len(histograms))
	}
	if _, ok := histograms[TestHistKey]; !ok {
		t.Errorf("GetHistograms() missing %q", TestHistKey)
	}
	if _, ok := histograms[OtherHistKey]; !ok {
		t.Errorf("GetHistograms() missing %q", OtherHistKey)
	}
}

func TestRegistry_Reset(t *testing.T) {
	registry := histz.New()

	hist, err := registry.Histogram(TestHistKey, 0, 10, 5)
	if err != nil {
		t.Fatalf("Histogram returned error: %v", err)
	}
	hist.Observe(5)

	registry.Reset()

	if len(registry.GetHistograms()) != 0 {
		t.Error("Reset() should clear all histograms")
	}

	// Re-creating after reset yields a fresh instance.
	fresh, err := registry.Histogram(TestHistKey, 0, 10, 5)
	if err != nil {
		t.Fatalf("Histogram returned error: %v", err)
	}
	if fresh.Count() != 0 {
		t.Errorf("Fresh histogram count = %d, want 0", fresh.Count())
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	registry := histztesting.NewTestRegistry(t)

	const numGoroutines = 32
	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	// Concurrent get-or-create on one key must converge on one instance.
	for g := 0; g < numGoroutines; g++ {
		go func() {
			defer wg.Done()
			hist, err := registry.Histogram(ConcurrentHistKey, 0, 100, 10)
			if err != nil {
				t.Errorf("Histogram returned error: %v", err)
				return
			}
			hist.Observe(50)
		}()
	}
	wg.Wait()

	hist, err := registry.Histogram(ConcurrentHistKey, 0, 100, 10)
	if err != nil {
		t.Fatalf("Histogram returned error: %v", err)
	}
	if hist.Count() != numGoroutines {
		t.Errorf("Count() = %d, want %d", hist.Count(), numGoroutines)
	}
}
