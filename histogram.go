package histz

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
)

// Validation errors surfaced by constructors before any accumulation starts.
var (
	// ErrInvalidRange indicates low >= high (or a non-finite bound).
	ErrInvalidRange = errors.New("invalid range: low must be less than high")

	// ErrInvalidBinCount indicates a bin count that is zero or negative.
	ErrInvalidBinCount = errors.New("invalid bin count: must be positive")
)

// Histogram interface for fixed-width sample accumulation.
//
// All mutating operations are lock-free atomic increments, so any number of
// goroutines may Observe concurrently. Read accessors return a coherent
// snapshot only once every writer has been joined.
type Histogram interface {
	Observe(float64)
	Counts() []uint64
	Count() uint64
	Underflow() uint64
	Overflow() uint64
	Bins() int
	Bounds() (low, high float64)
	BinWidth() float64
	Reset()
}

// histogram implements Histogram using an atomically updated count array.
type histogram struct {
	counts    []uint64
	low       float64
	high      float64
	width     float64
	underflow uint64 // Count of values below low
	overflow  uint64 // Count of values >= high
	total     uint64
}

// NewHistogram creates a histogram over the half-open interval [low, high)
// divided into binCount bins of equal width.
func NewHistogram(low, high float64, binCount int) (Histogram, error) {
	return newHistogram(low, high, binCount)
}

func newHistogram(low, high float64, binCount int) (*histogram, error) {
	if isNonFinite(low) || isNonFinite(high) || low >= high {
		return nil, fmt.Errorf("%w: [%v, %v)", ErrInvalidRange, low, high)
	}
	if binCount <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBinCount, binCount)
	}

	// A valid pair of bounds can still produce a degenerate width: a
	// denormal span divided by a large bin count underflows to zero, and a
	// span across most of the float64 domain overflows to +Inf. Either
	// breaks bin assignment, so reject the shape up front.
	width := (high - low) / float64(binCount)
	if width == 0 || isNonFinite(width) {
		return nil, fmt.Errorf("%w: [%v, %v) cannot be split into %d bins", ErrInvalidRange, low, high, binCount)
	}

	return &histogram{
		counts: make([]uint64, binCount),
		low:    low,
		high:   high,
		width:  width,
	}, nil
}

// Observe records a value in the histogram.
//
// A value lands in bin floor((value-low)/width). Values below low or at or
// above high never touch the bins; they are tallied in the underflow and
// overflow counters instead. NaN and infinite values are ignored entirely.
//
// Every counter mutation is a single atomic fetch-and-add, so concurrent
// observers of the same bin cannot lose increments.
func (h *histogram) Observe(value float64) {
	// Validate input
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return
	}

	if value < h.low {
		atomic.AddUint64(&h.underflow, 1)
		return
	}
	if value >= h.high {
		atomic.AddUint64(&h.overflow, 1)
		return
	}

	i := int((value - h.low) / h.width)
	// Float rounding near the upper edge can push the quotient to binCount
	// even though value < high. Membership is settled by the range checks
	// above, so clamp into the last bin.
	if i >= len(h.counts) {
		i = len(h.counts) - 1
	}

	atomic.AddUint64(&h.counts[i], 1)
	atomic.AddUint64(&h.total, 1)
}

// Counts returns a copy of the per-bin counters.
//
// The copy is taken element by element with atomic loads; it is a coherent
// snapshot only after all concurrent observers have finished.
func (h *histogram) Counts() []uint64 {
	counts := make([]uint64, len(h.counts))
	for i := range h.counts {
		counts[i] = atomic.LoadUint64(&h.counts[i])
	}
	return counts
}

// Count returns the total number of in-range observations. It equals the sum
// of Counts once observers have been joined.
func (h *histogram) Count() uint64 {
	return atomic.LoadUint64(&h.total)
}

// Underflow returns the number of observed values below low.
func (h *histogram) Underflow() uint64 {
	return atomic.LoadUint64(&h.underflow)
}

// Overflow returns the number of observed values at or above high.
func (h *histogram) Overflow() uint64 {
	return atomic.LoadUint64(&h.overflow)
}

// Bins returns the number of bins.
func (h *histogram) Bins() int {
	return len(h.counts)
}

// Bounds returns the covered half-open interval [low, high).
func (h *histogram) Bounds() (low, high float64) {
	return h.low, h.high
}

// BinWidth returns the constant width (high-low)/binCount shared by all bins.
func (h *histogram) BinWidth() float64 {
	return h.width
}

// Reset zeroes every counter. Must not race with Observe; callers join their
// observers first, exactly as they do before reading counts.
func (h *histogram) Reset() {
	for i := range h.counts {
		atomic.StoreUint64(&h.counts[i], 0)
	}
	atomic.StoreUint64(&h.underflow, 0)
	atomic.StoreUint64(&h.overflow, 0)
	atomic.StoreUint64(&h.total, 0)
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
