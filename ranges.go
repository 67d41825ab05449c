package histz

// Range is a half-open interval [Low, High) a histogram can cover.
type Range struct {
	Low  float64
	High float64
}

// Histogram creates a fixed-width histogram covering the range.
func (r Range) Histogram(binCount int) (Histogram, error) {
	return NewHistogram(r.Low, r.High, binCount)
}

// Standard range definitions for common sample domains.
var (
	// UnitRange covers normalized values in [0, 1).
	UnitRange = Range{Low: 0, High: 1}

	// PercentRange covers percentage values in [0, 100).
	PercentRange = Range{Low: 0, High: 100}

	// ByteRange covers byte values in [0, 256).
	ByteRange = Range{Low: 0, High: 256}

	// SignedUnitRange covers normalized signed values in [-1, 1).
	SignedUnitRange = Range{Low: -1, High: 1}
)
