package testing

import "math/rand"

// Uniform returns n samples drawn uniformly from [low, high).
// A fixed seed makes the draw reproducible across runs and worker counts.
func Uniform(n int, low, high float64, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = low + rng.Float64()*(high-low)
	}
	return samples
}

// Normal returns n samples drawn from a normal distribution with the given
// mean and standard deviation. Unlike Uniform, values are unbounded, so some
// samples may fall outside any finite histogram range.
func Normal(n int, mean, stddev float64, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = mean + rng.NormFloat64()*stddev
	}
	return samples
}
