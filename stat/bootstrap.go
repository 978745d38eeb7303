package stat

import (
	"math/rand/v2"
)

// NewRand returns a generator fully determined by seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Spawn derives an independent generator from rng. The sequence of
// spawned generators is determined by rng's state.
func Spawn(rng *rand.Rand) *rand.Rand {
	return rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64()))
}

// Bootstrap draws n resamples of the given size (len(data) if size <= 0)
// from data with replacement and returns fn of each, in draw order.
// data must not be empty.
func Bootstrap(rng *rand.Rand, data []float64, fn Statistic, n, size int) []float64 {
	if size <= 0 {
		size = len(data)
	}
	stats := make([]float64, n)
	sample := make([]float64, size)
	for i := 0; i < n; i++ {
		for j := range sample {
			sample[j] = data[rng.IntN(len(data))]
		}
		stats[i] = fn(sample)
	}
	return stats
}
