package stat

import (
	"math"
	"sort"
)

// Percentile returns the p-th percentile (0 <= p <= 100) of xs,
// interpolating linearly between the closest ranks. This is the default
// definition of numpy and R (type 7). xs is not modified.
func Percentile(xs []float64, p float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	return percentileSorted(sorted, p)
}

// Percentiles is like Percentile for several ps but sorts only once.
func Percentiles(xs []float64, ps ...float64) []float64 {
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	r := make([]float64, len(ps))
	for i, p := range ps {
		if len(sorted) == 0 {
			r[i] = math.NaN()
			continue
		}
		r[i] = percentileSorted(sorted, p)
	}
	return r
}

func percentileSorted(sorted []float64, p float64) float64 {
	if p <= 0 {
		return sorted[0]
	}
	n := len(sorted)
	if p >= 100 {
		return sorted[n-1]
	}
	pos := float64(n-1) * p / 100
	lo := math.Floor(pos)
	i := int(lo)
	if i+1 >= n {
		return sorted[n-1]
	}
	frac := pos - lo
	if frac == 0 {
		return sorted[i]
	}
	return sorted[i] + (sorted[i+1]-sorted[i])*frac
}
