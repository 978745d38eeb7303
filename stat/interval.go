package stat

// Interval is a closed range of values, e.g. a percentile whisker.
type Interval struct {
	Lo, Hi float64
}

// Contains reports whether lo <= x <= hi.
func (iv Interval) Contains(x float64) bool { return iv.Lo <= x && x <= iv.Hi }

// PercentileInterval returns the interval between the lo-th and hi-th
// percentile of xs.
func PercentileInterval(xs []float64, lo, hi float64) Interval {
	ps := Percentiles(xs, lo, hi)
	return Interval{Lo: ps[0], Hi: ps[1]}
}
