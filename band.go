package funnelplot

import "math"

// ContourLevels are the percentiles of the faint contour bands.
var ContourLevels = []float64{50, 75, 90, 99, 99.9, 99.99, 99.999, 99.9999}

// IntervalWidth is the half width critical/sqrt(size) of the normal
// approximation band at the given group size.
//
// size must be positive: zero yields +Inf and negative sizes NaN.
func IntervalWidth(size, critical float64) float64 {
	return critical / math.Sqrt(size)
}

// IntervalWidths applies IntervalWidth to every size.
func IntervalWidths(sizes []float64, critical float64) []float64 {
	ws := make([]float64, len(sizes))
	for i, n := range sizes {
		ws[i] = IntervalWidth(n, critical)
	}
	return ws
}

// Band is a pair of curves enclosing the expected values of the
// statistic as a function of group size.
type Band struct {
	Percentage float64
	Sizes      []float64
	Lower      []float64
	Upper      []float64
}

// draw draws both curves of b.
func (b Band) draw(s Surface, style LineStyle) {
	s.Line(b.Lower, b.Sizes, style)
	s.Line(b.Upper, b.Sizes, style)
}

// linspace returns n evenly spaced values from lo to hi inclusive.
func linspace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	if n == 1 {
		xs[0] = lo
		return xs
	}
	step := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + float64(i)*step
	}
	xs[n-1] = hi
	return xs
}
