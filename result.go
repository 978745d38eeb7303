package funnelplot

import "github.com/vdobler/funnelplot/stat"

// Class is the classification of a group relative to the funnel.
type Class int

const (
	Inside Class = iota
	Left         // below the lower bound
	Right        // above the upper bound
)

func (c Class) String() string {
	switch c {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "inside"
}

// Point is one plotted group.
type Point struct {
	Label string
	Size  int

	// Value is the plotted statistic: the standardized deviation of the
	// group mean in parametric mode, the group statistic in bootstrap mode.
	Value float64

	// Lower and Upper are the funnel bounds at Size.
	Lower, Upper float64

	Class Class

	// PValue is the two-sided tail probability of the group mean under
	// the parametric distribution. Zero in bootstrap mode.
	PValue float64

	// Whisker is the 2.5%-97.5% interval of the group's own bootstrap
	// distribution. Zero in parametric mode.
	Whisker stat.Interval
}

// Result describes a rendered funnel plot.
type Result struct {
	Mode       Mode
	Percentage float64

	// Points in plotting order, i.e. by increasing group size.
	Points []Point

	Band     Band
	Contours []Band

	// Reference is the x position of the vertical reference line.
	Reference float64

	XLim [2]float64

	// Labels are the boxes of all placed labels.
	Labels []Box
}

// Outliers returns the points outside the funnel.
func (r *Result) Outliers() []Point {
	var out []Point
	for _, p := range r.Points {
		if p.Class != Inside {
			out = append(out, p)
		}
	}
	return out
}
