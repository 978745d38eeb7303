package funnelplot

// Surface is the drawing target of the funnel engines. All coordinates
// passed in are data coordinates: x is the plotted statistic and y the
// group size.
//
// Boxes returned by TextExtent and Text are in the surface's own screen
// space; they are only compared with each other.
type Surface interface {
	// Line draws the polyline through (xs[i], ys[i]).
	Line(xs, ys []float64, style LineStyle)

	// Point draws a single marker.
	Point(x, y float64, style PointStyle)

	// Scatter draws one marker per (xs[i], ys[i]).
	Scatter(xs, ys []float64, style PointStyle)

	// TextExtent returns the box s would occupy if drawn at (x, y)
	// without drawing anything. The box is measured against the axis
	// ranges at call time: drawing outside them or a later SetXLim or
	// SetYLim moves the text, so boxes that did not overlap when measured
	// may overlap in the final image.
	TextExtent(x, y float64, s string, style TextStyle) Box

	// Text draws s anchored at (x, y) and returns its extent.
	Text(x, y float64, s string, style TextStyle) Box

	SetXLim(min, max float64)
	SetYLim(min, max float64)
	SetXLabel(s string)
	SetYLabel(s string)
}
