package funnelplot

// Theme collects the fixed styles of all funnel plot elements. The
// outlier colors are not part of the theme, see WithColors.
type Theme struct {
	InsidePoint  PointStyle // groups inside the funnel
	OutlierPoint PointStyle // color is replaced by the left/right color
	Marker       PointStyle // bootstrap markers, color is replaced
	Band         LineStyle  // the primary band
	Contour      LineStyle  // the faint contour bands
	Reference    LineStyle  // the vertical reference line
	Whisker      LineStyle  // color is replaced
	Label        TextStyle
	Connector    LineStyle // from label to point
}

var DefaultTheme = Theme{
	InsidePoint:  PointStyle{Color: BuiltinColors["black"], Shape: DotPoint, Size: 3, Alpha: 1},
	OutlierPoint: PointStyle{Shape: CirclePoint, Size: 6, Alpha: 1},
	Marker:       PointStyle{Shape: DotPoint, Size: 2, Alpha: 0.1},
	Band:         LineStyle{Color: BuiltinColors["black"], Width: 1.5, Alpha: 1, LineType: SolidLine},
	Contour:      LineStyle{Color: BuiltinColors["black"], Width: 0.1, Alpha: 1, LineType: SolidLine},
	Reference:    LineStyle{Color: BuiltinColors["black"], Width: 1, Alpha: 0.2, LineType: SolidLine},
	Whisker:      LineStyle{Width: 1.5, Alpha: 1, LineType: SolidLine},
	Label:        TextStyle{Color: BuiltinColors["black"], Size: 10, Alpha: 0.5},
	Connector:    LineStyle{Color: BuiltinColors["black"], Width: 1, Alpha: 0.1, LineType: SolidLine},
}
