// Funnelplot draws funnel plots: a per-group statistic plotted against
// the group size, overlaid with the band of values expected from sampling
// noise alone. The band narrows as groups grow, which gives the plot its
// funnel shape. Groups outside the band are flagged as outliers, coloured
// by the side they fall on and labelled.
//
//
// Two Ways to Draw the Funnel
//
// Parametric draws the band from a distribution's quantile function: the
// statistic is the standardized deviation of a group mean from the
// population mean and the band at size n is ±q/sqrt(n).
//
// Bootstrap estimates the band empirically: for each size the statistic
// is computed on many resamples (drawn with replacement) of the pooled
// population and the band is given by percentiles of these values.
//
//
// Surfaces
//
// Nothing in this package draws pixels. Both engines talk to a Surface
// which knows how to draw lines, markers and text. The Recorder keeps
// everything as a list of Grobs (handy in tests), package canvas renders
// to PNG, SVG or PDF via gonum.org/v1/plot.
//
//
// Data Frames
//
// Grouped data can be handed over directly as a []Group or be split out
// of a DataFrame by Funnel:
//      df, _ := funnelplot.ReadCSV(file)
//      res, err := funnelplot.Funnel(surface, df, "score", "school", funnelplot.ParametricMode)
//
// Data frames may also be built from a slice of structs, see
// NewDataFrameFrom.
//
package funnelplot
