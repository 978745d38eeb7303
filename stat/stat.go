// Package stat contains the statistics behind funnel plots: statistic
// functions, bootstrap resampling and percentiles.
package stat

import (
	"fmt"

	gstat "gonum.org/v1/gonum/stat"
)

// Statistic summarizes a sample into a single value.
type Statistic func(xs []float64) float64

// Mean is the arithmetic mean.
func Mean(xs []float64) float64 { return gstat.Mean(xs, nil) }

// Median is the 50th percentile.
func Median(xs []float64) float64 { return Percentile(xs, 50) }

// ByName looks up the statistics understood on the command line.
func ByName(name string) (Statistic, error) {
	switch name {
	case "", "mean":
		return Mean, nil
	case "median":
		return Median, nil
	}
	return nil, fmt.Errorf("unknown statistic %q (must be 'mean' or 'median')", name)
}
