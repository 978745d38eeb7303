package funnelplot

import (
	"math"

	gstat "gonum.org/v1/gonum/stat"

	"github.com/vdobler/funnelplot/stat"
)

// Parametric draws a funnel plot of groups onto s using the normal
// approximation: each group is plotted at the standardized deviation of
// its mean from the population mean, the band at size n is
// ±q/sqrt(n) with q the quantile of the configured distribution at the
// configured percentage.
//
// Input errors and a population without variance are reported before
// anything is drawn. A *LabelPlacementError may leave a partial plot.
func Parametric(s Surface, groups []Group, opts ...Option) (*Result, error) {
	cfg, groups, err := newConfig(ParametricMode, groups, opts)
	if err != nil {
		return nil, err
	}

	pop := population(groups)
	popMean, popStd := gstat.PopMeanStdDev(pop, nil)
	if popStd == 0 || math.IsNaN(popStd) || math.IsInf(popStd, 0) {
		return nil, NewError(ErrCodeDegenerate,
			"population of %d values has standard deviation %g", len(pop), popStd)
	}
	q := cfg.dist.Quantile(cfg.percentage / 100)
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return nil, invalidf("quantile at %g%% is %g", cfg.percentage, q)
	}
	cfg.logger.Debug("parametric funnel", "groups", len(groups), "population", len(pop),
		"mean", popMean, "std", popStd, "percentage", cfg.percentage, "band", q)

	sorted := sortBySize(groups)
	largest := maxSize(sorted)

	// Size 0 is left out: the band is infinite there.
	sizes := linspace(0, float64(largest+1), 100)[1:]
	p := newPlot(s, cfg)
	p.drawBands(func(pct float64) Band {
		w := IntervalWidths(sizes, cfg.dist.Quantile(pct/100))
		lower := make([]float64, len(w))
		for i := range w {
			lower[i] = -w[i]
		}
		return Band{Percentage: pct, Sizes: sizes, Lower: lower, Upper: w}
	})

	for _, g := range sorted {
		n := g.Size()
		dev := (gstat.Mean(g.Values, nil) - popMean) / popStd
		half := IntervalWidth(float64(n), q)
		pt := Point{
			Label:  g.Label,
			Size:   n,
			Value:  dev,
			Lower:  -half,
			Upper:  half,
			PValue: twoSided(cfg.dist, dev*math.Sqrt(float64(n))),
		}
		switch {
		case -half < dev && dev < half:
			pt.Class = Inside
		case dev < 0:
			pt.Class = Left
		default:
			pt.Class = Right
		}
		if err := p.drawPoint(pt); err != nil {
			return nil, err
		}

		if pt.Class != Inside && cfg.markers {
			means := stat.Bootstrap(cfg.rng, g.Values, stat.Mean, markerDraws, n)
			devs := make([]float64, len(means))
			for i, m := range means {
				devs[i] = (m - popMean) / popStd
			}
			s.Scatter(devs, tile(float64(n), len(devs)), p.markerStyle(pt.Class == Left))
		}
	}

	limit := cfg.dist.Quantile(0.99)
	return p.finish(0, 0, float64(largest+1), [2]float64{-limit, limit}, "Z score"), nil
}
