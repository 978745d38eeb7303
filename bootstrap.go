package funnelplot

import (
	"time"

	"github.com/vdobler/funnelplot/stat"
)

// bandPoints is the number of sizes the bootstrap band is evaluated at.
const bandPoints = 50

// Bootstrap draws a funnel plot of groups onto s with bands estimated by
// resampling the pooled population. Each group is plotted at its
// statistic; its bounds are the (100-p)th and pth percentile of the
// statistic over resamples of the population of exactly the group's
// size. The drawn band comes from an independent resampling pass over
// evenly spaced sizes.
//
// Outliers get a whisker spanning the 2.5% to 97.5% percentiles of the
// statistic over resamples of the group itself.
func Bootstrap(s Surface, groups []Group, opts ...Option) (*Result, error) {
	cfg, groups, err := newConfig(BootstrapMode, groups, opts)
	if err != nil {
		return nil, err
	}
	fn, n := cfg.statistic, cfg.bootstrapN

	sorted := sortBySize(groups)
	pop := population(groups)
	largest := maxSize(sorted)

	start := time.Now()
	ks := make([]int, len(sorted))
	for i, g := range sorted {
		ks[i] = g.Size()
	}
	spread := stat.SpreadTable(cfg.rng, pop, fn, n, ks, cfg.workers)
	lefts := stat.PercentileColumn(spread, 100-cfg.percentage)
	rights := stat.PercentileColumn(spread, cfg.percentage)

	funnelKs := make([]int, bandPoints)
	sizes := make([]float64, bandPoints)
	for i, k := range linspace(1, float64(largest+2), bandPoints) {
		funnelKs[i] = int(k)
		sizes[i] = float64(funnelKs[i])
	}
	strap := stat.SpreadTable(cfg.rng, pop, fn, n, funnelKs, cfg.workers)
	cfg.logger.Debug("bootstrap funnel", "groups", len(groups), "population", len(pop),
		"resamples", n, "sizes", len(ks)+len(funnelKs), "elapsed", time.Since(start))

	p := newPlot(s, cfg)
	p.drawBands(func(pct float64) Band {
		return Band{
			Percentage: pct,
			Sizes:      sizes,
			Lower:      stat.PercentileColumn(strap, 100-pct),
			Upper:      stat.PercentileColumn(strap, pct),
		}
	})

	for i, g := range sorted {
		own := stat.Bootstrap(cfg.rng, g.Values, fn, n, 0)
		v := fn(g.Values)
		pt := Point{
			Label:   g.Label,
			Size:    g.Size(),
			Value:   v,
			Lower:   lefts[i],
			Upper:   rights[i],
			Whisker: stat.PercentileInterval(own, 2.5, 97.5),
		}
		switch {
		case lefts[i] < v && v < rights[i]:
			pt.Class = Inside
		case v < lefts[i]:
			pt.Class = Left
		default:
			pt.Class = Right
		}
		if err := p.drawPoint(pt); err != nil {
			return nil, err
		}
		if pt.Class != Inside {
			y := float64(pt.Size)
			s.Line([]float64{pt.Whisker.Lo, pt.Whisker.Hi}, []float64{y, y},
				p.whiskerStyle(pt.Class == Left))
		}
	}

	lim := stat.Percentiles(strap[0], 1, 99)
	return p.finish(fn(pop), 1, float64(largest+2), [2]float64{lim[0], lim[1]}, "Value"), nil
}
