package funnelplot

import "math"

// plot holds the state of one render call. Its label placer and thus
// the collection of label boxes live exactly as long as the call.
type plot struct {
	surface Surface
	cfg     *config
	placer  *LabelPlacer
	result  *Result
}

func newPlot(s Surface, cfg *config) *plot {
	return &plot{
		surface: s,
		cfg:     cfg,
		placer:  NewLabelPlacer(s, cfg.theme, cfg.maxAttempts),
		result: &Result{
			Mode:       cfg.mode,
			Percentage: cfg.percentage,
		},
	}
}

// drawBands draws the contours (if enabled) and the primary band.
// bandAt returns the band for a percentage.
func (p *plot) drawBands(bandAt func(pct float64) Band) {
	if p.cfg.contours {
		for _, level := range ContourLevels {
			band := bandAt(level)
			band.draw(p.surface, p.cfg.theme.Contour)
			p.result.Contours = append(p.result.Contours, band)
		}
	}
	band := bandAt(p.cfg.percentage)
	band.draw(p.surface, p.cfg.theme.Band)
	p.result.Band = band
}

// drawPoint draws pt as an inlier or as an outlier with its label and
// adds it to the result.
func (p *plot) drawPoint(pt Point) error {
	x, y := pt.Value, float64(pt.Size)
	if pt.Class == Inside {
		p.surface.Point(x, y, p.cfg.theme.InsidePoint)
		p.result.Points = append(p.result.Points, pt)
		return nil
	}

	left := pt.Class == Left
	if pt.Label != "" {
		box, err := p.placer.Place(x, y, pt.Label, left)
		if err != nil {
			return err
		}
		p.result.Labels = append(p.result.Labels, box)
	}
	style := p.cfg.theme.OutlierPoint
	style.Color = p.cfg.color(left)
	p.surface.Point(x, y, style)
	p.result.Points = append(p.result.Points, pt)

	p.cfg.logger.Debug("outlier", "label", pt.Label, "size", pt.Size,
		"value", pt.Value, "side", pt.Class)
	return nil
}

// finish draws the reference line at x = ref spanning [ylo,yhi] and
// sets axis limits and labels.
func (p *plot) finish(ref, ylo, yhi float64, defXLim [2]float64, xlabel string) *Result {
	p.surface.Line([]float64{ref, ref}, []float64{ylo, yhi}, p.cfg.theme.Reference)
	p.result.Reference = ref
	p.result.XLim = p.cfg.applyXLim(p.surface, defXLim, p.result.Band)
	p.surface.SetXLabel(xlabel)
	p.surface.SetYLabel("Group size")
	return p.result
}

// markerStyle is the style of bootstrap markers and whiskers of an
// outlier on the given side.
func (p *plot) markerStyle(left bool) PointStyle {
	style := p.cfg.theme.Marker
	style.Color = p.cfg.color(left)
	return style
}

func (p *plot) whiskerStyle(left bool) LineStyle {
	style := p.cfg.theme.Whisker
	style.Color = p.cfg.color(left)
	return style
}

// maxSize is the size of the largest group.
func maxSize(sorted []Group) int {
	return sorted[len(sorted)-1].Size()
}

// tile returns n copies of x.
func tile(x float64, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = x
	}
	return xs
}

// twoSided is the two-sided tail probability of z under dist.
func twoSided(dist Distribution, z float64) float64 {
	c := dist.CDF(z)
	return 2 * math.Min(c, 1-c)
}
