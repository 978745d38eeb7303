package funnelplot

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/vdobler/funnelplot/stat"
)

// Distribution supplies the quantile function of the parametric band.
// All continuous distributions of gonum.org/v1/gonum/stat/distuv
// satisfy it.
type Distribution interface {
	Quantile(p float64) float64
	CDF(x float64) float64
}

// Mode selects the engine used by Funnel.
type Mode int

const (
	ParametricMode Mode = iota
	BootstrapMode
)

func (m Mode) String() string {
	if m == BootstrapMode {
		return "bootstrap"
	}
	return "parametric"
}

const (
	DefaultPercentage = 97.5
	DefaultBootstrapN = 1000

	// markerDraws is the number of bootstrap markers per parametric outlier.
	markerDraws = 100
)

// Option configures a funnel plot.
type Option func(*config)

type config struct {
	mode        Mode
	dist        Distribution
	percentage  float64
	labels      []string
	markers     bool
	contours    bool
	left, right color.Color
	bootstrapN  int
	statistic   stat.Statistic
	rng         *rand.Rand
	workers     int
	maxAttempts int
	xlim        *[2]float64
	bandXLim    bool
	logger      *log.Logger
	theme       Theme
}

// WithPercentage sets the one-sided cutoff of the funnel in percent, e.g.
// 97.5 encloses 95% of the expected values (default 97.5).
func WithPercentage(p float64) Option { return func(c *config) { c.percentage = p } }

// WithDistribution sets the distribution of the parametric band
// (default standard normal).
func WithDistribution(d Distribution) Option { return func(c *config) { c.dist = d } }

// WithLabels sets one label per group, in input order. Empty labels are
// not drawn.
func WithLabels(labels []string) Option { return func(c *config) { c.labels = labels } }

// WithBootstrapMarkers switches the resampled means drawn around
// parametric outliers (default on).
func WithBootstrapMarkers(on bool) Option { return func(c *config) { c.markers = on } }

// WithContours switches the faint contour bands (default on).
func WithContours(on bool) Option { return func(c *config) { c.contours = on } }

// WithColors sets the colors of left (low) and right (high) outliers.
func WithColors(left, right color.Color) Option {
	return func(c *config) { c.left, c.right = left, right }
}

// WithBootstrapN sets the number of resamples per size (default 1000).
func WithBootstrapN(n int) Option { return func(c *config) { c.bootstrapN = n } }

// WithStatistic sets the statistic of the bootstrap funnel (default
// mean). The parametric funnel always uses the mean.
func WithStatistic(fn stat.Statistic) Option { return func(c *config) { c.statistic = fn } }

// WithRand sets the source of randomness.
func WithRand(rng *rand.Rand) Option { return func(c *config) { c.rng = rng } }

// WithSeed is WithRand(stat.NewRand(seed)).
func WithSeed(seed uint64) Option { return func(c *config) { c.rng = stat.NewRand(seed) } }

// WithWorkers sets the number of goroutines used for resampling.
func WithWorkers(n int) Option { return func(c *config) { c.workers = n } }

// WithMaxAttempts bounds the search for a free label position.
func WithMaxAttempts(n int) Option { return func(c *config) { c.maxAttempts = n } }

// WithXLim fixes the horizontal axis range.
func WithXLim(min, max float64) Option {
	return func(c *config) { c.xlim = &[2]float64{min, max} }
}

// WithBandXLim frames the horizontal axis to the primary band at the
// smallest plotted size instead of the default window.
func WithBandXLim() Option { return func(c *config) { c.bandXLim = true } }

// WithLogger sets the logger for debug output.
func WithLogger(l *log.Logger) Option { return func(c *config) { c.logger = l } }

// WithTheme replaces DefaultTheme.
func WithTheme(t Theme) Option { return func(c *config) { c.theme = t } }

// newConfig applies opts and validates the result against groups.
// Nothing has been drawn when an error is returned.
func newConfig(mode Mode, groups []Group, opts []Option) (*config, []Group, error) {
	c := &config{
		mode:       mode,
		dist:       distuv.UnitNormal,
		percentage: DefaultPercentage,
		markers:    true,
		contours:   true,
		left:       BuiltinColors["C1"],
		right:      BuiltinColors["C2"],
		bootstrapN: DefaultBootstrapN,
		statistic:  stat.Mean,
		workers:    1,
		theme:      DefaultTheme,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	if err := validateGroups(groups); err != nil {
		return nil, nil, err
	}
	if math.IsNaN(c.percentage) || c.percentage <= 0 || c.percentage >= 100 {
		return nil, nil, invalidf("percentage %g not in (0,100)", c.percentage)
	}
	if mode == BootstrapMode && c.bootstrapN <= 0 {
		return nil, nil, invalidf("bootstrap_n must be positive, got %d", c.bootstrapN)
	}
	if mode == ParametricMode && c.dist == nil {
		return nil, nil, invalidf("no distribution")
	}
	if c.statistic == nil {
		return nil, nil, invalidf("no statistic")
	}
	if c.xlim != nil && !(c.xlim[0] < c.xlim[1]) {
		return nil, nil, invalidf("bad x limits [%g,%g]", c.xlim[0], c.xlim[1])
	}

	if c.labels != nil {
		if len(c.labels) != len(groups) {
			return nil, nil, invalidf("got %d labels for %d groups", len(c.labels), len(groups))
		}
		relabelled := make([]Group, len(groups))
		for i, g := range groups {
			relabelled[i] = Group{Label: c.labels[i], Values: g.Values}
		}
		groups = relabelled
	}
	return c, groups, nil
}

func (c *config) color(left bool) color.Color {
	if left {
		return c.left
	}
	return c.right
}

// applyXLim sets the horizontal range: fixed limits win over band
// framing which wins over the engine's default window.
func (c *config) applyXLim(s Surface, def [2]float64, band Band) [2]float64 {
	lim := def
	switch {
	case c.xlim != nil:
		lim = *c.xlim
	case c.bandXLim && len(band.Sizes) > 0:
		lim = [2]float64{band.Lower[0], band.Upper[0]}
	default:
		if len(band.Sizes) > 0 && (band.Lower[0] < lim[0] || band.Upper[0] > lim[1]) {
			c.logger.Debug("x range cuts the primary band",
				"xlim", lim, "band", [2]float64{band.Lower[0], band.Upper[0]}, "size", band.Sizes[0])
		}
	}
	if !(lim[0] < lim[1]) {
		lim[0], lim[1] = lim[0]-1, lim[1]+1
	}
	s.SetXLim(lim[0], lim[1])
	return lim
}
