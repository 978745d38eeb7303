package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/vdobler/funnelplot"
	"github.com/vdobler/funnelplot/stat"
)

const (
	distNormal = "normal"
	distT      = "t"
)

// Config holds the render settings read from a TOML file. Command line
// flags override it.
//
//	percentage = 99
//	bootstrap = true
//	bootstrap_n = 2000
//	seed = 42
//	left_color = "#1f77b4"
//	outlier_shape = "square"
//	band_line = "dashed"
type Config struct {
	Percentage   float64 `toml:"percentage"`
	Bootstrap    bool    `toml:"bootstrap"`
	BootstrapN   int     `toml:"bootstrap_n"`
	Statistic    string  `toml:"statistic"`
	Contours     bool    `toml:"contours"`
	Markers      bool    `toml:"markers"`
	Seed         *uint64 `toml:"seed"`
	Workers      int     `toml:"workers"`
	LeftColor    string  `toml:"left_color"`
	RightColor   string  `toml:"right_color"`
	OutlierShape string  `toml:"outlier_shape"` // dot, circle, square, delta, cross, plus or none
	BandLine     string  `toml:"band_line"`     // solid, dashed or dotted
	Width        float64 `toml:"width"`         // inches
	Height       float64 `toml:"height"`        // inches
	Distribution string  `toml:"distribution"`
	DF           float64 `toml:"df"` // degrees of freedom of the t distribution
}

func defaultConfig() Config {
	return Config{
		Percentage:   funnelplot.DefaultPercentage,
		BootstrapN:   funnelplot.DefaultBootstrapN,
		Statistic:    "mean",
		Contours:     true,
		Markers:      true,
		Workers:      1,
		LeftColor:    "C1",
		RightColor:   "C2",
		OutlierShape: "circle",
		BandLine:     "solid",
		Width:        6.4,
		Height:       4.8,
		Distribution: distNormal,
		DF:           10,
	}
}

// loadConfig reads path on top of the defaults. An empty path yields the
// defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

func (cfg Config) mode() funnelplot.Mode {
	if cfg.Bootstrap {
		return funnelplot.BootstrapMode
	}
	return funnelplot.ParametricMode
}

func (cfg Config) distribution() (funnelplot.Distribution, error) {
	switch cfg.Distribution {
	case "", distNormal:
		return distuv.UnitNormal, nil
	case distT:
		if !(cfg.DF > 0) {
			return nil, fmt.Errorf("invalid degrees of freedom %g", cfg.DF)
		}
		return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: cfg.DF}, nil
	}
	return nil, fmt.Errorf("invalid distribution: %s (must be '%s' or '%s')", cfg.Distribution, distNormal, distT)
}

// options translates cfg into engine options.
func (cfg Config) options(logger *log.Logger) ([]funnelplot.Option, error) {
	dist, err := cfg.distribution()
	if err != nil {
		return nil, err
	}
	fn, err := stat.ByName(cfg.Statistic)
	if err != nil {
		return nil, err
	}
	left, err := funnelplot.ParseColor(cfg.LeftColor)
	if err != nil {
		return nil, err
	}
	right, err := funnelplot.ParseColor(cfg.RightColor)
	if err != nil {
		return nil, err
	}
	theme, err := cfg.theme()
	if err != nil {
		return nil, err
	}

	opts := []funnelplot.Option{
		funnelplot.WithPercentage(cfg.Percentage),
		funnelplot.WithDistribution(dist),
		funnelplot.WithBootstrapN(cfg.BootstrapN),
		funnelplot.WithStatistic(fn),
		funnelplot.WithContours(cfg.Contours),
		funnelplot.WithBootstrapMarkers(cfg.Markers),
		funnelplot.WithWorkers(cfg.Workers),
		funnelplot.WithColors(left, right),
		funnelplot.WithLogger(logger),
		funnelplot.WithTheme(theme),
	}
	if cfg.Seed != nil {
		opts = append(opts, funnelplot.WithSeed(*cfg.Seed))
	}
	return opts, nil
}

// theme applies the outlier marker shape and band line type to the
// default theme.
func (cfg Config) theme() (funnelplot.Theme, error) {
	theme := funnelplot.DefaultTheme
	shape := funnelplot.String2PointShape(cfg.OutlierShape)
	if shape == funnelplot.BlankPoint && cfg.OutlierShape != "none" {
		return theme, fmt.Errorf("invalid outlier shape: %q", cfg.OutlierShape)
	}
	theme.OutlierPoint.Shape = shape
	line := funnelplot.String2LineType(cfg.BandLine)
	if line == funnelplot.BlankLine {
		return theme, fmt.Errorf("invalid band line: %q (must be solid, dashed or dotted)", cfg.BandLine)
	}
	theme.Band.LineType = line
	return theme, nil
}
