package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/funnelplot"
	"github.com/vdobler/funnelplot/canvas"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	value      string // numeric column
	group      string // key column
	output     string // output file, format by extension
	configPath string // TOML config file
	title      string
	bandXLim   bool
	quiet      bool // no outlier summary
	seed       uint64
	flags      Config
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{output: "funnel.png", flags: defaultConfig()}

	cmd := &cobra.Command{
		Use:   "render [file.csv]",
		Short: "Render a funnel plot of a CSV table",
		Long: `Render groups the --value column of a CSV table by the --group column and
draws a funnel plot. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			opts.merge(cmd, &cfg)
			ctx := withLogger(cmd.Context(), runLogger(c.Logger))
			return c.runRender(ctx, args[0], &opts, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.value, "value", "x", "", "numeric column to analyse (required)")
	f.StringVarP(&opts.group, "group", "g", "", "column to group by (required)")
	f.StringVarP(&opts.output, "output", "o", opts.output, "output file: png, svg, pdf, eps, jpg or tiff")
	f.StringVar(&opts.configPath, "config", "", "TOML config file")
	f.StringVar(&opts.title, "title", "", "plot title")
	f.BoolVar(&opts.bandXLim, "band-xlim", false, "frame the x axis to the funnel at the smallest size")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "do not print the outlier summary")

	f.BoolVar(&opts.flags.Bootstrap, "bootstrap", false, "estimate the funnel by resampling")
	f.Float64VarP(&opts.flags.Percentage, "percentage", "p", opts.flags.Percentage, "one-sided cutoff in percent")
	f.IntVarP(&opts.flags.BootstrapN, "bootstrap-n", "n", opts.flags.BootstrapN, "resamples per group size")
	f.StringVar(&opts.flags.Statistic, "statistic", opts.flags.Statistic, "bootstrap statistic: mean, median")
	f.BoolVar(&opts.flags.Contours, "contours", opts.flags.Contours, "draw contour bands")
	f.BoolVar(&opts.flags.Markers, "markers", opts.flags.Markers, "draw resampled means around parametric outliers")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed (default: random)")
	f.IntVarP(&opts.flags.Workers, "workers", "w", opts.flags.Workers, "resampling goroutines")
	f.StringVar(&opts.flags.LeftColor, "left-color", opts.flags.LeftColor, "color of low outliers")
	f.StringVar(&opts.flags.RightColor, "right-color", opts.flags.RightColor, "color of high outliers")
	f.StringVar(&opts.flags.OutlierShape, "outlier-shape", opts.flags.OutlierShape, "outlier marker: dot, circle, square, delta, cross, plus, none")
	f.StringVar(&opts.flags.BandLine, "band-line", opts.flags.BandLine, "funnel line: solid, dashed, dotted")
	f.Float64Var(&opts.flags.Width, "width", opts.flags.Width, "image width in inches")
	f.Float64Var(&opts.flags.Height, "height", opts.flags.Height, "image height in inches")
	f.StringVar(&opts.flags.Distribution, "dist", opts.flags.Distribution, "parametric distribution: normal, t")
	f.Float64Var(&opts.flags.DF, "df", opts.flags.DF, "degrees of freedom of the t distribution")

	cmd.MarkFlagRequired("value")
	cmd.MarkFlagRequired("group")
	return cmd
}

// merge copies all explicitly set flags over cfg.
func (o *renderOpts) merge(cmd *cobra.Command, cfg *Config) {
	f := cmd.Flags()
	set := func(name string, apply func()) {
		if f.Changed(name) {
			apply()
		}
	}
	set("bootstrap", func() { cfg.Bootstrap = o.flags.Bootstrap })
	set("percentage", func() { cfg.Percentage = o.flags.Percentage })
	set("bootstrap-n", func() { cfg.BootstrapN = o.flags.BootstrapN })
	set("statistic", func() { cfg.Statistic = o.flags.Statistic })
	set("contours", func() { cfg.Contours = o.flags.Contours })
	set("markers", func() { cfg.Markers = o.flags.Markers })
	set("seed", func() { cfg.Seed = &o.seed })
	set("workers", func() { cfg.Workers = o.flags.Workers })
	set("left-color", func() { cfg.LeftColor = o.flags.LeftColor })
	set("right-color", func() { cfg.RightColor = o.flags.RightColor })
	set("outlier-shape", func() { cfg.OutlierShape = o.flags.OutlierShape })
	set("band-line", func() { cfg.BandLine = o.flags.BandLine })
	set("width", func() { cfg.Width = o.flags.Width })
	set("height", func() { cfg.Height = o.flags.Height })
	set("dist", func() { cfg.Distribution = o.flags.Distribution })
	set("df", func() { cfg.DF = o.flags.DF })
}

func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts, cfg Config) error {
	logger := loggerFromContext(ctx)

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(opts.output)), ".")
	if !validFormats[format] {
		return fmt.Errorf("invalid output format: %q (must be one of png, svg, pdf, eps, jpg, tiff)", format)
	}
	engineOpts, err := cfg.options(logger)
	if err != nil {
		return err
	}
	if opts.bandXLim {
		engineOpts = append(engineOpts, funnelplot.WithBandXLim())
	}

	prog := newProgress(logger)
	df, err := readTable(input)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Read %d rows from %s", df.N, input))
	if err := ctx.Err(); err != nil {
		return err
	}

	surface, err := canvas.New(vg.Length(cfg.Width)*vg.Inch, vg.Length(cfg.Height)*vg.Inch)
	if err != nil {
		return err
	}
	if opts.title != "" {
		surface.SetTitle(opts.title)
	}

	prog = newProgress(logger)
	mode := cfg.mode()
	result, err := funnelplot.Funnel(surface, df, opts.value, opts.group, mode, engineOpts...)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Computed %s funnel of %d groups", mode, len(result.Points)))
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := writeOutput(surface, opts.output, format); err != nil {
		return err
	}
	logger.Info("Wrote plot", "file", opts.output, "outliers", len(result.Outliers()))

	if !opts.quiet {
		printSummary(c.Out, result)
	}
	return nil
}

var validFormats = map[string]bool{
	"png": true, "svg": true, "pdf": true, "eps": true, "jpg": true, "jpeg": true, "tif": true, "tiff": true,
}

func readTable(input string) (*funnelplot.DataFrame, error) {
	var r io.Reader = os.Stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	df, err := funnelplot.ReadCSV(r)
	if err != nil {
		return nil, err
	}
	df.Name = filepath.Base(input)
	return df, nil
}

func writeOutput(surface *canvas.Canvas, path, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := surface.Render(f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
