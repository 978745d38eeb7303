// Package canvas renders funnel plots to image files with
// gonum.org/v1/plot.
//
// A Canvas is a funnelplot.Surface: draw onto it with one of the funnel
// engines and save the result as PNG, SVG, PDF or any other format
// supported by gonum/plot:
//
//	c, err := canvas.New(6*vg.Inch, 4*vg.Inch)
//	...
//	_, err = funnelplot.Parametric(c, groups)
//	...
//	err = c.Save("funnel.png")
package canvas

import (
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/funnelplot"
)

// Canvas collects everything drawn in a gonum plot. Text is measured
// with the real font metrics on the final canvas size, so label boxes
// approximate the rendered labels.
type Canvas struct {
	Plot          *plot.Plot
	Width, Height vg.Length

	xscale, yscale *funnelplot.Scale
	texts          *texts
	textsAdded     bool
	fonts          map[float64]vg.Font
	xlim, ylim     *[2]float64

	// err is the first error of a drawing operation.
	err error
}

var _ funnelplot.Surface = (*Canvas)(nil)

// New returns an empty canvas of the given size.
func New(width, height vg.Length) (*Canvas, error) {
	p, err := plot.New()
	if err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}
	c := &Canvas{
		Plot:   p,
		Width:  width,
		Height: height,
		xscale: funnelplot.NewScale(),
		yscale: funnelplot.NewScale(),
		texts:  &texts{},
		fonts:  make(map[float64]vg.Font),
	}
	return c, nil
}

// SetTitle sets the plot title.
func (c *Canvas) SetTitle(s string) { c.Plot.Title.Text = s }

func (c *Canvas) SetXLabel(s string) { c.Plot.X.Label.Text = s }
func (c *Canvas) SetYLabel(s string) { c.Plot.Y.Label.Text = s }

// SetXLim fixes the horizontal range. Limits are applied when the plot is
// written, after all data ranges are known.
func (c *Canvas) SetXLim(min, max float64) {
	c.xlim = &[2]float64{min, max}
	c.xscale.Fix(min, max)
}

func (c *Canvas) SetYLim(min, max float64) {
	c.ylim = &[2]float64{min, max}
	c.yscale.Fix(min, max)
}

func (c *Canvas) Line(xs, ys []float64, style funnelplot.LineStyle) {
	if style.LineType == funnelplot.BlankLine || len(xs) == 0 {
		return
	}
	line, err := plotter.NewLine(xys(xs, ys))
	if err != nil {
		c.fail(err)
		return
	}
	line.LineStyle = lineStyle(style)
	c.xscale.Train(xs...)
	c.yscale.Train(ys...)
	c.Plot.Add(line)
}

func (c *Canvas) Point(x, y float64, style funnelplot.PointStyle) {
	c.Scatter([]float64{x}, []float64{y}, style)
}

func (c *Canvas) Scatter(xs, ys []float64, style funnelplot.PointStyle) {
	if style.Shape == funnelplot.BlankPoint || len(xs) == 0 {
		return
	}
	sc, err := plotter.NewScatter(xys(xs, ys))
	if err != nil {
		c.fail(err)
		return
	}
	sc.GlyphStyle = glyphStyle(style)
	c.xscale.Train(xs...)
	c.yscale.Train(ys...)
	c.Plot.Add(sc)
}

// TextExtent measures s in points on the final canvas. The data area is
// taken to be the whole canvas.
func (c *Canvas) TextExtent(x, y float64, s string, style funnelplot.TextStyle) funnelplot.Box {
	px := c.xscale.Pos(x) * c.Width.Points()
	py := c.yscale.Pos(y) * c.Height.Points()
	w := float64(utf8.RuneCountInString(s)) * style.Size * 0.6
	h := style.Size * 1.2
	if font, err := c.font(style.Size); err == nil {
		w = font.Width(s).Points()
		h = font.Extents().Height.Points()
	}
	b := funnelplot.Box{X0: px, Y0: py - h/2, X1: px + w, Y1: py + h/2}
	if style.Align == funnelplot.AlignRight {
		b.X0, b.X1 = px-w, px
	}
	return b
}

func (c *Canvas) Text(x, y float64, s string, style funnelplot.TextStyle) funnelplot.Box {
	b := c.TextExtent(x, y, s, style)
	font, err := c.font(style.Size)
	if err != nil {
		c.fail(err)
		return b
	}
	ts := draw.TextStyle{
		Color:  funnelplot.SetAlpha(style.Color, style.Alpha),
		Font:   font,
		XAlign: draw.XLeft,
		YAlign: draw.YCenter,
	}
	if style.Align == funnelplot.AlignRight {
		ts.XAlign = draw.XRight
	}
	c.texts.add(x, y, s, ts)
	return b
}

// Err returns the first error encountered while drawing.
func (c *Canvas) Err() error { return c.err }

// Render writes the plot in the given format ("png", "svg", "pdf",
// "eps", "jpg", "tiff") to w.
func (c *Canvas) Render(w io.Writer, format string) error {
	if c.err != nil {
		return c.err
	}
	c.finish()
	wt, err := c.Plot.WriterTo(c.Width, c.Height, format)
	if err != nil {
		return fmt.Errorf("canvas: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("canvas: %w", err)
	}
	return nil
}

// Save writes the plot to path in the format given by its extension.
func (c *Canvas) Save(path string) error {
	if c.err != nil {
		return c.err
	}
	c.finish()
	if err := c.Plot.Save(c.Width, c.Height, path); err != nil {
		return fmt.Errorf("canvas: %w", err)
	}
	return nil
}

// finish adds the labels on top of everything else and applies fixed
// limits.
func (c *Canvas) finish() {
	if !c.textsAdded && len(c.texts.labels) > 0 {
		c.Plot.Add(c.texts)
		c.textsAdded = true
	}
	if c.xlim != nil {
		c.Plot.X.Min, c.Plot.X.Max = c.xlim[0], c.xlim[1]
	}
	if c.ylim != nil {
		c.Plot.Y.Min, c.Plot.Y.Max = c.ylim[0], c.ylim[1]
	}
}

func (c *Canvas) font(size float64) (vg.Font, error) {
	if f, ok := c.fonts[size]; ok {
		return f, nil
	}
	f, err := vg.MakeFont(plot.DefaultFont, vg.Points(size))
	if err != nil {
		return vg.Font{}, err
	}
	c.fonts[size] = f
	return f, nil
}

func (c *Canvas) fail(err error) {
	if c.err == nil {
		c.err = fmt.Errorf("canvas: %w", err)
	}
}

func xys(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range pts {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}
	return pts
}

func lineStyle(s funnelplot.LineStyle) draw.LineStyle {
	ls := draw.LineStyle{
		Color: funnelplot.SetAlpha(s.Color, s.Alpha),
		Width: vg.Points(s.Width),
	}
	switch s.LineType {
	case funnelplot.DashedLine:
		ls.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	case funnelplot.DottedLine:
		ls.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}
	}
	return ls
}

func glyphStyle(s funnelplot.PointStyle) draw.GlyphStyle {
	gs := draw.GlyphStyle{
		Color:  funnelplot.SetAlpha(s.Color, s.Alpha),
		Radius: vg.Points(s.Size / 2),
	}
	switch s.Shape {
	case funnelplot.SquarePoint:
		gs.Shape = draw.BoxGlyph{}
	case funnelplot.DeltaPoint:
		gs.Shape = draw.PyramidGlyph{}
	case funnelplot.CrossPoint:
		gs.Shape = draw.CrossGlyph{}
	case funnelplot.PlusPoint:
		gs.Shape = draw.PlusGlyph{}
	default:
		gs.Shape = draw.CircleGlyph{}
	}
	return gs
}

// -------------------------------------------------------------------------
// Text plotter

type label struct {
	X, Y  float64
	Text  string
	Style draw.TextStyle
}

// texts is a plot.Plotter drawing annotations anchored in data
// coordinates.
type texts struct {
	labels []label
}

func (t *texts) add(x, y float64, s string, style draw.TextStyle) {
	t.labels = append(t.labels, label{X: x, Y: y, Text: s, Style: style})
}

func (t *texts) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	for _, l := range t.labels {
		c.FillText(l.Style, vg.Point{X: trX(l.X), Y: trY(l.Y)}, l.Text)
	}
}

// DataRange implements plot.DataRanger for the label anchors.
func (t *texts) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(+1), math.Inf(+1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, l := range t.labels {
		xmin, xmax = math.Min(xmin, l.X), math.Max(xmax, l.X)
		ymin, ymax = math.Min(ymin, l.Y), math.Max(ymax, l.Y)
	}
	return xmin, xmax, ymin, ymax
}
