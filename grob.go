package funnelplot

import (
	"fmt"
	"unicode/utf8"
)

// Grob is a recorded graphical object. Grobs can be replayed onto any
// Surface.
type Grob interface {
	String() string
	Replay(s Surface)
}

// -------------------------------------------------------------------------
// Grob Line

type GrobLine struct {
	XS, YS []float64
	Style  LineStyle
}

func (line GrobLine) Replay(s Surface) { s.Line(line.XS, line.YS, line.Style) }

func (line GrobLine) String() string {
	return fmt.Sprintf("Line(%d points, %s, alpha=%.2g)",
		len(line.XS), ColorString(line.Style.Color), line.Style.Alpha)
}

// -------------------------------------------------------------------------
// Grob Point

type GrobPoint struct {
	X, Y  float64
	Style PointStyle
}

func (point GrobPoint) Replay(s Surface) { s.Point(point.X, point.Y, point.Style) }

func (point GrobPoint) String() string {
	return fmt.Sprintf("Point(%.4g, %.4g, %s)", point.X, point.Y, ColorString(point.Style.Color))
}

// -------------------------------------------------------------------------
// Grob Scatter

type GrobScatter struct {
	XS, YS []float64
	Style  PointStyle
}

func (sc GrobScatter) Replay(s Surface) { s.Scatter(sc.XS, sc.YS, sc.Style) }

func (sc GrobScatter) String() string {
	return fmt.Sprintf("Scatter(%d points, %s, alpha=%.2g)",
		len(sc.XS), ColorString(sc.Style.Color), sc.Style.Alpha)
}

// -------------------------------------------------------------------------
// Grob Text

type GrobText struct {
	X, Y  float64
	Text  string
	Style TextStyle
	Box   Box // extent at the time of drawing
}

func (text GrobText) Replay(s Surface) { s.Text(text.X, text.Y, text.Text, text.Style) }

func (text GrobText) String() string {
	return fmt.Sprintf("Text(%.4g, %.4g, %q)", text.X, text.Y, text.Text)
}

// -------------------------------------------------------------------------
// Recorder

// Recorder is a Surface which records everything drawn as Grobs. Text is
// measured with simple fixed-pitch font metrics on a virtual canvas of
// Width x Height points.
type Recorder struct {
	Grobs []Grob

	XScale, YScale *Scale
	XLabel, YLabel string

	Width, Height float64 // virtual canvas size in points
	CharWidth     float64 // glyph advance as a fraction of the font size
	LineHeight    float64 // line height as a fraction of the font size
}

var _ Surface = (*Recorder)(nil)

// NewRecorder returns an empty recorder with a virtual canvas of the
// given size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{
		XScale:     NewScale(),
		YScale:     NewScale(),
		Width:      width,
		Height:     height,
		CharWidth:  0.6,
		LineHeight: 1.2,
	}
}

func (r *Recorder) Line(xs, ys []float64, style LineStyle) {
	r.XScale.Train(xs...)
	r.YScale.Train(ys...)
	r.Grobs = append(r.Grobs, GrobLine{XS: clone(xs), YS: clone(ys), Style: style})
}

func (r *Recorder) Point(x, y float64, style PointStyle) {
	r.XScale.Train(x)
	r.YScale.Train(y)
	r.Grobs = append(r.Grobs, GrobPoint{X: x, Y: y, Style: style})
}

func (r *Recorder) Scatter(xs, ys []float64, style PointStyle) {
	r.XScale.Train(xs...)
	r.YScale.Train(ys...)
	r.Grobs = append(r.Grobs, GrobScatter{XS: clone(xs), YS: clone(ys), Style: style})
}

func (r *Recorder) TextExtent(x, y float64, s string, style TextStyle) Box {
	px, py := r.XScale.Pos(x)*r.Width, r.YScale.Pos(y)*r.Height
	w := float64(utf8.RuneCountInString(s)) * style.Size * r.CharWidth
	h := style.Size * r.LineHeight
	b := Box{X0: px, Y0: py - h/2, X1: px + w, Y1: py + h/2}
	if style.Align == AlignRight {
		b.X0, b.X1 = px-w, px
	}
	return b
}

func (r *Recorder) Text(x, y float64, s string, style TextStyle) Box {
	b := r.TextExtent(x, y, s, style)
	r.Grobs = append(r.Grobs, GrobText{X: x, Y: y, Text: s, Style: style, Box: b})
	return b
}

func (r *Recorder) SetXLim(min, max float64) { r.XScale.Fix(min, max) }
func (r *Recorder) SetYLim(min, max float64) { r.YScale.Fix(min, max) }
func (r *Recorder) SetXLabel(s string)       { r.XLabel = s }
func (r *Recorder) SetYLabel(s string)       { r.YLabel = s }

// Replay draws all recorded grobs onto s, followed by the axis labels and
// fixed limits.
func (r *Recorder) Replay(s Surface) {
	for _, g := range r.Grobs {
		g.Replay(s)
	}
	if r.XLabel != "" {
		s.SetXLabel(r.XLabel)
	}
	if r.YLabel != "" {
		s.SetYLabel(r.YLabel)
	}
	if r.XScale.Fixed {
		s.SetXLim(r.XScale.DomainMin, r.XScale.DomainMax)
	}
	if r.YScale.Fixed {
		s.SetYLim(r.YScale.DomainMin, r.YScale.DomainMax)
	}
}

func clone(xs []float64) []float64 {
	c := make([]float64, len(xs))
	copy(c, xs)
	return c
}
