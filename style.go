package funnelplot

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Set alpha to a in color c. An alpha already present in c is replaced.
func SetAlpha(c color.Color, a float64) color.Color {
	if c == nil {
		c = BuiltinColors["black"]
	}
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(a*float64(0xff) + 0.5)
	return n
}

// -------------------------------------------------------------------------
// Points

type PointShape int

const (
	BlankPoint PointShape = iota
	DotPoint
	CirclePoint
	SquarePoint
	DeltaPoint
	CrossPoint
	PlusPoint
)

func String2PointShape(s string) PointShape {
	switch s {
	case "dot", ".":
		return DotPoint
	case "circle", "o":
		return CirclePoint
	case "square", "s":
		return SquarePoint
	case "delta", "^":
		return DeltaPoint
	case "cross", "x":
		return CrossPoint
	case "plus", "+":
		return PlusPoint
	}
	return BlankPoint
}

// PointStyle describes markers and scatter points. Size is the marker
// diameter in points.
type PointStyle struct {
	Color color.Color
	Shape PointShape
	Size  float64
	Alpha float64
}

// -------------------------------------------------------------------------
// Lines

type LineType int

const (
	BlankLine LineType = iota
	SolidLine
	DashedLine
	DottedLine
)

func String2LineType(s string) LineType {
	switch s {
	case "solid", "-":
		return SolidLine
	case "dashed", "--":
		return DashedLine
	case "dotted", ":":
		return DottedLine
	default:
		return BlankLine
	}
}

// LineStyle describes polylines. Width is in points.
type LineStyle struct {
	Color    color.Color
	Width    float64
	Alpha    float64
	LineType LineType
}

// -------------------------------------------------------------------------
// Text

// HAlign is the horizontal alignment of a text relative to its anchor.
type HAlign int

const (
	AlignLeft  HAlign = iota // text starts at the anchor
	AlignRight               // text ends at the anchor
)

// TextStyle describes annotations. Text is always vertically centred on
// its anchor.
type TextStyle struct {
	Color color.Color
	Size  float64 // font size in points
	Alpha float64
	Align HAlign
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.RGBA{
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0xff, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"gray20":  {0x33, 0x33, 0x33, 0xff},
	"gray40":  {0x66, 0x66, 0x66, 0xff},
	"gray":    {0x7f, 0x7f, 0x7f, 0xff},
	"gray60":  {0x99, 0x99, 0x99, 0xff},
	"gray80":  {0xcc, 0xcc, 0xcc, 0xff},
	"black":   {0x00, 0x00, 0x00, 0xff},
	"k":       {0x00, 0x00, 0x00, 0xff},

	// The default colour cycle of matplotlib.
	"C0": {0x1f, 0x77, 0xb4, 0xff},
	"C1": {0xff, 0x7f, 0x0e, 0xff},
	"C2": {0x2c, 0xa0, 0x2c, 0xff},
	"C3": {0xd6, 0x27, 0x28, 0xff},
	"C4": {0x94, 0x67, 0xbd, 0xff},
	"C5": {0x8c, 0x56, 0x4b, 0xff},
	"C6": {0xe3, 0x77, 0xc2, 0xff},
	"C7": {0x7f, 0x7f, 0x7f, 0xff},
	"C8": {0xbc, 0xbd, 0x22, 0xff},
	"C9": {0x17, 0xbe, 0xcf, 0xff},
}

// ParseColor understands "#rrggbb", "#rrggbbaa" and the names in
// BuiltinColors.
func ParseColor(s string) (color.Color, error) {
	if strings.HasPrefix(s, "#") && (len(s) == 7 || len(s) == 9) {
		var c [4]uint8
		c[3] = 0xff
		for i := 0; i < (len(s)-1)/2; i++ {
			v, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
			if err != nil {
				return nil, NewError(ErrCodeInvalidFormat, "bad color %q", s)
			}
			c[i] = uint8(v)
		}
		return color.NRGBA{c[0], c[1], c[2], c[3]}, nil
	}
	if col, ok := BuiltinColors[s]; ok {
		return col, nil
	}
	return nil, NewError(ErrCodeInvalidFormat, "unknown color %q", s)
}

// ColorString formats c as "#rrggbbaa".
func ColorString(c color.Color) string {
	if c == nil {
		return "none"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
