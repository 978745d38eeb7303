package funnelplot

// DefaultMaxAttempts bounds the search of a LabelPlacer.
const DefaultMaxAttempts = 1000

// LabelPlacer places labels next to points so that no two labels
// overlap. Candidate positions move away from the point diagonally: to
// the upper left for left labels, to the upper right otherwise.
//
// A LabelPlacer belongs to one render call; its boxes are never shared.
type LabelPlacer struct {
	Surface Surface
	Style   TextStyle
	Line    LineStyle // connector from label to point

	// Margin scales each label's extent before testing for overlap.
	Margin float64

	// Base offsets and the amount added per attempt (also before the
	// first one), all in data units.
	BaseX, BaseY float64
	StepX, StepY float64

	MaxAttempts int

	Boxes []Box
}

// NewLabelPlacer returns a placer with the default geometry and no
// placed labels.
func NewLabelPlacer(s Surface, theme Theme, maxAttempts int) *LabelPlacer {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &LabelPlacer{
		Surface:     s,
		Style:       theme.Label,
		Line:        theme.Connector,
		Margin:      1.05,
		BaseX:       0.5,
		BaseY:       1.0,
		StepX:       0.5,
		StepY:       1.0,
		MaxAttempts: maxAttempts,
	}
}

// Place annotates the point (x,y) with label. On success the label and
// its connector are drawn and the label's box is recorded. A
// *LabelPlacementError is returned once MaxAttempts candidates collided.
func (lp *LabelPlacer) Place(x, y float64, label string, left bool) (Box, error) {
	style := lp.Style
	sign := 1.0
	if left {
		style.Align = AlignRight
		sign = -1
	} else {
		style.Align = AlignLeft
	}

	xOffset, yOffset := lp.BaseX, lp.BaseY
	for attempt := 0; attempt < lp.MaxAttempts; attempt++ {
		xOffset += lp.StepX
		yOffset += lp.StepY
		xOff := sign * xOffset
		tx, ty := x+xOff, y+yOffset

		box := lp.Surface.TextExtent(tx, ty, label, style).Expand(lp.Margin)
		if lp.collides(box) {
			continue
		}

		lp.Surface.Text(tx, ty, label, style)
		lp.Surface.Line(
			[]float64{x + xOff*0.95, x + xOff*0.35, x},
			[]float64{ty, ty, y},
			lp.Line)
		lp.Boxes = append(lp.Boxes, box)
		return box, nil
	}
	return Box{}, &LabelPlacementError{Label: label, Attempts: lp.MaxAttempts}
}

func (lp *LabelPlacer) collides(box Box) bool {
	for _, b := range lp.Boxes {
		if b.Overlaps(box) {
			return true
		}
	}
	return false
}
