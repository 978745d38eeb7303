package funnelplot

import (
	"testing"
	"unicode/utf8"
)

// unitSurface measures text in data units: one unit per rune, one unit
// high.
type unitSurface struct {
	Recorder
}

func newUnitSurface() *unitSurface {
	return &unitSurface{Recorder: *NewRecorder(1, 1)}
}

func (u *unitSurface) TextExtent(x, y float64, s string, style TextStyle) Box {
	w := float64(utf8.RuneCountInString(s))
	if style.Align == AlignRight {
		return Box{X0: x - w, Y0: y - 0.5, X1: x, Y1: y + 0.5}
	}
	return Box{X0: x, Y0: y - 0.5, X1: x + w, Y1: y + 0.5}
}

func (u *unitSurface) Text(x, y float64, s string, style TextStyle) Box {
	b := u.TextExtent(x, y, s, style)
	u.Grobs = append(u.Grobs, GrobText{X: x, Y: y, Text: s, Style: style, Box: b})
	return b
}

func TestLabelPlacerFirstAttempt(t *testing.T) {
	s := newUnitSurface()
	lp := NewLabelPlacer(s, DefaultTheme, 0)
	if lp.MaxAttempts != DefaultMaxAttempts {
		t.Errorf("Got MaxAttempts=%d", lp.MaxAttempts)
	}

	box, err := lp.Place(0, 0, "ab", false)
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if cx, cy := box.Center(); !approx(cx, 2, 1e-12) || !approx(cy, 2, 1e-12) {
		t.Errorf("Got box %s, want centered at (2,2)", box)
	}
	if !approx(box.Width(), 2.1, 1e-12) {
		t.Errorf("Got width %g, want 2.1", box.Width())
	}
	if len(lp.Boxes) != 1 {
		t.Errorf("Got %d boxes, want 1", len(lp.Boxes))
	}

	if len(s.Grobs) != 2 {
		t.Fatalf("Got %d grobs, want text and connector", len(s.Grobs))
	}
	text := s.Grobs[0].(GrobText)
	if text.X != 1 || text.Y != 2 || text.Style.Align != AlignLeft {
		t.Errorf("Got %s aligned %d", text, text.Style.Align)
	}
	line := s.Grobs[1].(GrobLine)
	wantX, wantY := []float64{0.95, 0.35, 0}, []float64{2, 2, 0}
	for i := range wantX {
		if !approx(line.XS[i], wantX[i], 1e-12) || line.YS[i] != wantY[i] {
			t.Errorf("Connector %d: Got (%g,%g), want (%g,%g)",
				i, line.XS[i], line.YS[i], wantX[i], wantY[i])
		}
	}
	if line.Style.Alpha != 0.1 {
		t.Errorf("Got connector alpha %g", line.Style.Alpha)
	}
}

func TestLabelPlacerLeft(t *testing.T) {
	s := newUnitSurface()
	lp := NewLabelPlacer(s, DefaultTheme, 0)
	box, err := lp.Place(0, 0, "ab", true)
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if cx, _ := box.Center(); !approx(cx, -2, 1e-12) {
		t.Errorf("Got box %s, want centered at x=-2", box)
	}
	if text := s.Grobs[0].(GrobText); text.X != -1 || text.Style.Align != AlignRight {
		t.Errorf("Got %s aligned %d", text, text.Style.Align)
	}
}

func TestLabelPlacerRetry(t *testing.T) {
	s := newUnitSurface()
	lp := NewLabelPlacer(s, DefaultTheme, 0)
	first, _ := lp.Place(0, 0, "ab", false)

	// The same label at the same point collides twice.
	second, err := lp.Place(0, 0, "ab", false)
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if _, cy := second.Center(); !approx(cy, 4, 1e-12) {
		t.Errorf("Got box %s, want centered at y=4", second)
	}
	if first.Overlaps(second) {
		t.Errorf("Boxes %s and %s overlap", first, second)
	}
	if len(lp.Boxes) != 2 {
		t.Errorf("Got %d boxes, want 2", len(lp.Boxes))
	}
}

func TestLabelPlacerExhausted(t *testing.T) {
	s := newUnitSurface()
	lp := NewLabelPlacer(s, DefaultTheme, 5)
	lp.Boxes = []Box{{X0: -1e6, Y0: -1e6, X1: 1e6, Y1: 1e6}}

	_, err := lp.Place(0, 0, "ab", false)
	lpe, ok := err.(*LabelPlacementError)
	if !ok {
		t.Fatalf("Got err=%v, want *LabelPlacementError", err)
	}
	if lpe.Label != "ab" || lpe.Attempts != 5 {
		t.Errorf("Got %+v", lpe)
	}
	if len(lp.Boxes) != 1 || len(s.Grobs) != 0 {
		t.Errorf("Got %d boxes, %d grobs after failure", len(lp.Boxes), len(s.Grobs))
	}
}
