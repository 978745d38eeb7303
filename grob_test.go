package funnelplot

import (
	"math"
	"testing"
)

func approx(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func TestRecorderTextExtent(t *testing.T) {
	rec := NewRecorder(100, 100)
	rec.SetXLim(0, 10)
	rec.SetYLim(0, 10)

	style := TextStyle{Size: 10}
	left := rec.TextExtent(5, 5, "abc", style)
	want := Box{X0: 50, Y0: 44, X1: 68, Y1: 56}
	if !approx(left.X0, want.X0, 1e-9) || !approx(left.X1, want.X1, 1e-9) ||
		!approx(left.Y0, want.Y0, 1e-9) || !approx(left.Y1, want.Y1, 1e-9) {
		t.Errorf("Got %s, want %s", left, want)
	}

	style.Align = AlignRight
	right := rec.TextExtent(5, 5, "abc", style)
	if !approx(right.X0, 32, 1e-9) || !approx(right.X1, 50, 1e-9) {
		t.Errorf("Got %s for right aligned text", right)
	}

	if len(rec.Grobs) != 0 {
		t.Errorf("TextExtent recorded %d grobs", len(rec.Grobs))
	}
	rec.Text(5, 5, "abc", style)
	if len(rec.Grobs) != 1 {
		t.Fatalf("Got %d grobs, want 1", len(rec.Grobs))
	}
	if g, ok := rec.Grobs[0].(GrobText); !ok || g.Box != right {
		t.Errorf("Got %s", rec.Grobs[0])
	}
}

func TestRecorderTextExtentFollowsLimits(t *testing.T) {
	rec := NewRecorder(100, 100)
	rec.SetXLim(0, 10)
	rec.SetYLim(0, 10)
	style := TextStyle{Size: 10}

	before := rec.TextExtent(6, 5, "abc", style)
	rec.SetXLim(0, 20)
	after := rec.TextExtent(6, 5, "abc", style)
	if !approx(before.X0, 60, 1e-9) || !approx(after.X0, 30, 1e-9) {
		t.Errorf("Got X0 %g before and %g after changing the limits", before.X0, after.X0)
	}
	if after.Width() != before.Width() {
		t.Errorf("Got width %g, want %g", after.Width(), before.Width())
	}
}

func TestRecorderReplay(t *testing.T) {
	rec := NewRecorder(640, 480)
	rec.Line([]float64{0, 1}, []float64{0, 1}, LineStyle{Width: 1})
	rec.Point(2, 3, PointStyle{Size: 3})
	rec.Scatter([]float64{4, 5}, []float64{6, 7}, PointStyle{Size: 2})
	rec.SetXLabel("x")
	rec.SetYLabel("y")
	rec.SetXLim(-1, 6)

	if min, max := rec.YScale.Range(); !approx(min, -0.35, 1e-9) || !approx(max, 7.35, 1e-9) {
		t.Errorf("Got y range [%g,%g]", min, max)
	}

	other := NewRecorder(640, 480)
	rec.Replay(other)
	if len(other.Grobs) != 3 {
		t.Errorf("Got %d grobs, want 3", len(other.Grobs))
	}
	if other.XLabel != "x" || other.YLabel != "y" {
		t.Errorf("Got labels %q %q", other.XLabel, other.YLabel)
	}
	if !other.XScale.Fixed || other.XScale.DomainMin != -1 || other.XScale.DomainMax != 6 {
		t.Errorf("Got x scale %s", other.XScale)
	}
	if other.YScale.Fixed {
		t.Errorf("Got fixed y scale")
	}
	for i := range rec.Grobs {
		if rec.Grobs[i].String() != other.Grobs[i].String() {
			t.Errorf("%d: Got %s, want %s", i, other.Grobs[i], rec.Grobs[i])
		}
	}
}

func TestScale(t *testing.T) {
	s := NewScale()
	if min, max := s.Range(); min != 0 || max != 1 {
		t.Errorf("Got untrained range [%g,%g]", min, max)
	}
	s.Train(3, math.NaN(), math.Inf(1))
	if min, max := s.Range(); min != 2 || max != 4 {
		t.Errorf("Got degenerate range [%g,%g]", min, max)
	}
	s.Train(13)
	if min, max := s.Range(); !approx(min, 2.5, 1e-12) || !approx(max, 13.5, 1e-12) {
		t.Errorf("Got range [%g,%g]", min, max)
	}
	s.Fix(0, 10)
	s.Train(100)
	if p := s.Pos(2.5); p != 0.25 {
		t.Errorf("Got pos %g", p)
	}
}
