package funnelplot

import (
	"math"
	"testing"

	gstat "gonum.org/v1/gonum/stat"

	"github.com/vdobler/funnelplot/stat"
)

// spreadGroups returns ten groups of sizes 5 to 50 with values cycling
// through 0..12, plus a constant group at 100 if outlier is set.
func spreadGroups(outlier bool) []Group {
	var groups []Group
	v := 0
	for i := 0; i < 10; i++ {
		g := Group{Label: string(rune('a' + i))}
		for j := 0; j < 5*(i+1); j++ {
			g.Values = append(g.Values, float64(v%13))
			v += 7
		}
		groups = append(groups, g)
	}
	if outlier {
		groups = append(groups, Group{Label: "hot", Values: []float64{100, 100, 100, 100, 100}})
	}
	return groups
}

func TestBootstrapSeeded(t *testing.T) {
	groups := spreadGroups(true)
	run := func(workers int) *Result {
		result, err := Bootstrap(NewRecorder(640, 480), groups,
			WithSeed(42), WithBootstrapN(200), WithWorkers(workers))
		if err != nil {
			t.Fatalf("Unexpected error %s", err)
		}
		return result
	}

	r1, r2, r4 := run(1), run(1), run(4)
	for i := range r1.Points {
		if r1.Points[i] != r2.Points[i] {
			t.Errorf("%d: Got %+v and %+v with the same seed", i, r1.Points[i], r2.Points[i])
		}
		if r1.Points[i] != r4.Points[i] {
			t.Errorf("%d: Got %+v with 1 and %+v with 4 workers", i, r1.Points[i], r4.Points[i])
		}
	}
	for i := range r1.Band.Upper {
		if r1.Band.Upper[i] != r4.Band.Upper[i] || r1.Band.Lower[i] != r4.Band.Lower[i] {
			t.Errorf("Band differs at %d", i)
		}
	}

	other, err := Bootstrap(NewRecorder(640, 480), groups, WithSeed(43), WithBootstrapN(200))
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	same := true
	for i := range r1.Band.Upper {
		same = same && r1.Band.Upper[i] == other.Band.Upper[i]
	}
	if same {
		t.Errorf("Different seeds gave identical bands")
	}
}

func TestBootstrapOutlier(t *testing.T) {
	groups := spreadGroups(true)
	rec := NewRecorder(640, 480)
	result, err := Bootstrap(rec, groups, WithSeed(1), WithBootstrapN(300))
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}

	outliers := result.Outliers()
	var hot *Point
	for i := range outliers {
		if outliers[i].Label == "hot" {
			hot = &outliers[i]
		}
	}
	if hot == nil {
		t.Fatalf("Got outliers %v, want hot among them", outliers)
	}
	if hot.Class != Right || hot.Value != 100 || hot.Whisker != (stat.Interval{Lo: 100, Hi: 100}) {
		t.Errorf("Got %+v", *hot)
	}
	if !(hot.Lower < hot.Value) || !(hot.Upper < hot.Value) {
		t.Errorf("Got bounds [%g,%g] for %g", hot.Lower, hot.Upper, hot.Value)
	}

	var whiskers int
	for _, g := range rec.Grobs {
		if line, ok := g.(GrobLine); ok && len(line.XS) == 2 && line.YS[0] == 5 && line.YS[1] == 5 &&
			line.XS[0] == 100 && line.XS[1] == 100 {
			whiskers++
		}
	}
	if whiskers != 1 {
		t.Errorf("Got %d whiskers for hot, want 1", whiskers)
	}

	pop := population(groups)
	if result.Reference != gstat.Mean(pop, nil) {
		t.Errorf("Got reference %g", result.Reference)
	}
	if rec.XLabel != "Value" {
		t.Errorf("Got x label %q", rec.XLabel)
	}
	if !(result.XLim[0] >= 0 && result.XLim[0] < result.XLim[1] && result.XLim[1] <= 100) {
		t.Errorf("Got xlim %v outside the population", result.XLim)
	}
	if n := len(result.Band.Sizes); n != 50 || result.Band.Sizes[0] != 1 || result.Band.Sizes[n-1] != 52 {
		t.Errorf("Got band sizes %v", result.Band.Sizes)
	}
}

func TestBootstrapTieAtLowerBound(t *testing.T) {
	groups := []Group{{Label: "a", Values: []float64{5, 5, 5}}, {Label: "b", Values: []float64{5, 5}}}
	result, err := Bootstrap(NewRecorder(640, 480), groups, WithSeed(1), WithBootstrapN(50))
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	for _, pt := range result.Points {
		if pt.Value != 5 || pt.Lower != 5 || pt.Upper != 5 {
			t.Errorf("%s: Got value %g in [%g, %g]", pt.Label, pt.Value, pt.Lower, pt.Upper)
		}
		if pt.Class != Right {
			t.Errorf("%s: Got class %s, want right", pt.Label, pt.Class)
		}
	}
}

func TestBootstrapApproachesParametric(t *testing.T) {
	groups := spreadGroups(false)
	result, err := Bootstrap(NewRecorder(640, 480), groups,
		WithSeed(3), WithBootstrapN(2000), WithContours(false), WithWorkers(4))
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}

	pop := population(groups)
	mean, std := gstat.PopMeanStdDev(pop, nil)
	for i, k := range result.Band.Sizes {
		if k < 10 {
			continue
		}
		want := 1.96 * std / math.Sqrt(k)
		up, down := result.Band.Upper[i]-mean, mean-result.Band.Lower[i]
		if math.Abs(up-want) > 0.2*want || math.Abs(down-want) > 0.2*want {
			t.Errorf("Size %g: Got band -%g/+%g, want about %g", k, down, up, want)
		}
	}
}

func TestBootstrapMedian(t *testing.T) {
	groups := spreadGroups(true)
	result, err := Bootstrap(NewRecorder(640, 480), groups,
		WithSeed(5), WithBootstrapN(100), WithStatistic(stat.Median))
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if result.Reference != stat.Median(population(groups)) {
		t.Errorf("Got reference %g", result.Reference)
	}
	for _, pt := range result.Points {
		if pt.Label == "hot" && pt.Class != Right {
			t.Errorf("Got hot classified %s", pt.Class)
		}
	}
}

func TestBootstrapErrors(t *testing.T) {
	groups := spreadGroups(false)
	rec := NewRecorder(640, 480)
	if _, err := Bootstrap(rec, groups, WithBootstrapN(0)); !IsCode(err, ErrCodeInvalidInput) {
		t.Errorf("Got err=%v", err)
	}
	if _, err := Bootstrap(rec, groups, WithStatistic(nil)); !IsCode(err, ErrCodeInvalidInput) {
		t.Errorf("Got err=%v", err)
	}
	if _, err := Bootstrap(rec, nil); !IsCode(err, ErrCodeInvalidInput) {
		t.Errorf("Got err=%v", err)
	}
	if len(rec.Grobs) != 0 {
		t.Errorf("Got %d grobs drawn", len(rec.Grobs))
	}
}
