package funnelplot

import (
	"math"
	"sort"
)

// Group is one group of observations. Groups are plotted at their size,
// outliers are annotated with their label (if any).
type Group struct {
	Label  string
	Values []float64
}

// Size is the number of observations in g.
func (g Group) Size() int { return len(g.Values) }

// NewGroups pairs data with labels. labels may be nil, otherwise it must
// have one entry per group.
func NewGroups(data [][]float64, labels []string) ([]Group, error) {
	if labels != nil && len(labels) != len(data) {
		return nil, invalidf("got %d labels for %d groups", len(labels), len(data))
	}
	groups := make([]Group, len(data))
	for i, values := range data {
		groups[i].Values = values
		if labels != nil {
			groups[i].Label = labels[i]
		}
	}
	return groups, nil
}

// validateGroups makes sure the funnel is defined for groups.
func validateGroups(groups []Group) error {
	if len(groups) == 0 {
		return invalidf("no groups to plot")
	}
	for i, g := range groups {
		if g.Size() == 0 {
			return invalidf("group %d (%q) is empty", i, g.Label)
		}
		for j, v := range g.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return invalidf("group %d (%q) has non-finite value %g at index %d", i, g.Label, v, j)
			}
		}
	}
	return nil
}

// sortBySize returns a copy of groups ordered by increasing size. Groups
// of equal size keep their input order.
func sortBySize(groups []Group) []Group {
	sorted := make([]Group, len(groups))
	copy(sorted, groups)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Size() < sorted[j].Size()
	})
	return sorted
}

// population concatenates all groups in input order.
func population(groups []Group) []float64 {
	n := 0
	for _, g := range groups {
		n += g.Size()
	}
	pop := make([]float64, 0, n)
	for _, g := range groups {
		pop = append(pop, g.Values...)
	}
	return pop
}
