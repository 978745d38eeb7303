package funnelplot

import (
	"fmt"
	"sort"
)

// -------------------------------------------------------------------------
// Float Set

// Float set is a set of float64 values.
type FloatSet map[float64]struct{}

func NewFloatSet() FloatSet {
	return make(FloatSet)
}

func (s FloatSet) String() string {
	var t = "[ "
	for _, x := range s.Elements() {
		t += fmt.Sprintf("%g ", x)
	}
	return t + "]"
}

// Add adds x to s.
func (s FloatSet) Add(x float64) {
	s[x] = struct{}{}
}

// Elements returns the members of s in increasing order.
func (s FloatSet) Elements() []float64 {
	elems := make([]float64, 0, len(s))
	for x := range s {
		elems = append(elems, x)
	}
	sort.Float64s(elems)
	return elems
}
