package funnelplot

import (
	"fmt"
	"math"
)

// Scale maps one data axis onto [0,1]. The domain is either trained on
// the data drawn so far or fixed via Fix.
type Scale struct {
	DomainMin float64
	DomainMax float64

	// Fixed scales ignore training.
	Fixed bool

	// Expand widens a trained domain by this fraction on both sides.
	Expand float64
}

// NewScale returns an untrained scale which expands its domain by 5%.
func NewScale() *Scale {
	return &Scale{
		DomainMin: math.Inf(+1),
		DomainMax: math.Inf(-1),
		Expand:    0.05,
	}
}

func (s *Scale) String() string {
	min, max := s.Range()
	return fmt.Sprintf("Scale [%.3g,%.3g] fixed=%t", min, max, s.Fixed)
}

// Train updates the domain to include all finite xs.
func (s *Scale) Train(xs ...float64) {
	if s.Fixed {
		return
	}
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		if x < s.DomainMin {
			s.DomainMin = x
		}
		if x > s.DomainMax {
			s.DomainMax = x
		}
	}
}

// Fix sets the domain to [min,max] and stops further training.
func (s *Scale) Fix(min, max float64) {
	s.DomainMin, s.DomainMax = min, max
	s.Fixed = true
}

// Range returns the effective domain. Untrained scales yield [0,1],
// degenerate ones are widened by one unit on each side.
func (s *Scale) Range() (min, max float64) {
	min, max = s.DomainMin, s.DomainMax
	if min > max {
		return 0, 1
	}
	if s.Fixed {
		return min, max
	}
	if min == max {
		return min - 1, max + 1
	}
	expand := (max - min) * s.Expand
	return min - expand, max + expand
}

// Pos maps x into [0,1] (values outside the domain map outside).
func (s *Scale) Pos(x float64) float64 {
	min, max := s.Range()
	return (x - min) / (max - min)
}
