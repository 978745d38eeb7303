package funnelplot

import "fmt"

// Box is an axis aligned rectangle in surface coordinates. Placed labels
// are tracked as Boxes.
type Box struct {
	X0, Y0 float64 // lower left
	X1, Y1 float64 // upper right
}

func (b Box) String() string {
	return fmt.Sprintf("[%.3g,%.3g]x[%.3g,%.3g]", b.X0, b.X1, b.Y0, b.Y1)
}

func (b Box) Width() float64  { return b.X1 - b.X0 }
func (b Box) Height() float64 { return b.Y1 - b.Y0 }

// Center returns the midpoint of b.
func (b Box) Center() (x, y float64) {
	return (b.X0 + b.X1) / 2, (b.Y0 + b.Y1) / 2
}

// Expand returns a box with the same center as b but width and height
// multiplied by pct: 1.0 is the identity, 2.0 doubles both extents and
// values below 1 shrink the box.
func (b Box) Expand(pct float64) Box {
	if pct == 1 {
		return b
	}
	cx, cy := b.Center()
	w, h := b.Width()*pct, b.Height()*pct
	return Box{X0: cx - w/2, Y0: cy - h/2, X1: cx + w/2, Y1: cy + h/2}
}

// normalized returns b with X0 <= X1 and Y0 <= Y1.
func (b Box) normalized() Box {
	if b.X1 < b.X0 {
		b.X0, b.X1 = b.X1, b.X0
	}
	if b.Y1 < b.Y0 {
		b.Y0, b.Y1 = b.Y1, b.Y0
	}
	return b
}

// Overlaps reports whether a and b intersect. Touching edges count as
// overlap.
func (a Box) Overlaps(b Box) bool {
	a, b = a.normalized(), b.normalized()
	return a.X0 <= b.X1 && b.X0 <= a.X1 && a.Y0 <= b.Y1 && b.Y0 <= a.Y1
}
