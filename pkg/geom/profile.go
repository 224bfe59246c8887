package geom

import "math"

// Profile is a planar cross-section: one counter-clockwise outer loop and
// zero or more cavity loops, stored clockwise.
type Profile struct {
	outer    Polygon
	cavities []Polygon
}

// NewProfile builds a profile from a counter-clockwise outer loop.
func NewProfile(outer Polygon) (Profile, error) {
	if len(outer) < 3 {
		return Profile{}, infeasible("profile", "outer loop needs at least 3 vertices, got %d", len(outer))
	}
	a := outer.SignedArea()
	if !(a > 0) {
		return Profile{}, infeasible("profile", "outer loop has non-positive area %g", a)
	}
	if a <= outer.areaTolerance() {
		return Profile{}, infeasible("profile", "outer loop is degenerate (area %g)", a)
	}
	if outer.selfIntersects() {
		return Profile{}, infeasible("profile", "outer loop intersects itself")
	}
	return Profile{outer: outer.clone()}, nil
}

// RectProfile is a centered w x h rectangular profile.
func RectProfile(w, h float64) (Profile, error) {
	if !(w > 0) || !(h > 0) {
		return Profile{}, infeasible("rect", "non-positive dimensions %g x %g", w, h)
	}
	return NewProfile(Rect(w, h))
}

// Cut returns the profile with cavity subtracted. The cavity must lie strictly
// inside the outer loop and must not touch any existing cavity.
func (p Profile) Cut(cavity Polygon) (Profile, error) {
	if len(p.outer) == 0 {
		return Profile{}, infeasible("cut", "empty profile")
	}
	if len(cavity) < 3 {
		return Profile{}, infeasible("cut", "cavity needs at least 3 vertices, got %d", len(cavity))
	}
	if a := cavity.Area(); !(a > 0) || a <= cavity.areaTolerance() {
		return Profile{}, infeasible("cut", "cavity has zero area")
	}
	if cavity.selfIntersects() {
		return Profile{}, infeasible("cut", "cavity intersects itself")
	}
	if !strictlyInside(cavity, p.outer) {
		return Profile{}, infeasible("cut", "cavity is not strictly inside the outer loop")
	}
	for i, c := range p.cavities {
		if !disjoint(cavity, c) {
			return Profile{}, infeasible("cut", "cavity overlaps cavity %d", i+1)
		}
	}

	loop := cavity.clone()
	if loop.SignedArea() > 0 {
		loop = loop.Reversed()
	}
	next := Profile{outer: p.outer, cavities: make([]Polygon, 0, len(p.cavities)+1)}
	next.cavities = append(next.cavities, p.cavities...)
	next.cavities = append(next.cavities, loop)
	return next, nil
}

// CutRect subtracts a centered w x h rectangular cavity.
func (p Profile) CutRect(w, h float64) (Profile, error) {
	if !(w > 0) || !(h > 0) {
		return Profile{}, infeasible("rect", "non-positive cavity dimensions %g x %g", w, h)
	}
	return p.Cut(Rect(w, h))
}

// Outer returns a copy of the outer loop.
func (p Profile) Outer() Polygon {
	return p.outer.clone()
}

// Cavities returns copies of the cavity loops.
func (p Profile) Cavities() []Polygon {
	out := make([]Polygon, len(p.cavities))
	for i, c := range p.cavities {
		out[i] = c.clone()
	}
	return out
}

// Area is the material area: outer area minus cavity areas.
func (p Profile) Area() float64 {
	a := p.outer.Area()
	for _, c := range p.cavities {
		a -= c.Area()
	}
	return a
}

// loops lists the outer loop first, then the cavities.
func (p Profile) loops() []Polygon {
	out := make([]Polygon, 0, 1+len(p.cavities))
	out = append(out, p.outer)
	return append(out, p.cavities...)
}

func (p Profile) withLoop(i int, loop Polygon) Profile {
	next := Profile{outer: p.outer, cavities: make([]Polygon, len(p.cavities))}
	copy(next.cavities, p.cavities)
	if i == 0 {
		next.outer = loop
	} else {
		next.cavities[i-1] = loop
	}
	return next
}

// clearance is the distance from pt to the nearest loop boundary, negative
// when pt lies outside the material.
func (p Profile) clearance(pt Vec2) float64 {
	d := p.outer.Distance(pt)
	if !p.outer.Contains(pt) {
		return -d
	}
	for _, c := range p.cavities {
		if c.Contains(pt) {
			return -c.Distance(pt)
		}
		d = math.Min(d, c.Distance(pt))
	}
	return d
}
