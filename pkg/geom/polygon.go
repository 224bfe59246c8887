package geom

import "math"

// Polygon is a closed loop of vertices in the sketch plane.
// The closing segment from the last vertex back to the first is implicit.
type Polygon []Vec2

// Rect returns a w x h rectangle centered on the origin, counter-clockwise.
func Rect(w, h float64) Polygon {
	hw, hh := w/2, h/2
	return Polygon{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
}

// SignedArea is positive for counter-clockwise loops.
func (p Polygon) SignedArea() float64 {
	var sum float64
	for i := range p {
		a, b := p.Segment(i)
		sum += a.Cross(b)
	}
	return sum / 2
}

// Area returns the enclosed area regardless of orientation.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Perimeter returns the total boundary length.
func (p Polygon) Perimeter() float64 {
	var sum float64
	for i := range p {
		a, b := p.Segment(i)
		sum += a.Dist(b)
	}
	return sum
}

// Segment returns the endpoints of side i (vertex i to vertex i+1).
func (p Polygon) Segment(i int) (Vec2, Vec2) {
	return p[i], p[(i+1)%len(p)]
}

// Bounds returns the axis-aligned extent of the loop.
func (p Polygon) Bounds() (min, max Vec2) {
	if len(p) == 0 {
		return Vec2{}, Vec2{}
	}
	min, max = p[0], p[0]
	for _, v := range p[1:] {
		min.X = math.Min(min.X, v.X)
		min.Y = math.Min(min.Y, v.Y)
		max.X = math.Max(max.X, v.X)
		max.Y = math.Max(max.Y, v.Y)
	}
	return min, max
}

// areaTolerance is the smallest area accepted for the loop, relative to its
// extent so that uniformly scaled loops classify the same way.
func (p Polygon) areaTolerance() float64 {
	min, max := p.Bounds()
	e := math.Max(max.X-min.X, max.Y-min.Y)
	return Tolerance * e * e
}

// Contains reports whether pt lies inside the loop (even-odd rule).
// Points on the boundary are not reliably classified; use Distance for that.
func (p Polygon) Contains(pt Vec2) bool {
	inside := false
	for i := range p {
		a, b := p.Segment(i)
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			x := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if pt.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// Distance returns the shortest distance from pt to the loop boundary.
func (p Polygon) Distance(pt Vec2) float64 {
	d := math.Inf(1)
	for i := range p {
		a, b := p.Segment(i)
		d = math.Min(d, segmentDistance(pt, a, b))
	}
	return d
}

// Reversed returns the loop with opposite orientation.
func (p Polygon) Reversed() Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}

func (p Polygon) clone() Polygon {
	if p == nil {
		return nil
	}
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

func segmentDistance(pt, a, b Vec2) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return pt.Dist(a)
	}
	t := math.Max(0, math.Min(1, pt.Sub(a).Dot(ab)/l2))
	return pt.Dist(a.Add(ab.Scale(t)))
}

// segmentsTouch reports whether two closed segments share any point.
func segmentsTouch(a1, a2, b1, b2 Vec2) bool {
	d1 := orient(b1, b2, a1)
	d2 := orient(b1, b2, a2)
	d3 := orient(a1, a2, b1)
	d4 := orient(a1, a2, b2)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) && ((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return segmentDistance(a1, b1, b2) <= Tolerance ||
		segmentDistance(a2, b1, b2) <= Tolerance ||
		segmentDistance(b1, a1, a2) <= Tolerance ||
		segmentDistance(b2, a1, a2) <= Tolerance
}

func orient(a, b, c Vec2) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// boundariesTouch reports whether any side of a touches any side of b.
func boundariesTouch(a, b Polygon) bool {
	for i := range a {
		a1, a2 := a.Segment(i)
		for j := range b {
			b1, b2 := b.Segment(j)
			if segmentsTouch(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

// strictlyInside reports whether inner lies in the interior of outer
// without touching its boundary.
func strictlyInside(inner, outer Polygon) bool {
	for _, v := range inner {
		if !outer.Contains(v) {
			return false
		}
	}
	return !boundariesTouch(inner, outer)
}

// disjoint reports whether two loops neither overlap nor touch.
func disjoint(a, b Polygon) bool {
	if boundariesTouch(a, b) {
		return false
	}
	return !a.Contains(b[0]) && !b.Contains(a[0])
}

// selfIntersects reports whether any two non-adjacent sides touch.
func (p Polygon) selfIntersects() bool {
	n := len(p)
	for i := 0; i < n; i++ {
		a1, a2 := p.Segment(i)
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			b1, b2 := p.Segment(j)
			if segmentsTouch(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}
