package geom

import "math"

// Tolerance is the absolute/relative slack used by geometric comparisons.
const Tolerance = 1e-9

// Vec2 is a point or direction in the sketch plane (XY).
type Vec2 struct {
	X, Y float64
}

func (a Vec2) Add(b Vec2) Vec2       { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2       { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Scale(k float64) Vec2  { return Vec2{a.X * k, a.Y * k} }
func (a Vec2) Dot(b Vec2) float64    { return a.X*b.X + a.Y*b.Y }
func (a Vec2) Cross(b Vec2) float64  { return a.X*b.Y - a.Y*b.X }
func (a Vec2) Len() float64          { return math.Hypot(a.X, a.Y) }
func (a Vec2) At(z float64) Vec3     { return Vec3{a.X, a.Y, z} }
func (a Vec2) Dist(b Vec2) float64   { return a.Sub(b).Len() }

// Unit returns a normalized copy, or the zero vector for a zero input.
func (a Vec2) Unit() Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}

// Vec3 is a point or direction in model space.
type Vec3 struct {
	X, Y, Z float64
}

func (a Vec3) Add(b Vec3) Vec3      { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3      { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) Scale(k float64) Vec3 { return Vec3{a.X * k, a.Y * k, a.Z * k} }
func (a Vec3) Dot(b Vec3) float64   { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }
func (a Vec3) Len() float64         { return math.Sqrt(a.Dot(a)) }

// Unit returns a normalized copy, or the zero vector for a zero input.
func (a Vec3) Unit() Vec3 {
	l := a.Len()
	if l == 0 {
		return Vec3{}
	}
	return a.Scale(1 / l)
}

// Axis names one of the model coordinate axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "unknown"
	}
}

// Dir returns the positive unit direction of the axis.
func (a Axis) Dir() Vec3 {
	switch a {
	case AxisX:
		return Vec3{X: 1}
	case AxisY:
		return Vec3{Y: 1}
	default:
		return Vec3{Z: 1}
	}
}

// Of returns the component of v along the axis.
func (a Axis) Of(v Vec3) float64 {
	return v.Dot(a.Dir())
}

func nearlyEqual(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= Tolerance*scale
}
