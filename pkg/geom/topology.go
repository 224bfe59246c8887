package geom

import (
	"fmt"
	"math"
	"sort"
)

// Cap face IDs.
const (
	FaceTop    = "top"
	FaceBottom = "bottom"
)

// FaceKind classifies a face's surface.
type FaceKind string

const (
	FacePlanar      FaceKind = "planar"
	FaceCylindrical FaceKind = "cylindrical"
	FaceBlend       FaceKind = "blend"
)

// Face is a bounded surface of a solid.
type Face struct {
	ID     string
	Kind   FaceKind
	Normal Vec3 // outward unit normal; zero for non-planar faces
	Center Vec3
	Area   float64
}

// EdgeKind classifies an edge's curve.
type EdgeKind string

const (
	EdgeLine   EdgeKind = "line"
	EdgeCircle EdgeKind = "circle"
)

type edgeClass int

const (
	edgeVertical edgeClass = iota
	edgeTop
	edgeBottom
	edgeBoreTop
	edgeBoreBottom
)

// Edge is the curve where two faces meet.
type Edge struct {
	ID     string
	Kind   EdgeKind
	Start  Vec3 // for circles Start == End, the seam point
	End    Vec3
	Center Vec3 // midpoint of a line, center of a circle
	Radius float64
	Faces  [2]string
	Blend  *Blend // set once the edge has been chamfered or filleted

	class edgeClass
	loop  int
	index int
}

// Direction is the unit tangent of a line edge; zero for circles.
func (e Edge) Direction() Vec3 {
	if e.Kind != EdgeLine {
		return Vec3{}
	}
	return e.End.Sub(e.Start).Unit()
}

// Length is the curve length.
func (e Edge) Length() float64 {
	if e.Kind == EdgeCircle {
		return 2 * math.Pi * e.Radius
	}
	return e.End.Sub(e.Start).Len()
}

// Bounds reports whether the edge lies on the boundary of the face.
func (e Edge) Bounds(faceID string) bool {
	return e.Faces[0] == faceID || e.Faces[1] == faceID
}

func loopName(i int) string {
	if i == 0 {
		return "outer"
	}
	return fmt.Sprintf("cavity%d", i)
}

func sideID(loop, i int) string {
	return fmt.Sprintf("%s/side%d", loopName(loop), i)
}

func boreID(k int) string {
	return fmt.Sprintf("bore%d", k)
}

// Edges derives the edge list: per loop the vertical edges, then the top
// and bottom rings; then the rims of each hole.
func (s Solid) Edges() []Edge {
	if s.IsZero() {
		return nil
	}
	var edges []Edge
	for li, loop := range s.profile.loops() {
		n := len(loop)
		name := loopName(li)
		for i, v := range loop {
			start, end := v.At(s.z0), v.At(s.z1)
			edges = append(edges, Edge{
				ID:     fmt.Sprintf("%s/v%d", name, i),
				Kind:   EdgeLine,
				Start:  start,
				End:    end,
				Center: start.Add(end).Scale(0.5),
				Faces:  [2]string{sideID(li, (i-1+n)%n), sideID(li, i)},
				class:  edgeVertical,
				loop:   li,
				index:  i,
			})
		}
		for i := range loop {
			a, b := loop.Segment(i)
			edges = append(edges, Edge{
				ID:     fmt.Sprintf("%s/top%d", name, i),
				Kind:   EdgeLine,
				Start:  a.At(s.z1),
				End:    b.At(s.z1),
				Center: a.Add(b).Scale(0.5).At(s.z1),
				Faces:  [2]string{FaceTop, sideID(li, i)},
				class:  edgeTop,
				loop:   li,
				index:  i,
			}, Edge{
				ID:     fmt.Sprintf("%s/bottom%d", name, i),
				Kind:   EdgeLine,
				Start:  a.At(s.z0),
				End:    b.At(s.z0),
				Center: a.Add(b).Scale(0.5).At(s.z0),
				Faces:  [2]string{FaceBottom, sideID(li, i)},
				class:  edgeBottom,
				loop:   li,
				index:  i,
			})
		}
	}
	for k, h := range s.holes {
		seam := h.Center.Add(Vec2{X: h.Radius})
		edges = append(edges, Edge{
			ID:     boreID(k) + "/top",
			Kind:   EdgeCircle,
			Start:  seam.At(s.z1),
			End:    seam.At(s.z1),
			Center: h.Center.At(s.z1),
			Radius: h.Radius,
			Faces:  [2]string{FaceTop, boreID(k)},
			class:  edgeBoreTop,
			index:  k,
		}, Edge{
			ID:     boreID(k) + "/bottom",
			Kind:   EdgeCircle,
			Start:  seam.At(s.z0),
			End:    seam.At(s.z0),
			Center: h.Center.At(s.z0),
			Radius: h.Radius,
			Faces:  [2]string{FaceBottom, boreID(k)},
			class:  edgeBoreBottom,
			index:  k,
		})
	}
	for i := range edges {
		if b, ok := s.blends[edges[i].ID]; ok {
			edges[i].Blend = &b
		}
	}
	return edges
}

// Faces derives the face list: caps, side faces per loop, hole bores and
// blend faces.
func (s Solid) Faces() []Face {
	if s.IsZero() {
		return nil
	}
	min, max := s.profile.outer.Bounds()
	mid := min.Add(max).Scale(0.5)
	area := s.CrossSectionArea()
	h := s.Height()
	zm := (s.z0 + s.z1) / 2

	faces := []Face{
		{ID: FaceTop, Kind: FacePlanar, Normal: Vec3{Z: 1}, Center: mid.At(s.z1), Area: area},
		{ID: FaceBottom, Kind: FacePlanar, Normal: Vec3{Z: -1}, Center: mid.At(s.z0), Area: area},
	}
	for li, loop := range s.profile.loops() {
		for i := range loop {
			a, b := loop.Segment(i)
			d := b.Sub(a)
			n := Vec2{d.Y, -d.X}.Unit()
			faces = append(faces, Face{
				ID:     sideID(li, i),
				Kind:   FacePlanar,
				Normal: Vec3{X: n.X, Y: n.Y},
				Center: a.Add(b).Scale(0.5).At(zm),
				Area:   d.Len() * h,
			})
		}
	}
	for k, hole := range s.holes {
		faces = append(faces, Face{
			ID:     boreID(k),
			Kind:   FaceCylindrical,
			Center: hole.Center.At(zm),
			Area:   2 * math.Pi * hole.Radius * h,
		})
	}
	if len(s.blends) > 0 {
		edges := s.Edges()
		sort.Slice(edges, func(i, j int) bool { return edges[i].ID < edges[j].ID })
		for _, e := range edges {
			if e.Blend == nil {
				continue
			}
			width := e.Blend.Size * math.Sqrt2
			if e.Blend.Kind == BlendFillet {
				width = e.Blend.Size * math.Pi / 2
			}
			faces = append(faces, Face{
				ID:     "blend:" + e.ID,
				Kind:   FaceBlend,
				Center: e.Center,
				Area:   width * e.Length(),
			})
		}
	}
	return faces
}

// EdgePredicate decides whether an edge is selected.
type EdgePredicate func(Edge) bool

// FacePredicate decides whether a face is selected.
type FacePredicate func(Face) bool

// SelectEdges returns the edges matching pred, in derivation order.
func (s Solid) SelectEdges(pred EdgePredicate) []Edge {
	var out []Edge
	for _, e := range s.Edges() {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// SelectFaces returns the faces matching pred, in derivation order.
func (s Solid) SelectFaces(pred FacePredicate) []Face {
	var out []Face
	for _, f := range s.Faces() {
		if pred(f) {
			out = append(out, f)
		}
	}
	return out
}

// ParallelTo selects straight edges parallel to the axis.
func ParallelTo(a Axis) EdgePredicate {
	return func(e Edge) bool {
		if e.Kind != EdgeLine {
			return false
		}
		return nearlyEqual(math.Abs(e.Direction().Dot(a.Dir())), 1)
	}
}

// OnPlane selects edges lying entirely in the plane where the axis
// coordinate equals v.
func OnPlane(a Axis, v float64) EdgePredicate {
	return func(e Edge) bool {
		return nearlyEqual(a.Of(e.Start), v) && nearlyEqual(a.Of(e.End), v) && nearlyEqual(a.Of(e.Center), v)
	}
}

// BoundaryOf selects edges bounding any of the given faces.
func BoundaryOf(faces ...Face) EdgePredicate {
	return func(e Edge) bool {
		for _, f := range faces {
			if e.Bounds(f.ID) {
				return true
			}
		}
		return false
	}
}

// AllOf selects edges matching every predicate.
func AllOf(preds ...EdgePredicate) EdgePredicate {
	return func(e Edge) bool {
		for _, p := range preds {
			if !p(e) {
				return false
			}
		}
		return true
	}
}

// Not inverts an edge predicate.
func Not(pred EdgePredicate) EdgePredicate {
	return func(e Edge) bool { return !pred(e) }
}

// FacingAlong selects planar faces whose outward normal points along +axis.
func FacingAlong(a Axis) FacePredicate {
	return func(f Face) bool {
		return f.Kind == FacePlanar && nearlyEqual(f.Normal.Dot(a.Dir()), 1)
	}
}

// FacingAgainst selects planar faces whose outward normal points along -axis.
func FacingAgainst(a Axis) FacePredicate {
	return func(f Face) bool {
		return f.Kind == FacePlanar && nearlyEqual(f.Normal.Dot(a.Dir()), -1)
	}
}

// EdgeSelector resolves a set of edges against a specific solid.
type EdgeSelector func(Solid) []Edge

// Where selects the edges matching pred.
func Where(pred EdgePredicate) EdgeSelector {
	return func(s Solid) []Edge {
		return s.SelectEdges(pred)
	}
}

// OfFaces selects the boundary edges of the faces matching pred.
func OfFaces(pred FacePredicate) EdgeSelector {
	return func(s Solid) []Edge {
		faces := s.SelectFaces(pred)
		if len(faces) == 0 {
			return nil
		}
		return s.SelectEdges(BoundaryOf(faces...))
	}
}

// AtMax selects the edges lying entirely at the solid's largest coordinate
// along the axis.
func AtMax(a Axis) EdgeSelector {
	return func(s Solid) []Edge {
		if s.IsZero() {
			return nil
		}
		b := s.Bounds()
		return s.SelectEdges(OnPlane(a, a.Of(b.Max)))
	}
}

// AtMin selects the edges lying entirely at the solid's smallest coordinate
// along the axis.
func AtMin(a Axis) EdgeSelector {
	return func(s Solid) []Edge {
		if s.IsZero() {
			return nil
		}
		b := s.Bounds()
		return s.SelectEdges(OnPlane(a, a.Of(b.Min)))
	}
}
