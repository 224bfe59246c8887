package geom

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Hole is a cylindrical through-hole parallel to the extrusion axis.
type Hole struct {
	Center Vec2
	Radius float64
}

// BlendKind distinguishes the two edge blends.
type BlendKind string

const (
	BlendChamfer BlendKind = "chamfer"
	BlendFillet  BlendKind = "fillet"
)

// Blend records a chamfer or fillet applied along an edge.
type Blend struct {
	Kind BlendKind
	Size float64
}

// removal is the cross-section area of material removed per unit edge length.
func (b Blend) removal() float64 {
	if b.Kind == BlendChamfer {
		return b.Size * b.Size / 2
	}
	return (1 - math.Pi/4) * b.Size * b.Size
}

// Feature is one entry of a solid's construction history.
type Feature struct {
	Op      string
	Size    float64
	Targets []string
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max Vec3
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Solid is an immutable prismatic solid: a Profile swept from Z0 to Z1,
// with through-holes and edge blends.
type Solid struct {
	profile Profile
	z0, z1  float64
	holes   []Hole
	blends  map[string]Blend // ring edge ID -> blend
	history []Feature
}

// Extrude sweeps the profile along +Z by length. A negative length sweeps
// along -Z; zero fails.
func Extrude(p Profile, length float64) (Solid, error) {
	if len(p.outer) == 0 {
		return Solid{}, infeasible("extrude", "empty profile")
	}
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return Solid{}, infeasible("extrude", "invalid length %g", length)
	}
	z0, z1 := 0.0, length
	if length < 0 {
		z0, z1 = length, 0
	}
	return Solid{
		profile: p,
		z0:      z0,
		z1:      z1,
		history: []Feature{{Op: "extrude", Size: length}},
	}, nil
}

// Box is a w x h x l block centered on the origin, l along Z.
func Box(w, h, l float64) (Solid, error) {
	if !(w > 0) || !(h > 0) || !(l > 0) || math.IsInf(l, 0) {
		return Solid{}, infeasible("box", "non-positive dimensions %g x %g x %g", w, h, l)
	}
	p, err := RectProfile(w, h)
	if err != nil {
		return Solid{}, err
	}
	return Solid{
		profile: p,
		z0:      -l / 2,
		z1:      l / 2,
		history: []Feature{{Op: "box", Size: l}},
	}, nil
}

// IsZero reports whether s is the zero value (never constructed).
func (s Solid) IsZero() bool {
	return len(s.profile.outer) == 0
}

// Profile returns the current cross-section (blended corners included).
func (s Solid) Profile() Profile {
	return Profile{outer: s.profile.Outer(), cavities: s.profile.Cavities()}
}

// Holes returns the through-holes.
func (s Solid) Holes() []Hole {
	out := make([]Hole, len(s.holes))
	copy(out, s.holes)
	return out
}

// Blends returns the ring edge blends keyed by edge ID.
func (s Solid) Blends() map[string]Blend {
	out := make(map[string]Blend, len(s.blends))
	for k, v := range s.blends {
		out[k] = v
	}
	return out
}

// Features returns the construction history, oldest first.
func (s Solid) Features() []Feature {
	out := make([]Feature, len(s.history))
	for i, f := range s.history {
		f.Targets = append([]string(nil), f.Targets...)
		out[i] = f
	}
	return out
}

// Height is the extent along the extrusion axis.
func (s Solid) Height() float64 {
	return s.z1 - s.z0
}

// Bounds returns the bounding box.
func (s Solid) Bounds() Bounds {
	min, max := s.profile.outer.Bounds()
	return Bounds{Min: min.At(s.z0), Max: max.At(s.z1)}
}

// CrossSectionArea is the material area of a cut normal to Z, away from
// blended cap edges.
func (s Solid) CrossSectionArea() float64 {
	a := s.profile.Area()
	for _, h := range s.holes {
		a -= math.Pi * h.Radius * h.Radius
	}
	return a
}

// Volume is exact for the prism and its holes. Ring edge blends subtract
// their blend cross-section times edge length, ignoring corner overlap.
func (s Solid) Volume() float64 {
	v := s.CrossSectionArea() * s.Height()
	if len(s.blends) == 0 {
		return v
	}
	lengths := make(map[string]float64)
	for _, e := range s.Edges() {
		lengths[e.ID] = e.Length()
	}
	for id, b := range s.blends {
		v -= b.removal() * lengths[id]
	}
	return v
}

// Fingerprint is a stable digest of the geometry. Equal solids have equal
// fingerprints; construction history does not participate.
func (s Solid) Fingerprint() string {
	var sb strings.Builder
	writeLoop := func(tag string, p Polygon) {
		sb.WriteString(tag)
		for _, v := range p {
			fmt.Fprintf(&sb, " %.9g,%.9g", v.X, v.Y)
		}
		sb.WriteByte('\n')
	}
	writeLoop("outer", s.profile.outer)
	for _, c := range s.profile.cavities {
		writeLoop("cavity", c)
	}
	fmt.Fprintf(&sb, "z %.9g %.9g\n", s.z0, s.z1)
	for _, h := range s.holes {
		fmt.Fprintf(&sb, "hole %.9g,%.9g r%.9g\n", h.Center.X, h.Center.Y, h.Radius)
	}
	ids := make([]string, 0, len(s.blends))
	for id := range s.blends {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		b := s.blends[id]
		fmt.Fprintf(&sb, "blend %s %s %.9g\n", id, b.Kind, b.Size)
	}
	sum := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(sum[:])
}

// Equal reports whether two solids describe the same geometry.
func (s Solid) Equal(o Solid) bool {
	return s.Fingerprint() == o.Fingerprint()
}

func (s Solid) with(f Feature) Solid {
	next := s
	next.history = make([]Feature, 0, len(s.history)+1)
	next.history = append(next.history, s.history...)
	next.history = append(next.history, f)
	return next
}
