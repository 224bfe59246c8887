package geom

import "math"

// filletSegments is the number of straight pieces approximating a corner
// fillet arc in the profile.
const filletSegments = 8

// Op is one step of a construction pipeline.
type Op func(Solid) (Solid, error)

// Apply runs the ops in order, stopping at the first failure.
func Apply(s Solid, ops ...Op) (Solid, error) {
	for _, op := range ops {
		next, err := op(s)
		if err != nil {
			return Solid{}, err
		}
		s = next
	}
	return s, nil
}

// Chamfer bevels the selected edges by size.
func Chamfer(sel EdgeSelector, size float64) Op {
	return func(s Solid) (Solid, error) {
		return s.ChamferEdges(sel(s), size)
	}
}

// Fillet rounds the selected edges with the given radius.
func Fillet(sel EdgeSelector, radius float64) Op {
	return func(s Solid) (Solid, error) {
		return s.FilletEdges(sel(s), radius)
	}
}

// Drill cuts a through-hole of the given radius into the faces matching pred.
func Drill(pred FacePredicate, radius float64) Op {
	return func(s Solid) (Solid, error) {
		return s.CutHole(s.SelectFaces(pred), radius)
	}
}

// CutHole drills a cylinder through the whole solid, normal to the given cap
// faces. The axis passes through the sketch origin projected onto the face.
func (s Solid) CutHole(faces []Face, radius float64) (Solid, error) {
	if s.IsZero() {
		return Solid{}, infeasible("hole", "empty solid")
	}
	if len(faces) == 0 {
		return Solid{}, infeasible("hole", "no faces selected")
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return Solid{}, infeasible("hole", "invalid radius %g", radius)
	}
	targets := make([]string, 0, len(faces))
	for _, f := range faces {
		if f.Kind != FacePlanar || !nearlyEqual(math.Abs(f.Normal.Z), 1) {
			return Solid{}, unsupported("hole", "face %s is not normal to the extrusion axis", f.ID)
		}
		targets = append(targets, f.ID)
	}
	holes := append(s.Holes(), Hole{Radius: radius})
	if err := checkHoles(s.profile, holes); err != nil {
		return Solid{}, err
	}
	next := s.with(Feature{Op: "hole", Size: radius, Targets: targets})
	next.holes = holes
	return next, nil
}

func checkHoles(p Profile, holes []Hole) error {
	for k, h := range holes {
		c := p.clearance(h.Center)
		if c <= 0 {
			return infeasible("hole", "hole %d is centered outside the material", k)
		}
		if h.Radius >= c-Tolerance {
			return infeasible("hole", "radius %g does not fit, %g of material around the axis", h.Radius, c)
		}
		for j := 0; j < k; j++ {
			o := holes[j]
			if h.Center.Dist(o.Center) <= h.Radius+o.Radius+Tolerance {
				return infeasible("hole", "hole %d overlaps hole %d", k, j)
			}
		}
	}
	return nil
}

// ChamferEdges bevels the edges symmetrically by size.
func (s Solid) ChamferEdges(edges []Edge, size float64) (Solid, error) {
	return s.blend(BlendChamfer, edges, size)
}

// FilletEdges rounds the edges with the given radius.
func (s Solid) FilletEdges(edges []Edge, radius float64) (Solid, error) {
	return s.blend(BlendFillet, edges, radius)
}

// blend applies a chamfer or fillet. Vertical edges reshape the profile
// corners exactly; cap ring edges and hole rims are recorded as blends.
func (s Solid) blend(kind BlendKind, edges []Edge, size float64) (Solid, error) {
	op := string(kind)
	if s.IsZero() {
		return Solid{}, infeasible(op, "empty solid")
	}
	if len(edges) == 0 {
		return Solid{}, infeasible(op, "no edges selected")
	}
	if !(size > 0) || math.IsInf(size, 0) {
		return Solid{}, infeasible(op, "invalid size %g", size)
	}

	own := make(map[string]Edge)
	for _, e := range s.Edges() {
		own[e.ID] = e
	}
	corners := make(map[int][]int)
	var ring []Edge
	seen := make(map[string]bool)
	targets := make([]string, 0, len(edges))
	for _, e := range edges {
		cur, ok := own[e.ID]
		if !ok {
			return Solid{}, infeasible(op, "edge %s does not belong to this solid", e.ID)
		}
		if seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		targets = append(targets, e.ID)
		if cur.Blend != nil {
			return Solid{}, infeasible(op, "edge %s is already blended", e.ID)
		}
		if cur.class == edgeVertical {
			corners[cur.loop] = append(corners[cur.loop], cur.index)
		} else {
			ring = append(ring, cur)
		}
	}
	if len(corners) > 0 && len(ring) > 0 {
		return Solid{}, unsupported(op, "vertical and cap edges in one operation")
	}

	next := s.with(Feature{Op: op, Size: size, Targets: targets})
	if len(corners) > 0 {
		if len(s.blends) > 0 {
			return Solid{}, unsupported(op, "vertical edges after cap edge blends")
		}
		p, err := blendCorners(op, kind, s.profile, corners, size)
		if err != nil {
			return Solid{}, err
		}
		if err := checkHoles(p, s.holes); err != nil {
			return Solid{}, err
		}
		next.profile = p
		return next, nil
	}

	blends, err := s.blendRing(op, kind, ring, size)
	if err != nil {
		return Solid{}, err
	}
	next.blends = blends
	return next, nil
}

func blendCorners(op string, kind BlendKind, p Profile, corners map[int][]int, size float64) (Profile, error) {
	loops := p.loops()
	for li, idx := range corners {
		loop, err := blendLoop(op, kind, loops[li], idx, size)
		if err != nil {
			return Profile{}, err
		}
		p = p.withLoop(li, loop)
	}
	if p.outer.selfIntersects() {
		return Profile{}, infeasible(op, "size %g folds the outer boundary", size)
	}
	for i, c := range p.cavities {
		if c.selfIntersects() {
			return Profile{}, infeasible(op, "size %g folds cavity %d", size, i+1)
		}
		if !strictlyInside(c, p.outer) {
			return Profile{}, infeasible(op, "cavity %d no longer fits inside the outer boundary", i+1)
		}
		for j := 0; j < i; j++ {
			if !disjoint(c, p.cavities[j]) {
				return Profile{}, infeasible(op, "cavities %d and %d meet", j+1, i+1)
			}
		}
	}
	return p, nil
}

// blendLoop replaces each selected vertex with a bevel (chamfer) or an arc
// tangent to both sides (fillet).
func blendLoop(op string, kind BlendKind, loop Polygon, indices []int, size float64) (Polygon, error) {
	n := len(loop)
	selected := make([]bool, n)
	for _, i := range indices {
		selected[i] = true
	}
	setback := make([]float64, n)
	for i := range loop {
		if !selected[i] {
			continue
		}
		a, b := cornerDirs(loop, i)
		theta := math.Acos(clamp(a.Dot(b), -1, 1))
		if theta < 1e-6 || math.Pi-theta < 1e-6 {
			return nil, infeasible(op, "vertex %d is not a corner", i)
		}
		if kind == BlendChamfer {
			setback[i] = size
		} else {
			setback[i] = size / math.Tan(theta/2)
		}
	}
	for i := range loop {
		j := (i + 1) % n
		if setback[i] == 0 && setback[j] == 0 {
			continue
		}
		a, b := loop.Segment(i)
		if l := a.Dist(b); setback[i]+setback[j] >= l-Tolerance {
			return nil, infeasible(op, "size %g does not fit on a side of length %g", size, l)
		}
	}

	out := make(Polygon, 0, n+len(indices)*filletSegments)
	for i, v := range loop {
		if !selected[i] {
			out = append(out, v)
			continue
		}
		a, b := cornerDirs(loop, i)
		p1 := v.Add(a.Scale(setback[i]))
		p2 := v.Add(b.Scale(setback[i]))
		if kind == BlendChamfer {
			out = append(out, p1, p2)
			continue
		}
		out = append(out, filletArc(v, a, b, p1, p2, size)...)
	}
	return out, nil
}

// cornerDirs returns unit vectors from vertex i toward its previous and
// next neighbours.
func cornerDirs(loop Polygon, i int) (Vec2, Vec2) {
	n := len(loop)
	v := loop[i]
	return loop[(i-1+n)%n].Sub(v).Unit(), loop[(i+1)%n].Sub(v).Unit()
}

func filletArc(v, a, b, p1, p2 Vec2, r float64) []Vec2 {
	half := math.Acos(clamp(a.Dot(b), -1, 1)) / 2
	c := v.Add(a.Add(b).Unit().Scale(r / math.Sin(half)))
	start := math.Atan2(p1.Y-c.Y, p1.X-c.X)
	sweep := math.Atan2(p2.Y-c.Y, p2.X-c.X) - start
	for sweep > math.Pi {
		sweep -= 2 * math.Pi
	}
	for sweep < -math.Pi {
		sweep += 2 * math.Pi
	}
	pts := make([]Vec2, filletSegments+1)
	for k := range pts {
		t := start + sweep*float64(k)/filletSegments
		pts[k] = Vec2{c.X + r*math.Cos(t), c.Y + r*math.Sin(t)}
	}
	pts[0], pts[filletSegments] = p1, p2
	return pts
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// blendRing validates cap ring and rim blends: each must leave material on
// both adjacent faces, and the top and bottom blends must not meet.
func (s Solid) blendRing(op string, kind BlendKind, ring []Edge, size float64) (map[string]Blend, error) {
	h := s.Height()
	if size >= h-Tolerance {
		return nil, infeasible(op, "size %g exceeds the height %g", size, h)
	}
	blends := s.Blends()
	for _, e := range ring {
		if t := s.thickness(e); 2*size >= t-Tolerance {
			return nil, infeasible(op, "size %g exceeds the material behind edge %s (%g)", size, e.ID, t/2)
		}
		blends[e.ID] = Blend{Kind: kind, Size: size}
	}
	var top, bottom float64
	for _, e := range s.Edges() {
		b, ok := blends[e.ID]
		if !ok {
			continue
		}
		switch e.class {
		case edgeTop, edgeBoreTop:
			top = math.Max(top, b.Size)
		default:
			bottom = math.Max(bottom, b.Size)
		}
	}
	if top+bottom >= h-Tolerance {
		return nil, infeasible(op, "top and bottom blends (%g, %g) meet across the height %g", top, bottom, h)
	}
	return blends, nil
}

// thickness is the material depth behind a ring edge in the cap plane: for
// side edges the distance from the side midpoint along the inward normal to
// the next boundary, for hole rims the radial wall to the nearest boundary.
func (s Solid) thickness(e Edge) float64 {
	if e.class == edgeBoreTop || e.class == edgeBoreBottom {
		h := s.holes[e.index]
		t := s.profile.clearance(h.Center) - h.Radius
		for k, o := range s.holes {
			if k != e.index {
				t = math.Min(t, h.Center.Dist(o.Center)-h.Radius-o.Radius)
			}
		}
		return t
	}
	loops := s.profile.loops()
	a, b := loops[e.loop].Segment(e.index)
	d := b.Sub(a)
	origin := a.Add(b).Scale(0.5)
	dir := Vec2{-d.Y, d.X}.Unit()

	t := math.Inf(1)
	for li, loop := range loops {
		for j := range loop {
			if li == e.loop && j == e.index {
				continue
			}
			p, q := loop.Segment(j)
			if hit, ok := raySegment(origin, dir, p, q); ok {
				t = math.Min(t, hit)
			}
		}
	}
	for _, h := range s.holes {
		if hit, ok := rayCircle(origin, dir, h.Center, h.Radius); ok {
			t = math.Min(t, hit)
		}
	}
	return t
}

func raySegment(o, dir, p, q Vec2) (float64, bool) {
	seg := q.Sub(p)
	den := dir.Cross(seg)
	if math.Abs(den) < Tolerance {
		return 0, false
	}
	w := p.Sub(o)
	t := w.Cross(seg) / den
	u := w.Cross(dir) / den
	if t <= Tolerance || u < -Tolerance || u > 1+Tolerance {
		return 0, false
	}
	return t, true
}

func rayCircle(o, dir, c Vec2, r float64) (float64, bool) {
	m := o.Sub(c)
	b := m.Dot(dir)
	disc := b*b - (m.Dot(m) - r*r)
	if disc < 0 {
		return 0, false
	}
	t := -b - math.Sqrt(disc)
	if t <= Tolerance {
		return 0, false
	}
	return t, true
}
