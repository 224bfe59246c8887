/*
Package geom is the geometry collaborator used by the shape generators.

It models prismatic solids: a planar Profile (one outer loop plus cavity loops)
swept along +Z, optionally pierced by cylindrical through-holes and with edge
blends (chamfers and fillets) applied. Every construction step takes a Solid
value and returns a new one; a Solid is never mutated after it is built.

# Selection

Faces and edges are selected with predicate functions over the derived
topology rather than selector strings:

	top := solid.SelectFaces(geom.FacingAlong(geom.AxisZ))
	vertical := solid.SelectEdges(geom.ParallelTo(geom.AxisZ))

# Pipelines

Steps can be chained with Apply, which stops at the first failure:

	box, err := geom.Box(50, 80, 150)
	if err != nil {
		return err
	}
	rail, err := geom.Apply(box,
		geom.Chamfer(geom.Where(geom.ParallelTo(geom.AxisZ)), 5),
		geom.Fillet(geom.OfFaces(geom.FacingAlong(geom.AxisZ)), 15),
	)

Requests that cannot be realized (non-positive dimensions, cavities that do not
fit, blends larger than the available material) fail with an *Error wrapping
ErrInfeasible. No operation validates or corrects its inputs beyond that.
*/
package geom
