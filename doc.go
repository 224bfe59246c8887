/*
Package extrude generates parametric extrusion bodies: an aluminum frame
tube, a polymer track and an I-beam rail with optional wear.

Each generator unit reads numeric parameters from an execution context,
derives its dimensions, builds a solid through an immutable geometry
pipeline (package geom) and publishes it under the "result" slot. The
Engine in this package runs units, wraps their output into a domain.Result
and stores it in a pluggable ResultStore (memory, file or Redis).

# Key Features

  - Deterministic: identical contexts yield identical solids and fingerprints.
  - Hexagonal Architecture: units and geometry are decoupled from storage and transports (CLI, HTTP, MCP).
  - Typed failures: geom.ErrInfeasible for geometry the parameters cannot realize, schema validation errors for non-numeric parameters.

# Usage

	eng := extrude.New()

	res, err := eng.Generate(ctx, "rail", domain.Context{
		"profile_scale":     1.0,
		"degradation_state": 10,
	})
	if errors.Is(err, geom.ErrInfeasible) {
		// the parameters describe a shape that cannot exist
	}
	fmt.Println(res.Solid.Size, res.Solid.Fingerprint)

Use Build to run a unit without publishing, e.g. to inspect the geom.Solid
directly.
*/
package extrude
