package generator

import (
	"github.com/aretw0/extrude/pkg/domain"
	"github.com/aretw0/extrude/pkg/geom"
	"github.com/aretw0/extrude/pkg/schema"
	"github.com/mitchellh/mapstructure"
)

// Parameter names recognized in an execution context.
const (
	ParamExtrusionLength  = "extrusion_length"
	ParamProfileScale     = "profile_scale"
	ParamWallThickness    = "wall_thickness"
	ParamDegradationState = "degradation_state"
)

// Shared defaults.
const (
	DefaultExtrusionLength = 150.0
	DefaultProfileScale    = 1.0
)

// Dimensions are the derived scalars of one run, keyed by name.
type Dimensions map[string]float64

// Output is what a unit publishes: the solid bound to Slot, plus the inputs
// and dimensions it was built from.
type Output struct {
	Unit       string
	Slot       string
	Params     map[string]float64
	Dimensions Dimensions
	Solid      geom.Solid
}

// Generator is a parametric unit.
type Generator interface {
	Name() string
	Description() string
	Params() []schema.Param
	Generate(ctx domain.Context) (Output, error)
}

// All returns one instance of every built-in unit.
func All() []Generator {
	return []Generator{Frame{}, Rail{}, Track{}}
}

// resolve fills out (a config struct with mapstructure tags) from the
// context, falling back to each parameter's default. It returns the
// resolved values keyed by parameter name.
func resolve(params []schema.Param, in domain.Context, out any) (map[string]float64, error) {
	if err := schema.ValidateParams(params, in); err != nil {
		return nil, err
	}

	merged := domain.Context(schema.Defaults(params)).Merge(in)
	values := make(map[string]float64, len(params))
	for _, p := range params {
		f, err := schema.ToFloat(merged[p.Name])
		if err != nil {
			return nil, err
		}
		values[p.Name] = f
	}

	if err := mapstructure.Decode(values, out); err != nil {
		return nil, err
	}
	return values, nil
}

func publish(unit string, params map[string]float64, dims Dimensions, solid geom.Solid) Output {
	return Output{
		Unit:       unit,
		Slot:       domain.ResultSlot,
		Params:     params,
		Dimensions: dims,
		Solid:      solid,
	}
}
