package generator

import (
	"math"

	"github.com/aretw0/extrude/pkg/domain"
	"github.com/aretw0/extrude/pkg/geom"
	"github.com/aretw0/extrude/pkg/schema"
)

// DefaultDegradationState leaves the rail unworn.
const DefaultDegradationState = 0.0

// Rail dimension names.
const (
	DimWebThickness = "web_thickness"
	DimChamfer      = "chamfer"
	DimWear         = "wear"
)

// RailConfig holds the resolved rail parameters.
type RailConfig struct {
	ExtrusionLength  float64 `mapstructure:"extrusion_length" json:"extrusion_length" yaml:"extrusion_length"`
	ProfileScale     float64 `mapstructure:"profile_scale" json:"profile_scale" yaml:"profile_scale"`
	DegradationState float64 `mapstructure:"degradation_state" json:"degradation_state" yaml:"degradation_state"`
}

// DefaultRailConfig returns the rail defaults.
func DefaultRailConfig() RailConfig {
	return RailConfig{
		ExtrusionLength:  DefaultExtrusionLength,
		ProfileScale:     DefaultProfileScale,
		DegradationState: DefaultDegradationState,
	}
}

// Dimensions derives the rail section. The web thickness is reported but no
// construction step consumes it.
func (c RailConfig) Dimensions() Dimensions {
	s := c.ProfileScale
	return Dimensions{
		DimWidth:        50 * s,
		DimHeight:       80 * s,
		DimWebThickness: 10 * s,
		DimChamfer:      5 * s,
		DimWear:         math.Min(15*s, c.DegradationState*2),
		DimLength:       c.ExtrusionLength,
	}
}

// Worn reports whether the wear fillet is applied.
func (c RailConfig) Worn() bool {
	return c.DegradationState > 0
}

// BuildRail chamfers the vertical edges of a centered box and, when worn,
// fillets the edges at the top of the rail.
func BuildRail(c RailConfig) (geom.Solid, error) {
	d := c.Dimensions()
	box, err := geom.Box(d[DimWidth], d[DimHeight], d[DimLength])
	if err != nil {
		return geom.Solid{}, err
	}
	ops := []geom.Op{geom.Chamfer(geom.Where(geom.ParallelTo(geom.AxisZ)), d[DimChamfer])}
	if c.Worn() {
		ops = append(ops, geom.Fillet(geom.AtMax(geom.AxisZ), d[DimWear]))
	}
	return geom.Apply(box, ops...)
}

var railParams = []schema.Param{
	{Name: ParamExtrusionLength, Default: DefaultExtrusionLength, Description: "Length of the rail along Z"},
	{Name: ParamProfileScale, Default: DefaultProfileScale, Description: "Scale factor applied to the 50 x 80 section"},
	{Name: ParamDegradationState, Default: DefaultDegradationState, Description: "Wear level; above 0 the top edges are filleted by min(15 x scale, 2 x level)"},
}

// Rail is an I-beam rail body with an optional wear deformation.
type Rail struct{}

func (Rail) Name() string { return "rail" }

func (Rail) Description() string {
	return "I-beam rail body (chamfered box) with optional wear fillet on the top face"
}

func (Rail) Params() []schema.Param {
	return append([]schema.Param(nil), railParams...)
}

func (r Rail) Generate(ctx domain.Context) (Output, error) {
	var cfg RailConfig
	params, err := resolve(railParams, ctx, &cfg)
	if err != nil {
		return Output{}, err
	}
	solid, err := BuildRail(cfg)
	if err != nil {
		return Output{}, err
	}
	return publish(r.Name(), params, cfg.Dimensions(), solid), nil
}
