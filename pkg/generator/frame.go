package generator

import (
	"github.com/aretw0/extrude/pkg/domain"
	"github.com/aretw0/extrude/pkg/geom"
	"github.com/aretw0/extrude/pkg/schema"
)

// DefaultWallThickness is the frame wall thickness when none is given.
const DefaultWallThickness = 2.0

// Frame dimension names.
const (
	DimOuterWidth  = "outer_width"
	DimOuterHeight = "outer_height"
	DimInnerWidth  = "inner_width"
	DimInnerHeight = "inner_height"
	DimLength      = "length"
)

// FrameConfig holds the resolved frame parameters.
type FrameConfig struct {
	ExtrusionLength float64 `mapstructure:"extrusion_length" json:"extrusion_length" yaml:"extrusion_length"`
	ProfileScale    float64 `mapstructure:"profile_scale" json:"profile_scale" yaml:"profile_scale"`
	WallThickness   float64 `mapstructure:"wall_thickness" json:"wall_thickness" yaml:"wall_thickness"`
}

// DefaultFrameConfig returns the frame defaults.
func DefaultFrameConfig() FrameConfig {
	return FrameConfig{
		ExtrusionLength: DefaultExtrusionLength,
		ProfileScale:    DefaultProfileScale,
		WallThickness:   DefaultWallThickness,
	}
}

// Dimensions derives the square tube section.
func (c FrameConfig) Dimensions() Dimensions {
	outer := 40 * c.ProfileScale
	inner := outer - 2*c.WallThickness
	return Dimensions{
		DimOuterWidth:  outer,
		DimOuterHeight: outer,
		DimInnerWidth:  inner,
		DimInnerHeight: inner,
		DimLength:      c.ExtrusionLength,
	}
}

// BuildFrame extrudes the outer rectangle minus the inner cavity from Z=0 to
// Z=length.
func BuildFrame(c FrameConfig) (geom.Solid, error) {
	d := c.Dimensions()
	p, err := geom.RectProfile(d[DimOuterWidth], d[DimOuterHeight])
	if err != nil {
		return geom.Solid{}, err
	}
	p, err = p.CutRect(d[DimInnerWidth], d[DimInnerHeight])
	if err != nil {
		return geom.Solid{}, err
	}
	return geom.Extrude(p, d[DimLength])
}

var frameParams = []schema.Param{
	{Name: ParamExtrusionLength, Default: DefaultExtrusionLength, Description: "Length of the extrusion along Z"},
	{Name: ParamProfileScale, Default: DefaultProfileScale, Description: "Scale factor applied to the 40 x 40 section"},
	{Name: ParamWallThickness, Default: DefaultWallThickness, Description: "Wall thickness of the tube"},
}

// Frame is an extruded aluminum frame profile: a hollow square tube.
type Frame struct{}

func (Frame) Name() string { return "frame" }

func (Frame) Description() string {
	return "Extruded aluminum frame profile (hollow square tube)"
}

func (Frame) Params() []schema.Param {
	return append([]schema.Param(nil), frameParams...)
}

// Generate resolves the context and builds the frame.
func (f Frame) Generate(ctx domain.Context) (Output, error) {
	var cfg FrameConfig
	params, err := resolve(frameParams, ctx, &cfg)
	if err != nil {
		return Output{}, err
	}
	solid, err := BuildFrame(cfg)
	if err != nil {
		return Output{}, err
	}
	return publish(f.Name(), params, cfg.Dimensions(), solid), nil
}
