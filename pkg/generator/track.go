package generator

import (
	"github.com/aretw0/extrude/pkg/domain"
	"github.com/aretw0/extrude/pkg/geom"
	"github.com/aretw0/extrude/pkg/schema"
)

// Track and rail dimension names.
const (
	DimWidth      = "width"
	DimHeight     = "height"
	DimHoleRadius = "hole_radius"
)

// TrackConfig holds the resolved track parameters.
type TrackConfig struct {
	ExtrusionLength float64 `mapstructure:"extrusion_length" json:"extrusion_length" yaml:"extrusion_length"`
	ProfileScale    float64 `mapstructure:"profile_scale" json:"profile_scale" yaml:"profile_scale"`
}

// DefaultTrackConfig returns the track defaults.
func DefaultTrackConfig() TrackConfig {
	return TrackConfig{
		ExtrusionLength: DefaultExtrusionLength,
		ProfileScale:    DefaultProfileScale,
	}
}

func (c TrackConfig) Dimensions() Dimensions {
	return Dimensions{
		DimWidth:      30 * c.ProfileScale,
		DimHeight:     15 * c.ProfileScale,
		DimHoleRadius: 5 * c.ProfileScale,
		DimLength:     c.ExtrusionLength,
	}
}

// BuildTrack cuts a through hole into the top face of a centered box.
func BuildTrack(c TrackConfig) (geom.Solid, error) {
	d := c.Dimensions()
	box, err := geom.Box(d[DimWidth], d[DimHeight], d[DimLength])
	if err != nil {
		return geom.Solid{}, err
	}
	return geom.Apply(box, geom.Drill(geom.FacingAlong(geom.AxisZ), d[DimHoleRadius]))
}

var trackParams = []schema.Param{
	{Name: ParamExtrusionLength, Default: DefaultExtrusionLength, Description: "Length of the body along Z"},
	{Name: ParamProfileScale, Default: DefaultProfileScale, Description: "Scale factor applied to the 30 x 15 section and the hole"},
}

// Track is a polymer track body: a box with a through hole.
type Track struct{}

func (Track) Name() string { return "track" }

func (Track) Description() string {
	return "Polymer track body (box with a through hole on its top face)"
}

func (Track) Params() []schema.Param {
	return append([]schema.Param(nil), trackParams...)
}

func (tr Track) Generate(ctx domain.Context) (Output, error) {
	var cfg TrackConfig
	params, err := resolve(trackParams, ctx, &cfg)
	if err != nil {
		return Output{}, err
	}
	solid, err := BuildTrack(cfg)
	if err != nil {
		return Output{}, err
	}
	return publish(tr.Name(), params, cfg.Dimensions(), solid), nil
}
