package generator

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/aretw0/extrude/pkg/domain"
	"github.com/aretw0/extrude/pkg/geom"
	"github.com/aretw0/extrude/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	names := make([]string, 0, 3)
	for _, g := range All() {
		names = append(names, g.Name())
		assert.NotEmpty(t, g.Description())
		assert.NotEmpty(t, g.Params())
	}
	assert.Equal(t, []string{"frame", "rail", "track"}, names)
}

func TestResolve_Defaults(t *testing.T) {
	var cfg RailConfig
	params, err := resolve(railParams, nil, &cfg)
	require.NoError(t, err)

	assert.Equal(t, DefaultRailConfig(), cfg)
	assert.Equal(t, map[string]float64{
		ParamExtrusionLength:  150,
		ParamProfileScale:     1,
		ParamDegradationState: 0,
	}, params)
}

func TestResolve_NumericKinds(t *testing.T) {
	var cfg FrameConfig
	_, err := resolve(frameParams, domain.Context{
		ParamExtrusionLength: 200,
		ParamProfileScale:    json.Number("1.5"),
		ParamWallThickness:   float32(3),
		"unrelated":          "ignored",
	}, &cfg)
	require.NoError(t, err)

	assert.Equal(t, FrameConfig{ExtrusionLength: 200, ProfileScale: 1.5, WallThickness: 3}, cfg)
}

func TestResolve_NonNumeric(t *testing.T) {
	_, err := Track{}.Generate(domain.Context{ParamProfileScale: "2"})
	require.Error(t, err)
	assert.True(t, schema.IsValidation(err))
	assert.False(t, errors.Is(err, geom.ErrInfeasible))
}

func TestDeterminism(t *testing.T) {
	ctx := domain.Context{ParamProfileScale: 1.25, ParamDegradationState: 4}
	for _, g := range All() {
		a, err := g.Generate(ctx)
		require.NoError(t, err, g.Name())
		b, err := g.Generate(ctx.Clone())
		require.NoError(t, err, g.Name())

		assert.True(t, a.Solid.Equal(b.Solid), g.Name())
		assert.Equal(t, a.Dimensions, b.Dimensions, g.Name())
		assert.Equal(t, domain.ResultSlot, a.Slot)
		assert.Equal(t, g.Name(), a.Unit)
	}
}

func TestDefaultSubstitution(t *testing.T) {
	for _, g := range All() {
		t.Run(g.Name(), func(t *testing.T) {
			explicit := domain.Context{}
			for _, p := range g.Params() {
				explicit[p.Name] = p.Default
			}

			implicit, err := g.Generate(domain.Context{})
			require.NoError(t, err)
			withDefaults, err := g.Generate(explicit)
			require.NoError(t, err)

			assert.True(t, implicit.Solid.Equal(withDefaults.Solid))
			assert.Equal(t, implicit.Solid.Fingerprint(), withDefaults.Solid.Fingerprint())
			assert.Equal(t, implicit.Dimensions, withDefaults.Dimensions)
			assert.Equal(t, implicit.Params, withDefaults.Params)
		})
	}
}

func TestTinyScales(t *testing.T) {
	for _, s := range []float64{1e-5, 1e-6, 1e-7} {
		ctx := domain.Context{ParamProfileScale: s, ParamWallThickness: 2 * s, ParamDegradationState: s}
		for _, g := range All() {
			_, err := g.Generate(ctx)
			assert.NoError(t, err, "%s at scale %g", g.Name(), s)
		}
	}
}
