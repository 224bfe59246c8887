package generator

import (
	"testing"

	"github.com/aretw0/extrude/pkg/domain"
	"github.com/aretw0/extrude/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame_Defaults(t *testing.T) {
	out, err := Frame{}.Generate(domain.Context{})
	require.NoError(t, err)

	assert.Equal(t, Dimensions{
		DimOuterWidth:  40,
		DimOuterHeight: 40,
		DimInnerWidth:  36,
		DimInnerHeight: 36,
		DimLength:      150,
	}, out.Dimensions)

	b := out.Solid.Bounds()
	assert.Equal(t, geom.Vec3{X: -20, Y: -20, Z: 0}, b.Min)
	assert.Equal(t, geom.Vec3{X: 20, Y: 20, Z: 150}, b.Max)

	cavities := out.Solid.Profile().Cavities()
	require.Len(t, cavities, 1)
	min, max := cavities[0].Bounds()
	assert.Equal(t, geom.Vec2{X: -18, Y: -18}, min)
	assert.Equal(t, geom.Vec2{X: 18, Y: 18}, max)
	assert.InDelta(t, (1600-1296)*150.0, out.Solid.Volume(), 1e-6)
}

func TestFrame_Scaled(t *testing.T) {
	out, err := Frame{}.Generate(domain.Context{ParamProfileScale: 2, ParamWallThickness: 5, ParamExtrusionLength: 80})
	require.NoError(t, err)

	assert.InDelta(t, 80, out.Dimensions[DimOuterWidth], 1e-9)
	assert.InDelta(t, 70, out.Dimensions[DimInnerWidth], 1e-9)
	assert.Equal(t, geom.Vec3{X: 80, Y: 80, Z: 80}, out.Solid.Bounds().Size())
}

func TestFrame_WallTooThick(t *testing.T) {
	tests := []struct {
		name string
		ctx  domain.Context
	}{
		{"wall equals half the side", domain.Context{ParamWallThickness: 20}},
		{"wall beyond half the side", domain.Context{ParamWallThickness: 25}},
		{"scaled", domain.Context{ParamProfileScale: 0.5, ParamWallThickness: 10}},
		{"negative wall", domain.Context{ParamWallThickness: -1}},
		{"zero wall", domain.Context{ParamWallThickness: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Frame{}.Generate(tt.ctx)
			assert.ErrorIs(t, err, geom.ErrInfeasible)
		})
	}
}

func TestFrame_NegativeLength(t *testing.T) {
	out, err := Frame{}.Generate(domain.Context{ParamExtrusionLength: -50})
	require.NoError(t, err)
	assert.InDelta(t, -50, out.Solid.Bounds().Min.Z, 1e-9)
	assert.InDelta(t, 50, out.Solid.Height(), 1e-9)
}
