package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectProfile(t *testing.T) {
	p, err := RectProfile(40, 20)
	require.NoError(t, err)

	assert.InDelta(t, 800, p.Area(), 1e-9)
	assert.Greater(t, p.Outer().SignedArea(), 0.0, "outer loop must be counter-clockwise")
	min, max := p.Outer().Bounds()
	assert.Equal(t, Vec2{-20, -10}, min)
	assert.Equal(t, Vec2{20, 10}, max)

	_, err = RectProfile(0, 10)
	assert.ErrorIs(t, err, ErrInfeasible)
	_, err = RectProfile(10, -1)
	assert.ErrorIs(t, err, ErrInfeasible)
}

func TestRectProfile_ScaleInvariant(t *testing.T) {
	for _, s := range []float64{1e-7, 1e-3, 1, 1e6} {
		p, err := RectProfile(30*s, 15*s)
		require.NoError(t, err, "scale %g", s)
		p, err = p.CutRect(20*s, 5*s)
		require.NoError(t, err, "scale %g", s)
		assert.InEpsilon(t, 350*s*s, p.Area(), 1e-9)
	}
}

func TestNewProfile_Rejects(t *testing.T) {
	t.Run("too few vertices", func(t *testing.T) {
		_, err := NewProfile(Polygon{{0, 0}, {1, 0}})
		assert.ErrorIs(t, err, ErrInfeasible)
	})
	t.Run("clockwise", func(t *testing.T) {
		_, err := NewProfile(Rect(2, 2).Reversed())
		assert.ErrorIs(t, err, ErrInfeasible)
	})
	t.Run("degenerate sliver", func(t *testing.T) {
		_, err := RectProfile(1, 1e-12)
		assert.ErrorIs(t, err, ErrInfeasible)
	})
	t.Run("self intersecting", func(t *testing.T) {
		_, err := NewProfile(Polygon{{0, 0}, {2, 2}, {2, 0}, {0, 2}})
		assert.ErrorIs(t, err, ErrInfeasible)
	})
}

func TestProfile_CutRect(t *testing.T) {
	outer, err := RectProfile(40, 40)
	require.NoError(t, err)

	p, err := outer.CutRect(36, 36)
	require.NoError(t, err)
	require.Len(t, p.Cavities(), 1)
	assert.InDelta(t, 1600-1296, p.Area(), 1e-9)
	assert.Less(t, p.Cavities()[0].SignedArea(), 0.0, "cavities are stored clockwise")
	assert.Empty(t, outer.Cavities(), "cut must not modify the receiver")

	tests := []struct {
		name string
		w, h float64
	}{
		{"touching the wall", 40, 40},
		{"larger than outer", 50, 50},
		{"zero width", 0, 36},
		{"negative", -4, -4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := outer.CutRect(tt.w, tt.h)
			assert.ErrorIs(t, err, ErrInfeasible)
		})
	}
}

func TestProfile_Clearance(t *testing.T) {
	p, err := RectProfile(30, 15)
	require.NoError(t, err)

	assert.InDelta(t, 7.5, p.clearance(Vec2{}), 1e-9)
	assert.Less(t, p.clearance(Vec2{X: 100}), 0.0)

	framed, err := p.CutRect(10, 5)
	require.NoError(t, err)
	assert.Less(t, framed.clearance(Vec2{}), 0.0, "points in a cavity are outside the material")
}
