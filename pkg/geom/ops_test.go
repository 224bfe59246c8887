package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCutHole(t *testing.T) {
	box, err := Box(60, 30, 100)
	require.NoError(t, err)

	s, err := Apply(box, Drill(FacingAlong(AxisZ), 10))
	require.NoError(t, err)

	require.Equal(t, []Hole{{Center: Vec2{}, Radius: 10}}, s.Holes())
	assert.InDelta(t, 1800-100*math.Pi, s.CrossSectionArea(), 1e-9)
	assert.InDelta(t, (1800-100*math.Pi)*100, s.Volume(), 1e-6)
	assert.Equal(t, Vec3{60, 30, 100}, s.Bounds().Size())
	assert.Len(t, s.Faces(), 7)
	assert.Len(t, s.Edges(), 14)
	assert.Empty(t, box.Holes(), "receiver must be unchanged")

	features := s.Features()
	require.Len(t, features, 2)
	assert.Equal(t, Feature{Op: "hole", Size: 10, Targets: []string{FaceTop}}, features[1])
}

func TestCutHole_Infeasible(t *testing.T) {
	box, err := Box(60, 30, 100)
	require.NoError(t, err)

	tests := []struct {
		name   string
		op     Op
		target error
	}{
		{"radius reaches the wall", Drill(FacingAlong(AxisZ), 15), ErrInfeasible},
		{"zero radius", Drill(FacingAlong(AxisZ), 0), ErrInfeasible},
		{"negative radius", Drill(FacingAlong(AxisZ), -2), ErrInfeasible},
		{"no faces", Drill(func(Face) bool { return false }, 2), ErrInfeasible},
		{"side face", Drill(FacingAlong(AxisX), 2), ErrUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(box, tt.op)
			assert.ErrorIs(t, err, tt.target)
		})
	}

	t.Run("second hole on the same axis", func(t *testing.T) {
		_, err := Apply(box, Drill(FacingAlong(AxisZ), 5), Drill(FacingAgainst(AxisZ), 5))
		assert.ErrorIs(t, err, ErrInfeasible)
	})

	t.Run("hole in a cavity", func(t *testing.T) {
		_, err := Apply(tube(t), Drill(FacingAlong(AxisZ), 1))
		assert.ErrorIs(t, err, ErrInfeasible)
	})
}

func TestChamfer_VerticalEdges(t *testing.T) {
	box, err := Box(50, 80, 150)
	require.NoError(t, err)

	s, err := Apply(box, Chamfer(Where(ParallelTo(AxisZ)), 5))
	require.NoError(t, err)

	assert.Len(t, s.Profile().Outer(), 8)
	assert.InDelta(t, 4000-4*12.5, s.CrossSectionArea(), 1e-9)
	assert.Equal(t, Vec3{50, 80, 150}, s.Bounds().Size())
	assert.Len(t, s.SelectEdges(ParallelTo(AxisZ)), 8)
	assert.Empty(t, s.Blends(), "vertical blends reshape the profile")

	features := s.Features()
	require.Len(t, features, 2)
	assert.Equal(t, "chamfer", features[1].Op)
	assert.Len(t, features[1].Targets, 4)
}

func TestFillet_VerticalEdges(t *testing.T) {
	box, err := Box(10, 10, 10)
	require.NoError(t, err)

	s, err := Apply(box, Fillet(Where(ParallelTo(AxisZ)), 2))
	require.NoError(t, err)

	assert.Len(t, s.Profile().Outer(), 4*(filletSegments+1))
	assert.InDelta(t, 100-4*(4-math.Pi), s.CrossSectionArea(), 0.1)
	assert.Equal(t, Vec3{10, 10, 10}, s.Bounds().Size())
}

func TestFillet_CapEdges(t *testing.T) {
	box, err := Box(50, 80, 150)
	require.NoError(t, err)

	s, err := Apply(box,
		Chamfer(Where(ParallelTo(AxisZ)), 5),
		Fillet(AtMax(AxisZ), 15),
	)
	require.NoError(t, err)

	blends := s.Blends()
	require.Len(t, blends, 8)
	for id, b := range blends {
		assert.Equal(t, Blend{Kind: BlendFillet, Size: 15}, b, id)
	}

	perimeter := 2*40 + 2*70 + 4*5*math.Sqrt2
	want := 3950*150 - (1-math.Pi/4)*225*perimeter
	assert.InDelta(t, want, s.Volume(), 1e-6)
	assert.Len(t, s.SelectFaces(func(f Face) bool { return f.Kind == FaceBlend }), 8)

	for _, e := range s.Edges() {
		_, blended := blends[e.ID]
		assert.Equal(t, blended, e.Blend != nil, e.ID)
	}

	t.Run("twice", func(t *testing.T) {
		_, err := Apply(s, Fillet(AtMax(AxisZ), 1))
		assert.ErrorIs(t, err, ErrInfeasible)
	})
	t.Run("vertical after cap", func(t *testing.T) {
		_, err := Apply(s, Chamfer(Where(ParallelTo(AxisZ)), 1))
		assert.ErrorIs(t, err, ErrUnsupported)
	})
}

func TestBlend_Infeasible(t *testing.T) {
	box, err := Box(50, 80, 150)
	require.NoError(t, err)

	tests := []struct {
		name string
		op   Op
	}{
		{"chamfer longer than a side", Chamfer(Where(ParallelTo(AxisZ)), 25)},
		{"fillet thicker than the wall", Fillet(AtMax(AxisZ), 25)},
		{"fillet taller than the solid", Fillet(AtMax(AxisZ), 200)},
		{"zero size", Chamfer(Where(ParallelTo(AxisZ)), 0)},
		{"negative size", Fillet(AtMax(AxisZ), -1)},
		{"nothing selected", Fillet(Where(OnPlane(AxisZ, 1)), 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(box, tt.op)
			assert.ErrorIs(t, err, ErrInfeasible)
		})
	}

	t.Run("top and bottom meet", func(t *testing.T) {
		thin, err := Box(50, 80, 10)
		require.NoError(t, err)
		_, err = Apply(thin, Fillet(AtMax(AxisZ), 6), Fillet(AtMin(AxisZ), 6))
		assert.ErrorIs(t, err, ErrInfeasible)
	})

	t.Run("foreign edge", func(t *testing.T) {
		other := tube(t)
		_, err := box.ChamferEdges(other.SelectEdges(func(e Edge) bool { return e.ID == "cavity1/v0" }), 1)
		assert.ErrorIs(t, err, ErrInfeasible)
	})

	t.Run("mixed edges", func(t *testing.T) {
		_, err := box.ChamferEdges(box.Edges(), 1)
		assert.ErrorIs(t, err, ErrUnsupported)
	})
}

func TestChamfer_CavityCorners(t *testing.T) {
	s, err := Apply(tube(t), Chamfer(Where(ParallelTo(AxisZ)), 1))
	require.NoError(t, err)
	// outer corners lose what the cavity corners gain
	assert.InDelta(t, 304, s.CrossSectionArea(), 1e-9)
	assert.Len(t, s.Profile().Cavities()[0], 8)

	_, err = Apply(tube(t), Chamfer(Where(ParallelTo(AxisZ)), 18))
	assert.ErrorIs(t, err, ErrInfeasible, "cavity sides are too short")
}

func TestApply_StopsAtFirstError(t *testing.T) {
	box, err := Box(10, 10, 10)
	require.NoError(t, err)

	calls := 0
	count := func(s Solid) (Solid, error) {
		calls++
		return s, nil
	}
	s, err := Apply(box, count, Drill(FacingAlong(AxisZ), 50), count)

	var gerr *Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, "hole", gerr.Op)
	assert.True(t, s.IsZero())
	assert.Equal(t, 1, calls)
}
