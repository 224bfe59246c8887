package extrude_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/extrude"
	"github.com/aretw0/extrude/pkg/adapters/memory"
	"github.com/aretw0/extrude/pkg/domain"
	"github.com/aretw0/extrude/pkg/geom"
	"github.com/aretw0/extrude/pkg/observability"
	"github.com/aretw0/extrude/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixed = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func newEngine(opts ...extrude.Option) *extrude.Engine {
	n := 0
	base := []extrude.Option{
		extrude.WithClock(func() time.Time { return fixed }),
		extrude.WithIDGenerator(func() string {
			n++
			return "r" + string(rune('0'+n))
		}),
	}
	return extrude.New(append(base, opts...)...)
}

func TestEngine_Units(t *testing.T) {
	units := extrude.New().Units()
	require.Len(t, units, 3)
	assert.Equal(t, "frame", units[0].Name)
	assert.Equal(t, "rail", units[1].Name)
	assert.Equal(t, "track", units[2].Name)
	assert.Len(t, units[0].Params, 3)
	assert.Len(t, units[2].Params, 2)

	require.Len(t, units[1].Schema, 3)
	assert.Equal(t, "number", units[1].Schema["degradation_state"].Name())
}

func TestEngine_Generate_Publishes(t *testing.T) {
	store := memory.NewStore()
	eng := newEngine(extrude.WithStore(store))
	ctx := context.Background()

	res, err := eng.Generate(ctx, "track", domain.Context{"profile_scale": 2, "extrusion_length": 100})
	require.NoError(t, err)

	assert.Equal(t, "r1", res.ID)
	assert.Equal(t, domain.ResultSlot, res.Slot)
	assert.Equal(t, "track", res.Unit)
	assert.Equal(t, fixed, res.CreatedAt)
	assert.Equal(t, map[string]float64{"extrusion_length": 100, "profile_scale": 2}, res.Params)
	assert.Equal(t, [3]float64{60, 30, 100}, res.Solid.Size)
	assert.Equal(t, []domain.HoleSummary{{Radius: 10}}, res.Solid.Holes)
	assert.InDelta(t, (1800-100*math.Pi)*100, res.Solid.Volume, 1e-6)

	stored, err := store.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, res, stored)

	ids, err := eng.Results(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, ids)
}

func TestEngine_Generate_Scenarios(t *testing.T) {
	eng := newEngine()
	ctx := context.Background()

	t.Run("frame", func(t *testing.T) {
		res, err := eng.Generate(ctx, "frame", domain.Context{"extrusion_length": 150, "profile_scale": 1, "wall_thickness": 2})
		require.NoError(t, err)
		assert.Equal(t, [3]float64{40, 40, 150}, res.Solid.Size)
		assert.Equal(t, [3]float64{-20, -20, 0}, res.Solid.Min)
		require.Len(t, res.Solid.Cavities, 1)
		assert.Equal(t, 36.0, res.Dimensions["inner_width"])
	})

	t.Run("rail", func(t *testing.T) {
		res, err := eng.Generate(ctx, "rail", domain.Context{"profile_scale": 1, "degradation_state": 10})
		require.NoError(t, err)
		assert.Equal(t, [3]float64{50, 80, 150}, res.Solid.Size)
		assert.Len(t, res.Solid.Outline, 8)
		require.Len(t, res.Solid.Blends, 8)
		for _, b := range res.Solid.Blends {
			assert.Equal(t, "fillet", b.Kind)
			assert.Equal(t, 15.0, b.Size)
		}
		ops := make([]string, len(res.Solid.Features))
		for i, f := range res.Solid.Features {
			ops[i] = f.Op
		}
		assert.Equal(t, []string{"box", "chamfer", "fillet"}, ops)
	})
}

func TestEngine_Generate_Determinism(t *testing.T) {
	eng := newEngine()
	ctx := context.Background()
	params := domain.Context{"profile_scale": 1.5, "degradation_state": 2}

	a, err := eng.Generate(ctx, "rail", params)
	require.NoError(t, err)
	b, err := eng.Generate(ctx, "rail", params)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Solid, b.Solid)

	diff, err := eng.Diff(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, diff.IsEmpty())
}

func TestEngine_Generate_Errors(t *testing.T) {
	store := memory.NewStore()
	eng := newEngine(extrude.WithStore(store))
	ctx := context.Background()

	_, err := eng.Generate(ctx, "gearbox", nil)
	assert.ErrorIs(t, err, domain.ErrUnknownUnit)

	_, err = eng.Generate(ctx, "frame", domain.Context{"wall_thickness": 20})
	assert.ErrorIs(t, err, geom.ErrInfeasible)
	var gerr *geom.Error
	assert.True(t, errors.As(err, &gerr))

	_, err = eng.Generate(ctx, "rail", domain.Context{"degradation_state": "high"})
	assert.True(t, schema.IsValidation(err))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids, "failed runs publish nothing")

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = eng.Generate(canceled, "frame", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_Hooks(t *testing.T) {
	var mu sync.Mutex
	var events []domain.GenerateEvent
	record := func(_ context.Context, e *domain.GenerateEvent) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, *e)
	}
	eng := newEngine(extrude.WithLifecycleHooks(domain.LifecycleHooks{
		OnGenerateStart:  record,
		OnGenerateFinish: record,
	}))
	ctx := context.Background()

	_, err := eng.Generate(ctx, "frame", nil)
	require.NoError(t, err)
	_, err = eng.Generate(ctx, "frame", domain.Context{"wall_thickness": 30})
	require.Error(t, err)

	require.Len(t, events, 4)
	assert.Equal(t, domain.EventGenerateStart, events[0].Type)
	assert.Equal(t, domain.EventGenerateFinish, events[1].Type)
	assert.Equal(t, "r1", events[1].ResultID)
	assert.NoError(t, events[1].Err)
	assert.ErrorIs(t, events[3].Err, geom.ErrInfeasible)
	assert.Empty(t, events[3].ResultID)
}

func TestEngine_FailedRunWarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	eng := newEngine(
		extrude.WithLogger(logger),
		extrude.WithLifecycleHooks(observability.LoggingHooks(logger)),
	)

	_, err := eng.Generate(context.Background(), "frame", domain.Context{"wall_thickness": 25})
	require.ErrorIs(t, err, geom.ErrInfeasible)

	assert.Equal(t, 1, strings.Count(buf.String(), "level=WARN"), buf.String())
	assert.Contains(t, buf.String(), "generate_finish")
}

func TestEngine_Presets(t *testing.T) {
	ctx := context.Background()

	_, err := newEngine().GeneratePreset(ctx, "worn-rail", nil)
	assert.ErrorIs(t, err, domain.ErrPresetNotFound)

	loader, err := memory.NewLoader(domain.Preset{Name: "worn-rail", Unit: "rail", Params: domain.Context{"degradation_state": 3}})
	require.NoError(t, err)
	eng := newEngine(extrude.WithPresets(loader))

	names, err := eng.Presets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"worn-rail"}, names)

	res, err := eng.GeneratePreset(ctx, "worn-rail", domain.Context{"profile_scale": 2})
	require.NoError(t, err)
	assert.Equal(t, "rail", res.Unit)
	assert.Equal(t, 3.0, res.Params["degradation_state"])
	assert.Equal(t, 2.0, res.Params["profile_scale"])
	assert.Equal(t, 6.0, res.Dimensions["wear"])
}

func TestEngine_DeleteResult(t *testing.T) {
	eng := newEngine()
	ctx := context.Background()

	res, err := eng.Generate(ctx, "track", nil)
	require.NoError(t, err)

	require.NoError(t, eng.DeleteResult(ctx, res.ID))
	_, err = eng.Result(ctx, res.ID)
	assert.ErrorIs(t, err, domain.ErrResultNotFound)
	assert.ErrorIs(t, eng.DeleteResult(ctx, res.ID), domain.ErrResultNotFound)

	_, err = eng.Diff(ctx, res.ID, "other")
	assert.ErrorIs(t, err, domain.ErrResultNotFound)
}

func TestEngine_Build(t *testing.T) {
	out, err := extrude.New().Build("frame", domain.Context{"profile_scale": 0.5, "wall_thickness": 1})
	require.NoError(t, err)
	assert.Equal(t, geom.Vec3{X: 20, Y: 20, Z: 150}, out.Solid.Bounds().Size())
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, extrude.Version)
}
