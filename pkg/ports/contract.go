package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/extrude/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contractResult(id string) *domain.Result {
	return &domain.Result{
		ID:         id,
		Slot:       domain.ResultSlot,
		Unit:       "track",
		Params:     map[string]float64{"extrusion_length": 100, "profile_scale": 2},
		Dimensions: map[string]float64{"width": 60, "height": 30, "hole_radius": 10, "length": 100},
		Solid: domain.SolidSummary{
			Min:         [3]float64{-30, -15, -50},
			Max:         [3]float64{30, 15, 50},
			Size:        [3]float64{60, 30, 100},
			Volume:      148584.07,
			Faces:       7,
			Edges:       14,
			Outline:     [][2]float64{{-30, -15}, {30, -15}, {30, 15}, {-30, 15}},
			Holes:       []domain.HoleSummary{{Radius: 10}},
			Features:    []domain.FeatureSummary{{Op: "box", Size: 100}, {Op: "hole", Size: 10, Targets: []string{"top"}}},
			Fingerprint: "abc123",
		},
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

// RunResultStoreContract runs a suite of tests to verify that a ResultStore
// implementation adheres to the defined interface contract.
func RunResultStoreContract(t *testing.T, store ResultStore) {
	ctx := context.Background()
	id := "contract-" + time.Now().Format("20060102150405.000000000")

	t.Run("Save and Load", func(t *testing.T) {
		result := contractResult(id)

		err := store.Save(ctx, result)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, result.Unit, loaded.Unit)
		assert.Equal(t, result.Params, loaded.Params)
		assert.Equal(t, result.Dimensions, loaded.Dimensions)
		assert.Equal(t, result.Solid, loaded.Solid)
		assert.True(t, result.CreatedAt.Equal(loaded.CreatedAt))
	})

	t.Run("Load returns a copy", func(t *testing.T) {
		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		loaded.Params["profile_scale"] = 99

		again, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 2.0, again.Params["profile_scale"])
	})

	t.Run("Save overwrites", func(t *testing.T) {
		result := contractResult(id)
		result.Unit = "rail"
		require.NoError(t, store.Save(ctx, result))

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "rail", loaded.Unit)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+id)
		assert.ErrorIs(t, err, domain.ErrResultNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, contractResult(id)))

		err := store.Delete(ctx, id)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, id)
		assert.ErrorIs(t, err, domain.ErrResultNotFound, "Load after Delete should return ErrResultNotFound")

		err = store.Delete(ctx, id)
		assert.ErrorIs(t, err, domain.ErrResultNotFound, "second Delete should return ErrResultNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := id + "-1"
		id2 := id + "-2"
		require.NoError(t, store.Save(ctx, contractResult(id2)))
		require.NoError(t, store.Save(ctx, contractResult(id1)))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
		assert.IsNonDecreasing(t, ids)
	})
}

// RunPresetLoaderContract verifies a PresetLoader that was seeded with the
// given presets.
func RunPresetLoaderContract(t *testing.T, loader PresetLoader, seeded []domain.Preset) {
	t.Helper()
	ctx := context.Background()

	t.Run("GetPreset", func(t *testing.T) {
		for _, want := range seeded {
			got, err := loader.GetPreset(ctx, want.Name)
			require.NoError(t, err, want.Name)
			assert.Equal(t, want.Name, got.Name)
			assert.Equal(t, want.Unit, got.Unit)
			assert.Equal(t, want.Description, got.Description)
			assert.Len(t, got.Params, len(want.Params))
			for k := range want.Params {
				assert.Contains(t, got.Params, k)
			}
		}
	})

	t.Run("GetPreset NotFound", func(t *testing.T) {
		_, err := loader.GetPreset(ctx, "non-existent-preset")
		assert.ErrorIs(t, err, domain.ErrPresetNotFound)
	})

	t.Run("ListPresets", func(t *testing.T) {
		names, err := loader.ListPresets(ctx)
		require.NoError(t, err)
		assert.Len(t, names, len(seeded))
		for _, p := range seeded {
			assert.Contains(t, names, p.Name)
		}
		assert.IsNonDecreasing(t, names)
	})
}
