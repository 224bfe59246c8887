package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func TestDiff(t *testing.T) {
	base := &Result{
		ID:         "a",
		Unit:       "rail",
		Params:     map[string]float64{"extrusion_length": 150, "degradation_state": 0},
		Dimensions: map[string]float64{"width": 50, "wear": 0},
		Solid:      SolidSummary{Volume: 100, Fingerprint: "f1"},
	}

	tests := []struct {
		name string
		to   *Result
		want *ResultDiff
	}{
		{
			name: "identical",
			to: &Result{
				ID:         "b",
				Unit:       "rail",
				Params:     map[string]float64{"extrusion_length": 150, "degradation_state": 0},
				Dimensions: map[string]float64{"width": 50, "wear": 0},
				Solid:      SolidSummary{Volume: 100, Fingerprint: "f1"},
			},
			want: &ResultDiff{From: "a", To: "b"},
		},
		{
			name: "worn",
			to: &Result{
				ID:         "c",
				Unit:       "rail",
				Params:     map[string]float64{"extrusion_length": 150, "degradation_state": 10},
				Dimensions: map[string]float64{"width": 50, "wear": 15},
				Solid:      SolidSummary{Volume: 90, Fingerprint: "f2"},
			},
			want: &ResultDiff{
				From:            "a",
				To:              "c",
				Params:          map[string]Change{"degradation_state": {From: ptr(0), To: ptr(10)}},
				Dimensions:      map[string]Change{"wear": {From: ptr(0), To: ptr(15)}},
				GeometryChanged: true,
				VolumeDelta:     -10,
			},
		},
		{
			name: "other unit",
			to: &Result{
				ID:         "d",
				Unit:       "track",
				Params:     map[string]float64{"extrusion_length": 150},
				Dimensions: map[string]float64{"width": 50, "hole_radius": 5},
				Solid:      SolidSummary{Volume: 100, Fingerprint: "f3"},
			},
			want: &ResultDiff{
				From:        "a",
				To:          "d",
				UnitChanged: true,
				Params:      map[string]Change{"degradation_state": {From: ptr(0)}},
				Dimensions: map[string]Change{
					"wear":        {From: ptr(0)},
					"hole_radius": {To: ptr(5)},
				},
				GeometryChanged: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(base, tt.to)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.name == "identical", got.IsEmpty())
		})
	}
}

func TestDiff_Nil(t *testing.T) {
	assert.Nil(t, Diff(nil, &Result{}))
	assert.Nil(t, Diff(&Result{}, nil))
}

func TestDiff_JSONOmitsUnchanged(t *testing.T) {
	d := Diff(&Result{ID: "a"}, &Result{ID: "b"})
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"from":"a","to":"b"}`, string(data))
}
