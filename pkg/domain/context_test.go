package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContext_Clone(t *testing.T) {
	c := Context{"profile_scale": 2.0}
	clone := c.Clone()
	clone["profile_scale"] = 3.0

	assert.Equal(t, 2.0, c["profile_scale"])
	assert.NotNil(t, Context(nil).Clone())
}

func TestContext_Merge(t *testing.T) {
	base := Context{"extrusion_length": 100, "profile_scale": 1}
	merged := base.Merge(Context{"profile_scale": 2, "degradation_state": 5})

	assert.Equal(t, Context{"extrusion_length": 100, "profile_scale": 2, "degradation_state": 5}, merged)
	assert.Equal(t, 1, base["profile_scale"], "merge must not modify the receiver")
}

func TestChainHooks(t *testing.T) {
	var calls []string
	first := LifecycleHooks{
		OnGenerateStart:  func(context.Context, *GenerateEvent) { calls = append(calls, "start-1") },
		OnGenerateFinish: func(context.Context, *GenerateEvent) { calls = append(calls, "finish-1") },
	}
	second := LifecycleHooks{
		OnGenerateFinish: func(context.Context, *GenerateEvent) { calls = append(calls, "finish-2") },
	}

	hooks := ChainHooks(first, LifecycleHooks{}, second)
	hooks.OnGenerateStart(context.Background(), &GenerateEvent{Type: EventGenerateStart})
	hooks.OnGenerateFinish(context.Background(), &GenerateEvent{Type: EventGenerateFinish})

	assert.Equal(t, []string{"start-1", "finish-1", "finish-2"}, calls)
}
