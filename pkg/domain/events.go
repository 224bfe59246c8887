package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventGenerateStart  EventType = "generate_start"
	EventGenerateFinish EventType = "generate_finish"
)

// GenerateEvent describes one unit run.
type GenerateEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Unit      string    `json:"unit"`
	Params    Context   `json:"params,omitempty"`

	// Set on finish only.
	ResultID string        `json:"result_id,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
	Err      error         `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnGenerateStart  func(context.Context, *GenerateEvent)
	OnGenerateFinish func(context.Context, *GenerateEvent)
}

// ChainHooks combines hooks so every non-nil callback runs in order.
func ChainHooks(hooks ...LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnGenerateStart: func(ctx context.Context, e *GenerateEvent) {
			for _, h := range hooks {
				if h.OnGenerateStart != nil {
					h.OnGenerateStart(ctx, e)
				}
			}
		},
		OnGenerateFinish: func(ctx context.Context, e *GenerateEvent) {
			for _, h := range hooks {
				if h.OnGenerateFinish != nil {
					h.OnGenerateFinish(ctx, e)
				}
			}
		},
	}
}
