package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/aretw0/extrude/pkg/domain"
)

// allUnits is the subscription key for clients without a unit filter.
const allUnits = ""

// StreamManager fans finished runs out to SSE subscribers.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan<- string]struct{} // unit -> set of channels
}

func NewStreamManager() *StreamManager {
	return &StreamManager{
		subscribers: make(map[string]map[chan<- string]struct{}),
	}
}

// Subscribe registers a channel for one unit, or every unit when unit is empty.
// The returned func unsubscribes and closes the channel.
func (sm *StreamManager) Subscribe(unit string) (chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 10)
	if _, ok := sm.subscribers[unit]; !ok {
		sm.subscribers[unit] = make(map[chan<- string]struct{})
	}
	sm.subscribers[unit][ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if subs, ok := sm.subscribers[unit]; ok {
			delete(subs, ch)
			close(ch)
			if len(subs) == 0 {
				delete(sm.subscribers, unit)
			}
		}
	}
}

// Broadcast sends msg to the subscribers of unit and to unfiltered ones.
func (sm *StreamManager) Broadcast(unit string, msg string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	keys := []string{allUnits}
	if unit != allUnits {
		keys = append(keys, unit)
	}
	for _, key := range keys {
		for ch := range sm.subscribers[key] {
			select {
			case ch <- msg:
			default:
				// Drop message if channel is full (slow client)
				slog.Warn("SSE: Client buffer full, dropping message", "unit", unit)
			}
		}
	}
}

// Hooks broadcasts every finished run as a JSON event.
func (sm *StreamManager) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnGenerateFinish: func(_ context.Context, e *domain.GenerateEvent) {
			msg := runEvent{
				Type:       string(e.Type),
				Unit:       e.Unit,
				ResultID:   e.ResultID,
				DurationMS: float64(e.Duration.Microseconds()) / 1000,
			}
			if e.Err != nil {
				msg.Error = e.Err.Error()
			}
			bytes, err := json.Marshal(msg)
			if err != nil {
				return
			}
			sm.Broadcast(e.Unit, string(bytes))
		},
	}
}

type runEvent struct {
	Type       string  `json:"type"`
	Unit       string  `json:"unit"`
	ResultID   string  `json:"result_id,omitempty"`
	DurationMS float64 `json:"duration_ms"`
	Error      string  `json:"error,omitempty"`
}
