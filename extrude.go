package extrude

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/extrude/pkg/adapters/memory"
	"github.com/aretw0/extrude/pkg/domain"
	"github.com/aretw0/extrude/pkg/generator"
	"github.com/aretw0/extrude/pkg/ports"
	"github.com/aretw0/extrude/pkg/registry"
	"github.com/aretw0/extrude/pkg/schema"
	"github.com/google/uuid"
)

// Engine is the high-level entry point for the extrude library.
// It runs generator units and publishes their results.
type Engine struct {
	registry *registry.Registry
	store    ports.ResultStore
	presets  ports.PresetLoader
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
}

var _ ports.Engine = (*Engine)(nil)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithRegistry replaces the built-in unit registry.
func WithRegistry(r *registry.Registry) Option {
	return func(e *Engine) {
		e.registry = r
	}
}

// WithStore sets where results are published (default: in memory).
func WithStore(s ports.ResultStore) Option {
	return func(e *Engine) {
		e.store = s
	}
}

// WithPresets sets the preset library.
func WithPresets(l ports.PresetLoader) Option {
	return func(e *Engine) {
		e.presets = l
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithClock overrides the time source used to stamp results.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithIDGenerator overrides how result IDs are minted (default: UUIDv4).
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) {
		e.newID = newID
	}
}

// New initializes an Engine holding the built-in units.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.registry == nil {
		eng.registry = registry.NewDefault()
	}
	if eng.store == nil {
		eng.store = memory.NewStore()
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	eng.logger = eng.logger.With("engine", "extrude")
	if eng.now == nil {
		eng.now = time.Now
	}
	if eng.newID == nil {
		eng.newID = uuid.NewString
	}
	return eng
}

// Units describes every registered unit, sorted by name.
func (e *Engine) Units() []domain.Unit {
	gens := e.registry.List()
	units := make([]domain.Unit, 0, len(gens))
	for _, g := range gens {
		units = append(units, domain.Unit{
			Name:        g.Name(),
			Description: g.Description(),
			Params:      g.Params(),
			Schema:      schema.ForParams(g.Params()),
		})
	}
	return units
}

// Build runs a unit without publishing anything.
func (e *Engine) Build(unit string, params domain.Context) (generator.Output, error) {
	return e.registry.Generate(unit, params)
}

// Generate runs a unit against params and publishes the result to the store.
// Unit failures keep their identity: errors.Is(err, geom.ErrInfeasible)
// and schema.IsValidation(err) still hold on the returned error.
func (e *Engine) Generate(ctx context.Context, unit string, params domain.Context) (*domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := e.now()
	if e.hooks.OnGenerateStart != nil {
		e.hooks.OnGenerateStart(ctx, &domain.GenerateEvent{
			Timestamp: start,
			Type:      domain.EventGenerateStart,
			Unit:      unit,
			Params:    params.Clone(),
		})
	}

	result, err := e.generate(ctx, unit, params, start)

	finish := &domain.GenerateEvent{
		Timestamp: e.now(),
		Type:      domain.EventGenerateFinish,
		Unit:      unit,
		Params:    params.Clone(),
		Err:       err,
	}
	finish.Duration = finish.Timestamp.Sub(start)
	if result != nil {
		finish.ResultID = result.ID
	}
	if e.hooks.OnGenerateFinish != nil {
		e.hooks.OnGenerateFinish(ctx, finish)
	}

	if err != nil {
		e.logger.Debug("generate failed", "unit", unit, "err", err)
		return nil, err
	}
	e.logger.Debug("generated", "unit", unit, "result", result.ID, "fingerprint", result.Solid.Fingerprint)
	return result, nil
}

func (e *Engine) generate(ctx context.Context, unit string, params domain.Context, at time.Time) (*domain.Result, error) {
	out, err := e.registry.Generate(unit, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", unit, err)
	}

	result := NewResult(e.newID(), out, at)
	if err := e.store.Save(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to publish result: %w", err)
	}
	return result, nil
}

// GeneratePreset runs the unit named by a preset with its params, overlaid
// by overrides.
func (e *Engine) GeneratePreset(ctx context.Context, name string, overrides domain.Context) (*domain.Result, error) {
	p, err := e.Preset(ctx, name)
	if err != nil {
		return nil, err
	}
	return e.Generate(ctx, p.Unit, p.Params.Merge(overrides))
}

// Preset resolves a preset from the configured library.
func (e *Engine) Preset(ctx context.Context, name string) (*domain.Preset, error) {
	if e.presets == nil {
		return nil, fmt.Errorf("%w: %s (no preset library configured)", domain.ErrPresetNotFound, name)
	}
	return e.presets.GetPreset(ctx, name)
}

// Presets lists the preset names; empty when no library is configured.
func (e *Engine) Presets(ctx context.Context) ([]string, error) {
	if e.presets == nil {
		return []string{}, nil
	}
	return e.presets.ListPresets(ctx)
}

// Result loads a published result.
func (e *Engine) Result(ctx context.Context, id string) (*domain.Result, error) {
	return e.store.Load(ctx, id)
}

// Results lists the IDs of published results.
func (e *Engine) Results(ctx context.Context) ([]string, error) {
	return e.store.List(ctx)
}

// DeleteResult removes a published result.
func (e *Engine) DeleteResult(ctx context.Context, id string) error {
	return e.store.Delete(ctx, id)
}

// Diff compares two published results.
func (e *Engine) Diff(ctx context.Context, fromID, toID string) (*domain.ResultDiff, error) {
	from, err := e.store.Load(ctx, fromID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fromID, err)
	}
	to, err := e.store.Load(ctx, toID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", toID, err)
	}
	return domain.Diff(from, to), nil
}

// Store returns the result store the engine publishes to.
func (e *Engine) Store() ports.ResultStore {
	return e.store
}
