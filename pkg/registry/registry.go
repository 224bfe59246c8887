package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/extrude/pkg/domain"
	"github.com/aretw0/extrude/pkg/generator"
)

// Registry manages the available generator units.
type Registry struct {
	mu    sync.RWMutex
	units map[string]generator.Generator
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		units: make(map[string]generator.Generator),
	}
}

// NewDefault creates a registry holding every built-in unit.
func NewDefault() *Registry {
	r := NewRegistry()
	for _, g := range generator.All() {
		r.Register(g)
	}
	return r
}

// Register adds a unit to the registry.
// If a unit with the same name exists, it is overwritten.
func (r *Registry) Register(g generator.Generator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.units[g.Name()] = g
}

// Get looks up a unit by name.
func (r *Registry) Get(name string) (generator.Generator, error) {
	r.mu.RLock()
	g, ok := r.units[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownUnit, name)
	}
	return g, nil
}

// Names returns the registered unit names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.units))
	for name := range r.units {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns the registered units sorted by name.
func (r *Registry) List() []generator.Generator {
	names := r.Names()

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]generator.Generator, 0, len(names))
	for _, name := range names {
		if g, ok := r.units[name]; ok {
			out = append(out, g)
		}
	}
	return out
}

// Generate looks up a unit by name and runs it.
// Unit errors are returned unchanged.
func (r *Registry) Generate(name string, ctx domain.Context) (generator.Output, error) {
	g, err := r.Get(name)
	if err != nil {
		return generator.Output{}, err
	}
	return g.Generate(ctx)
}
