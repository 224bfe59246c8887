package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/aretw0/extrude/pkg/domain"
)

// Loader implements ports.PresetLoader using an in-memory map.
type Loader struct {
	presets map[string]domain.Preset
}

// NewLoader creates a loader holding the given presets.
// Presets without a name are rejected.
func NewLoader(presets ...domain.Preset) (*Loader, error) {
	data := make(map[string]domain.Preset, len(presets))
	for _, p := range presets {
		if p.Name == "" {
			return nil, fmt.Errorf("preset missing name")
		}
		if p.Unit == "" {
			return nil, fmt.Errorf("preset %s: missing unit", p.Name)
		}
		p.Params = p.Params.Clone()
		data[p.Name] = p
	}
	return &Loader{presets: data}, nil
}

// GetPreset returns a copy of the named preset.
func (l *Loader) GetPreset(ctx context.Context, name string) (*domain.Preset, error) {
	p, ok := l.presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPresetNotFound, name)
	}
	p.Params = p.Params.Clone()
	return &p, nil
}

// ListPresets returns all preset names.
func (l *Loader) ListPresets(ctx context.Context) ([]string, error) {
	keys := make([]string, 0, len(l.presets))
	for k := range l.presets {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order
	return keys, nil
}
