package ports

import (
	"context"

	"github.com/aretw0/extrude/pkg/domain"
)

// PresetLoader resolves named presets. This allows the preset library
// (Loam, Memory) to be decoupled from the engine.
type PresetLoader interface {
	// GetPreset returns the preset with the given name.
	// Returns domain.ErrPresetNotFound if it does not exist.
	GetPreset(ctx context.Context, name string) (*domain.Preset, error)

	// ListPresets returns the names of all available presets, sorted.
	ListPresets(ctx context.Context) ([]string, error)
}
