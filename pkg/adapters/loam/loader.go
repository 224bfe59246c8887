package loam

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/extrude/pkg/domain"
	"github.com/aretw0/extrude/pkg/ports"
	"github.com/aretw0/loam"
)

// Loader adapts the Loam library to the extrude PresetLoader interface.
// Presets are markdown, YAML or JSON documents; the frontmatter names the
// unit and its params, the markdown body is the fallback description.
type Loader struct {
	Repo *loam.TypedRepository[PresetMetadata]
}

var _ ports.PresetLoader = (*Loader)(nil)

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[PresetMetadata]) *Loader {
	return &Loader{
		Repo: repo,
	}
}

// Open initializes a read-only Loam repository rooted at dir.
func Open(dir string) (*Loader, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve preset dir: %w", err)
	}
	if info, err := os.Stat(absPath); err != nil {
		return nil, fmt.Errorf("failed to open preset dir: %w", err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("preset path %s is not a directory", absPath)
	}

	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to init loam: %w", err)
	}
	return New(loam.NewTypedRepository[PresetMetadata](repo)), nil
}

// GetPreset retrieves a preset by name. The name is the file name without
// extension unless the frontmatter sets an explicit id.
func (l *Loader) GetPreset(ctx context.Context, name string) (*domain.Preset, error) {
	doc, err := l.Repo.Get(ctx, name)
	if err == nil {
		return toPreset(doc.ID, doc.Data, doc.Content)
	}

	// Fall back to a scan for presets renamed through their id field.
	docs, listErr := l.Repo.List(ctx)
	if listErr != nil {
		return nil, fmt.Errorf("loam get failed for %s: %w", name, err)
	}
	for _, d := range docs {
		if presetName(d.ID, d.Data) == name {
			return toPreset(d.ID, d.Data, d.Content)
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrPresetNotFound, name)
}

// ListPresets lists all preset names, sorted.
func (l *Loader) ListPresets(ctx context.Context) ([]string, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string)
	names := make([]string, 0, len(docs))
	for _, doc := range docs {
		name := presetName(doc.ID, doc.Data)

		// Collision Detection
		if existingPath, ok := seen[name]; ok {
			return nil, fmt.Errorf("collision detected: preset '%s' is defined in both '%s' and '%s'", name, existingPath, doc.ID)
		}
		seen[name] = doc.ID
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func toPreset(docID string, meta PresetMetadata, content string) (*domain.Preset, error) {
	name := presetName(docID, meta)
	if meta.Unit == "" {
		return nil, errors.New("preset " + name + " has no unit")
	}

	desc := meta.Description
	if desc == "" {
		desc = strings.TrimSpace(content)
	}
	params := make(domain.Context, len(meta.Params))
	for k, v := range meta.Params {
		params[k] = v
	}
	return &domain.Preset{
		Name:        name,
		Unit:        meta.Unit,
		Description: desc,
		Params:      params,
	}, nil
}

func presetName(docID string, meta PresetMetadata) string {
	raw := meta.ID
	if raw == "" {
		raw = docID
	}
	return trimExtension(raw)
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
