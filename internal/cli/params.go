package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aretw0/extrude/pkg/domain"
	"gopkg.in/yaml.v3"
)

// ParseParams builds an execution context from an optional YAML/JSON params
// file overlaid by key=value pairs. Values that do not parse as numbers are
// kept as strings so the unit reports them as validation errors.
func ParseParams(file string, pairs []string) (domain.Context, error) {
	params := domain.Context{}
	if file != "" {
		loaded, err := loadParamsFile(file)
		if err != nil {
			return nil, err
		}
		params = loaded
	}

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid param %q: want key=value", pair)
		}
		value = strings.TrimSpace(value)
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			params[key] = f
		} else {
			params[key] = value
		}
	}
	return params, nil
}

func loadParamsFile(path string) (domain.Context, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read params file: %w", err)
	}
	params := domain.Context{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &params); err != nil {
			return nil, fmt.Errorf("failed to decode params file: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &params); err != nil {
			return nil, fmt.Errorf("failed to decode params file: %w", err)
		}
	}
	return params, nil
}
