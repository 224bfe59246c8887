package runner

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/extrude/pkg/domain"
	"gopkg.in/yaml.v3"
)

// MaxJobIDSize bounds job IDs; they become lock keys and log fields.
const MaxJobIDSize = 128

var (
	ErrInvalidJob   = errors.New("invalid job")
	ErrDuplicateJob = errors.New("duplicate job id")
)

// Job is one unit run. Exactly one of Unit and Preset is set; with a
// preset, Params override the preset's params.
type Job struct {
	ID     string         `json:"id" yaml:"id"`
	Unit   string         `json:"unit,omitempty" yaml:"unit,omitempty"`
	Preset string         `json:"preset,omitempty" yaml:"preset,omitempty"`
	Params domain.Context `json:"params,omitempty" yaml:"params,omitempty"`
}

// File is the on-disk layout of a job file.
type File struct {
	Jobs []Job `json:"jobs" yaml:"jobs"`
}

// LoadJobs reads a job file. Files ending in .json are decoded as JSON,
// anything else as YAML.
func LoadJobs(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}
	return ParseJobs(data, filepath.Ext(path))
}

// ParseJobs decodes and validates a job file body. ext selects the format
// (".json", or YAML otherwise).
func ParseJobs(data []byte, ext string) ([]Job, error) {
	var f File
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to decode json jobs: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to decode yaml jobs: %w", err)
		}
	}
	if err := ValidateJobs(f.Jobs); err != nil {
		return nil, err
	}
	return f.Jobs, nil
}

// ValidateJobs checks every job and rejects repeated IDs.
func ValidateJobs(jobs []Job) error {
	seen := make(map[string]int, len(jobs))
	for i, job := range jobs {
		if err := job.Validate(); err != nil {
			return fmt.Errorf("job %d: %w", i+1, err)
		}
		if prev, ok := seen[job.ID]; ok {
			return fmt.Errorf("%w: %q (jobs %d and %d)", ErrDuplicateJob, job.ID, prev+1, i+1)
		}
		seen[job.ID] = i
	}
	return nil
}

// Validate checks the job's shape. It does not resolve the unit or preset.
func (j Job) Validate() error {
	if err := validateID(j.ID); err != nil {
		return err
	}
	switch {
	case j.Unit == "" && j.Preset == "":
		return fmt.Errorf("%w %q: needs a unit or a preset", ErrInvalidJob, j.ID)
	case j.Unit != "" && j.Preset != "":
		return fmt.Errorf("%w %q: unit and preset are exclusive", ErrInvalidJob, j.ID)
	}
	return nil
}

func validateID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidJob)
	}
	if len(id) > MaxJobIDSize {
		return fmt.Errorf("%w: id size=%d limit=%d", ErrInvalidJob, len(id), MaxJobIDSize)
	}
	if !utf8.ValidString(id) {
		return fmt.Errorf("%w: id contains invalid UTF-8 sequences", ErrInvalidJob)
	}
	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return fmt.Errorf("%w: id %q contains whitespace or control characters", ErrInvalidJob, id)
		}
	}
	return nil
}
