package domain

import "errors"

// ErrUnknownUnit is returned when no generator is registered under a name.
var ErrUnknownUnit = errors.New("unknown unit")

// ErrResultNotFound is returned when a result ID cannot be found in the store.
var ErrResultNotFound = errors.New("result not found")

// ErrPresetNotFound is returned when a preset name cannot be resolved.
var ErrPresetNotFound = errors.New("preset not found")
