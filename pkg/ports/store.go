package ports

import (
	"context"

	"github.com/aretw0/extrude/pkg/domain"
)

// ResultStore defines the interface for persisting published results.
type ResultStore interface {
	// Save persists a result under result.ID, replacing any previous one.
	Save(ctx context.Context, result *domain.Result) error

	// Load retrieves a result by ID.
	// Returns domain.ErrResultNotFound if the result does not exist.
	Load(ctx context.Context, id string) (*domain.Result, error)

	// Delete removes a result.
	// Returns domain.ErrResultNotFound if the result does not exist.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored results, sorted.
	List(ctx context.Context) ([]string, error)
}
