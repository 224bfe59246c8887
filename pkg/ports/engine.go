package ports

import (
	"context"

	"github.com/aretw0/extrude/pkg/domain"
)

// Engine is the surface transports drive: HTTP, MCP and the job runner.
type Engine interface {
	// Units describes every registered unit, sorted by name.
	Units() []domain.Unit

	// Generate runs a unit against params and publishes the result.
	Generate(ctx context.Context, unit string, params domain.Context) (*domain.Result, error)

	// Result loads a published result.
	Result(ctx context.Context, id string) (*domain.Result, error)

	// Results lists the IDs of published results.
	Results(ctx context.Context) ([]string, error)

	// DeleteResult removes a published result.
	DeleteResult(ctx context.Context, id string) error
}
