package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/extrude/pkg/domain"
)

// LoggingHooks logs run start at Debug and run finish at Info (Warn on error).
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnGenerateStart: func(ctx context.Context, e *domain.GenerateEvent) {
			logger.DebugContext(ctx, "generate_start", "unit", e.Unit)
		},
		OnGenerateFinish: func(ctx context.Context, e *domain.GenerateEvent) {
			if e.Err != nil {
				logger.WarnContext(ctx, "generate_finish",
					"unit", e.Unit,
					"duration", e.Duration,
					"err", e.Err,
				)
				return
			}
			logger.InfoContext(ctx, "generate_finish",
				"unit", e.Unit,
				"result", e.ResultID,
				"duration", e.Duration,
			)
		},
	}
}
