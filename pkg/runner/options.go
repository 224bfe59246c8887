package runner

import (
	"log/slog"
	"time"

	"github.com/aretw0/extrude/pkg/ports"
)

// DefaultLockTTL bounds how long a crashed runner can hold a job.
const DefaultLockTTL = 30 * time.Second

// DefaultLockPrefix namespaces job locks.
const DefaultLockPrefix = "extrude:job:"

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithParallelism sets how many jobs run at once. Values below 1 mean 1.
func WithParallelism(n int) Option {
	return func(r *Runner) {
		r.Parallelism = n
	}
}

// WithLocker serializes each job ID across runner processes.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(r *Runner) {
		r.Locker = locker
	}
}

// WithLockTTL sets the expiry of job locks.
func WithLockTTL(ttl time.Duration) Option {
	return func(r *Runner) {
		r.LockTTL = ttl
	}
}
