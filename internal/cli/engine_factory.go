package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/extrude"
	"github.com/aretw0/extrude/internal/config"
	"github.com/aretw0/extrude/pkg/adapters/file"
	loamAdapter "github.com/aretw0/extrude/pkg/adapters/loam"
	"github.com/aretw0/extrude/pkg/adapters/memory"
	redisAdapter "github.com/aretw0/extrude/pkg/adapters/redis"
	"github.com/aretw0/extrude/pkg/domain"
	"github.com/aretw0/extrude/pkg/observability"
	"github.com/aretw0/extrude/pkg/persistence/middleware"
	"github.com/aretw0/extrude/pkg/ports"
)

// Backend bundles an engine with the resources its adapters hold open.
type Backend struct {
	Engine *extrude.Engine
	// Locker is shared through redis for the redis store and local otherwise.
	Locker ports.DistributedLocker
	close  []func() error
}

// Close releases adapter resources (redis connections).
func (b *Backend) Close() error {
	var errs []error
	for _, c := range b.close {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// NewBackend initializes an engine following the runtime configuration.
// Extra hooks run after the logging hooks.
func NewBackend(cfg config.Config, logger *slog.Logger, hooks ...domain.LifecycleHooks) (*Backend, error) {
	b := &Backend{}
	engineOpts := []extrude.Option{extrude.WithLogger(logger)}

	// 1. Result store
	var store ports.ResultStore
	switch cfg.Store {
	case config.StoreMemory, "":
		b.Locker = memory.NewLocker()
		store = memory.NewStore()
	case config.StoreFile:
		b.Locker = memory.NewLocker()
		store = file.New(cfg.StoreDir)
	case config.StoreRedis:
		var redisOpts []redisAdapter.Option
		if cfg.RedisTTL > 0 {
			redisOpts = append(redisOpts, redisAdapter.WithTTL(cfg.RedisTTL))
		}
		rs := redisAdapter.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, redisOpts...)
		b.Locker = redisAdapter.NewLocker(rs.Client(), "extrude:")
		b.close = append(b.close, rs.Close)
		store = rs
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}

	active, fallback, err := cfg.Keys()
	if err != nil {
		b.Close()
		return nil, err
	}
	if active != nil {
		seal, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: active, FallbackKeys: fallback})
		if err != nil {
			b.Close()
			return nil, err
		}
		store = middleware.Chain(store, seal)
	}
	engineOpts = append(engineOpts, extrude.WithStore(store))

	// 2. Preset library
	if cfg.PresetDir != "" {
		presets, err := loamAdapter.Open(cfg.PresetDir)
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("error loading presets: %w", err)
		}
		engineOpts = append(engineOpts, extrude.WithPresets(presets))
	}

	// 3. Hooks
	all := append([]domain.LifecycleHooks{observability.LoggingHooks(logger)}, hooks...)
	engineOpts = append(engineOpts, extrude.WithLifecycleHooks(domain.ChainHooks(all...)))

	b.Engine = extrude.New(engineOpts...)
	return b, nil
}
