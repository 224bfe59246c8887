// Package config loads runtime settings from EXTRUDE_* environment variables.
// Command-line flags override them in cmd/extrude.
package config

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

// Config is the runtime configuration shared by every command.
type Config struct {
	Store    string `env:"EXTRUDE_STORE" envDefault:"memory"`
	StoreDir string `env:"EXTRUDE_STORE_DIR" envDefault:".extrude/results"`

	RedisAddr     string        `env:"EXTRUDE_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"EXTRUDE_REDIS_PASSWORD"`
	RedisDB       int           `env:"EXTRUDE_REDIS_DB" envDefault:"0"`
	RedisTTL      time.Duration `env:"EXTRUDE_REDIS_TTL" envDefault:"0s"`

	PresetDir string `env:"EXTRUDE_PRESET_DIR"`

	// EncryptionKey is a base64 AES-256 key. When set, results are sealed
	// before they reach the store.
	EncryptionKey          string   `env:"EXTRUDE_ENCRYPTION_KEY"`
	EncryptionFallbackKeys []string `env:"EXTRUDE_ENCRYPTION_FALLBACK_KEYS" envSeparator:","`

	Port  int  `env:"EXTRUDE_PORT" envDefault:"8080"`
	Debug bool `env:"EXTRUDE_DEBUG" envDefault:"false"`
}

// Parse reads the environment into a Config without validating it, for
// callers that layer further overrides before calling Validate.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Load parses and validates the environment.
func Load() (Config, error) {
	cfg, err := Parse()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the environment parser cannot.
func (c Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreFile, StoreRedis:
	default:
		return fmt.Errorf("unknown store %q (want %s, %s or %s)", c.Store, StoreMemory, StoreFile, StoreRedis)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.RedisTTL < 0 {
		return fmt.Errorf("negative redis ttl %s", c.RedisTTL)
	}
	if _, _, err := c.Keys(); err != nil {
		return err
	}
	return nil
}

// Keys decodes the encryption keys. active is nil when encryption is off.
func (c Config) Keys() (active []byte, fallback [][]byte, err error) {
	if c.EncryptionKey == "" {
		if len(c.EncryptionFallbackKeys) > 0 {
			return nil, nil, fmt.Errorf("fallback encryption keys given without an active key")
		}
		return nil, nil, nil
	}
	if active, err = decodeKey(c.EncryptionKey); err != nil {
		return nil, nil, fmt.Errorf("encryption key: %w", err)
	}
	for i, k := range c.EncryptionFallbackKeys {
		key, err := decodeKey(k)
		if err != nil {
			return nil, nil, fmt.Errorf("fallback encryption key %d: %w", i+1, err)
		}
		fallback = append(fallback, key)
	}
	return active, fallback, nil
}

func decodeKey(s string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("not base64: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("want 32 bytes, got %d", len(key))
	}
	return key, nil
}

// Addr is the HTTP listen address.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
