package config

import (
	"bytes"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, ".extrude/results", cfg.StoreDir)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.False(t, cfg.Debug)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("EXTRUDE_STORE", "redis")
	t.Setenv("EXTRUDE_REDIS_ADDR", "cache:6380")
	t.Setenv("EXTRUDE_REDIS_DB", "3")
	t.Setenv("EXTRUDE_REDIS_TTL", "90s")
	t.Setenv("EXTRUDE_PORT", "9000")
	t.Setenv("EXTRUDE_DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreRedis, cfg.Store)
	assert.Equal(t, "cache:6380", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 90*time.Second, cfg.RedisTTL)
	assert.Equal(t, 9000, cfg.Port)
	assert.True(t, cfg.Debug)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("Malformed", func(t *testing.T) {
		t.Setenv("EXTRUDE_PORT", "not-an-int")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse env:")
	})

	t.Run("Unknown store", func(t *testing.T) {
		t.Setenv("EXTRUDE_STORE", "s3")
		_, err := Load()
		assert.ErrorContains(t, err, `unknown store "s3"`)
	})

	t.Run("Port range", func(t *testing.T) {
		t.Setenv("EXTRUDE_PORT", "70000")
		_, err := Load()
		assert.ErrorContains(t, err, "out of range")
	})
}

func TestParse_DefersValidation(t *testing.T) {
	t.Setenv("EXTRUDE_STORE", "s3")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "s3", cfg.Store)

	cfg.Store = StoreMemory
	assert.NoError(t, cfg.Validate())
}

func TestKeys(t *testing.T) {
	key := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{1}, 32))
	old := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{2}, 32))

	t.Run("Off", func(t *testing.T) {
		active, fallback, err := Config{}.Keys()
		require.NoError(t, err)
		assert.Nil(t, active)
		assert.Nil(t, fallback)
	})

	t.Run("From env", func(t *testing.T) {
		t.Setenv("EXTRUDE_ENCRYPTION_KEY", key)
		t.Setenv("EXTRUDE_ENCRYPTION_FALLBACK_KEYS", old)
		cfg, err := Load()
		require.NoError(t, err)

		active, fallback, err := cfg.Keys()
		require.NoError(t, err)
		assert.Len(t, active, 32)
		require.Len(t, fallback, 1)
		assert.Equal(t, byte(2), fallback[0][0])
	})

	t.Run("Short key", func(t *testing.T) {
		t.Setenv("EXTRUDE_ENCRYPTION_KEY", base64.StdEncoding.EncodeToString([]byte("short")))
		_, err := Load()
		assert.ErrorContains(t, err, "want 32 bytes")
	})

	t.Run("Fallback without active", func(t *testing.T) {
		_, _, err := Config{EncryptionFallbackKeys: []string{old}}.Keys()
		assert.ErrorContains(t, err, "without an active key")
	})
}
