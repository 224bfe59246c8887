package main

import (
	"testing"

	"github.com/aretw0/extrude/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagCommand(t *testing.T, set map[string]string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("store", config.StoreMemory, "")
	cmd.Flags().Int("port", 8080, "")
	for name, value := range set {
		require.NoError(t, cmd.Flags().Set(name, value))
	}
	return cmd
}

func TestLoadConfig_FlagOverridesInvalidEnv(t *testing.T) {
	t.Setenv("EXTRUDE_STORE", "s3")

	cfg, err := loadConfig(newFlagCommand(t, map[string]string{"store": config.StoreMemory}))
	require.NoError(t, err)
	assert.Equal(t, config.StoreMemory, cfg.Store)
}

func TestLoadConfig_ValidatesAfterFlags(t *testing.T) {
	_, err := loadConfig(newFlagCommand(t, map[string]string{"port": "70000"}))
	assert.ErrorContains(t, err, "out of range")

	t.Setenv("EXTRUDE_STORE", "s3")
	_, err = loadConfig(newFlagCommand(t, nil))
	assert.ErrorContains(t, err, `unknown store "s3"`)
}
