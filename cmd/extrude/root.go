package main

import (
	"fmt"
	"os"

	"github.com/aretw0/extrude/internal/cli"
	"github.com/aretw0/extrude/internal/config"
	"github.com/aretw0/extrude/pkg/domain"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "extrude",
	Short: "extrude generates parametric extrusion profile solids",
	Long: `extrude runs the frame, track and rail generator units against an
execution context and publishes each solid to a result store.

Settings come from EXTRUDE_* environment variables; flags override them.
The default store is in memory, so use --store file or --store redis to keep
results between invocations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	pf := rootCmd.PersistentFlags()
	pf.String("store", config.StoreMemory, "Result store: memory, file or redis (EXTRUDE_STORE)")
	pf.String("store-dir", "", "Directory of the file store (EXTRUDE_STORE_DIR)")
	pf.String("redis-addr", "", "Redis address (EXTRUDE_REDIS_ADDR)")
	pf.String("preset-dir", "", "Directory of preset documents (EXTRUDE_PRESET_DIR)")
	pf.Bool("debug", false, "Enable debug logging on stderr (EXTRUDE_DEBUG)")
	pf.StringP("output", "o", cli.FormatText, "Output format: text, json or yaml")
}

// loadConfig reads the environment, applies explicitly set flags, then
// validates the result once.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Parse()
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("store") {
		cfg.Store, _ = flags.GetString("store")
	}
	if flags.Changed("store-dir") {
		cfg.StoreDir, _ = flags.GetString("store-dir")
	}
	if flags.Changed("redis-addr") {
		cfg.RedisAddr, _ = flags.GetString("redis-addr")
	}
	if flags.Changed("preset-dir") {
		cfg.PresetDir, _ = flags.GetString("preset-dir")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	if flags.Lookup("port") != nil && flags.Changed("port") {
		cfg.Port, _ = flags.GetInt("port")
	}
	return cfg, cfg.Validate()
}

// openBackend builds the engine for a command.
func openBackend(cmd *cobra.Command, hooks ...domain.LifecycleHooks) (*cli.Backend, config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, config.Config{}, err
	}
	logger := cli.NewLogger(cfg.Debug)
	b, err := cli.NewBackend(cfg, logger, hooks...)
	if err != nil {
		return nil, config.Config{}, err
	}
	return b, cfg, nil
}

func outputFormat(cmd *cobra.Command) string {
	format, _ := cmd.Flags().GetString("output")
	return format
}
