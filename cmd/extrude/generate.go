package main

import (
	"errors"
	"fmt"

	"github.com/aretw0/extrude/internal/cli"
	"github.com/aretw0/extrude/internal/presentation/report"
	"github.com/aretw0/extrude/internal/presentation/tui"
	"github.com/aretw0/extrude/pkg/domain"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [unit]",
	Short: "Run a unit and publish its solid",
	Long: `Runs a generator unit (frame, track or rail) and publishes the result.

Params come from --params (YAML or JSON file) overlaid by repeated
--param key=value flags. With --preset, the preset names the unit and its
params; flags override them.`,
	Example: `  extrude generate rail --param degradation_state=10
  extrude generate track --params wide.yaml -o json
  extrude generate --preset worn-rail --param profile_scale=2`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		presetName, _ := cmd.Flags().GetString("preset")
		paramsFile, _ := cmd.Flags().GetString("params")
		pairs, _ := cmd.Flags().GetStringArray("param")

		if presetName == "" && len(args) == 0 {
			return errors.New("a unit or --preset is required")
		}
		if presetName != "" && len(args) > 0 {
			return errors.New("a unit and --preset are exclusive")
		}

		params, err := cli.ParseParams(paramsFile, pairs)
		if err != nil {
			return err
		}

		b, _, err := openBackend(cmd)
		if err != nil {
			return err
		}
		defer b.Close()

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		var res *domain.Result
		if presetName != "" {
			res, err = b.Engine.GeneratePreset(ctx, presetName, params)
		} else {
			res, err = b.Engine.Generate(ctx, args[0], params)
		}
		if err != nil {
			return err
		}
		return printResult(cmd, res)
	},
}

func printResult(cmd *cobra.Command, res *domain.Result) error {
	out := cmd.OutOrStdout()
	format := outputFormat(cmd)
	if format != cli.FormatText {
		return cli.Encode(out, format, res)
	}
	rendered, err := tui.RendererFor(out)(report.Markdown(res))
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringArrayP("param", "p", nil, "Parameter as key=value (repeatable)")
	generateCmd.Flags().String("params", "", "YAML or JSON file of parameters")
	generateCmd.Flags().String("preset", "", "Preset name from --preset-dir")
}
