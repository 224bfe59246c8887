package main

import (
	"fmt"

	"github.com/aretw0/extrude/internal/cli"
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets [name]",
	Short: "List presets, or show one",
	Long:  `Lists the presets found in --preset-dir, or shows the unit and params of one preset.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, err := openBackend(cmd)
		if err != nil {
			return err
		}
		defer b.Close()

		out := cmd.OutOrStdout()
		format := outputFormat(cmd)

		if len(args) == 1 {
			p, err := b.Engine.Preset(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if format != cli.FormatText {
				return cli.Encode(out, format, p)
			}
			fmt.Fprintf(out, "%s (%s)\n", p.Name, p.Unit)
			if p.Description != "" {
				fmt.Fprintf(out, "  %s\n", p.Description)
			}
			return cli.Encode(out, cli.FormatYAML, p.Params)
		}

		names, err := b.Engine.Presets(cmd.Context())
		if err != nil {
			return err
		}
		if format != cli.FormatText {
			return cli.Encode(out, format, names)
		}
		for _, name := range names {
			fmt.Fprintln(out, name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
