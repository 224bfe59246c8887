package main

import (
	"fmt"

	"github.com/aretw0/extrude"
	"github.com/aretw0/extrude/internal/cli"
	"github.com/spf13/cobra"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the generator units and their parameters",
	RunE: func(cmd *cobra.Command, args []string) error {
		units := extrude.New().Units()
		out := cmd.OutOrStdout()
		if format := outputFormat(cmd); format != cli.FormatText {
			return cli.Encode(out, format, units)
		}

		for _, u := range units {
			fmt.Fprintf(out, "%s\t%s\n", u.Name, u.Description)
			for _, p := range u.Params {
				fmt.Fprintf(out, "  %-20s default %-6g %s\n", p.Name, p.Default, p.Description)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unitsCmd)
}
