package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/extrude"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of extrude",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "extrude version %s\n", strings.TrimSpace(extrude.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
