package main

import (
	"fmt"

	"github.com/aretw0/extrude/internal/cli"
	"github.com/aretw0/extrude/internal/presentation/report"
	"github.com/aretw0/extrude/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Inspect published results",
}

var resultsListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List result IDs",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, err := openBackend(cmd)
		if err != nil {
			return err
		}
		defer b.Close()

		ids, err := b.Engine.Results(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if format := outputFormat(cmd); format != cli.FormatText {
			return cli.Encode(out, format, ids)
		}
		for _, id := range ids {
			fmt.Fprintln(out, id)
		}
		return nil
	},
}

var resultsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a result report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, err := openBackend(cmd)
		if err != nil {
			return err
		}
		defer b.Close()

		res, err := b.Engine.Result(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printResult(cmd, res)
	},
}

var resultsRemoveCmd = &cobra.Command{
	Use:     "rm <id>...",
	Aliases: []string{"delete"},
	Short:   "Delete results",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, err := openBackend(cmd)
		if err != nil {
			return err
		}
		defer b.Close()

		for _, id := range args {
			if err := b.Engine.DeleteResult(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)
		}
		return nil
	},
}

var resultsDiffCmd = &cobra.Command{
	Use:   "diff <from> <to>",
	Short: "Compare two results",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, err := openBackend(cmd)
		if err != nil {
			return err
		}
		defer b.Close()

		d, err := b.Engine.Diff(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if format := outputFormat(cmd); format != cli.FormatText {
			return cli.Encode(out, format, d)
		}
		rendered, err := tui.RendererFor(out)(report.DiffMarkdown(d))
		if err != nil {
			return fmt.Errorf("failed to render diff: %w", err)
		}
		_, err = fmt.Fprint(out, rendered)
		return err
	},
}

func init() {
	rootCmd.AddCommand(resultsCmd)
	resultsCmd.AddCommand(resultsListCmd, resultsShowCmd, resultsRemoveCmd, resultsDiffCmd)
}
