package main

import (
	"fmt"

	"github.com/aretw0/extrude/internal/cli"
	"github.com/aretw0/extrude/internal/presentation/tui"
	"github.com/aretw0/extrude/pkg/runner"
	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs <file>",
	Short: "Run a batch of jobs from a YAML or JSON file",
	Long: `Runs every job in the file and reports each outcome. A failing job does
not stop the others; the command fails when any job failed.

With --lock each job ID is locked while it runs. The redis store locks
across processes so several runners can share one job file; the other
stores lock within this process only.`,
	Example: `  extrude jobs nightly.yaml --parallel 4 --store redis --lock`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parallel, _ := cmd.Flags().GetInt("parallel")
		lock, _ := cmd.Flags().GetBool("lock")

		jobs, err := runner.LoadJobs(args[0])
		if err != nil {
			return err
		}

		b, cfg, err := openBackend(cmd)
		if err != nil {
			return err
		}
		defer b.Close()

		opts := []runner.Option{
			runner.WithParallelism(parallel),
			runner.WithLogger(cli.NewLogger(cfg.Debug)),
		}
		if lock {
			opts = append(opts, runner.WithLocker(b.Locker))
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		rep, runErr := runner.NewRunner(opts...).Run(ctx, b.Engine, jobs)
		if rep == nil {
			return runErr
		}

		out := cmd.OutOrStdout()
		if format := outputFormat(cmd); format != cli.FormatText {
			if err := cli.Encode(out, format, rep); err != nil {
				return err
			}
		} else {
			for _, jr := range rep.Jobs {
				switch {
				case jr.OK():
					fmt.Fprintf(out, "%s %-24s %s\n", tui.Status(true, "ok  "), jr.Job.ID, jr.ResultID)
				case jr.Skipped:
					fmt.Fprintf(out, "%s %-24s %s\n", tui.Status(false, "skip"), jr.Job.ID, jr.Error)
				default:
					fmt.Fprintf(out, "%s %-24s %s\n", tui.Status(false, "fail"), jr.Job.ID, jr.Error)
				}
			}
			fmt.Fprintf(out, "\n%d succeeded, %d failed\n", rep.Succeeded(), rep.Failed())
		}

		if runErr != nil {
			return runErr
		}
		if rep.Failed() > 0 {
			return fmt.Errorf("%d of %d jobs failed", rep.Failed(), len(rep.Jobs))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)
	jobsCmd.Flags().Int("parallel", 1, "Maximum number of concurrent jobs")
	jobsCmd.Flags().Bool("lock", false, "Lock each job ID while it runs")
}
