/*
Package runner executes batches of unit runs (jobs) against an extrude engine.

A job names either a unit and its params or a preset plus overrides. Jobs are
loaded from YAML or JSON files, run with bounded parallelism and reported
one by one: a failing job never aborts the others. When several runner
processes share a result store, a ports.DistributedLocker (for example the
redis adapter's Locker) keeps each job ID on one process at a time.

# Usage

	jobs, err := runner.LoadJobs("jobs.yaml")
	if err != nil {
		log.Fatal(err)
	}

	r := runner.NewRunner(
		runner.WithParallelism(4),
		runner.WithLogger(logger),
	)
	report, err := r.Run(ctx, engine, jobs)
*/
package runner
