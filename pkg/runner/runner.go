package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/extrude/pkg/domain"
	"github.com/aretw0/extrude/pkg/ports"
	"golang.org/x/sync/errgroup"
)

// Engine is what the runner drives; *extrude.Engine satisfies it.
type Engine interface {
	Generate(ctx context.Context, unit string, params domain.Context) (*domain.Result, error)
	GeneratePreset(ctx context.Context, name string, overrides domain.Context) (*domain.Result, error)
}

// Runner executes jobs against an engine.
type Runner struct {
	// Logger is used for per-job logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Parallelism is the maximum number of concurrent jobs.
	Parallelism int

	// Locker, when set, holds a lock per job ID while the job runs.
	Locker     ports.DistributedLocker
	LockTTL    time.Duration
	LockPrefix string
}

// NewRunner creates a sequential Runner without locking.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Parallelism: 1,
		LockTTL:     DefaultLockTTL,
		LockPrefix:  DefaultLockPrefix,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Parallelism < 1 {
		r.Parallelism = 1
	}
	return r
}

// JobResult is the outcome of one job.
type JobResult struct {
	Job         Job           `json:"job" yaml:"job"`
	ResultID    string        `json:"result_id,omitempty" yaml:"result_id,omitempty"`
	Fingerprint string        `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
	Duration    time.Duration `json:"duration" yaml:"duration"`
	Skipped     bool          `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Error       string        `json:"error,omitempty" yaml:"error,omitempty"`
	Err         error         `json:"-" yaml:"-"`
}

// OK reports whether the job published a result.
func (jr JobResult) OK() bool {
	return jr.Err == nil && !jr.Skipped
}

// Report lists job outcomes in input order.
type Report struct {
	Jobs []JobResult `json:"jobs" yaml:"jobs"`
}

// Succeeded counts jobs that published a result.
func (r *Report) Succeeded() int {
	n := 0
	for _, j := range r.Jobs {
		if j.OK() {
			n++
		}
	}
	return n
}

// Failed counts jobs that ran and failed or were skipped.
func (r *Report) Failed() int {
	return len(r.Jobs) - r.Succeeded()
}

// Err joins every job error, nil when all jobs succeeded.
func (r *Report) Err() error {
	var errs []error
	for _, j := range r.Jobs {
		if j.Err != nil {
			errs = append(errs, fmt.Errorf("job %s: %w", j.Job.ID, j.Err))
		}
	}
	return errors.Join(errs...)
}

// Run validates and executes jobs. Job failures are recorded in the report,
// not returned. The returned error is a validation error or ctx's error when
// cancellation stopped jobs from starting.
func (r *Runner) Run(ctx context.Context, eng Engine, jobs []Job) (*Report, error) {
	if err := ValidateJobs(jobs); err != nil {
		return nil, err
	}

	report := &Report{Jobs: make([]JobResult, len(jobs))}
	var g errgroup.Group
	g.SetLimit(r.Parallelism)

	for i, job := range jobs {
		if err := ctx.Err(); err != nil {
			for k := i; k < len(jobs); k++ {
				report.Jobs[k] = skipped(jobs[k], err)
			}
			break
		}
		g.Go(func() error {
			report.Jobs[i] = r.runJob(ctx, eng, job)
			return nil
		})
	}
	_ = g.Wait()

	r.Logger.Info("jobs finished",
		"total", len(jobs),
		"succeeded", report.Succeeded(),
		"failed", report.Failed(),
	)
	return report, ctx.Err()
}

func (r *Runner) runJob(ctx context.Context, eng Engine, job Job) JobResult {
	if err := ctx.Err(); err != nil {
		return skipped(job, err)
	}

	logger := r.Logger.With("job", job.ID)
	if r.Locker != nil {
		unlock, err := r.Locker.Lock(ctx, r.LockPrefix+job.ID, r.LockTTL)
		if err != nil {
			logger.Warn("job lock failed", "err", err)
			return skipped(job, fmt.Errorf("failed to lock job: %w", err))
		}
		defer func() {
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				logger.Warn("job unlock failed", "err", err)
			}
		}()
	}

	start := time.Now()
	var (
		res *domain.Result
		err error
	)
	if job.Preset != "" {
		res, err = eng.GeneratePreset(ctx, job.Preset, job.Params)
	} else {
		res, err = eng.Generate(ctx, job.Unit, job.Params)
	}

	jr := JobResult{Job: job, Duration: time.Since(start)}
	if err != nil {
		logger.Warn("job failed", "err", err)
		jr.Err = err
		jr.Error = err.Error()
		return jr
	}
	logger.Debug("job done", "result", res.ID)
	jr.ResultID = res.ID
	jr.Fingerprint = res.Solid.Fingerprint
	return jr
}

func skipped(job Job, err error) JobResult {
	return JobResult{Job: job, Skipped: true, Err: err, Error: err.Error()}
}
