package demos

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/logger"
	"github.com/kbukum/streamkit/observability"
	"github.com/kbukum/streamkit/pipeline"
	"github.com/kbukum/streamkit/validation"
)

// MaxWorkers bounds how many problems run at once.
const MaxWorkers = 64

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithWorkers sets how many problems run concurrently. Problems also receive
// the value in Env.Workers for their own parallel stages.
func WithWorkers(n int) RunnerOption {
	return func(r *Runner) { r.workers = n }
}

// WithRunID sets the run identifier. It must be a UUID.
func WithRunID(id string) RunnerOption {
	return func(r *Runner) { r.runID = id }
}

// WithLogger sets the logger used for per-problem events. Without it the
// runner logs through logger.Get(logger.ComponentRunner).
func WithLogger(l *logger.Logger) RunnerOption {
	return func(r *Runner) { r.log = l }
}

// WithMetrics records problem runs on m.
func WithMetrics(m *observability.RunMetrics) RunnerOption {
	return func(r *Runner) { r.metrics = m }
}

// Runner executes problems and writes their reports to one writer.
// Problems are computed concurrently but their output appears in the order
// they were selected.
type Runner struct {
	out     io.Writer
	log     *logger.Logger
	metrics *observability.RunMetrics
	workers int
	runID   string
}

// NewRunner creates a Runner writing to out. Without WithRunID a random
// run id is generated.
func NewRunner(out io.Writer, opts ...RunnerOption) (*Runner, error) {
	r := &Runner{out: out, workers: 1}
	for _, opt := range opts {
		opt(r)
	}
	if r.runID == "" {
		r.runID = uuid.NewString()
	}

	v := validation.New().
		RequiredUUID("run_id", r.runID).
		Range("workers", r.workers, 1, MaxWorkers).
		Custom(out != nil, "output", "is required")
	if err := v.Validate(); err != nil {
		return nil, err
	}

	if r.log == nil {
		r.log = logger.Get(logger.ComponentRunner)
	} else {
		r.log = r.log.WithComponent(logger.ComponentRunner)
	}
	r.log = r.log.WithRunID(r.runID)
	return r, nil
}

// RunID returns the run identifier.
func (r *Runner) RunID() string { return r.runID }

type outcome struct {
	output *bytes.Buffer
	result logger.RunResult
}

// Run executes problems and returns the summary of their outcomes. A failing
// problem is recorded in the summary and does not stop the others; the
// returned error reports only failures of the run itself, such as a
// cancelled context or a broken writer.
func (r *Runner) Run(ctx context.Context, problems []Problem) (*logger.RunSummary, error) {
	summary := logger.NewRunSummary()
	ctx = logger.ContextWithRunID(ctx, r.runID)
	ctx, span := observability.StartSpan(ctx, observability.SpanRun, trace.WithAttributes(
		attribute.String(observability.AttrRunID, r.runID),
		attribute.Int(observability.AttrWorkers, r.workers),
	))
	defer span.End()

	r.log.Info("run started", logger.Fields("problems", len(problems), logger.FieldWorkers, r.workers))

	err := pipeline.ForEachOrdered(ctx, pipeline.FromSlice(problems), r.workers,
		func(ctx context.Context, p Problem) (outcome, error) {
			return r.runOne(ctx, p), nil
		},
		func(o outcome) error {
			summary.Record(o.result)
			if _, err := o.output.WriteTo(r.out); err != nil {
				return errors.Internal(err).WithDetail("problem", o.result.Name)
			}
			return nil
		},
	)
	if err != nil {
		observability.SetSpanError(ctx, err)
		return summary, err
	}
	if failed := summary.Failed(); failed > 0 {
		span.SetAttributes(attribute.Int("run.failed", failed))
	}
	return summary, nil
}

// runOne executes p into a private buffer. Panics are reported as INTERNAL
// errors of the problem.
func (r *Runner) runOne(ctx context.Context, p Problem) (o outcome) {
	buf := &bytes.Buffer{}
	report := NewReport(buf)
	log := r.log.WithFields(logger.Fields(logger.FieldProblem, p.Slug))

	pc := observability.NewProblemContext(r.runID, p.ID, p.Slug, r.metrics)
	ctx, span := pc.Start(logger.ContextWithProblem(ctx, p.Slug))

	var err error
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.Internal(fmt.Errorf("problem %d panicked: %v", p.ID, rec))
		}
		pc.End(ctx, span, report.Results(), err)
		if err != nil {
			report.Line("   error: %v", err)
			log.Error("problem failed", logger.ErrorFields("run", err))
		} else {
			log.Debug("problem finished", logger.Fields(logger.FieldElements, report.Results()))
		}
		buf.WriteString("\n")
		o = outcome{
			output: buf,
			result: logger.RunResult{
				ID:       p.ID,
				Name:     p.Slug,
				Elements: report.Results(),
				Duration: pc.Duration(),
				Err:      err,
			},
		}
	}()

	report.Title(p.ID, p.Title)
	err = p.Run(ctx, &Env{Report: report, Workers: r.workers, Log: log})
	return o
}

// RunAll is a convenience for running every problem of the default registry
// with default options.
func RunAll(ctx context.Context, out io.Writer) (*logger.RunSummary, error) {
	runner, err := NewRunner(out)
	if err != nil {
		return nil, err
	}
	return runner.Run(ctx, Default().All())
}
