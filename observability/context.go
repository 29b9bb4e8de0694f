package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ProblemContext holds observability state for one problem run.
type ProblemContext struct {
	RunID     string
	ProblemID int
	Problem   string
	StartTime time.Time
	Metrics   *RunMetrics
}

// NewProblemContext creates a new problem context.
// If metrics is nil, metric recording is silently skipped.
func NewProblemContext(runID string, problemID int, problem string, metrics *RunMetrics) *ProblemContext {
	return &ProblemContext{
		RunID:     runID,
		ProblemID: problemID,
		Problem:   problem,
		StartTime: time.Now(),
		Metrics:   metrics,
	}
}

type problemContextKey struct{}

// WithProblemContext stores a ProblemContext in the context.
func WithProblemContext(ctx context.Context, pc *ProblemContext) context.Context {
	return context.WithValue(ctx, problemContextKey{}, pc)
}

// ProblemContextFromContext retrieves the ProblemContext from context, or nil.
func ProblemContextFromContext(ctx context.Context) *ProblemContext {
	if pc, ok := ctx.Value(problemContextKey{}).(*ProblemContext); ok {
		return pc
	}
	return nil
}

// Start begins the problem span and records the start metric. The returned
// context carries both the span and the ProblemContext.
func (pc *ProblemContext) Start(ctx context.Context) (context.Context, trace.Span) {
	pc.StartTime = time.Now()
	ctx, span := StartSpan(ctx, SpanProblem, trace.WithAttributes(
		attribute.String(AttrRunID, pc.RunID),
		attribute.Int(AttrProblemID, pc.ProblemID),
		attribute.String(AttrProblemName, pc.Problem),
	))
	if pc.Metrics != nil {
		pc.Metrics.RecordStart(ctx)
	}
	return WithProblemContext(ctx, pc), span
}

// End closes the span and records the outcome.
func (pc *ProblemContext) End(ctx context.Context, span trace.Span, elements int64, err error) {
	duration := time.Since(pc.StartTime)
	status := "ok"

	if err != nil {
		status = "failed"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
	}

	span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int64(AttrElements, elements),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	span.End()

	if pc.Metrics != nil {
		pc.Metrics.RecordEnd(ctx, pc.Problem, status, elements, duration)
	}
}

// Duration returns the elapsed time since the problem started.
func (pc *ProblemContext) Duration() time.Duration {
	return time.Since(pc.StartTime)
}
