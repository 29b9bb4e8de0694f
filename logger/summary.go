package logger

import (
	"sync"
	"time"
)

// RunResult records the outcome of one demo problem.
type RunResult struct {
	ID       int
	Name     string
	Status   string // "ok" or "failed"
	Elements int64
	Duration time.Duration
	Err      error
}

// RunSummary collects problem outcomes for an end-of-run report.
// It is safe for concurrent use.
type RunSummary struct {
	mu        sync.Mutex
	startTime time.Time
	results   []RunResult
}

// NewRunSummary creates an empty summary starting now.
func NewRunSummary() *RunSummary {
	return &RunSummary{startTime: time.Now(), results: make([]RunResult, 0)}
}

// Record adds a problem outcome.
func (s *RunSummary) Record(r RunResult) {
	if r.Status == "" {
		r.Status = "ok"
		if r.Err != nil {
			r.Status = "failed"
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, r)
}

// Results returns the recorded outcomes in recording order.
func (s *RunSummary) Results() []RunResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RunResult, len(s.results))
	copy(out, s.results)
	return out
}

// Failed returns the number of failed problems.
func (s *RunSummary) Failed() int {
	n := 0
	for _, r := range s.Results() {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// Elapsed returns the time since the summary was created.
func (s *RunSummary) Elapsed() time.Duration {
	return time.Since(s.startTime)
}

// Log writes one line per problem followed by a totals line.
func (s *RunSummary) Log(l *Logger) {
	results := s.Results()
	for _, r := range results {
		fields := Fields(
			FieldProblem, r.Name,
			FieldStatus, r.Status,
			FieldElements, r.Elements,
			FieldDuration, r.Duration.Milliseconds(),
		)
		if r.Err != nil {
			fields[FieldError] = r.Err.Error()
			l.Error("problem summary", fields)
			continue
		}
		l.Info("problem summary", fields)
	}
	l.Info("run complete", Fields(
		"problems", len(results),
		"failed", s.Failed(),
		FieldDuration, s.Elapsed().Milliseconds(),
	))
}
