package demos

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/logger"
)

// RunFunc executes one problem, writing its results to env.Report.
type RunFunc func(ctx context.Context, env *Env) error

// Problem is one numbered teaching problem.
type Problem struct {
	ID    int
	Slug  string
	Title string
	Run   RunFunc
}

// Env is what a running problem may use.
type Env struct {
	Report  *Report
	Workers int
	Log     *logger.Logger
}

// Registry holds problems by id and slug.
type Registry struct {
	mu     sync.RWMutex
	byID   map[int]Problem
	bySlug map[string]int
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[int]Problem),
		bySlug: make(map[string]int),
	}
}

// Register adds p. Ids and slugs must be unique.
func (r *Registry) Register(p Problem) error {
	if p.Run == nil {
		return errors.NilFunc("run")
	}
	if p.ID <= 0 {
		return errors.NotPositive("id", p.ID)
	}
	if p.Slug == "" {
		return errors.InvalidArgument("slug", "must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.ID]; ok {
		return errors.DuplicateKey(p.ID)
	}
	if _, ok := r.bySlug[p.Slug]; ok {
		return errors.DuplicateKey(p.Slug)
	}
	r.byID[p.ID] = p
	r.bySlug[p.Slug] = p.ID
	return nil
}

// MustRegister is Register for package initialization.
func (r *Registry) MustRegister(p Problem) {
	if err := r.Register(p); err != nil {
		panic(err)
	}
}

// Lookup resolves a problem by numeric id or by slug.
func (r *Registry) Lookup(ref string) (Problem, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))

	r.mu.RLock()
	defer r.mu.RUnlock()
	if id, err := strconv.Atoi(ref); err == nil {
		if p, ok := r.byID[id]; ok {
			return p, nil
		}
		return Problem{}, errors.NotFound("problem", ref)
	}
	if id, ok := r.bySlug[ref]; ok {
		return r.byID[id], nil
	}
	return Problem{}, errors.NotFound("problem", ref)
}

// All returns every problem ordered by id.
func (r *Registry) All() []Problem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Problem, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Problem) int { return a.ID - b.ID })
	return out
}

// Select resolves refs in the given order, dropping repeats. No refs selects
// every problem.
func (r *Registry) Select(refs []string) ([]Problem, error) {
	if len(refs) == 0 {
		return r.All(), nil
	}
	seen := make(map[int]struct{}, len(refs))
	out := make([]Problem, 0, len(refs))
	for _, ref := range refs {
		p, err := r.Lookup(ref)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out, nil
}

var defaultRegistry = NewRegistry()

// Default returns the registry holding the built-in problems.
func Default() *Registry { return defaultRegistry }

// Report writes a problem's output and counts the results it shows.
type Report struct {
	w       io.Writer
	results int64
}

// NewReport creates a Report writing to w.
func NewReport(w io.Writer) *Report {
	return &Report{w: w}
}

// Title prints the problem banner.
func (r *Report) Title(id int, title string) {
	fmt.Fprintf(r.w, "=== Problem %d: %s ===\n", id, title)
}

// Section starts a titled block.
func (r *Report) Section(title string) {
	fmt.Fprintf(r.w, "\n--- %s ---\n", title)
}

// Line prints free text.
func (r *Report) Line(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Result prints one labelled value and counts it.
func (r *Report) Result(label string, v any) {
	r.results++
	fmt.Fprintf(r.w, "   %s: %v\n", label, v)
}

// Results returns how many results were printed.
func (r *Report) Results() int64 { return r.results }
