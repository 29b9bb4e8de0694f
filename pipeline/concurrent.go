package pipeline

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/kbukum/streamkit/collect"
	"github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/optional"
)

// produce runs fn on its own goroutine and closes source there once fn
// returns, so Next and Close are never called concurrently. The returned wait
// blocks until that goroutine exits and reports the Close error.
func produce[T any](source Iterator[T], fn func()) (wait func() error) {
	done := make(chan struct{})
	var closeErr error
	go func() {
		defer close(done)
		defer func() { closeErr = source.Close() }()
		fn()
	}()
	return func() error {
		<-done
		return closeErr
	}
}

// Buffer adds a buffered channel between pipeline stages.
// This decouples the production rate from the consumption rate.
func Buffer[T any](p *Pipeline[T], size int) *Pipeline[T] {
	if size <= 0 {
		return invalid[T](errors.NotPositive("size", size))
	}
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			source := p.create(ctx)
			bufCtx, cancel := context.WithCancel(ctx)
			ch := make(chan result[T], size)

			wait := produce(source, func() {
				defer close(ch)
				for {
					val, ok, err := source.Next(bufCtx)
					if err != nil {
						select {
						case ch <- result[T]{err: err}:
						case <-bufCtx.Done():
						}
						return
					}
					if !ok {
						return
					}
					select {
					case ch <- result[T]{val: val, ok: true}:
					case <-bufCtx.Done():
						return
					}
				}
			})

			return &channelIter[T]{
				ch: ch,
				closer: func() error {
					cancel()
					return wait()
				},
			}
		},
	}
}

// Parallel applies fn to each value concurrently with n workers.
// Order is NOT preserved. Use ParallelOrdered or Map for ordered processing.
func Parallel[I, O any](p *Pipeline[I], n int, fn func(context.Context, I) (O, error)) *Pipeline[O] {
	if n <= 0 {
		return invalid[O](errors.NotPositive("workers", n))
	}
	if fn == nil {
		return invalid[O](nilFunc("parallel"))
	}
	return &Pipeline[O]{
		create: func(ctx context.Context) Iterator[O] {
			source := p.create(ctx)
			workerCtx, cancel := context.WithCancel(ctx)
			out := make(chan result[O], n)
			in := make(chan I, n)

			var wg sync.WaitGroup

			// Producer: pull from source into input channel
			wait := produce(source, func() {
				defer close(in)
				for {
					val, ok, err := source.Next(workerCtx)
					if err != nil {
						select {
						case out <- result[O]{err: err}:
						case <-workerCtx.Done():
						}
						return
					}
					if !ok {
						return
					}
					select {
					case in <- val:
					case <-workerCtx.Done():
						return
					}
				}
			})

			// Workers: process input and write to output
			for range n {
				wg.Go(func() {
					for val := range in {
						o, err := fn(workerCtx, val)
						if err != nil {
							select {
							case out <- result[O]{err: err}:
							case <-workerCtx.Done():
							}
							cancel()
							return
						}
						select {
						case out <- result[O]{val: o, ok: true}:
						case <-workerCtx.Done():
							return
						}
					}
				})
			}

			go func() {
				wg.Wait()
				close(out)
			}()

			return &channelIter[O]{
				ch: out,
				closer: func() error {
					cancel()
					return wait()
				},
			}
		},
	}
}

// ParallelOrdered applies fn to each value concurrently with n workers and
// yields the results in source order. At most n results wait for delivery.
func ParallelOrdered[I, O any](p *Pipeline[I], n int, fn func(context.Context, I) (O, error)) *Pipeline[O] {
	if n <= 0 {
		return invalid[O](errors.NotPositive("workers", n))
	}
	if fn == nil {
		return invalid[O](nilFunc("parallel"))
	}
	type job struct {
		val I
		out chan<- result[O]
	}
	return &Pipeline[O]{
		create: func(ctx context.Context) Iterator[O] {
			source := p.create(ctx)
			workerCtx, cancel := context.WithCancel(ctx)
			jobs := make(chan job, n)
			// one single-use slot per value, queued in source order
			slots := make(chan chan result[O], n)

			wait := produce(source, func() {
				defer close(jobs)
				defer close(slots)
				for {
					val, ok, err := source.Next(workerCtx)
					if !ok && err == nil {
						return
					}
					slot := make(chan result[O], 1)
					select {
					case slots <- slot:
					case <-workerCtx.Done():
						return
					}
					if err != nil {
						slot <- result[O]{err: err}
						return
					}
					select {
					case jobs <- job{val: val, out: slot}:
					case <-workerCtx.Done():
						return
					}
				}
			})

			for range n {
				go func() {
					for j := range jobs {
						o, err := fn(workerCtx, j.val)
						j.out <- result[O]{val: o, ok: err == nil, err: err}
					}
				}()
			}

			return &orderedIter[O]{
				slots: slots,
				closer: func() error {
					cancel()
					return wait()
				},
			}
		},
	}
}

type orderedIter[O any] struct {
	slots  <-chan chan result[O]
	closer func() error
}

func (it *orderedIter[O]) Next(ctx context.Context) (O, bool, error) {
	var zero O
	select {
	case slot, open := <-it.slots:
		if !open {
			return zero, false, nil
		}
		select {
		case r := <-slot:
			if r.err != nil {
				return zero, false, r.err
			}
			return r.val, true, nil
		case <-ctx.Done():
			return zero, false, ctx.Err()
		}
	case <-ctx.Done():
		return zero, false, ctx.Err()
	}
}

func (it *orderedIter[O]) Close() error { return it.closer() }

// Merge combines multiple pipelines concurrently.
// Values are yielded as they become available from any source.
// Order is NOT preserved.
func Merge[T any](pipelines ...*Pipeline[T]) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			mergeCtx, cancel := context.WithCancel(ctx)
			ch := make(chan result[T], len(pipelines))
			var wg sync.WaitGroup
			closeErrs := make([]error, len(pipelines))

			for i, p := range pipelines {
				iter := p.create(mergeCtx)
				wg.Go(func() {
					defer func() { closeErrs[i] = iter.Close() }()
					for {
						val, ok, err := iter.Next(mergeCtx)
						if err != nil {
							select {
							case ch <- result[T]{err: err}:
							case <-mergeCtx.Done():
							}
							return
						}
						if !ok {
							return
						}
						select {
						case ch <- result[T]{val: val, ok: true}:
						case <-mergeCtx.Done():
							return
						}
					}
				})
			}

			go func() {
				wg.Wait()
				close(ch)
			}()

			return &channelIter[T]{
				ch: ch,
				closer: func() error {
					cancel()
					wg.Wait()
					for _, err := range closeErrs {
						if err != nil {
							return err
						}
					}
					return nil
				},
			}
		},
	}
}

// --- Parallel terminals ---

// fanIn pulls p on one goroutine and hands the values to workers goroutines
// running fn, all under one errgroup. The first error cancels the rest.
func fanIn[T any](ctx context.Context, p *Pipeline[T], workers int, fn func(context.Context, T) error) error {
	g, gctx := errgroup.WithContext(ctx)
	in := make(chan T, workers)

	g.Go(func() error {
		defer close(in)
		source := p.create(gctx)
		defer source.Close()
		for {
			val, ok, err := source.Next(gctx)
			if err != nil || !ok {
				return err
			}
			select {
			case in <- val:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
	})
	for range workers {
		g.Go(func() error {
			for val := range in {
				if err := fn(gctx, val); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// ForEachParallel calls fn for every value on workers goroutines. Calls may
// happen in any order and concurrently.
func ForEachParallel[T any](ctx context.Context, p *Pipeline[T], workers int, fn func(context.Context, T) error) error {
	if workers <= 0 {
		return errors.NotPositive("workers", workers)
	}
	if fn == nil {
		return nilFunc("forEach")
	}
	return fanIn(ctx, p, workers, fn)
}

// ForEachOrdered computes fn for the values on workers goroutines and calls
// deliver with the results one at a time in source order.
func ForEachOrdered[I, O any](ctx context.Context, p *Pipeline[I], workers int, compute func(context.Context, I) (O, error), deliver func(O) error) error {
	if deliver == nil {
		return nilFunc("deliver")
	}
	return ForEach(ctx, ParallelOrdered(p, workers, compute), func(_ context.Context, o O) error {
		return deliver(o)
	})
}

// FindAnyParallel searches for a value satisfying pred on workers
// goroutines and stops the search as soon as one is found. Which matching
// value is returned is not defined.
func FindAnyParallel[T any](ctx context.Context, p *Pipeline[T], workers int, pred func(T) bool) (optional.Optional[T], error) {
	if workers <= 0 {
		return optional.Empty[T](), errors.NotPositive("workers", workers)
	}
	if pred == nil {
		return optional.Empty[T](), nilFunc("predicate")
	}

	searchCtx, stop := context.WithCancel(ctx)
	defer stop()
	var (
		once  sync.Once
		found = optional.Empty[T]()
	)
	err := fanIn(searchCtx, p, workers, func(_ context.Context, v T) error {
		if pred(v) {
			once.Do(func() {
				found = optional.Of(v)
				stop()
			})
		}
		return nil
	})
	if found.IsPresent() {
		return found, nil
	}
	return found, err
}

// AggregateParallel materializes the pipeline, splits the values into
// partitions contiguous chunks, accumulates the chunks concurrently and merges
// the partial results in chunk order.
func AggregateParallel[T, R any](ctx context.Context, p *Pipeline[T], c collect.Collector[T, R], partitions int) (R, error) {
	items, err := Collect(ctx, p)
	if err != nil {
		var zero R
		return zero, err
	}
	return collect.Parallel(ctx, items, c, partitions)
}
