package async

import (
	"context"
)

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await waits for the asynchronous function to complete and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// Async executes fn(ctx, param) in a new goroutine and returns its Future.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		// Early exit prevents running work for an already cancelled caller
		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}

		f.result, f.err = fn(ctx, param)
	}()

	return f
}

// WaitAll waits for the futures in order and returns their results. It stops
// at the first error, returning the results collected so far alongside it.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))

	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil {
			return results, err
		}
	}

	return results, nil
}

// Map runs fn for every item with at most limit goroutines in flight and
// returns the results in the order of items. A limit <= 0 means one goroutine
// per item. Map returns early with the context error when ctx is cancelled
// while items are still being scheduled.
func Map[T any, U any](ctx context.Context, limit int, items []T, fn func(context.Context, T) (U, error)) ([]U, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	if len(items) == 0 {
		return []U{}, nil
	}
	if limit <= 0 || limit > len(items) {
		limit = len(items)
	}

	sem := make(chan struct{}, limit)
	futures := make([]*Future[U], len(items))

	for i, item := range items {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		futures[i] = Async(ctx, item, func(ctx context.Context, v T) (U, error) {
			defer func() { <-sem }()
			return fn(ctx, v)
		})
	}

	return WaitAll(futures...)
}
