// Package async provides generic helpers for running computations
// concurrently and collecting their results.
//
// Async starts a function in its own goroutine and returns a Future that is
// completed with the function's result. WaitAll collects the results of many
// futures in order. Map applies a function to every element of a slice with a
// bounded number of goroutines and returns the results in input order.
//
//	lengths, err := async.Map(ctx, 4, words, func(_ context.Context, w string) (int, error) {
//	    return len(w), nil
//	})
//
// All helpers are context-aware: a Future whose context is cancelled before
// the function starts completes with the context error.
package async
