package uk

import (
	"context"
	"runtime"

	"github.com/dmitrymomot/postcodes/pkg/async"
)

// ParseAll parses every input concurrently and returns the results in input
// order. The only error is the context error when ctx is cancelled before all
// inputs were parsed.
func ParseAll(ctx context.Context, raws ...string) ([]Postcode, error) {
	return async.Map(ctx, runtime.GOMAXPROCS(0), raws, func(_ context.Context, raw string) (Postcode, error) {
		return Parse(raw), nil
	})
}
