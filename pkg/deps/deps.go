package deps

import (
	"context"
)

// Options configures dependency resolution behavior.
type Options struct {
	MaxDepth int                  // Maximum depth to expand (0: unlimited)
	Refresh  bool                 // Bypass cache for fresh data
	Strict   bool                 // Fail on non-success registry status
	Logger   func(string, ...any) // Warning callback (optional)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.MaxDepth < 0 {
		opts.MaxDepth = 0
	}
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// Fetcher retrieves the direct dependencies of a package from a registry.
type Fetcher interface {
	// FetchDependencies returns the ids of the packages name depends on, in
	// the order the registry lists them. If refresh is true, cached data is
	// bypassed.
	FetchDependencies(ctx context.Context, name string, refresh bool) ([]string, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, name string, refresh bool) ([]string, error)

// FetchDependencies calls f.
func (f FetcherFunc) FetchDependencies(ctx context.Context, name string, refresh bool) ([]string, error) {
	return f(ctx, name, refresh)
}
