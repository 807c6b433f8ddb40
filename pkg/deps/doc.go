// Package deps builds dependency graphs by walking a package registry.
//
// # Overview
//
// A [Fetcher] answers one question: which packages does this package
// declare as direct dependencies? [Registry] turns a Fetcher into a
// [Resolver] that follows those answers transitively from a root package
// and records every "depends on" relation in a [graph.Graph].
//
//	client := nuget.NewClient(cache.NewNullCache(), 24*time.Hour, "")
//	resolver := deps.NewRegistry("nuget", client)
//	g, err := resolver.Resolve(ctx, "Serilog", deps.Options{})
//
// # Traversal
//
// The walk is depth-first and pre-order. A package is marked visited before
// its dependencies are fetched, and each distinct package is fetched at most
// once per run, so cycles terminate. The edge to an already-visited package
// is still recorded; only the expansion is skipped. Edges appear in the
// order the walk discovers them.
//
// # Registry Failures
//
// A lookup that fails with a non-success HTTP status turns the package into
// a leaf: the failure is reported through [Options.Logger] and the package
// is recorded with [graph.Graph.MarkUnresolved]. With [Options.Strict] the
// failure aborts the walk instead. Any other error (transport failure,
// malformed response, cancellation) aborts the walk.
//
// # Options
//
//   - MaxDepth: depth limit, 0 means unlimited. Packages at the limit are
//     recorded but not fetched.
//   - Refresh: bypass cached registry responses.
//   - Strict: treat non-success statuses as fatal.
//   - Logger: receives warnings for packages that became leaves.
//
// [graph.Graph]: github.com/matzehuels/depviz/pkg/graph.Graph
// [graph.Graph.MarkUnresolved]: github.com/matzehuels/depviz/pkg/graph.Graph.MarkUnresolved
package deps
