package deps

import (
	"context"
	"errors"
	"time"

	"github.com/matzehuels/depviz/pkg/graph"
	"github.com/matzehuels/depviz/pkg/integrations"
	"github.com/matzehuels/depviz/pkg/observability"
)

// Resolver builds a dependency graph starting from a root package.
type Resolver interface {
	// Resolve fetches the package and its transitive dependencies,
	// returning a graph with an edge for every dependency relation found.
	Resolve(ctx context.Context, pkg string, opts Options) (*graph.Graph, error)
	// Name returns the resolver's identifier (e.g., "nuget").
	Name() string
}

// Registry implements Resolver by walking a Fetcher depth-first.
type Registry struct {
	name    string
	fetcher Fetcher
}

// NewRegistry creates a Resolver that walks dependencies using the given Fetcher.
func NewRegistry(name string, fetcher Fetcher) *Registry {
	return &Registry{name: name, fetcher: fetcher}
}

// Name returns the registry name.
func (r *Registry) Name() string { return r.name }

// Resolve walks dependencies starting from pkg.
func (r *Registry) Resolve(ctx context.Context, pkg string, opts Options) (*graph.Graph, error) {
	w := &walker{
		ctx:     ctx,
		opts:    opts.WithDefaults(),
		fetcher: r.fetcher,
		g:       graph.New(pkg),
		depth:   make(map[string]int),
		fetched: make(map[string][]string),
		edges:   make(map[graph.Edge]bool),
	}

	start := time.Now()
	g, err := w.run(pkg)

	var nodes, edges int
	if g != nil {
		nodes, edges = g.NodeCount(), g.EdgeCount()
	}
	observability.Resolve().OnResolveComplete(ctx, pkg, nodes, edges, time.Since(start), err)
	return g, err
}

// Direct builds the single-level graph of pkg and its direct dependencies.
func Direct(pkg string, deps []string) *graph.Graph {
	g := graph.New(pkg)
	for _, dep := range deps {
		_ = g.AddEdge(pkg, dep)
	}
	return g
}

type walker struct {
	ctx     context.Context
	opts    Options
	fetcher Fetcher

	g *graph.Graph
	// depth holds the shallowest depth each package was reached at.
	depth   map[string]int
	fetched map[string][]string
	edges   map[graph.Edge]bool
	stack   []frame
}

// frame is one expanded package on the walk stack; next indexes the
// dependency to descend into once the current one is finished. A revisit
// frame re-expands a package reached again at a shallower depth and skips
// edges that were already recorded.
type frame struct {
	name    string
	deps    []string
	next    int
	depth   int
	revisit bool
}

func (w *walker) run(root string) (*graph.Graph, error) {
	if err := w.visit(root, 0); err != nil {
		return nil, err
	}

	for len(w.stack) > 0 {
		if err := w.ctx.Err(); err != nil {
			return nil, err
		}

		top := &w.stack[len(w.stack)-1]
		if top.next == len(top.deps) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		from, dep, depth, revisit := top.name, top.deps[top.next], top.depth+1, top.revisit
		top.next++

		e := graph.Edge{From: from, To: dep}
		if !revisit || !w.edges[e] {
			if err := w.g.AddEdge(from, dep); err != nil {
				w.opts.Logger("skipping dependency of %s: %v", from, err)
				continue
			}
			w.edges[e] = true
		}
		if err := w.visit(dep, depth); err != nil {
			return nil, err
		}
	}

	return w.g, nil
}

// visit marks name visited and pushes its dependencies onto the stack.
// It returns immediately for packages that were already visited, unless a
// depth limit is set and name is now reached at a shallower depth.
func (w *walker) visit(name string, depth int) error {
	best, seen := w.depth[name]
	if seen && (w.opts.MaxDepth == 0 || depth >= best) {
		return nil
	}
	w.depth[name] = depth

	if err := w.ctx.Err(); err != nil {
		return err
	}
	if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
		return nil
	}

	if deps, ok := w.fetched[name]; ok {
		if len(deps) > 0 {
			w.stack = append(w.stack, frame{name: name, deps: deps, depth: depth, revisit: seen})
		}
		return nil
	}

	start := time.Now()
	deps, err := w.fetcher.FetchDependencies(w.ctx, name, w.opts.Refresh)
	observability.Resolve().OnFetch(w.ctx, name, len(deps), time.Since(start), err)

	if err != nil {
		if w.ctx.Err() != nil {
			return w.ctx.Err()
		}
		if errors.Is(err, integrations.ErrStatus) && !w.opts.Strict {
			w.opts.Logger("fetch failed, treating %s as leaf: %v", name, err)
			w.g.MarkUnresolved(name)
			w.fetched[name] = nil
			return nil
		}
		return err
	}
	w.fetched[name] = deps

	if len(deps) > 0 {
		w.stack = append(w.stack, frame{name: name, deps: deps, depth: depth, revisit: seen})
	}
	return nil
}
