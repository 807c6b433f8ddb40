package graph

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] and [Graph.AddEdge]
	// when a node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")
)

// Edge is a directed "depends on" relation: From depends on To.
type Edge struct {
	From string
	To   string
}

// Graph is an ordered edge set over package names.
//
// The zero value is not usable - use New to create a Graph.
type Graph struct {
	root       string
	nodes      []string
	index      map[string]struct{}
	edges      []Edge
	outgoing   map[string][]string
	unresolved []string
}

// New creates an empty Graph rooted at root. The root is added as the first
// node so a package without dependencies still produces a one-node graph.
// An empty root yields a graph without nodes.
func New(root string) *Graph {
	g := &Graph{
		root:     root,
		index:    make(map[string]struct{}),
		outgoing: make(map[string][]string),
	}
	_ = g.AddNode(root)
	return g
}

// Root returns the package the graph was built from.
func (g *Graph) Root() string { return g.root }

// AddNode records id as a node. Adding an existing node is a no-op.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrInvalidNodeID
	}
	if _, ok := g.index[id]; ok {
		return nil
	}
	g.index[id] = struct{}{}
	g.nodes = append(g.nodes, id)
	return nil
}

// AddEdge appends the edge from -> to, adding both endpoints as nodes.
// Duplicate edges are kept; callers that care de-duplicate their input.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrInvalidNodeID
	}
	_ = g.AddNode(from)
	_ = g.AddNode(to)
	g.edges = append(g.edges, Edge{From: from, To: to})
	g.outgoing[from] = append(g.outgoing[from], to)
	return nil
}

// MarkUnresolved records that id could not be expanded because its registry
// lookup failed. The package still appears in the graph as a leaf.
func (g *Graph) MarkUnresolved(id string) {
	if !slices.Contains(g.unresolved, id) {
		g.unresolved = append(g.unresolved, id)
	}
}

// Unresolved returns the packages whose lookup failed, in failure order.
func (g *Graph) Unresolved() []string { return slices.Clone(g.unresolved) }

// Nodes returns node IDs in first-seen order.
func (g *Graph) Nodes() []string { return slices.Clone(g.nodes) }

// Edges returns edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Children returns the direct dependencies recorded for id.
func (g *Graph) Children(id string) []string { return slices.Clone(g.outgoing[id]) }

// HasNode reports whether id is part of the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[id]
	return ok
}

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges, duplicates included.
func (g *Graph) EdgeCount() int { return len(g.edges) }
