package graph

import (
	"errors"
	"slices"
	"testing"
)

func TestNew(t *testing.T) {
	g := New("A")
	if g.Root() != "A" {
		t.Errorf("Root() = %q, want %q", g.Root(), "A")
	}
	if got := g.Nodes(); !slices.Equal(got, []string{"A"}) {
		t.Errorf("Nodes() = %v, want [A]", got)
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", g.EdgeCount())
	}
}

func TestNewEmptyRoot(t *testing.T) {
	g := New("")
	if g.NodeCount() != 0 {
		t.Errorf("NodeCount() = %d, want 0", g.NodeCount())
	}
}

func TestAddEdge(t *testing.T) {
	g := New("A")
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("A", "C")

	want := []Edge{{"A", "B"}, {"B", "C"}, {"A", "C"}}
	if got := g.Edges(); !slices.Equal(got, want) {
		t.Errorf("Edges() = %v, want %v", got, want)
	}
	if got := g.Nodes(); !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Errorf("Nodes() = %v, want [A B C]", got)
	}
	if got := g.Children("A"); !slices.Equal(got, []string{"B", "C"}) {
		t.Errorf("Children(A) = %v, want [B C]", got)
	}
}

func TestAddEdgeKeepsDuplicates(t *testing.T) {
	g := New("A")
	g.AddEdge("A", "B")
	g.AddEdge("A", "B")
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2", g.EdgeCount())
	}
	if g.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", g.NodeCount())
	}
}

func TestAddEdgeCycle(t *testing.T) {
	g := New("A")
	g.AddEdge("A", "B")
	if err := g.AddEdge("B", "A"); err != nil {
		t.Fatalf("AddEdge() cycle error: %v", err)
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2", g.EdgeCount())
	}
}

func TestAddEdgeInvalid(t *testing.T) {
	g := New("A")
	tests := []struct {
		name     string
		from, to string
	}{
		{"empty from", "", "B"},
		{"empty to", "A", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := g.AddEdge(tt.from, tt.to); !errors.Is(err, ErrInvalidNodeID) {
				t.Errorf("AddEdge(%q, %q) error = %v, want ErrInvalidNodeID", tt.from, tt.to, err)
			}
		})
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", g.EdgeCount())
	}
}

func TestMarkUnresolved(t *testing.T) {
	g := New("A")
	g.MarkUnresolved("B")
	g.MarkUnresolved("B")
	g.MarkUnresolved("C")

	if got := g.Unresolved(); !slices.Equal(got, []string{"B", "C"}) {
		t.Errorf("Unresolved() = %v, want [B C]", got)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	g := New("A")
	g.AddEdge("A", "B")

	edges := g.Edges()
	edges[0].To = "Z"
	nodes := g.Nodes()
	nodes[0] = "Z"

	if g.Edges()[0].To != "B" {
		t.Error("Edges() exposed internal slice")
	}
	if g.Nodes()[0] != "A" {
		t.Error("Nodes() exposed internal slice")
	}
	if !g.HasNode("B") || g.HasNode("Z") {
		t.Error("HasNode() returned unexpected result")
	}
}
