package dot

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/depviz/pkg/graph"
)

func chain(root string, edges ...[2]string) *graph.Graph {
	g := graph.New(root)
	for _, e := range edges {
		_ = g.AddEdge(e[0], e[1])
	}
	return g
}

func TestToDOT(t *testing.T) {
	g := chain("PackageA", [2]string{"PackageA", "PackageB"}, [2]string{"PackageA", "PackageC"})

	got := ToDOT(g, Options{})
	want := "digraph {\n\trankdir=LR\n\tPackageA -> PackageB\n\tPackageA -> PackageC\n}\n"
	if got != want {
		t.Errorf("ToDOT() =\n%s\nwant\n%s", got, want)
	}
}

func TestToDOT_SingleLevelContainsEdges(t *testing.T) {
	g := graph.New("PackageA")
	for _, dep := range []string{"PackageB", "PackageC"} {
		_ = g.AddEdge("PackageA", dep)
	}

	got := ToDOT(g, Options{})
	for _, want := range []string{"PackageA -> PackageB", "PackageA -> PackageC", "rankdir=LR"} {
		if !strings.Contains(got, want) {
			t.Errorf("ToDOT() missing %q:\n%s", want, got)
		}
	}
}

func TestToDOT_EdgeOrder(t *testing.T) {
	g := chain("A",
		[2]string{"A", "B"},
		[2]string{"B", "D"},
		[2]string{"A", "C"},
		[2]string{"C", "D"},
	)

	lines := strings.Split(strings.TrimSpace(ToDOT(g, Options{})), "\n")
	want := []string{"\tA -> B", "\tB -> D", "\tA -> C", "\tC -> D"}
	edges := lines[2 : len(lines)-1]
	if len(edges) != len(want) {
		t.Fatalf("got %d edge lines, want %d: %q", len(edges), len(want), edges)
	}
	for i := range want {
		if edges[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, edges[i], want[i])
		}
	}
}

func TestToDOT_DuplicateEdges(t *testing.T) {
	g := chain("A", [2]string{"A", "B"}, [2]string{"A", "B"})
	if n := strings.Count(ToDOT(g, Options{}), "A -> B"); n != 2 {
		t.Errorf("A -> B written %d times, want 2", n)
	}
}

func TestToDOT_IsolatedRoot(t *testing.T) {
	got := ToDOT(graph.New("Leaf"), Options{})
	want := "digraph {\n\trankdir=LR\n\tLeaf\n}\n"
	if got != want {
		t.Errorf("ToDOT() = %q, want %q", got, want)
	}
	if strings.Contains(got, "->") {
		t.Error("leaf graph should have no edges")
	}
}

func TestToDOT_Options(t *testing.T) {
	g := chain("A", [2]string{"A", "B"})
	got := ToDOT(g, Options{RankDir: "TB", Name: "deps"})
	if !strings.HasPrefix(got, "digraph deps {\n\trankdir=TB\n") {
		t.Errorf("ToDOT() header = %q", got)
	}
}

func TestToDOT_QuotesNames(t *testing.T) {
	g := chain("Newtonsoft.Json", [2]string{"Newtonsoft.Json", "System.Runtime"})
	got := ToDOT(g, Options{})
	if !strings.Contains(got, "\t\"Newtonsoft.Json\" -> \"System.Runtime\"\n") {
		t.Errorf("ToDOT() should quote dotted names:\n%s", got)
	}
}

func TestID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"PackageA", "PackageA"},
		{"_private", "_private"},
		{"pkg2", "pkg2"},
		{"42", "42"},
		{"-1.5", "-1.5"},
		{".5", ".5"},
		{"Paquet_é", "Paquet_é"},
		{"Newtonsoft.Json", `"Newtonsoft.Json"`},
		{"my-package", `"my-package"`},
		{"2fast", `"2fast"`},
		{"with space", `"with space"`},
		{"", `""`},
		{"node", `"node"`},
		{"Graph", `"Graph"`},
		{"STRICT", `"STRICT"`},
		{`say "hi"`, `"say \"hi\""`},
		{`Pkg\`, `"Pkg\\"`},
		{`a\"b`, `"a\\\"b"`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ID(tt.in); got != tt.want {
				t.Errorf("ID(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	dot := ToDOT(chain("A", [2]string{"A", "B"}), Options{})

	svg, err := RenderSVG(context.Background(), dot)
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Errorf("RenderSVG() output is not SVG: %.80s", svg)
	}
}

func TestRenderSVG_TrailingBackslash(t *testing.T) {
	dot := ToDOT(chain(`Pkg\`, [2]string{`Pkg\`, "Dep"}), Options{})

	if _, err := RenderSVG(context.Background(), dot); err != nil {
		t.Fatalf("RenderSVG(%q) error: %v", dot, err)
	}
}

func TestRender_UnsupportedFormat(t *testing.T) {
	if _, err := Render(context.Background(), "digraph {}", "pdf"); err == nil {
		t.Error("Render(pdf) should fail")
	}
}

func TestRenderWithTool_Errors(t *testing.T) {
	dir := t.TempDir()
	dotPath := filepath.Join(dir, "g.dot")
	outPath := filepath.Join(dir, "g.svg")
	ctx := context.Background()

	if err := RenderWithTool(ctx, "dot", "gif", dotPath, outPath); err == nil {
		t.Error("RenderWithTool(gif) should fail")
	}
	if err := RenderWithTool(ctx, filepath.Join(dir, "no-such-tool"), FormatSVG, dotPath, outPath); err == nil {
		t.Error("RenderWithTool() with a missing tool should fail")
	}
}
