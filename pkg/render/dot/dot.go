package dot

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/matzehuels/depviz/pkg/graph"
)

// DefaultRankDir lays graphs out left to right.
const DefaultRankDir = "LR"

// Options configures DOT serialization.
type Options struct {
	// RankDir is the layout direction (LR, TB, RL, BT). Default: LR.
	RankDir string
	// Name is the optional graph name written after "digraph".
	Name string
}

// ToDOT converts a graph to Graphviz DOT text.
// Edges are written in discovery order. Nodes without any edge (such as a
// root package with no dependencies) are written as bare node statements.
func ToDOT(g *graph.Graph, opts Options) string {
	rankdir := opts.RankDir
	if rankdir == "" {
		rankdir = DefaultRankDir
	}

	var buf bytes.Buffer
	if opts.Name != "" {
		fmt.Fprintf(&buf, "digraph %s {\n", ID(opts.Name))
	} else {
		buf.WriteString("digraph {\n")
	}
	fmt.Fprintf(&buf, "\trankdir=%s\n", rankdir)

	connected := make(map[string]bool)
	for _, e := range g.Edges() {
		connected[e.From] = true
		connected[e.To] = true
	}
	for _, n := range g.Nodes() {
		if !connected[n] {
			fmt.Fprintf(&buf, "\t%s\n", ID(n))
		}
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "\t%s -> %s\n", ID(e.From), ID(e.To))
	}

	buf.WriteString("}\n")
	return buf.String()
}

var (
	identRe   = regexp.MustCompile(`^[a-zA-Z_\x{80}-\x{10FFFF}][a-zA-Z_0-9\x{80}-\x{10FFFF}]*$`)
	numeralRe = regexp.MustCompile(`^-?(\.[0-9]+|[0-9]+(\.[0-9]*)?)$`)
	keywords  = map[string]bool{
		"node": true, "edge": true, "graph": true,
		"digraph": true, "subgraph": true, "strict": true,
	}
)

var idEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// ID formats s as a DOT identifier, quoting it unless it is a plain
// identifier or numeral that is not a DOT keyword.
func ID(s string) string {
	if !keywords[strings.ToLower(s)] && (identRe.MatchString(s) || numeralRe.MatchString(s)) {
		return s
	}
	return `"` + idEscaper.Replace(s) + `"`
}
