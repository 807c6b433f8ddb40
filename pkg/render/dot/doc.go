// Package dot serializes dependency graphs as Graphviz DOT and renders them
// to images.
//
// # Serialization
//
// [ToDOT] writes one edge statement per dependency relation, in the order
// the graph recorded them, under a left-to-right layout hint:
//
//	digraph {
//		rankdir=LR
//		PackageA -> PackageB
//		PackageA -> PackageC
//	}
//
// Package names are passed through verbatim. Names that are valid DOT
// identifiers are written bare; all others (for example "Newtonsoft.Json")
// are double-quoted with embedded quotes escaped.
//
// # Rendering
//
// [RenderSVG] and [RenderPNG] lay out DOT text in-process with
// goccy/go-graphviz. [RenderWithTool] runs an external Graphviz binary
// (such as /usr/bin/dot) instead.
package dot
