// Package graph holds the in-memory dependency graph built during one run.
//
// A [Graph] is an ordered collection of edges plus the nodes they touch.
// Unlike a DAG it accepts cycles (package registries happily publish them)
// and it keeps insertion order everywhere, so serializers can emit edges in
// the order the traversal discovered them.
//
// # Usage
//
//	g := graph.New("Newtonsoft.Json")
//	g.AddEdge("Newtonsoft.Json", "System.Runtime")
//	for _, e := range g.Edges() {
//	    fmt.Println(e.From, "->", e.To)
//	}
//
// Graph is not safe for concurrent use; the builder owns it for the
// duration of a traversal.
package graph
