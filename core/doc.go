// Package core provides the minimal graph representation consumed by the
// bellman_ford and kruskal packages: a vertex count, a numbering convention,
// and an ordered edge list.
//
// Why an edge list?
//
//   - Both Bellman-Ford and Kruskal only ever scan edges; neither needs
//     adjacency lookups, so the edge list is the natural and cheapest input.
//   - Input order is preserved, which makes relaxation order and tie-breaking
//     deterministic and reproducible across runs.
//
// Vertex numbering:
//
//	– ZeroBased:  vertices are 0 … V-1 (used by the shortest-path program).
//	– OneBased:   vertices are 1 … V   (used by the spanning-tree program).
//
// Graph.Index / Graph.Vertex translate between vertex identifiers and dense
// slice slots, so algorithm packages can allocate exactly V entries.
//
// Example:
//
//	g := core.NewGraph(4, core.WithIndexing(core.OneBased))
//	g.AddEdge(1, 2, 1)
//	g.AddEdge(2, 3, 2)
//	if err := g.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package core
