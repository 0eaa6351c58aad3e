// Package bellman_ford implements the Bellman-Ford single-source
// shortest-path algorithm on directed graphs whose edge weights may be negative.
//
// Overview:
//
//   - Every vertex starts at distance Inf except the source (0).
//   - The edge list is scanned exactly V-1 times; each scan relaxes every edge
//     whose tail already has a finite distance. V-1 scans suffice because a
//     shortest path without negative cycles uses at most V-1 edges.
//   - One more scan detects a negative-weight cycle reachable from the source:
//     if any edge can still be relaxed, distances are unbounded below and the
//     result carries NegativeCycle instead of a distance vector.
//
// When to use:
//
//   - Graphs with negative edge weights, where Dijkstra is not applicable.
//   - Detecting arbitrage-like negative cycles.
//
// Performance and complexity:
//
//   - Time:  O(V·E).
//   - Space: O(V) for the distance vector (plus O(V) for predecessors when
//     WithReturnPath is set).
//
// Sentinel "infinity":
//
//	Inf = 2^62. BellmanFord rejects, with ErrWeightTooLarge, any graph where
//	|w| >= Inf for some edge or (V-1)·max|w| >= Inf. Under that bound every
//	finite distance stays strictly inside (-Inf, Inf) and dist[u] + w never
//	overflows int64, so a reachable vertex is never mistaken for Inf.
//
// Vertex numbering follows the graph's core.Indexing. Every edge endpoint is
// validated up front; a bad endpoint yields core.ErrVertexOutOfRange.
//
// API reference:
//
//	func BellmanFord(g *core.Graph, opts ...Option) (*Result, error)
//
//	  - Source(v):        starting vertex (default: first vertex of g).
//	  - WithReturnPath(): fill Result.Prev; use Result.PathTo(v) to rebuild paths.
//
// Example usage:
//
//	g := core.NewGraph(3)
//	g.AddEdge(0, 1, 4)
//	g.AddEdge(1, 2, -2)
//	res, err := bellman_ford.BellmanFord(g, bellman_ford.Source(0))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.NegativeCycle {
//	    fmt.Println("negative cycle")
//	}
//
// Thread safety: each call allocates its own state; concurrent calls on
// graphs that are not being mutated are safe.
package bellman_ford
