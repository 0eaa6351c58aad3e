// Package kruskal computes a minimum spanning tree, or a minimum spanning
// forest when the graph is disconnected, with Kruskal's algorithm on top of
// the dsu union-find forest.
//
// What & Why
//
//   - A minimum spanning forest connects every vertex of each connected
//     component with the least total edge weight and no cycles.
//   - Kruskal considers edges from lightest to heaviest and keeps an edge
//     exactly when its endpoints are still in different components.
//
// Behaviour
//
//   - Kruskal(g *core.Graph) (*Result, error)
//
//   - Out-of-range edges are skipped and listed in Result.Skipped.
//
//   - Edges are ordered with a stable sort by weight: equal weights keep input
//     order, so repeated runs return identical results.
//
//   - Every sorted edge is examined; there is no early exit after V-1
//     acceptances, so a disconnected graph yields the full forest with
//     V - Components edges rather than an error.
//
//   - The running total is checked on every accepted edge; a sum outside
//     int64 fails with ErrWeightOverflow.
//
// Complexity:
//
//	– Time:  O(E log E + E·α(V)), dominated by sorting.
//	– Space: O(V + E).
//
// Each call builds its own dsu.Forest, so concurrent calls on independent
// graphs share no state.
package kruskal
