package kruskal

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvlath-classics/core"
	"github.com/katalvlaran/lvlath-classics/dsu"
)

// Kruskal computes a minimum spanning forest of the undirected, weighted graph g.
// Each edge appears once; no mirrored entry is needed.
//
// Error Conditions:
//   - core.ErrNilGraph, core.ErrBadIndexing, core.ErrNoVertices : from g.Check().
//   - ErrWeightOverflow : if the running total leaves the int64 range.
//
// Edges with an out-of-range endpoint are not errors: they are left out of the
// computation and reported in Result.Skipped. A disconnected graph yields a
// forest with V - Components edges.
//
// Steps:
//  1. Validate the graph header.
//  2. Partition edges into valid and skipped, preserving input order.
//  3. Stable-sort valid edges by ascending weight (ties keep input order).
//  4. MakeSet every vertex in a fresh dsu.Forest.
//  5. Scan every sorted edge: if Find(u) != Find(v), accept it, add its weight,
//     and Union(u, v); otherwise reject it as cycle-forming.
//  6. Report the forest, its total weight and the component count.
//
// Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
func Kruskal(g *core.Graph) (*Result, error) {
	// 1. Validate.
	if err := g.Check(); err != nil {
		return nil, err
	}

	// 2. Filter out edges that reference unknown vertices.
	res := &Result{Edges: []core.Edge{}}
	edges := make([]core.Edge, 0, len(g.Edges))
	for _, e := range g.Edges {
		if !g.ValidEdge(e) {
			// Reported back to the caller, never fed to the forest.
			res.Skipped = append(res.Skipped, e)
			continue
		}
		edges = append(edges, e)
	}

	// 3. Sort by weight; stability gives reproducible tie-breaking.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].W < edges[j].W
	})

	// 4. One singleton set per vertex.
	forest := dsu.New(g.Vertices)
	for i := 0; i < g.Vertices; i++ {
		forest.MakeSet(i)
	}

	// 5. Scan all edges; no early exit so disconnected graphs are covered.
	for i, e := range edges {
		u, v := g.Index(e.U), g.Index(e.V) // dsu slots are always 0-based
		if forest.Find(u) == forest.Find(v) {
			// Same component already: the edge would close a cycle.
			continue
		}
		if addOverflows(res.TotalWeight, e.W) {
			return nil, fmt.Errorf("%w: adding sorted edge #%d %s to %d",
				ErrWeightOverflow, i, e, res.TotalWeight)
		}
		res.Edges = append(res.Edges, e) // acceptance order
		res.TotalWeight += e.W
		forest.Union(u, v)
	}

	// 6. Finalise.
	res.Components = forest.Sets()

	return res, nil
}

// addOverflows reports whether a+b falls outside the int64 range.
func addOverflows(a, b int64) bool {
	if b > 0 {
		return a > math.MaxInt64-b
	}

	return a < math.MinInt64-b
}
