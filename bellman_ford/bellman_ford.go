package bellman_ford

import (
	"fmt"

	"github.com/katalvlaran/lvlath-classics/core"
)

// BellmanFord computes single-source shortest distances on the directed,
// weighted graph g, or reports that a negative-weight cycle is reachable
// from the source.
//
// Error Conditions (checked in order):
//   - core.ErrNilGraph, core.ErrBadIndexing : from g.Check().
//   - core.ErrNoVertices                    : if g.Vertices == 0.
//   - ErrSourceOutOfRange                   : if the source is not a vertex of g.
//   - core.ErrVertexOutOfRange              : if any edge endpoint is outside g.
//   - ErrWeightTooLarge                     : if any |w| >= Inf, or if
//     (V-1)·max|w| >= Inf so that a finite path sum could reach Inf.
//
// A negative cycle is not an error: it is reported as Result.NegativeCycle.
//
// Steps:
//  1. Validate the graph, the source and every edge.
//  2. dist[src] = 0, dist[v] = Inf for every other vertex.
//  3. Repeat V-1 times: scan every edge (u,v,w) in input order and set
//     dist[v] = dist[u]+w when dist[u] is finite and the sum is smaller.
//     A sum at or below -Inf can only come from a negative cycle and ends
//     the run early.
//  4. Scan the edges once more; any edge that still relaxes proves a
//     reachable negative cycle.
//  5. Return the distance vector (and predecessors when requested).
//
// Complexity: O(V·E) time, O(V) memory.
func BellmanFord(g *core.Graph, opts ...Option) (*Result, error) {
	// 1. Validate input.
	if err := g.Check(); err != nil {
		return nil, err
	}
	if g.Vertices == 0 {
		return nil, core.ErrNoVertices
	}
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.sourceSet {
		o.Source = g.First()
	}
	if !g.InRange(o.Source) {
		return nil, fmt.Errorf("%w: %d not within [%d, %d]",
			ErrSourceOutOfRange, o.Source, g.First(), g.Last())
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := checkWeights(g); err != nil {
		return nil, err
	}

	// 2. Initialise distances (and predecessors).
	n := g.Vertices
	dist := make([]int64, n)
	for i := range dist {
		dist[i] = Inf
	}
	src := g.Index(o.Source)
	dist[src] = 0

	var prev []int
	if o.ReturnPath {
		prev = make([]int, n)
		for i := range prev {
			prev[i] = NoVertex
		}
	}

	res := &Result{Base: g.First(), Source: o.Source}

	// 3. V-1 relaxation passes.
	for pass := 1; pass <= n-1; pass++ {
		for _, e := range g.Edges {
			u, v := g.Index(e.U), g.Index(e.V) // slice slots, whatever the numbering
			// An Inf tail has no path yet; relaxing from it would fake one.
			if dist[u] == Inf {
				continue
			}
			d := dist[u] + e.W
			if d <= -Inf {
				// No simple path weighs this little, so the walk behind d
				// repeats a negative cycle. Stop before dist leaves the safe range.
				res.NegativeCycle = true

				return res, nil
			}
			if d < dist[v] {
				dist[v] = d
				if prev != nil {
					prev[v] = e.U // keep the caller's numbering for PathTo
				}
			}
		}
	}

	// 4. Negative cycle check.
	for _, e := range g.Edges {
		u, v := g.Index(e.U), g.Index(e.V)
		if dist[u] != Inf && dist[u]+e.W < dist[v] {
			// Still relaxing after V-1 passes: distances are unbounded below.
			res.NegativeCycle = true

			return res, nil
		}
	}

	// 5. Publish.
	res.Distances = dist
	res.Prev = prev

	return res, nil
}

// checkWeights rejects weights for which some finite distance could reach Inf
// or overflow int64.
//
// Every finite distance is the weight of some walk, and a walk heavier than a
// simple path it passes through is never stored, so distances stay at or below
// (V-1)·max|w|.
// Requiring max|w| <= (Inf-1)/(V-1) keeps that bound below Inf without computing
// the product. The lower side is held above -Inf by the relaxation loop itself,
// so dist[u] + w always lies strictly inside (-2·Inf, 2·Inf).
func checkWeights(g *core.Graph) error {
	var maxAbs int64
	for i, e := range g.Edges {
		if e.W >= Inf || e.W <= -Inf {
			return fmt.Errorf("%w: edge #%d %s", ErrWeightTooLarge, i, e)
		}
		w := e.W
		if w < 0 {
			w = -w // safe: |w| < Inf
		}
		if w > maxAbs {
			maxAbs = w
		}
	}
	if g.Vertices < 2 {
		// Only self-loops exist; a single addition of |w| < Inf cannot overflow.
		return nil
	}
	if limit := (Inf - 1) / int64(g.Vertices-1); maxAbs > limit {
		return fmt.Errorf("%w: max |w| = %d exceeds %d for %d vertices",
			ErrWeightTooLarge, maxAbs, limit, g.Vertices)
	}

	return nil
}
