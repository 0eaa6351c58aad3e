package core

import "fmt"

// AddEdge appends the edge u→v with weight w. No range check is performed;
// use Validate or ValidEdge to inspect endpoints.
func (g *Graph) AddEdge(u, v int, w int64) {
	g.Edges = append(g.Edges, Edge{U: u, V: v, W: w})
}

// First returns the smallest valid vertex identifier.
func (g *Graph) First() int { return int(g.Base) }

// Last returns the largest valid vertex identifier (First()-1 when V == 0).
func (g *Graph) Last() int { return int(g.Base) + g.Vertices - 1 }

// InRange reports whether v is a valid vertex identifier of g.
func (g *Graph) InRange(v int) bool {
	return v >= g.First() && v <= g.Last()
}

// Index maps a vertex identifier to its dense slot in [0, V).
// The caller must ensure InRange(v).
func (g *Graph) Index(v int) int { return v - int(g.Base) }

// Vertex maps a dense slot in [0, V) back to a vertex identifier.
func (g *Graph) Vertex(i int) int { return i + int(g.Base) }

// ValidEdge reports whether both endpoints of e are in range.
func (g *Graph) ValidEdge(e Edge) bool {
	return g.InRange(e.U) && g.InRange(e.V)
}

// Check verifies the graph header: non-nil, a known Indexing and V >= 0.
// Edge endpoints are not inspected.
func (g *Graph) Check() error {
	if g == nil {
		return ErrNilGraph
	}
	if g.Base != ZeroBased && g.Base != OneBased {
		return fmt.Errorf("%w: %d", ErrBadIndexing, int(g.Base))
	}
	if g.Vertices < 0 {
		return fmt.Errorf("%w: vertex count %d", ErrNoVertices, g.Vertices)
	}

	return nil
}

// Validate runs Check and then verifies every edge endpoint.
// The first offending edge is reported, wrapped around ErrVertexOutOfRange.
func (g *Graph) Validate() error {
	if err := g.Check(); err != nil {
		return err
	}
	for i, e := range g.Edges {
		if !g.ValidEdge(e) {
			return fmt.Errorf("%w: edge #%d %s not within [%d, %d]",
				ErrVertexOutOfRange, i, e, g.First(), g.Last())
		}
	}

	return nil
}

// Clone returns a deep copy of g; the edge list is not shared.
func (g *Graph) Clone() *Graph {
	if g == nil {
		return nil
	}
	cp := &Graph{Base: g.Base, Vertices: g.Vertices}
	if g.Edges != nil {
		cp.Edges = make([]Edge, len(g.Edges))
		copy(cp.Edges, g.Edges)
	}

	return cp
}
