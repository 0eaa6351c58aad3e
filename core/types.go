// Package core defines the Edge and Graph types shared by the algorithm
// packages, together with the sentinel errors they report for malformed graphs.
//
// This file declares Indexing, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrNilGraph          - graph pointer is nil.
//	ErrNoVertices        - vertex count is negative (or zero where a vertex is required).
//	ErrVertexOutOfRange  - an edge endpoint or a vertex argument lies outside the graph.
//	ErrBadIndexing       - Indexing value is neither ZeroBased nor OneBased.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph validation.
var (
	// ErrNilGraph indicates that a nil *Graph was passed to an algorithm.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrNoVertices indicates that the vertex count is not usable for the requested operation.
	ErrNoVertices = errors.New("core: graph has no vertices")

	// ErrVertexOutOfRange indicates a vertex identifier outside [Base, Base+Vertices).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrBadIndexing indicates an unknown Indexing convention.
	ErrBadIndexing = errors.New("core: unknown indexing convention")
)

// Indexing selects the first valid vertex identifier of a Graph.
//
// ZeroBased graphs use identifiers in [0, V); OneBased graphs use [1, V].
// The numeric value of an Indexing is that first identifier.
type Indexing int

const (
	// ZeroBased numbers vertices 0..V-1 (the shortest-path convention).
	ZeroBased Indexing = 0

	// OneBased numbers vertices 1..V (the spanning-tree console convention).
	OneBased Indexing = 1
)

// String returns a short human-readable name.
func (ix Indexing) String() string {
	switch ix {
	case ZeroBased:
		return "zero-based"
	case OneBased:
		return "one-based"
	default:
		return fmt.Sprintf("Indexing(%d)", int(ix))
	}
}

// Edge is a single weighted edge U→V (or U—V for undirected algorithms).
//
// Weight is signed so that negative edges can be expressed.
type Edge struct {
	// U is the tail vertex (or first endpoint).
	U int `json:"u" yaml:"u"`

	// V is the head vertex (or second endpoint).
	V int `json:"v" yaml:"v"`

	// W is the edge weight.
	W int64 `json:"w" yaml:"w"`
}

// String renders the edge as "(u v w)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d %d %d)", e.U, e.V, e.W)
}

// Graph is a vertex count plus an edge list.
//
// Whether the edges are interpreted as directed or undirected is decided by
// the algorithm consuming the graph, never by the Graph itself. Algorithms
// treat a Graph as read-only for the duration of a run.
type Graph struct {
	// Base is the identifier of the first vertex.
	Base Indexing

	// Vertices is the number of vertices V.
	Vertices int

	// Edges holds the E edges in input order.
	Edges []Edge
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithIndexing sets the vertex numbering convention (default ZeroBased).
func WithIndexing(ix Indexing) GraphOption {
	return func(g *Graph) { g.Base = ix }
}

// WithEdges appends the given edges, in order, to the graph's edge list.
func WithEdges(edges ...Edge) GraphOption {
	return func(g *Graph) { g.Edges = append(g.Edges, edges...) }
}

// NewGraph returns a Graph with the given vertex count, configured by opts.
//
// The edge slice is owned by the Graph; later appends through AddEdge do not
// alias caller memory.
func NewGraph(vertices int, opts ...GraphOption) *Graph {
	g := &Graph{Base: ZeroBased, Vertices: vertices}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
