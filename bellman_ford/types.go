// Package bellman_ford defines the result type, sentinel errors and
// configuration options for the Bellman-Ford shortest-path engine.
package bellman_ford

import "errors"

// Inf marks an unreachable vertex in Result.Distances.
//
// It is 2^62. BellmanFord only accepts graphs with (V-1)·max|w| < Inf, so
// every finite distance stays strictly between -Inf and Inf, and adding one
// more weight to it cannot overflow int64.
const Inf int64 = 1 << 62

// NoVertex is stored in Result.Prev for the source and for unreachable vertices.
const NoVertex = -1

// Sentinel errors returned by BellmanFord.
var (
	// ErrSourceOutOfRange indicates that Options.Source is not a vertex of the graph.
	ErrSourceOutOfRange = errors.New("bellman_ford: source vertex out of range")

	// ErrWeightTooLarge indicates an edge weight whose magnitude reaches Inf,
	// or weights large enough that (V-1)·max|w| would reach Inf.
	ErrWeightTooLarge = errors.New("bellman_ford: edge weight magnitude must be below Inf")
)

// Options configures a BellmanFord run.
//
// Source     – starting vertex identifier (in the graph's own numbering).
// ReturnPath – if true, Result.Prev is filled for path reconstruction.
type Options struct {
	Source     int
	ReturnPath bool

	sourceSet bool
}

// Option represents a functional option for configuring BellmanFord.
type Option func(*Options)

// Source sets the starting vertex. When omitted, the graph's first vertex is used.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
		o.sourceSet = true
	}
}

// WithReturnPath enables the predecessor vector in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// Result is the outcome of one BellmanFord run.
//
// Exactly one of the following holds:
//   - NegativeCycle == false: Distances has V entries (Inf = unreachable).
//   - NegativeCycle == true:  Distances and Prev are nil.
type Result struct {
	// Base is the identifier of slot 0, copied from the graph.
	Base int

	// Source is the starting vertex identifier.
	Source int

	// Distances[i] is the distance to vertex Base+i, or Inf.
	Distances []int64

	// Prev[i] is the predecessor identifier of vertex Base+i on a shortest
	// path, or NoVertex. Nil unless WithReturnPath was given.
	Prev []int

	// NegativeCycle reports that a negative-weight cycle is reachable from Source.
	NegativeCycle bool
}

// Reachable reports whether v has a finite distance.
func (r *Result) Reachable(v int) bool {
	_, ok := r.Distance(v)

	return ok
}

// Distance returns the shortest distance to v and whether it is finite.
// It returns (Inf, false) for unreachable or out-of-range vertices and when
// a negative cycle was detected.
func (r *Result) Distance(v int) (int64, bool) {
	i := v - r.Base
	if r.NegativeCycle || i < 0 || i >= len(r.Distances) {
		return Inf, false
	}
	d := r.Distances[i]

	return d, d != Inf
}

// PathTo rebuilds the vertex sequence Source → … → v.
// It returns nil if v is unreachable, if a negative cycle was detected, or if
// the run did not request WithReturnPath.
func (r *Result) PathTo(v int) []int {
	if r.Prev == nil || !r.Reachable(v) {
		return nil
	}
	var rev []int
	// Prev forms a tree rooted at Source once no negative cycle exists,
	// so the walk is bounded by V steps.
	for cur := v; cur != NoVertex && len(rev) <= len(r.Prev); cur = r.Prev[cur-r.Base] {
		rev = append(rev, cur)
		if cur == r.Source {
			break
		}
	}
	path := make([]int, len(rev))
	for i, u := range rev {
		path[len(rev)-1-i] = u
	}

	return path
}
