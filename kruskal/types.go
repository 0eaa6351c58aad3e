// Package kruskal defines the result type produced by the Kruskal
// minimum spanning forest builder.
package kruskal

import (
	"errors"

	"github.com/katalvlaran/lvlath-classics/core"
)

// ErrWeightOverflow indicates that the total weight of the accepted edges
// does not fit in an int64.
var ErrWeightOverflow = errors.New("kruskal: total weight overflows int64")

// Result is the outcome of one Kruskal run. It is read-only once returned.
type Result struct {
	// Edges are the accepted edges, in the order they were accepted.
	Edges []core.Edge `json:"edges" yaml:"edges"`

	// TotalWeight is the sum of the weights of Edges. Kruskal fails with
	// ErrWeightOverflow instead of returning a wrapped sum.
	TotalWeight int64 `json:"total_weight" yaml:"total_weight"`

	// Skipped lists input edges with an endpoint outside the graph, in input order.
	Skipped []core.Edge `json:"skipped,omitempty" yaml:"skipped,omitempty"`

	// Components is the number of trees in the resulting forest.
	Components int `json:"components" yaml:"components"`
}

// Spanning reports whether the result is a single spanning tree
// (one component, or an empty graph).
func (r *Result) Spanning() bool {
	return r.Components <= 1
}
