// Package classics bundles two textbook graph algorithms, each usable as a
// library and as a standalone console program.
//
// What is inside?
//
//   - Shortest paths with negative edges: Bellman-Ford, with detection of
//     negative-weight cycles reachable from the source.
//   - Minimum spanning trees and forests: Kruskal, on top of a union-find
//     forest with path compression and union-by-size.
//
// Everything is organized under small, independent packages:
//
//	core/         Edge, Graph (vertex count + edge list + numbering convention)
//	dsu/          disjoint-set forest (MakeSet, Find, Union)
//	bellman_ford/ single-source shortest paths, negative-cycle detection
//	kruskal/      minimum spanning forest
//	graphio/      stdin token reader and table/JSON/YAML writers
//	cmd/          bellman-ford and kruskal console programs
//
// The two algorithms share nothing but core.Edge: each call builds its own
// state, so runs are deterministic and independent.
//
// Quick ASCII example (Kruskal keeps the three light edges):
//
//	1───2
//	│ ╲ │
//	4───3
//
//	go install github.com/katalvlaran/lvlath-classics/cmd/...@latest
package classics
