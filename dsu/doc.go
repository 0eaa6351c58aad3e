// Package dsu implements a disjoint-set forest (union-find) over dense
// integer slots, with full path compression and union-by-size.
//
// Operations:
//
//   - New(n)        allocate n empty slots.
//   - MakeSet(v)    make v a singleton set of size 1.
//   - Find(v)       return v's representative and flatten the search path.
//   - Union(a, b)   merge two sets, smaller under larger; no-op on equal roots.
//   - Connected, Size, Sets, Contains for queries.
//
// Complexity: a sequence of m operations on n elements costs O(m·α(n)),
// where α is the inverse Ackermann function.
//
// Every Forest is a value owned by its caller; there is no package-level
// state, so independent forests can be used from independent goroutines.
//
// Find is iterative (find root, then re-parent the path), so deep chains
// never grow the call stack.
//
// Misuse (a slot outside [0, n) or a slot never passed to MakeSet) panics,
// in the same way that indexing a slice out of range does.
package dsu
