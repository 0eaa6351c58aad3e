package dsu

import "fmt"

// absent marks a slot that has not been passed to MakeSet.
const absent = -1

// Forest is a disjoint-set forest over the dense slots [0, n).
//
// parent[v] == v marks a root; size is meaningful only at roots.
// A Forest is owned by a single caller and is not safe for concurrent use.
type Forest struct {
	parent []int
	size   []int
	sets   int
}

// New allocates a Forest with n slots, none of which belongs to a set yet.
// Call MakeSet for every slot before using it in Find or Union.
//
// Complexity: O(n) time and memory.
func New(n int) *Forest {
	if n < 0 {
		panic(fmt.Sprintf("dsu: negative capacity %d", n))
	}
	f := &Forest{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	for i := range f.parent {
		f.parent[i] = absent
	}

	return f
}

// Len returns the number of slots the Forest was created with.
func (f *Forest) Len() int { return len(f.parent) }

// Contains reports whether v has been initialised with MakeSet.
func (f *Forest) Contains(v int) bool {
	return v >= 0 && v < len(f.parent) && f.parent[v] != absent
}

// MakeSet turns v into a singleton set of size 1.
// Calling it again on an existing member is a no-op, so sets are never split.
//
// Complexity: O(1).
func (f *Forest) MakeSet(v int) {
	f.mustSlot(v)
	if f.parent[v] != absent {
		return
	}
	f.parent[v] = v
	f.size[v] = 1
	f.sets++
}

// Find returns the root of v's set and re-points every node on the
// search path directly at that root.
//
// Steps:
//  1. Walk parent links from v until a self-parented root is found.
//  2. Walk the same path again, setting each node's parent to the root.
//
// Complexity: amortised O(α(n)) together with union-by-size.
func (f *Forest) Find(v int) int {
	f.mustMember(v)

	// 1. Locate the root.
	root := v
	for f.parent[root] != root {
		root = f.parent[root]
	}

	// 2. Compress the path.
	for v != root {
		next := f.parent[v]
		f.parent[v] = root
		v = next
	}

	return root
}

// Union merges the sets containing a and b, attaching the smaller root under
// the larger one. On equal sizes b's root goes under a's root.
// It reports whether a merge happened; equal roots leave the forest untouched.
//
// Complexity: amortised O(α(n)).
func (f *Forest) Union(a, b int) bool {
	ra, rb := f.Find(a), f.Find(b)
	if ra == rb {
		return false
	}
	if f.size[ra] < f.size[rb] {
		ra, rb = rb, ra
	}
	f.parent[rb] = ra
	f.size[ra] += f.size[rb]
	f.sets--

	return true
}

// Connected reports whether a and b belong to the same set.
func (f *Forest) Connected(a, b int) bool {
	return f.Find(a) == f.Find(b)
}

// Size returns the number of members in v's set.
func (f *Forest) Size(v int) int {
	return f.size[f.Find(v)]
}

// Sets returns the number of disjoint sets among initialised slots.
func (f *Forest) Sets() int { return f.sets }

func (f *Forest) mustSlot(v int) {
	if v < 0 || v >= len(f.parent) {
		panic(fmt.Sprintf("dsu: slot %d out of range [0, %d)", v, len(f.parent)))
	}
}

func (f *Forest) mustMember(v int) {
	f.mustSlot(v)
	if f.parent[v] == absent {
		panic(fmt.Sprintf("dsu: slot %d used before MakeSet", v))
	}
}
