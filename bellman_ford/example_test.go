package bellman_ford_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-classics/bellman_ford"
	"github.com/katalvlaran/lvlath-classics/core"
)

// ExampleBellmanFord runs the classic five-vertex textbook graph from vertex 0.
// Edges 0→1 and 4→3 are negative, but no cycle is.
func ExampleBellmanFord() {
	g := core.NewGraph(5)
	g.AddEdge(0, 1, -1)
	g.AddEdge(0, 2, 4)
	g.AddEdge(1, 2, 3)
	g.AddEdge(1, 3, 2)
	g.AddEdge(1, 4, 2)
	g.AddEdge(3, 2, 5)
	g.AddEdge(3, 1, 1)
	g.AddEdge(4, 3, -3)

	res, err := bellman_ford.BellmanFord(g, bellman_ford.Source(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Distances)
	// Output: [0 -1 2 -2 1]
}

// ExampleBellmanFord_negativeCycle shows that a reachable negative cycle is
// reported through the result instead of a distance vector.
func ExampleBellmanFord_negativeCycle() {
	g := core.NewGraph(3)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, -1)
	g.AddEdge(2, 1, -3)

	res, err := bellman_ford.BellmanFord(g, bellman_ford.Source(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("negative cycle:", res.NegativeCycle)
	// Output: negative cycle: true
}

// ExampleResult_PathTo rebuilds the route to every vertex of a small one-based graph.
func ExampleResult_PathTo() {
	g := core.NewGraph(4, core.WithIndexing(core.OneBased))
	g.AddEdge(1, 2, 4)
	g.AddEdge(1, 3, 1)
	g.AddEdge(3, 2, 1)
	g.AddEdge(2, 4, -2)

	res, err := bellman_ford.BellmanFord(g, bellman_ford.Source(1), bellman_ford.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for v := 1; v <= 4; v++ {
		d, _ := res.Distance(v)
		fmt.Printf("%d: dist=%d path=%v\n", v, d, res.PathTo(v))
	}
	// Output:
	// 1: dist=0 path=[1]
	// 2: dist=2 path=[1 3 2]
	// 3: dist=1 path=[1 3]
	// 4: dist=0 path=[1 3 2 4]
}
