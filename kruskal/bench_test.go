package kruskal_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-classics/kruskal"
)

// BenchmarkKruskal measures performance on a random graph with 500 vertices and 2000 edges.
func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(500, 2000) // pre-build graph once
	b.ResetTimer()                   // reset timer to exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _ = kruskal.Kruskal(g)
	}
}
