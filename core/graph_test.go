package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-classics/core"
)

func TestNewGraph_Defaults(t *testing.T) {
	g := core.NewGraph(3)
	assert.Equal(t, core.ZeroBased, g.Base)
	assert.Equal(t, 3, g.Vertices)
	assert.Empty(t, g.Edges)
	assert.Equal(t, 0, g.First())
	assert.Equal(t, 2, g.Last())
}

func TestNewGraph_Options(t *testing.T) {
	g := core.NewGraph(4,
		core.WithIndexing(core.OneBased),
		core.WithEdges(core.Edge{U: 1, V: 2, W: 3}),
		core.WithEdges(core.Edge{U: 2, V: 4, W: -1}),
	)
	g.AddEdge(4, 1, 7)

	assert.Equal(t, core.OneBased, g.Base)
	assert.Equal(t, []core.Edge{
		{U: 1, V: 2, W: 3},
		{U: 2, V: 4, W: -1},
		{U: 4, V: 1, W: 7},
	}, g.Edges, "edges keep insertion order")
	assert.Equal(t, 1, g.First())
	assert.Equal(t, 4, g.Last())
}

func TestGraph_InRangeAndIndex(t *testing.T) {
	zero := core.NewGraph(3)
	assert.True(t, zero.InRange(0))
	assert.True(t, zero.InRange(2))
	assert.False(t, zero.InRange(3))
	assert.False(t, zero.InRange(-1))

	one := core.NewGraph(3, core.WithIndexing(core.OneBased))
	assert.False(t, one.InRange(0))
	assert.True(t, one.InRange(3))
	assert.False(t, one.InRange(4))
	assert.Equal(t, 0, one.Index(1))
	assert.Equal(t, 3, one.Vertex(2))

	assert.True(t, one.ValidEdge(core.Edge{U: 1, V: 3}))
	assert.False(t, one.ValidEdge(core.Edge{U: 1, V: 4}))

	empty := core.NewGraph(0, core.WithIndexing(core.OneBased))
	assert.False(t, empty.InRange(1))
}

func TestGraph_Check(t *testing.T) {
	var nilGraph *core.Graph
	assert.ErrorIs(t, nilGraph.Check(), core.ErrNilGraph)
	assert.ErrorIs(t, core.NewGraph(-1).Check(), core.ErrNoVertices)
	assert.ErrorIs(t, core.NewGraph(1, core.WithIndexing(core.Indexing(5))).Check(), core.ErrBadIndexing)
	assert.NoError(t, core.NewGraph(0).Check())
}

func TestGraph_Validate(t *testing.T) {
	g := core.NewGraph(3, core.WithEdges(
		core.Edge{U: 0, V: 1, W: 1},
		core.Edge{U: 2, V: 0, W: 1},
	))
	require.NoError(t, g.Validate())

	g.AddEdge(1, 3, 9)
	err := g.Validate()
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
	assert.EqualError(t, err, "core: vertex out of range: edge #2 (1 3 9) not within [0, 2]")
}

func TestGraph_Clone(t *testing.T) {
	g := core.NewGraph(2, core.WithIndexing(core.OneBased), core.WithEdges(core.Edge{U: 1, V: 2, W: 5}))
	cp := g.Clone()
	require.Equal(t, g, cp)

	cp.Edges[0].W = 99
	assert.Equal(t, int64(5), g.Edges[0].W, "clone must not share edges")

	var nilGraph *core.Graph
	assert.Nil(t, nilGraph.Clone())
}

func TestIndexing_String(t *testing.T) {
	assert.Equal(t, "zero-based", core.ZeroBased.String())
	assert.Equal(t, "one-based", core.OneBased.String())
	assert.Equal(t, "Indexing(9)", core.Indexing(9).String())
}
