package graphio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-classics/core"
	"github.com/katalvlaran/lvlath-classics/graphio"
)

func TestReadShortestPathInput(t *testing.T) {
	in := "3\n2\n0 1 4\n1 2 -2\n0\n"
	var prompts bytes.Buffer

	g, src, err := graphio.ReadShortestPathInput(graphio.NewScanner(strings.NewReader(in)), &prompts)
	require.NoError(t, err)

	assert.Equal(t, 0, src)
	assert.Equal(t, core.ZeroBased, g.Base)
	assert.Equal(t, 3, g.Vertices)
	assert.Equal(t, []core.Edge{{U: 0, V: 1, W: 4}, {U: 1, V: 2, W: -2}}, g.Edges)
	assert.Equal(t,
		"Enter number of vertices: Enter number of edges: Enter edges (u v w):\nEnter source vertex: ",
		prompts.String())
}

func TestReadShortestPathInput_LayoutAgnostic(t *testing.T) {
	// Tokens may be split across lines arbitrarily.
	in := "2 1 0\n1\n  7 1"
	g, src, err := graphio.ReadShortestPathInput(graphio.NewScanner(strings.NewReader(in)), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, src)
	assert.Equal(t, []core.Edge{{U: 0, V: 1, W: 7}}, g.Edges)
}

func TestReadSpanningInput(t *testing.T) {
	in := "4 2\n1 2 3\n2 5 1\n"
	var prompts bytes.Buffer

	g, err := graphio.ReadSpanningInput(graphio.NewScanner(strings.NewReader(in)), &prompts)
	require.NoError(t, err)

	assert.Equal(t, core.OneBased, g.Base)
	assert.Equal(t, 4, g.Vertices)
	assert.Equal(t, []core.Edge{{U: 1, V: 2, W: 3}, {U: 2, V: 5, W: 1}}, g.Edges,
		"range checks belong to the algorithm, not the reader")
	assert.Equal(t, "Enter number of nodes and edges: Enter each edge as: u v w\n", prompts.String())
}

func TestReader_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
		msg  string
	}{
		{name: "empty", in: "", want: graphio.ErrUnexpectedEOF, msg: "vertex count"},
		{name: "non-numeric", in: "three", want: graphio.ErrMalformedInput, msg: `"three"`},
		{name: "negative count", in: "3 -1", want: graphio.ErrMalformedInput, msg: "edge count must be non-negative"},
		{name: "short edge list", in: "3 2 0 1 5", want: graphio.ErrUnexpectedEOF, msg: "edge 2 of 2"},
		{name: "bad weight", in: "3 1 0 1 x", want: graphio.ErrMalformedInput, msg: "edge weight"},
		{name: "missing source", in: "3 0", want: graphio.ErrUnexpectedEOF, msg: "source vertex"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := graphio.ReadShortestPathInput(graphio.NewScanner(strings.NewReader(tc.in)), nil)
			require.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestScanner_Int64Range(t *testing.T) {
	s := graphio.NewScanner(strings.NewReader("-9223372036854775808 9223372036854775808"))
	n, err := s.Int64("weight")
	require.NoError(t, err)
	assert.Equal(t, int64(-9223372036854775808), n)

	_, err = s.Int64("weight")
	assert.ErrorIs(t, err, graphio.ErrMalformedInput)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]graphio.Format{
		"table": graphio.FormatTable,
		"JSON":  graphio.FormatJSON,
		" yaml": graphio.FormatYAML,
	} {
		got, err := graphio.ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := graphio.ParseFormat("xml")
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)
}
