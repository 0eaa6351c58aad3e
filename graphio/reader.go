package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvlath-classics/core"
)

// Scanner reads whitespace-separated integer tokens.
// Line structure is irrelevant: "3 2" and "3\n2" read the same.
type Scanner struct {
	sc    *bufio.Scanner
	token int
}

// NewScanner wraps r in a word-splitting Scanner.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &Scanner{sc: sc}
}

// next returns the next raw token.
func (s *Scanner) next(what string) (string, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", fmt.Errorf("graphio: reading %s: %w", what, err)
		}

		return "", fmt.Errorf("%w: expected %s after token %d", ErrUnexpectedEOF, what, s.token)
	}
	s.token++

	return s.sc.Text(), nil
}

// Int64 reads one signed integer; what names the value in error messages.
func (s *Scanner) Int64(what string) (int64, error) {
	tok, err := s.next(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d %q is not a valid %s", ErrMalformedInput, s.token, tok, what)
	}

	return n, nil
}

// Int reads one signed integer that fits in an int.
func (s *Scanner) Int(what string) (int, error) {
	tok, err := s.next(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d %q is not a valid %s", ErrMalformedInput, s.token, tok, what)
	}

	return n, nil
}

// Count reads a non-negative integer such as a vertex or edge count.
func (s *Scanner) Count(what string) (int, error) {
	n, err := s.Int(what)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %s must be non-negative, got %d", ErrMalformedInput, what, n)
	}

	return n, nil
}

// Edge reads one "u v w" triple.
func (s *Scanner) Edge() (core.Edge, error) {
	u, err := s.Int("edge tail")
	if err != nil {
		return core.Edge{}, err
	}
	v, err := s.Int("edge head")
	if err != nil {
		return core.Edge{}, err
	}
	w, err := s.Int64("edge weight")
	if err != nil {
		return core.Edge{}, err
	}

	return core.Edge{U: u, V: v, W: w}, nil
}

// Edges reads m consecutive triples.
func (s *Scanner) Edges(m int) ([]core.Edge, error) {
	edges := make([]core.Edge, 0, m)
	for i := 0; i < m; i++ {
		e, err := s.Edge()
		if err != nil {
			return nil, fmt.Errorf("edge %d of %d: %w", i+1, m, err)
		}
		edges = append(edges, e)
	}

	return edges, nil
}

// prompt writes msg to w when w is non-nil.
func prompt(w io.Writer, msg string) {
	if w != nil {
		_, _ = io.WriteString(w, msg)
	}
}

// ReadShortestPathInput reads the shortest-path console dialogue:
// vertex count, edge count, the edges (0-indexed) and the source vertex.
// Prompts go to promptW, which may be nil to stay silent.
func ReadShortestPathInput(s *Scanner, promptW io.Writer) (*core.Graph, int, error) {
	prompt(promptW, "Enter number of vertices: ")
	n, err := s.Count("vertex count")
	if err != nil {
		return nil, 0, err
	}
	prompt(promptW, "Enter number of edges: ")
	m, err := s.Count("edge count")
	if err != nil {
		return nil, 0, err
	}
	prompt(promptW, "Enter edges (u v w):\n")
	edges, err := s.Edges(m)
	if err != nil {
		return nil, 0, err
	}
	prompt(promptW, "Enter source vertex: ")
	src, err := s.Int("source vertex")
	if err != nil {
		return nil, 0, err
	}

	return core.NewGraph(n, core.WithEdges(edges...)), src, nil
}

// ReadSpanningInput reads the spanning-tree console dialogue:
// node and edge counts on one prompt, then the edges (1-indexed).
func ReadSpanningInput(s *Scanner, promptW io.Writer) (*core.Graph, error) {
	prompt(promptW, "Enter number of nodes and edges: ")
	n, err := s.Count("node count")
	if err != nil {
		return nil, err
	}
	m, err := s.Count("edge count")
	if err != nil {
		return nil, err
	}
	prompt(promptW, "Enter each edge as: u v w\n")
	edges, err := s.Edges(m)
	if err != nil {
		return nil, err
	}

	return core.NewGraph(n, core.WithIndexing(core.OneBased), core.WithEdges(edges...)), nil
}
