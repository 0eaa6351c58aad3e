package graphio

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlath-classics/bellman_ford"
	"github.com/katalvlaran/lvlath-classics/core"
	"github.com/katalvlaran/lvlath-classics/kruskal"
)

// NegativeCycleMessage is printed instead of a distance table.
const NegativeCycleMessage = "Graph contains a negative weight cycle!"

// distanceRow is the serialised form of one vertex's distance.
type distanceRow struct {
	Vertex    int    `json:"vertex" yaml:"vertex"`
	Distance  *int64 `json:"distance" yaml:"distance"`
	Reachable bool   `json:"reachable" yaml:"reachable"`
	Path      []int  `json:"path,omitempty" yaml:"path,omitempty,flow"`
}

// distanceReport is the serialised form of a bellman_ford.Result.
type distanceReport struct {
	Source        int           `json:"source" yaml:"source"`
	NegativeCycle bool          `json:"negative_cycle" yaml:"negative_cycle"`
	Distances     []distanceRow `json:"distances,omitempty" yaml:"distances,omitempty"`
}

func newDistanceReport(res *bellman_ford.Result, withPath bool) distanceReport {
	rep := distanceReport{Source: res.Source, NegativeCycle: res.NegativeCycle}
	if res.NegativeCycle {
		return rep
	}
	rep.Distances = make([]distanceRow, len(res.Distances))
	for i := range res.Distances {
		v := res.Base + i
		row := distanceRow{Vertex: v}
		if d, ok := res.Distance(v); ok {
			row.Distance = &d
			row.Reachable = true
			if withPath {
				row.Path = res.PathTo(v)
			}
		}
		rep.Distances[i] = row
	}

	return rep
}

// WriteDistances renders a shortest-path result.
//
// Table layout: either NegativeCycleMessage, or the header
// "Vertex   Distance from Source" followed by "v\tdist" rows with INF for
// unreachable vertices. withPath appends "\tv0 -> … -> v" to reachable rows
// and needs a result computed WithReturnPath.
func WriteDistances(w io.Writer, res *bellman_ford.Result, f Format, withPath bool) error {
	switch f {
	case FormatJSON, FormatYAML:
		return encode(w, f, newDistanceReport(res, withPath))
	case FormatTable:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}

	if res.NegativeCycle {
		_, err := fmt.Fprintln(w, NegativeCycleMessage)

		return err
	}
	var b strings.Builder
	b.WriteString("Vertex   Distance from Source\n")
	for i := range res.Distances {
		v := res.Base + i
		d, ok := res.Distance(v)
		if !ok {
			fmt.Fprintf(&b, "%d\tINF\n", v)
			continue
		}
		fmt.Fprintf(&b, "%d\t%d", v, d)
		if withPath {
			b.WriteString("\t" + joinPath(res.PathTo(v)))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// WriteSkipped prints one notice per edge that was left out of the forest.
func WriteSkipped(w io.Writer, skipped []core.Edge) error {
	for _, e := range skipped {
		if _, err := fmt.Fprintf(w, "Invalid node number in edge %d %d. Skipping.\n", e.U, e.V); err != nil {
			return err
		}
	}

	return nil
}

// WriteForest renders a spanning-forest result.
//
// Table layout: a blank line, "Edges in MST:", one "u - v" line per accepted
// edge in acceptance order, then "Total cost: N". Skipped edges are not part
// of the table; see WriteSkipped.
func WriteForest(w io.Writer, res *kruskal.Result, f Format) error {
	switch f {
	case FormatJSON, FormatYAML:
		return encode(w, f, res)
	case FormatTable:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}

	var b strings.Builder
	b.WriteString("\nEdges in MST:\n")
	for _, e := range res.Edges {
		fmt.Fprintf(&b, "%d - %d\n", e.U, e.V)
	}
	fmt.Fprintf(&b, "Total cost: %d\n", res.TotalWeight)
	_, err := io.WriteString(w, b.String())

	return err
}

func encode(w io.Writer, f Format, v any) error {
	if f == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

func joinPath(path []int) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = fmt.Sprint(v)
	}

	return strings.Join(parts, " -> ")
}
