// Command kruskal reads an undirected weighted graph from standard input and
// prints a minimum spanning tree (a forest when the graph is disconnected).
//
// Input (whitespace separated, vertices 1-indexed):
//
//	N M
//	u v w   (M times)
//
// Edges that name a vertex outside [1, N] are reported and skipped.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath-classics/graphio"
	"github.com/katalvlaran/lvlath-classics/internal/cli"
	"github.com/katalvlaran/lvlath-classics/kruskal"
)

const program = "kruskal"

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cfg := cli.DefaultConfig()

	cmd := &cobra.Command{
		Use:   program,
		Short: "Minimum spanning tree with Kruskal's algorithm and union-find",
		Long: `Reads the node count, edge count and that many "u v w" triples from
standard input, then prints the edges of a minimum spanning tree (or forest)
in the order they were selected, followed by the total cost.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				fmt.Fprintln(stderr, "Error:", err)

				return err
			}
			logger := cfg.NewLogger(stderr, program)

			g, err := graphio.ReadSpanningInput(graphio.NewScanner(stdin), cfg.PromptWriter(stdout))
			if err != nil {
				logger.Error("failed to read graph", "err", err)

				return err
			}
			logger.Debug("graph loaded", "nodes", g.Vertices, "edges", len(g.Edges))

			start := time.Now()
			res, err := kruskal.Kruskal(g)
			if err != nil {
				logger.Error("spanning tree computation failed", "err", err)

				return err
			}
			for _, e := range res.Skipped {
				logger.Debug("edge skipped", "edge", e.String())
			}
			logger.Info("spanning forest computed",
				"edges", len(res.Edges),
				"total", res.TotalWeight,
				"components", res.Components,
				"elapsed", time.Since(start))

			format := cfg.OutputFormat()
			if format == graphio.FormatTable {
				if err := graphio.WriteSkipped(stdout, res.Skipped); err != nil {
					return err
				}
			}

			return graphio.WriteForest(stdout, res, format)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cfg.BindFlags(cmd)

	return cmd
}
