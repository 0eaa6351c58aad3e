// Command bellman-ford reads a directed weighted graph from standard input,
// runs Bellman-Ford from a source vertex and prints either the distance table
// or a negative-cycle notice.
//
// Input (whitespace separated, vertices 0-indexed):
//
//	V E
//	u v w   (E times)
//	source
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath-classics/bellman_ford"
	"github.com/katalvlaran/lvlath-classics/graphio"
	"github.com/katalvlaran/lvlath-classics/internal/cli"
)

const program = "bellman-ford"

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cfg := cli.DefaultConfig()
	var withPath bool

	cmd := &cobra.Command{
		Use:   program,
		Short: "Single-source shortest paths with negative edge support",
		Long: `Reads the vertex count, edge count, that many "u v w" triples and a
source vertex from standard input, then prints the shortest distance from the
source to every vertex (INF when unreachable), or reports a negative weight
cycle reachable from the source.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				fmt.Fprintln(stderr, "Error:", err)

				return err
			}
			logger := cfg.NewLogger(stderr, program)

			g, src, err := graphio.ReadShortestPathInput(graphio.NewScanner(stdin), cfg.PromptWriter(stdout))
			if err != nil {
				logger.Error("failed to read graph", "err", err)

				return err
			}
			logger.Debug("graph loaded", "vertices", g.Vertices, "edges", len(g.Edges), "source", src)

			opts := []bellman_ford.Option{bellman_ford.Source(src)}
			if withPath {
				opts = append(opts, bellman_ford.WithReturnPath())
			}
			start := time.Now()
			res, err := bellman_ford.BellmanFord(g, opts...)
			if err != nil {
				logger.Error("shortest path computation failed", "err", err)

				return err
			}
			logger.Info("shortest paths computed",
				"negative_cycle", res.NegativeCycle,
				"elapsed", time.Since(start))

			return graphio.WriteDistances(stdout, res, cfg.OutputFormat(), withPath)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cfg.BindFlags(cmd)
	cmd.Flags().BoolVar(&withPath, "path", false, "print the shortest path to every reachable vertex")

	return cmd
}
