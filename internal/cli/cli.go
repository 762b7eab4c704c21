// Package cli implements the domega command-line interface.
//
// The binary keeps the classic positional surface:
//
//	domega <-e|-a> <filename> <-d|-m> [threads]
//
// where -e/-a select the edge-list or adjacency-list reader, -d runs the
// degeneracy ordering alone and -m the full maximum-clique search. The
// optional thread count caps the workers at the hardware concurrency; a
// malformed or oversized value falls back silently, matching the
// original tool's behaviour.
//
// Machine-readable results go to stdout as a single space-separated
// line; all diagnostics go to stderr: log lines through
// charmbracelet/log, the verbose adjacency and ordering dumps written
// directly. An
// optional domega.toml in the working directory supplies defaults for
// the thread cap and verbosity.
package cli

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/jwalteros/dOmega/clique"
	"github.com/jwalteros/dOmega/degeneracy"
	"github.com/jwalteros/dOmega/graph"
)

const (
	modeEdgeList  = "-e"
	modeAdjacency = "-a"
	algoDegen     = "-d"
	algoMaxClique = "-m"
)

// Execute runs the domega CLI and returns the first error encountered.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the root cobra command. Flag parsing is disabled
// because the positional surface uses dash-prefixed selectors (-e, -d)
// that must not be eaten by the flag machinery.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:                "domega <-e|-a> <filename> <-d|-m> [threads]",
		Short:              "domega computes the exact maximum clique size of a graph",
		Long:               "domega computes ω(G) through a degeneracy-ordered search whose running time is exponential only in the gap between the degeneracy and the clique number.",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		RunE:               run,
	}

	return root
}

func run(cmd *cobra.Command, args []string) error {
	for _, a := range args {
		if a == "-h" || a == "--help" {
			return cmd.Help()
		}
	}
	if len(args) < 3 || len(args) > 4 {
		_ = cmd.Usage()

		return fmt.Errorf("domega: want 3 or 4 arguments, got %d", len(args))
	}

	cfg := loadConfig(configFile)
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)

	mode, filename, algo := args[0], args[1], args[2]

	g, err := readGraph(mode, filename)
	if err != nil {
		logger.Error("reading graph", "file", filename, "err", err)

		return err
	}
	logger.Info("graph loaded",
		"file", filename, "n", g.N, "m", g.M,
		"delta", g.MinDegree, "Delta", g.MaxDegree,
		"readTime", g.ReadTime)
	if cfg.Verbose {
		g.WriteAdjacency(cmd.ErrOrStderr())
	}

	switch algo {
	case algoDegen:
		return runDegeneracy(cmd, logger, g, filename, cfg.Verbose)
	case algoMaxClique:
		return runMaxClique(cmd, logger, g, filename, threadCount(args, cfg))
	default:
		return fmt.Errorf("domega: unknown algorithm %q (want -d or -m)", algo)
	}
}

func readGraph(mode, filename string) (*graph.Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("domega: %w", err)
	}
	defer f.Close()

	switch mode {
	case modeEdgeList:
		return graph.FromEdgeList(f, filename)
	case modeAdjacency:
		return graph.FromAdjacency(f, filename)
	default:
		return nil, fmt.Errorf("domega: unknown input type %q (want -e or -a)", mode)
	}
}

func runDegeneracy(cmd *cobra.Command, logger logSink, g *graph.Graph, filename string, verbose bool) error {
	start := time.Now()
	deg, err := degeneracy.OrderOnly(g)
	if err != nil {
		return err
	}
	logger.Info("degeneracy ordering complete",
		"d", deg.Degeneracy, "cliqueLB", deg.CliqueLB, "time", time.Since(start))
	if verbose {
		writeOrdering(cmd.ErrOrStderr(), g, deg)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %d %d %d %d %g %d %d\n",
		filename, g.N, g.M, g.MinDegree, g.MaxDegree,
		g.ReadTime.Seconds(), deg.Degeneracy, deg.CliqueLB)

	return nil
}

func runMaxClique(cmd *cobra.Command, logger logSink, g *graph.Graph, filename string, threads int) error {
	res, err := clique.MaxClique(g,
		clique.WithContext(cmd.Context()),
		clique.WithThreads(threads),
	)
	if err != nil {
		return err
	}
	logger.Info("maximum clique found",
		"threads", res.Threads, "d", res.Degeneracy,
		"cliqueLB", res.LowerBound, "omega", res.Size,
		"degeneracyTime", res.DegeneracyTime, "totalTime", res.TotalTime)

	fmt.Fprintf(cmd.OutOrStdout(), "%s %d %d %d %d %g %d %d %g %d %g %d\n",
		filename, g.N, g.M, g.MinDegree, g.MaxDegree,
		g.ReadTime.Seconds(), res.Degeneracy, res.LowerBound,
		res.DegeneracyTime.Seconds(), res.Size,
		res.TotalTime.Seconds(), res.Threads)

	return nil
}

// threadCount resolves the worker count: an explicit fourth argument
// wins, then the config file, both capped at the hardware concurrency.
// A malformed argument is ignored rather than rejected.
func threadCount(args []string, cfg config) int {
	threads := runtime.NumCPU()
	if cfg.Threads > 0 && cfg.Threads < threads {
		threads = cfg.Threads
	}
	if len(args) == 4 {
		if conv, err := strconv.Atoi(args[3]); err == nil && conv > 0 && conv <= runtime.NumCPU() {
			threads = conv
		}
	}

	return threads
}
