package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/jyuhuan/Solid/frontier"
	"github.com/jyuhuan/Solid/graphsearch"
	"github.com/jyuhuan/Solid/monoid"
	"github.com/jyuhuan/Solid/search"
)

// ErrUnknownAlgorithm is returned for an --algo value outside algorithms.
var ErrUnknownAlgorithm = errors.New("solid: unknown algorithm")

type (
	node     = search.Node[string, string, float64]
	option   = search.Option[string, string, float64]
	searcher = search.GenericSearcher[string, string, float64]
)

// algorithms maps each --algo value to its search preset. Only A* consults h.
var algorithms = map[string]func(h search.Heuristic[string, float64], opts ...option) *searcher{
	"dfs": func(_ search.Heuristic[string, float64], opts ...option) *searcher {
		return search.NewDepthFirstSearcher(opts...)
	},
	"bfs": func(_ search.Heuristic[string, float64], opts ...option) *searcher {
		return search.NewBreadthFirstSearcher(opts...)
	},
	"dijkstra": func(_ search.Heuristic[string, float64], opts ...option) *searcher {
		return search.NewDijkstraSearcher(opts...)
	},
	"astar": func(h search.Heuristic[string, float64], opts ...option) *searcher {
		return search.NewAStarSearcher(h, opts...)
	},
}

func algorithmNames() string {
	return "dfs|bfs|dijkstra|astar"
}

type solveFlags struct {
	file    string
	algo    string
	from    string
	to      string
	metrics bool
}

func newSolveCmd(logger func(io.Writer) *slog.Logger) *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find a path between two vertices of a YAML graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd.OutOrStdout(), logger(cmd.ErrOrStderr()), f)
		},
	}
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "graph YAML file")
	cmd.Flags().StringVarP(&f.algo, "algo", "a", "dijkstra", "search algorithm: "+algorithmNames())
	cmd.Flags().StringVar(&f.from, "from", "", "start vertex")
	cmd.Flags().StringVar(&f.to, "to", "", "target vertex")
	cmd.Flags().BoolVar(&f.metrics, "metrics", false, "print frontier metrics after the run")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runSolve(out io.Writer, log *slog.Logger, f solveFlags) error {
	newSearcher, ok := algorithms[strings.ToLower(f.algo)]
	if !ok {
		return fmt.Errorf("%w: %q (want %s)", ErrUnknownAlgorithm, f.algo, algorithmNames())
	}

	cfg, err := loadGraphConfig(f.file)
	if err != nil {
		return err
	}
	problem, err := graphsearch.NewProblem(cfg.Graph(), f.from, f.to, monoid.Sum[float64]())
	if err != nil {
		return err
	}

	runID := uuid.New()
	log = log.With("run", runID.String(), "algo", f.algo)

	var (
		stats   search.Stats
		metrics *frontier.Metrics
		inst    *frontier.Instrumented[*node]
	)
	s := newSearcher(cfg.HeuristicFunc(),
		search.WithLogger[string, string, float64](log),
		search.WithStats[string, string, float64](&stats),
		search.WithFrontierWrapper(func(fr frontier.Frontier[*node]) frontier.Frontier[*node] {
			inst = frontier.NewInstrumented(fr, metrics)
			return inst
		}),
	)
	metrics = frontier.NewMetrics("solid", s.Discipline())
	reg := prometheus.NewRegistry()
	if err := metrics.Register(reg); err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	log.Info("solving", "file", f.file, "from", f.from, "to", f.to)
	sol, found, err := s.Solve(problem)
	if err != nil {
		return err
	}
	log.Info("done", "found", found, "expanded", stats.Expanded, "max_frontier", inst.Peak())

	fmt.Fprintf(out, "run: %s\n", runID)
	if !found {
		fmt.Fprintf(out, "no path from %s to %s\n", f.from, f.to)
	} else {
		fmt.Fprintf(out, "path: %s\n", strings.Join(sol.States, " -> "))
		fmt.Fprintf(out, "cost: %g\n", sol.Cost)
	}
	fmt.Fprintf(out, "stats: removed=%d expanded=%d generated=%d skipped=%d duplicates=%d max_frontier=%d\n",
		stats.Removed, stats.Expanded, stats.Generated, stats.Skipped, stats.Duplicates, stats.MaxFrontier)

	if f.metrics {
		return writeMetrics(out, reg)
	}

	return nil
}
