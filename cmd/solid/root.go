package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Building it per call keeps flag state
// out of package globals so tests can run commands side by side.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "solid",
		Short:        "Best-first search over weighted graphs",
		Long:         `solid loads a weighted directed graph from YAML and finds a path with DFS, BFS, Dijkstra or A*.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log search progress at debug level")

	root.AddCommand(newSolveCmd(func(w io.Writer) *slog.Logger {
		return newLogger(w, verbose)
	}))

	return root
}

// newLogger returns a text logger on w; verbose lowers the level to debug,
// which also surfaces the per-run records of the search engine.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
