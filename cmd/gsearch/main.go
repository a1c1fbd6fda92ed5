// Command gsearch runs the search strategies against graph files and text
// mazes from the command line.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pdrpinto/search"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	ExitSuccess  = 0
	ExitNoPlan   = 1
	ExitBadInput = 2
)

type globalFlags struct {
	strategy      string
	maxExpansions int
	verbose       bool
	trace         bool
	metrics       bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:           "gsearch",
		Short:         "Run graph search strategies on problem files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flags.strategy, "strategy", "s", "astar", "search strategy: dfs, bfs, ucs or astar")
	root.PersistentFlags().IntVar(&flags.maxExpansions, "max-expansions", 0, "stop after this many expansions (0 = unlimited)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log every expansion")
	root.PersistentFlags().BoolVar(&flags.trace, "trace", false, "print OpenTelemetry spans to stderr")
	root.PersistentFlags().BoolVar(&flags.metrics, "metrics", false, "print OpenTelemetry metrics to stderr on exit")

	root.AddCommand(newGraphCmd(flags), newMazeCmd(flags))
	return root
}

func main() {
	err := newRootCmd().Execute()
	if err == nil {
		os.Exit(ExitSuccess)
	}
	fmt.Fprintln(os.Stderr, "gsearch:", err)
	if errors.Is(err, search.ErrSearchExhausted) || errors.Is(err, search.ErrExpansionLimit) {
		os.Exit(ExitNoPlan)
	}
	os.Exit(ExitBadInput)
}
