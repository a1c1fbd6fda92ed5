package main

import (
	"fmt"

	"github.com/pdrpinto/search"
	"github.com/pdrpinto/search/graph"
	"github.com/spf13/cobra"
)

func newGraphCmd(flags *globalFlags) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Search a weighted graph described in a YAML file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := graph.Load(file)
			if err != nil {
				return err
			}
			strategy, options, flush, err := runOptions(cmd.Context(), flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer flush()

			result, err := search.Run(cmd.Context(), g, strategy, g.Heuristic(), options...)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), strategy, result)
			if optimal, err := g.GoalDistance(); err == nil && result.Cost > optimal {
				fmt.Fprintf(cmd.OutOrStdout(), "optimal:  %g\n", optimal)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "graph problem file (YAML)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
