package main

import (
	"fmt"
	"os"

	"github.com/pdrpinto/search"
	"github.com/pdrpinto/search/grid"
	"github.com/spf13/cobra"
)

func newMazeCmd(flags *globalFlags) *cobra.Command {
	var layout string
	var render bool
	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Search a text maze layout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(layout)
			if err != nil {
				return fmt.Errorf("open layout: %w", err)
			}
			defer f.Close()
			maze, err := grid.Parse(f)
			if err != nil {
				return fmt.Errorf("%s: %w", layout, err)
			}

			strategy, options, flush, err := runOptions(cmd.Context(), flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer flush()

			result, err := search.Run[grid.Point, grid.Direction](cmd.Context(), maze, strategy, nil, options...)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), strategy, result)
			if render {
				fmt.Fprint(cmd.OutOrStdout(), maze.Render(result.Actions))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&layout, "layout", "l", "", "maze layout file")
	cmd.Flags().BoolVar(&render, "render", false, "draw the plan over the layout")
	_ = cmd.MarkFlagRequired("layout")
	return cmd
}
