package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd(flags *globalFlags) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the graph's structural summary (entity/relation counts)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l, err := loadInput(ctx, flags)
			if err != nil {
				return err
			}
			if verbose {
				fmt.Println(l.graph.String())
				return nil
			}
			s := l.graph.Stats()
			fmt.Printf("entities: %d\nrelations: %d\npartOfs: %d\ngeneralizations: %d\n",
				s.Entities, s.Relations, s.PartOfs, s.Generalizations)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the full entity/edge/generalization-set dump")
	return cmd
}
