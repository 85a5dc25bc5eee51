package main

import (
	"github.com/spf13/cobra"

	"github.com/ontoverse/ontoforge/ops"
)

func newClusterCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "cluster <relator-id>",
		Short: "Keep the relator-centric neighborhood seeded by a node, discard the rest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l, err := loadInput(ctx, flags)
			if err != nil {
				return err
			}
			if err := ops.Cluster(ctx, l.graph, args[0]); err != nil {
				return err
			}
			reportDiagnostics(l)
			return writeOutput(ctx, flags, l)
		},
	}
}
