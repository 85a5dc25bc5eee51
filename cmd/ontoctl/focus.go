package main

import (
	"github.com/spf13/cobra"

	"github.com/ontoverse/ontoforge/ops"
)

func newFocusCmd(flags *globalFlags) *cobra.Command {
	var hop int

	cmd := &cobra.Command{
		Use:   "focus <node-id>",
		Short: "Keep the BFS ball of radius --hop around a node, discard the rest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l, err := loadInput(ctx, flags)
			if err != nil {
				return err
			}
			if err := ops.Focus(ctx, l.graph, args[0], hop); err != nil {
				return err
			}
			reportDiagnostics(l)
			return writeOutput(ctx, flags, l)
		},
	}

	cmd.Flags().IntVar(&hop, "hop", 1, "BFS radius to keep around the node")
	return cmd
}
