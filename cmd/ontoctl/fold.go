package main

import (
	"github.com/spf13/cobra"

	"github.com/ontoverse/ontoforge/ops"
)

func newFoldCmd(flags *globalFlags) *cobra.Command {
	var longNames, multRelations bool

	cmd := &cobra.Command{
		Use:   "fold <node-id>",
		Short: "Collapse all parthoods and hierarchies into a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l, err := loadInput(ctx, flags)
			if err != nil {
				return err
			}

			var longNamesOverride, multRelationsOverride *bool
			if cmd.Flags().Changed("long-names") {
				longNamesOverride = &longNames
			}
			if cmd.Flags().Changed("mult-relations") {
				multRelationsOverride = &multRelations
			}

			if err := ops.Fold(ctx, l.graph, args[0], longNamesOverride, multRelationsOverride); err != nil {
				return err
			}
			reportDiagnostics(l)
			return writeOutput(ctx, flags, l)
		},
	}

	cmd.Flags().BoolVar(&longNames, "long-names", false, "override long_names for this call")
	cmd.Flags().BoolVar(&multRelations, "mult-relations", false, "override mult_relations for this call")
	return cmd
}
