package main

import (
	"github.com/spf13/cobra"

	"github.com/ontoverse/ontoforge/ops"
)

func newAbstractCmd(flags *globalFlags) *cobra.Command {
	var (
		absTypes      []string
		longNames     bool
		multRelations bool
		keepRelators  bool
	)

	cmd := &cobra.Command{
		Use:   "abstract",
		Short: "Run one or more graph-wide abstraction passes: parthood, hierarchy, aspects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l, err := loadInput(ctx, flags)
			if err != nil {
				return err
			}

			var longNamesOverride, multRelationsOverride, keepRelatorsOverride *bool
			if cmd.Flags().Changed("long-names") {
				longNamesOverride = &longNames
			}
			if cmd.Flags().Changed("mult-relations") {
				multRelationsOverride = &multRelations
			}
			if cmd.Flags().Changed("keep-relators") {
				keepRelatorsOverride = &keepRelators
			}

			if err := ops.Abstract(ctx, l.graph, absTypes, longNamesOverride, multRelationsOverride, keepRelatorsOverride); err != nil {
				return err
			}
			reportDiagnostics(l)
			return writeOutput(ctx, flags, l)
		},
	}

	cmd.Flags().StringSliceVar(&absTypes, "types", nil, "abs_type list, in dispatch order: parthood,hierarchy,aspects (required)")
	cmd.Flags().BoolVar(&longNames, "long-names", false, "override long_names for this call")
	cmd.Flags().BoolVar(&multRelations, "mult-relations", false, "override mult_relations for this call")
	cmd.Flags().BoolVar(&keepRelators, "keep-relators", false, "override keep_relators for the aspects pass")
	_ = cmd.MarkFlagRequired("types")
	return cmd
}
