package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ontoverse/ontoforge/ops"
)

func newDeleteCmd(flags *globalFlags) *cobra.Command {
	var elementType string

	cmd := &cobra.Command{
		Use:   "delete <element-id>",
		Short: "Delete a single node or link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if elementType != "node" && elementType != "link" {
				return fmt.Errorf("--type must be \"node\" or \"link\", got %q", elementType)
			}
			ctx := cmd.Context()
			l, err := loadInput(ctx, flags)
			if err != nil {
				return err
			}
			if err := ops.Delete(ctx, l.graph, args[0], elementType); err != nil {
				return err
			}
			reportDiagnostics(l)
			return writeOutput(ctx, flags, l)
		},
	}

	cmd.Flags().StringVar(&elementType, "type", "", "element kind: node|link (required)")
	return cmd
}
