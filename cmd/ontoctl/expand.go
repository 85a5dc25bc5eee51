package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ontoverse/ontoforge/catalog"
	"github.com/ontoverse/ontoforge/ops"
)

func newExpandCmd(flags *globalFlags) *cobra.Command {
	var hierarchyPath string
	var limit int

	cmd := &cobra.Command{
		Use:   "expand <node-id>",
		Short: "Ingest a catalog hierarchy rooted at a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if hierarchyPath == "" {
				return fmt.Errorf("--hierarchy is required")
			}
			hierarchy, err := loadHierarchy(hierarchyPath)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			l, err := loadInput(ctx, flags)
			if err != nil {
				return err
			}
			if err := ops.Expand(ctx, l.graph, args[0], hierarchy, limit); err != nil {
				return err
			}
			reportDiagnostics(l)
			return writeOutput(ctx, flags, l)
		},
	}

	cmd.Flags().StringVar(&hierarchyPath, "hierarchy", "", "catalog hierarchy JSON file (required)")
	cmd.Flags().IntVar(&limit, "limit", 0, "cap on brand-new entities to synthesize (0 = unlimited)")
	return cmd
}

// loadHierarchy reads a catalog.Hierarchy straight from its JSON
// representation: {"Nodes": {"parent#kind": ["child#subkind"]}, "Sets": {...}}.
func loadHierarchy(path string) (catalog.Hierarchy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return catalog.Hierarchy{}, fmt.Errorf("read %s: %w", path, err)
	}
	var h catalog.Hierarchy
	if err := json.Unmarshal(data, &h); err != nil {
		return catalog.Hierarchy{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return h, nil
}
