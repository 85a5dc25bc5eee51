package ops

import (
	"context"

	"github.com/ontoverse/ontoforge/catalog"
	"github.com/ontoverse/ontoforge/diag"
	"github.com/ontoverse/ontoforge/ontology"
)

// Expand ingests a catalog hierarchy rooted at node (spec.md §4.6, §6 CORE
// API "expand"). limit caps how many brand-new entities may be
// synthesized; 0 means unlimited. A missing node is a fatal NotFound.
func Expand(ctx context.Context, g *ontology.Graph, node string, hierarchy catalog.Hierarchy, limit int) error {
	if _, ok := g.Entity(node); !ok {
		return notFound(diag.E_ENTITY_NOT_FOUND, "expand: entity %q not found", node)
	}
	return g.Expand(ctx, node, hierarchy, limit)
}
