package ops

import (
	"context"

	"github.com/ontoverse/ontoforge/diag"
	"github.com/ontoverse/ontoforge/ontology"
)

// Focus keeps the BFS ball of radius hop around node and discards
// everything else (spec.md §4.3, §6 CORE API "focus"). A missing node is a
// fatal NotFound, matching ontology.Graph.Focus's own behavior.
func Focus(ctx context.Context, g *ontology.Graph, node string, hop int) error {
	if _, ok := g.Entity(node); !ok {
		return notFound(diag.E_ENTITY_NOT_FOUND, "focus: entity %q not found", node)
	}
	return g.Focus(ctx, node, hop)
}
