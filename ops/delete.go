package ops

import (
	"context"

	"github.com/ontoverse/ontoforge/diag"
	"github.com/ontoverse/ontoforge/ontology"
)

// Delete removes a single node or link from the graph (spec.md §6 CORE API
// "delete"). elementType must be "node" or "link"; anything else is a
// BadInput Fault. A node deletion cascades to every relation and view
// incident to it (ontology.Graph.DeleteEntity); a link deletion removes
// just that relation or generalization, degenerating its generalization
// set if membership drops below 2 (ontology.Graph.DeleteRelation).
func Delete(ctx context.Context, g *ontology.Graph, elementID, elementType string) error {
	switch elementType {
	case "node":
		if _, ok := g.Entity(elementID); !ok {
			return notFound(diag.E_ENTITY_NOT_FOUND, "delete: node %q not found", elementID)
		}
		g.DeleteEntity(ctx, elementID)
	case "link":
		if _, ok := g.Relation(elementID); !ok {
			return notFound(diag.E_RELATION_NOT_FOUND, "delete: link %q not found", elementID)
		}
		g.DeleteRelation(ctx, elementID)
	default:
		return badInput(diag.E_UNKNOWN_ELEMENT_TYPE, "delete: element_type must be \"node\" or \"link\", got %q", elementType)
	}
	return nil
}
