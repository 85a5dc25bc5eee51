package ops

import (
	"context"

	"github.com/ontoverse/ontoforge/config"
	"github.com/ontoverse/ontoforge/diag"
	"github.com/ontoverse/ontoforge/ontology"
)

// Fold collapses all parthoods and hierarchies into node (spec.md §4.7,
// §6 CORE API "fold"; jsongraph.py's top-level fold, which always folds
// the full hierarchy rather than just parthoods). longNames and
// multRelations override the graph's process-wide abstraction toggles for
// this call only, when non-nil. A missing node is a fatal NotFound —
// ontology.Graph.Fold itself silently no-ops on one, which the CORE API's
// contract (spec.md §7) does not allow for a named, required node param.
func Fold(ctx context.Context, g *ontology.Graph, node string, longNames, multRelations *bool) error {
	if _, ok := g.Entity(node); !ok {
		return notFound(diag.E_ENTITY_NOT_FOUND, "fold: entity %q not found", node)
	}

	var opts []config.Option
	if longNames != nil {
		opts = append(opts, config.WithLongNames(*longNames))
	}
	if multRelations != nil {
		opts = append(opts, config.WithMultRelations(*multRelations))
	}
	if len(opts) > 0 {
		restore := g.WithConfig(g.Config().With(opts...))
		defer restore()
	}

	g.Fold(ctx, node, false)
	return nil
}
