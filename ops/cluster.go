package ops

import (
	"context"

	"github.com/ontoverse/ontoforge/ontology"
)

// Cluster keeps the relator-centric neighborhood seeded by node (spec.md
// §4.4, §6 CORE API "cluster"). Unlike Focus, a missing or non-relator
// node is not a Fault here: ontology.Graph.Cluster already records it as a
// recovered Warning (diag.E_CLUSTER_TARGET_NOT_RELATOR) and leaves the
// graph unchanged, the deliberate asymmetry spec.md §9 Open Questions (a)
// calls for. Callers that want to surface it as fatal should inspect
// g.Diagnostics() after the call.
func Cluster(ctx context.Context, g *ontology.Graph, node string) error {
	return g.Cluster(ctx, node)
}
