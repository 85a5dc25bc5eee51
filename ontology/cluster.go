package ontology

import (
	"context"

	"github.com/ontoverse/ontoforge/diag"
	"github.com/ontoverse/ontoforge/internal/trace"
	"github.com/ontoverse/ontoforge/stereotype"
)

// Cluster keeps the relator-centric neighborhood seeded by node and
// deletes every other entity (spec §4.4). If node does not name a relator,
// Cluster logs a warning and leaves the graph unchanged — this asymmetry
// with Focus's fatal not-found behavior is intentional (spec §9 Open
// Questions (a)).
func (g *Graph) Cluster(ctx context.Context, nodeID string) error {
	node, ok := g.entities[nodeID]
	if !ok || node.Stereotype != stereotype.Relator {
		g.report(diag.NewIssue(diag.Warning, diag.E_CLUSTER_TARGET_NOT_RELATOR,
			"cluster requires a relator node; leaving the graph unchanged").
			WithRef(diag.ElementRef{Kind: "entity", ID: nodeID}).
			Build())
		return nil
	}

	op := trace.Begin(ctx, g.logger, "ontoforge.ontology.cluster")
	defer op.End(nil)

	keep := g.clusterNodes(nodeID)
	for _, id := range g.Entities() {
		if !keep[id] {
			g.DeleteEntity(ctx, id)
		}
	}
	return nil
}

// clusterNodes computes (without mutating the graph) the keep-set seeded
// by relator nodeID, recursing into nested relator clusters reached via
// mediation (spec §4.4 steps 1-3).
func (g *Graph) clusterNodes(nodeID string) map[string]bool {
	set := g.bottomHierarchy(nodeID)

	mediated := make(map[string]bool)
	for id := range set {
		e, ok := g.entities[id]
		if !ok {
			continue
		}
		for _, rid := range e.Outgoing(RelationKind) {
			r, ok := g.relations[rid]
			if ok && r.Stereotype == stereotype.Mediation {
				mediated[r.To] = true
			}
		}
	}

	for m := range mediated {
		target, ok := g.entities[m]
		if !ok {
			continue
		}
		switch {
		case target.Stereotype == stereotype.Relator:
			for k := range g.clusterNodes(m) {
				set[k] = true
			}
		case target.Stereotype.IsNonSortal():
			bh := g.bottomHierarchy(m)
			for leaf := range bh {
				leafEntity := g.entities[leaf]
				if leafEntity == nil || isClusterLeaf(leafEntity) {
					for k := range g.topHierarchy(leaf) {
						set[k] = true
					}
				}
			}
			for k := range bh {
				set[k] = true
			}
		case target.Stereotype.IsSortal():
			for k := range g.topHierarchy(m) {
				set[k] = true
			}
		}
	}

	return set
}

// bottomHierarchy returns nodeID and, recursively via incoming
// Generalization edges, every specific entity whose stereotype is
// non-sortal or relator — the descent stops (without excluding the
// terminal entity itself) once it reaches a sortal, non-relator specific.
func (g *Graph) bottomHierarchy(nodeID string) map[string]bool {
	result := map[string]bool{nodeID: true}
	e, ok := g.entities[nodeID]
	if !ok {
		return result
	}
	for _, gid := range e.Incoming(Generalization) {
		r, ok := g.relations[gid]
		if !ok {
			continue
		}
		specific, ok := g.entities[r.From]
		if !ok {
			continue
		}
		result[specific.ID] = true
		if !isClusterLeaf(specific) {
			for k := range g.bottomHierarchy(specific.ID) {
				result[k] = true
			}
		}
	}
	return result
}

// isClusterLeaf reports whether an entity reached during bottomHierarchy's
// descent is a terminal (non-recursing) member: anything that is not
// itself non-sortal or a relator.
func isClusterLeaf(e *Entity) bool {
	return !(e.Stereotype.IsNonSortal() || e.Stereotype == stereotype.Relator)
}

// topHierarchy returns nodeID and, traversing outgoing Generalization
// edges while the current node's stereotype is not an ultimate sortal
// (KINDS), every general ancestor reached — including, at each step, every
// sibling specific of a complete-and-disjoint generalization set (spec
// §4.4).
func (g *Graph) topHierarchy(nodeID string) map[string]bool {
	result := map[string]bool{nodeID: true}
	e, ok := g.entities[nodeID]
	if !ok || e.Stereotype.IsKind() {
		return result
	}
	for _, gid := range e.Outgoing(Generalization) {
		r, ok := g.relations[gid]
		if !ok {
			continue
		}
		result[r.To] = true
		if r.SetID != "" {
			if set, ok := g.sets[r.SetID]; ok && set.IsComplete && set.IsDisjoint {
				for _, siblingGid := range set.GeneralizationIDs {
					if sibling, ok := g.relations[siblingGid]; ok {
						result[sibling.From] = true
					}
				}
			}
		}
		for k := range g.topHierarchy(r.To) {
			result[k] = true
		}
	}
	return result
}
