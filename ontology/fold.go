package ontology

import (
	"context"

	"github.com/ontoverse/ontoforge/internal/trace"
	"github.com/ontoverse/ontoforge/stereotype"
)

// foldStack is the name-based recursion guard threaded through fold's
// caller (spec §9: "Replace the implicit stack with an explicit set of
// names"). It is per-graph and per-call, not stored on Graph itself, since
// concurrent graphs never share it and a single transformation is atomic.
type foldStack map[string]bool

// Fold collapses all downward structure into entity recursively: every
// incoming parthood (other than memberOf) is abstracted into entity, then,
// unless partOfOnly, every hierarchy touching entity is abstracted too
// (spec §4.7).
func (g *Graph) Fold(ctx context.Context, entityID string, partOfOnly bool) {
	g.fold(ctx, entityID, partOfOnly, make(foldStack))
}

func (g *Graph) fold(ctx context.Context, entityID string, partOfOnly bool, stack foldStack) {
	e, ok := g.entities[entityID]
	if !ok {
		return
	}
	if stack[e.Name] {
		return
	}
	stack[e.Name] = true
	defer delete(stack, e.Name)

	op := trace.Begin(ctx, g.logger, "ontoforge.ontology.fold")
	defer op.End(nil)

	for _, rid := range e.Incoming(PartOf) {
		r, ok := g.relations[rid]
		if !ok || r.Stereotype == stereotype.MemberOf {
			continue
		}
		g.abstractParthood(ctx, rid, stack)
	}

	if partOfOnly {
		return
	}

	for _, rid := range e.Outgoing(Generalization) {
		r, ok := g.relations[rid]
		if !ok {
			continue
		}
		general, ok := g.entities[r.To]
		if ok && general.Stereotype.IsNonSortal() {
			g.abstractHierarchy(ctx, rid, stack)
		}
	}

	for {
		incoming := e.Incoming(Generalization)
		if len(incoming) == 0 {
			break
		}
		g.abstractHierarchy(ctx, incoming[0], stack)
	}

	g.clearAbstractedEntities(ctx)
}
