package ontology

import (
	"context"

	"github.com/ontoverse/ontoforge/diag"
	"github.com/ontoverse/ontoforge/internal/trace"
	"github.com/ontoverse/ontoforge/stereotype"
)

// AbstractParthood abstracts the parthood relation rid, migrating part's
// edges onto whole and then deleting part (or just the relation, if part
// still has other upward edges) per spec §4.8.
func (g *Graph) AbstractParthood(ctx context.Context, rid string) {
	g.abstractParthood(ctx, rid, make(foldStack))
}

// AbstractParthoods abstracts every PartOf relation currently in the
// arena whose stereotype is not memberOf (spec §8 invariant 8: "After
// abstract_parthoods, no PartOf whose stereotype != memberOf remains").
// Ids are snapshotted up front since abstraction deletes relations and
// sometimes entities as it goes.
func (g *Graph) AbstractParthoods(ctx context.Context) {
	var ids []string
	for _, id := range g.Relations() {
		if r, ok := g.relations[id]; ok && r.FinalType == PartOf && r.Stereotype != stereotype.MemberOf {
			ids = append(ids, id)
		}
	}
	for _, id := range ids {
		if _, ok := g.relations[id]; ok {
			g.AbstractParthood(ctx, id)
		}
	}
}

func (g *Graph) abstractParthood(ctx context.Context, rid string, stack foldStack) {
	r, ok := g.relations[rid]
	if !ok {
		return
	}
	partID, wholeID := r.From, r.To

	op := trace.Begin(ctx, g.logger, "ontoforge.ontology.abstract_parthood")
	defer op.End(nil)

	if partID == wholeID {
		g.report(diag.NewIssue(diag.Warning, diag.E_FOLD_RECURSION,
			"parthood relation is a self-loop; dropping it").
			WithRef(diag.ElementRef{Kind: "relation", ID: rid}).
			Build())
		g.DeleteRelation(ctx, rid)
		return
	}

	g.fold(ctx, partID, false, stack)

	if _, ok := g.entities[wholeID]; !ok {
		g.report(diag.NewIssue(diag.Warning, diag.E_FOLD_RECURSION,
			"whole entity was deleted while folding its part; abandoning parthood abstraction").
			WithRef(diag.ElementRef{Kind: "relation", ID: rid}).
			Build())
		return
	}

	// r may have been re-fetched if folding mutated the arena; the id is
	// stable so the pointer is still valid unless it was deleted outright.
	r, ok = g.relations[rid]
	if !ok {
		return
	}

	part := g.entities[partID]
	whole := g.entities[wholeID]
	longNames := g.cfg.LongNames()

	var renamePrefix string
	if r.Stereotype == stereotype.ComponentOf {
		r.ToProp.Role = ""
		whole.Attributes = append(whole.Attributes, part.Name)
		for _, vid := range whole.Views {
			if v, ok := g.views[vid]; ok && v.Kind == EntityView {
				v.Height += g.cfg.AttributeHeight()
			}
		}
		if longNames {
			renamePrefix = whole.Name + "'s " + part.Name + " "
		}
	}

	g.migratePartEdges(ctx, part, whole, renamePrefix)

	if hasOtherUpwardEdges(part, rid) {
		g.DeleteRelation(ctx, rid)
	} else {
		g.DeleteEntity(ctx, partID)
	}
}

// migratePartEdges migrates part's incoming/outgoing Relation edges, and
// incoming memberOf parthoods, onto whole (spec §4.8).
func (g *Graph) migratePartEdges(ctx context.Context, part, whole *Entity, renamePrefix string) {
	for _, rid := range part.Incoming(RelationKind) {
		r, ok := g.relations[rid]
		if !ok {
			continue
		}
		if r.Stereotype == stereotype.Termination && !essentialPartOf(r) {
			continue
		}
		name := renamed(r.Name, renamePrefix)
		moved := g.moveRelation(false, r, whole.ID, &name, nil)
		moved.ToProp.Cardinality = "1"
	}

	for _, rid := range part.Outgoing(RelationKind) {
		r, ok := g.relations[rid]
		if !ok {
			continue
		}
		name := renamed(r.Name, renamePrefix)
		moved := g.moveRelation(true, r, whole.ID, &name, nil)
		moved.FromProp.Cardinality = "1"
	}

	for _, rid := range part.Incoming(PartOf) {
		r, ok := g.relations[rid]
		if !ok || r.Stereotype != stereotype.MemberOf {
			continue
		}
		name := renamed(r.Name, renamePrefix)
		g.moveRelation(false, r, whole.ID, &name, nil)
	}
	_ = ctx
}

func renamed(name, prefix string) string {
	if prefix == "" {
		return name
	}
	return prefix + name
}

// essentialPartOf reports whether both endpoints of a parthood are
// read-only, the condition under which a termination relation still
// migrates along with the part (spec §4.8).
func essentialPartOf(r *AbcRelation) bool {
	return r.FromProp.IsReadOnly && r.ToProp.IsReadOnly
}

// hasOtherUpwardEdges reports whether part still has any outgoing PartOf or
// Generalization edge other than excludeID.
func hasOtherUpwardEdges(part *Entity, excludeID string) bool {
	for _, kind := range []FinalType{PartOf, Generalization} {
		for _, rid := range part.Outgoing(kind) {
			if rid != excludeID {
				return true
			}
		}
	}
	return false
}
