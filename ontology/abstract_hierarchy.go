package ontology

import (
	"context"

	"github.com/ontoverse/ontoforge/internal/trace"
	"github.com/ontoverse/ontoforge/stereotype"
)

// AbstractHierarchy abstracts the generalization rid per spec §4.9: if
// general is non-sortal, its structure is pushed down onto every specific;
// if the generalization belongs to a set, the whole set is processed
// together (synthesizing an enumeration when the set is complete and
// disjoint); otherwise the single generalization is abstracted.
func (g *Graph) AbstractHierarchy(ctx context.Context, rid string) {
	g.abstractHierarchy(ctx, rid, make(foldStack))
}

// AbstractHierarchies abstracts every Generalization currently in the
// arena (spec §8 invariant 7: "After abstract_hierarchies, no
// Generalization remains"). Ids are snapshotted up front since abstraction
// deletes generalizations, generalization sets, and sometimes entities
// (via push-down or enumeration synthesis) as it goes.
func (g *Graph) AbstractHierarchies(ctx context.Context) {
	var ids []string
	for _, id := range g.Relations() {
		if r, ok := g.relations[id]; ok && r.FinalType == Generalization {
			ids = append(ids, id)
		}
	}
	for _, id := range ids {
		if _, ok := g.relations[id]; ok {
			g.AbstractHierarchy(ctx, id)
		}
	}
}

func (g *Graph) abstractHierarchy(ctx context.Context, rid string, stack foldStack) {
	r, ok := g.relations[rid]
	if !ok {
		return
	}

	op := trace.Begin(ctx, g.logger, "ontoforge.ontology.abstract_hierarchy")
	defer op.End(nil)

	general, ok := g.entities[r.To]
	if ok && general.Stereotype.IsNonSortal() {
		g.pushDownHierarchy(ctx, rid, stack)
		return
	}

	if r.SetID != "" {
		g.abstractGeneralizationSet(ctx, r.SetID, stack)
		return
	}

	g.abstractGeneralization(ctx, rid, stack)
}

// pushDownHierarchy implements the R2 push-down case: fold general with
// partOfOnly, then migrate each of its Relation edges onto every specific
// child, and delete general.
func (g *Graph) pushDownHierarchy(ctx context.Context, rid string, stack foldStack) {
	r := g.relations[rid]
	generalID := r.To

	g.fold(ctx, generalID, true, stack)

	general, ok := g.entities[generalID]
	if !ok {
		return
	}

	children := general.Incoming(Generalization)

	for _, inRid := range general.Incoming(RelationKind) {
		in, ok := g.relations[inRid]
		if !ok {
			continue
		}
		for _, childGenID := range children {
			childGen, ok := g.relations[childGenID]
			if !ok {
				continue
			}
			g.copyRelationToTarget(in, childGen.From)
		}
	}
	for _, outRid := range general.Outgoing(RelationKind) {
		out, ok := g.relations[outRid]
		if !ok {
			continue
		}
		for _, childGenID := range children {
			childGen, ok := g.relations[childGenID]
			if !ok {
				continue
			}
			g.copyRelationFromSource(out, childGen.From)
		}
	}

	g.DeleteEntity(ctx, generalID)
}

// copyRelationToTarget creates a copy of r ending at newTarget instead of
// r.To, used when pushing an incoming relation of a non-sortal general down
// onto each of its specific children.
func (g *Graph) copyRelationToTarget(r *AbcRelation, newTarget string) *AbcRelation {
	cloned := r.clone()
	cloned.ID = g.NewRelationID()
	cloned.Views = nil
	cloned.To = newTarget
	g.PutRelation(cloned)
	g.cloneViews(r, cloned)
	return cloned
}

// copyRelationFromSource mirrors copyRelationToTarget for outgoing edges.
func (g *Graph) copyRelationFromSource(r *AbcRelation, newSource string) *AbcRelation {
	cloned := r.clone()
	cloned.ID = g.NewRelationID()
	cloned.Views = nil
	cloned.From = newSource
	g.PutRelation(cloned)
	g.cloneViews(r, cloned)
	return cloned
}

// abstractGeneralization implements _abstract_generalization (spec §4.9):
// fold specific, migrate all of its non-generalization edges onto general
// (using specific's name as the new role where the endpoint had none), and
// delete specific outright unless it has other upward edges — in which
// case only g is deleted, and specific is queued for deletion iff general
// is sortal.
func (g *Graph) abstractGeneralization(ctx context.Context, rid string, stack foldStack) {
	r, ok := g.relations[rid]
	if !ok {
		return
	}
	specificID, generalID := r.From, r.To

	g.fold(ctx, specificID, false, stack)

	specific, ok := g.entities[specificID]
	if !ok {
		return
	}
	general, ok := g.entities[generalID]
	if !ok {
		return
	}

	g.migrateNonGeneralizationEdges(specific, general, specific.Name)

	if hasOtherUpwardEdges(specific, rid) {
		g.DeleteRelation(ctx, rid)
		if general.Stereotype.IsSortal() {
			g.queueDelete(specificID)
		}
		return
	}
	g.DeleteEntity(ctx, specificID)
}

// migrateNonGeneralizationEdges migrates every PartOf/Relation edge
// incident to specific onto general, assigning roleIfEmpty on the moved
// side whenever the endpoint previously had no role.
func (g *Graph) migrateNonGeneralizationEdges(specific, general *Entity, roleIfEmpty string) {
	for _, kind := range []FinalType{RelationKind, PartOf} {
		for _, rid := range specific.Incoming(kind) {
			r, ok := g.relations[rid]
			if !ok {
				continue
			}
			role := r.ToProp.Role
			if role == "" {
				role = roleIfEmpty
			}
			g.moveRelation(false, r, general.ID, nil, &role)
		}
		for _, rid := range specific.Outgoing(kind) {
			r, ok := g.relations[rid]
			if !ok {
				continue
			}
			role := r.FromProp.Role
			if role == "" {
				role = roleIfEmpty
			}
			g.moveRelation(true, r, general.ID, nil, &role)
		}
	}
}

// abstractGeneralizationSet processes every generalization in setID (spec
// §4.9 R4-H5): each is abstracted via abstractGeneralization after its
// specific's name is recorded as an enumeration literal; if the set is
// complete and disjoint, an enumeration entity collecting those literals is
// synthesized (or merged into a pre-existing one already linked to
// general).
func (g *Graph) abstractGeneralizationSet(ctx context.Context, setID string, stack foldStack) {
	set, ok := g.sets[setID]
	if !ok {
		return
	}
	members := append([]string(nil), set.GeneralizationIDs...)
	if len(members) == 0 {
		return
	}

	generalID := ""
	if r, ok := g.relations[members[0]]; ok {
		generalID = r.To
	}
	complete := set.IsComplete && set.IsDisjoint

	var literals []string
	for _, gid := range members {
		r, ok := g.relations[gid]
		if !ok {
			continue
		}
		specific, ok := g.entities[r.From]
		if !ok {
			continue
		}
		literals = append(literals, specific.Name)
		g.abstractGeneralization(ctx, gid, stack)
	}

	if complete && generalID != "" {
		g.synthesizeEnumeration(generalID, set.Name, literals)
	}
}

// synthesizeEnumeration creates (or extends a pre-existing) enumeration
// entity collecting literals, linked from general with a "1" cardinality
// relation, placed diagonally offset from general (spec §4.9). The
// enumeration is named after the owning generalization set.
func (g *Graph) synthesizeEnumeration(generalID, setName string, literals []string) {
	general, ok := g.entities[generalID]
	if !ok {
		return
	}

	for _, rid := range general.Outgoing(RelationKind) {
		r, ok := g.relations[rid]
		if !ok {
			continue
		}
		target, ok := g.entities[r.To]
		if ok && target.Stereotype == stereotype.Enumeration {
			target.Literals = append(target.Literals, literals...)
			return
		}
	}

	enumID := g.NewEntityID()
	enum := newEntity(enumID)
	enum.Name = setName
	enum.Stereotype = stereotype.Enumeration
	enum.RestrictedTo = []string{stereotype.Abstract.String()}
	enum.Literals = literals
	g.PutEntity(enum)

	width, height := g.cfg.DefaultSize()
	for _, vid := range general.Views {
		gv, ok := g.views[vid]
		if !ok || gv.Kind != EntityView {
			continue
		}
		vid := g.NewRelationID()
		v := &View{
			ID:        vid,
			DiagramID: gv.DiagramID,
			ElementID: enumID,
			Kind:      EntityView,
			X:         gv.X + width + 50,
			Y:         gv.Y + height + 50,
			Width:     width,
			Height:    height + len(enum.Literals)*g.cfg.AttributeHeight(),
		}
		g.PutView(v)
	}

	rid := g.NewRelationID()
	r := &AbcRelation{
		ID:        rid,
		Name:      enum.Name,
		From:      generalID,
		To:        enumID,
		FinalType: RelationKind,
		ToProp:    EndpointProperty{Cardinality: "1"},
	}
	g.PutRelation(r)
}
