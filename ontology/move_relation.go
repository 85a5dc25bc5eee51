package ontology

import (
	"strings"

	"github.com/ontoverse/ontoforge/stereotype"
)

// moveRelation implements the _move_relation contract (spec §4.11): migrate
// relation onto newEntityID, replacing whichever endpoint isFrom selects,
// either by merging into an already-existing parallel relation between the
// new pair or by deep-copying relation into a fresh one.
//
// The caller is responsible for eventually removing the original relation
// (typically by deleting the entity it is migrating away from, which
// sweeps up every relation still incident to it).
func (g *Graph) moveRelation(isFrom bool, relation *AbcRelation, newEntityID string, newName, newRole *string) *AbcRelation {
	otherID := relation.From
	if isFrom {
		otherID = relation.To
	}

	if match := g.findParallelMatch(isFrom, relation, newEntityID, otherID); match != nil {
		g.mergeIntoParallel(isFrom, relation, match)
		return match
	}

	return g.deepCopyMoved(isFrom, relation, newEntityID, newName, newRole)
}

// findParallelMatch searches the arena for a relation already connecting
// newEntityID and otherID that relation would merge into under the
// configured multRelations equivalence rule.
func (g *Graph) findParallelMatch(isFrom bool, relation *AbcRelation, newEntityID, otherID string) *AbcRelation {
	candidates, ok := g.entities[newEntityID]
	if !ok {
		return nil
	}
	seen := make(map[string]bool)
	var order []string
	for _, kind := range []FinalType{RelationKind, PartOf} {
		for _, rid := range candidates.Incoming(kind) {
			if !seen[rid] {
				seen[rid] = true
				order = append(order, rid)
			}
		}
		for _, rid := range candidates.Outgoing(kind) {
			if !seen[rid] {
				seen[rid] = true
				order = append(order, rid)
			}
		}
	}
	for _, rid := range order {
		cand := g.relations[rid]
		if cand == nil || cand.ID == relation.ID {
			continue
		}
		if !samePair(cand, newEntityID, otherID) {
			continue
		}
		if g.cfg.MultRelations() {
			if cand.Name == "" || sharesToken(cand.Name, relation.Name) {
				return cand
			}
			continue
		}
		return cand
	}
	return nil
}

func samePair(r *AbcRelation, a, b string) bool {
	return (r.From == a && r.To == b) || (r.From == b && r.To == a)
}

func sharesToken(a, b string) bool {
	tokensA := strings.Fields(strings.ToLower(a))
	tokensB := make(map[string]bool)
	for _, t := range strings.Fields(strings.ToLower(b)) {
		tokensB[t] = true
	}
	for _, t := range tokensA {
		if tokensB[t] {
			return true
		}
	}
	return false
}

// mergeIntoParallel folds relation into an already-existing parallel
// relation match: names are merged (only when MultRelations is off), the
// moved side's role is cleared, and
// both cardinalities are broadened to span whichever of the two is wider.
func (g *Graph) mergeIntoParallel(isFrom bool, relation, match *AbcRelation) {
	if !g.cfg.MultRelations() && relation.Name != match.Name && relation.Name != "" {
		switch {
		case match.Name == "":
			match.Name = relation.Name
		case !strings.Contains(match.Name, relation.Name):
			match.Name = match.Name + " (" + relation.Name + ")"
		}
	}

	if isFrom {
		match.FromProp.Role = ""
	} else {
		match.ToProp.Role = ""
	}

	if broadened, ok := stereotype.MinimalCardinality(match.FromProp.Cardinality, relation.FromProp.Cardinality); ok {
		match.FromProp.Cardinality = broadened
	} else {
		match.FromProp.Cardinality = ""
	}
	if broadened, ok := stereotype.MinimalCardinality(match.ToProp.Cardinality, relation.ToProp.Cardinality); ok {
		match.ToProp.Cardinality = broadened
	} else {
		match.ToProp.Cardinality = ""
	}
}

// deepCopyMoved clones relation into a brand-new relation with a fresh id,
// re-homes it onto newEntityID on the moved side, applies the optional new
// name/role, re-links a copy of every view into its diagram, and relaxes
// the unmoved endpoint's cardinality lower bound to 0.
func (g *Graph) deepCopyMoved(isFrom bool, relation *AbcRelation, newEntityID string, newName, newRole *string) *AbcRelation {
	cloned := relation.clone()
	cloned.ID = g.NewRelationID()
	cloned.Views = nil

	if isFrom {
		cloned.From = newEntityID
	} else {
		cloned.To = newEntityID
	}

	if newName != nil {
		cloned.Name = *newName
	}
	if newRole != nil {
		if isFrom {
			cloned.FromProp.Role = *newRole
		} else {
			cloned.ToProp.Role = *newRole
		}
	}

	if isFrom {
		if relaxed, ok := stereotype.RelaxCardinality(cloned.ToProp.Cardinality); ok {
			cloned.ToProp.Cardinality = relaxed
		}
	} else {
		if relaxed, ok := stereotype.RelaxCardinality(cloned.FromProp.Cardinality); ok {
			cloned.FromProp.Cardinality = relaxed
		}
	}

	g.PutRelation(cloned)
	g.cloneViews(relation, cloned)
	return cloned
}

// cloneViews re-homes a copy of each of original's views onto clone,
// rewriting the endpoint that moved to point at the new entity's view in
// the same diagram (spec §4.11: "new view ids re-linked into diagrams").
func (g *Graph) cloneViews(original, clone *AbcRelation) {
	for _, vid := range original.Views {
		v, ok := g.views[vid]
		if !ok {
			continue
		}
		nv := &View{
			ID:           g.NewRelationID(),
			DiagramID:    v.DiagramID,
			ElementID:    clone.ID,
			Kind:         v.Kind,
			Points:       append([]Point(nil), v.Points...),
			SourceViewID: v.SourceViewID,
			TargetViewID: v.TargetViewID,
		}
		g.PutView(nv)
	}
}
