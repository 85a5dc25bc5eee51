package ontology

import (
	"context"

	"github.com/ontoverse/ontoforge/internal/trace"
	"github.com/ontoverse/ontoforge/stereotype"
)

// AbstractAspects applies AbstractAspect to every relator, quality, and
// mode entity currently in the arena (spec §4.10, last paragraph).
func (g *Graph) AbstractAspects(ctx context.Context) {
	for _, id := range g.Entities() {
		e, ok := g.entities[id]
		if !ok || !e.Stereotype.IsAspect() {
			continue
		}
		g.AbstractAspect(ctx, id)
	}
}

// AbstractAspect collapses the aspect entity (relator/quality/mode) id per
// spec §4.10: its stocks (generalization targets), in/out relations to
// endurants, mediation/characterization sources, and incoming event
// manifestations are rewired directly between each other, then the aspect
// is deleted.
//
// If keepRelators is configured and the aspect's degree is at or above
// MinRelatorsDegree, the aspect is left untouched.
func (g *Graph) AbstractAspect(ctx context.Context, id string) {
	a, ok := g.entities[id]
	if !ok || !a.Stereotype.IsAspect() {
		return
	}
	if g.cfg.KeepRelators() && a.Degree() >= g.cfg.MinRelatorsDegree() {
		return
	}

	op := trace.Begin(ctx, g.logger, "ontoforge.ontology.abstract_aspect")
	defer op.End(nil)

	g.fold(ctx, id, false, make(foldStack))

	for _, rid := range a.Incoming(RelationKind) {
		r, ok := g.relations[rid]
		if !ok {
			continue
		}
		src, ok := g.entities[r.From]
		if ok && src.Stereotype.IsAspect() {
			g.AbstractAspect(ctx, src.ID)
		}
	}

	stocks := a.Outgoing(Generalization)
	var inRelations, outRelations []string
	var sources []string
	type eventPair struct{ eventID, relID string }
	var events []eventPair

	for _, rid := range a.Incoming(RelationKind) {
		r, ok := g.relations[rid]
		if !ok {
			continue
		}
		src, ok := g.entities[r.From]
		if !ok {
			continue
		}
		if r.Stereotype == stereotype.Manifestation && src.Stereotype == stereotype.Event {
			events = append(events, eventPair{eventID: src.ID, relID: rid})
			continue
		}
		if src.Stereotype.IsEndurantOrDatatype() {
			inRelations = append(inRelations, rid)
		}
	}

	for _, rid := range a.Outgoing(RelationKind) {
		r, ok := g.relations[rid]
		if !ok {
			continue
		}
		if r.Stereotype == stereotype.Mediation || r.Stereotype == stereotype.Characterization {
			sources = append(sources, r.To)
			continue
		}
		target, ok := g.entities[r.To]
		if ok && target.Stereotype.IsEndurantOrDatatype() {
			outRelations = append(outRelations, rid)
		}
	}

	longNames := g.cfg.LongNames()

	// R1: push each in_relation onto each generalization stock.
	for _, inRid := range inRelations {
		in, ok := g.relations[inRid]
		if !ok {
			continue
		}
		for _, gid := range stocks {
			gen, ok := g.relations[gid]
			if !ok {
				continue
			}
			stockID := gen.To
			role := a.Name
			moved := g.moveRelation(false, in, stockID, nil, &role)
			if relaxed, ok := stereotype.RelaxCardinality(moved.ToProp.Cardinality); ok {
				moved.ToProp.Cardinality = relaxed
			}
		}
	}

	// A1: push each out_relation from each mediation/characterization source.
	for _, outRid := range outRelations {
		out, ok := g.relations[outRid]
		if !ok {
			continue
		}
		for _, sourceID := range sources {
			source, ok := g.entities[sourceID]
			if !ok {
				continue
			}
			emptyRole := ""
			name := out.Name
			if name == "" {
				name = a.Name
			}
			if longNames {
				roleFrom := out.FromProp.Role
				if roleFrom == "" {
					roleFrom = a.Name
				}
				name = source.Name + "'s " + roleFrom + " " + out.Name
			}
			moved := g.moveRelation(true, out, sourceID, &name, &emptyRole)
			if relaxed, ok := stereotype.RelaxCardinality(moved.ToProp.Cardinality); ok {
				moved.ToProp.Cardinality = relaxed
			}
			moved.FromProp.Cardinality = ""
		}
	}

	// Pairwise between sources sharing a diagram: a fresh relation named
	// a.Name, unless one already exists under the multRelations rule.
	for i := 0; i < len(sources); i++ {
		for j := i + 1; j < len(sources); j++ {
			s1, s2 := sources[i], sources[j]
			if !g.shareDiagram(s1, s2) {
				continue
			}
			if g.findParallelMatch(true, &AbcRelation{Name: a.Name}, s1, s2) != nil {
				continue
			}
			rid := g.NewRelationID()
			r := &AbcRelation{
				ID:        rid,
				Name:      a.Name,
				From:      s1,
				To:        s2,
				FinalType: RelationKind,
			}
			g.PutRelation(r)
		}
	}

	// A2: for each event manifestation, link the event to every source with
	// a fresh participation relation.
	for _, ev := range events {
		for _, sourceID := range sources {
			rid := g.NewRelationID()
			r := &AbcRelation{
				ID:         rid,
				Name:       a.Name,
				From:       ev.eventID,
				To:         sourceID,
				FinalType:  RelationKind,
				Stereotype: stereotype.Participation,
				ToProp:     EndpointProperty{Cardinality: "1"},
			}
			g.PutRelation(r)
		}
	}

	g.DeleteEntity(ctx, id)
}

// shareDiagram reports whether entities a and b have a view on a common
// diagram.
func (g *Graph) shareDiagram(aID, bID string) bool {
	a, ok := g.entities[aID]
	if !ok {
		return false
	}
	b, ok := g.entities[bID]
	if !ok {
		return false
	}
	diagrams := make(map[string]bool)
	for _, vid := range a.Views {
		if v, ok := g.views[vid]; ok {
			diagrams[v.DiagramID] = true
		}
	}
	for _, vid := range b.Views {
		if v, ok := g.views[vid]; ok && diagrams[v.DiagramID] {
			return true
		}
	}
	return false
}
