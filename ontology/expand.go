package ontology

import (
	"context"
	"fmt"
	"sort"

	"github.com/ontoverse/ontoforge/catalog"
	"github.com/ontoverse/ontoforge/internal/clean"
	"github.com/ontoverse/ontoforge/internal/trace"
)

// Expand ingests a catalog hierarchy descriptor rooted conceptually at
// node: every catalog node is matched against an existing entity by its
// (clean_name, stereotype) index key, reusing it, or else a new entity is
// created and its views cascaded below node in each of node's diagrams.
// Parent->child pairs get a synthesized Generalization when none already
// connects them; catalog sets get a synthesized GeneralizationSet (spec
// §4.6).
//
// limit caps the number of brand-new entities Expand is willing to
// synthesize; 0 means unlimited. Once the limit is reached, remaining
// catalog nodes are simply skipped rather than treated as an error.
func (g *Graph) Expand(ctx context.Context, nodeID string, h catalog.Hierarchy, limit int) error {
	node, ok := g.entities[nodeID]
	if !ok {
		return fmt.Errorf("ontology: expand: entity %q not found", nodeID)
	}

	op := trace.Begin(ctx, g.logger, "ontoforge.ontology.expand")
	defer op.End(nil)

	delimiter := g.cfg.IndexDelimiter()
	_, height := g.cfg.DefaultSize()

	existing := g.entityIndex(delimiter)
	resolved := make(map[catalog.Key]string)
	created := 0
	cascade := 0

	resolve := func(key catalog.Key) string {
		if id, ok := resolved[key]; ok {
			return id
		}
		if id, ok := existing[key]; ok {
			resolved[key] = id
			return id
		}
		if limit > 0 && created >= limit {
			return ""
		}
		class, ok := key.Stereotype(delimiter)
		if !ok {
			return ""
		}
		e := newEntity(g.NewEntityID())
		e.Name = clean.Capitalize(key.Name(delimiter))
		e.Stereotype = class
		g.PutEntity(e)
		g.placeBelow(node, e, cascade, height)
		cascade++
		created++
		resolved[key] = e.ID
		return e.ID
	}

	parentKeys := make([]catalog.Key, 0, len(h.Nodes))
	for parentKey := range h.Nodes {
		parentKeys = append(parentKeys, parentKey)
	}
	sort.Slice(parentKeys, func(i, j int) bool { return parentKeys[i] < parentKeys[j] })

	for _, parentKey := range parentKeys {
		parentID := resolve(parentKey)
		if parentID == "" {
			continue
		}
		for _, childKey := range h.Nodes[parentKey] {
			childID := resolve(childKey)
			if childID == "" {
				continue
			}
			g.ensureGeneralization(childID, parentID)
		}
	}

	setNames := make([]string, 0, len(h.Sets))
	for name := range h.Sets {
		setNames = append(setNames, name)
	}
	sort.Strings(setNames)

	for _, name := range setNames {
		g.synthesizeSet(h.Sets[name], resolved)
	}

	return nil
}

// entityIndex builds the clean(name)+delimiter+stereotype -> entity id
// index used to match catalog nodes against existing entities.
func (g *Graph) entityIndex(delimiter string) map[catalog.Key]string {
	idx := make(map[catalog.Key]string, len(g.entities))
	for id, e := range g.entities {
		if e.Stereotype.IsZero() {
			continue
		}
		idx[catalog.NewKey(e.Name, e.Stereotype, delimiter)] = id
	}
	return idx
}

// placeBelow adds a view for e in every diagram node appears in, offset
// downward from node's view by (cascade+1)*1.2*height.
func (g *Graph) placeBelow(node, e *Entity, cascade, height int) {
	width, _ := g.cfg.DefaultSize()
	for _, vid := range node.Views {
		nv, ok := g.views[vid]
		if !ok || nv.Kind != EntityView {
			continue
		}
		v := &View{
			ID:        g.NewRelationID(),
			DiagramID: nv.DiagramID,
			ElementID: e.ID,
			Kind:      EntityView,
			X:         nv.X,
			Y:         nv.Y + int(float64(cascade+1)*1.2*float64(height)),
			Width:     width,
			Height:    height,
		}
		g.PutView(v)
	}
}

// ensureGeneralization creates a Generalization from specificID to
// generalID if one does not already exist between them.
func (g *Graph) ensureGeneralization(specificID, generalID string) string {
	specific, ok := g.entities[specificID]
	if !ok {
		return ""
	}
	for _, rid := range specific.Outgoing(Generalization) {
		if r, ok := g.relations[rid]; ok && r.To == generalID {
			return rid
		}
	}
	rid := g.NewRelationID()
	r := &AbcRelation{
		ID:        rid,
		From:      specificID,
		To:        generalID,
		FinalType: Generalization,
	}
	g.PutRelation(r)
	return rid
}

// synthesizeSet creates a GeneralizationSet over set's children, provided
// their shared generalization exists and the first one isn't already in a
// set (spec §4.6: "only if the first generalization is not already in a
// set").
func (g *Graph) synthesizeSet(set catalog.SetDescriptor, resolved map[catalog.Key]string) {
	parentID, ok := resolved[set.To]
	if !ok {
		return
	}
	var gids []string
	for _, childKey := range set.From {
		childID, ok := resolved[childKey]
		if !ok {
			continue
		}
		gids = append(gids, g.ensureGeneralization(childID, parentID))
	}
	if len(gids) == 0 {
		return
	}
	if first, ok := g.relations[gids[0]]; ok && first.SetID != "" {
		return
	}
	s := &GeneralizationSet{
		ID:                g.NewEntityID(),
		GeneralizationIDs: gids,
		IsComplete:        set.Complete,
		IsDisjoint:        set.Disjoint,
	}
	g.PutGeneralizationSet(s)
}
