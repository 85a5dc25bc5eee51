package display

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/ontoverse/ontoforge/adapter/canonical"
	"github.com/ontoverse/ontoforge/config"
	"github.com/ontoverse/ontoforge/internal/trace"
	"github.com/ontoverse/ontoforge/ontology"
)

// Node is one entity's flattened display-graph projection.
type Node struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	FullName   string `json:"fullName"`
	Color      string `json:"color"`
	SymbolType string `json:"symbolType"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
}

// Link is one relation's (or generalization's) flattened display-graph
// projection. StrokeDasharray is present for parthoods and for
// generalizations, omitted for ordinary relations (relation.py/to_expo).
type Link struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	FullName        string `json:"fullName"`
	Source          string `json:"source"`
	Target          string `json:"target"`
	StrokeDasharray int    `json:"strokeDasharray,omitempty"`
}

// Document is the full display-graph payload (spec §6 "Display format"):
// the flattened node/link graph, the canonical document it was derived
// from, and one human-readable constraint string per generalization set.
type Document struct {
	Graph struct {
		Nodes []Node `json:"nodes"`
		Links []Link `json:"links"`
	} `json:"graph"`
	Origin      json.RawMessage `json:"origin"`
	Constraints []string        `json:"constraints"`
}

// Render projects g into the display-graph format, rescaling node
// coordinates to fit within maxHeight/maxWidth whenever the graph's
// current extent exceeds the requested canvas (jsongraph.py.to_expo).
// maxHeight or maxWidth of 0 disables rescaling on that axis. model is the
// same Model/Package tree Load produced or Save otherwise expects; it is
// embedded verbatim (re-serialized) as the document's "origin" field.
func Render(ctx context.Context, g *ontology.Graph, model *canonical.Model, maxHeight, maxWidth int) ([]byte, error) {
	op := trace.Begin(ctx, g.Logger(), "ontoforge.display.render")
	var err error
	defer func() { op.End(err) }()

	origin, saveErr := canonical.Save(ctx, g, model)
	if saveErr != nil {
		err = saveErr
		return nil, err
	}

	cfg := g.Config()
	var doc Document
	doc.Origin = json.RawMessage(origin)
	doc.Graph.Links = []Link{}
	doc.Constraints = []string{}

	height, width := maxHeight, maxWidth
	for _, id := range sortedStrings(g.Entities()) {
		e, _ := g.Entity(id)
		n := nodeFor(g, e, cfg)
		if n.Y > height {
			height = n.Y
		}
		if n.X > width {
			width = n.X
		}
		doc.Graph.Nodes = append(doc.Graph.Nodes, n)
	}
	if height > maxHeight && maxHeight > 0 {
		for i := range doc.Graph.Nodes {
			doc.Graph.Nodes[i].Y = doc.Graph.Nodes[i].Y * (maxHeight - 10) / height
		}
	}
	if width > maxWidth && maxWidth > 0 {
		for i := range doc.Graph.Nodes {
			doc.Graph.Nodes[i].X = doc.Graph.Nodes[i].X * (maxWidth - 10) / width
		}
	}

	var links []Link
	for _, id := range sortedStrings(g.Relations()) {
		r, _ := g.Relation(id)
		links = append(links, linkFor(r, cfg))
	}
	if coalesced := coalesceLinks(links); len(coalesced) > 0 {
		doc.Graph.Links = coalesced
	}

	for _, id := range sortedStrings(g.GeneralizationSets()) {
		set, _ := g.GeneralizationSet(id)
		doc.Constraints = append(doc.Constraints, constraintFor(g, set))
	}

	data, marshalErr := json.Marshal(doc)
	if marshalErr != nil {
		err = marshalErr
		return nil, err
	}
	return data, nil
}

// nodeFor builds one entity's node projection, taking its coordinates from
// the first view attached to it (entity.py.to_expo: "self.views[0]").
func nodeFor(g *ontology.Graph, e *ontology.Entity, cfg *config.Config) Node {
	x, y := 0, 0
	if len(e.Views) > 0 {
		if v, ok := g.View(e.Views[0]); ok {
			x, y = v.X, v.Y
		}
	}

	fullName := e.Name
	if !e.Stereotype.IsZero() {
		fullName = e.Stereotype.String() + ":" + e.Name
	}

	color, symbol := colorAndSymbol(e, cfg)
	return Node{
		ID:         e.ID,
		Name:       e.Name,
		FullName:   fullName,
		Color:      color,
		SymbolType: symbol,
		X:          x,
		Y:          y,
	}
}

// linkFor builds one relation's link projection. A generalization always
// carries the stroke-width dasharray used to distinguish it visually; an
// ordinary relation carries one only when it is a parthood (relation.py's
// Generalization.to_expo/Relation.to_expo).
func linkFor(r *ontology.AbcRelation, cfg *config.Config) Link {
	strokeWidth, _ := cfg.Stroke()

	if r.IsGeneralization() {
		return Link{
			ID:              r.ID,
			Name:            "",
			FullName:        "",
			Source:          r.From,
			Target:          r.To,
			StrokeDasharray: strokeWidth,
		}
	}

	fullName := ""
	switch {
	case !r.Stereotype.IsZero() && r.Name != "":
		fullName = r.Stereotype.String() + ":" + r.Name
	case !r.Stereotype.IsZero():
		fullName = r.Stereotype.String()
	case r.Name != "":
		fullName = r.Name
	}
	name := r.Name
	if name == "" {
		name = fullName
	}

	link := Link{
		ID:       r.ID,
		Name:     name,
		FullName: fullName,
		Source:   r.From,
		Target:   r.To,
	}
	if r.IsPartOf() {
		link.StrokeDasharray = strokeWidth
	}
	return link
}

// constraintFor renders one generalization set as a human-readable
// constraint string (spec §6: "GeneralizationSet (<complete|not complete>,
// <disjoint|not disjoint>): {a->b, c->d}"; generalization_set.py.to_expo).
func constraintFor(g *ontology.Graph, set *ontology.GeneralizationSet) string {
	completeness := "not complete"
	if set.IsComplete {
		completeness = "complete"
	}
	disjointness := "not disjoint"
	if set.IsDisjoint {
		disjointness = "disjoint"
	}

	pairs := make([]string, 0, len(set.GeneralizationIDs))
	for _, gid := range set.GeneralizationIDs {
		gen, ok := g.Relation(gid)
		if !ok {
			continue
		}
		from, _ := g.Entity(gen.From)
		to, _ := g.Entity(gen.To)
		pairs = append(pairs, fmt.Sprintf("%s->%s", entityName(from), entityName(to)))
	}

	return fmt.Sprintf("GeneralizationSet (%s, %s): {%s}", completeness, disjointness, strings.Join(pairs, ", "))
}

func entityName(e *ontology.Entity) string {
	if e == nil {
		return ""
	}
	return e.Name
}

func sortedStrings(ss []string) []string {
	out := append([]string(nil), ss...)
	sort.Strings(out)
	return out
}
