package canonical

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"

	"github.com/ontoverse/ontoforge/internal/genid"
	"github.com/ontoverse/ontoforge/internal/trace"
	"github.com/ontoverse/ontoforge/ontology"
)

// Save serializes a Graph back into the canonical project document, using
// model as the outer Model/Package tree (typically the one Load returned,
// carrying whatever nested Package structure the graph's entities and
// relations were hoisted out of). Flattened elements are appended only to
// the outermost model's contents, mirroring how Load hoists them off of it
// (spec §4.1, §4.2's "(a) canonical" output).
//
// Fields this package does not model explicitly are not round-tripped: an
// endpoint property's own id is generated fresh, and a generalization set's
// categorizer and a diagram's owner are written as null; Entity's residual Rest bag
// is the only part of the document preserved byte-for-byte across a
// load/save cycle.
func Save(ctx context.Context, g *ontology.Graph, model *Model) ([]byte, error) {
	op := trace.Begin(ctx, nil, "ontoforge.canonical.save")
	var err error
	defer func() { op.End(err) }()

	s := &saver{g: g}

	modelJSON := s.modelToJSON(model)
	contents, _ := modelJSON["contents"].([]any)

	for _, id := range sortedStrings(g.Entities()) {
		e, _ := g.Entity(id)
		contents = append(contents, s.entityToJSON(e))
	}
	for _, id := range sortedStrings(g.Relations()) {
		r, _ := g.Relation(id)
		contents = append(contents, s.relationToJSON(r))
	}
	for _, id := range sortedStrings(g.GeneralizationSets()) {
		set, _ := g.GeneralizationSet(id)
		contents = append(contents, s.generalizationSetToJSON(set))
	}
	modelJSON["contents"] = contents

	project := map[string]any{
		"model":    modelJSON,
		"diagrams": s.diagramsToJSON(),
	}

	data, marshalErr := json.MarshalIndent(project, "", "  ")
	if marshalErr != nil {
		err = marshalErr
		return nil, err
	}
	return data, nil
}

type saver struct {
	g *ontology.Graph
}

// modelToJSON recursively renders the Model/Package tree. Unlike
// entityToJSON et al., this never sees a residual rest bag: Model is fully
// typed, so every field is reconstructed explicitly.
func (s *saver) modelToJSON(m *Model) map[string]any {
	var contents []any
	for _, child := range m.Packages {
		contents = append(contents, s.modelToJSON(child))
	}
	return map[string]any{
		"id":                  m.ID,
		"name":                m.Name,
		"description":         derefString(m.Description),
		"type":                m.Type,
		"propertyAssignments": m.PropertyAssignments,
		"contents":            contents,
	}
}

func (s *saver) entityToJSON(e *ontology.Entity) map[string]any {
	out := map[string]any{
		"id":            e.ID,
		"name":          e.Name,
		"description":   e.Description,
		"type":          e.Type,
		"stereotype":    stereotypeOrNil(e.Stereotype.IsZero(), e.Stereotype.String()),
		"isAbstract":    e.IsAbstract,
		"isDerived":     e.IsDerived,
		"properties":    propertiesToJSON(e.Attributes),
		"isExtensional": e.IsExtensional,
		"isPowertype":   e.IsPowertype,
		"order":         orderToString(e.Order),
		"literals":      stringSliceOrEmpty(e.Literals),
		"restrictedTo":  stringSliceOrEmpty(e.RestrictedTo),
	}
	for k, v := range e.Rest.Clone() {
		out[k] = v
	}
	return out
}

// propertiesToJSON rebuilds the UML Property dicts an entity's attribute
// names were reduced to on load (only the name survives; every other field
// is the fixed Property default, per the original's Property.to_json).
func propertiesToJSON(names []string) []any {
	if len(names) == 0 {
		return []any{}
	}
	out := make([]any, 0, len(names))
	for _, name := range names {
		out = append(out, map[string]any{
			"id":                  genid.Element(16),
			"name":                name,
			"description":         nil,
			"type":                typeProperty,
			"propertyAssignments": nil,
			"stereotype":          nil,
			"isDerived":           false,
			"isReadOnly":          true,
			"isOrdered":           false,
			"cardinality":         nil,
			"propertyType":        nil,
			"subsettedProperties": nil,
			"redefinedProperties": nil,
			"aggregationKind":     "NONE",
		})
	}
	return out
}

func (s *saver) relationToJSON(r *ontology.AbcRelation) map[string]any {
	if r.IsGeneralization() {
		return map[string]any{
			"id":                  r.ID,
			"name":                r.Name,
			"description":         "",
			"type":                typeGeneralization,
			"propertyAssignments": nil,
			"general":             s.entityRef(r.To),
			"specific":            s.entityRef(r.From),
		}
	}
	return map[string]any{
		"id":                  r.ID,
		"name":                r.Name,
		"description":         "",
		"type":                r.Type,
		"propertyAssignments": nil,
		"stereotype":          stereotypeOrNil(r.Stereotype.IsZero(), r.Stereotype.String()),
		"properties": []any{
			s.endpointToJSON(r.FromProp, r.From),
			s.endpointToJSON(r.ToProp, r.To),
		},
	}
}

func (s *saver) endpointToJSON(p ontology.EndpointProperty, entityID string) map[string]any {
	return map[string]any{
		"id":                  genid.Element(16),
		"name":                p.Role,
		"description":         nil,
		"type":                typeProperty,
		"propertyAssignments": nil,
		"stereotype":          nil,
		"isDerived":           false,
		"isReadOnly":          p.IsReadOnly,
		"isOrdered":           false,
		"cardinality":         p.Cardinality,
		"propertyType":        s.entityRef(entityID),
		"subsettedProperties": nil,
		"redefinedProperties": nil,
		"aggregationKind":     p.AggregationKind.String(),
	}
}

func (s *saver) entityRef(id string) map[string]any {
	entityType := typeClass
	if e, ok := s.g.Entity(id); ok && e.Type != "" {
		entityType = e.Type
	}
	return map[string]any{"id": id, "type": entityType}
}

func (s *saver) generalizationSetToJSON(set *ontology.GeneralizationSet) map[string]any {
	gens := make([]any, 0, len(set.GeneralizationIDs))
	for _, gid := range set.GeneralizationIDs {
		gens = append(gens, map[string]any{"id": gid, "type": typeGeneralization})
	}
	return map[string]any{
		"id":                  set.ID,
		"name":                set.Name,
		"description":         "",
		"type":                typeGeneralizationSet,
		"propertyAssignments": nil,
		"isDisjoint":          set.IsDisjoint,
		"isComplete":          set.IsComplete,
		"categorizer":         nil,
		"generalizations":     gens,
	}
}

func (s *saver) diagramsToJSON() []any {
	out := make([]any, 0, len(s.g.Diagrams()))
	for _, id := range sortedStrings(s.g.Diagrams()) {
		d, _ := s.g.Diagram(id)
		var contents []any
		for viewID := range d.ViewIDs {
			v, ok := s.g.View(viewID)
			if !ok {
				continue
			}
			contents = append(contents, s.viewToJSON(v))
		}
		out = append(out, map[string]any{
			"id":       d.ID,
			"name":     d.Name,
			"type":     "Diagram",
			"owner":    nil,
			"contents": contents,
		})
	}
	return out
}

func (s *saver) viewToJSON(v *ontology.View) map[string]any {
	switch v.Kind {
	case ontology.EntityView:
		return map[string]any{
			"id":           v.ID,
			"type":         viewTypeClass,
			"modelElement": s.entityRef(v.ElementID),
			"shape": map[string]any{
				"x": v.X, "y": v.Y, "width": v.Width, "height": v.Height,
			},
		}
	case ontology.SetView:
		return map[string]any{
			"id":   v.ID,
			"type": viewTypeGeneralizationSet,
			"modelElement": map[string]any{
				"id": v.ElementID, "type": typeGeneralizationSet,
			},
			"shape": map[string]any{
				"x": v.X, "y": v.Y, "width": v.Width, "height": v.Height, "value": v.Value,
			},
		}
	default:
		viewType := viewTypeRelation
		elemType := typeRelation
		if r, ok := s.g.Relation(v.ElementID); ok && r.IsGeneralization() {
			viewType = viewTypeGeneralization
			elemType = typeGeneralization
		}
		points := make([]any, 0, len(v.Points))
		for _, p := range v.Points {
			points = append(points, map[string]any{"x": p.X, "y": p.Y})
		}
		return map[string]any{
			"id":           v.ID,
			"type":         viewType,
			"modelElement": map[string]any{"id": v.ElementID, "type": elemType},
			"shape":        map[string]any{"points": points},
			"source":       map[string]any{"id": v.SourceViewID, "type": viewTypeClass},
			"target":       map[string]any{"id": v.TargetViewID, "type": viewTypeClass},
		}
	}
}

func derefString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func stereotypeOrNil(isZero bool, value string) any {
	if isZero {
		return nil
	}
	return value
}

func orderToString(order int) string {
	if order == 0 {
		return ""
	}
	return strconv.Itoa(order)
}

func stringSliceOrEmpty(ss []string) []any {
	out := make([]any, 0, len(ss))
	for _, s := range ss {
		out = append(out, s)
	}
	return out
}

func sortedStrings(ss []string) []string {
	out := append([]string(nil), ss...)
	sort.Strings(out)
	return out
}
