package canonical

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tidwall/jsonc"

	"github.com/ontoverse/ontoforge/config"
	"github.com/ontoverse/ontoforge/diag"
	"github.com/ontoverse/ontoforge/immutable"
	"github.com/ontoverse/ontoforge/internal/trace"
	"github.com/ontoverse/ontoforge/ontology"
	"github.com/ontoverse/ontoforge/stereotype"
)

// Load parses a canonical project document into a fresh Graph plus the
// Model/Package tree needed to re-serialize unchanged package structure
// (spec §4.1). data may contain comments and trailing commas; it is
// preprocessed with jsonc before strict JSON decoding.
//
// Returns a non-nil error only for structurally invalid input (not JSON, or
// missing the "model" key); invariant-repair warnings detected while
// attaching views (dangling/inverted views) are collected into the returned
// diag.Result rather than failing the load. A PartOf whose aggregation sits
// on the source endpoint is inverted silently, without a warning.
func Load(ctx context.Context, data []byte, cfg *config.Config, logger *slog.Logger) (*ontology.Graph, *Model, diag.Result, error) {
	op := trace.Begin(ctx, logger, "ontoforge.canonical.load")
	var loadErr error
	defer func() { op.End(loadErr) }()

	processed := jsonc.ToJSON(data)

	var project map[string]any
	if err := json.Unmarshal(processed, &project); err != nil {
		loadErr = fmt.Errorf("canonical: invalid JSON: %w", err)
		return nil, nil, diag.Result{}, loadErr
	}

	rawModel, ok := project["model"].(map[string]any)
	if !ok {
		loadErr = fmt.Errorf("canonical: missing \"model\" object")
		return nil, nil, diag.Result{}, loadErr
	}

	g := ontology.New(cfg, logger)
	l := &loader{g: g, names: make(map[string]string)}

	model := l.parseModel(rawModel)
	contents := flattenContents(rawModel["contents"])

	// Three passes: entities first (so relations/sets always find a real entity
	// instead of only a prototype), then relations/generalizations, then
	// generalization sets (spec §4.1's three element kinds).
	for _, c := range contents {
		if str(c, "type") == typeClass {
			l.addEntity(c)
		}
	}
	for _, c := range contents {
		switch str(c, "type") {
		case typeClass, typeGeneralizationSet:
			// handled in their own passes
		default:
			l.addRelation(c)
		}
	}
	for _, c := range contents {
		if str(c, "type") == typeGeneralizationSet {
			l.addGeneralizationSet(c)
		}
	}

	if rawDiagrams, ok := project["diagrams"].([]any); ok {
		l.attachDiagrams(rawDiagrams)
	}
	l.repairViews()

	return g, model, g.Diagnostics(), nil
}

// loader holds the bookkeeping state threaded through one Load call: the
// graph under construction and the order-2 "additional entities" id->name
// index consulted when resolving a GeneralizationSet's categorizer
// (SPEC_FULL.md §3 item 1).
type loader struct {
	g     *ontology.Graph
	names map[string]string
}

// parseModel recursively builds the Model/Package tree, descending only
// into Package-typed children (spec §4.1: "package nodes themselves are
// discarded for the graph index, but the Model tree retains them").
func (l *loader) parseModel(raw map[string]any) *Model {
	m := &Model{
		ID:                  str(raw, "id"),
		Name:                str(raw, "name"),
		Description:         strPtr(raw, "description"),
		Type:                str(raw, "type"),
		PropertyAssignments: raw["propertyAssignments"],
	}
	for _, c := range asSlice(raw["contents"]) {
		if obj, ok := c.(map[string]any); ok && str(obj, "type") == typePackage {
			m.Packages = append(m.Packages, l.parseModel(obj))
		}
	}
	return m
}

// flattenContents walks a content tree and returns every non-Package
// element at any depth, in document order (spec §4.1's get_all_elements).
func flattenContents(raw any) []map[string]any {
	var out []map[string]any
	for _, c := range asSlice(raw) {
		obj, ok := c.(map[string]any)
		if !ok {
			continue
		}
		if str(obj, "type") == typePackage {
			out = append(out, flattenContents(obj["contents"])...)
			continue
		}
		out = append(out, obj)
	}
	return out
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

// addEntity creates or updates an Entity from a Class element (spec §4.1).
func (l *loader) addEntity(c map[string]any) {
	id := str(c, "id")
	if str(c, "order") == orderSecond {
		l.names[id] = str(c, "name")
	}

	class, _ := stereotype.ParseClass(str(c, "stereotype"))

	e := l.g.PrototypeEntity(id)
	real := *e
	real.ID = id
	real.Name = str(c, "name")
	real.Type = str(c, "type")
	real.Description = str(c, "description")
	real.Stereotype = class
	real.IsAbstract = boolField(c, "isAbstract")
	real.IsDerived = boolField(c, "isDerived")
	real.IsExtensional = boolField(c, "isExtensional")
	real.IsPowertype = boolField(c, "isPowertype")
	real.Order = parseOrder(str(c, "order"))
	real.Literals = stringSlice(c, "literals")
	real.RestrictedTo = stringSlice(c, "restrictedTo")
	real.Attributes = propertyNames(c["properties"])

	known := []string{
		"id", "name", "type", "description", "stereotype",
		"isAbstract", "isDerived", "properties", "isExtensional",
		"isPowertype", "order", "literals", "restrictedTo",
	}
	rest := cloneMap(c)
	deleteKeys(rest, known...)
	real.Rest = immutable.WrapProperties(rest)

	l.g.PutEntity(&real)
}

// propertyNames extracts the attribute names from a Class element's
// "properties" array (UML Property dicts; spec §3's residual attribute
// list is just their names).
func propertyNames(v any) []string {
	props := asSlice(v)
	if len(props) == 0 {
		return nil
	}
	out := make([]string, 0, len(props))
	for _, p := range props {
		if obj, ok := p.(map[string]any); ok {
			out = append(out, str(obj, "name"))
		}
	}
	return out
}

func parseOrder(s string) int {
	switch s {
	case "":
		return 0
	case orderSecond:
		return 2
	default:
		var n int
		if _, err := fmt.Sscanf(s, "%d", &n); err == nil {
			return n
		}
		return 0
	}
}

// addRelation creates or updates a Relation or Generalization element,
// deriving the pair of endpoint ids the same way the original routes on
// element type (spec §4.1). Elements whose endpoints cannot be resolved to
// a Class reference (e.g. a Generalization between Relations) are skipped.
func (l *loader) addRelation(c map[string]any) {
	isGeneralization := str(c, "type") == typeGeneralization

	var fromID, toID string
	if isGeneralization {
		specific, okS := ref(c, "specific")
		general, okG := ref(c, "general")
		if !okS || !okG || specific.Type != typeClass || general.Type != typeClass {
			return
		}
		fromID, toID = specific.ID, general.ID
	} else {
		props := asSlice(c["properties"])
		if len(props) != 2 {
			return
		}
		from, okFrom := endpointEntityRef(props[0])
		to, okTo := endpointEntityRef(props[1])
		if !okFrom || !okTo {
			return
		}
		fromID, toID = from, to
	}

	id := str(c, "id")
	l.g.PrototypeEntity(fromID)
	l.g.PrototypeEntity(toID)

	if isGeneralization {
		r := &ontology.AbcRelation{
			ID:        id,
			Name:      str(c, "name"),
			Type:      str(c, "type"),
			From:      fromID,
			To:        toID,
			FinalType: ontology.Generalization,
		}
		l.g.PutRelation(r)
		return
	}

	stereo, _ := stereotype.ParseRelation(str(c, "stereotype"))
	fromProp := parseEndpoint(asSlice(c["properties"])[0].(map[string]any))
	toProp := parseEndpoint(asSlice(c["properties"])[1].(map[string]any))

	r := &ontology.AbcRelation{
		ID:         id,
		Name:       str(c, "name"),
		Type:       str(c, "type"),
		From:       fromID,
		To:         toID,
		Stereotype: stereo,
		FromProp:   fromProp,
		ToProp:     toProp,
	}
	r.FinalType = finalType(fromProp, toProp)

	// Invert PartOf relations whose aggregation sits on the source endpoint
	// so the whole is always the target (spec §4.1's "second correction").
	if r.FinalType == ontology.PartOf && fromProp.AggregationKind != ontology.AggregationNone {
		r.From, r.To = r.To, r.From
		r.FromProp, r.ToProp = r.ToProp, r.FromProp
	}

	l.g.PutRelation(r)
}

func finalType(from, to ontology.EndpointProperty) ontology.FinalType {
	if from.AggregationKind != ontology.AggregationNone || to.AggregationKind != ontology.AggregationNone {
		return ontology.PartOf
	}
	return ontology.RelationKind
}

// endpointEntityRef extracts the Class id a Relation endpoint's
// propertyType points at.
func endpointEntityRef(v any) (string, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return "", false
	}
	pt, ok := ref(obj, "propertyType")
	if !ok || pt.Type != typeClass {
		return "", false
	}
	return pt.ID, true
}

func parseEndpoint(p map[string]any) ontology.EndpointProperty {
	return ontology.EndpointProperty{
		Role:            str(p, "name"),
		Cardinality:     str(p, "cardinality"),
		AggregationKind: ontology.ParseAggregationKind(str(p, "aggregationKind")),
		IsReadOnly:      boolField(p, "isReadOnly"),
	}
}

// addGeneralizationSet resolves a GeneralizationSet's member generalization
// ids (creating prototype Generalizations for any not yet seen) and
// registers it. A missing/null "generalizations" field yields zero members
// rather than panicking (SPEC_FULL.md §3 item 6).
func (l *loader) addGeneralizationSet(c map[string]any) {
	var gids []string
	for _, v := range asSlice(c["generalizations"]) {
		if obj, ok := v.(map[string]any); ok {
			gids = append(gids, str(obj, "id"))
		}
	}

	for _, gid := range gids {
		if _, ok := l.g.Relation(gid); !ok {
			l.g.PutRelation(&ontology.AbcRelation{ID: gid, FinalType: ontology.Generalization})
		}
	}

	s := &ontology.GeneralizationSet{
		ID:                str(c, "id"),
		Name:              str(c, "name"),
		GeneralizationIDs: gids,
		IsComplete:        boolField(c, "isComplete"),
		IsDisjoint:        boolField(c, "isDisjoint"),
	}
	if cat, ok := ref(c, "categorizer"); ok {
		if name, found := l.names[cat.ID]; found {
			s.Categorizer = name
		}
	}
	l.g.PutGeneralizationSet(s)
}

// attachDiagrams registers every diagram and attaches its views to their
// owning element, discarding views whose element id names nothing the
// graph knows about (spec §4.1: "a view whose element id is unknown ... is
// discarded").
func (l *loader) attachDiagrams(rawDiagrams []any) {
	for _, rd := range rawDiagrams {
		d, ok := rd.(map[string]any)
		if !ok {
			continue
		}
		diagram := ontology.NewDiagram(str(d, "id"))
		l.g.PutDiagram(diagram)

		for _, rv := range asSlice(d["contents"]) {
			v, ok := rv.(map[string]any)
			if !ok {
				continue
			}
			view, ok := l.parseView(v, diagram.ID)
			if !ok {
				continue
			}
			l.g.PutView(view)
		}
	}
}

// parseView builds a View from a view dict, returning ok=false for a view
// whose modelElement id is not a known entity, relation or generalization
// set (the "dangling view" case).
func (l *loader) parseView(v map[string]any, diagramID string) (*ontology.View, bool) {
	elem, ok := ref(v, "modelElement")
	if !ok {
		return nil, false
	}
	_, isEntity := l.g.Entity(elem.ID)
	_, isRelation := l.g.Relation(elem.ID)
	_, isSet := l.g.GeneralizationSet(elem.ID)
	if !isEntity && !isRelation && !isSet {
		l.g.ReportDanglingView(str(v, "id"), elem.ID)
		return nil, false
	}

	shape, _ := v["shape"].(map[string]any)
	view := &ontology.View{
		ID:        str(v, "id"),
		DiagramID: diagramID,
		ElementID: elem.ID,
	}

	if isEntity {
		view.Kind = ontology.EntityView
		view.X, view.Y = intField(shape, "x"), intField(shape, "y")
		view.Width, view.Height = intField(shape, "width"), intField(shape, "height")
		return view, true
	}

	if isSet {
		view.Kind = ontology.SetView
		view.X, view.Y = intField(shape, "x"), intField(shape, "y")
		view.Width, view.Height = intField(shape, "width"), intField(shape, "height")
		view.Value = str(shape, "value")
		return view, true
	}

	view.Kind = ontology.EdgeView
	for _, p := range asSlice(shape["points"]) {
		if pt, ok := p.(map[string]any); ok {
			view.Points = append(view.Points, ontology.Point{X: intField(pt, "x"), Y: intField(pt, "y")})
		}
	}
	if src, ok := ref(v, "source"); ok {
		view.SourceViewID = src.ID
	}
	if tgt, ok := ref(v, "target"); ok {
		view.TargetViewID = tgt.ID
	}
	return view, true
}

// repairViews runs the final inversion pass: a relation/generalization view
// whose source/target views belong to the opposite endpoints of the
// relation is corrected in place (spec §4.1's "inverted relation views").
func (l *loader) repairViews() {
	for _, rid := range l.g.Relations() {
		r, _ := l.g.Relation(rid)
		if r.IsGeneralization() {
			// The original only re-checks RelationView direction on load,
			// never GeneralizationView (jsongraph.py's __init__ tail loop
			// guards on RELATION_VIEW_TYPE specifically).
			continue
		}
		from, okFrom := l.g.Entity(r.From)
		to, okTo := l.g.Entity(r.To)
		if !okFrom || !okTo {
			continue
		}
		for _, vid := range r.Views {
			v, ok := l.g.View(vid)
			if !ok || v.Kind != ontology.EdgeView {
				continue
			}
			sourceOK := hasView(from, v.SourceViewID) && hasView(to, v.TargetViewID)
			reversedOK := hasView(from, v.TargetViewID) && hasView(to, v.SourceViewID)
			if sourceOK || !reversedOK {
				continue
			}
			l.g.ReportInvertedView(r.ID, r.Stereotype.String())
			v.Invert()
		}
	}
}

func hasView(e *ontology.Entity, viewID string) bool {
	for _, id := range e.Views {
		if id == viewID {
			return true
		}
	}
	return false
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
