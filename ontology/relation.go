package ontology

import "github.com/ontoverse/ontoforge/stereotype"

// EndpointProperty carries the per-endpoint fields a Relation (but not a
// bare Generalization) attaches to each of its two ends: role name,
// cardinality string, aggregation kind, and read-only flag.
type EndpointProperty struct {
	Role            string
	Cardinality     string
	AggregationKind AggregationKind
	IsReadOnly      bool
}

// finalTypeOf derives a relation's FinalType from its endpoint aggregation
// kinds: PartOf whenever either endpoint aggregates, Relation otherwise.
// This is the model's only state machine (spec §4.12).
func finalTypeOf(from, to EndpointProperty) FinalType {
	if from.AggregationKind != AggregationNone || to.AggregationKind != AggregationNone {
		return PartOf
	}
	return RelationKind
}

// AbcRelation is the tagged union of Generalization, Relation, and PartOf:
// every edge in the graph shares this header, discriminated by FinalType.
// Generalizations carry only From/To (general/specific) and an optional
// owning GeneralizationSet id; Relation and PartOf additionally carry a
// RelationStereotype and per-endpoint properties.
type AbcRelation struct {
	ID   string
	Name string
	Type string

	From string
	To   string

	FinalType FinalType
	Views     []string

	// SetID is the owning GeneralizationSet id, set only when FinalType is
	// Generalization. A Generalization belongs to at most one set.
	SetID string

	// Stereotype, FromProp, and ToProp are meaningful only when FinalType
	// is Relation or PartOf.
	Stereotype stereotype.Relation
	FromProp   EndpointProperty
	ToProp     EndpointProperty
}

// IsGeneralization reports whether r is a plain generalization edge.
func (r *AbcRelation) IsGeneralization() bool { return r.FinalType == Generalization }

// IsPartOf reports whether r is a mereological (parthood) edge.
func (r *AbcRelation) IsPartOf() bool { return r.FinalType == PartOf }

// clone returns a deep, independent copy of r sharing no backing arrays,
// used by move_relation's deep-copy path. The id, view ids, and set
// membership are left as-is; callers overwrite them as appropriate.
func (r *AbcRelation) clone() *AbcRelation {
	c := *r
	c.Views = append([]string(nil), r.Views...)
	return &c
}

// String renders r the way relation.py's Generalization/Relation.__str__
// do: a generalization reports whether it belongs to a set, an ordinary
// edge reports its stereotype and name.
func (r *AbcRelation) String() string {
	if r.IsGeneralization() {
		if r.SetID != "" {
			return "generalization (also in set)"
		}
		return "generalization"
	}
	if !r.Stereotype.IsZero() && r.Name != "" {
		return r.Stereotype.String() + ": " + r.Name
	}
	if !r.Stereotype.IsZero() {
		return r.Stereotype.String()
	}
	return r.Name
}
