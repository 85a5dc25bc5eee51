// Package stereotype defines the closed OntoUML stereotype vocabularies and
// the cardinality arithmetic used by relation abstraction and merging.
package stereotype

// Class is a closed OntoUML class stereotype.
//
// Class uses unexported fields to enforce a closed set of valid values,
// mirroring the same "closed set via unexported struct" construction used
// by diag.Code.
type Class struct{ value string }

// String returns the wire-format stereotype string (e.g., "kind", "subkind").
func (c Class) String() string { return c.value }

// IsZero reports whether the stereotype is unset.
func (c Class) IsZero() bool { return c.value == "" }

func classOf(v string) Class { return Class{value: v} }

// Closed set of class stereotypes, per the OntoUML metamodel.
var (
	Type                = classOf("type")
	HistoricalRole      = classOf("historicalRole")
	HistoricalRoleMixin = classOf("historicalRoleMixin")
	Event               = classOf("event")
	Situation           = classOf("situation")
	Category            = classOf("category")
	Mixin               = classOf("mixin")
	RoleMixin           = classOf("roleMixin")
	PhaseMixin          = classOf("phaseMixin")
	Kind                = classOf("kind")
	Collective          = classOf("collective")
	Quantity            = classOf("quantity")
	Relator             = classOf("relator")
	Quality             = classOf("quality")
	Mode                = classOf("mode")
	Subkind             = classOf("subkind")
	Role                = classOf("role")
	Phase               = classOf("phase")
	Enumeration         = classOf("enumeration")
	Datatype            = classOf("datatype")
	Abstract            = classOf("abstract")
)

// ParseClass resolves a wire-format stereotype string to its closed Class
// value. ok is false when s is outside the known vocabulary.
func ParseClass(s string) (Class, bool) {
	for _, c := range AllClasses() {
		if c.value == s {
			return c, true
		}
	}
	return Class{}, false
}

// AllClasses returns every defined class stereotype.
func AllClasses() []Class {
	return []Class{
		Type, HistoricalRole, HistoricalRoleMixin, Event, Situation, Category,
		Mixin, RoleMixin, PhaseMixin, Kind, Collective, Quantity, Relator,
		Quality, Mode, Subkind, Role, Phase, Enumeration, Datatype, Abstract,
	}
}

// Relation is a closed OntoUML relation stereotype.
type Relation struct{ value string }

// String returns the wire-format stereotype string (e.g., "mediation").
func (r Relation) String() string { return r.value }

// IsZero reports whether the stereotype is unset.
func (r Relation) IsZero() bool { return r.value == "" }

func relationOf(v string) Relation { return Relation{value: v} }

// Closed set of relation stereotypes, per the OntoUML metamodel.
var (
	Material             = relationOf("material")
	Derivation            = relationOf("derivation")
	Comparative           = relationOf("comparative")
	Mediation             = relationOf("mediation")
	Characterization      = relationOf("characterization")
	ExternalDependence    = relationOf("externalDependence")
	ComponentOf           = relationOf("componentOf")
	MemberOf              = relationOf("memberOf")
	SubCollectionOf       = relationOf("subCollectionOf")
	SubQuantityOf         = relationOf("subQuantityOf")
	Instantiation         = relationOf("instantiation")
	Termination           = relationOf("termination")
	Participational       = relationOf("participational")
	Participation         = relationOf("participation")
	HistoricalDependence  = relationOf("historicalDependence")
	Creation              = relationOf("creation")
	Manifestation         = relationOf("manifestation")
	BringsAbout           = relationOf("bringsAbout")
	Triggers              = relationOf("triggers")
)

// ParseRelation resolves a wire-format stereotype string to its closed
// Relation value. ok is false when s is outside the known vocabulary.
func ParseRelation(s string) (Relation, bool) {
	for _, r := range AllRelations() {
		if r.value == s {
			return r, true
		}
	}
	return Relation{}, false
}

// AllRelations returns every defined relation stereotype.
func AllRelations() []Relation {
	return []Relation{
		Material, Derivation, Comparative, Mediation, Characterization,
		ExternalDependence, ComponentOf, MemberOf, SubCollectionOf,
		SubQuantityOf, Instantiation, Termination, Participational,
		Participation, HistoricalDependence, Creation, Manifestation,
		BringsAbout, Triggers,
	}
}

// nonSortal is the set of non-sortal class stereotypes: categories, mixins,
// and their historical variants — classes that classify objects of more
// than one kind.
var nonSortal = map[string]bool{
	Category.value: true, Mixin.value: true, PhaseMixin.value: true,
	RoleMixin.value: true, HistoricalRoleMixin.value: true,
}

// IsNonSortal reports whether c classifies objects of more than one kind.
func (c Class) IsNonSortal() bool { return nonSortal[c.value] }

// sortal is the set of sortal class stereotypes: every class that supplies
// (or inherits) a single principle of identity.
var sortal = map[string]bool{
	Kind.value: true, Collective.value: true, Quantity.value: true,
	Relator.value: true, Quality.value: true, Mode.value: true,
	Subkind.value: true, Phase.value: true, Role.value: true,
	HistoricalRole.value: true,
}

// IsSortal reports whether c supplies a single principle of identity.
func (c Class) IsSortal() bool { return sortal[c.value] }

// kindsOf is the set of ultimate sortal (kind-providing) stereotypes:
// sortals that are not specializations of another sortal.
var kindsOf = map[string]bool{
	Kind.value: true, Collective.value: true, Quantity.value: true,
	Relator.value: true, Quality.value: true, Mode.value: true,
}

// IsKind reports whether c is an ultimate sortal.
func (c Class) IsKind() bool { return kindsOf[c.value] }

// aspects is the set of moment/aspect stereotypes (relator, quality, mode) —
// entities existentially dependent on one or more other entities.
var aspects = map[string]bool{
	Relator.value: true, Quality.value: true, Mode.value: true,
}

// IsAspect reports whether c is a relator, quality, or mode.
func (c Class) IsAspect() bool { return aspects[c.value] }

// IsEndurantOrDatatype reports whether c is a sortal, non-sortal, or datatype
// (i.e. anything that is not an event).
func (c Class) IsEndurantOrDatatype() bool {
	return c.IsSortal() || c.IsNonSortal() || c.value == Datatype.value
}

// IsObject reports whether c denotes an object-like endurant — anything
// except an aspect (relator/quality/mode) or an event.
func (c Class) IsObject() bool {
	return !c.IsAspect() && c.value != Event.value
}
