package ontology

import (
	"github.com/ontoverse/ontoforge/immutable"
	"github.com/ontoverse/ontoforge/stereotype"
)

// Entity represents a class in the model: a stable-id node carrying an
// OntoUML class stereotype, UML class-level flags, a residual attribute
// bag for fields the graph doesn't model explicitly, and the bidirectional
// incident-edge indices that make endpoint traversal O(1).
type Entity struct {
	ID          string
	Name        string
	Type        string
	Description string
	Stereotype  stereotype.Class

	IsAbstract    bool
	IsDerived     bool
	IsExtensional bool
	IsPowertype   bool
	Order         int
	Literals      []string
	RestrictedTo  []string

	Attributes []string

	Rest immutable.Properties

	Views []string

	// Prototype marks an entity synthesized by a forward reference to an
	// id not yet seen (spec §3 Lifecycle); it is cleared when the real
	// entity data arrives via UpdateFromPrototype.
	Prototype bool

	incidence [2]map[string][]string // [direction][FinalType.String()] -> relation ids
}

func newEntity(id string) *Entity {
	return &Entity{
		ID: id,
		incidence: [2]map[string][]string{
			{}, {},
		},
	}
}

// Incoming returns the snapshot of incoming edge ids of the given kind.
// The returned slice is a copy; callers may range over it safely while the
// graph mutates (spec §5 Ordering: traversals snapshot before mutation).
func (e *Entity) Incoming(kind FinalType) []string {
	return append([]string(nil), e.incidence[incoming][kind.value]...)
}

// Outgoing returns the snapshot of outgoing edge ids of the given kind.
func (e *Entity) Outgoing(kind FinalType) []string {
	return append([]string(nil), e.incidence[outgoing][kind.value]...)
}

// Degree returns the total number of edges (of any kind, either direction)
// incident to e.
func (e *Entity) Degree() int {
	n := 0
	for _, m := range e.incidence {
		for _, ids := range m {
			n += len(ids)
		}
	}
	return n
}

func (e *Entity) addIncident(dir direction, kind FinalType, relID string) {
	e.incidence[dir][kind.value] = append(e.incidence[dir][kind.value], relID)
}

func (e *Entity) removeIncident(dir direction, kind FinalType, relID string) {
	ids := e.incidence[dir][kind.value]
	out := ids[:0]
	for _, id := range ids {
		if id != relID {
			out = append(out, id)
		}
	}
	e.incidence[dir][kind.value] = out
}

// UpdateFromPrototype copies real entity data onto a prototype placeholder,
// in place, preserving the prototype's id and already-indexed edges.
func (e *Entity) UpdateFromPrototype(real *Entity) {
	id, incidence := e.ID, e.incidence
	*e = *real
	e.ID = id
	e.incidence = incidence
	e.Prototype = false
}
