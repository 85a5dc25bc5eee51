package ontology

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ontoverse/ontoforge/catalog"
)

// Stats is the coarse structural summary of a graph: total entities,
// total relations/generalizations, and the PartOf/Generalization subcounts
// (jsongraph.py.to_row).
type Stats struct {
	Entities        int
	Relations       int
	PartOfs         int
	Generalizations int
}

// Stats computes the graph's structural summary.
func (g *Graph) Stats() Stats {
	s := Stats{Entities: len(g.entities), Relations: len(g.relations)}
	for _, r := range g.relations {
		switch r.FinalType {
		case PartOf:
			s.PartOfs++
		case Generalization:
			s.Generalizations++
		}
	}
	return s
}

// String renders a human-readable dump of the graph's current internal
// structure: relation counts, every entity with its incident edges, and
// every generalization set (jsongraph.py.__str__). Intended for debug
// logging and CLI inspection, not for serialization.
func (g *Graph) String() string {
	stats := g.Stats()

	var b strings.Builder
	b.WriteString("\n----------------------------------------------------------------------")
	fmt.Fprintf(&b, "\nCurrent internal structure:")
	fmt.Fprintf(&b, "\nNumber of relations: %d", stats.Relations)
	fmt.Fprintf(&b, "\nincluding %d part-of relations, ", stats.PartOfs)
	fmt.Fprintf(&b, "\n          %d generalizations, ", stats.Generalizations)
	fmt.Fprintf(&b, "\n          %d ordinary relations. ", stats.Relations-stats.PartOfs-stats.Generalizations)

	for _, id := range sortedKeys(g.entities) {
		e := g.entities[id]
		fmt.Fprintf(&b, "\n%s", e.Name)
		for _, kind := range AllFinalTypes() {
			for _, rid := range e.Incoming(kind) {
				if r, ok := g.relations[rid]; ok {
					from, _ := g.Entity(r.From)
					fmt.Fprintf(&b, "\n\t<- [%s] %s", r.String(), entityNameOrEmpty(from))
				}
			}
			for _, rid := range e.Outgoing(kind) {
				if r, ok := g.relations[rid]; ok {
					to, _ := g.Entity(r.To)
					fmt.Fprintf(&b, "\n\t-> [%s] %s", r.String(), entityNameOrEmpty(to))
				}
			}
		}
	}

	if len(g.sets) > 0 {
		b.WriteString("\nGeneralization sets:")
		for _, id := range sortedKeys(g.sets) {
			fmt.Fprintf(&b, "\n%s", g.sets[id].String())
		}
	}
	b.WriteString("\n----------------------------------------------------------------------")
	return b.String()
}

func entityNameOrEmpty(e *Entity) string {
	if e == nil {
		return ""
	}
	return e.Name
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Index returns the index key (clean(name) + delimiter + stereotype) for
// every entity in the graph (jsongraph.py.get_index).
func (g *Graph) Index(delimiter string) []catalog.Key {
	keys := make([]catalog.Key, 0, len(g.entities))
	for _, id := range sortedKeys(g.entities) {
		e := g.entities[id]
		keys = append(keys, catalog.NewKey(e.Name, e.Stereotype, delimiter))
	}
	return keys
}

// NodeIndex returns the index key for a single entity id
// (jsongraph.py.get_node_index).
func (g *Graph) NodeIndex(entityID, delimiter string) (catalog.Key, bool) {
	e, ok := g.entities[entityID]
	if !ok {
		return "", false
	}
	return catalog.NewKey(e.Name, e.Stereotype, delimiter), true
}
