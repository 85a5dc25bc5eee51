package ontology

import "strings"

// GeneralizationSet owns a partition of Generalization edges sharing a
// common general entity, plus completeness/disjointness flags and an
// optional categorizer entity id (resolved from a sibling Entity by id
// lookup during construction).
type GeneralizationSet struct {
	ID                 string
	Name               string
	GeneralizationIDs  []string
	IsComplete         bool
	IsDisjoint         bool
	Categorizer        string
	Views              []string
}

// removeGeneralization removes gID from s's membership list and reports
// whether the set now has fewer than 2 members (spec §3 invariant 3: a set
// with fewer than 2 generalizations is deleted).
func (s *GeneralizationSet) removeGeneralization(gID string) (degenerate bool) {
	out := s.GeneralizationIDs[:0]
	for _, id := range s.GeneralizationIDs {
		if id != gID {
			out = append(out, id)
		}
	}
	s.GeneralizationIDs = out
	return len(s.GeneralizationIDs) < 2
}

// String renders s the way generalization_set.py's __str__ does: completeness
// and disjointness flags followed by its member generalization ids.
func (s *GeneralizationSet) String() string {
	completeness := "not complete"
	if s.IsComplete {
		completeness = "complete"
	}
	disjointness := "not disjoint"
	if s.IsDisjoint {
		disjointness = "disjoint"
	}
	return "GeneralizationSet {" + completeness + ", " + disjointness + "}: " + strings.Join(s.GeneralizationIDs, ", ")
}
