// Package ontology implements the in-memory ontology graph: entities,
// relations, generalizations, generalization sets, views, and diagrams,
// stored as an arena of flat tables keyed by stable string ids, plus the
// structural transformation algorithms (fold, abstract parthood/aspect/
// hierarchy, focus, cluster, expand, move_relation) that rewrite it.
//
// References between elements are ids, not pointers: a Graph is a set of
// maps, and endpoint lookups are table reads. This avoids the ownership
// cycles an entity/relation object graph would otherwise have (an entity
// pointing at its incident relations, each relation pointing back at its
// endpoints) and makes deletion a table erase plus index fix-up rather than
// a graph walk.
package ontology
