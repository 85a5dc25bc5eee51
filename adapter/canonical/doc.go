// Package canonical loads and saves the canonical ontology project format:
// a nested Model/Package content tree plus a list of Diagrams, each diagram
// owning a list of element views (spec.md §4.1, §4.2, §6 "Canonical
// format"). Element dicts are parsed permissively (comments and trailing
// commas tolerated via jsonc preprocessing) and
// fields this package does not model explicitly on a Class are preserved
// verbatim in the entity's residual "rest" bag so re-serialization is
// bit-compatible for those fields. Relations, generalization sets and
// diagrams have no such bag; their unmodelled fields are not round-tripped.
package canonical
