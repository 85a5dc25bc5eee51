package diag

// CodeCategory represents the error kind a Code belongs to.
type CodeCategory uint8

const (
	// CategorySentinel is for sentinel codes like E_LIMIT_REACHED and E_INTERNAL.
	CategorySentinel CodeCategory = iota

	// CategoryBadInput indicates malformed or structurally invalid request data.
	CategoryBadInput

	// CategoryNotFound indicates a referenced entity, relation, or view does not exist.
	CategoryNotFound

	// CategoryRecursion indicates a traversal exceeded its recursion guard.
	CategoryRecursion

	// CategoryInvariant indicates a graph invariant was violated or repaired.
	CategoryInvariant

	// CategoryExternal indicates a failure originating outside the graph itself
	// (catalog fetch, serialization round-trip, I/O).
	CategoryExternal
)

// String returns a human-readable label for the category.
func (c CodeCategory) String() string {
	switch c {
	case CategorySentinel:
		return "sentinel"
	case CategoryBadInput:
		return "bad_input"
	case CategoryNotFound:
		return "not_found"
	case CategoryRecursion:
		return "recursion"
	case CategoryInvariant:
		return "invariant"
	case CategoryExternal:
		return "external"
	default:
		return "unknown"
	}
}

// Code is a stable programmatic identifier for an Issue.
//
// Error codes are stable identifiers that tools can match on, even when
// message text changes. The Code type uses unexported fields to enforce
// a closed set of valid codes—only codes defined in this package are valid.
type Code struct {
	value string
	cat   CodeCategory
}

// String returns the code's string representation (e.g., "E_ENTITY_NOT_FOUND").
func (c Code) String() string {
	return c.value
}

// Category returns the programmatic category for this code.
func (c Code) Category() CodeCategory {
	return c.cat
}

// IsZero reports whether the code is unset.
func (c Code) IsZero() bool {
	return c.value == ""
}

// code is the unexported constructor—callers cannot create arbitrary codes.
func code(value string, cat CodeCategory) Code {
	return Code{value: value, cat: cat}
}

// Sentinel codes.
var (
	// E_LIMIT_REACHED is a sentinel code for explicit limit notification.
	E_LIMIT_REACHED = code("E_LIMIT_REACHED", CategorySentinel)

	// E_INTERNAL indicates an unexpected invariant failure (internal bug indicator).
	E_INTERNAL = code("E_INTERNAL", CategorySentinel)
)

// Bad input codes.
var (
	// E_NIL_REQUEST indicates a nil request or graph argument.
	E_NIL_REQUEST = code("E_NIL_REQUEST", CategoryBadInput)

	// E_MISSING_FIELD indicates a required field is absent from the input payload.
	E_MISSING_FIELD = code("E_MISSING_FIELD", CategoryBadInput)

	// E_UNKNOWN_STEREOTYPE indicates a stereotype string outside the closed set.
	E_UNKNOWN_STEREOTYPE = code("E_UNKNOWN_STEREOTYPE", CategoryBadInput)

	// E_UNKNOWN_FORMAT indicates an unsupported or unrecognized serialization format tag.
	E_UNKNOWN_FORMAT = code("E_UNKNOWN_FORMAT", CategoryBadInput)

	// E_INVALID_CARDINALITY indicates a cardinality string could not be parsed.
	E_INVALID_CARDINALITY = code("E_INVALID_CARDINALITY", CategoryBadInput)

	// E_UNKNOWN_ELEMENT_TYPE indicates a delete request's element_type was
	// not "node" or "link".
	E_UNKNOWN_ELEMENT_TYPE = code("E_UNKNOWN_ELEMENT_TYPE", CategoryBadInput)

	// E_UNKNOWN_ABS_TYPE indicates an abstract request's abs_type was
	// outside {parthood, hierarchy, aspects}.
	E_UNKNOWN_ABS_TYPE = code("E_UNKNOWN_ABS_TYPE", CategoryBadInput)

	// E_NOT_IMPLEMENTED indicates a request for a recognized but unsupported format.
	E_NOT_IMPLEMENTED = code("E_NOT_IMPLEMENTED", CategoryBadInput)
)

// Not found codes.
var (
	// E_ENTITY_NOT_FOUND indicates a referenced entity id does not exist in the graph.
	E_ENTITY_NOT_FOUND = code("E_ENTITY_NOT_FOUND", CategoryNotFound)

	// E_RELATION_NOT_FOUND indicates a referenced relation/generalization id does not exist.
	E_RELATION_NOT_FOUND = code("E_RELATION_NOT_FOUND", CategoryNotFound)

	// E_SET_NOT_FOUND indicates a referenced generalization set id does not exist.
	E_SET_NOT_FOUND = code("E_SET_NOT_FOUND", CategoryNotFound)

	// E_VIEW_NOT_FOUND indicates a referenced view id does not exist.
	E_VIEW_NOT_FOUND = code("E_VIEW_NOT_FOUND", CategoryNotFound)

	// E_DIAGRAM_NOT_FOUND indicates a referenced diagram id does not exist.
	E_DIAGRAM_NOT_FOUND = code("E_DIAGRAM_NOT_FOUND", CategoryNotFound)

	// E_HIERARCHY_NOT_FOUND indicates a catalog lookup found no matching hierarchy descriptor.
	E_HIERARCHY_NOT_FOUND = code("E_HIERARCHY_NOT_FOUND", CategoryNotFound)
)

// Recursion codes.
var (
	// E_FOLD_RECURSION indicates fold's name-based recursion guard tripped.
	E_FOLD_RECURSION = code("E_FOLD_RECURSION", CategoryRecursion)

	// E_ASPECT_RECURSION indicates abstract_aspect's chain-of-aspects guard tripped.
	E_ASPECT_RECURSION = code("E_ASPECT_RECURSION", CategoryRecursion)

	// E_HIERARCHY_RECURSION indicates abstract_hierarchy recursed beyond its bound.
	E_HIERARCHY_RECURSION = code("E_HIERARCHY_RECURSION", CategoryRecursion)
)

// Invariant codes.
var (
	// E_DANGLING_VIEW indicates a view refers to an element absent from the model tree.
	E_DANGLING_VIEW = code("E_DANGLING_VIEW", CategoryInvariant)

	// E_INVERTED_EDGE indicates a relation/generalization view direction was repaired on load.
	E_INVERTED_EDGE = code("E_INVERTED_EDGE", CategoryInvariant)

	// E_ORPHAN_GENERALIZATION indicates a generalization set lost all its members.
	E_ORPHAN_GENERALIZATION = code("E_ORPHAN_GENERALIZATION", CategoryInvariant)

	// E_DUPLICATE_ID indicates two elements in the input shared a single id.
	E_DUPLICATE_ID = code("E_DUPLICATE_ID", CategoryInvariant)

	// E_CATEGORIZER_UNRESOLVED indicates a generalization set's categorizer sibling could not be found.
	E_CATEGORIZER_UNRESOLVED = code("E_CATEGORIZER_UNRESOLVED", CategoryInvariant)

	// E_CLUSTER_TARGET_NOT_RELATOR indicates cluster was asked to seed from a
	// non-relator entity; unlike most bad-input conditions this is recovered
	// locally (the graph is left unchanged) rather than treated as fatal.
	E_CLUSTER_TARGET_NOT_RELATOR = code("E_CLUSTER_TARGET_NOT_RELATOR", CategoryInvariant)
)

// External codes.
var (
	// E_CATALOG_FETCH indicates the hierarchy catalog could not be read.
	E_CATALOG_FETCH = code("E_CATALOG_FETCH", CategoryExternal)

	// E_SERIALIZE indicates marshaling to the canonical or display format failed.
	E_SERIALIZE = code("E_SERIALIZE", CategoryExternal)

	// E_DESERIALIZE indicates parsing of an input document failed.
	E_DESERIALIZE = code("E_DESERIALIZE", CategoryExternal)
)

// allCodes contains all defined codes for AllCodes() and uniqueness verification.
var allCodes = []Code{
	E_LIMIT_REACHED,
	E_INTERNAL,
	E_NIL_REQUEST,
	E_MISSING_FIELD,
	E_UNKNOWN_STEREOTYPE,
	E_UNKNOWN_FORMAT,
	E_INVALID_CARDINALITY,
	E_UNKNOWN_ELEMENT_TYPE,
	E_UNKNOWN_ABS_TYPE,
	E_NOT_IMPLEMENTED,
	E_ENTITY_NOT_FOUND,
	E_RELATION_NOT_FOUND,
	E_SET_NOT_FOUND,
	E_VIEW_NOT_FOUND,
	E_DIAGRAM_NOT_FOUND,
	E_HIERARCHY_NOT_FOUND,
	E_FOLD_RECURSION,
	E_ASPECT_RECURSION,
	E_HIERARCHY_RECURSION,
	E_DANGLING_VIEW,
	E_INVERTED_EDGE,
	E_ORPHAN_GENERALIZATION,
	E_DUPLICATE_ID,
	E_CATEGORIZER_UNRESOLVED,
	E_CLUSTER_TARGET_NOT_RELATOR,
	E_CATALOG_FETCH,
	E_SERIALIZE,
	E_DESERIALIZE,
}

// AllCodes returns all defined codes.
//
// The returned slice is a copy; modifications do not affect the original.
func AllCodes() []Code {
	result := make([]Code, len(allCodes))
	copy(result, allCodes)
	return result
}

// CodesByCategory returns codes in the given category.
func CodesByCategory(cat CodeCategory) []Code {
	var result []Code
	for _, c := range allCodes {
		if c.cat == cat {
			result = append(result, c)
		}
	}
	return result
}
