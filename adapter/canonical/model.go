package canonical

// Wire-format type tags, matching the original project's ElementDict "type"
// discriminant values exactly (mozzherina/Expose expose/project/__init__.py).
const (
	typePackage           = "Package"
	typeClass             = "Class"
	typeRelation          = "Relation"
	typeGeneralization    = "Generalization"
	typeGeneralizationSet = "GeneralizationSet"
	typeProperty          = "Property"
	typeLiteral           = "Literal"

	viewTypeClass             = "ClassView"
	viewTypeRelation          = "RelationView"
	viewTypeGeneralization    = "GeneralizationView"
	viewTypeGeneralizationSet = "GeneralizationSetView"
)

// orderSecond marks an entity as an "additional" second-order class whose
// own name may be borrowed by a GeneralizationSet referencing it as a
// categorizer (spec SPEC_FULL.md §3 item 1).
const orderSecond = "2"

// Model mirrors the project's Model/Package node: an Element header plus a
// recursive list of nested Package subtrees. The model's own flattened
// content (classes, relations, generalization sets) is hoisted out into the
// Graph during Load and reattached only to the outermost Model's contents
// during Save (spec §4.1: "package nodes themselves are discarded for the
// graph index, but the Model tree retains them for re-serialization").
type Model struct {
	ID                  string
	Name                string
	Description         *string
	Type                string
	PropertyAssignments any

	Packages []*Model
}

// basicRef is a {id, type} pointer used throughout the wire format to
// reference another element (propertyType, general/specific, categorizer,
// generalization-set membership).
type basicRef struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// deleteKeys removes every key in keys from m, in place.
func deleteKeys(m map[string]any, keys ...string) {
	for _, k := range keys {
		delete(m, k)
	}
}

// str extracts a string field, defaulting to "" if absent or not a string.
func str(m map[string]any, key string) string {
	v, _ := m[key].(string)
	return v
}

// strPtr extracts a string field as *string, preserving a JSON null instead
// of collapsing it to "".
func strPtr(m map[string]any, key string) *string {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

// boolField extracts a bool field, defaulting to false.
func boolField(m map[string]any, key string) bool {
	v, _ := m[key].(bool)
	return v
}

// intField extracts a numeric field as int; JSON numbers decode to
// float64 via encoding/json.
func intField(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// stringSlice extracts a []any of strings as []string, defaulting to nil.
func stringSlice(m map[string]any, key string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// ref extracts a nested {id,type} object field.
func ref(m map[string]any, key string) (basicRef, bool) {
	raw, ok := m[key].(map[string]any)
	if !ok {
		return basicRef{}, false
	}
	return basicRef{ID: str(raw, "id"), Type: str(raw, "type")}, true
}
