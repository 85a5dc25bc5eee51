package catalog

import (
	"github.com/ontoverse/ontoforge/internal/clean"
	"github.com/ontoverse/ontoforge/stereotype"
)

// Key is an index key into a Hierarchy's node table: clean(name) +
// delimiter + stereotype (spec "Index key format"). It is string-equality
// based; matching an existing entity means its own computed Key equals a
// catalog node's Key.
type Key string

// NewKey builds the canonical index key for a name/stereotype pair.
func NewKey(name string, class stereotype.Class, delimiter string) Key {
	return Key(clean.Name(name) + delimiter + class.String())
}

// SetDescriptor describes one generalization set entry in a catalog
// hierarchy: a parent node and its complete/disjoint flags over a set of
// child nodes.
type SetDescriptor struct {
	To       Key
	From     []Key
	Complete bool
	Disjoint bool
}

// Hierarchy is a passive value object ingested by ontology.Expand: a
// parent->children adjacency over catalog node keys, plus any
// generalization sets the catalog wants synthesized alongside them.
type Hierarchy struct {
	Nodes map[Key][]Key
	Sets  map[string]SetDescriptor
}

// Name recovers the clean-name portion of key (everything before the first
// delimiter, or the whole key if there is none), as stored, without
// capitalizing it. Used when a catalog node has no matching entity yet and
// a new one must be synthesized; ontology.Expand capitalizes the result.
func (k Key) Name(delimiter string) string {
	for i := 0; i+len(delimiter) <= len(string(k)); i++ {
		if string(k)[i:i+len(delimiter)] == delimiter {
			return string(k)[:i]
		}
	}
	return string(k)
}

// Stereotype recovers the stereotype portion of key.
func (k Key) Stereotype(delimiter string) (stereotype.Class, bool) {
	s := string(k)
	for i := 0; i+len(delimiter) <= len(s); i++ {
		if s[i:i+len(delimiter)] == delimiter {
			return stereotype.ParseClass(s[i+len(delimiter):])
		}
	}
	return stereotype.Class{}, false
}
