// Package genid generates identifiers for newly created graph elements.
//
// Ids the graph generates (entities, relations, generalizations, and the
// views created for them) use a short random alphanumeric string matching
// the original generate_id() scheme: crypto/rand-backed selection from the
// letters+digits alphabet, at a configurable length. [View] returns a
// [github.com/google/uuid] string instead; no graph operation calls it.
package genid
